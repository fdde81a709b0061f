// Package weather queries the OpenWeatherMap current-weather provider and
// formats the result.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"taqvim_bot/internal/domain"
	"taqvim_bot/internal/logging"
)

// DefaultBaseURL is the public OpenWeatherMap endpoint.
const DefaultBaseURL = "https://api.openweathermap.org"

const requestTimeout = 5 * time.Second

// conditionLanguage is the description language requested from the provider.
// The provider has no Uzbek-script split, so a single value serves all users.
const conditionLanguage = "uz"

// ErrProviderRejected indicates the provider answered with a non-success
// status, e.g. an unknown city.
var ErrProviderRejected = errors.New("weather provider rejected the request")

// Client fetches the current weather by city or coordinates.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *logrus.Entry
}

// NewClient constructs a weather client. An empty baseURL selects the public
// endpoint.
func NewClient(baseURL, apiKey string, logger *logrus.Entry) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = logging.Logger()
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

type weatherResponse struct {
	Cod  json.Number `json:"cod"`
	Name string      `json:"name"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Sys struct {
		Sunrise int64 `json:"sunrise"`
		Sunset  int64 `json:"sunset"`
	} `json:"sys"`
}

// ByCity returns the current weather for an Uzbek city.
func (c *Client) ByCity(ctx context.Context, city string) (domain.Weather, error) {
	params := url.Values{}
	params.Set("q", city+",UZ")

	return c.fetch(ctx, params, city)
}

// ByLocation returns the current weather at a coordinate. The location label
// comes from the provider when it knows the place.
func (c *Client) ByLocation(ctx context.Context, lat, lon float64) (domain.Weather, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	return c.fetch(ctx, params, "")
}

func (c *Client) fetch(ctx context.Context, params url.Values, label string) (domain.Weather, error) {
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")
	params.Set("lang", conditionLanguage)

	endpoint := fmt.Sprintf("%s/data/2.5/weather?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Weather{}, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Weather{}, fmt.Errorf("request weather: %w", err)
	}
	defer resp.Body.Close()

	var parsed weatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return domain.Weather{}, fmt.Errorf("decode weather response: %w", err)
	}

	if code, _ := parsed.Cod.Int64(); code != http.StatusOK {
		return domain.Weather{}, fmt.Errorf("%w: code %s", ErrProviderRejected, parsed.Cod.String())
	}

	if label == "" {
		label = parsed.Name
	}

	weather := domain.Weather{
		Location:    label,
		Temperature: roundTemp(parsed.Main.Temp),
		FeelsLike:   roundTemp(parsed.Main.FeelsLike),
		Humidity:    parsed.Main.Humidity,
		WindSpeed:   parsed.Wind.Speed,
		Pressure:    parsed.Main.Pressure,
		Sunrise:     time.Unix(parsed.Sys.Sunrise, 0).Format("15:04"),
		Sunset:      time.Unix(parsed.Sys.Sunset, 0).Format("15:04"),
	}
	if len(parsed.Weather) > 0 {
		weather.Condition = parsed.Weather[0].Description
		weather.Icon = parsed.Weather[0].Icon
	}

	return weather, nil
}

func roundTemp(value float64) int {
	if value < 0 {
		return int(value - 0.5)
	}

	return int(value + 0.5)
}
