// Package prayer queries the Aladhan prayer-times provider and formats the
// results. The same provider call backs both the prayer-times and the
// fasting-times features: Suhoor equals Fajr and Iftar equals Maghrib.
package prayer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"taqvim_bot/internal/domain"
	"taqvim_bot/internal/logging"
)

// DefaultBaseURL is the public Aladhan endpoint.
const DefaultBaseURL = "http://api.aladhan.com"

const requestTimeout = 10 * time.Second

// ErrProviderRejected indicates the provider answered with a non-success
// status, e.g. an unknown city.
var ErrProviderRejected = errors.New("prayer times provider rejected the request")

// Client fetches daily prayer times per city.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Entry
}

// NewClient constructs a prayer-times client. An empty baseURL selects the
// public endpoint.
func NewClient(baseURL string, logger *logrus.Entry) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = logging.Logger()
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

type timingsResponse struct {
	Code int `json:"code"`
	Data struct {
		Timings map[string]string `json:"timings"`
		Date    struct {
			Readable string `json:"readable"`
			Hijri    struct {
				Day   string `json:"day"`
				Year  string `json:"year"`
				Month struct {
					En string `json:"en"`
				} `json:"month"`
				Weekday struct {
					En string `json:"en"`
				} `json:"weekday"`
			} `json:"hijri"`
		} `json:"date"`
	} `json:"data"`
}

// Times returns today's prayer times for a region. Transport failures and
// provider rejections come back as errors; the caller turns them into a
// localized message.
func (c *Client) Times(ctx context.Context, region string) (domain.PrayerTimes, error) {
	resp, err := c.fetch(ctx, region)
	if err != nil {
		return domain.PrayerTimes{}, err
	}

	return domain.PrayerTimes{
		Region:    region,
		Date:      resp.Data.Date.Readable,
		Weekday:   resp.Data.Date.Hijri.Weekday.En,
		HijriDate: hijriDate(resp),
		Fajr:      clockHHMM(resp.Data.Timings["Fajr"]),
		Sunrise:   clockHHMM(resp.Data.Timings["Sunrise"]),
		Dhuhr:     clockHHMM(resp.Data.Timings["Dhuhr"]),
		Asr:       clockHHMM(resp.Data.Timings["Asr"]),
		Maghrib:   clockHHMM(resp.Data.Timings["Maghrib"]),
		Isha:      clockHHMM(resp.Data.Timings["Isha"]),
	}, nil
}

// FastingTimes returns today's fasting boundaries for a region.
func (c *Client) FastingTimes(ctx context.Context, region string) (domain.FastingTimes, error) {
	resp, err := c.fetch(ctx, region)
	if err != nil {
		return domain.FastingTimes{}, err
	}

	return domain.FastingTimes{
		Region:    region,
		Date:      resp.Data.Date.Readable,
		Weekday:   resp.Data.Date.Hijri.Weekday.En,
		HijriDate: hijriDate(resp),
		Suhoor:    clockHHMM(resp.Data.Timings["Fajr"]),
		Iftar:     clockHHMM(resp.Data.Timings["Maghrib"]),
	}, nil
}

func (c *Client) fetch(ctx context.Context, region string) (timingsResponse, error) {
	city := APICity(region)

	params := url.Values{}
	params.Set("city", city)
	params.Set("country", "Uzbekistan")
	params.Set("method", "2")
	params.Set("school", "1")

	endpoint := fmt.Sprintf("%s/v1/timingsByCity?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return timingsResponse{}, fmt.Errorf("build prayer times request: %w", err)
	}

	c.logger.WithFields(logging.Fields{
		"event": "prayer_request",
		"city":  city,
	}).Debug("requesting prayer times")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return timingsResponse{}, fmt.Errorf("request prayer times: %w", err)
	}
	defer resp.Body.Close()

	var parsed timingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return timingsResponse{}, fmt.Errorf("decode prayer times response: %w", err)
	}

	if parsed.Code != http.StatusOK {
		return timingsResponse{}, fmt.Errorf("%w: city %s, code %d", ErrProviderRejected, city, parsed.Code)
	}

	return parsed, nil
}

func hijriDate(resp timingsResponse) string {
	hijri := resp.Data.Date.Hijri
	return fmt.Sprintf("%s %s %s", hijri.Day, hijri.Month.En, hijri.Year)
}

// clockHHMM trims provider clock values like "05:41 (+05)" down to HH:MM.
func clockHHMM(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexByte(raw, ' '); i >= 0 {
		raw = raw[:i]
	}
	if len(raw) > 5 {
		raw = raw[:5]
	}

	return raw
}
