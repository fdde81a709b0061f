// Package mosque searches the Overpass points-of-interest provider for
// mosques around a coordinate and formats the results.
package mosque

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"taqvim_bot/internal/domain"
	"taqvim_bot/internal/geo"
	"taqvim_bot/internal/logging"
)

// DefaultBaseURL is the public Overpass interpreter endpoint.
const DefaultBaseURL = "https://overpass-api.de/api/interpreter"

const (
	requestTimeout = 5 * time.Second
	searchRadiusM  = 3000
	maxCandidates  = 15
	maxResults     = 5
)

// Client queries nearby mosques.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Entry
}

// NewClient constructs a mosque search client. An empty baseURL selects the
// public Overpass endpoint.
func NewClient(baseURL string, logger *logrus.Entry) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = logging.Logger()
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

type overpassResponse struct {
	Elements []struct {
		Lat    float64 `json:"lat"`
		Lon    float64 `json:"lon"`
		Center *struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"center"`
		Tags map[string]string `json:"tags"`
	} `json:"elements"`
}

// Search returns up to five mosques within 3 km of the point, sorted by
// distance. Timeouts and transport failures yield an empty list; the feature
// does not distinguish "found nothing" from "provider unreachable".
func (c *Client) Search(ctx context.Context, lat, lon float64) []domain.Mosque {
	query := fmt.Sprintf(`
[out:json][timeout:5];
(
  node["amenity"="place_of_worship"]["religion"="muslim"](around:%d,%f,%f);
  way["amenity"="place_of_worship"]["religion"="muslim"](around:%d,%f,%f);
);
out center;
`, searchRadiusM, lat, lon, searchRadiusM, lat, lon)

	params := url.Values{}
	params.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		c.logger.WithField("event", "mosque_request_error").WithError(err).Warn("failed to build mosque search request")
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithField("event", "mosque_search_error").WithError(err).Warn("mosque search failed")
		return nil
	}
	defer resp.Body.Close()

	var parsed overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.logger.WithField("event", "mosque_decode_error").WithError(err).Warn("failed to decode mosque search response")
		return nil
	}

	return rank(parsed, lat, lon)
}

func rank(parsed overpassResponse, lat, lon float64) []domain.Mosque {
	elements := parsed.Elements
	if len(elements) > maxCandidates {
		elements = elements[:maxCandidates]
	}

	mosques := make([]domain.Mosque, 0, len(elements))
	for _, element := range elements {
		elementLat, elementLon := element.Lat, element.Lon
		if elementLat == 0 && elementLon == 0 && element.Center != nil {
			elementLat, elementLon = element.Center.Lat, element.Center.Lon
		}
		if elementLat == 0 && elementLon == 0 {
			continue
		}

		distance := geo.Distance(lat, lon, elementLat, elementLon)

		mosques = append(mosques, domain.Mosque{
			Name:           element.Tags["name"],
			Lat:            elementLat,
			Lon:            elementLon,
			DistanceMeters: int(distance + 0.5),
			Address:        address(element.Tags),
		})
	}

	sort.Slice(mosques, func(i, j int) bool {
		return mosques[i].DistanceMeters < mosques[j].DistanceMeters
	})

	if len(mosques) > maxResults {
		mosques = mosques[:maxResults]
	}

	return mosques
}

func address(tags map[string]string) string {
	var parts []string
	street := tags["addr:street"]
	if number := tags["addr:housenumber"]; number != "" {
		street = strings.TrimSpace(street + " " + number)
	}
	if street != "" {
		parts = append(parts, street)
	}
	if city := tags["addr:city"]; city != "" {
		parts = append(parts, city)
	}

	return strings.Join(parts, ", ")
}
