package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"resty.dev/v3"
)

// Nominatim asks heavy users to cache results, and repeated keystrokes from
// the storefront address box produce plenty of duplicate queries.
const cacheTTL = 24 * time.Hour

// Suggestion is one normalized address-autocomplete result.
type Suggestion struct {
	DisplayName string `json:"displayName"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	PlaceID     int64  `json:"placeId"`
	Type        string `json:"type"`
}

type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	PlaceID     int64  `json:"place_id"`
	Type        string `json:"type"`
}

// Client proxies address searches to the Nominatim public geocoding API so
// the browser never talks to it directly.
type Client struct {
	restyClient *resty.Client
	redisDb     *redis.Client
	baseURL     string
}

func NewClient(restyClient *resty.Client, redisDb *redis.Client, baseURL string) *Client {
	return &Client{
		restyClient: restyClient,
		redisDb:     redisDb,
		baseURL:     baseURL,
	}
}

// Search returns up to limit suggestions for a free-form query, pinned to
// the Philippines.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Suggestion, error) {
	cacheKey := fmt.Sprintf("geocode:%d:%s", limit, query)

	if c.redisDb != nil {
		if cached, err := c.redisDb.Get(ctx, cacheKey).Result(); err == nil {
			var suggestions []Suggestion
			if err = json.Unmarshal([]byte(cached), &suggestions); err == nil {
				return suggestions, nil
			}
		}
	}

	var results []nominatimResult

	resp, err := c.restyClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":              query,
			"format":         "json",
			"countrycodes":   "ph",
			"limit":          fmt.Sprintf("%d", limit),
			"addressdetails": "1",
		}).
		SetHeader("User-Agent", "beracah-storefront/1.0").
		SetResult(&results).
		Get(c.baseURL + "/search")
	if err != nil {
		return nil, fmt.Errorf("failed to query geocoding API: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("geocoding API returned status %d", resp.StatusCode())
	}

	suggestions := make([]Suggestion, 0, len(results))
	for _, r := range results {
		suggestions = append(suggestions, Suggestion{
			DisplayName: r.DisplayName,
			Lat:         r.Lat,
			Lon:         r.Lon,
			PlaceID:     r.PlaceID,
			Type:        r.Type,
		})
	}

	if c.redisDb != nil {
		if encoded, err := json.Marshal(suggestions); err == nil {
			c.redisDb.Set(ctx, cacheKey, encoded, cacheTTL)
		}
	}

	return suggestions, nil
}
