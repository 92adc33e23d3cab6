package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/windcaddy/backend/internal/config"
	"github.com/windcaddy/backend/internal/physics"
)

// Client fetches current conditions from the configured provider. The base
// URL and API key are injected via config; nothing is hard-coded here. Fetch
// failures are logged and returned to the caller; this layer defines no
// retry or recovery policy.
type Client struct {
	baseURL  string
	apiKey   string
	http     *http.Client
	rdb      *redis.Client
	cacheTTL time.Duration
}

var defaultClient *Client

// NewClient builds a weather client from config. Returns nil if the provider
// is not configured.
func NewClient(cfg *config.Config, rdb *redis.Client) *Client {
	if cfg.WeatherAPIBaseURL == "" || cfg.WeatherAPIKey == "" {
		return nil
	}
	return &Client{
		baseURL:  cfg.WeatherAPIBaseURL,
		apiKey:   cfg.WeatherAPIKey,
		http:     &http.Client{Timeout: time.Duration(cfg.WeatherTimeoutSecs) * time.Second},
		rdb:      rdb,
		cacheTTL: time.Duration(cfg.WeatherCacheMinutes) * time.Minute,
	}
}

// SetDefault installs the package-level client used by the API handlers.
func SetDefault(c *Client) {
	defaultClient = c
}

// Default returns the installed client, or nil when weather is unconfigured.
func Default() *Client {
	return defaultClient
}

// providerResponse is the subset of the provider payload we consume.
type providerResponse struct {
	Temperature   float64 `json:"temperature"`
	Humidity      float64 `json:"humidity"`
	Pressure      float64 `json:"pressure"`
	WindSpeed     float64 `json:"wind_speed"`
	WindDirection float64 `json:"wind_direction"`
	Altitude      float64 `json:"altitude"`
}

// FetchConditions returns current conditions for a location, serving from the
// Redis cache when a recent fetch exists.
func (c *Client) FetchConditions(ctx context.Context, location string) (physics.Conditions, error) {
	if location == "" {
		return physics.Conditions{}, fmt.Errorf("location is required")
	}

	cacheKey := "weather:" + location
	if c.rdb != nil {
		if cached, err := c.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cond physics.Conditions
			if err := json.Unmarshal([]byte(cached), &cond); err == nil {
				return cond, nil
			}
			// Corrupt cache entry: drop it and fall through to a live fetch.
			c.rdb.Del(ctx, cacheKey)
		}
	}

	cond, err := c.fetch(ctx, location)
	if err != nil {
		log.Printf("[WEATHER] Fetch failed for %q: %v", location, err)
		return physics.Conditions{}, err
	}

	if c.rdb != nil {
		if data, err := json.Marshal(cond); err == nil {
			if err := c.rdb.SetEx(ctx, cacheKey, data, c.cacheTTL).Err(); err != nil {
				log.Printf("[WEATHER] Failed to cache conditions for %q: %v", location, err)
			}
		}
	}

	return cond, nil
}

func (c *Client) fetch(ctx context.Context, location string) (physics.Conditions, error) {
	u := fmt.Sprintf("%s/current?location=%s&key=%s", c.baseURL, url.QueryEscape(location), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return physics.Conditions{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return physics.Conditions{}, fmt.Errorf("weather provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return physics.Conditions{}, fmt.Errorf("weather provider returned %d: %s", resp.StatusCode, string(body))
	}

	var pr providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return physics.Conditions{}, fmt.Errorf("failed to decode weather response: %w", err)
	}

	return physics.Conditions{
		Temperature:   pr.Temperature,
		Humidity:      pr.Humidity,
		Pressure:      pr.Pressure,
		WindSpeed:     pr.WindSpeed,
		WindDirection: pr.WindDirection,
		Altitude:      pr.Altitude,
	}, nil
}
