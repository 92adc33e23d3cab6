package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/windcaddy/backend/internal/config"
)

func testClient(baseURL string) *Client {
	return &Client{
		baseURL:  baseURL,
		apiKey:   "test-key",
		http:     &http.Client{Timeout: 2 * time.Second},
		cacheTTL: time.Minute,
	}
}

func TestFetchConditions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/current" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("location") != "denver" {
			t.Errorf("unexpected location %q", r.URL.Query().Get("location"))
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("API key not forwarded")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"temperature":65,"humidity":30,"pressure":24.9,"wind_speed":12,"wind_direction":90,"altitude":5280}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	cond, err := c.FetchConditions(context.Background(), "denver")
	if err != nil {
		t.Fatalf("FetchConditions failed: %v", err)
	}

	if cond.Temperature != 65 {
		t.Errorf("temperature = %v, want 65", cond.Temperature)
	}
	if cond.Altitude != 5280 {
		t.Errorf("altitude = %v, want 5280", cond.Altitude)
	}
	if cond.WindDirection != 90 {
		t.Errorf("wind direction = %v, want 90", cond.WindDirection)
	}
}

func TestFetchConditionsProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	if _, err := c.FetchConditions(context.Background(), "denver"); err == nil {
		t.Fatal("expected error from non-200 provider response")
	}
}

func TestFetchConditionsBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	if _, err := c.FetchConditions(context.Background(), "denver"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFetchConditionsRequiresLocation(t *testing.T) {
	c := testClient("http://example.invalid")
	if _, err := c.FetchConditions(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty location")
	}
}

func TestNewClientUnconfigured(t *testing.T) {
	if c := NewClient(&config.Config{}, nil); c != nil {
		t.Fatal("NewClient should return nil when the provider is not configured")
	}
}
