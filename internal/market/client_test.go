package market

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"donationsvc/internal/domain"
)

func TestFetchMarketDataReturnsRawBody(t *testing.T) {
	body := `{"charityIndex":1.07,"sector":"nonprofit"}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/charity-insights" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	c := NewClient(Options{MarketDataURL: srv.URL + "/charity-insights"}, zerolog.Nop())

	payload, err := c.FetchMarketData(context.Background())
	if err != nil {
		t.Fatalf("FetchMarketData returned error: %v", err)
	}
	if string(payload) != body {
		t.Fatalf("payload = %s, want %s", payload, body)
	}
}

func TestFetchDonationTrendsUsesTrendsEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/monthly-report" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"month":"2026-08"}`))
	}))
	defer srv.Close()

	c := NewClient(Options{
		MarketDataURL: srv.URL + "/charity-insights",
		TrendsURL:     srv.URL + "/monthly-report",
	}, zerolog.Nop())

	payload, err := c.FetchDonationTrends(context.Background())
	if err != nil {
		t.Fatalf("FetchDonationTrends returned error: %v", err)
	}
	if string(payload) != `{"month":"2026-08"}` {
		t.Fatalf("unexpected payload: %s", payload)
	}
}

func TestFetchMarketDataWrapsTextualBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("scheduled maintenance"))
	}))
	defer srv.Close()

	c := NewClient(Options{MarketDataURL: srv.URL}, zerolog.Nop())

	payload, err := c.FetchMarketData(context.Background())
	if err != nil {
		t.Fatalf("FetchMarketData returned error: %v", err)
	}
	if !json.Valid(payload) {
		t.Fatalf("payload must always be embeddable JSON, got %s", payload)
	}
	var text string
	if err := json.Unmarshal(payload, &text); err != nil {
		t.Fatalf("expected a JSON string, got %s", payload)
	}
	if text != "scheduled maintenance" {
		t.Fatalf("text = %q, want original body", text)
	}
}

func TestFetchMarketDataNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(Options{MarketDataURL: srv.URL}, zerolog.Nop())

	_, err := c.FetchMarketData(context.Background())
	var marketErr *domain.MarketDataError
	if !errors.As(err, &marketErr) {
		t.Fatalf("expected MarketDataError, got %v", err)
	}
}

func TestFetchMarketDataUnreachableEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close()

	c := NewClient(Options{MarketDataURL: endpoint, Timeout: time.Second}, zerolog.Nop())

	_, err := c.FetchMarketData(context.Background())
	var marketErr *domain.MarketDataError
	if !errors.As(err, &marketErr) {
		t.Fatalf("expected MarketDataError, got %v", err)
	}
}

func TestFetchMarketDataHonorsContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	c := NewClient(Options{MarketDataURL: srv.URL}, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.FetchMarketData(ctx)
	if err == nil {
		t.Fatalf("expected error after context cancellation")
	}
}

func TestClientReusesSharedTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(Options{MarketDataURL: srv.URL}, zerolog.Nop())
	first := c.client
	for i := 0; i < 3; i++ {
		if _, err := c.FetchMarketData(context.Background()); err != nil {
			t.Fatalf("fetch %d returned error: %v", i, err)
		}
	}
	if c.client != first {
		t.Fatalf("http client must be shared across calls")
	}
}
