package bancore

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFetchQuotes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"results": [
				{"symbol": "PETR4", "regularMarketPrice": 36.12, "currency": "BRL"},
				{"symbol": "VALE3", "regularMarketPrice": 67.90},
				{"symbol": "XXXX3", "regularMarketPrice": 10.00}
			]
		}`)
	}))
	defer srv.Close()

	prices, err := FetchQuotes(srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prices) != 3 {
		t.Fatalf("got %d prices, want 3", len(prices))
	}
	if !prices["PETR4"].Equal(decimal.NewFromFloat(36.12)) {
		t.Errorf("PETR4 = %s, want 36.12", prices["PETR4"])
	}
}

func TestFetchQuotes_BadFeed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>`},
		{"missing results", `{"quotes": []}`},
		{"symbol not a string", `{"results": [{"symbol": 42, "regularMarketPrice": 1.0}]}`},
		{"price not a number", `{"results": [{"symbol": "PETR4", "regularMarketPrice": "1.0"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()
			if _, err := FetchQuotes(srv.Client(), srv.URL); err == nil {
				t.Errorf("expected an error")
			}
		})
	}
}

func TestFetchQuotes_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()
	if _, err := FetchQuotes(srv.Client(), srv.URL); err == nil {
		t.Errorf("expected an error on HTTP 500")
	}
}

func TestApplyFeed(t *testing.T) {
	m := testMarket()
	updated := m.ApplyFeed(map[string]decimal.Decimal{
		"PETR4": decimal.NewFromFloat(100),
		"XXXX3": decimal.NewFromFloat(10), // not in the catalog, skipped
	})
	if len(updated) != 1 || updated[0] != "PETR4" {
		t.Fatalf("updated = %v, want [PETR4]", updated)
	}

	// the walk now oscillates around the live price.
	q, err := m.Quote("PETR4")
	if err != nil {
		t.Fatal(err)
	}
	if q.Price.LessThan(BRL(98)) || BRL(102).LessThan(q.Price) {
		t.Errorf("price %s not re-based around 100", q.Price)
	}
}
