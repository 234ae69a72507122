package bancore

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func testMarket() *MarketData {
	m := NewMarketData()
	m.rng = rand.New(rand.NewSource(42))
	m.now = func() time.Time { return time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC) }
	return m
}

func TestMarketData_QuoteBounds(t *testing.T) {
	m := testMarket()
	base := decimal.NewFromFloat(35.50)
	lo := base.Mul(decimal.NewFromFloat(0.98))
	hi := base.Mul(decimal.NewFromFloat(1.02))

	for i := 0; i < 200; i++ {
		q, err := m.Quote("PETR4")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Price.LessThan(BRL(lo)) || BRL(hi).LessThan(q.Price) {
			t.Fatalf("price %s outside [%s, %s]", q.Price, lo, hi)
		}
		if q.Variation.Abs().GreaterThan(decimal.NewFromInt(2)) {
			t.Fatalf("variation %s%% outside +-2%%", q.Variation)
		}
	}
}

func TestMarketData_QuoteUnknown(t *testing.T) {
	m := testMarket()
	if _, err := m.Quote("XXXX3"); err == nil {
		t.Errorf("expected an error for an unknown ticker")
	}
}

func TestMarketData_Quotes(t *testing.T) {
	m := testMarket()
	quotes := m.Quotes()
	want := []string{"AAPL34", "ITUB4", "PETR4", "VALE3", "WEGE3"}
	if len(quotes) != len(want) {
		t.Fatalf("got %d quotes, want %d", len(quotes), len(want))
	}
	for i, q := range quotes {
		if q.Ticker != want[i] {
			t.Errorf("quotes[%d] = %q, want %q", i, q.Ticker, want[i])
		}
		if q.Name == "" {
			t.Errorf("quotes[%d] has no name", i)
		}
	}
}

func TestMarketData_DividendSchedule(t *testing.T) {
	m := testMarket()
	today := NewDate(2026, 8, 31)
	schedule := m.DividendSchedule()

	tests := []struct {
		ticker   string
		perShare Money
		payment  Date
		status   string
	}{
		{"PETR4", BRL(1.45), today, "today"},
		{"VALE3", BRL(0.90), today.Add(5), "in 5 days"},
		{"ITUB4", BRL(0.35), today.Add(15), "in 15 days"},
		{"WEGE3", BRL(0.20), today.Add(30), "in 30 days"},
	}
	for _, tt := range tests {
		t.Run(tt.ticker, func(t *testing.T) {
			entry, ok := schedule[tt.ticker]
			if !ok {
				t.Fatalf("missing schedule entry")
			}
			if !entry.PerShare.Equal(tt.perShare) {
				t.Errorf("per share = %s, want %s", entry.PerShare, tt.perShare)
			}
			if entry.PaymentDate != tt.payment {
				t.Errorf("payment date = %v, want %v", entry.PaymentDate, tt.payment)
			}
			if entry.Status != tt.status {
				t.Errorf("status = %q, want %q", entry.Status, tt.status)
			}
		})
	}

	// AAPL34 is in the catalog but pays no dividend.
	if _, ok := schedule["AAPL34"]; ok {
		t.Errorf("AAPL34 should not appear in the dividend schedule")
	}
}

func TestMarketData_SetBasePrice(t *testing.T) {
	m := testMarket()
	live := decimal.NewFromFloat(100)
	m.SetBasePrice("PETR4", live)

	lo, hi := BRL(98), BRL(102)
	for i := 0; i < 50; i++ {
		q, err := m.Quote("PETR4")
		if err != nil {
			t.Fatal(err)
		}
		if q.Price.LessThan(lo) || hi.LessThan(q.Price) {
			t.Fatalf("price %s not re-based around %s", q.Price, live)
		}
	}

	// unknown tickers and non-positive prices are ignored.
	m.SetBasePrice("XXXX3", live)
	if m.Has("XXXX3") {
		t.Errorf("SetBasePrice must not grow the catalog")
	}
	m.SetBasePrice("PETR4", decimal.Zero)
	q, _ := m.Quote("PETR4")
	if q.Price.LessThan(lo) {
		t.Errorf("a non-positive price must not re-base the walk")
	}
}
