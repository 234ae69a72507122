package bancore

import (
	"fmt"
	"maps"
	"math/rand"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// instrument is one tradable entry of the market catalog.
type instrument struct {
	name string
	base decimal.Decimal // base price the random walk oscillates around
}

// dividendRule schedules a payment of perShare at today+offsetDays.
type dividendRule struct {
	perShare   decimal.Decimal
	offsetDays int
}

// Quote is one simulated price observation.
type Quote struct {
	Ticker    string
	Name      string
	Price     Money
	Variation decimal.Decimal // percent move against the base price
}

// DividendEntry is one row of the dividend calendar.
type DividendEntry struct {
	PerShare    Money
	PaymentDate Date
	Status      string
}

// MarketData supplies simulated instrument quotes and the dividend schedule.
// Prices follow a bounded random walk around a fixed base price and are
// regenerated on every call; nothing is persisted.
type MarketData struct {
	catalog   map[string]instrument
	dividends map[string]dividendRule

	rng *rand.Rand
	now func() time.Time
}

// NewMarketData returns the provider with the fixed instrument catalog.
func NewMarketData() *MarketData {
	return &MarketData{
		catalog: map[string]instrument{
			"PETR4":  {name: "Petrobras", base: decimal.NewFromFloat(35.50)},
			"VALE3":  {name: "Vale", base: decimal.NewFromFloat(68.20)},
			"ITUB4":  {name: "Itaú Unibanco", base: decimal.NewFromFloat(32.10)},
			"AAPL34": {name: "Apple BDR", base: decimal.NewFromFloat(45.80)},
			"WEGE3":  {name: "WEG", base: decimal.NewFromFloat(40.00)},
		},
		dividends: map[string]dividendRule{
			"PETR4": {perShare: decimal.NewFromFloat(1.45), offsetDays: 0},
			"VALE3": {perShare: decimal.NewFromFloat(0.90), offsetDays: 5},
			"ITUB4": {perShare: decimal.NewFromFloat(0.35), offsetDays: 15},
			"WEGE3": {perShare: decimal.NewFromFloat(0.20), offsetDays: 30},
		},
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
}

// Has reports whether the ticker is in the catalog.
func (m *MarketData) Has(ticker string) bool {
	_, ok := m.catalog[ticker]
	return ok
}

// Tickers returns the catalog tickers in sorted order.
func (m *MarketData) Tickers() []string {
	tickers := slices.Collect(maps.Keys(m.catalog))
	slices.Sort(tickers)
	return tickers
}

// Quote returns a fresh simulated observation for one ticker: the base price
// moved by a uniform variation in [-2%, +2%], rounded to cents.
func (m *MarketData) Quote(ticker string) (Quote, error) {
	ins, ok := m.catalog[ticker]
	if !ok {
		return Quote{}, fmt.Errorf("%w: %q", ErrUnknownTicker, ticker)
	}

	variation := decimal.NewFromFloat(m.rng.Float64()*0.04 - 0.02)
	price := ins.base.Mul(decimal.NewFromInt(1).Add(variation)).Round(2)
	return Quote{
		Ticker:    ticker,
		Name:      ins.name,
		Price:     BRL(price),
		Variation: variation.Mul(decimal.NewFromInt(100)).Round(2),
	}, nil
}

// Quotes returns one observation per catalog ticker, in sorted ticker order.
func (m *MarketData) Quotes() []Quote {
	quotes := make([]Quote, 0, len(m.catalog))
	for _, ticker := range m.Tickers() {
		q, _ := m.Quote(ticker)
		quotes = append(quotes, q)
	}
	return quotes
}

// DividendSchedule computes the calendar relative to the current date using
// the fixed per-ticker offsets. Tickers without a rule (AAPL34) pay nothing.
func (m *MarketData) DividendSchedule() map[string]DividendEntry {
	today := DateOf(m.now())
	schedule := make(map[string]DividendEntry, len(m.dividends))
	for ticker, rule := range m.dividends {
		status := "today"
		if rule.offsetDays != 0 {
			status = fmt.Sprintf("in %d days", rule.offsetDays)
		}
		schedule[ticker] = DividendEntry{
			PerShare:    BRL(rule.perShare),
			PaymentDate: today.Add(rule.offsetDays),
			Status:      status,
		}
	}
	return schedule
}

// SetBasePrice overrides the base price of a known ticker, e.g. from a live
// quote feed. Unknown tickers are ignored: the catalog is fixed.
func (m *MarketData) SetBasePrice(ticker string, price decimal.Decimal) {
	ins, ok := m.catalog[ticker]
	if !ok || !price.IsPositive() {
		return
	}
	ins.base = price
	m.catalog[ticker] = ins
}
