package bancore

import (
	"maps"
	"slices"
)

// Position is a holding of a single instrument: how many shares are held and
// the running weighted-average acquisition cost per share. A position with
// zero quantity is removed from the account's holdings.
type Position struct {
	Quantity Quantity `json:"quantity"`
	AvgCost  Money    `json:"averageCost"`
}

// Account represents one customer of the bank.
//
// The CPF is the unique key of the account, normalized to digits only, and is
// immutable after registration. The statement is ordered newest first.
type Account struct {
	Name             string              `json:"name"`
	CPF              string              `json:"cpf"`
	Password         string              `json:"password"`
	Balance          Money               `json:"balance"`
	Statement        []Transaction       `json:"statement"`
	Holdings         map[string]Position `json:"holdings"`
	DividendsClaimed map[string]bool     `json:"dividendsClaimed"`
}

// NewAccount creates an account with a zero balance and empty statement,
// holdings and dividend claims. The CPF must already be normalized and valid.
func NewAccount(name, cpf, password string) *Account {
	return &Account{
		Name:             name,
		CPF:              cpf,
		Password:         password,
		Balance:          BRL(0),
		Statement:        make([]Transaction, 0),
		Holdings:         make(map[string]Position),
		DividendsClaimed: make(map[string]bool),
	}
}

// normalize defaults fields that older durable records may lack, so that
// loaded accounts always carry a non-nil statement, holdings and claim set.
func (a *Account) normalize() {
	if a.Statement == nil {
		a.Statement = make([]Transaction, 0)
	}
	if a.Holdings == nil {
		a.Holdings = make(map[string]Position)
	}
	if a.DividendsClaimed == nil {
		a.DividendsClaimed = make(map[string]bool)
	}
	if a.Balance.cur == "" {
		a.Balance.cur = DefaultCurrency
	}
}

// record prepends a statement entry, keeping the newest entry first.
func (a *Account) record(tx Transaction) {
	a.Statement = append([]Transaction{tx}, a.Statement...)
}

// Position returns the holding for a ticker, if any.
func (a *Account) Position(ticker string) (Position, bool) {
	p, ok := a.Holdings[ticker]
	return p, ok
}

// Tickers returns the held tickers in sorted order.
func (a *Account) Tickers() []string {
	tickers := slices.Collect(maps.Keys(a.Holdings))
	slices.Sort(tickers)
	return tickers
}

// acquire folds a purchase into the holding: the average cost becomes
// (held*avg + total) / (held + qty) and the quantity grows by qty.
func (a *Account) acquire(ticker string, qty Quantity, total Money) {
	pos := a.Holdings[ticker]
	held := pos.Quantity
	cost := pos.AvgCost.Mul(held).Add(total)
	pos.AvgCost = cost.Div(held.Add(qty))
	pos.Quantity = held.Add(qty)
	a.Holdings[ticker] = pos
}

// dispose removes qty shares from the holding. The average cost is unchanged
// by a sale; the position is deleted when it reaches zero. The caller must
// have checked that the position covers qty.
func (a *Account) dispose(ticker string, qty Quantity) {
	pos := a.Holdings[ticker]
	pos.Quantity = pos.Quantity.Sub(qty)
	if pos.Quantity.IsZero() {
		delete(a.Holdings, ticker)
		return
	}
	a.Holdings[ticker] = pos
}

// claimed reports whether the dividend identified by key was already paid.
func (a *Account) claimed(key string) bool { return a.DividendsClaimed[key] }

// claim marks the dividend identified by key as paid.
func (a *Account) claim(key string) { a.DividendsClaimed[key] = true }

// snapshot returns a deep copy, so that callers can render an account without
// holding a reference into the collection being persisted.
func (a *Account) snapshot() *Account {
	cp := *a
	cp.Statement = slices.Clone(a.Statement)
	cp.Holdings = maps.Clone(a.Holdings)
	cp.DividendsClaimed = maps.Clone(a.DividendsClaimed)
	return &cp
}

// MarshalJSON implements json.Marshaler. The cost basis is written at full
// precision: it feeds the weighted-average fold on the next purchase, and
// rounding it to cents would compound across reload cycles. Payable amounts
// keep the currency-fraction rounding of Money.
func (p Position) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("quantity", p.Quantity)
	w.Append("averageCost", p.AvgCost.value)
	return w.MarshalJSON()
}

// claimKey builds the composite key marking a dividend payment as settled.
func claimKey(ticker string, payment Date) string {
	return ticker + "_" + payment.String()
}

// MarshalJSON implements json.Marshaler with a stable field order matching
// the durable layout.
func (a *Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", a.Name)
	w.Append("cpf", a.CPF)
	w.Append("password", a.Password)
	w.Append("balance", a.Balance)
	w.Append("statement", a.Statement)
	w.Append("holdings", a.Holdings)
	w.Append("dividendsClaimed", a.DividendsClaimed)
	return w.MarshalJSON()
}
