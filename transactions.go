package bancore

// Kind is a typed string identifying what a statement entry records.
type Kind string

// Transaction kinds appearing in an account statement.
const (
	KindDeposit          Kind = "deposit"
	KindWithdrawal       Kind = "withdrawal"
	KindTransferSent     Kind = "transfer-sent"
	KindTransferReceived Kind = "transfer-received"
	KindInvestment       Kind = "investment"
	KindDivestment       Kind = "divestment"
	KindDividend         Kind = "dividend"
)

// Transaction is one immutable statement entry. The amount is signed:
// negative for outflows (withdrawals, transfers sent, investments) and
// positive for inflows.
type Transaction struct {
	Time   Timestamp `json:"date"`
	Kind   Kind      `json:"kind"`
	Amount Money     `json:"amount"`
	Detail string    `json:"detail,omitempty"`
}

// NewTransaction creates a statement entry.
func NewTransaction(at Timestamp, kind Kind, amount Money, detail string) Transaction {
	return Transaction{Time: at, Kind: kind, Amount: amount, Detail: detail}
}

// Equal reports whether two entries record the same event.
func (t Transaction) Equal(o Transaction) bool {
	return t.Time.Equal(o.Time) && t.Kind == o.Kind && t.Amount.Equal(o.Amount) && t.Detail == o.Detail
}

// MarshalJSON implements json.Marshaler with a stable field order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", t.Time)
	w.Append("kind", t.Kind)
	w.Append("amount", t.Amount)
	w.Optional("detail", t.Detail)
	return w.MarshalJSON()
}
