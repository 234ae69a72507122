package renderer

import (
	"fmt"
	"io"

	"github.com/obarbosa/bancore"
)

// Portfolio renders the account's holdings with their average cost.
func Portfolio(account *bancore.Account) string {
	r := newRenderer()
	r.Printf("## Portfolio\n\n")
	if len(account.Holdings) == 0 {
		r.Printf("Empty portfolio.\n")
		return r.String()
	}

	r.Printf("| Ticker | Quantity | Avg Cost |\n")
	r.Printf("|:---|---:|---:|\n")
	for _, ticker := range account.Tickers() {
		pos, _ := account.Position(ticker)
		r.Printf("| %s | %s | %s |\n", ticker, pos.Quantity, pos.AvgCost)
	}
	return r.String()
}

// DividendCalendar renders the upcoming payments projected for the account's
// holdings: per-share value, payment date, and the expected amount for the
// held quantity.
func DividendCalendar(schedule map[string]bancore.DividendEntry, account *bancore.Account) string {
	r := newRenderer()
	r.Printf("## Upcoming Dividends\n\n")

	section := Header(func(w io.Writer) {
		fmt.Fprintf(w, "| Ticker | Payment Date | Per Share | Projected | Status |\n")
		fmt.Fprintf(w, "|:---|:---|---:|---:|:---|\n")
	})
	for _, ticker := range account.Tickers() {
		entry, ok := schedule[ticker]
		if !ok {
			continue
		}
		pos, _ := account.Position(ticker)
		if !pos.Quantity.IsPositive() {
			continue
		}
		section.PrintHeader(r)
		r.Printf("| %s | %s | %s | %s | %s |\n",
			ticker, entry.PaymentDate, entry.PerShare, entry.PerShare.Mul(pos.Quantity), entry.Status)
	}
	if !section.Printed() {
		r.Printf("No dividends scheduled for the current holdings.\n")
	}
	return r.String()
}
