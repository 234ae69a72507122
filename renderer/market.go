package renderer

import (
	"github.com/obarbosa/bancore"
)

// Market renders the simulated quotes board.
func Market(quotes []bancore.Quote) string {
	r := newRenderer()
	r.Printf("## Market\n\n")
	r.Printf("| Ticker | Name | Price | Var%% |\n")
	r.Printf("|:---|:---|---:|---:|\n")
	for _, q := range quotes {
		r.Printf("| %s | %s | %s | %s%% |\n", q.Ticker, q.Name, q.Price, q.Variation)
	}
	return r.String()
}

// Settlement renders the outcome of a dividend settlement run.
func Settlement(st *bancore.Settlement) string {
	r := newRenderer()
	r.Printf("## Dividends Settled\n\n")
	if len(st.Payments) == 0 {
		r.Printf("Nothing due today.\n")
		return r.String()
	}

	r.Printf("| Ticker | Amount |\n")
	r.Printf("|:---|---:|\n")
	for _, p := range st.Payments {
		r.Printf("| %s | %s |\n", p.Ticker, p.Amount)
	}
	r.Printf("\nTotal received: **%s**\n", st.Total)
	return r.String()
}
