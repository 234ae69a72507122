package renderer

import (
	"github.com/obarbosa/bancore"
)

// Balance renders the account balance card.
func Balance(account *bancore.Account) string {
	r := newRenderer()
	r.Printf("# Hello, %s\n\n", account.Name)
	r.Printf("Available balance: **%s**\n", account.Balance)
	return r.String()
}

// Statement renders the transaction history, newest first.
func Statement(account *bancore.Account) string {
	r := newRenderer()
	r.Printf("## Statement\n\n")
	if len(account.Statement) == 0 {
		r.Printf("No transactions yet.\n")
		return r.String()
	}

	r.Printf("| Date | Kind | Amount | Detail |\n")
	r.Printf("|:---|:---|---:|:---|\n")
	for _, tx := range account.Statement {
		r.Printf("| %s | %s | %s | %s |\n", tx.Time, tx.Kind, tx.Amount.SignedString(), tx.Detail)
	}
	return r.String()
}
