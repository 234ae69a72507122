// Package cmd implements the CLI application of the bancore bank simulator.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/obarbosa/bancore"
	"github.com/shopspring/decimal"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&registerCmd{}, "accounts")
	c.Register(&loginCmd{}, "accounts")

	c.Register(&depositCmd{}, "transactions")
	c.Register(&withdrawCmd{}, "transactions")
	c.Register(&pixCmd{}, "transactions")
	c.Register(&statementCmd{}, "transactions")

	c.Register(&buyCmd{}, "investments")
	c.Register(&sellCmd{}, "investments")
	c.Register(&portfolioCmd{}, "investments")
	c.Register(&marketCmd{}, "investments")
	c.Register(&dividendsCmd{}, "investments")
}

// CommandNames lists every registered subcommand, for shell completion.
func CommandNames() []string {
	return []string{
		"register", "login",
		"deposit", "withdraw", "pix", "statement",
		"buy", "sell", "portfolio", "market", "dividends",
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataFile = flag.String("data", "bank_data.json", "Path to the account store file (JSON)")

// newService wires the ledger to the file store and the simulated market.
func newService() *bancore.LedgerService {
	return bancore.NewLedgerService(bancore.NewFileStore(*dataFile), bancore.NewMarketData())
}

// printMarkdown renders a markdown report to the terminal. If the fancy
// rendering fails the raw markdown is still printed.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail reports an error and returns the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}

// credentials is the explicit session value: every command authenticates
// with it instead of relying on an ambient logged-in user.
type credentials struct {
	cpf      string
	password string
}

func (c *credentials) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.cpf, "cpf", "", "Account CPF (punctuation accepted).")
	f.StringVar(&c.password, "password", "", "Account password.")
}

func (c *credentials) authenticate(svc *bancore.LedgerService) (*bancore.Account, error) {
	return svc.Authenticate(c.cpf, c.password)
}

// parseMoney parses a user-typed decimal amount.
func parseMoney(s string) (bancore.Money, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return bancore.Money{}, fmt.Errorf("%q: %w", s, bancore.ErrInvalidAmount)
	}
	return bancore.BRL(v), nil
}

// parseQuantity parses a user-typed share count.
func parseQuantity(s string) (bancore.Quantity, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return bancore.Quantity{}, fmt.Errorf("%q: %w", s, bancore.ErrInvalidAmount)
	}
	return bancore.Q(v), nil
}
