package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/obarbosa/bancore"
	"github.com/obarbosa/bancore/renderer"
)

type buyCmd struct {
	credentials
	ticker   string
	quantity string
	price    string
}

func (c *buyCmd) Name() string     { return "buy" }
func (c *buyCmd) Synopsis() string { return "Buy shares of a catalog instrument." }
func (c *buyCmd) Usage() string {
	return `bnc buy -cpf <cpf> -password <password> -ticker <ticker> -qty <shares> [-price <value>]:
  Buy a whole number of shares, debiting the total from the balance and
  folding it into the position's weighted average cost. Without -price
  the current market quote is used.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	c.credentials.SetFlags(f)
	f.StringVar(&c.ticker, "ticker", "", "Instrument ticker, e.g. PETR4.")
	f.StringVar(&c.quantity, "qty", "", "Number of shares (whole).")
	f.StringVar(&c.price, "price", "", "Unit price; defaults to the current quote.")
}

func (c *buyCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	svc := newService()
	account, err := c.authenticate(svc)
	if err != nil {
		return fail(err)
	}
	qty, err := parseQuantity(c.quantity)
	if err != nil {
		return fail(err)
	}
	price, err := tradePrice(svc, c.ticker, c.price)
	if err != nil {
		return fail(err)
	}
	account, err = svc.Buy(account.CPF, c.ticker, qty, price)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Portfolio(account))
	printMarkdown(renderer.Balance(account))
	return subcommands.ExitSuccess
}

// tradePrice resolves the unit price for a trade: the explicit flag value
// when given, the current market quote otherwise.
func tradePrice(svc *bancore.LedgerService, ticker, flagValue string) (bancore.Money, error) {
	if flagValue != "" {
		return parseMoney(flagValue)
	}
	q, err := svc.Market().Quote(ticker)
	if err != nil {
		return bancore.Money{}, err
	}
	return q.Price, nil
}
