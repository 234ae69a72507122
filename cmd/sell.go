package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/obarbosa/bancore/renderer"
)

type sellCmd struct {
	credentials
	ticker   string
	quantity string
	price    string
}

func (c *sellCmd) Name() string     { return "sell" }
func (c *sellCmd) Synopsis() string { return "Sell shares of a held instrument." }
func (c *sellCmd) Usage() string {
	return `bnc sell -cpf <cpf> -password <password> -ticker <ticker> -qty <shares> [-price <value>]:
  Sell a whole number of held shares, crediting the proceeds. The
  average cost of the remaining position is untouched. Without -price
  the current market quote is used.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	c.credentials.SetFlags(f)
	f.StringVar(&c.ticker, "ticker", "", "Instrument ticker, e.g. PETR4.")
	f.StringVar(&c.quantity, "qty", "", "Number of shares (whole).")
	f.StringVar(&c.price, "price", "", "Unit price; defaults to the current quote.")
}

func (c *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
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
	account, err = svc.Sell(account.CPF, c.ticker, qty, price)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Portfolio(account))
	printMarkdown(renderer.Balance(account))
	return subcommands.ExitSuccess
}
