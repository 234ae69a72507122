package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/obarbosa/bancore/renderer"
)

type depositCmd struct {
	credentials
	amount string
}

func (c *depositCmd) Name() string     { return "deposit" }
func (c *depositCmd) Synopsis() string { return "Credit an amount to the balance." }
func (c *depositCmd) Usage() string {
	return `bnc deposit -cpf <cpf> -password <password> -amount <value>:
  Credit a positive amount to the account balance.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	c.credentials.SetFlags(f)
	f.StringVar(&c.amount, "amount", "", "Amount to deposit, e.g. 100 or 99.90.")
}

func (c *depositCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	svc := newService()
	account, err := c.authenticate(svc)
	if err != nil {
		return fail(err)
	}
	amount, err := parseMoney(c.amount)
	if err != nil {
		return fail(err)
	}
	account, err = svc.Deposit(account.CPF, amount)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Balance(account))
	return subcommands.ExitSuccess
}
