package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/obarbosa/bancore/renderer"
)

type withdrawCmd struct {
	credentials
	amount string
}

func (c *withdrawCmd) Name() string     { return "withdraw" }
func (c *withdrawCmd) Synopsis() string { return "Debit an amount from the balance." }
func (c *withdrawCmd) Usage() string {
	return `bnc withdraw -cpf <cpf> -password <password> -amount <value>:
  Debit a positive amount from the account balance. The withdrawal is
  rejected when it would drive the balance negative.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	c.credentials.SetFlags(f)
	f.StringVar(&c.amount, "amount", "", "Amount to withdraw, e.g. 100 or 99.90.")
}

func (c *withdrawCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	svc := newService()
	account, err := c.authenticate(svc)
	if err != nil {
		return fail(err)
	}
	amount, err := parseMoney(c.amount)
	if err != nil {
		return fail(err)
	}
	account, err = svc.Withdraw(account.CPF, amount)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Balance(account))
	return subcommands.ExitSuccess
}
