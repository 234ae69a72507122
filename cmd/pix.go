package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/obarbosa/bancore/renderer"
)

type pixCmd struct {
	credentials
	to     string
	amount string
}

func (c *pixCmd) Name() string     { return "pix" }
func (c *pixCmd) Synopsis() string { return "Transfer to another account by CPF." }
func (c *pixCmd) Usage() string {
	return `bnc pix -cpf <cpf> -password <password> -to <recipient cpf> -amount <value>:
  Transfer a positive amount to the account registered under the
  recipient CPF. Both statement entries are written atomically.
`
}

func (c *pixCmd) SetFlags(f *flag.FlagSet) {
	c.credentials.SetFlags(f)
	f.StringVar(&c.to, "to", "", "Recipient CPF (punctuation accepted).")
	f.StringVar(&c.amount, "amount", "", "Amount to transfer, e.g. 100 or 99.90.")
}

func (c *pixCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	svc := newService()
	account, err := c.authenticate(svc)
	if err != nil {
		return fail(err)
	}
	amount, err := parseMoney(c.amount)
	if err != nil {
		return fail(err)
	}
	account, err = svc.Transfer(account.CPF, c.to, amount)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Balance(account))
	return subcommands.ExitSuccess
}
