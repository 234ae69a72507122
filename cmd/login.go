package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/obarbosa/bancore/renderer"
)

type loginCmd struct {
	credentials
}

func (c *loginCmd) Name() string     { return "login" }
func (c *loginCmd) Synopsis() string { return "Authenticate and show the balance card." }
func (c *loginCmd) Usage() string {
	return `bnc login -cpf <cpf> -password <password>:
  Authenticate against the store. Any dividend due today is credited
  automatically before the balance card is printed.
`
}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	svc := newService()
	account, err := c.authenticate(svc)
	if err != nil {
		return fail(err)
	}

	// dividends due today are credited on login, like a bank would
	// post them overnight.
	st, err := svc.SettleDividends(account.CPF)
	if err != nil {
		return fail(err)
	}
	if len(st.Payments) > 0 {
		printMarkdown(renderer.Settlement(st))
	}
	printMarkdown(renderer.Balance(st.Account))
	return subcommands.ExitSuccess
}
