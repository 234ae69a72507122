package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/obarbosa/bancore/renderer"
)

type statementCmd struct {
	credentials
}

func (c *statementCmd) Name() string     { return "statement" }
func (c *statementCmd) Synopsis() string { return "Show the transaction history." }
func (c *statementCmd) Usage() string {
	return `bnc statement -cpf <cpf> -password <password>:
  Show the transaction history, newest first.
`
}

func (c *statementCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	svc := newService()
	account, err := c.authenticate(svc)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Statement(account))
	return subcommands.ExitSuccess
}
