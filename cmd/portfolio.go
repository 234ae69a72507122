package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/obarbosa/bancore/renderer"
)

type portfolioCmd struct {
	credentials
}

func (c *portfolioCmd) Name() string     { return "portfolio" }
func (c *portfolioCmd) Synopsis() string { return "Show holdings and average costs." }
func (c *portfolioCmd) Usage() string {
	return `bnc portfolio -cpf <cpf> -password <password>:
  Show the held positions with their quantity and weighted average cost.
`
}

func (c *portfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	svc := newService()
	account, err := c.authenticate(svc)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Portfolio(account))
	return subcommands.ExitSuccess
}
