package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/obarbosa/bancore/renderer"
)

type dividendsCmd struct {
	credentials
}

func (c *dividendsCmd) Name() string     { return "dividends" }
func (c *dividendsCmd) Synopsis() string { return "Settle due dividends and show the calendar." }
func (c *dividendsCmd) Usage() string {
	return `bnc dividends -cpf <cpf> -password <password>:
  Credit every due, unclaimed dividend for the held positions, then
  show the upcoming payment calendar. Settlement is idempotent: a
  second run on the same day pays nothing.
`
}

func (c *dividendsCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	svc := newService()
	account, err := c.authenticate(svc)
	if err != nil {
		return fail(err)
	}
	st, err := svc.SettleDividends(account.CPF)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Settlement(st))
	printMarkdown(renderer.DividendCalendar(svc.Market().DividendSchedule(), st.Account))
	return subcommands.ExitSuccess
}
