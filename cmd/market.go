package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/obarbosa/bancore"
	"github.com/obarbosa/bancore/renderer"
)

type marketCmd struct {
	feed string
}

func (c *marketCmd) Name() string     { return "market" }
func (c *marketCmd) Synopsis() string { return "Show the simulated quotes board." }
func (c *marketCmd) Usage() string {
	return `bnc market [-feed <url>]:
  Show a fresh quote for every catalog instrument. With -feed, live
  prices are fetched first (brapi-style JSON) and re-base the simulator
  for the tickers the feed reports.
`
}

func (c *marketCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.feed, "feed", "", "Quote feed URL (optional).")
}

func (c *marketCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	market := bancore.NewMarketData()
	if c.feed != "" {
		prices, err := bancore.FetchQuotes(bancore.FeedClient(), c.feed)
		if err != nil {
			return fail(err)
		}
		updated := market.ApplyFeed(prices)
		if len(updated) > 0 {
			fmt.Printf("Live prices applied: %s\n", strings.Join(updated, ", "))
		}
	}
	printMarkdown(renderer.Market(market.Quotes()))
	return subcommands.ExitSuccess
}
