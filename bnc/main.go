// Command bnc is the bancore command line interface.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/obarbosa/bancore/cmd"
	"github.com/posener/complete/v2"
)

func main() {
	// Shell completion: returns immediately when not running as a
	// completion helper.
	sub := make(map[string]*complete.Command)
	for _, name := range cmd.CommandNames() {
		sub[name] = &complete.Command{}
	}
	(&complete.Command{Sub: sub}).Complete("bnc")

	commander := subcommands.NewCommander(flag.CommandLine, "bnc")
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
