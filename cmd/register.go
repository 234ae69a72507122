package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type registerCmd struct {
	name     string
	cpf      string
	password string
}

func (c *registerCmd) Name() string     { return "register" }
func (c *registerCmd) Synopsis() string { return "Create a new account." }
func (c *registerCmd) Usage() string {
	return `bnc register -name <name> -cpf <cpf> -password <password>:
  Create a new account with a zero balance. The CPF check digits are
  validated; punctuation is accepted and stripped.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Account holder name.")
	f.StringVar(&c.cpf, "cpf", "", "Account CPF (punctuation accepted).")
	f.StringVar(&c.password, "password", "", "Account password.")
}

func (c *registerCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	svc := newService()
	account, err := svc.Register(c.name, c.cpf, c.password)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Account created for %s (CPF %s).\n", account.Name, account.CPF)
	return subcommands.ExitSuccess
}
