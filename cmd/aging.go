package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/engeclima/comercial"
	"github.com/engeclima/comercial/renderer"
	"github.com/google/subcommands"
)

// agingCmd holds the flags for the 'aging' subcommand.
type agingCmd struct {
	seller string
	date   string
}

func (*agingCmd) Name() string     { return "aging" }
func (*agingCmd) Synopsis() string { return "display the receivables aging report" }
func (*agingCmd) Usage() string {
	return `vendas aging [-d <date>] [-seller <seller>]

  Buckets outstanding receivables by age in days (0-30, 31-60, 61-90, 90+).
  Cancelled sales and fully paid sales are excluded.
`
}

func (c *agingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.seller, "seller", string(comercial.AllSellers), "Seller scope, or TODOS for the whole team")
	f.StringVar(&c.date, "d", comercial.Today().String(), "Reference date for the age computation")
}

func (c *agingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	scope, err := comercial.ParseScope(c.seller)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	on, err := comercial.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, err := DecodeBookFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding book: %v\n", err)
		return subcommands.ExitFailure
	}

	view := &renderer.AgingView{
		Scope:   scope,
		On:      on,
		Buckets: comercial.NewAging(book.Sales(), scope, on),
	}
	printMarkdown(renderer.AgingMarkdown(view))
	return subcommands.ExitSuccess
}
