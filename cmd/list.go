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

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct {
	criteriaFlags
	quotes bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list sales or quotes matching a filter" }
func (*listCmd) Usage() string {
	return `vendas list [-quotes] [-seller <seller>] [-q <term>] [-year <year>] [-from <date>] [-to <date>]

  Lists sales (or quotes with -quotes) matching the filter, in
  chronological order.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	c.criteriaFlags.SetFlags(f)
	f.BoolVar(&c.quotes, "quotes", false, "List quotes instead of sales")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	crit, err := c.criteria()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, err := DecodeBookFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding book: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.quotes {
		printMarkdown(renderer.QuotesMarkdown(comercial.FilterQuotes(book.Quotes(), crit)))
	} else {
		printMarkdown(renderer.SalesMarkdown(comercial.FilterSales(book.Sales(), crit)))
	}
	return subcommands.ExitSuccess
}
