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

// followUpCmd holds the flags for the 'followup' subcommand.
type followUpCmd struct {
	seller string
	date   string
}

func (*followUpCmd) Name() string     { return "followup" }
func (*followUpCmd) Synopsis() string { return "display pending quote follow-ups" }
func (*followUpCmd) Usage() string {
	return `vendas followup [-d <date>] [-seller <seller>]

  Partitions pending quote follow-ups into overdue, due today and upcoming,
  each sorted by follow-up date.
`
}

func (c *followUpCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.seller, "seller", string(comercial.AllSellers), "Seller scope, or TODOS for the whole team")
	f.StringVar(&c.date, "d", comercial.Today().String(), "Reference date for the classification")
}

func (c *followUpCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	view := &renderer.FollowUpView{
		Scope:  scope,
		On:     on,
		Groups: comercial.NewFollowUp(book.Quotes(), scope, on),
	}
	printMarkdown(renderer.FollowUpMarkdown(view))
	return subcommands.ExitSuccess
}
