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

// dashboardCmd holds the flags for the 'dashboard' subcommand.
type dashboardCmd struct {
	criteriaFlags
	date string
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the commercial dashboard" }
func (*dashboardCmd) Usage() string {
	return `vendas dashboard [-d <date>] [-seller <seller>] [-year <year>] [-q <term>]

  Displays the dashboard KPIs for the filtered snapshot, together with the
  receivables aging table and the follow-up summary. Aging and follow-ups
  honor only the seller scope.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	c.criteriaFlags.SetFlags(f)
	f.StringVar(&c.date, "d", comercial.Today().String(), "Reference date for aging and follow-ups")
}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	crit, err := c.criteria()
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

	sales := comercial.FilterSales(book.Sales(), crit)
	quotes := comercial.FilterQuotes(book.Quotes(), crit)

	view := &renderer.DashboardView{
		Scope: crit.Seller,
		On:    on,
		Stats: comercial.NewDashboard(sales, quotes),
		// Aging and follow-ups deliberately ignore search and date filters.
		Aging:     comercial.NewAging(book.Sales(), crit.Seller, on),
		FollowUps: comercial.NewFollowUp(book.Quotes(), crit.Seller, on),
	}
	printMarkdown(renderer.DashboardMarkdown(view))
	return subcommands.ExitSuccess
}
