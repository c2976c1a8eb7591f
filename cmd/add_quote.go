package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/engeclima/comercial"
	"github.com/google/subcommands"
)

// addQuoteCmd holds the flags for the 'add-quote' subcommand.
type addQuoteCmd struct {
	seller        string
	clientName    string
	company       string
	area          string
	contactSource string
	date          string
	value         string
	status        string
	validity      string
	followUp      string
	followUpIn    int
	notes         string
}

func (*addQuoteCmd) Name() string     { return "add-quote" }
func (*addQuoteCmd) Synopsis() string { return "record a new price quote in the book" }
func (*addQuoteCmd) Usage() string {
	return `vendas add-quote -seller <seller> -client <name> -company <company> -area <area> -value <amount> [-d <date>] [-status <status>] [-validity <date>] [-follow-up <date> | -follow-up-in <days>] [-source <contact>] [-notes <text>]

  Records a quote. The follow-up date may be given explicitly or derived
  from the proposal date plus an offset in days.
`
}

func (c *addQuoteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.seller, "seller", "", "Owning seller (required)")
	f.StringVar(&c.clientName, "client", "", "Client name")
	f.StringVar(&c.company, "company", "", "Issuing company")
	f.StringVar(&c.area, "area", "", "Operating area")
	f.StringVar(&c.contactSource, "source", "", "Contact source")
	f.StringVar(&c.date, "d", comercial.Today().String(), "Proposal date")
	f.StringVar(&c.value, "value", "0", "Proposed value")
	f.StringVar(&c.status, "status", string(comercial.QuoteSent), "Quote status")
	f.StringVar(&c.validity, "validity", "", "Validity date")
	f.StringVar(&c.followUp, "follow-up", "", "Explicit follow-up date")
	f.IntVar(&c.followUpIn, "follow-up-in", 0, "Follow-up in N days after the proposal date")
	f.StringVar(&c.notes, "notes", "", "Free-text notes")
}

func (c *addQuoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	quote, err := c.quote()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, err := DecodeBookFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding book: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := book.AddQuote(quote); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully recorded quote %s\n", quote.ID)
	return subcommands.ExitSuccess
}

func (c *addQuoteCmd) quote() (*comercial.Quote, error) {
	seller, err := comercial.ParseSeller(c.seller)
	if err != nil {
		return nil, err
	}
	date, err := comercial.ParseDate(c.date)
	if err != nil {
		return nil, err
	}
	company, err := comercial.ParseCompany(c.company)
	if err != nil {
		return nil, err
	}
	area, err := comercial.ParseArea(c.area)
	if err != nil {
		return nil, err
	}
	status, err := comercial.ParseQuoteStatus(c.status)
	if err != nil {
		return nil, err
	}
	value, err := comercial.ParseMoney(c.value)
	if err != nil {
		return nil, err
	}

	q := &comercial.Quote{
		Seller:        seller,
		ClientName:    c.clientName,
		Company:       company,
		Area:          area,
		ContactSource: c.contactSource,
		ProposalDate:  date,
		ProposedValue: value.Round2(),
		Status:        status,
		Notes:         c.notes,
	}
	if c.validity != "" {
		if q.Validity, err = comercial.ParseDate(c.validity); err != nil {
			return nil, err
		}
	}
	switch {
	case c.followUp != "":
		if q.FollowUpDate, err = comercial.ParseDate(c.followUp); err != nil {
			return nil, err
		}
	case c.followUpIn > 0:
		q.FollowUpDate = comercial.DeriveFollowUpDate(date, c.followUpIn)
	}
	return q, nil
}
