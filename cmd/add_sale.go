package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/engeclima/comercial"
	"github.com/google/subcommands"
)

// addSaleCmd holds the flags for the 'add-sale' subcommand.
type addSaleCmd struct {
	seller        string
	date          string
	company       string
	project       string
	orderSheet    string
	area          string
	clientService string
	value         string
	status        string
	payment       string
}

func (*addSaleCmd) Name() string     { return "add-sale" }
func (*addSaleCmd) Synopsis() string { return "record a new sale in the book" }
func (*addSaleCmd) Usage() string {
	return `vendas add-sale -seller <seller> -company <company> -area <area> -project <project> -client <client/service> -value <amount> [-d <date>] [-os <ref>] [-status <status>] [-payment <amount>]

  Records a sale. Company, area and status must be members of their fixed
  sets; value and payment are rounded to 2 decimal places.
`
}

func (c *addSaleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.seller, "seller", "", "Owning seller (required)")
	f.StringVar(&c.date, "d", comercial.Today().String(), "Sale date")
	f.StringVar(&c.company, "company", "", "Issuing company")
	f.StringVar(&c.project, "project", "", "Project code")
	f.StringVar(&c.orderSheet, "os", "", "Order sheet reference")
	f.StringVar(&c.area, "area", "", "Operating area")
	f.StringVar(&c.clientService, "client", "", "Client / service description")
	f.StringVar(&c.value, "value", "0", "Sales value")
	f.StringVar(&c.status, "status", string(comercial.SaleNotStarted), "Sale status")
	f.StringVar(&c.payment, "payment", "0", "Amount received to date")
}

func (c *addSaleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sale, err := c.sale()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, err := DecodeBookFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding book: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := book.AddSale(sale); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully recorded sale %s\n", sale.ID)
	return subcommands.ExitSuccess
}

func (c *addSaleCmd) sale() (*comercial.Sale, error) {
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
	status, err := comercial.ParseSaleStatus(c.status)
	if err != nil {
		return nil, err
	}
	value, err := comercial.ParseMoney(c.value)
	if err != nil {
		return nil, err
	}
	payment, err := comercial.ParseMoney(c.payment)
	if err != nil {
		return nil, err
	}
	return &comercial.Sale{
		Seller:        seller,
		Date:          date,
		Company:       company,
		Project:       c.project,
		OrderSheet:    c.orderSheet,
		Area:          area,
		ClientService: c.clientService,
		Value:         value.Round2(),
		Status:        status,
		Payment:       payment.Round2(),
	}, nil
}
