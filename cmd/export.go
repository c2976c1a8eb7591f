package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/engeclima/comercial"
	"github.com/google/subcommands"
	"github.com/xuri/excelize/v2"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	criteriaFlags
	output string
	xlsx   bool
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export sales to a CSV or Excel file" }
func (*exportCmd) Usage() string {
	return `vendas export [-o <file>] [-xlsx] [-seller <seller>] [-q <term>] [-year <year>]

  Exports the filtered sales as a semicolon-delimited CSV file
  (Dados_Vendas.csv by default), or as an Excel workbook with -xlsx.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.criteriaFlags.SetFlags(f)
	f.StringVar(&c.output, "o", "", "Output file (defaults to "+comercial.ExportFilename+")")
	f.BoolVar(&c.xlsx, "xlsx", false, "Write an Excel workbook instead of CSV")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	sales := comercial.FilterSales(book.Sales(), crit)

	output := c.output
	if output == "" {
		output = comercial.ExportFilename
		if c.xlsx {
			output = "Dados_Vendas.xlsx"
		}
	}

	if c.xlsx {
		err = exportExcel(sales, output)
	} else {
		err = exportCSV(sales, output)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Export error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully exported %d sales to %s\n", len(sales), output)
	return subcommands.ExitSuccess
}

func exportCSV(sales []*comercial.Sale, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return comercial.EncodeSales(f, sales)
}

func exportExcel(sales []*comercial.Sale, filename string) error {
	f := excelize.NewFile()
	const sheet = "Sheet1"

	headers := []string{
		"Data", "Vendedor", "Empresa", "Projeto", "O.S.",
		"Área", "Cliente/Serviço", "Valor da Venda", "Status", "Pagamento",
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for row, s := range sales {
		values := []interface{}{
			s.Date.String(),
			string(s.Seller),
			string(s.Company),
			s.Project,
			s.OrderSheet,
			string(s.Area),
			s.ClientService,
			s.Value.Amount().InexactFloat64(),
			string(s.Status),
			s.Payment.Amount().InexactFloat64(),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return f.SaveAs(filename)
}
