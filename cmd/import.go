package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/engeclima/comercial"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	seller string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import sales from a delimited CSV file" }
func (*importCmd) Usage() string {
	return `vendas import -seller <seller> <file.csv>

  Imports sales from a semicolon-delimited CSV file. Every imported row is
  assigned to the given seller; the file's own seller column, if any, is
  ignored. The import is all-or-nothing: the first invalid row rejects the
  whole file and nothing is written.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.seller, "seller", "", "Seller that will own every imported sale (required)")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one file argument\n")
		return subcommands.ExitUsageError
	}
	seller, err := comercial.ParseSeller(c.seller)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	data, err := os.ReadFile(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		return subcommands.ExitFailure
	}

	sales, err := comercial.ImportSales(string(data), seller)
	if errors.Is(err, comercial.ErrEmptyFile) {
		fmt.Fprintf(os.Stderr, "Warning: %q contains no data rows, nothing to import.\n", f.Arg(0))
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Import error: %v\n", err)
		return subcommands.ExitFailure
	}

	// Validation is complete: only now may records reach the book.
	book, err := DecodeBookFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding book: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := book.AddSales(sales); err != nil {
		fmt.Fprintf(os.Stderr, "Import error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully imported %d sales.\n", len(sales))
	return subcommands.ExitSuccess
}
