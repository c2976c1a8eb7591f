// Package cmd implements the CLI application to manage the commercial book.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/engeclima/comercial"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&dashboardCmd{}, "reports")
	c.Register(&agingCmd{}, "reports")
	c.Register(&followUpCmd{}, "reports")
	c.Register(&listCmd{}, "reports")

	c.Register(&addSaleCmd{}, "records")
	c.Register(&addQuoteCmd{}, "records")

	c.Register(&importCmd{}, "files")
	c.Register(&exportCmd{}, "files")
	c.Register(&fmtCmd{}, "files")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("book-file", "vendas.jsonl", "Path to the book file containing sales and quotes (JSONL format)")

// DecodeBookFile decodes the app book file, or an empty book if the file
// does not exist yet.
func DecodeBookFile() (*comercial.Book, error) {
	f, err := os.Open(*bookFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, book file does not exist, starting an empty book instead")
		return comercial.NewBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open book file %q: %w", *bookFile, err)
	}
	defer f.Close()
	return comercial.DecodeBook(f)
}

// SaveBook rewrites the app book file in canonical form.
func SaveBook(b *comercial.Book) error {
	f, err := os.Create(*bookFile)
	if err != nil {
		return fmt.Errorf("cannot write book file %q: %w", *bookFile, err)
	}
	defer f.Close()
	return comercial.EncodeBook(f, b)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer is unavailable.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// criteriaFlags is the shared flag set for commands that narrow the snapshot.
type criteriaFlags struct {
	seller string
	search string
	year   int
	from   string
	to     string
}

func (c *criteriaFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.seller, "seller", string(comercial.AllSellers), "Seller scope, or TODOS for the whole team")
	f.StringVar(&c.search, "q", "", "Free-text search term")
	f.IntVar(&c.year, "year", 0, "Restrict to a calendar year (0 for all)")
	f.StringVar(&c.from, "from", "", "Start date (inclusive)")
	f.StringVar(&c.to, "to", "", "End date (inclusive)")
}

func (c *criteriaFlags) criteria() (comercial.Criteria, error) {
	scope, err := comercial.ParseScope(c.seller)
	if err != nil {
		return comercial.Criteria{}, err
	}
	crit := comercial.Criteria{Seller: scope, Search: c.search, Year: c.year}
	if c.from != "" {
		if crit.From, err = comercial.ParseDate(c.from); err != nil {
			return comercial.Criteria{}, err
		}
	}
	if c.to != "" {
		if crit.To, err = comercial.ParseDate(c.to); err != nil {
			return comercial.Criteria{}, err
		}
	}
	return crit, nil
}
