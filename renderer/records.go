package renderer

import "github.com/engeclima/comercial"

// SalesMarkdown renders a table of sales records.
func SalesMarkdown(sales []*comercial.Sale) string {
	return renderTemplate("sales", "sales.md", nil, sales)
}

// QuotesMarkdown renders a table of quote records.
func QuotesMarkdown(quotes []*comercial.Quote) string {
	return renderTemplate("quotes", "quotes.md", nil, quotes)
}
