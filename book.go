package comercial

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a record with the given ID is not in the book.
var ErrNotFound = errors.New("record not found")

// Book holds a snapshot of all sales and quotes. Records are kept in
// chronological order; reports read the snapshot and never mutate it.
type Book struct {
	sales  []*Sale
	quotes []*Quote

	salesByID  map[string]*Sale
	quotesByID map[string]*Quote
}

// NewBook creates an empty book.
func NewBook() *Book {
	return &Book{
		salesByID:  make(map[string]*Sale),
		quotesByID: make(map[string]*Quote),
	}
}

// Sales returns the sales in chronological order. The returned slice is a
// copy; callers may filter and reorder it freely.
func (b *Book) Sales() []*Sale { return slices.Clone(b.sales) }

// Quotes returns the quotes in chronological proposal order. The returned
// slice is a copy.
func (b *Book) Quotes() []*Quote { return slices.Clone(b.quotes) }

// Sale returns the sale with the given ID, or ErrNotFound.
func (b *Book) Sale(id string) (*Sale, error) {
	s, ok := b.salesByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Quote returns the quote with the given ID, or ErrNotFound.
func (b *Book) Quote(id string) (*Quote, error) {
	q, ok := b.quotesByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return q, nil
}

// AddSale validates the sale and appends it to the book, assigning an ID
// and creation timestamp when missing.
func (b *Book) AddSale(s *Sale) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	b.sales = append(b.sales, s)
	b.salesByID[s.ID] = s
	b.stableSort()
	return nil
}

// AddSales appends a batch of sales. The batch is validated first in full:
// either every sale enters the book or none does.
func (b *Book) AddSales(sales []*Sale) error {
	for _, s := range sales {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	for _, s := range sales {
		if err := b.AddSale(s); err != nil {
			return err
		}
	}
	return nil
}

// AddQuote validates the quote and appends it to the book, assigning an ID
// and creation timestamp when missing.
func (b *Book) AddQuote(q *Quote) error {
	if err := q.Validate(); err != nil {
		return err
	}
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now()
	}
	b.quotes = append(b.quotes, q)
	b.quotesByID[q.ID] = q
	b.stableSort()
	return nil
}

// UpdateSale replaces the stored sale with the same ID.
func (b *Book) UpdateSale(s *Sale) error {
	old, ok := b.salesByID[s.ID]
	if !ok {
		return ErrNotFound
	}
	if err := s.Validate(); err != nil {
		return err
	}
	s.CreatedAt = old.CreatedAt
	s.UpdatedAt = time.Now()
	*old = *s
	b.stableSort()
	return nil
}

// UpdateQuote replaces the stored quote with the same ID.
func (b *Book) UpdateQuote(q *Quote) error {
	old, ok := b.quotesByID[q.ID]
	if !ok {
		return ErrNotFound
	}
	if err := q.Validate(); err != nil {
		return err
	}
	q.CreatedAt = old.CreatedAt
	q.UpdatedAt = time.Now()
	*old = *q
	b.stableSort()
	return nil
}

// DeleteSale removes the sale with the given ID.
func (b *Book) DeleteSale(id string) error {
	if _, ok := b.salesByID[id]; !ok {
		return ErrNotFound
	}
	delete(b.salesByID, id)
	b.sales = slices.DeleteFunc(b.sales, func(s *Sale) bool { return s.ID == id })
	return nil
}

// DeleteQuote removes the quote with the given ID.
func (b *Book) DeleteQuote(id string) error {
	if _, ok := b.quotesByID[id]; !ok {
		return ErrNotFound
	}
	delete(b.quotesByID, id)
	b.quotes = slices.DeleteFunc(b.quotes, func(q *Quote) bool { return q.ID == id })
	return nil
}

// stableSort keeps records in chronological order, creation order breaking
// ties, so the book file is canonical.
func (b *Book) stableSort() {
	slices.SortStableFunc(b.sales, func(a, c *Sale) int {
		if a.Date.Before(c.Date) {
			return -1
		}
		if a.Date.After(c.Date) {
			return 1
		}
		return a.CreatedAt.Compare(c.CreatedAt)
	})
	slices.SortStableFunc(b.quotes, func(a, c *Quote) int {
		if a.ProposalDate.Before(c.ProposalDate) {
			return -1
		}
		if a.ProposalDate.After(c.ProposalDate) {
			return 1
		}
		return a.CreatedAt.Compare(c.CreatedAt)
	})
}
