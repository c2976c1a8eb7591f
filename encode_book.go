package comercial

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The book file is a JSONL stream: one record per line, a "kind" property
// discriminating sales from quotes. It is meant to stay human readable and
// trivially mergeable.

// RecordKind is a typed string identifying a book line.
type RecordKind string

const (
	KindSale  RecordKind = "sale"
	KindQuote RecordKind = "quote"
)

type jsale struct {
	Kind RecordKind `json:"kind"`
	Sale
}

type jquote struct {
	Kind RecordKind `json:"kind"`
	// FollowUpDate is decoded leniently: a malformed date is logged and
	// dropped, it never fails the whole book.
	FollowUpDate string `json:"followUpDate,omitempty"`
	Quote
}

// DecodeBook decodes a book from a stream of JSONL data, sorting records
// chronologically.
func DecodeBook(r io.Reader) (*Book, error) {
	book := NewBook()
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Kind RecordKind `json:"kind"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %d %q: %w", line, string(lineBytes), err)
		}

		switch identifier.Kind {
		case KindSale:
			var js jsale
			if err := json.Unmarshal(lineBytes, &js); err != nil {
				return nil, fmt.Errorf("invalid sale in line %d: %w", line, err)
			}
			s := js.Sale
			if err := book.AddSale(&s); err != nil {
				return nil, fmt.Errorf("invalid sale in line %d: %w", line, err)
			}
		case KindQuote:
			var jq jquote
			if err := json.Unmarshal(lineBytes, &jq); err != nil {
				return nil, fmt.Errorf("invalid quote in line %d: %w", line, err)
			}
			q := jq.Quote
			if jq.FollowUpDate != "" {
				d, err := parseFileDate(jq.FollowUpDate)
				if err != nil {
					log.Printf("quote %q: dropping invalid follow-up date %q", q.ID, jq.FollowUpDate)
				} else {
					q.FollowUpDate = d
				}
			}
			if err := book.AddQuote(&q); err != nil {
				return nil, fmt.Errorf("invalid quote in line %d: %w", line, err)
			}
		default:
			return nil, fmt.Errorf("unknown record kind %q in line %d", identifier.Kind, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading book: %w", err)
	}
	return book, nil
}

// EncodeBook writes the book to 'w' in canonical JSONL form: sales first,
// then quotes, each in chronological order.
func EncodeBook(w io.Writer, b *Book) error {
	for _, s := range b.sales {
		if err := encodeLine(w, jsale{Kind: KindSale, Sale: *s}); err != nil {
			return err
		}
	}
	for _, q := range b.quotes {
		jq := jquote{Kind: KindQuote, Quote: *q}
		if !q.FollowUpDate.IsZero() {
			jq.FollowUpDate = q.FollowUpDate.String()
		}
		jq.Quote.FollowUpDate = Date{} // serialized by the outer field
		if err := encodeLine(w, jq); err != nil {
			return err
		}
	}
	return nil
}

// parseFileDate parses a date from a data file. Unlike ParseDate it accepts
// no relative forms: a stored date must stand on its own.
func parseFileDate(s string) (Date, error) {
	on, err := time.Parse(readDateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, want format %q: %w", s, DateFormat, err)
	}
	return NewDate(on.Date()), nil
}

func encodeLine(w io.Writer, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("cannot marshal record: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write book: %w", err)
	}
	return nil
}
