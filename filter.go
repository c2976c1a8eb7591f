package comercial

import "strings"

// Criteria narrows a record snapshot. The zero value matches everything.
//
// Seller scope is a trust boundary (which person's records are visible) and
// is always evaluated before the convenience filters; use ScopeSales or
// ScopeQuotes when only the boundary matters.
type Criteria struct {
	Seller Seller // AllSellers (or "") for no scoping
	Search string // case-insensitive substring, empty for no search
	Year   int    // 0 for all years
	From   Date   // zero for unbounded
	To     Date   // zero for unbounded
}

func (c Criteria) scope() Seller {
	if c.Seller == "" {
		return AllSellers
	}
	return c.Seller
}

// MatchSale reports whether the sale satisfies every criterion. Cheap
// predicates run before the substring scan.
func (c Criteria) MatchSale(s *Sale) bool {
	if !c.scope().Matches(s.Seller) {
		return false
	}
	if c.Year != 0 && s.Date.Year() != c.Year {
		return false
	}
	if !c.From.IsZero() && s.Date.Before(c.From) {
		return false
	}
	if !c.To.IsZero() && s.Date.After(c.To) {
		return false
	}
	if c.Search == "" {
		return true
	}
	term := strings.ToLower(c.Search)
	return containsFold(term, string(s.Company), s.Project, s.OrderSheet, s.ClientService)
}

// MatchQuote reports whether the quote satisfies every criterion, with the
// year and date range applied to the proposal date.
func (c Criteria) MatchQuote(q *Quote) bool {
	if !c.scope().Matches(q.Seller) {
		return false
	}
	if c.Year != 0 && q.ProposalDate.Year() != c.Year {
		return false
	}
	if !c.From.IsZero() && q.ProposalDate.Before(c.From) {
		return false
	}
	if !c.To.IsZero() && q.ProposalDate.After(c.To) {
		return false
	}
	if c.Search == "" {
		return true
	}
	term := strings.ToLower(c.Search)
	return containsFold(term, q.ClientName, string(q.Company), string(q.Area), q.ContactSource, q.Notes)
}

func containsFold(term string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// FilterSales returns the sales matching the criteria, preserving order.
func FilterSales(sales []*Sale, c Criteria) []*Sale {
	out := make([]*Sale, 0, len(sales))
	for _, s := range sales {
		if c.MatchSale(s) {
			out = append(out, s)
		}
	}
	return out
}

// FilterQuotes returns the quotes matching the criteria, preserving order.
func FilterQuotes(quotes []*Quote, c Criteria) []*Quote {
	out := make([]*Quote, 0, len(quotes))
	for _, q := range quotes {
		if c.MatchQuote(q) {
			out = append(out, q)
		}
	}
	return out
}

// ScopeSales applies only the seller trust boundary.
func ScopeSales(sales []*Sale, scope Seller) []*Sale {
	return FilterSales(sales, Criteria{Seller: scope})
}

// ScopeQuotes applies only the seller trust boundary.
func ScopeQuotes(quotes []*Quote, scope Seller) []*Quote {
	return FilterQuotes(quotes, Criteria{Seller: scope})
}
