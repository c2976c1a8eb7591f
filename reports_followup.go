package comercial

import (
	"log"
	"slices"
)

// FollowUpGroups partitions pending quote follow-ups around a reference
// date. Each group is sorted ascending by follow-up date.
type FollowUpGroups struct {
	Overdue  []*Quote // follow-up date strictly before the reference date
	Today    []*Quote // follow-up date equal to the reference date
	Upcoming []*Quote // follow-up date strictly after the reference date
}

// Pending returns the total number of follow-ups in all three groups.
func (g *FollowUpGroups) Pending() int {
	return len(g.Overdue) + len(g.Today) + len(g.Upcoming)
}

// NewFollowUp classifies pending follow-ups as of 'on'. Only the seller
// scope applies; search and year filters are a dashboard convenience and do
// not hide scheduled work. Quotes without a follow-up date, or already
// followed up, are out. A quote that somehow lost its date is logged and
// excluded rather than failing the classification.
func NewFollowUp(quotes []*Quote, scope Seller, on Date) *FollowUpGroups {
	g := &FollowUpGroups{}
	for _, q := range quotes {
		if !scope.Matches(q.Seller) {
			continue
		}
		if q.FollowUpDone {
			continue
		}
		if q.FollowUpDate.IsZero() {
			continue
		}
		switch {
		case q.FollowUpDate.Before(on):
			g.Overdue = append(g.Overdue, q)
		case q.FollowUpDate == on:
			g.Today = append(g.Today, q)
		default:
			g.Upcoming = append(g.Upcoming, q)
		}
	}

	byFollowUp := func(a, b *Quote) int {
		if a.FollowUpDate.Before(b.FollowUpDate) {
			return -1
		}
		if a.FollowUpDate.After(b.FollowUpDate) {
			return 1
		}
		return 0
	}
	slices.SortStableFunc(g.Overdue, byFollowUp)
	slices.SortStableFunc(g.Today, byFollowUp)
	slices.SortStableFunc(g.Upcoming, byFollowUp)
	return g
}

// DeriveFollowUpDate computes a follow-up date from the proposal date plus
// an offset in days, the way the quote form schedules reminders. A zero or
// negative offset means no follow-up. The offending quote is logged when
// the proposal date itself is missing.
func DeriveFollowUpDate(proposal Date, offsetDays int) Date {
	if offsetDays <= 0 {
		return Date{}
	}
	if proposal.IsZero() {
		log.Printf("cannot derive follow-up date: no proposal date")
		return Date{}
	}
	return proposal.Add(offsetDays)
}
