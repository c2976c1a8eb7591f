package comercial

import "testing"

func followUpQuote(t *testing.T, seller Seller, followUp string, done bool) *Quote {
	t.Helper()
	q := testQuote(t, seller, "2025-05-01", 100, QuoteSent)
	if followUp != "" {
		q.FollowUpDate = MustParseDate(followUp)
	}
	q.FollowUpDone = done
	return q
}

func TestNewFollowUp(t *testing.T) {
	on := MustParseDate("2025-06-01")
	quotes := []*Quote{
		followUpQuote(t, "SERGIO", "2025-05-28", false), // overdue
		followUpQuote(t, "SERGIO", "2025-06-01", false), // today
		followUpQuote(t, "SERGIO", "2025-06-10", false), // upcoming
		followUpQuote(t, "SERGIO", "2025-06-03", false), // upcoming
		followUpQuote(t, "SERGIO", "2025-05-28", true),  // done, excluded
		followUpQuote(t, "SERGIO", "", false),           // no date, excluded
	}

	g := NewFollowUp(quotes, AllSellers, on)

	if len(g.Overdue) != 1 || len(g.Today) != 1 || len(g.Upcoming) != 2 {
		t.Fatalf("groups = %d/%d/%d, want 1/1/2", len(g.Overdue), len(g.Today), len(g.Upcoming))
	}
	if g.Pending() != 4 {
		t.Errorf("Pending = %d, want 4", g.Pending())
	}
	if g.Upcoming[0].FollowUpDate.After(g.Upcoming[1].FollowUpDate) {
		t.Error("upcoming group must be sorted ascending by follow-up date")
	}
}

func TestNewFollowUpSellerScope(t *testing.T) {
	on := MustParseDate("2025-06-01")
	quotes := []*Quote{
		followUpQuote(t, "SERGIO", "2025-05-28", false),
		followUpQuote(t, "RODRIGO", "2025-05-28", false),
	}
	g := NewFollowUp(quotes, "SERGIO", on)
	if g.Pending() != 1 {
		t.Errorf("Pending under SERGIO scope = %d, want 1", g.Pending())
	}
	if g.Overdue[0].Seller != "SERGIO" {
		t.Errorf("scoped group holds %q's quote", g.Overdue[0].Seller)
	}
}

func TestNewFollowUpSortWithinGroup(t *testing.T) {
	on := MustParseDate("2025-06-01")
	quotes := []*Quote{
		followUpQuote(t, "SERGIO", "2025-05-30", false),
		followUpQuote(t, "SERGIO", "2025-05-10", false),
		followUpQuote(t, "SERGIO", "2025-05-20", false),
	}
	g := NewFollowUp(quotes, AllSellers, on)
	if len(g.Overdue) != 3 {
		t.Fatalf("overdue = %d, want 3", len(g.Overdue))
	}
	for i := 1; i < len(g.Overdue); i++ {
		if g.Overdue[i].FollowUpDate.Before(g.Overdue[i-1].FollowUpDate) {
			t.Fatal("overdue group not sorted ascending")
		}
	}
}

func TestDeriveFollowUpDate(t *testing.T) {
	proposal := MustParseDate("2025-05-01")
	if got := DeriveFollowUpDate(proposal, 7); got != MustParseDate("2025-05-08") {
		t.Errorf("DeriveFollowUpDate(+7) = %v, want 2025-05-08", got)
	}
	if got := DeriveFollowUpDate(proposal, 0); !got.IsZero() {
		t.Errorf("zero offset must yield no follow-up, got %v", got)
	}
	if got := DeriveFollowUpDate(Date{}, 7); !got.IsZero() {
		t.Errorf("missing proposal date must yield no follow-up, got %v", got)
	}
}
