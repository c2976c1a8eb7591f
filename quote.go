package comercial

import (
	"fmt"
	"time"
)

// Quote is a price proposal sent to a prospective client.
type Quote struct {
	ID            string      `json:"id"`
	Seller        Seller      `json:"seller"`
	ClientName    string      `json:"clientName"`
	Company       Company     `json:"company"`
	Area          Area        `json:"area"`
	ContactSource string      `json:"contactSource,omitempty"`
	ProposalDate  Date        `json:"proposalDate"`
	ProposedValue Money       `json:"proposedValue"`
	Status        QuoteStatus `json:"status"`
	Validity      Date        `json:"validity,omitzero"`
	FollowUpDate  Date        `json:"followUpDate,omitzero"`
	FollowUpDone  bool        `json:"followUpDone"`
	Attachment    string      `json:"attachment,omitempty"`
	Notes         string      `json:"notes,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt,omitzero"`
}

// Accepted reports whether the quote converted into a sale. Accepted quotes
// are excluded from every "open" aggregate.
func (q *Quote) Accepted() bool { return q.Status == QuoteAccepted }

// NeedsFollowUp reports whether the quote still has a scheduled follow-up.
// The follow-up date is only meaningful while FollowUpDone is false.
func (q *Quote) NeedsFollowUp() bool { return !q.FollowUpDate.IsZero() && !q.FollowUpDone }

// Validate checks the quote for correctness before it enters the book.
func (q *Quote) Validate() error {
	if _, err := ParseSeller(string(q.Seller)); err != nil {
		return err
	}
	if q.ClientName == "" {
		return fmt.Errorf("quote has no client name")
	}
	if q.ProposalDate.IsZero() {
		return fmt.Errorf("quote has no proposal date")
	}
	if _, err := ParseCompany(string(q.Company)); err != nil {
		return err
	}
	if _, err := ParseArea(string(q.Area)); err != nil {
		return err
	}
	if _, err := ParseQuoteStatus(string(q.Status)); err != nil {
		return err
	}
	if q.ProposedValue.IsNegative() {
		return fmt.Errorf("proposed value is negative")
	}
	return nil
}
