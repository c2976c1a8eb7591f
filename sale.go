package comercial

import (
	"fmt"
	"time"
)

// Sale is a single sales record.
type Sale struct {
	ID            string     `json:"id"`
	Seller        Seller     `json:"seller"`
	Date          Date       `json:"date"`
	Company       Company    `json:"company"`
	Project       string     `json:"project"`
	OrderSheet    string     `json:"os,omitempty"`
	Area          Area       `json:"area"`
	ClientService string     `json:"clientService"`
	Value         Money      `json:"salesValue"`
	Status        SaleStatus `json:"status"`
	Payment       Money      `json:"payment"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt,omitzero"`
}

// Pending returns the outstanding balance, max(0, Value - Payment).
func (s *Sale) Pending() Money { return s.Value.SubFloor(s.Payment) }

// Validate checks the sale for correctness before it enters the book.
func (s *Sale) Validate() error {
	if _, err := ParseSeller(string(s.Seller)); err != nil {
		return err
	}
	if s.Date.IsZero() {
		return fmt.Errorf("sale has no date")
	}
	if _, err := ParseCompany(string(s.Company)); err != nil {
		return err
	}
	if _, err := ParseArea(string(s.Area)); err != nil {
		return err
	}
	if _, err := ParseSaleStatus(string(s.Status)); err != nil {
		return err
	}
	if s.Project == "" {
		return fmt.Errorf("sale has no project")
	}
	if s.ClientService == "" {
		return fmt.Errorf("sale has no client/service")
	}
	if s.Value.IsNegative() {
		return fmt.Errorf("sale value is negative")
	}
	if s.Payment.IsNegative() {
		return fmt.Errorf("sale payment is negative")
	}
	return nil
}
