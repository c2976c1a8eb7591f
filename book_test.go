package comercial

import (
	"errors"
	"testing"
)

func TestBookAddSale(t *testing.T) {
	b := NewBook()
	s := testSale(t, "SERGIO", "2025-01-06", 1000, 0)
	if err := b.AddSale(s); err != nil {
		t.Fatalf("AddSale: %v", err)
	}
	if s.ID == "" {
		t.Error("AddSale must assign an ID")
	}
	if s.CreatedAt.IsZero() {
		t.Error("AddSale must assign a creation timestamp")
	}
	got, err := b.Sale(s.ID)
	if err != nil {
		t.Fatalf("Sale(%q): %v", s.ID, err)
	}
	if got != s {
		t.Error("Sale(id) must return the stored record")
	}
}

func TestBookAddSaleRejectsInvalid(t *testing.T) {
	b := NewBook()
	s := testSale(t, "SERGIO", "2025-01-06", 1000, 0)
	s.Project = ""
	if err := b.AddSale(s); err == nil {
		t.Fatal("AddSale accepted an invalid sale")
	}
	if len(b.Sales()) != 0 {
		t.Error("invalid sale must not enter the book")
	}
}

func TestBookAddSalesAllOrNothing(t *testing.T) {
	b := NewBook()
	batch := []*Sale{
		testSale(t, "SERGIO", "2025-01-06", 1000, 0),
		testSale(t, "SERGIO", "2025-01-07", 2000, 0),
	}
	batch[1].ClientService = "" // second row is broken

	if err := b.AddSales(batch); err == nil {
		t.Fatal("AddSales accepted a batch with an invalid sale")
	}
	if got := len(b.Sales()); got != 0 {
		t.Errorf("book has %d sales after a failed batch, want 0", got)
	}
}

func TestBookChronologicalOrder(t *testing.T) {
	b := NewBook()
	for _, day := range []string{"2025-03-10", "2025-01-06", "2025-02-20"} {
		if err := b.AddSale(testSale(t, "SERGIO", day, 100, 0)); err != nil {
			t.Fatal(err)
		}
	}
	sales := b.Sales()
	for i := 1; i < len(sales); i++ {
		if sales[i].Date.Before(sales[i-1].Date) {
			t.Fatalf("sales out of order: %v before %v", sales[i].Date, sales[i-1].Date)
		}
	}
}

func TestBookUpdateSale(t *testing.T) {
	b := NewBook()
	s := testSale(t, "SERGIO", "2025-01-06", 1000, 0)
	if err := b.AddSale(s); err != nil {
		t.Fatal(err)
	}

	upd := *s
	upd.Payment = M(400)
	if err := b.UpdateSale(&upd); err != nil {
		t.Fatalf("UpdateSale: %v", err)
	}
	got, _ := b.Sale(s.ID)
	if !got.Payment.Equal(M(400)) {
		t.Errorf("payment after update = %v, want 400", got.Payment.Amount())
	}
	if got.UpdatedAt.IsZero() {
		t.Error("UpdateSale must set UpdatedAt")
	}

	missing := testSale(t, "SERGIO", "2025-01-06", 1, 0)
	missing.ID = "nope"
	if err := b.UpdateSale(missing); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateSale on unknown id = %v, want ErrNotFound", err)
	}
}

func TestBookDelete(t *testing.T) {
	b := NewBook()
	s := testSale(t, "SERGIO", "2025-01-06", 1000, 0)
	q := testQuote(t, "RODRIGO", "2025-02-01", 500, QuoteSent)
	if err := b.AddSale(s); err != nil {
		t.Fatal(err)
	}
	if err := b.AddQuote(q); err != nil {
		t.Fatal(err)
	}

	if err := b.DeleteSale(s.ID); err != nil {
		t.Fatalf("DeleteSale: %v", err)
	}
	if _, err := b.Sale(s.ID); !errors.Is(err, ErrNotFound) {
		t.Error("deleted sale still retrievable")
	}
	if err := b.DeleteSale(s.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("double delete = %v, want ErrNotFound", err)
	}
	if err := b.DeleteQuote(q.ID); err != nil {
		t.Fatalf("DeleteQuote: %v", err)
	}
	if len(b.Quotes()) != 0 {
		t.Error("deleted quote still listed")
	}
}

func TestBookSalesReturnsCopy(t *testing.T) {
	b := NewBook()
	if err := b.AddSale(testSale(t, "SERGIO", "2025-01-06", 1000, 0)); err != nil {
		t.Fatal(err)
	}
	sales := b.Sales()
	sales[0] = nil
	if b.Sales()[0] == nil {
		t.Error("Sales() must return a copy of the slice")
	}
}
