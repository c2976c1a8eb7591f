package comercial

import "testing"

// testSale returns a valid sale ready for the book; tweak fields as needed.
func testSale(t *testing.T, seller Seller, date string, value, payment float64) *Sale {
	t.Helper()
	return &Sale{
		Seller:        seller,
		Date:          MustParseDate(date),
		Company:       Climazone,
		Project:       "P-100",
		Area:          "CI",
		ClientService: "Condomínio Central",
		Value:         M(value),
		Status:        SaleInProgress,
		Payment:       M(payment),
	}
}

// testQuote returns a valid quote ready for the book.
func testQuote(t *testing.T, seller Seller, proposal string, value float64, status QuoteStatus) *Quote {
	t.Helper()
	return &Quote{
		Seller:        seller,
		ClientName:    "ACME Ltda",
		Company:       Engear,
		Area:          "MANUT. AC",
		ProposalDate:  MustParseDate(proposal),
		ProposedValue: M(value),
		Status:        status,
	}
}
