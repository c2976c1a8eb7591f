package comercial

import (
	"fmt"
	"strings"
)

// Seller identifies a sales representative, or the AllSellers sentinel when
// a computation spans the whole team.
type Seller string

// AllSellers is the sentinel scope matching every seller's records.
const AllSellers Seller = "TODOS"

// Sellers lists the sales team. Record entry requires a specific seller;
// reports accept AllSellers as well.
var Sellers = []Seller{"SERGIO", "RODRIGO"}

// ParseSeller parses a specific seller name. AllSellers is rejected here:
// records are always owned by one person.
func ParseSeller(s string) (Seller, error) {
	v := Seller(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Sellers {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown seller: %q", s)
}

// ParseScope parses a seller scope: a specific seller, or "TODOS" (also the
// empty string) for all sellers.
func ParseScope(s string) (Seller, error) {
	v := Seller(strings.ToUpper(strings.TrimSpace(s)))
	if v == "" || v == AllSellers {
		return AllSellers, nil
	}
	return ParseSeller(s)
}

// Matches reports whether a record owned by 'owner' is visible under the
// scope s.
func (s Seller) Matches(owner Seller) bool {
	return s == AllSellers || s == owner
}

// Company is the issuing company of a record.
type Company string

const (
	Climazone Company = "CLIMAZONE"
	Engear    Company = "ENGEAR"
)

// Companies lists the valid companies, in display order.
var Companies = []Company{Climazone, Engear}

// ParseCompany parses a string into a Company, rejecting unknown values.
func ParseCompany(s string) (Company, error) {
	v := Company(strings.TrimSpace(s))
	for _, known := range Companies {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown company: %q", s)
}

// Area is the operating area of a record.
type Area string

// Areas lists the valid operating areas, in display order.
var Areas = []Area{
	"AQG",
	"CI",
	"EXAUST",
	"GÁS",
	"INST. AC",
	"LOCAÇÃO",
	"MANUT. AC",
	"PRÉ",
	"SAS",
}

// ParseArea parses a string into an Area, rejecting unknown values.
func ParseArea(s string) (Area, error) {
	v := Area(strings.TrimSpace(s))
	for _, known := range Areas {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown area: %q", s)
}

// SaleStatus is the execution status of a sale.
type SaleStatus string

const (
	SaleNotStarted SaleStatus = "A INICIAR"
	SaleInProgress SaleStatus = "EM ANDAMENTO"
	SaleFinalized  SaleStatus = "FINALIZADO"
	SaleCancelled  SaleStatus = "CANCELADO"
)

// SaleStatuses lists the valid sale statuses, in display order.
var SaleStatuses = []SaleStatus{SaleNotStarted, SaleInProgress, SaleFinalized, SaleCancelled}

// ParseSaleStatus parses a string into a SaleStatus, rejecting unknown values.
func ParseSaleStatus(s string) (SaleStatus, error) {
	v := SaleStatus(strings.TrimSpace(s))
	for _, known := range SaleStatuses {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown status: %q", s)
}

// QuoteStatus is the negotiation status of a quote. QuoteAccepted is
// terminal: the quote is considered converted into a sale.
type QuoteStatus string

const (
	QuoteSent        QuoteStatus = "Enviada"
	QuoteNegotiating QuoteStatus = "Em Negociação"
	QuoteAccepted    QuoteStatus = "Aceita"
	QuoteRefused     QuoteStatus = "Recusada"
	QuoteCancelled   QuoteStatus = "Cancelada"
)

// QuoteStatuses lists the valid quote statuses, in display order.
var QuoteStatuses = []QuoteStatus{QuoteSent, QuoteNegotiating, QuoteAccepted, QuoteRefused, QuoteCancelled}

// ParseQuoteStatus parses a string into a QuoteStatus, rejecting unknown values.
func ParseQuoteStatus(s string) (QuoteStatus, error) {
	v := QuoteStatus(strings.TrimSpace(s))
	for _, known := range QuoteStatuses {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown quote status: %q", s)
}
