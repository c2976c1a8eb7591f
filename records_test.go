package comercial

import "testing"

func TestParseSeller(t *testing.T) {
	tests := []struct {
		in      string
		want    Seller
		wantErr bool
	}{
		{in: "SERGIO", want: "SERGIO"},
		{in: "rodrigo", want: "RODRIGO"},
		{in: " sergio ", want: "SERGIO"},
		{in: "TODOS", wantErr: true}, // records need a real owner
		{in: "", wantErr: true},
		{in: "MARCOS", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSeller(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSeller(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseSeller(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseScope(t *testing.T) {
	tests := []struct {
		in      string
		want    Seller
		wantErr bool
	}{
		{in: "", want: AllSellers},
		{in: "TODOS", want: AllSellers},
		{in: "todos", want: AllSellers},
		{in: "SERGIO", want: "SERGIO"},
		{in: "MARCOS", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseScope(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseScope(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseScope(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScopeMatches(t *testing.T) {
	if !AllSellers.Matches("SERGIO") {
		t.Error("AllSellers must match every owner")
	}
	if !Seller("SERGIO").Matches("SERGIO") {
		t.Error("a seller must match itself")
	}
	if Seller("SERGIO").Matches("RODRIGO") {
		t.Error("a seller must not match another seller")
	}
}

func TestParseEnums(t *testing.T) {
	if _, err := ParseCompany("CLIMAZONE"); err != nil {
		t.Errorf("ParseCompany(CLIMAZONE): %v", err)
	}
	if _, err := ParseCompany("ACME"); err == nil {
		t.Error("ParseCompany must reject unknown companies")
	}
	if _, err := ParseArea("INST. AC"); err != nil {
		t.Errorf("ParseArea(INST. AC): %v", err)
	}
	if _, err := ParseArea("TI"); err == nil {
		t.Error("ParseArea must reject unknown areas")
	}
	if _, err := ParseSaleStatus("EM ANDAMENTO"); err != nil {
		t.Errorf("ParseSaleStatus(EM ANDAMENTO): %v", err)
	}
	if _, err := ParseSaleStatus("PENDENTE"); err == nil {
		t.Error("ParseSaleStatus must reject unknown statuses")
	}
	if _, err := ParseQuoteStatus("Em Negociação"); err != nil {
		t.Errorf("ParseQuoteStatus(Em Negociação): %v", err)
	}
	if _, err := ParseQuoteStatus("Aberta"); err == nil {
		t.Error("ParseQuoteStatus must reject unknown statuses")
	}
}

func TestSaleValidate(t *testing.T) {
	ok := testSale(t, "SERGIO", "2025-01-06", 1000, 0)
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid sale rejected: %v", err)
	}

	tests := []struct {
		name string
		mod  func(*Sale)
	}{
		{"unknown seller", func(s *Sale) { s.Seller = "MARCOS" }},
		{"zero date", func(s *Sale) { s.Date = Date{} }},
		{"unknown company", func(s *Sale) { s.Company = "ACME" }},
		{"unknown area", func(s *Sale) { s.Area = "TI" }},
		{"unknown status", func(s *Sale) { s.Status = "PAUSADO" }},
		{"empty project", func(s *Sale) { s.Project = "" }},
		{"empty client", func(s *Sale) { s.ClientService = "" }},
		{"negative value", func(s *Sale) { s.Value = M(-1) }},
		{"negative payment", func(s *Sale) { s.Payment = M(-1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSale(t, "SERGIO", "2025-01-06", 1000, 0)
			tt.mod(s)
			if err := s.Validate(); err == nil {
				t.Error("Validate() accepted an invalid sale")
			}
		})
	}
}

func TestQuoteValidate(t *testing.T) {
	ok := testQuote(t, "RODRIGO", "2025-02-01", 500, QuoteSent)
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid quote rejected: %v", err)
	}

	tests := []struct {
		name string
		mod  func(*Quote)
	}{
		{"unknown seller", func(q *Quote) { q.Seller = "TODOS" }},
		{"empty client name", func(q *Quote) { q.ClientName = "" }},
		{"zero proposal date", func(q *Quote) { q.ProposalDate = Date{} }},
		{"unknown status", func(q *Quote) { q.Status = "Aberta" }},
		{"negative value", func(q *Quote) { q.ProposedValue = M(-1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := testQuote(t, "RODRIGO", "2025-02-01", 500, QuoteSent)
			tt.mod(q)
			if err := q.Validate(); err == nil {
				t.Error("Validate() accepted an invalid quote")
			}
		})
	}
}

func TestSalePending(t *testing.T) {
	s := testSale(t, "SERGIO", "2025-01-06", 1500, 1000)
	if got := s.Pending(); !got.Equal(M(500)) {
		t.Errorf("Pending = %v, want 500", got.Amount())
	}
	s.Payment = M(2000)
	if got := s.Pending(); !got.IsZero() {
		t.Errorf("overpaid Pending = %v, want 0", got.Amount())
	}
}
