package renderer

import (
	"strings"
	"testing"

	"github.com/engeclima/comercial"
)

func testView(t *testing.T) *DashboardView {
	t.Helper()
	sale := &comercial.Sale{
		Seller:        "SERGIO",
		Date:          comercial.MustParseDate("2025-01-06"),
		Company:       comercial.Climazone,
		Project:       "P-1",
		Area:          "CI",
		ClientService: "Cliente A",
		Value:         comercial.M(1500),
		Status:        comercial.SaleInProgress,
		Payment:       comercial.M(1000),
	}
	quote := &comercial.Quote{
		Seller:        "SERGIO",
		ClientName:    "ACME",
		Company:       comercial.Engear,
		Area:          "SAS",
		ProposalDate:  comercial.MustParseDate("2025-01-08"),
		ProposedValue: comercial.M(700),
		Status:        comercial.QuoteSent,
		FollowUpDate:  comercial.MustParseDate("2025-01-15"),
	}
	on := comercial.MustParseDate("2025-01-10")
	sales := []*comercial.Sale{sale}
	quotes := []*comercial.Quote{quote}
	return &DashboardView{
		Scope:     comercial.AllSellers,
		On:        on,
		Stats:     comercial.NewDashboard(sales, quotes),
		Aging:     comercial.NewAging(sales, comercial.AllSellers, on),
		FollowUps: comercial.NewFollowUp(quotes, comercial.AllSellers, on),
	}
}

func TestDashboardMarkdown(t *testing.T) {
	md := DashboardMarkdown(testView(t))
	if strings.Contains(md, "error") {
		t.Fatalf("template failed:\n%s", md)
	}
	for _, want := range []string{"Dashboard Comercial", "TODOS", "0–30 dias", "dias úteis"} {
		if !strings.Contains(md, want) {
			t.Errorf("dashboard markdown misses %q:\n%s", want, md)
		}
	}
}

func TestAgingMarkdown(t *testing.T) {
	v := testView(t)
	md := AgingMarkdown(&AgingView{Scope: v.Scope, On: v.On, Buckets: v.Aging})
	for _, want := range []string{"0–30 dias", "90+ dias"} {
		if !strings.Contains(md, want) {
			t.Errorf("aging markdown misses %q:\n%s", want, md)
		}
	}
}

func TestFollowUpMarkdown(t *testing.T) {
	v := testView(t)
	md := FollowUpMarkdown(&FollowUpView{Scope: v.Scope, On: v.On, Groups: v.FollowUps})
	if !strings.Contains(md, "2025-01-15") {
		t.Errorf("follow-up markdown misses the scheduled date:\n%s", md)
	}

	empty := comercial.NewFollowUp(nil, comercial.AllSellers, v.On)
	md = FollowUpMarkdown(&FollowUpView{Scope: v.Scope, On: v.On, Groups: empty})
	if !strings.Contains(md, "Nenhum acompanhamento pendente") {
		t.Errorf("empty follow-up report should say so:\n%s", md)
	}
}

func TestRecordsMarkdown(t *testing.T) {
	v := testView(t)
	if md := SalesMarkdown(nil); !strings.Contains(md, "| Data |") {
		t.Errorf("sales markdown misses header:\n%s", md)
	}
	md := SalesMarkdown([]*comercial.Sale{{
		Seller: "SERGIO", Date: v.On, Company: comercial.Climazone,
		Project: "P-1", Area: "CI", ClientService: "Cliente A",
		Value: comercial.M(10), Status: comercial.SaleFinalized,
	}})
	if !strings.Contains(md, "P-1") {
		t.Errorf("sales markdown misses the record:\n%s", md)
	}
	qmd := QuotesMarkdown([]*comercial.Quote{{
		Seller: "RODRIGO", ClientName: "ACME", Company: comercial.Engear,
		Area: "SAS", ProposalDate: v.On, ProposedValue: comercial.M(5),
		Status: comercial.QuoteSent,
	}})
	if !strings.Contains(qmd, "ACME") {
		t.Errorf("quotes markdown misses the record:\n%s", qmd)
	}
}
