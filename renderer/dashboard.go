package renderer

import (
	"github.com/engeclima/comercial"
)

// DashboardView bundles everything the dashboard report shows: the KPI
// aggregate plus the aging table and follow-up groups, under one scope and
// reference date.
type DashboardView struct {
	Scope     comercial.Seller
	On        comercial.Date
	Stats     *comercial.Dashboard
	Aging     []comercial.AgingBucket
	FollowUps *comercial.FollowUpGroups
}

// DashboardMarkdown renders the full dashboard report.
func DashboardMarkdown(v *DashboardView) string {
	partials := map[string]string{
		"aging_table":      "aging_table.md",
		"followup_summary": "followup_summary.md",
	}
	return renderTemplate("dashboard", "dashboard.md", partials, v)
}

// AgingView is the focused aging report.
type AgingView struct {
	Scope   comercial.Seller
	On      comercial.Date
	Buckets []comercial.AgingBucket
}

// AgingMarkdown renders the receivables aging report.
func AgingMarkdown(v *AgingView) string {
	partials := map[string]string{"aging_table": "aging_table.md"}
	return renderTemplate("aging", "aging.md", partials, v)
}

// FollowUpView is the focused follow-up report.
type FollowUpView struct {
	Scope  comercial.Seller
	On     comercial.Date
	Groups *comercial.FollowUpGroups
}

// FollowUpMarkdown renders the follow-up schedule report.
func FollowUpMarkdown(v *FollowUpView) string {
	partials := map[string]string{"followup_table": "followup_table.md"}
	return renderTemplate("followup", "followup.md", partials, v)
}
