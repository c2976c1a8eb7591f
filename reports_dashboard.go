package comercial

// Dashboard holds every KPI shown on the commercial dashboard for one
// filtered snapshot. All quantities are derived on construction; nothing is
// cached or updated afterwards.
type Dashboard struct {
	TotalSalesValue   Money
	TotalSalesCount   int
	TotalReceived     Money
	TotalPendingValue Money

	TotalProposedValue  Money
	TotalProposalsCount int
	ContractedCount     int
	ContractedValue     Money
	OpenCount           int
	OpenValue           Money

	// ConversionRate is the share of proposals accepted, 0 when there are
	// no proposals at all.
	ConversionRate Percent

	// Activity is the inclusive interval spanned by the snapshot's sale and
	// proposal dates; zero when the snapshot is empty.
	Activity     Range
	BusinessDays int

	ProposalsPerBusinessDay float64
	SalesPerBusinessDay     float64
}

// NewDashboard computes the dashboard KPIs over already-filtered sales and
// quotes. It is a pure O(n) pass: callers decide when to recompute.
func NewDashboard(sales []*Sale, quotes []*Quote) *Dashboard {
	d := &Dashboard{
		TotalSalesCount:     len(sales),
		TotalProposalsCount: len(quotes),
	}

	for _, s := range sales {
		d.TotalSalesValue = d.TotalSalesValue.Add(s.Value)
		d.TotalReceived = d.TotalReceived.Add(s.Payment)
		d.TotalPendingValue = d.TotalPendingValue.Add(s.Pending())
	}

	for _, q := range quotes {
		d.TotalProposedValue = d.TotalProposedValue.Add(q.ProposedValue)
		if q.Accepted() {
			d.ContractedCount++
			d.ContractedValue = d.ContractedValue.Add(q.ProposedValue)
		} else {
			d.OpenCount++
			d.OpenValue = d.OpenValue.Add(q.ProposedValue)
		}
	}

	if d.TotalProposalsCount > 0 {
		d.ConversionRate = Percent(float64(d.ContractedCount) / float64(d.TotalProposalsCount) * 100)
	}

	d.Activity, d.BusinessDays = activityRange(sales, quotes)
	if d.BusinessDays > 0 {
		d.ProposalsPerBusinessDay = float64(d.TotalProposalsCount) / float64(d.BusinessDays)
		d.SalesPerBusinessDay = float64(d.TotalSalesCount) / float64(d.BusinessDays)
	}
	return d
}

// activityRange spans the earliest to the latest of all sale dates and
// proposal dates. With no dates at all the range is zero and the
// business-day denominator is 0, which in turn zeroes every per-day rate.
func activityRange(sales []*Sale, quotes []*Quote) (Range, int) {
	var min, max Date
	observe := func(d Date) {
		if d.IsZero() {
			return
		}
		if min.IsZero() || d.Before(min) {
			min = d
		}
		if max.IsZero() || d.After(max) {
			max = d
		}
	}
	for _, s := range sales {
		observe(s.Date)
	}
	for _, q := range quotes {
		observe(q.ProposalDate)
	}
	if min.IsZero() {
		return Range{}, 0
	}
	r := NewRange(min, max)
	return r, r.BusinessDays()
}
