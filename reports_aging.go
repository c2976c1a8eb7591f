package comercial

// AgingBucket accumulates the receivables whose age falls in one fixed
// day-range band.
type AgingBucket struct {
	Key          string // "0-30", "31-60", "61-90", "90+"
	Label        string
	Count        int
	PendingValue Money
}

// NewAging classifies outstanding receivables by age in whole days as of
// 'on'. It honors only the seller scope, never the dashboard's search or
// date filters: outstanding exposure must not shrink because the viewing
// window did. Cancelled sales and sales with nothing pending are skipped.
//
// The four buckets come back in fixed ascending order even when empty, so
// renderers can rely on position.
func NewAging(sales []*Sale, scope Seller, on Date) []AgingBucket {
	buckets := []AgingBucket{
		{Key: "0-30", Label: "0–30 dias"},
		{Key: "31-60", Label: "31–60 dias"},
		{Key: "61-90", Label: "61–90 dias"},
		{Key: "90+", Label: "90+ dias"},
	}

	for _, s := range sales {
		if !scope.Matches(s.Seller) {
			continue
		}
		if s.Status == SaleCancelled {
			continue
		}
		pending := s.Pending()
		if !pending.IsPositive() {
			continue
		}

		days := max(0, on.DaysSince(s.Date))
		var i int
		switch {
		case days >= 91:
			i = 3
		case days >= 61:
			i = 2
		case days >= 31:
			i = 1
		}
		buckets[i].Count++
		buckets[i].PendingValue = buckets[i].PendingValue.Add(pending)
	}
	return buckets
}
