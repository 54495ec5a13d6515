package entities

import (
	"sort"
	"time"
)

// Quote is a provider's priced, timed offer against a service request.
//
// At most one quote may exist per (service, provider) pair; the quote
// submission flow enforces it.
type Quote struct {
	ID           string    `json:"id"`
	ServiceID    string    `json:"service_id"`
	ProviderID   string    `json:"provider_id"`
	Price        float64   `json:"price"`
	LeadTimeDays int       `json:"lead_time_days"`
	Detail       string    `json:"detail"`
	CreatedAt    time.Time `json:"created_at"`
}

// QuotePatch is a partial edit of a quote by its owning provider.
type QuotePatch struct {
	Price        *float64 `json:"price"`
	LeadTimeDays *int     `json:"lead_time_days"`
	Detail       *string  `json:"detail"`
}

// Apply merges the patch onto q and returns the result.
func (p QuotePatch) Apply(q Quote) Quote {
	if p.Price != nil {
		q.Price = *p.Price
	}
	if p.LeadTimeDays != nil {
		q.LeadTimeDays = *p.LeadTimeDays
	}
	if p.Detail != nil {
		q.Detail = *p.Detail
	}
	return q
}

// QuoteSortKey selects the comparison criterion when ranking quotes.
type QuoteSortKey string

const (
	SortByPrice    QuoteSortKey = "PRICE"
	SortByLeadTime QuoteSortKey = "LEAD_TIME"
)

// RankQuotes returns the quotes for serviceID ordered ascending by the
// given key. The sort is stable: quotes with equal keys keep their
// original relative order. An unknown key leaves the filtered quotes
// in input order. The input slice is never mutated.
func RankQuotes(quotes []Quote, serviceID string, key QuoteSortKey) []Quote {
	ranked := make([]Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.ServiceID == serviceID {
			ranked = append(ranked, q)
		}
	}
	switch key {
	case SortByPrice:
		sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Price < ranked[j].Price })
	case SortByLeadTime:
		sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].LeadTimeDays < ranked[j].LeadTimeDays })
	}
	return ranked
}

// BestPrice returns the minimum price among the given quotes, or nil
// when there are none. Every quote whose price equals the returned
// value is a best-price quote, not just the first.
func BestPrice(quotes []Quote) *float64 {
	if len(quotes) == 0 {
		return nil
	}
	best := quotes[0].Price
	for _, q := range quotes[1:] {
		if q.Price < best {
			best = q.Price
		}
	}
	return &best
}
