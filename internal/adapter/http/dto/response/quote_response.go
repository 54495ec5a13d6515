package response

import (
	"time"

	"obralink/internal/domain/entities"
)

type QuoteResponse struct {
	ID           string    `json:"id"`
	ServiceID    string    `json:"service_id"`
	ProviderID   string    `json:"provider_id"`
	Price        float64   `json:"price"`
	LeadTimeDays int       `json:"lead_time_days"`
	Detail       string    `json:"detail"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:           q.ID,
		ServiceID:    q.ServiceID,
		ProviderID:   q.ProviderID,
		Price:        q.Price,
		LeadTimeDays: q.LeadTimeDays,
		Detail:       q.Detail,
		CreatedAt:    q.CreatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, len(quotes))
	for i, q := range quotes {
		out[i] = FromQuote(q)
	}
	return out
}

// RankedQuoteResponse is one row of the comparison view.
type RankedQuoteResponse struct {
	QuoteResponse
	IsBestPrice bool `json:"is_best_price"`
}

type ComparisonResponse struct {
	Quotes    []RankedQuoteResponse `json:"quotes"`
	BestPrice *float64              `json:"best_price"`
}

// FromComparison maps the ranked quotes, flagging every quote whose
// price equals the best price, not only the first.
func FromComparison(quotes []entities.Quote, bestPrice *float64) ComparisonResponse {
	ranked := make([]RankedQuoteResponse, len(quotes))
	for i, q := range quotes {
		ranked[i] = RankedQuoteResponse{
			QuoteResponse: FromQuote(q),
			IsBestPrice:   bestPrice != nil && q.Price == *bestPrice,
		}
	}
	return ComparisonResponse{Quotes: ranked, BestPrice: bestPrice}
}
