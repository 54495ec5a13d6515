package request

import "obralink/internal/domain/entities"

type CreateQuoteRequest struct {
	ServiceID    string  `json:"service_id" binding:"required"`
	Price        float64 `json:"price" binding:"required"`
	LeadTimeDays int     `json:"lead_time_days"`
	Detail       string  `json:"detail"`
}

func (r CreateQuoteRequest) ToEntity() entities.Quote {
	return entities.Quote{
		ServiceID:    r.ServiceID,
		Price:        r.Price,
		LeadTimeDays: r.LeadTimeDays,
		Detail:       r.Detail,
	}
}

type UpdateQuoteRequest struct {
	Price        *float64 `json:"price"`
	LeadTimeDays *int     `json:"lead_time_days"`
	Detail       *string  `json:"detail"`
}

func (r UpdateQuoteRequest) ToPatch() entities.QuotePatch {
	return entities.QuotePatch{
		Price:        r.Price,
		LeadTimeDays: r.LeadTimeDays,
		Detail:       r.Detail,
	}
}
