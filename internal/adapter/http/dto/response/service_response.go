package response

import (
	"time"

	"obralink/internal/domain/entities"
)

type RequiredSupplyResponse struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
}

type ServiceResponse struct {
	ID               string                   `json:"id"`
	Title            string                   `json:"title"`
	Description      string                   `json:"description"`
	Category         string                   `json:"category"`
	Address          string                   `json:"address"`
	City             string                   `json:"city"`
	PreferredDate    string                   `json:"preferred_date"`
	RequesterID      string                   `json:"requester_id"`
	RequiredSupplies []RequiredSupplyResponse `json:"required_supplies"`
	State            string                   `json:"state"`
	SelectedQuoteID  *string                  `json:"selected_quote_id"`
	CreatedAt        time.Time                `json:"created_at"`
}

func FromService(s entities.ServiceRequest) ServiceResponse {
	supplies := make([]RequiredSupplyResponse, len(s.RequiredSupplies))
	for i, rs := range s.RequiredSupplies {
		supplies[i] = RequiredSupplyResponse{Name: rs.Name, Quantity: rs.Quantity}
	}
	return ServiceResponse{
		ID:               s.ID,
		Title:            s.Title,
		Description:      s.Description,
		Category:         string(s.Category),
		Address:          s.Address,
		City:             s.City,
		PreferredDate:    s.PreferredDate,
		RequesterID:      s.RequesterID,
		RequiredSupplies: supplies,
		State:            string(s.State),
		SelectedQuoteID:  s.SelectedQuoteID,
		CreatedAt:        s.CreatedAt,
	}
}

func FromServices(services []entities.ServiceRequest) []ServiceResponse {
	out := make([]ServiceResponse, len(services))
	for i, s := range services {
		out[i] = FromService(s)
	}
	return out
}
