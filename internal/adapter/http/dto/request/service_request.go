package request

import "obralink/internal/domain/entities"

type RequiredSupplyRequest struct {
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required"`
}

type CreateServiceRequest struct {
	Title            string                  `json:"title" binding:"required"`
	Description      string                  `json:"description" binding:"required"`
	Category         string                  `json:"category" binding:"required"`
	Address          string                  `json:"address" binding:"required"`
	City             string                  `json:"city" binding:"required"`
	PreferredDate    string                  `json:"preferred_date" binding:"required"`
	RequiredSupplies []RequiredSupplyRequest `json:"required_supplies"`
}

func (r CreateServiceRequest) ToEntity() entities.ServiceRequest {
	supplies := make([]entities.RequiredSupply, len(r.RequiredSupplies))
	for i, s := range r.RequiredSupplies {
		supplies[i] = entities.RequiredSupply{Name: s.Name, Quantity: s.Quantity}
	}
	return entities.ServiceRequest{
		Title:            r.Title,
		Description:      r.Description,
		Category:         entities.Category(r.Category),
		Address:          r.Address,
		City:             r.City,
		PreferredDate:    r.PreferredDate,
		RequiredSupplies: supplies,
	}
}

type UpdateServiceRequest struct {
	Title            *string                  `json:"title"`
	Description      *string                  `json:"description"`
	Category         *string                  `json:"category"`
	Address          *string                  `json:"address"`
	City             *string                  `json:"city"`
	PreferredDate    *string                  `json:"preferred_date"`
	RequiredSupplies *[]RequiredSupplyRequest `json:"required_supplies"`
}

func (r UpdateServiceRequest) ToPatch() entities.ServicePatch {
	p := entities.ServicePatch{
		Title:         r.Title,
		Description:   r.Description,
		Address:       r.Address,
		City:          r.City,
		PreferredDate: r.PreferredDate,
	}
	if r.Category != nil {
		c := entities.Category(*r.Category)
		p.Category = &c
	}
	if r.RequiredSupplies != nil {
		supplies := make([]entities.RequiredSupply, len(*r.RequiredSupplies))
		for i, s := range *r.RequiredSupplies {
			supplies[i] = entities.RequiredSupply{Name: s.Name, Quantity: s.Quantity}
		}
		p.RequiredSupplies = &supplies
	}
	return p
}

// SelectQuoteRequest names the winning quote for a service.
type SelectQuoteRequest struct {
	QuoteID string `json:"quote_id" binding:"required"`
}
