package request

import "obralink/internal/domain/entities"

type CreateSupplyRequest struct {
	Name      string  `json:"name" binding:"required"`
	Category  string  `json:"category" binding:"required"`
	UnitPrice float64 `json:"unit_price" binding:"required"`
	Unit      string  `json:"unit" binding:"required"`
	Stock     int     `json:"stock"`
}

func (r CreateSupplyRequest) ToEntity() entities.Supply {
	return entities.Supply{
		Name:      r.Name,
		Category:  entities.Category(r.Category),
		UnitPrice: r.UnitPrice,
		Unit:      r.Unit,
		Stock:     r.Stock,
	}
}

type UpdateSupplyRequest struct {
	Name      *string  `json:"name"`
	Category  *string  `json:"category"`
	UnitPrice *float64 `json:"unit_price"`
	Unit      *string  `json:"unit"`
	Stock     *int     `json:"stock"`
}

func (r UpdateSupplyRequest) ToPatch() entities.SupplyPatch {
	p := entities.SupplyPatch{
		Name:      r.Name,
		UnitPrice: r.UnitPrice,
		Unit:      r.Unit,
		Stock:     r.Stock,
	}
	if r.Category != nil {
		c := entities.Category(*r.Category)
		p.Category = &c
	}
	return p
}
