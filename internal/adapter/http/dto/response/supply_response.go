package response

import (
	"time"

	"obralink/internal/domain/entities"
)

type SupplyResponse struct {
	ID        string    `json:"id"`
	SellerID  string    `json:"seller_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	UnitPrice float64   `json:"unit_price"`
	Unit      string    `json:"unit"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
}

func FromSupply(s entities.Supply) SupplyResponse {
	return SupplyResponse{
		ID:        s.ID,
		SellerID:  s.SellerID,
		Name:      s.Name,
		Category:  string(s.Category),
		UnitPrice: s.UnitPrice,
		Unit:      s.Unit,
		Stock:     s.Stock,
		CreatedAt: s.CreatedAt,
	}
}

func FromSupplies(supplies []entities.Supply) []SupplyResponse {
	out := make([]SupplyResponse, len(supplies))
	for i, s := range supplies {
		out[i] = FromSupply(s)
	}
	return out
}
