package response

import (
	"time"

	"obralink/internal/domain/entities"
)

type PackItemResponse struct {
	SupplyID  string  `json:"supply_id,omitempty"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type PackResponse struct {
	ID         string             `json:"id"`
	SellerID   string             `json:"seller_id"`
	ServiceID  string             `json:"service_id"`
	Items      []PackItemResponse `json:"items"`
	TotalPrice float64            `json:"total_price"`
	CreatedAt  time.Time          `json:"created_at"`
}

func FromPack(p entities.SupplyPack) PackResponse {
	items := make([]PackItemResponse, len(p.Items))
	for i, it := range p.Items {
		items[i] = PackItemResponse{
			SupplyID:  it.SupplyID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		}
	}
	return PackResponse{
		ID:         p.ID,
		SellerID:   p.SellerID,
		ServiceID:  p.ServiceID,
		Items:      items,
		TotalPrice: p.TotalPrice,
		CreatedAt:  p.CreatedAt,
	}
}

func FromPacks(packs []entities.SupplyPack) []PackResponse {
	out := make([]PackResponse, len(packs))
	for i, p := range packs {
		out[i] = FromPack(p)
	}
	return out
}
