package request

import (
	"obralink/internal/domain/entities"
	"obralink/internal/domain/pricing"
)

// PackItemRequest is one pack line as submitted by the client.
// Quantity and unit price are accepted untyped: pack drafts built on
// the mobile side carry whatever the form produced, and the pricing
// engine's coercion rules decide what counts as a number.
type PackItemRequest struct {
	SupplyID  string `json:"supply_id"`
	Name      string `json:"name" binding:"required"`
	Quantity  any    `json:"quantity"`
	UnitPrice any    `json:"unit_price"`
}

func (r PackItemRequest) ToEntity() entities.PackItem {
	return entities.PackItem{
		SupplyID:  r.SupplyID,
		Name:      r.Name,
		Quantity:  pricing.Number(r.Quantity),
		UnitPrice: pricing.Number(r.UnitPrice),
	}
}

type CreatePackRequest struct {
	ServiceID string            `json:"service_id" binding:"required"`
	Items     []PackItemRequest `json:"items" binding:"required"`
}

func (r CreatePackRequest) ToEntity() entities.SupplyPack {
	items := make([]entities.PackItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = it.ToEntity()
	}
	return entities.SupplyPack{ServiceID: r.ServiceID, Items: items}
}

type UpdatePackRequest struct {
	Items *[]PackItemRequest `json:"items"`
}

func (r UpdatePackRequest) ToPatch() entities.PackPatch {
	var p entities.PackPatch
	if r.Items != nil {
		items := make([]entities.PackItem, len(*r.Items))
		for i, it := range *r.Items {
			items[i] = it.ToEntity()
		}
		p.Items = &items
	}
	return p
}
