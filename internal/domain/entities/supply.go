package entities

import "time"

// Supply is a material a supply provider sells.
//
// Stock is informational: composing a pack does not reserve or
// decrement it (see DESIGN.md for the open decision).
type Supply struct {
	ID        string    `json:"id"`
	SellerID  string    `json:"seller_id"`
	Name      string    `json:"name"`
	Category  Category  `json:"category"`
	UnitPrice float64   `json:"unit_price"`
	Unit      string    `json:"unit"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
}

// SupplyPatch is a partial edit of a supply by its owning seller.
type SupplyPatch struct {
	Name      *string   `json:"name"`
	Category  *Category `json:"category"`
	UnitPrice *float64  `json:"unit_price"`
	Unit      *string   `json:"unit"`
	Stock     *int      `json:"stock"`
}

// Apply merges the patch onto s and returns the result.
func (p SupplyPatch) Apply(s Supply) Supply {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.UnitPrice != nil {
		s.UnitPrice = *p.UnitPrice
	}
	if p.Unit != nil {
		s.Unit = *p.Unit
	}
	if p.Stock != nil {
		s.Stock = *p.Stock
	}
	return s
}
