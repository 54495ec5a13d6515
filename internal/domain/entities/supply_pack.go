package entities

import "time"

// PackItem is one priced line of a supply pack. It may reference a
// catalog supply through SupplyID or be freeform (SupplyID empty).
type PackItem struct {
	SupplyID  string  `json:"supply_id,omitempty"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// SupplyPack is a seller-curated bundle of supplies offered against
// one service request's declared required supplies.
//
// TotalPrice is derived: it equals the pricing engine's output over
// Items at the time the pack was last written, and is not re-validated
// on read.
type SupplyPack struct {
	ID         string     `json:"id"`
	SellerID   string     `json:"seller_id"`
	ServiceID  string     `json:"service_id"`
	Items      []PackItem `json:"items"`
	TotalPrice float64    `json:"total_price"`
	CreatedAt  time.Time  `json:"created_at"`
}

// PackPatch is a partial edit of a pack by its owning seller. When
// Items changes, TotalPrice is recomputed by the caller; the two
// travel together here so a snapshot patch stays consistent.
type PackPatch struct {
	Items      *[]PackItem `json:"items"`
	TotalPrice *float64    `json:"total_price"`
}

// Apply merges the patch onto sp and returns the result.
func (p PackPatch) Apply(sp SupplyPack) SupplyPack {
	if p.Items != nil {
		sp.Items = *p.Items
	}
	if p.TotalPrice != nil {
		sp.TotalPrice = *p.TotalPrice
	}
	return sp
}
