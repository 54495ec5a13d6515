package response

import "obralink/internal/state"

// StateResponse is the bootstrap snapshot the mobile client hydrates
// from after login.
type StateResponse struct {
	CurrentUser  *UserResponse     `json:"current_user"`
	Services     []ServiceResponse `json:"services"`
	Quotes       []QuoteResponse   `json:"quotes"`
	Supplies     []SupplyResponse  `json:"supplies"`
	SupplyOffers []PackResponse    `json:"supply_offers"`
}

func FromSnapshot(s state.Snapshot) StateResponse {
	res := StateResponse{
		Services:     FromServices(s.Services),
		Quotes:       FromQuotes(s.Quotes),
		Supplies:     FromSupplies(s.Supplies),
		SupplyOffers: FromPacks(s.SupplyOffers),
	}
	if s.CurrentUser != nil {
		u := FromUser(*s.CurrentUser)
		res.CurrentUser = &u
	}
	return res
}
