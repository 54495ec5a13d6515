// Package state holds the application snapshot the mobile client
// bootstraps from, plus the reducer that advances it.
//
// A Snapshot is a derived, read-only view over the record store
// collections; it is never a second source of truth. Apply is a pure
// function: it always returns a new snapshot and never mutates its
// input, so a caller holding an old snapshot keeps seeing it
// unchanged.
package state

import "obralink/internal/domain/entities"

// Snapshot is the full client-visible application state.
type Snapshot struct {
	CurrentUser  *entities.User
	Services     []entities.ServiceRequest
	Quotes       []entities.Quote
	Supplies     []entities.Supply
	SupplyOffers []entities.SupplyPack
}

// Op is one discrete snapshot update. The set of operations is closed:
// each concrete op type below corresponds to one state transition, and
// Apply treats any type outside the set as a no-op.
type Op interface{ isOp() }

// SetUser records the authenticated user.
type SetUser struct{ User entities.User }

// ClearUser logs out: it drops the user and empties all four
// collections.
type ClearUser struct{}

// SelectQuote reflects the service lifecycle transition into the
// snapshot: the service becomes ASSIGNED with the given winning quote.
// When the preconditions do not hold (service absent, already
// assigned, or the quote absent or belonging to another service) the
// snapshot is returned unchanged; rejecting the transition is the
// lifecycle manager's job, not the reducer's.
type SelectQuote struct{ ServiceID, QuoteID string }

type ReplaceServices struct{ Items []entities.ServiceRequest }
type AddService struct{ Item entities.ServiceRequest }
type UpdateService struct {
	ID    string
	Patch entities.ServicePatch
}
type RemoveService struct{ ID string }

type ReplaceQuotes struct{ Items []entities.Quote }
type AddQuote struct{ Item entities.Quote }
type UpdateQuote struct {
	ID    string
	Patch entities.QuotePatch
}
type RemoveQuote struct{ ID string }

type ReplaceSupplies struct{ Items []entities.Supply }
type AddSupply struct{ Item entities.Supply }
type UpdateSupply struct {
	ID    string
	Patch entities.SupplyPatch
}
type RemoveSupply struct{ ID string }

type ReplaceSupplyOffers struct{ Items []entities.SupplyPack }
type AddSupplyOffer struct{ Item entities.SupplyPack }
type UpdateSupplyOffer struct {
	ID    string
	Patch entities.PackPatch
}
type RemoveSupplyOffer struct{ ID string }

func (SetUser) isOp()             {}
func (ClearUser) isOp()           {}
func (SelectQuote) isOp()         {}
func (ReplaceServices) isOp()     {}
func (AddService) isOp()          {}
func (UpdateService) isOp()       {}
func (RemoveService) isOp()       {}
func (ReplaceQuotes) isOp()       {}
func (AddQuote) isOp()            {}
func (UpdateQuote) isOp()         {}
func (RemoveQuote) isOp()         {}
func (ReplaceSupplies) isOp()     {}
func (AddSupply) isOp()           {}
func (UpdateSupply) isOp()        {}
func (RemoveSupply) isOp()        {}
func (ReplaceSupplyOffers) isOp() {}
func (AddSupplyOffer) isOp()      {}
func (UpdateSupplyOffer) isOp()   {}
func (RemoveSupplyOffer) isOp()   {}

// Apply returns the snapshot produced by op. Ops outside the known set
// return the input snapshot unchanged.
func Apply(s Snapshot, op Op) Snapshot {
	switch op := op.(type) {
	case SetUser:
		u := op.User
		s.CurrentUser = &u
	case ClearUser:
		s.CurrentUser = nil
		s.Services = nil
		s.Quotes = nil
		s.Supplies = nil
		s.SupplyOffers = nil
	case SelectQuote:
		s.Services = applySelection(s, op.ServiceID, op.QuoteID)

	case ReplaceServices:
		s.Services = append([]entities.ServiceRequest(nil), op.Items...)
	case AddService:
		s.Services = append(append([]entities.ServiceRequest(nil), s.Services...), op.Item)
	case UpdateService:
		s.Services = patchByID(s.Services, op.ID, serviceID, op.Patch.Apply)
	case RemoveService:
		s.Services = removeByID(s.Services, op.ID, serviceID)

	case ReplaceQuotes:
		s.Quotes = append([]entities.Quote(nil), op.Items...)
	case AddQuote:
		s.Quotes = append(append([]entities.Quote(nil), s.Quotes...), op.Item)
	case UpdateQuote:
		s.Quotes = patchByID(s.Quotes, op.ID, quoteID, op.Patch.Apply)
	case RemoveQuote:
		s.Quotes = removeByID(s.Quotes, op.ID, quoteID)

	case ReplaceSupplies:
		s.Supplies = append([]entities.Supply(nil), op.Items...)
	case AddSupply:
		s.Supplies = append(append([]entities.Supply(nil), s.Supplies...), op.Item)
	case UpdateSupply:
		s.Supplies = patchByID(s.Supplies, op.ID, supplyID, op.Patch.Apply)
	case RemoveSupply:
		s.Supplies = removeByID(s.Supplies, op.ID, supplyID)

	case ReplaceSupplyOffers:
		s.SupplyOffers = append([]entities.SupplyPack(nil), op.Items...)
	case AddSupplyOffer:
		s.SupplyOffers = append(append([]entities.SupplyPack(nil), s.SupplyOffers...), op.Item)
	case UpdateSupplyOffer:
		s.SupplyOffers = patchByID(s.SupplyOffers, op.ID, packID, op.Patch.Apply)
	case RemoveSupplyOffer:
		s.SupplyOffers = removeByID(s.SupplyOffers, op.ID, packID)
	}
	return s
}

func applySelection(s Snapshot, serviceID, quoteID string) []entities.ServiceRequest {
	quoteOK := false
	for _, q := range s.Quotes {
		if q.ID == quoteID && q.ServiceID == serviceID {
			quoteOK = true
			break
		}
	}
	if !quoteOK {
		return s.Services
	}
	out := append([]entities.ServiceRequest(nil), s.Services...)
	for i, svc := range out {
		if svc.ID != serviceID {
			continue
		}
		if err := svc.Assign(quoteID); err != nil {
			return s.Services
		}
		out[i] = svc
		return out
	}
	return s.Services
}

func serviceID(s entities.ServiceRequest) string { return s.ID }
func quoteID(q entities.Quote) string            { return q.ID }
func supplyID(s entities.Supply) string          { return s.ID }
func packID(p entities.SupplyPack) string        { return p.ID }

// patchByID replaces the item with matching id by patch(item). When no
// item matches the input slice is returned as is.
func patchByID[T any](items []T, id string, idOf func(T) string, patch func(T) T) []T {
	for i, it := range items {
		if idOf(it) != id {
			continue
		}
		out := append([]T(nil), items...)
		out[i] = patch(it)
		return out
	}
	return items
}

func removeByID[T any](items []T, id string, idOf func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if idOf(it) != id {
			out = append(out, it)
		}
	}
	return out
}
