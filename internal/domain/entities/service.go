package entities

import (
	"errors"
	"strings"
	"time"
)

// ServiceState is the lifecycle of a service request.
//
// PUBLISHED is the initial state; ASSIGNED is reached exactly once,
// when the requester selects a quote, and is terminal.
type ServiceState string

const (
	ServiceStatePublished ServiceState = "PUBLISHED"
	ServiceStateAssigned  ServiceState = "ASSIGNED"
)

// Category classifies the kind of work a service request asks for.
type Category string

const (
	CategoryGardening    Category = "GARDENING"
	CategoryPainting     Category = "PAINTING"
	CategoryPlumbing     Category = "PLUMBING"
	CategoryElectrical   Category = "ELECTRICAL"
	CategoryConstruction Category = "CONSTRUCTION"
	CategoryCleaning     Category = "CLEANING"
	CategoryOther        Category = "OTHER"
)

// Categories lists every valid category.
var Categories = []Category{
	CategoryGardening,
	CategoryPainting,
	CategoryPlumbing,
	CategoryElectrical,
	CategoryConstruction,
	CategoryCleaning,
	CategoryOther,
}

func ValidCategory(c Category) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// RequiredSupply is a material the requester declares the job needs,
// so supply providers can offer matching packs.
type RequiredSupply struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
}

// ErrAlreadyAssigned rejects a second quote selection on a service
// that already has a winner.
var ErrAlreadyAssigned = errors.New("service already assigned")

// ServiceRequest is a task posted by a requester seeking provider quotes.
//
// Invariant: SelectedQuoteID is non-nil exactly when State is
// ASSIGNED, and the referenced quote belongs to this service. Both
// fields only ever change together, through Assign.
type ServiceRequest struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	Category         Category         `json:"category"`
	Address          string           `json:"address"`
	City             string           `json:"city"`
	PreferredDate    string           `json:"preferred_date"`
	RequesterID      string           `json:"requester_id"`
	RequiredSupplies []RequiredSupply `json:"required_supplies"`
	State            ServiceState     `json:"state"`
	SelectedQuoteID  *string          `json:"selected_quote_id"`
	CreatedAt        time.Time        `json:"created_at"`
}

// Assigned reports whether a winning quote has been selected.
func (s ServiceRequest) Assigned() bool {
	return s.State == ServiceStateAssigned || s.SelectedQuoteID != nil
}

// Assign transitions the service to ASSIGNED with the given winning
// quote. State and selection move in the same call so no caller can
// observe one without the other. A second assignment is rejected with
// ErrAlreadyAssigned instead of replacing the first winner.
func (s *ServiceRequest) Assign(quoteID string) error {
	if s.Assigned() {
		return ErrAlreadyAssigned
	}
	s.State = ServiceStateAssigned
	s.SelectedQuoteID = &quoteID
	return nil
}

// Validate returns the list of field problems, empty when the request
// is acceptable.
func (s ServiceRequest) Validate() []string {
	var problems []string
	if len(strings.TrimSpace(s.Title)) < 3 {
		problems = append(problems, "title must be at least 3 characters")
	}
	if len(strings.TrimSpace(s.Description)) < 10 {
		problems = append(problems, "description must be at least 10 characters")
	}
	if !ValidCategory(s.Category) {
		problems = append(problems, "category must be one of the known categories")
	}
	if len(strings.TrimSpace(s.Address)) < 5 {
		problems = append(problems, "address must be at least 5 characters")
	}
	if len(strings.TrimSpace(s.City)) < 2 {
		problems = append(problems, "city is required")
	}
	if strings.TrimSpace(s.PreferredDate) == "" {
		problems = append(problems, "preferred date is required")
	}
	return problems
}

// ServicePatch is a partial edit of a service request. Nil fields are
// left untouched. State, selection, requester and timestamps are not
// patchable; they change only through their dedicated operations.
type ServicePatch struct {
	Title            *string           `json:"title"`
	Description      *string           `json:"description"`
	Category         *Category         `json:"category"`
	Address          *string           `json:"address"`
	City             *string           `json:"city"`
	PreferredDate    *string           `json:"preferred_date"`
	RequiredSupplies *[]RequiredSupply `json:"required_supplies"`
}

// Apply merges the patch onto s and returns the result.
func (p ServicePatch) Apply(s ServiceRequest) ServiceRequest {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.Address != nil {
		s.Address = *p.Address
	}
	if p.City != nil {
		s.City = *p.City
	}
	if p.PreferredDate != nil {
		s.PreferredDate = *p.PreferredDate
	}
	if p.RequiredSupplies != nil {
		s.RequiredSupplies = *p.RequiredSupplies
	}
	return s
}

// ServiceFilter narrows a service listing. Zero values match everything.
type ServiceFilter struct {
	RequesterID string
	Category    Category
	State       ServiceState
}

// FilterServices returns the services matching every set filter
// criterion, preserving input order.
func FilterServices(services []ServiceRequest, f ServiceFilter) []ServiceRequest {
	out := make([]ServiceRequest, 0, len(services))
	for _, s := range services {
		if f.RequesterID != "" && s.RequesterID != f.RequesterID {
			continue
		}
		if f.Category != "" && s.Category != f.Category {
			continue
		}
		if f.State != "" && s.State != f.State {
			continue
		}
		out = append(out, s)
	}
	return out
}
