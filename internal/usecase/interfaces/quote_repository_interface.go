package interfaces

import (
	"context"

	"obralink/internal/domain/entities"
)

// IQuoteRepository abstracts record-store persistence for quotes.
//
// GetByID returns a zero-value entity when the id is absent. List
// methods preserve creation order, which the ranking engine relies on
// for stable tie-breaking.
type IQuoteRepository interface {
	ListAll(ctx context.Context) ([]entities.Quote, error)
	ListByServiceID(ctx context.Context, serviceID string) ([]entities.Quote, error)
	ListByProviderID(ctx context.Context, providerID string) ([]entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
	Delete(ctx context.Context, id string) error
}
