package interfaces

import (
	"context"

	"obralink/internal/domain/entities"
)

// ISupplyRepository abstracts record-store persistence for supplies.
type ISupplyRepository interface {
	ListAll(ctx context.Context) ([]entities.Supply, error)
	ListBySellerID(ctx context.Context, sellerID string) ([]entities.Supply, error)
	GetByID(ctx context.Context, id string) (entities.Supply, error)
	Create(ctx context.Context, s entities.Supply) (entities.Supply, error)
	Update(ctx context.Context, s entities.Supply) (entities.Supply, error)
	Delete(ctx context.Context, id string) error
}
