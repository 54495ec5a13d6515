package interfaces

import (
	"context"

	"obralink/internal/domain/entities"
)

// IPackRepository abstracts record-store persistence for supply packs.
type IPackRepository interface {
	ListAll(ctx context.Context) ([]entities.SupplyPack, error)
	ListByServiceID(ctx context.Context, serviceID string) ([]entities.SupplyPack, error)
	ListBySellerID(ctx context.Context, sellerID string) ([]entities.SupplyPack, error)
	GetByID(ctx context.Context, id string) (entities.SupplyPack, error)
	Create(ctx context.Context, p entities.SupplyPack) (entities.SupplyPack, error)
	Update(ctx context.Context, p entities.SupplyPack) (entities.SupplyPack, error)
	Delete(ctx context.Context, id string) error
}
