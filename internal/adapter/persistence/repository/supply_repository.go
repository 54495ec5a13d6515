package repository

import (
	"context"

	"obralink/internal/adapter/persistence/store"
	"obralink/internal/domain/entities"
	"obralink/internal/usecase/interfaces"
)

const suppliesCollection = "supplies"

// SupplyStoreRepository persists the supply catalog as one JSON
// document in the record store.
type SupplyStoreRepository struct {
	store *store.CollectionStore
}

var _ interfaces.ISupplyRepository = (*SupplyStoreRepository)(nil)

func NewSupplyStoreRepository(s *store.CollectionStore) *SupplyStoreRepository {
	return &SupplyStoreRepository{store: s}
}

func (r *SupplyStoreRepository) ListAll(ctx context.Context) ([]entities.Supply, error) {
	return store.ReadCollection(ctx, r.store, suppliesCollection, seedSupplies())
}

func (r *SupplyStoreRepository) ListBySellerID(ctx context.Context, sellerID string) ([]entities.Supply, error) {
	supplies, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Supply, 0, len(supplies))
	for _, s := range supplies {
		if s.SellerID == sellerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *SupplyStoreRepository) GetByID(ctx context.Context, id string) (entities.Supply, error) {
	supplies, err := r.ListAll(ctx)
	if err != nil {
		return entities.Supply{}, err
	}
	for _, s := range supplies {
		if s.ID == id {
			return s, nil
		}
	}
	return entities.Supply{}, nil
}

func (r *SupplyStoreRepository) Create(ctx context.Context, s entities.Supply) (entities.Supply, error) {
	supplies, err := r.ListAll(ctx)
	if err != nil {
		return entities.Supply{}, err
	}
	supplies = append(supplies, s)
	if err := store.WriteCollection(ctx, r.store, suppliesCollection, supplies); err != nil {
		return entities.Supply{}, err
	}
	return s, nil
}

func (r *SupplyStoreRepository) Update(ctx context.Context, s entities.Supply) (entities.Supply, error) {
	supplies, err := r.ListAll(ctx)
	if err != nil {
		return entities.Supply{}, err
	}
	for i := range supplies {
		if supplies[i].ID == s.ID {
			supplies[i] = s
			if err := store.WriteCollection(ctx, r.store, suppliesCollection, supplies); err != nil {
				return entities.Supply{}, err
			}
			return s, nil
		}
	}
	return entities.Supply{}, nil
}

func (r *SupplyStoreRepository) Delete(ctx context.Context, id string) error {
	supplies, err := r.ListAll(ctx)
	if err != nil {
		return err
	}
	kept := make([]entities.Supply, 0, len(supplies))
	for _, s := range supplies {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	return store.WriteCollection(ctx, r.store, suppliesCollection, kept)
}
