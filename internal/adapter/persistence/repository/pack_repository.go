package repository

import (
	"context"

	"obralink/internal/adapter/persistence/store"
	"obralink/internal/domain/entities"
	"obralink/internal/usecase/interfaces"
)

const packsCollection = "packs"

// PackStoreRepository persists supply packs as one JSON document in
// the record store.
type PackStoreRepository struct {
	store *store.CollectionStore
}

var _ interfaces.IPackRepository = (*PackStoreRepository)(nil)

func NewPackStoreRepository(s *store.CollectionStore) *PackStoreRepository {
	return &PackStoreRepository{store: s}
}

func (r *PackStoreRepository) ListAll(ctx context.Context) ([]entities.SupplyPack, error) {
	return store.ReadCollection(ctx, r.store, packsCollection, seedPacks())
}

func (r *PackStoreRepository) ListByServiceID(ctx context.Context, serviceID string) ([]entities.SupplyPack, error) {
	packs, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.SupplyPack, 0, len(packs))
	for _, p := range packs {
		if p.ServiceID == serviceID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PackStoreRepository) ListBySellerID(ctx context.Context, sellerID string) ([]entities.SupplyPack, error) {
	packs, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.SupplyPack, 0, len(packs))
	for _, p := range packs {
		if p.SellerID == sellerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PackStoreRepository) GetByID(ctx context.Context, id string) (entities.SupplyPack, error) {
	packs, err := r.ListAll(ctx)
	if err != nil {
		return entities.SupplyPack{}, err
	}
	for _, p := range packs {
		if p.ID == id {
			return p, nil
		}
	}
	return entities.SupplyPack{}, nil
}

func (r *PackStoreRepository) Create(ctx context.Context, p entities.SupplyPack) (entities.SupplyPack, error) {
	packs, err := r.ListAll(ctx)
	if err != nil {
		return entities.SupplyPack{}, err
	}
	packs = append(packs, p)
	if err := store.WriteCollection(ctx, r.store, packsCollection, packs); err != nil {
		return entities.SupplyPack{}, err
	}
	return p, nil
}

func (r *PackStoreRepository) Update(ctx context.Context, p entities.SupplyPack) (entities.SupplyPack, error) {
	packs, err := r.ListAll(ctx)
	if err != nil {
		return entities.SupplyPack{}, err
	}
	for i := range packs {
		if packs[i].ID == p.ID {
			packs[i] = p
			if err := store.WriteCollection(ctx, r.store, packsCollection, packs); err != nil {
				return entities.SupplyPack{}, err
			}
			return p, nil
		}
	}
	return entities.SupplyPack{}, nil
}

func (r *PackStoreRepository) Delete(ctx context.Context, id string) error {
	packs, err := r.ListAll(ctx)
	if err != nil {
		return err
	}
	kept := make([]entities.SupplyPack, 0, len(packs))
	for _, p := range packs {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return store.WriteCollection(ctx, r.store, packsCollection, kept)
}
