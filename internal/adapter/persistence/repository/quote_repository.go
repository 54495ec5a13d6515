package repository

import (
	"context"

	"obralink/internal/adapter/persistence/store"
	"obralink/internal/domain/entities"
	"obralink/internal/usecase/interfaces"
)

const quotesCollection = "quotes"

// QuoteStoreRepository persists quotes as one JSON document in the
// record store. Document order is creation order, which the ranking
// engine's stable tie-break relies on.
type QuoteStoreRepository struct {
	store *store.CollectionStore
}

var _ interfaces.IQuoteRepository = (*QuoteStoreRepository)(nil)

func NewQuoteStoreRepository(s *store.CollectionStore) *QuoteStoreRepository {
	return &QuoteStoreRepository{store: s}
}

func (r *QuoteStoreRepository) ListAll(ctx context.Context) ([]entities.Quote, error) {
	return store.ReadCollection(ctx, r.store, quotesCollection, seedQuotes())
}

func (r *QuoteStoreRepository) ListByServiceID(ctx context.Context, serviceID string) ([]entities.Quote, error) {
	quotes, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.ServiceID == serviceID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *QuoteStoreRepository) ListByProviderID(ctx context.Context, providerID string) ([]entities.Quote, error) {
	quotes, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.ProviderID == providerID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *QuoteStoreRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	quotes, err := r.ListAll(ctx)
	if err != nil {
		return entities.Quote{}, err
	}
	for _, q := range quotes {
		if q.ID == id {
			return q, nil
		}
	}
	return entities.Quote{}, nil
}

func (r *QuoteStoreRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	quotes, err := r.ListAll(ctx)
	if err != nil {
		return entities.Quote{}, err
	}
	quotes = append(quotes, q)
	if err := store.WriteCollection(ctx, r.store, quotesCollection, quotes); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteStoreRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	quotes, err := r.ListAll(ctx)
	if err != nil {
		return entities.Quote{}, err
	}
	for i := range quotes {
		if quotes[i].ID == q.ID {
			quotes[i] = q
			if err := store.WriteCollection(ctx, r.store, quotesCollection, quotes); err != nil {
				return entities.Quote{}, err
			}
			return q, nil
		}
	}
	return entities.Quote{}, nil
}

func (r *QuoteStoreRepository) Delete(ctx context.Context, id string) error {
	quotes, err := r.ListAll(ctx)
	if err != nil {
		return err
	}
	kept := make([]entities.Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	return store.WriteCollection(ctx, r.store, quotesCollection, kept)
}
