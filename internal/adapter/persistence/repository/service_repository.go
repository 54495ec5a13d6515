package repository

import (
	"context"

	"obralink/internal/adapter/persistence/store"
	"obralink/internal/domain/entities"
	"obralink/internal/usecase/interfaces"
)

const servicesCollection = "services"

// ServiceStoreRepository persists service requests as one JSON
// document in the record store. GetByID returns a zero-value entity
// when the id is absent, per the repository convention.
type ServiceStoreRepository struct {
	store *store.CollectionStore
}

var _ interfaces.IServiceRepository = (*ServiceStoreRepository)(nil)

func NewServiceStoreRepository(s *store.CollectionStore) *ServiceStoreRepository {
	return &ServiceStoreRepository{store: s}
}

func (r *ServiceStoreRepository) ListAll(ctx context.Context) ([]entities.ServiceRequest, error) {
	return store.ReadCollection(ctx, r.store, servicesCollection, seedServices())
}

func (r *ServiceStoreRepository) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	services, err := r.ListAll(ctx)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	for _, s := range services {
		if s.ID == id {
			return s, nil
		}
	}
	return entities.ServiceRequest{}, nil
}

func (r *ServiceStoreRepository) Create(ctx context.Context, s entities.ServiceRequest) (entities.ServiceRequest, error) {
	services, err := r.ListAll(ctx)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	services = append(services, s)
	if err := store.WriteCollection(ctx, r.store, servicesCollection, services); err != nil {
		return entities.ServiceRequest{}, err
	}
	return s, nil
}

func (r *ServiceStoreRepository) Update(ctx context.Context, s entities.ServiceRequest) (entities.ServiceRequest, error) {
	services, err := r.ListAll(ctx)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	for i := range services {
		if services[i].ID == s.ID {
			services[i] = s
			if err := store.WriteCollection(ctx, r.store, servicesCollection, services); err != nil {
				return entities.ServiceRequest{}, err
			}
			return s, nil
		}
	}
	return entities.ServiceRequest{}, nil
}

func (r *ServiceStoreRepository) Delete(ctx context.Context, id string) error {
	services, err := r.ListAll(ctx)
	if err != nil {
		return err
	}
	kept := make([]entities.ServiceRequest, 0, len(services))
	for _, s := range services {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	return store.WriteCollection(ctx, r.store, servicesCollection, kept)
}
