package repository

import (
	"context"
	"strings"

	"obralink/internal/adapter/persistence/store"
	"obralink/internal/domain/entities"
	"obralink/internal/usecase/interfaces"
)

const usersCollection = "users"

// UserStoreRepository serves the credential list. The collection seeds
// itself on first read; there is no account mutation surface.
type UserStoreRepository struct {
	store *store.CollectionStore
}

var _ interfaces.IUserRepository = (*UserStoreRepository)(nil)

func NewUserStoreRepository(s *store.CollectionStore) *UserStoreRepository {
	return &UserStoreRepository{store: s}
}

func (r *UserStoreRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	users, err := store.ReadCollection(ctx, r.store, usersCollection, seedUsers())
	if err != nil {
		return entities.User{}, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return entities.User{}, nil
}

func (r *UserStoreRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	users, err := store.ReadCollection(ctx, r.store, usersCollection, seedUsers())
	if err != nil {
		return entities.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return entities.User{}, nil
}
