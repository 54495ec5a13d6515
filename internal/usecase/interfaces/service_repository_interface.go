package interfaces

import (
	"context"

	"obralink/internal/domain/entities"
)

// IServiceRepository abstracts record-store persistence for service
// requests.
//
// Store semantics: the backing collection is a single JSON document,
// so every mutation is read-all, mutate in memory, write-all. GetByID
// returns a zero-value entity (ID == "") when the id is absent; the
// usecase maps that to its not-found error.
type IServiceRepository interface {
	ListAll(ctx context.Context) ([]entities.ServiceRequest, error)
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	Create(ctx context.Context, s entities.ServiceRequest) (entities.ServiceRequest, error)
	Update(ctx context.Context, s entities.ServiceRequest) (entities.ServiceRequest, error)
	Delete(ctx context.Context, id string) error
}
