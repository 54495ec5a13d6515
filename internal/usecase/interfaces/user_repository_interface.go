package interfaces

import (
	"context"

	"obralink/internal/domain/entities"
)

// IUserRepository abstracts record-store persistence for the seeded
// credential list. Accounts are read-only at this layer; there is no
// sign-up flow.
type IUserRepository interface {
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
}
