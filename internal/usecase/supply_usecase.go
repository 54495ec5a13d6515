package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"obralink/internal/domain/entities"
	"obralink/internal/usecase/interfaces"
	"obralink/pkg/identifier"
)

var (
	ErrSupplyNotFound    = errors.New("supply not found")
	ErrInvalidSupplyID   = errors.New("invalid supply id")
	ErrInvalidSupplyData = errors.New("invalid supply data")
	ErrNotSupplyOwner    = errors.New("not the supply owner")
)

// ISupplyUseCase owns the supply catalog of a seller.
type ISupplyUseCase interface {
	CreateSupply(ctx context.Context, sellerID string, s entities.Supply) (entities.Supply, error)
	UpdateSupply(ctx context.Context, actorID, id string, patch entities.SupplyPatch) (entities.Supply, error)
	DeleteSupply(ctx context.Context, actorID, id string) error
	GetByID(ctx context.Context, id string) (entities.Supply, error)
	List(ctx context.Context, sellerID string) ([]entities.Supply, error)
}

type SupplyUseCase struct {
	repo interfaces.ISupplyRepository
}

var _ ISupplyUseCase = (*SupplyUseCase)(nil)

func NewSupplyUseCase(repo interfaces.ISupplyRepository) *SupplyUseCase {
	return &SupplyUseCase{repo: repo}
}

func validSupply(s entities.Supply) bool {
	return strings.TrimSpace(s.Name) != "" && s.UnitPrice > 0 && s.Stock >= 0
}

func (u *SupplyUseCase) CreateSupply(ctx context.Context, sellerID string, s entities.Supply) (entities.Supply, error) {
	sellerID = strings.TrimSpace(sellerID)
	if sellerID == "" || !validSupply(s) {
		return entities.Supply{}, ErrInvalidSupplyData
	}

	s.ID = identifier.New()
	s.SellerID = sellerID
	s.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, s)
}

func (u *SupplyUseCase) UpdateSupply(ctx context.Context, actorID, id string, patch entities.SupplyPatch) (entities.Supply, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Supply{}, ErrInvalidSupplyID
	}

	supply, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Supply{}, err
	}
	if supply.ID == "" {
		return entities.Supply{}, ErrSupplyNotFound
	}
	if supply.SellerID != actorID {
		return entities.Supply{}, ErrNotSupplyOwner
	}

	updated := patch.Apply(supply)
	if !validSupply(updated) {
		return entities.Supply{}, ErrInvalidSupplyData
	}
	return u.repo.Update(ctx, updated)
}

func (u *SupplyUseCase) DeleteSupply(ctx context.Context, actorID, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidSupplyID
	}

	supply, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if supply.ID == "" {
		return ErrSupplyNotFound
	}
	if supply.SellerID != actorID {
		return ErrNotSupplyOwner
	}
	return u.repo.Delete(ctx, id)
}

func (u *SupplyUseCase) GetByID(ctx context.Context, id string) (entities.Supply, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Supply{}, ErrInvalidSupplyID
	}

	supply, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Supply{}, err
	}
	if supply.ID == "" {
		return entities.Supply{}, ErrSupplyNotFound
	}
	return supply, nil
}

// List returns every supply, or only the given seller's when sellerID
// is set.
func (u *SupplyUseCase) List(ctx context.Context, sellerID string) ([]entities.Supply, error) {
	sellerID = strings.TrimSpace(sellerID)
	if sellerID != "" {
		return u.repo.ListBySellerID(ctx, sellerID)
	}
	return u.repo.ListAll(ctx)
}
