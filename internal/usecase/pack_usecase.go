package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"obralink/internal/domain/entities"
	"obralink/internal/domain/pricing"
	"obralink/internal/usecase/interfaces"
	"obralink/pkg/identifier"
)

var (
	ErrPackNotFound    = errors.New("pack not found")
	ErrInvalidPackID   = errors.New("invalid pack id")
	ErrInvalidPackData = errors.New("invalid pack data")
	ErrNotPackOwner    = errors.New("not the pack owner")
)

// IPackUseCase owns seller supply packs. The stored total price is
// always the pricing engine's output over the items at write time.
type IPackUseCase interface {
	CreatePack(ctx context.Context, sellerID string, p entities.SupplyPack) (entities.SupplyPack, error)
	UpdatePack(ctx context.Context, actorID, id string, patch entities.PackPatch) (entities.SupplyPack, error)
	DeletePack(ctx context.Context, actorID, id string) error
	GetByID(ctx context.Context, id string) (entities.SupplyPack, error)
	ListByService(ctx context.Context, serviceID string) ([]entities.SupplyPack, error)
	ListBySeller(ctx context.Context, sellerID string) ([]entities.SupplyPack, error)
}

type PackUseCase struct {
	repo        interfaces.IPackRepository
	serviceRepo interfaces.IServiceRepository
}

var _ IPackUseCase = (*PackUseCase)(nil)

func NewPackUseCase(repo interfaces.IPackRepository, serviceRepo interfaces.IServiceRepository) *PackUseCase {
	return &PackUseCase{repo: repo, serviceRepo: serviceRepo}
}

func packTotal(items []entities.PackItem) float64 {
	lines := make([]pricing.LineItem, len(items))
	for i, it := range items {
		lines[i] = pricing.LineItem{Quantity: it.Quantity, UnitPrice: it.UnitPrice}
	}
	return pricing.ComputeTotal(lines)
}

func (u *PackUseCase) CreatePack(ctx context.Context, sellerID string, p entities.SupplyPack) (entities.SupplyPack, error) {
	sellerID = strings.TrimSpace(sellerID)
	p.ServiceID = strings.TrimSpace(p.ServiceID)
	if sellerID == "" || p.ServiceID == "" || len(p.Items) == 0 {
		return entities.SupplyPack{}, ErrInvalidPackData
	}

	svc, err := u.serviceRepo.GetByID(ctx, p.ServiceID)
	if err != nil {
		return entities.SupplyPack{}, err
	}
	if svc.ID == "" {
		return entities.SupplyPack{}, ErrServiceNotFound
	}

	p.ID = identifier.New()
	p.SellerID = sellerID
	p.TotalPrice = packTotal(p.Items)
	p.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, p)
}

func (u *PackUseCase) UpdatePack(ctx context.Context, actorID, id string, patch entities.PackPatch) (entities.SupplyPack, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SupplyPack{}, ErrInvalidPackID
	}

	pack, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.SupplyPack{}, err
	}
	if pack.ID == "" {
		return entities.SupplyPack{}, ErrPackNotFound
	}
	if pack.SellerID != actorID {
		return entities.SupplyPack{}, ErrNotPackOwner
	}

	updated := patch.Apply(pack)
	if len(updated.Items) == 0 {
		return entities.SupplyPack{}, ErrInvalidPackData
	}
	updated.TotalPrice = packTotal(updated.Items)
	return u.repo.Update(ctx, updated)
}

func (u *PackUseCase) DeletePack(ctx context.Context, actorID, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPackID
	}

	pack, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if pack.ID == "" {
		return ErrPackNotFound
	}
	if pack.SellerID != actorID {
		return ErrNotPackOwner
	}
	return u.repo.Delete(ctx, id)
}

func (u *PackUseCase) GetByID(ctx context.Context, id string) (entities.SupplyPack, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SupplyPack{}, ErrInvalidPackID
	}

	pack, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.SupplyPack{}, err
	}
	if pack.ID == "" {
		return entities.SupplyPack{}, ErrPackNotFound
	}
	return pack, nil
}

func (u *PackUseCase) ListByService(ctx context.Context, serviceID string) ([]entities.SupplyPack, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return nil, ErrInvalidServiceID
	}
	return u.repo.ListByServiceID(ctx, serviceID)
}

func (u *PackUseCase) ListBySeller(ctx context.Context, sellerID string) ([]entities.SupplyPack, error) {
	sellerID = strings.TrimSpace(sellerID)
	if sellerID == "" {
		return nil, ErrInvalidPackData
	}
	return u.repo.ListBySellerID(ctx, sellerID)
}
