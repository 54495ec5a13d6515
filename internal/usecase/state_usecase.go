package usecase

import (
	"context"
	"errors"

	"obralink/internal/state"
	"obralink/internal/usecase/interfaces"
)

var ErrUserNotFound = errors.New("user not found")

// IStateUseCase builds the bootstrap snapshot the mobile client
// hydrates its local state from after login.
type IStateUseCase interface {
	Snapshot(ctx context.Context, userID string) (state.Snapshot, error)
}

type StateUseCase struct {
	userRepo    interfaces.IUserRepository
	serviceRepo interfaces.IServiceRepository
	quoteRepo   interfaces.IQuoteRepository
	supplyRepo  interfaces.ISupplyRepository
	packRepo    interfaces.IPackRepository
}

var _ IStateUseCase = (*StateUseCase)(nil)

func NewStateUseCase(
	userRepo interfaces.IUserRepository,
	serviceRepo interfaces.IServiceRepository,
	quoteRepo interfaces.IQuoteRepository,
	supplyRepo interfaces.ISupplyRepository,
	packRepo interfaces.IPackRepository,
) *StateUseCase {
	return &StateUseCase{
		userRepo:    userRepo,
		serviceRepo: serviceRepo,
		quoteRepo:   quoteRepo,
		supplyRepo:  supplyRepo,
		packRepo:    packRepo,
	}
}

// Snapshot reads every collection and folds it into a fresh snapshot
// through the reducer, so the projection built here advances through
// the exact same operations the client applies locally.
func (u *StateUseCase) Snapshot(ctx context.Context, userID string) (state.Snapshot, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return state.Snapshot{}, err
	}
	if user.ID == "" {
		return state.Snapshot{}, ErrUserNotFound
	}
	user.PasswordHash = ""

	services, err := u.serviceRepo.ListAll(ctx)
	if err != nil {
		return state.Snapshot{}, err
	}
	quotes, err := u.quoteRepo.ListAll(ctx)
	if err != nil {
		return state.Snapshot{}, err
	}
	supplies, err := u.supplyRepo.ListAll(ctx)
	if err != nil {
		return state.Snapshot{}, err
	}
	packs, err := u.packRepo.ListAll(ctx)
	if err != nil {
		return state.Snapshot{}, err
	}

	snap := state.Snapshot{}
	for _, op := range []state.Op{
		state.SetUser{User: user},
		state.ReplaceServices{Items: services},
		state.ReplaceQuotes{Items: quotes},
		state.ReplaceSupplies{Items: supplies},
		state.ReplaceSupplyOffers{Items: packs},
	} {
		snap = state.Apply(snap, op)
	}
	return snap, nil
}
