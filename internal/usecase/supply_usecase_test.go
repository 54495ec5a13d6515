package usecase

import (
	"context"
	"errors"
	"testing"

	"obralink/internal/domain/entities"
	mock_interfaces "obralink/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSupplyUseCase_CreateSupply(t *testing.T) {
	t.Run("invalid data", func(t *testing.T) {
		uc := NewSupplyUseCase(nil)
		cases := []entities.Supply{
			{Name: " ", UnitPrice: 10},
			{Name: "Cement bag", UnitPrice: 0},
			{Name: "Cement bag", UnitPrice: 10, Stock: -1},
		}
		for _, s := range cases {
			if _, err := uc.CreateSupply(context.Background(), "user-3", s); !errors.Is(err, ErrInvalidSupplyData) {
				t.Fatalf("expected ErrInvalidSupplyData for %+v, got %v", s, err)
			}
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISupplyRepository(ctrl)
		uc := NewSupplyUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Supply{})).DoAndReturn(
			func(_ context.Context, s entities.Supply) (entities.Supply, error) {
				if s.ID == "" || s.SellerID != "user-3" || s.CreatedAt.IsZero() {
					t.Fatalf("unexpected supply: %+v", s)
				}
				return s, nil
			},
		)

		res, err := uc.CreateSupply(context.Background(), "user-3", entities.Supply{Name: "Cement bag", UnitPrice: 40, Stock: 100})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Name != "Cement bag" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestSupplyUseCase_UpdateSupply(t *testing.T) {
	t.Run("not owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISupplyRepository(ctrl)
		uc := NewSupplyUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "supp-1").Return(
			entities.Supply{ID: "supp-1", SellerID: "user-3"}, nil)

		price := 45.0
		_, err := uc.UpdateSupply(context.Background(), "user-5", "supp-1", entities.SupplyPatch{UnitPrice: &price})
		if !errors.Is(err, ErrNotSupplyOwner) {
			t.Fatalf("expected ErrNotSupplyOwner, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISupplyRepository(ctrl)
		uc := NewSupplyUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "supp-1").Return(
			entities.Supply{ID: "supp-1", SellerID: "user-3", Name: "Cement bag", UnitPrice: 40, Stock: 100}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Supply{})).DoAndReturn(
			func(_ context.Context, s entities.Supply) (entities.Supply, error) {
				if s.UnitPrice != 45 || s.Stock != 100 {
					t.Fatalf("unexpected supply: %+v", s)
				}
				return s, nil
			},
		)

		price := 45.0
		res, err := uc.UpdateSupply(context.Background(), "user-3", "supp-1", entities.SupplyPatch{UnitPrice: &price})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.UnitPrice != 45 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
