package usecase

import (
	"context"
	"errors"
	"testing"

	"obralink/internal/domain/entities"
	mock_interfaces "obralink/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestQuoteUseCase_SubmitQuote(t *testing.T) {
	t.Run("invalid data", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil)
		cases := []entities.Quote{
			{ServiceID: " ", Price: 100, LeadTimeDays: 1},
			{ServiceID: "serv-1", Price: 0, LeadTimeDays: 1},
			{ServiceID: "serv-1", Price: 100, LeadTimeDays: -1},
		}
		for _, q := range cases {
			if _, err := uc.SubmitQuote(context.Background(), "user-2", q); !errors.Is(err, ErrInvalidQuoteData) {
				t.Fatalf("expected ErrInvalidQuoteData for %+v, got %v", q, err)
			}
		}
	})

	t.Run("service not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewQuoteUseCase(repo, serviceRepo)

		serviceRepo.EXPECT().GetByID(gomock.Any(), "serv-9").Return(entities.ServiceRequest{}, nil)

		_, err := uc.SubmitQuote(context.Background(), "user-2", entities.Quote{ServiceID: "serv-9", Price: 100})
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("assigned service rejects new quotes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewQuoteUseCase(repo, serviceRepo)

		serviceRepo.EXPECT().GetByID(gomock.Any(), "serv-1").Return(
			entities.ServiceRequest{ID: "serv-1", State: entities.ServiceStateAssigned}, nil)

		_, err := uc.SubmitQuote(context.Background(), "user-2", entities.Quote{ServiceID: "serv-1", Price: 100})
		if !errors.Is(err, ErrServiceNotQuotable) {
			t.Fatalf("expected ErrServiceNotQuotable, got %v", err)
		}
	})

	t.Run("second quote by the same provider is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewQuoteUseCase(repo, serviceRepo)

		serviceRepo.EXPECT().GetByID(gomock.Any(), "serv-1").Return(
			entities.ServiceRequest{ID: "serv-1", State: entities.ServiceStatePublished}, nil)
		repo.EXPECT().ListByServiceID(gomock.Any(), "serv-1").Return([]entities.Quote{
			{ID: "quot-1", ServiceID: "serv-1", ProviderID: "user-2"},
		}, nil)

		_, err := uc.SubmitQuote(context.Background(), "user-2", entities.Quote{ServiceID: "serv-1", Price: 100})
		if !errors.Is(err, ErrDuplicateQuote) {
			t.Fatalf("expected ErrDuplicateQuote, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewQuoteUseCase(repo, serviceRepo)

		serviceRepo.EXPECT().GetByID(gomock.Any(), "serv-1").Return(
			entities.ServiceRequest{ID: "serv-1", State: entities.ServiceStatePublished}, nil)
		repo.EXPECT().ListByServiceID(gomock.Any(), "serv-1").Return([]entities.Quote{
			{ID: "quot-1", ServiceID: "serv-1", ProviderID: "user-4"},
		}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" || q.ProviderID != "user-2" || q.CreatedAt.IsZero() {
					t.Fatalf("unexpected quote: %+v", q)
				}
				return q, nil
			},
		)

		res, err := uc.SubmitQuote(context.Background(), " user-2 ", entities.Quote{ServiceID: "serv-1", Price: 3500, LeadTimeDays: 5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Price != 3500 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestQuoteUseCase_UpdateQuote(t *testing.T) {
	t.Run("not owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "quot-1").Return(
			entities.Quote{ID: "quot-1", ProviderID: "user-2"}, nil)

		price := 100.0
		_, err := uc.UpdateQuote(context.Background(), "user-4", "quot-1", entities.QuotePatch{Price: &price})
		if !errors.Is(err, ErrNotQuoteOwner) {
			t.Fatalf("expected ErrNotQuoteOwner, got %v", err)
		}
	})

	t.Run("patched price must stay positive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "quot-1").Return(
			entities.Quote{ID: "quot-1", ProviderID: "user-2", Price: 3500}, nil)

		price := 0.0
		_, err := uc.UpdateQuote(context.Background(), "user-2", "quot-1", entities.QuotePatch{Price: &price})
		if !errors.Is(err, ErrInvalidQuoteData) {
			t.Fatalf("expected ErrInvalidQuoteData, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "quot-1").Return(
			entities.Quote{ID: "quot-1", ProviderID: "user-2", Price: 3500, LeadTimeDays: 5}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.Price != 3200 || q.LeadTimeDays != 5 {
					t.Fatalf("unexpected quote: %+v", q)
				}
				return q, nil
			},
		)

		price := 3200.0
		res, err := uc.UpdateQuote(context.Background(), "user-2", "quot-1", entities.QuotePatch{Price: &price})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Price != 3200 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestQuoteUseCase_Compare(t *testing.T) {
	t.Run("invalid service id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil)
		_, err := uc.Compare(context.Background(), "  ", entities.SortByPrice)
		if !errors.Is(err, ErrInvalidServiceID) {
			t.Fatalf("expected ErrInvalidServiceID, got %v", err)
		}
	})

	t.Run("no quotes yields empty ranking and nil best price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().ListAll(gomock.Any()).Return(nil, nil)

		cmp, err := uc.Compare(context.Background(), "serv-1", entities.SortByPrice)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cmp.Quotes) != 0 || cmp.BestPrice != nil {
			t.Fatalf("expected empty comparison, got %+v", cmp)
		}
	})

	t.Run("ranks by price and reports the minimum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().ListAll(gomock.Any()).Return([]entities.Quote{
			{ID: "quot-2", ServiceID: "serv-1", ProviderID: "user-4", Price: 4200, LeadTimeDays: 7},
			{ID: "quot-1", ServiceID: "serv-1", ProviderID: "user-2", Price: 3500, LeadTimeDays: 5},
			{ID: "quot-3", ServiceID: "serv-2", ProviderID: "user-2", Price: 100, LeadTimeDays: 1},
		}, nil)

		cmp, err := uc.Compare(context.Background(), "serv-1", entities.SortByPrice)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cmp.Quotes) != 2 {
			t.Fatalf("expected 2 quotes, got %d", len(cmp.Quotes))
		}
		if cmp.Quotes[0].ID != "quot-1" || cmp.Quotes[1].ID != "quot-2" {
			t.Fatalf("unexpected order: %+v", cmp.Quotes)
		}
		if cmp.BestPrice == nil || *cmp.BestPrice != 3500 {
			t.Fatalf("expected best price 3500, got %+v", cmp.BestPrice)
		}
	})
}
