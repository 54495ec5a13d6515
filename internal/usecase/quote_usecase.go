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
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrInvalidQuoteID     = errors.New("invalid quote id")
	ErrInvalidQuoteData   = errors.New("invalid quote data")
	ErrDuplicateQuote     = errors.New("provider already quoted this service")
	ErrNotQuoteOwner      = errors.New("not the quote owner")
	ErrServiceNotQuotable = errors.New("service not open for quotes")
)

// Comparison is the quote comparison view for one service: the ranked
// quotes plus the best (minimum) price, nil when there are no quotes.
type Comparison struct {
	Quotes    []entities.Quote
	BestPrice *float64
}

// IQuoteUseCase owns quote submission and the comparison view.
//
// Uniqueness per (service, provider) is enforced here on submission,
// not by the store.
type IQuoteUseCase interface {
	SubmitQuote(ctx context.Context, providerID string, q entities.Quote) (entities.Quote, error)
	UpdateQuote(ctx context.Context, actorID, id string, patch entities.QuotePatch) (entities.Quote, error)
	DeleteQuote(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByProvider(ctx context.Context, providerID string) ([]entities.Quote, error)
	Compare(ctx context.Context, serviceID string, key entities.QuoteSortKey) (Comparison, error)
}

type QuoteUseCase struct {
	repo        interfaces.IQuoteRepository
	serviceRepo interfaces.IServiceRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, serviceRepo interfaces.IServiceRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, serviceRepo: serviceRepo}
}

func (u *QuoteUseCase) SubmitQuote(ctx context.Context, providerID string, q entities.Quote) (entities.Quote, error) {
	providerID = strings.TrimSpace(providerID)
	q.ServiceID = strings.TrimSpace(q.ServiceID)
	if providerID == "" || q.ServiceID == "" {
		return entities.Quote{}, ErrInvalidQuoteData
	}
	if q.Price <= 0 || q.LeadTimeDays < 0 {
		return entities.Quote{}, ErrInvalidQuoteData
	}

	svc, err := u.serviceRepo.GetByID(ctx, q.ServiceID)
	if err != nil {
		return entities.Quote{}, err
	}
	if svc.ID == "" {
		return entities.Quote{}, ErrServiceNotFound
	}
	if svc.State != entities.ServiceStatePublished {
		return entities.Quote{}, ErrServiceNotQuotable
	}

	// One quote per (service, provider).
	existing, err := u.repo.ListByServiceID(ctx, q.ServiceID)
	if err != nil {
		return entities.Quote{}, err
	}
	for _, e := range existing {
		if e.ProviderID == providerID {
			return entities.Quote{}, ErrDuplicateQuote
		}
	}

	q.ID = identifier.New()
	q.ProviderID = providerID
	q.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, q)
}

func (u *QuoteUseCase) UpdateQuote(ctx context.Context, actorID, id string, patch entities.QuotePatch) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	quote, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if quote.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	if quote.ProviderID != actorID {
		return entities.Quote{}, ErrNotQuoteOwner
	}

	updated := patch.Apply(quote)
	if updated.Price <= 0 || updated.LeadTimeDays < 0 {
		return entities.Quote{}, ErrInvalidQuoteData
	}
	return u.repo.Update(ctx, updated)
}

// DeleteQuote removes a quote outright. The mobile client never calls
// it; the endpoint exists for administrative cleanup.
func (u *QuoteUseCase) DeleteQuote(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}

	quote, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quote.ID == "" {
		return ErrQuoteNotFound
	}
	return u.repo.Delete(ctx, id)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	quote, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if quote.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return quote, nil
}

func (u *QuoteUseCase) ListByProvider(ctx context.Context, providerID string) ([]entities.Quote, error) {
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return nil, ErrInvalidQuoteData
	}
	return u.repo.ListByProviderID(ctx, providerID)
}

// Compare returns the ranked quotes for a service together with the
// best price. A service with zero quotes yields an empty ranking and a
// nil best price; comparison itself never fails on content, only on
// store errors.
func (u *QuoteUseCase) Compare(ctx context.Context, serviceID string, key entities.QuoteSortKey) (Comparison, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return Comparison{}, ErrInvalidServiceID
	}

	quotes, err := u.repo.ListAll(ctx)
	if err != nil {
		return Comparison{}, err
	}
	ranked := entities.RankQuotes(quotes, serviceID, key)
	return Comparison{Quotes: ranked, BestPrice: entities.BestPrice(ranked)}, nil
}
