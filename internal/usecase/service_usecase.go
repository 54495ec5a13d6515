package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"obralink/internal/domain/entities"
	"obralink/internal/usecase/interfaces"
	"obralink/pkg/identifier"
)

var (
	ErrServiceNotFound      = errors.New("service not found")
	ErrInvalidServiceID     = errors.New("invalid service id")
	ErrInvalidServiceData   = errors.New("invalid service data")
	ErrNotServiceOwner      = errors.New("not the service owner")
	ErrQuoteServiceMismatch = errors.New("quote belongs to another service")
)

// IServiceUseCase owns the service request lifecycle: creation and
// edits while PUBLISHED, listing, deletion, and the single PUBLISHED →
// ASSIGNED transition via quote selection.
type IServiceUseCase interface {
	CreateService(ctx context.Context, requesterID string, s entities.ServiceRequest) (entities.ServiceRequest, error)
	UpdateService(ctx context.Context, actorID, id string, patch entities.ServicePatch) (entities.ServiceRequest, error)
	DeleteService(ctx context.Context, actorID, id string) error
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	List(ctx context.Context, filter entities.ServiceFilter) ([]entities.ServiceRequest, error)
	SelectQuote(ctx context.Context, actorID, serviceID, quoteID string) (entities.ServiceRequest, error)
}

type ServiceUseCase struct {
	repo      interfaces.IServiceRepository
	quoteRepo interfaces.IQuoteRepository
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(repo interfaces.IServiceRepository, quoteRepo interfaces.IQuoteRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo, quoteRepo: quoteRepo}
}

func (u *ServiceUseCase) CreateService(ctx context.Context, requesterID string, s entities.ServiceRequest) (entities.ServiceRequest, error) {
	requesterID = strings.TrimSpace(requesterID)
	if requesterID == "" {
		return entities.ServiceRequest{}, ErrInvalidServiceData
	}

	s.ID = identifier.New()
	s.RequesterID = requesterID
	s.State = entities.ServiceStatePublished
	s.SelectedQuoteID = nil
	s.CreatedAt = time.Now().UTC()

	if problems := s.Validate(); len(problems) > 0 {
		return entities.ServiceRequest{}, fmt.Errorf("%w: %s", ErrInvalidServiceData, strings.Join(problems, "; "))
	}
	return u.repo.Create(ctx, s)
}

// UpdateService edits a PUBLISHED service owned by the actor. Editing
// an ASSIGNED service is not a supported operation: it is guarded as a
// no-op and the stored service comes back unchanged.
func (u *ServiceUseCase) UpdateService(ctx context.Context, actorID, id string, patch entities.ServicePatch) (entities.ServiceRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceRequest{}, ErrInvalidServiceID
	}

	svc, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if svc.ID == "" {
		return entities.ServiceRequest{}, ErrServiceNotFound
	}
	if svc.RequesterID != actorID {
		return entities.ServiceRequest{}, ErrNotServiceOwner
	}
	if svc.State != entities.ServiceStatePublished {
		return svc, nil
	}

	updated := patch.Apply(svc)
	if problems := updated.Validate(); len(problems) > 0 {
		return entities.ServiceRequest{}, fmt.Errorf("%w: %s", ErrInvalidServiceData, strings.Join(problems, "; "))
	}
	return u.repo.Update(ctx, updated)
}

// DeleteService removes a service in any state. Dependent quotes and
// packs are deliberately not cascaded; see DESIGN.md.
func (u *ServiceUseCase) DeleteService(ctx context.Context, actorID, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceID
	}

	svc, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if svc.ID == "" {
		return ErrServiceNotFound
	}
	if svc.RequesterID != actorID {
		return ErrNotServiceOwner
	}
	return u.repo.Delete(ctx, id)
}

func (u *ServiceUseCase) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceRequest{}, ErrInvalidServiceID
	}

	svc, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if svc.ID == "" {
		return entities.ServiceRequest{}, ErrServiceNotFound
	}
	return svc, nil
}

func (u *ServiceUseCase) List(ctx context.Context, filter entities.ServiceFilter) ([]entities.ServiceRequest, error) {
	services, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return entities.FilterServices(services, filter), nil
}

// SelectQuote performs the PUBLISHED → ASSIGNED transition.
//
// Preconditions, checked in order: the service exists, the actor owns
// it, no quote has been selected yet, the quote exists and references
// this service. On success state and selection are persisted in a
// single write; on any failure nothing is written.
func (u *ServiceUseCase) SelectQuote(ctx context.Context, actorID, serviceID, quoteID string) (entities.ServiceRequest, error) {
	serviceID = strings.TrimSpace(serviceID)
	quoteID = strings.TrimSpace(quoteID)
	if serviceID == "" || quoteID == "" {
		return entities.ServiceRequest{}, ErrInvalidServiceID
	}

	svc, err := u.repo.GetByID(ctx, serviceID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if svc.ID == "" {
		return entities.ServiceRequest{}, ErrServiceNotFound
	}
	if svc.RequesterID != actorID {
		return entities.ServiceRequest{}, ErrNotServiceOwner
	}
	if svc.Assigned() {
		return entities.ServiceRequest{}, entities.ErrAlreadyAssigned
	}

	quote, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if quote.ID == "" {
		return entities.ServiceRequest{}, ErrQuoteNotFound
	}
	if quote.ServiceID != serviceID {
		return entities.ServiceRequest{}, ErrQuoteServiceMismatch
	}

	if err := svc.Assign(quoteID); err != nil {
		return entities.ServiceRequest{}, err
	}

	updated, err := u.repo.Update(ctx, svc)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	log.Printf("[service][usecase] quote selected service_id=%s quote_id=%s price=%.2f", serviceID, quoteID, quote.Price)
	return updated, nil
}
