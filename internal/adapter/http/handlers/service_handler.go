package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"obralink/internal/adapter/http/dto/request"
	"obralink/internal/adapter/http/dto/response"
	"obralink/internal/adapter/http/middleware"
	"obralink/internal/domain/entities"
	"obralink/internal/usecase"
	"obralink/pkg"
)

var errInvalidServicePayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_INPUT", "Invalid service payload", http.StatusBadRequest)

// ServiceHandler exposes the service request lifecycle: CRUD while
// published, filtered listings and the quote selection transition.
type ServiceHandler struct {
	usecase usecase.IServiceUseCase
}

func NewServiceHandler(uc usecase.IServiceUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

func (h *ServiceHandler) CreateService(c *gin.Context) {
	var payload request.CreateServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	svc, err := h.usecase.CreateService(c.Request.Context(), middleware.ActorID(c), payload.ToEntity())
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromService(svc))
}

// ListServices supports the listing screens: ?requester_id=&category=
// &state= narrow the result; "me" as requester_id resolves to the
// caller.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	requesterID := c.Query("requester_id")
	if requesterID == "me" {
		requesterID = middleware.ActorID(c)
	}
	filter := entities.ServiceFilter{
		RequesterID: requesterID,
		Category:    entities.Category(c.Query("category")),
		State:       entities.ServiceState(c.Query("state")),
	}

	services, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServices(services))
}

func (h *ServiceHandler) GetService(c *gin.Context) {
	svc, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromService(svc))
}

func (h *ServiceHandler) UpdateService(c *gin.Context) {
	var payload request.UpdateServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	svc, err := h.usecase.UpdateService(c.Request.Context(), middleware.ActorID(c), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromService(svc))
}

func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.usecase.DeleteService(c.Request.Context(), middleware.ActorID(c), c.Param("id")); err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// SelectQuote assigns the winning quote to a published service.
func (h *ServiceHandler) SelectQuote(c *gin.Context) {
	var payload request.SelectQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	svc, err := h.usecase.SelectQuote(c.Request.Context(), middleware.ActorID(c), c.Param("id"), payload.QuoteID)
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromService(svc))
}

func mapServiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID),
		errors.Is(err, usecase.ErrInvalidServiceData),
		errors.Is(err, usecase.ErrQuoteServiceMismatch),
		errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotServiceOwner):
		return pkg.NewDomainErrorSimple("NOT_OWNER", "Only the owning requester may do this", http.StatusForbidden)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrAlreadyAssigned):
		return pkg.NewDomainErrorSimple("ALREADY_ASSIGNED", "Service already has a selected quote", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
