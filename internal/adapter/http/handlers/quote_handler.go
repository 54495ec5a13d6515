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

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler exposes quote submission and the comparison view.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.SubmitQuote(c.Request.Context(), middleware.ActorID(c), payload.ToEntity())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	var payload request.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.UpdateQuote(c.Request.Context(), middleware.ActorID(c), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.usecase.DeleteQuote(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ListMyQuotes returns the authenticated provider's submitted quotes.
func (h *QuoteHandler) ListMyQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListByProvider(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// CompareQuotes returns the ranked quotes for a service. ?sort=price
// (default) or ?sort=lead_time.
func (h *QuoteHandler) CompareQuotes(c *gin.Context) {
	key := entities.SortByPrice
	if c.DefaultQuery("sort", "price") == "lead_time" {
		key = entities.SortByLeadTime
	}

	comparison, err := h.usecase.Compare(c.Request.Context(), c.Param("id"), key)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromComparison(comparison.Quotes, comparison.BestPrice))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidQuoteData),
		errors.Is(err, usecase.ErrInvalidServiceID),
		errors.Is(err, usecase.ErrServiceNotQuotable):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotQuoteOwner):
		return pkg.NewDomainErrorSimple("NOT_OWNER", "Only the owning provider may do this", http.StatusForbidden)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDuplicateQuote):
		return pkg.NewDomainErrorSimple("DUPLICATE_QUOTE", "Provider already quoted this service", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
