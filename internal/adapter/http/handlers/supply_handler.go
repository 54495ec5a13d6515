package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"obralink/internal/adapter/http/dto/request"
	"obralink/internal/adapter/http/dto/response"
	"obralink/internal/adapter/http/middleware"
	"obralink/internal/usecase"
	"obralink/pkg"
)

var errInvalidSupplyPayload = pkg.NewDomainErrorSimple("INVALID_SUPPLY_INPUT", "Invalid supply payload", http.StatusBadRequest)

// SupplyHandler exposes the seller's supply catalog.
type SupplyHandler struct {
	usecase usecase.ISupplyUseCase
}

func NewSupplyHandler(uc usecase.ISupplyUseCase) *SupplyHandler {
	return &SupplyHandler{usecase: uc}
}

func (h *SupplyHandler) CreateSupply(c *gin.Context) {
	var payload request.CreateSupplyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSupplyPayload.HTTPStatus, errInvalidSupplyPayload.ToHTTPError())
		return
	}

	supply, err := h.usecase.CreateSupply(c.Request.Context(), middleware.ActorID(c), payload.ToEntity())
	if err != nil {
		appErr := mapSupplyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSupply(supply))
}

// ListSupplies returns the whole catalog, or only the caller's rows
// with ?seller_id=me.
func (h *SupplyHandler) ListSupplies(c *gin.Context) {
	sellerID := c.Query("seller_id")
	if sellerID == "me" {
		sellerID = middleware.ActorID(c)
	}

	supplies, err := h.usecase.List(c.Request.Context(), sellerID)
	if err != nil {
		appErr := mapSupplyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSupplies(supplies))
}

func (h *SupplyHandler) GetSupply(c *gin.Context) {
	supply, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSupplyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSupply(supply))
}

func (h *SupplyHandler) UpdateSupply(c *gin.Context) {
	var payload request.UpdateSupplyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSupplyPayload.HTTPStatus, errInvalidSupplyPayload.ToHTTPError())
		return
	}

	supply, err := h.usecase.UpdateSupply(c.Request.Context(), middleware.ActorID(c), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapSupplyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSupply(supply))
}

func (h *SupplyHandler) DeleteSupply(c *gin.Context) {
	if err := h.usecase.DeleteSupply(c.Request.Context(), middleware.ActorID(c), c.Param("id")); err != nil {
		appErr := mapSupplyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapSupplyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSupplyID), errors.Is(err, usecase.ErrInvalidSupplyData):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotSupplyOwner):
		return pkg.NewDomainErrorSimple("NOT_OWNER", "Only the owning seller may do this", http.StatusForbidden)
	case errors.Is(err, usecase.ErrSupplyNotFound):
		return pkg.NewDomainErrorSimple("SUPPLY_NOT_FOUND", "Supply not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
