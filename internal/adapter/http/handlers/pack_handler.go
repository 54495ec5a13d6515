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

var errInvalidPackPayload = pkg.NewDomainErrorSimple("INVALID_PACK_INPUT", "Invalid pack payload", http.StatusBadRequest)

// PackHandler exposes seller supply packs. Totals in responses always
// come from the pricing engine, never from the client.
type PackHandler struct {
	usecase usecase.IPackUseCase
}

func NewPackHandler(uc usecase.IPackUseCase) *PackHandler {
	return &PackHandler{usecase: uc}
}

func (h *PackHandler) CreatePack(c *gin.Context) {
	var payload request.CreatePackRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPackPayload.HTTPStatus, errInvalidPackPayload.ToHTTPError())
		return
	}

	pack, err := h.usecase.CreatePack(c.Request.Context(), middleware.ActorID(c), payload.ToEntity())
	if err != nil {
		appErr := mapPackError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPack(pack))
}

// ListPacks serves ?service_id= for the comparison screen and
// ?seller_id=me for the seller's own offers. One of the two is
// required.
func (h *PackHandler) ListPacks(c *gin.Context) {
	if serviceID := c.Query("service_id"); serviceID != "" {
		packs, err := h.usecase.ListByService(c.Request.Context(), serviceID)
		if err != nil {
			appErr := mapPackError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromPacks(packs))
		return
	}

	sellerID := c.Query("seller_id")
	if sellerID == "me" {
		sellerID = middleware.ActorID(c)
	}
	packs, err := h.usecase.ListBySeller(c.Request.Context(), sellerID)
	if err != nil {
		appErr := mapPackError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPacks(packs))
}

func (h *PackHandler) GetPack(c *gin.Context) {
	pack, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPackError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPack(pack))
}

func (h *PackHandler) UpdatePack(c *gin.Context) {
	var payload request.UpdatePackRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPackPayload.HTTPStatus, errInvalidPackPayload.ToHTTPError())
		return
	}

	pack, err := h.usecase.UpdatePack(c.Request.Context(), middleware.ActorID(c), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapPackError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPack(pack))
}

func (h *PackHandler) DeletePack(c *gin.Context) {
	if err := h.usecase.DeletePack(c.Request.Context(), middleware.ActorID(c), c.Param("id")); err != nil {
		appErr := mapPackError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapPackError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPackID),
		errors.Is(err, usecase.ErrInvalidPackData),
		errors.Is(err, usecase.ErrInvalidServiceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotPackOwner):
		return pkg.NewDomainErrorSimple("NOT_OWNER", "Only the owning seller may do this", http.StatusForbidden)
	case errors.Is(err, usecase.ErrPackNotFound):
		return pkg.NewDomainErrorSimple("PACK_NOT_FOUND", "Pack not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
