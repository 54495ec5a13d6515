package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"obralink/internal/adapter/http/dto/response"
	"obralink/internal/adapter/http/middleware"
	"obralink/internal/usecase"
	"obralink/pkg"
)

// StateHandler serves the bootstrap snapshot for the authenticated
// client.
type StateHandler struct {
	usecase usecase.IStateUseCase
}

func NewStateHandler(uc usecase.IStateUseCase) *StateHandler {
	return &StateHandler{usecase: uc}
}

func (h *StateHandler) GetState(c *gin.Context) {
	snap, err := h.usecase.Snapshot(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		appErr := mapStateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

func mapStateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
