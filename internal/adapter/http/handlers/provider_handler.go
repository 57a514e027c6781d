package handlers

import (
	"errors"
	"net/http"

	response "glow_go/internal/adapter/http/dto/response"
	"glow_go/internal/usecase"
	"glow_go/pkg"

	"github.com/gin-gonic/gin"
)

// ProviderHandler serves the read-only provider directory.

type ProviderHandler struct {
	usecase usecase.IProviderUseCase
}

func NewProviderHandler(uc usecase.IProviderUseCase) *ProviderHandler {
	return &ProviderHandler{usecase: uc}
}

func (h *ProviderHandler) ListProviders(c *gin.Context) {
	providers, err := h.usecase.ListProviders(c.Request.Context())
	if err != nil {
		appErr := mapProviderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProviders(providers))
}

func (h *ProviderHandler) GetProvider(c *gin.Context) {
	provider, err := h.usecase.GetProviderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProviderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProvider(provider))
}

func mapProviderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProviderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProviderNotFound):
		return pkg.NewDomainErrorSimple("PROVIDER_NOT_FOUND", "Provider not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
