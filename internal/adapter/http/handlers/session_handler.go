package handlers

import (
	"errors"
	"log"
	"net/http"

	request "glow_go/internal/adapter/http/dto/request"
	response "glow_go/internal/adapter/http/dto/response"
	"glow_go/internal/usecase"
	"glow_go/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Invalid login payload", http.StatusBadRequest)

// SessionHandler handles the identity-stub session endpoints.

type SessionHandler struct {
	usecase usecase.ISessionUseCase
}

func NewSessionHandler(uc usecase.ISessionUseCase) *SessionHandler {
	return &SessionHandler{usecase: uc}
}

// Login builds a session user from the supplied name/email/role, replacing
// any prior session. No credential check happens anywhere.
func (h *SessionHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	user, err := h.usecase.SignIn(c.Request.Context(), payload.Name, payload.Email, payload.ResolveRole())
	if err != nil {
		log.Printf("[session][handler] login failed err=%v", err)
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUser(user))
}

// Logout clears the current session. Bookings are left untouched.
func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.usecase.SignOut(c.Request.Context()); err != nil {
		log.Printf("[session][handler] logout failed err=%v", err)
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// Me returns the signed-in user, or 401 when there is none.
func (h *SessionHandler) Me(c *gin.Context) {
	user, err := h.usecase.CurrentUser(c.Request.Context())
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUser(*user))
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserName), errors.Is(err, usecase.ErrInvalidUserEmail), errors.Is(err, usecase.ErrInvalidUserRole):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotSignedIn):
		return pkg.NewDomainErrorSimple("NOT_SIGNED_IN", "Sign in required", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
