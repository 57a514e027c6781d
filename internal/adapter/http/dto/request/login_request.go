package request

import (
	"strings"

	"glow_go/internal/domain/entities"
)

// LoginRequest is the identity-stub payload: whatever the user typed becomes
// the session identity. No credentials are involved.

type LoginRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Role  string `json:"role" binding:"required"`
}

// ResolveRole maps the raw role string onto the fixed enumeration. Unknown
// values map to an invalid role the use case rejects.
func (r LoginRequest) ResolveRole() entities.UserRole {
	return entities.UserRole(strings.ToLower(strings.TrimSpace(r.Role)))
}
