package interfaces

import (
	"context"

	"glow_go/internal/domain/entities"
)

// ISessionRepository abstracts durable storage of the current user record.
//
// Load returns nil with no error when no user is signed in (or the record is
// missing/corrupt). Save with nil clears the record; each call is a full
// overwrite.

type ISessionRepository interface {
	Load(ctx context.Context) (*entities.User, error)
	Save(ctx context.Context, user *entities.User) error
}
