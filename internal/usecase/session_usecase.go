package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"glow_go/internal/domain/entities"
	"glow_go/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrNotSignedIn      = errors.New("no user signed in")
	ErrInvalidUserName  = errors.New("invalid user name")
	ErrInvalidUserEmail = errors.New("invalid user email")
	ErrInvalidUserRole  = errors.New("invalid user role")
)

// ISessionUseCase is the identity stub: it turns user-entered name/email/role
// into the current session user without validating credentials.
//
// The session is an explicit persisted record, not ambient global state: set
// on sign-in (replacing any prior value), cleared on sign-out. Bookings are
// never touched when their owner signs out.

type ISessionUseCase interface {
	SignIn(ctx context.Context, name, email string, role entities.UserRole) (entities.User, error)
	SignOut(ctx context.Context) error
	CurrentUser(ctx context.Context) (*entities.User, error)
}

type SessionUseCase struct {
	sessions interfaces.ISessionRepository
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(sessions interfaces.ISessionRepository) *SessionUseCase {
	return &SessionUseCase{sessions: sessions}
}

func (u *SessionUseCase) SignIn(ctx context.Context, name, email string, role entities.UserRole) (entities.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return entities.User{}, ErrInvalidUserName
	}
	if email == "" {
		return entities.User{}, ErrInvalidUserEmail
	}
	if !role.IsValid() {
		return entities.User{}, ErrInvalidUserRole
	}

	user := entities.User{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Role:  role,
	}
	if err := u.sessions.Save(ctx, &user); err != nil {
		return entities.User{}, err
	}
	log.Printf("[session][usecase] signed in user_id=%s role=%s", user.ID, user.Role)
	return user, nil
}

func (u *SessionUseCase) SignOut(ctx context.Context) error {
	if err := u.sessions.Save(ctx, nil); err != nil {
		return err
	}
	log.Printf("[session][usecase] signed out")
	return nil
}

func (u *SessionUseCase) CurrentUser(ctx context.Context) (*entities.User, error) {
	user, err := u.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotSignedIn
	}
	return user, nil
}
