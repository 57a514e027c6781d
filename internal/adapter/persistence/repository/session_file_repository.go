package repository

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"glow_go/internal/domain/entities"
	"glow_go/internal/usecase/interfaces"
)

const sessionFileName = "user.json"

// SessionFileRepository persists the current user record on local disk.
//
// Saving nil clears the record (sign-out removes the file, mirroring a
// removed browser storage key).

type SessionFileRepository struct {
	mu   sync.RWMutex
	path string
}

var _ interfaces.ISessionRepository = (*SessionFileRepository)(nil)

func NewSessionFileRepository() *SessionFileRepository {
	return &SessionFileRepository{path: filepath.Join(dataDir(), sessionFileName)}
}

// NewSessionFileRepositoryAt pins the store to an explicit file path.
func NewSessionFileRepositoryAt(path string) *SessionFileRepository {
	return &SessionFileRepository{path: path}
}

func (r *SessionFileRepository) Load(_ context.Context) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var user entities.User
	if !readJSONFile(r.path, &user) {
		return nil, nil
	}
	if user.ID == "" {
		return nil, nil
	}
	return &user, nil
}

func (r *SessionFileRepository) Save(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user == nil {
		if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
			return err
		}
		return nil
	}
	return writeJSONFile(r.path, user)
}
