package repo

import (
	"context"
	"strings"
	"sync"
	"time"

	dom "github.com/vijaynvb/TodoMinimalAPI/internal/domain"
)

// MemUserRepo is an in-process UserRepo guarded by a mutex, keyed by
// lowercased email.
type MemUserRepo struct {
	mu    sync.RWMutex
	users map[string]dom.User
}

// NewMemUserRepo returns an empty in-memory user store.
func NewMemUserRepo() *MemUserRepo {
	return &MemUserRepo{users: make(map[string]dom.User)}
}

func (r *MemUserRepo) Create(_ context.Context, u dom.User) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(u.Email)
	if _, ok := r.users[key]; ok {
		return dom.User{}, ErrDuplicateEmail
	}
	u.CreatedAt = time.Now().UTC()
	r.users[key] = u
	return u, nil
}

func (r *MemUserRepo) GetByEmail(_ context.Context, email string) (dom.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[strings.ToLower(email)]
	if !ok {
		return dom.User{}, ErrNoRows
	}
	return u, nil
}
