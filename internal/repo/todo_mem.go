package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	dom "github.com/vijaynvb/TodoMinimalAPI/internal/domain"
)

// MemTodoRepo is an in-process TodoRepo guarded by a mutex. It is the
// default store when no Postgres DSN is configured and is what tests
// inject.
type MemTodoRepo struct {
	mu     sync.RWMutex
	todos  map[int64]dom.Todo
	nextID int64
}

// NewMemTodoRepo returns an empty in-memory store.
func NewMemTodoRepo() *MemTodoRepo {
	return &MemTodoRepo{todos: make(map[int64]dom.Todo), nextID: 1}
}

func (r *MemTodoRepo) Create(_ context.Context, t dom.Todo) (dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	t.ID = r.nextID
	r.nextID++
	t.CreatedAt = now
	t.UpdatedAt = now
	r.todos[t.ID] = t
	return t, nil
}

func (r *MemTodoRepo) GetByID(_ context.Context, id int64) (dom.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.todos[id]
	if !ok {
		return dom.Todo{}, ErrNoRows
	}
	return t, nil
}

func (r *MemTodoRepo) List(_ context.Context) ([]dom.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]dom.Todo, 0, len(r.todos))
	for _, t := range r.todos {
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *MemTodoRepo) Update(_ context.Context, id int64, t dom.Todo) (dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	old, ok := r.todos[id]
	if !ok {
		return dom.Todo{}, ErrNoRows
	}
	t.ID = id
	t.CreatedAt = old.CreatedAt
	t.UpdatedAt = time.Now().UTC()
	r.todos[id] = t
	return t, nil
}

func (r *MemTodoRepo) Delete(_ context.Context, id int64) (dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.todos[id]
	if !ok {
		return dom.Todo{}, ErrNoRows
	}
	delete(r.todos, id)
	return t, nil
}
