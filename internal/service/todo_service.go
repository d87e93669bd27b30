package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/vijaynvb/TodoMinimalAPI/internal/cache"
	dom "github.com/vijaynvb/TodoMinimalAPI/internal/domain"
	"github.com/vijaynvb/TodoMinimalAPI/internal/repo"

	"golang.org/x/sync/singleflight"
)

// ErrNotFound is returned when an id does not resolve to a todo.
var ErrNotFound = errors.New("not found")

// TodoService owns the todo business rules on top of a TodoRepo.
type TodoService struct {
	repo  repo.TodoRepo
	cache *cache.TodoCache
	sf    singleflight.Group
}

// NewTodoService creates a TodoService. If c is nil, caching is disabled.
func NewTodoService(r repo.TodoRepo, c *cache.TodoCache) *TodoService {
	return &TodoService{repo: r, cache: c}
}

func (s *TodoService) Create(ctx context.Context, title, desc string, status bool, dueDate *time.Time) (dom.Todo, error) {
	t, err := s.repo.Create(ctx, dom.Todo{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(desc),
		Status:      status,
		DueDate:     dueDate,
	})
	if err != nil {
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx)
	return t, nil
}

func (s *TodoService) List(ctx context.Context) ([]dom.Todo, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("list", func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Todo), nil
	}
	return s.repo.List(ctx)
}

func (s *TodoService) GetByID(ctx context.Context, id int64) (dom.Todo, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	return t, nil
}

// Update replaces title, description, status and due date of an
// existing todo. A missing id is a clean ErrNotFound, never a fault.
func (s *TodoService) Update(ctx context.Context, id int64, title, desc string, status bool, dueDate *time.Time) (dom.Todo, error) {
	t, err := s.repo.Update(ctx, id, dom.Todo{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(desc),
		Status:      status,
		DueDate:     dueDate,
	})
	if err != nil {
		if errors.Is(err, repo.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx)
	return t, nil
}

// Delete removes a todo and returns the removed record.
func (s *TodoService) Delete(ctx context.Context, id int64) (dom.Todo, error) {
	t, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx)
	return t, nil
}

func (s *TodoService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}
