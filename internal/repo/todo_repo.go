package repo

import (
	"context"
	"errors"

	dom "github.com/vijaynvb/TodoMinimalAPI/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TodoRepo provides todo persistence.
type TodoRepo interface {
	Create(ctx context.Context, t dom.Todo) (dom.Todo, error)
	GetByID(ctx context.Context, id int64) (dom.Todo, error)
	List(ctx context.Context) ([]dom.Todo, error)
	Update(ctx context.Context, id int64, t dom.Todo) (dom.Todo, error)
	Delete(ctx context.Context, id int64) (dom.Todo, error)
}

// PGTodoRepo implements TodoRepo with Postgres.
type PGTodoRepo struct {
	db *pgxpool.Pool
}

// NewPGTodoRepo returns a new PGTodoRepo.
func NewPGTodoRepo(db *pgxpool.Pool) *PGTodoRepo {
	return &PGTodoRepo{db: db}
}

func (r *PGTodoRepo) Create(ctx context.Context, t dom.Todo) (dom.Todo, error) {
	query := `
		INSERT INTO todos (title, description, status, due_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, description, status, due_date, created_at, updated_at`
	var out dom.Todo
	err := r.db.QueryRow(ctx, query, t.Title, t.Description, t.Status, t.DueDate).Scan(
		&out.ID, &out.Title, &out.Description, &out.Status, &out.DueDate,
		&out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

func (r *PGTodoRepo) GetByID(ctx context.Context, id int64) (dom.Todo, error) {
	query := `
		SELECT id, title, description, status, due_date, created_at, updated_at
		FROM todos WHERE id = $1`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.Status, &t.DueDate,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return dom.Todo{}, ErrNoRows
	}
	return t, err
}

func (r *PGTodoRepo) List(ctx context.Context) ([]dom.Todo, error) {
	query := `
		SELECT id, title, description, status, due_date, created_at, updated_at
		FROM todos ORDER BY id ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Todo
	for rows.Next() {
		var t dom.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.DueDate,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTodoRepo) Update(ctx context.Context, id int64, t dom.Todo) (dom.Todo, error) {
	query := `
		UPDATE todos SET title = $2, description = $3, status = $4, due_date = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING id, title, description, status, due_date, created_at, updated_at`
	var out dom.Todo
	err := r.db.QueryRow(ctx, query, id, t.Title, t.Description, t.Status, t.DueDate).Scan(
		&out.ID, &out.Title, &out.Description, &out.Status, &out.DueDate,
		&out.CreatedAt, &out.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return dom.Todo{}, ErrNoRows
	}
	return out, err
}

func (r *PGTodoRepo) Delete(ctx context.Context, id int64) (dom.Todo, error) {
	query := `
		DELETE FROM todos WHERE id = $1
		RETURNING id, title, description, status, due_date, created_at, updated_at`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.Status, &t.DueDate,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return dom.Todo{}, ErrNoRows
	}
	return t, err
}
