package repo

import (
	"context"
	"errors"

	dom "github.com/vijaynvb/TodoMinimalAPI/internal/domain"
	"github.com/vijaynvb/TodoMinimalAPI/internal/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepo provides user persistence.
type UserRepo interface {
	Create(ctx context.Context, u dom.User) (dom.User, error)
	GetByEmail(ctx context.Context, email string) (dom.User, error)
}

// PGUserRepo implements UserRepo with Postgres.
type PGUserRepo struct {
	db *pgxpool.Pool
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db *pgxpool.Pool) *PGUserRepo {
	return &PGUserRepo{db: db}
}

// Create inserts a new user and returns it.
func (r *PGUserRepo) Create(ctx context.Context, u dom.User) (dom.User, error) {
	query := `
		INSERT INTO users (id, email, first_name, last_name, date_of_birth, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, email, first_name, last_name, date_of_birth, password_hash, created_at`
	var out dom.User
	err := r.db.QueryRow(ctx, query, u.ID, u.Email, u.FirstName, u.LastName, u.DateOfBirth, u.PasswordHash).Scan(
		&out.ID, &out.Email, &out.FirstName, &out.LastName, &out.DateOfBirth,
		&out.PasswordHash, &out.CreatedAt,
	)
	if utils.IsPGUniqueViolation(err) {
		return dom.User{}, ErrDuplicateEmail
	}
	return out, err
}

// GetByEmail returns the user with the given email.
func (r *PGUserRepo) GetByEmail(ctx context.Context, email string) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT id, email, first_name, last_name, date_of_birth, password_hash, created_at
		 FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.DateOfBirth, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return dom.User{}, ErrNoRows
	}
	return u, err
}
