package service

import (
	"context"
	"testing"

	"github.com/vijaynvb/TodoMinimalAPI/internal/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_RegisterAndValidate(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(repo.NewMemUserRepo())

	u, err := svc.Register(ctx, "Jane", "Doe", "jane@example.com", "s3cret", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "jane@example.com", u.Email)
	// The stored hash never equals the plaintext.
	assert.NotEqual(t, "s3cret", u.PasswordHash)
	assert.NotEmpty(t, u.PasswordHash)

	got, err := svc.ValidateCredentials(ctx, "jane@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestUserService_ValidateCredentials_UniformFailure(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(repo.NewMemUserRepo())

	_, err := svc.Register(ctx, "Jane", "Doe", "jane@example.com", "s3cret", nil)
	require.NoError(t, err)

	// Unknown user and wrong password fail with the same error so the
	// caller cannot tell which one happened.
	_, errUnknown := svc.ValidateCredentials(ctx, "nobody@example.com", "s3cret")
	_, errWrongPw := svc.ValidateCredentials(ctx, "jane@example.com", "wrong")
	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)

	_, err = svc.ValidateCredentials(ctx, "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(repo.NewMemUserRepo())

	_, err := svc.Register(ctx, "Jane", "Doe", "jane@example.com", "pw1", nil)
	require.NoError(t, err)

	_, err = svc.Register(ctx, "John", "Doe", "jane@example.com", "pw2", nil)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestTodoService_UpdateMissingIDIsNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewTodoService(repo.NewMemTodoRepo(), nil)

	_, err := svc.Update(ctx, 99, "title", "", false, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTodoService_DeleteReturnsRecord(t *testing.T) {
	ctx := context.Background()
	svc := NewTodoService(repo.NewMemTodoRepo(), nil)

	created, err := svc.Create(ctx, "  Buy milk  ", " note ", false, nil)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", created.Title, "title is trimmed")
	assert.Equal(t, "note", created.Description)

	deleted, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
