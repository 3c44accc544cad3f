package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturacion/internal/domain"
	"github.com/jhoicas/facturacion/internal/domain/entity"
	"github.com/jhoicas/facturacion/internal/infrastructure/sqlite"
)

func newRepo(t *testing.T) *sqlite.CredentialRepo {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlite.NewCredentialRepository(db)
}

func newCred(name string) *entity.Credential {
	return &entity.Credential{
		ID:           uuid.NewString(),
		Name:         name,
		NameKey:      name,
		PasswordHash: "$2a$04$hash",
		CreatedAt:    time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestCredentialRepo_CreateYGet(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	in := newCred("acme")
	require.NoError(t, repo.Create(ctx, in))

	got, err := repo.GetByNameKey(ctx, "acme")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, in.ID, got.ID)
	assert.Equal(t, "acme", got.Name)
	assert.Equal(t, in.PasswordHash, got.PasswordHash)
	assert.True(t, in.CreatedAt.Equal(got.CreatedAt))
}

func TestCredentialRepo_GetInexistente(t *testing.T) {
	repo := newRepo(t)
	got, err := repo.GetByNameKey(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCredentialRepo_NombreDuplicado(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newCred("acme")))

	err := repo.Create(ctx, newCred("acme"))
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
}

func TestOpen_Idempotente(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twice.db")
	db1, err := sqlite.Open(path)
	require.NoError(t, err)
	require.NoError(t, sqlite.NewCredentialRepository(db1).Create(context.Background(), newCred("acme")))
	require.NoError(t, db1.Close())

	db2, err := sqlite.Open(path)
	require.NoError(t, err)
	defer db2.Close()
	got, err := sqlite.NewCredentialRepository(db2).GetByNameKey(context.Background(), "acme")
	require.NoError(t, err)
	assert.NotNil(t, got)
}
