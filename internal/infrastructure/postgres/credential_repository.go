package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/facturacion/internal/domain"
	"github.com/jhoicas/facturacion/internal/domain/entity"
	"github.com/jhoicas/facturacion/internal/domain/repository"
)

var _ repository.CredentialRepository = (*CredentialRepo)(nil)

// Querier abstrae pgxpool.Pool y pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CredentialRepo implementación del puerto CredentialRepository sobre PostgreSQL.
type CredentialRepo struct {
	db Querier
}

// NewCredentialRepository construye el adaptador de persistencia para credenciales.
func NewCredentialRepository(db Querier) *CredentialRepo {
	return &CredentialRepo{db: db}
}

// Create persiste una credencial nueva.
func (r *CredentialRepo) Create(ctx context.Context, c *entity.Credential) error {
	query := `
		INSERT INTO credentials (id, name, name_key, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query, c.ID, c.Name, c.NameKey, c.PasswordHash, c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("insert credential: %w", err)
	}
	return nil
}

// GetByNameKey obtiene la credencial por su clave normalizada; (nil, nil) si no existe.
func (r *CredentialRepo) GetByNameKey(ctx context.Context, nameKey string) (*entity.Credential, error) {
	query := `
		SELECT id::text, name, name_key, password_hash, created_at
		FROM credentials WHERE name_key = $1`
	var c entity.Credential
	err := r.db.QueryRow(ctx, query, nameKey).Scan(&c.ID, &c.Name, &c.NameKey, &c.PasswordHash, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get credential by name: %w", err)
	}
	return &c, nil
}
