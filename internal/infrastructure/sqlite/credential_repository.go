package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/jhoicas/facturacion/internal/domain"
	"github.com/jhoicas/facturacion/internal/domain/entity"
	"github.com/jhoicas/facturacion/internal/domain/repository"
)

var _ repository.CredentialRepository = (*CredentialRepo)(nil)

// CredentialRepo implementación del puerto CredentialRepository sobre SQLite.
type CredentialRepo struct {
	db *sql.DB
}

// NewCredentialRepository construye el adaptador.
func NewCredentialRepository(db *sql.DB) *CredentialRepo {
	return &CredentialRepo{db: db}
}

// Create persiste una credencial nueva.
func (r *CredentialRepo) Create(ctx context.Context, c *entity.Credential) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO credentials (id, name, name_key, password_hash, created_at) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.NameKey, c.PasswordHash, c.CreatedAt,
	)
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
	var c entity.Credential
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, name_key, password_hash, created_at FROM credentials WHERE name_key = ?`,
		nameKey,
	).Scan(&c.ID, &c.Name, &c.NameKey, &c.PasswordHash, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get credential by name: %w", err)
	}
	return &c, nil
}

func isUniqueViolation(err error) bool {
	var sqErr sqlite3.Error
	if errors.As(err, &sqErr) {
		return sqErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
