package repository

import (
	"context"

	"github.com/jhoicas/facturacion/internal/domain/entity"
)

// CredentialRepository define el puerto de persistencia para Credential (DIP).
type CredentialRepository interface {
	// Create persiste la credencial. Devuelve domain.ErrDuplicateName si NameKey ya existe.
	Create(ctx context.Context, cred *entity.Credential) error
	// GetByNameKey devuelve (nil, nil) si no existe.
	GetByNameKey(ctx context.Context, nameKey string) (*entity.Credential, error)
}
