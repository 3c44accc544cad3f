package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/facturacion/internal/application/dto"
	"github.com/jhoicas/facturacion/internal/domain"
	"github.com/jhoicas/facturacion/internal/domain/entity"
	"github.com/jhoicas/facturacion/internal/domain/repository"
)

// Config parámetros del caso de uso.
type Config struct {
	BcryptCost           int
	CaseInsensitiveNames bool // "Acme" y "acme" colisionan
}

// AuthUseCase casos de uso del servicio de credenciales: registro y login.
type AuthUseCase struct {
	repo      repository.CredentialRepository
	cfg       Config
	dummyHash []byte
	now       func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(repo repository.CredentialRepository, cfg Config) (*AuthUseCase, error) {
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	// Hash de relleno: un nombre inexistente cuesta lo mismo que una contraseña incorrecta.
	dummy, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("auth: hash de relleno: %w", err)
	}
	return &AuthUseCase{repo: repo, cfg: cfg, dummyHash: dummy, now: time.Now}, nil
}

// NameKey normaliza un nombre para la comparación de unicidad (NFC y, si aplica, case folding).
func (uc *AuthUseCase) NameKey(name string) string {
	key := norm.NFC.String(strings.TrimSpace(name))
	if uc.cfg.CaseInsensitiveNames {
		key = cases.Fold().String(key)
	}
	return key
}

// Register crea la credencial: hashea la contraseña con bcrypt y persiste.
// Devuelve domain.ErrDuplicateName si el nombre ya existe.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) error {
	name := norm.NFC.String(strings.TrimSpace(in.Name))
	if name == "" || in.Password == "" {
		return fmt.Errorf("%w: faltan nombre de empresa o contraseña", domain.ErrValidation)
	}
	key := uc.NameKey(name)

	existing, err := uc.repo.GetByNameKey(ctx, key)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrDuplicateName
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return fmt.Errorf("%w: la contraseña supera 72 bytes", domain.ErrValidation)
		}
		return fmt.Errorf("auth: hash: %w", err)
	}

	cred := &entity.Credential{
		ID:           uuid.New().String(),
		Name:         name,
		NameKey:      key,
		PasswordHash: string(hash),
		CreatedAt:    uc.now().UTC(),
	}
	return uc.repo.Create(ctx, cred)
}

// Login verifica nombre/contraseña. Nombre inexistente y contraseña incorrecta
// devuelven el mismo domain.ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if strings.TrimSpace(in.Name) == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: faltan usuario o contraseña", domain.ErrValidation)
	}
	cred, err := uc.repo.GetByNameKey(ctx, uc.NameKey(in.Name))
	if err != nil {
		return nil, err
	}
	if cred == nil {
		_ = bcrypt.CompareHashAndPassword(uc.dummyHash, []byte(in.Password))
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return &dto.LoginResponse{Name: cred.Name}, nil
}
