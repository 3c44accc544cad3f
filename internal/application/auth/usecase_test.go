package auth_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/facturacion/internal/application/auth"
	"github.com/jhoicas/facturacion/internal/application/dto"
	"github.com/jhoicas/facturacion/internal/domain"
	"github.com/jhoicas/facturacion/internal/domain/entity"
)

// memRepo implementación en memoria del puerto CredentialRepository.
type memRepo struct {
	mu    sync.Mutex
	creds map[string]*entity.Credential
}

func newMemRepo() *memRepo { return &memRepo{creds: map[string]*entity.Credential{}} }

func (r *memRepo) Create(_ context.Context, c *entity.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.creds[c.NameKey]; ok {
		return domain.ErrDuplicateName
	}
	cp := *c
	r.creds[c.NameKey] = &cp
	return nil
}

func (r *memRepo) GetByNameKey(_ context.Context, key string) (*entity.Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.creds[key]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func newUseCase(t *testing.T, caseInsensitive bool) (*auth.AuthUseCase, *memRepo) {
	t.Helper()
	repo := newMemRepo()
	uc, err := auth.NewAuthUseCase(repo, auth.Config{BcryptCost: bcrypt.MinCost, CaseInsensitiveNames: caseInsensitive})
	require.NoError(t, err)
	return uc, repo
}

func TestRegister_DosVecesDevuelveDuplicado(t *testing.T) {
	uc, _ := newUseCase(t, false)
	ctx := context.Background()

	require.NoError(t, uc.Register(ctx, dto.RegisterRequest{Name: "acme", Password: "pw"}))
	err := uc.Register(ctx, dto.RegisterRequest{Name: "acme", Password: "pw"})
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
}

func TestRegister_NoGuardaPasswordEnClaro(t *testing.T) {
	uc, repo := newUseCase(t, false)
	require.NoError(t, uc.Register(context.Background(), dto.RegisterRequest{Name: " acme ", Password: "secreto"}))

	cred, err := repo.GetByNameKey(context.Background(), "acme")
	require.NoError(t, err)
	require.NotNil(t, cred)
	assert.Equal(t, "acme", cred.Name, "el nombre se guarda recortado")
	assert.NotContains(t, cred.PasswordHash, "secreto")
	assert.True(t, strings.HasPrefix(cred.PasswordHash, "$2"), "debe ser un hash bcrypt")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte("secreto")))
	assert.NotEmpty(t, cred.ID)
}

func TestRegister_CamposFaltantes(t *testing.T) {
	uc, _ := newUseCase(t, false)
	for _, in := range []dto.RegisterRequest{
		{Name: "", Password: "x"},
		{Name: "   ", Password: "x"},
		{Name: "acme", Password: ""},
	} {
		err := uc.Register(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrValidation, "%+v", in)
	}
}

func TestRegister_PasswordDemasiadoLarga(t *testing.T) {
	uc, _ := newUseCase(t, false)
	err := uc.Register(context.Background(), dto.RegisterRequest{Name: "acme", Password: strings.Repeat("x", 73)})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegister_MayusculasSegunConfiguracion(t *testing.T) {
	ctx := context.Background()

	sensitive, _ := newUseCase(t, false)
	require.NoError(t, sensitive.Register(ctx, dto.RegisterRequest{Name: "Acme", Password: "pw"}))
	assert.NoError(t, sensitive.Register(ctx, dto.RegisterRequest{Name: "acme", Password: "pw"}))

	insensitive, _ := newUseCase(t, true)
	require.NoError(t, insensitive.Register(ctx, dto.RegisterRequest{Name: "Acme", Password: "pw"}))
	assert.ErrorIs(t, insensitive.Register(ctx, dto.RegisterRequest{Name: "ACME", Password: "pw"}), domain.ErrDuplicateName)

	out, err := insensitive.Login(ctx, dto.LoginRequest{Name: "aCmE", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "Acme", out.Name, "el nombre para mostrar conserva el registro original")
}

func TestNameKey_NormalizaNFC(t *testing.T) {
	uc, _ := newUseCase(t, false)
	// "é" precompuesta y "e" + acento combinante
	assert.Equal(t, uc.NameKey("caf\u00e9"), uc.NameKey("cafe\u0301"))
}

func TestLogin_Exitoso(t *testing.T) {
	uc, _ := newUseCase(t, false)
	ctx := context.Background()
	require.NoError(t, uc.Register(ctx, dto.RegisterRequest{Name: "acme", Password: "pw"}))

	out, err := uc.Login(ctx, dto.LoginRequest{Name: "acme", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "acme", out.Name)
}

func TestLogin_MismoErrorParaNombreYPassword(t *testing.T) {
	uc, _ := newUseCase(t, false)
	ctx := context.Background()
	require.NoError(t, uc.Register(ctx, dto.RegisterRequest{Name: "acme", Password: "pw"}))

	_, errWrong := uc.Login(ctx, dto.LoginRequest{Name: "acme", Password: "wrong"})
	_, errGhost := uc.Login(ctx, dto.LoginRequest{Name: "ghost", Password: "x"})

	require.Error(t, errWrong)
	require.Error(t, errGhost)
	assert.ErrorIs(t, errWrong, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errGhost, domain.ErrInvalidCredentials)
	assert.Equal(t, errWrong.Error(), errGhost.Error())
}

func TestLogin_CamposFaltantes(t *testing.T) {
	uc, _ := newUseCase(t, false)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Name: "acme"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
