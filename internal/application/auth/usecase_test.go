package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pesca-api/internal/application/auth"
	"github.com/jhoicas/Pesca-api/internal/application/dto"
	"github.com/jhoicas/Pesca-api/internal/domain"
	"github.com/jhoicas/Pesca-api/internal/domain/entity"
)

// fakeUserRepo implementa repository.UserRepository en memoria.
type fakeUserRepo struct {
	byUsername map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := f.byUsername[u.Username]; ok {
		return domain.ErrUsernameAlreadyExists
	}
	cp := *u
	f.byUsername[u.Username] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range f.byUsername {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	u, ok := f.byUsername[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func newUseCase() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "secret-de-test",
		ExpMinutes: 60,
		Issuer:     "pesca-api-test",
	})
	return uc, repo
}

func registerReq() dto.RegisterRequest {
	return dto.RegisterRequest{
		Username: "pescador1",
		Password: "cañafuerte123",
		Nombre:   "Juan",
		Apellido: "Ríos",
		Email:    "juan@example.com",
	}
}

// Registro válido seguido de login con las mismas credenciales → token.
func TestRegisterLuegoLogin_DevuelveToken(t *testing.T) {
	uc, _ := newUseCase()

	user, err := uc.RegisterUser(registerReq())
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "pescador1", user.Username)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.NotEmpty(t, user.ID)

	out, err := uc.Login(dto.LoginRequest{Username: "pescador1", Password: "cañafuerte123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, user.ID, out.User.ID)
}

// El hash bcrypt se persiste, nunca el password en claro.
func TestRegister_NoPersistePasswordEnClaro(t *testing.T) {
	uc, repo := newUseCase()

	_, err := uc.RegisterUser(registerReq())
	require.NoError(t, err)

	stored, err := repo.GetByUsername("pescador1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "cañafuerte123", stored.PasswordHash)
	assert.NotContains(t, stored.PasswordHash, "cañafuerte123")
}

// Registrar dos veces el mismo username: el segundo falla con conflicto y el
// primer registro queda intacto.
func TestRegister_UsernameDuplicado_Conflicto(t *testing.T) {
	uc, repo := newUseCase()

	first, err := uc.RegisterUser(registerReq())
	require.NoError(t, err)

	second := registerReq()
	second.Nombre = "Otro"
	second.Email = "otro@example.com"
	_, err = uc.RegisterUser(second)
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)

	stored, err := repo.GetByUsername("pescador1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, first.ID, stored.ID, "el primer registro no debe verse afectado")
	assert.Equal(t, "Juan", stored.Nombre)
}

// El username se canonicaliza: "Pescador1" y "pescador1" son el mismo usuario.
func TestRegister_UsernameCanonicalizado(t *testing.T) {
	uc, _ := newUseCase()

	in := registerReq()
	in.Username = "  PescadoR1 "
	user, err := uc.RegisterUser(in)
	require.NoError(t, err)
	assert.Equal(t, "pescador1", user.Username)

	dup := registerReq()
	dup.Username = "PESCADOR1"
	_, err = uc.RegisterUser(dup)
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)

	out, err := uc.Login(dto.LoginRequest{Username: "Pescador1", Password: "cañafuerte123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
}

// Password incorrecto → ErrUnauthorized, igual que usuario inexistente.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.RegisterUser(registerReq())
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "pescador1", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Username: "noexiste", Password: "cañafuerte123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"usuario inexistente y password malo deben ser indistinguibles")
}
