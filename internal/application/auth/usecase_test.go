package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (f *fakeUserRepo) FindByUsername(username string) (*entity.User, error) {
	return f.users[username], nil
}

func newAuthUC(t *testing.T, active bool) *AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{users: map[string]*entity.User{
		"maria": {
			ID:           3,
			Username:     "maria",
			FullName:     "María López",
			PasswordHash: string(hash),
			Role:         entity.RoleCajero,
			Active:       active,
		},
	}}
	return NewAuthUseCase(repo, JWTConfig{Secret: "secret", ExpMinutes: 60, Issuer: "punto-venta"})
}

func TestLogin_Exitoso(t *testing.T) {
	uc := newAuthUC(t, true)

	resp, err := uc.Login(dto.LoginRequest{Username: "maria", Password: "password123"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.User.ID)
	assert.Equal(t, entity.RoleCajero, resp.User.Role)

	userID, role, err := jwt.Parse("secret", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(3), userID)
	assert.Equal(t, entity.RoleCajero, role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := newAuthUC(t, true)

	_, err := uc.Login(dto.LoginRequest{Username: "maria", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newAuthUC(t, true)

	_, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc := newAuthUC(t, false)

	_, err := uc.Login(dto.LoginRequest{Username: "maria", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogin_CamposVacios(t *testing.T) {
	uc := newAuthUC(t, true)

	_, err := uc.Login(dto.LoginRequest{Username: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Login(dto.LoginRequest{Username: "maria", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
