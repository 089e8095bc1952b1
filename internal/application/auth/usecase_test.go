package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/laundry-api/internal/application/dto"
	"github.com/jhoicas/laundry-api/internal/domain"
	"github.com/jhoicas/laundry-api/internal/domain/entity"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	byID    map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}, byID: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.byEmail[u.Email] = u
	r.byID[u.ID] = u
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.byID[id], nil
}

type fakeProfileRepo struct {
	byID map[string]*entity.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byID: map[string]*entity.Profile{}}
}

func (r *fakeProfileRepo) Create(p *entity.Profile) error {
	r.byID[p.ID] = p
	return nil
}

func (r *fakeProfileRepo) GetByID(id string) (*entity.Profile, error) {
	return r.byID[id], nil
}

func newTestUseCase() (*AuthUseCase, *fakeUserRepo, *fakeProfileRepo) {
	users := newFakeUserRepo()
	profiles := newFakeProfileRepo()
	uc := NewAuthUseCase(users, profiles, JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "laundry-api-test",
	})
	return uc, users, profiles
}

func signupRequest() dto.SignupRequest {
	return dto.SignupRequest{
		Name:            "Ana Reyes",
		Email:           "ana@example.com",
		Password:        "secreto123",
		ConfirmPassword: "secreto123",
	}
}

func TestSignup(t *testing.T) {
	uc, users, profiles := newTestUseCase()

	profile, err := uc.Signup(signupRequest())
	require.NoError(t, err)
	assert.Equal(t, "Ana Reyes", profile.Name)
	assert.Equal(t, "admin", profile.Role)

	// Credencial y perfil comparten el mismo ID.
	user := users.byEmail["ana@example.com"]
	require.NotNil(t, user)
	assert.Equal(t, user.ID, profile.ID)
	require.NotNil(t, profiles.byID[user.ID])

	// La contraseña se guarda hasheada, nunca en claro.
	assert.NotEqual(t, "secreto123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secreto123")))
}

func TestSignup_ContrasenasNoCoinciden(t *testing.T) {
	uc, _, _ := newTestUseCase()
	in := signupRequest()
	in.ConfirmPassword = "otra-cosa"
	_, err := uc.Signup(in)
	assert.ErrorIs(t, err, domain.ErrPasswordMismatch)
}

func TestSignup_EmailDuplicado(t *testing.T) {
	uc, _, _ := newTestUseCase()
	_, err := uc.Signup(signupRequest())
	require.NoError(t, err)
	_, err = uc.Signup(signupRequest())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestSignup_CamposRequeridos(t *testing.T) {
	uc, _, _ := newTestUseCase()
	in := signupRequest()
	in.Name = ""
	_, err := uc.Signup(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin(t *testing.T) {
	uc, _, _ := newTestUseCase()
	_, err := uc.Signup(signupRequest())
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "Ana Reyes", out.Profile.Name)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _, _ := newTestUseCase()
	_, err := uc.Signup(signupRequest())
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCurrentProfile(t *testing.T) {
	uc, users, _ := newTestUseCase()
	_, err := uc.Signup(signupRequest())
	require.NoError(t, err)

	user := users.byEmail["ana@example.com"]
	profile, err := uc.CurrentProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", profile.Email)

	_, err = uc.CurrentProfile("no-such-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
