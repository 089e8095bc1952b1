package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/laundry-api/internal/application/dto"
	"github.com/jhoicas/laundry-api/internal/domain"
	"github.com/jhoicas/laundry-api/internal/domain/entity"
	"github.com/jhoicas/laundry-api/internal/domain/repository"
	"github.com/jhoicas/laundry-api/pkg/jwt"
)

// Rol por defecto del perfil creado en el signup. Es informativo: la API no
// aplica reglas de autorización sobre él.
const defaultProfileRole = "admin"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y perfil actual.
// El signup crea la credencial y un Profile que comparte su ID, igual que la
// aplicación original creaba la fila de profiles con el id del usuario.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, profileRepo repository.ProfileRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, profileRepo: profileRepo, jwtCfg: jwtCfg}
}

// Signup registra un usuario: verifica la confirmación de contraseña, hashea
// con bcrypt, persiste la credencial y crea el perfil con el mismo ID.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Signup(in dto.SignupRequest) (*dto.ProfileResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Password != in.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}
	existing, _ := uc.userRepo.FindByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	profile := &entity.Profile{
		ID:        user.ID, // el perfil comparte el id de la credencial
		Name:      in.Name,
		Email:     in.Email,
		Role:      defaultProfileRole,
		CreatedAt: now,
	}
	if err := uc.profileRepo.Create(profile); err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

// Login verifica email/password, genera JWT y retorna token + perfil.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	profile, err := uc.profileRepo.GetByID(user.ID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, profile.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Profile: *toProfileResponse(profile),
	}, nil
}

// CurrentProfile devuelve el perfil del usuario autenticado (análogo de getCurrentUser).
func (uc *AuthUseCase) CurrentProfile(userID string) (*dto.ProfileResponse, error) {
	profile, err := uc.profileRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	return toProfileResponse(profile), nil
}

func toProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.ProfileResponse{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Role:      p.Role,
		CreatedAt: p.CreatedAt,
	}
}
