package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/laundry-api/internal/application/dto"
	"github.com/jhoicas/laundry-api/internal/domain"
	"github.com/jhoicas/laundry-api/internal/domain/entity"
	"github.com/jhoicas/laundry-api/internal/domain/repository"
)

// AdminUseCase CRUD de administradores. Lista plana sin rol; a diferencia de
// Staff, el teléfono es opcional.
type AdminUseCase struct {
	repo repository.AdminRepository
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(repo repository.AdminRepository) *AdminUseCase {
	return &AdminUseCase{repo: repo}
}

// Create da de alta un administrador. Requiere name y email.
func (uc *AdminUseCase) Create(in dto.AdminRequest) (*dto.AdminResponse, error) {
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	admin := &entity.Admin{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(admin); err != nil {
		return nil, err
	}
	return toAdminResponse(admin), nil
}

// Update edita un administrador existente.
func (uc *AdminUseCase) Update(id string, in dto.AdminRequest) (*dto.AdminResponse, error) {
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	admin, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrNotFound
	}
	admin.Name = in.Name
	admin.Email = in.Email
	admin.Phone = in.Phone
	admin.UpdatedAt = time.Now()
	if err := uc.repo.Update(admin); err != nil {
		return nil, err
	}
	return toAdminResponse(admin), nil
}

// List devuelve todos los administradores, más recientes primero.
func (uc *AdminUseCase) List() ([]*dto.AdminResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AdminResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAdminResponse(a))
	}
	return out, nil
}

// Delete elimina un administrador.
func (uc *AdminUseCase) Delete(id string) error {
	admin, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if admin == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toAdminResponse(a *entity.Admin) *dto.AdminResponse {
	return &dto.AdminResponse{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Phone:     a.Phone,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
