package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/laundry-api/internal/application/dto"
	"github.com/jhoicas/laundry-api/internal/domain"
	"github.com/jhoicas/laundry-api/internal/domain/entity"
	"github.com/jhoicas/laundry-api/internal/domain/repository"
)

// StaffUseCase CRUD del personal de la tienda.
type StaffUseCase struct {
	repo repository.StaffRepository
}

// NewStaffUseCase construye el caso de uso.
func NewStaffUseCase(repo repository.StaffRepository) *StaffUseCase {
	return &StaffUseCase{repo: repo}
}

// Create da de alta un empleado. Los cuatro campos son requeridos. El rol es
// texto libre: un valor fuera de los tres conocidos se acepta y queda en el
// bucket "otro".
func (uc *StaffUseCase) Create(in dto.StaffRequest) (*dto.StaffResponse, error) {
	if in.Name == "" || in.Email == "" || in.Phone == "" || in.Role == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	staff := &entity.Staff{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Role:      in.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(staff); err != nil {
		return nil, err
	}
	return toStaffResponse(staff), nil
}

// Update edita un empleado existente.
func (uc *StaffUseCase) Update(id string, in dto.StaffRequest) (*dto.StaffResponse, error) {
	if in.Name == "" || in.Email == "" || in.Phone == "" || in.Role == "" {
		return nil, domain.ErrInvalidInput
	}
	staff, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, domain.ErrNotFound
	}
	staff.Name = in.Name
	staff.Email = in.Email
	staff.Phone = in.Phone
	staff.Role = in.Role
	staff.UpdatedAt = time.Now()
	if err := uc.repo.Update(staff); err != nil {
		return nil, err
	}
	return toStaffResponse(staff), nil
}

// List devuelve todo el personal, más recientes primero.
func (uc *StaffUseCase) List() ([]*dto.StaffResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StaffResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toStaffResponse(s))
	}
	return out, nil
}

// Delete elimina un empleado.
func (uc *StaffUseCase) Delete(id string) error {
	staff, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if staff == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toStaffResponse(s *entity.Staff) *dto.StaffResponse {
	return &dto.StaffResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		Role:      s.Role,
		RoleKnown: entity.IsKnownStaffRole(s.Role),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
