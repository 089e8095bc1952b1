package repository

import "github.com/jhoicas/laundry-api/internal/domain/entity"

// ProfileRepository define el puerto de persistencia para Profile.
// El perfil se crea una sola vez en el signup y no se actualiza después.
type ProfileRepository interface {
	Create(profile *entity.Profile) error
	GetByID(id string) (*entity.Profile, error)
}
