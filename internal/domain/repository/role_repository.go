package repository

import (
	"github.com/jcastror/resto-inventario/internal/domain/entity"
)

// RoleRepository puerto de persistencia para Role. Borrado lógico.
type RoleRepository interface {
	Create(role *entity.Role) error
	GetByID(id string) (*entity.Role, error)
	GetByName(name string) (*entity.Role, error)
	Update(role *entity.Role) error
	List() ([]*entity.Role, error)
	SoftDelete(id string) error
}
