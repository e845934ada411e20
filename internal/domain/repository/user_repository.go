package repository

import (
	"github.com/jcastror/resto-inventario/internal/domain/entity"
)

// UserRepository puerto de persistencia para User. Borrado lógico.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// FindByIdentifier resuelve el usuario por username o por email (login).
	FindByIdentifier(identifier string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	SoftDelete(id string) error
	// CountVisibleByRole cuenta usuarios visibles asignados al rol
	// (pre-check de borrado de roles).
	CountVisibleByRole(roleID string) (int, error)
}
