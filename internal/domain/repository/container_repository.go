package repository

import (
	"github.com/jcastror/resto-inventario/internal/domain/entity"
)

// ContainerRepository puerto de persistencia para Container. Borrado lógico.
type ContainerRepository interface {
	Create(container *entity.Container) error
	GetByID(id string) (*entity.Container, error)
	Update(container *entity.Container) error
	List(limit, offset int) ([]*entity.Container, error)
	SoftDelete(id string) error
}
