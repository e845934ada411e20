package repository

import (
	"github.com/jcastror/resto-inventario/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Todas las lecturas excluyen filas con visible = FALSE; el borrado es
// siempre lógico.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	SoftDelete(id string) error
}
