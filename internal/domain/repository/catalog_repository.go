package repository

import (
	"github.com/jcastror/resto-inventario/internal/domain/entity"
)

// CatalogRepository puerto de lectura de catálogos: categorías, unidades de
// medida y motivos de movimiento. Los catálogos se administran por seed/SQL.
type CatalogRepository interface {
	ListCategories() ([]*entity.Category, error)
	ListUnits() ([]*entity.Unit, error)
	ListMovementReasons() ([]*entity.MovementReason, error)
}
