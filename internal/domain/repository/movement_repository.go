package repository

import (
	"time"

	"github.com/jcastror/resto-inventario/internal/domain/entity"
)

// MovementRepository puerto de persistencia del kardex. Los movimientos son
// append-only: no existe Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// ListByProduct devuelve los movimientos visibles del producto ordenados
	// por fecha ascendente, restringidos a la ventana [from, to] cuando los
	// límites vienen dados (ambos inclusivos).
	ListByProduct(productID string, from, to *time.Time) ([]*entity.Movement, error)
	// LastByProduct devuelve el movimiento más reciente del producto, o nil
	// si el producto no tiene historial.
	LastByProduct(productID string) (*entity.Movement, error)
}
