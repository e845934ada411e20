package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jcastror/resto-inventario/internal/domain/entity"
)

// StockRepository puerto de persistencia para los renglones producto-contenedor
// (stock_details). El stock actual de un producto es la suma de sus renglones
// visibles.
type StockRepository interface {
	Get(productID, containerID string) (*entity.StockDetail, error)
	// ListForUpdateByProduct bloquea (SELECT FOR UPDATE) todos los renglones
	// visibles del producto dentro de la transacción en curso y los devuelve.
	ListForUpdateByProduct(productID string) ([]*entity.StockDetail, error)
	Upsert(detail *entity.StockDetail) error
	// CurrentStock suma las cantidades de los renglones visibles del producto.
	CurrentStock(productID string) (decimal.Decimal, error)
	// CountActiveByContainer cuenta renglones visibles con cantidad distinta
	// de cero en el contenedor (pre-check de borrado).
	CountActiveByContainer(containerID string) (int, error)
}
