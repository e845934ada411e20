package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Container representa un contenedor físico de almacenamiento (nevera,
// estante, cuarto frío) donde se guarda stock de productos.
type Container struct {
	ID          string
	Name        string
	Location    string
	Description string
	Visible     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StockDetail renglón producto-contenedor con la cantidad almacenada.
// La suma de los renglones visibles de un producto es su stock actual.
type StockDetail struct {
	ID          string
	ProductID   string
	ContainerID string
	Quantity    decimal.Decimal
	Visible     bool
	UpdatedAt   time.Time
}
