package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un insumo del inventario del restaurante.
// El stock actual es derivado: suma de los renglones visibles en stock_details
// (equivale al balance_after del último movimiento del kardex), nunca se
// almacena en la fila del producto.
type Product struct {
	ID             string
	Name           string
	Description    string
	CategoryID     string
	CategoryName   string // denormalizado en lecturas (JOIN categories)
	UnitID         string
	UnitName       string // denormalizado en lecturas (JOIN units)
	EstimatedPrice decimal.Decimal // precio unitario estimado para valorización
	MinimumStock   decimal.Decimal // umbral de stock bajo
	Visible        bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Category categoría de producto (catálogo).
type Category struct {
	ID      string
	Name    string
	Visible bool
}

// Unit unidad de medida (catálogo): kg, lt, und, etc.
type Unit struct {
	ID           string
	Name         string
	Abbreviation string
	Visible      bool
}
