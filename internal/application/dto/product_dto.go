package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	CategoryID     string          `json:"category_id"`
	UnitID         string          `json:"unit_id"`
	EstimatedPrice decimal.Decimal `json:"estimated_price"`
	MinimumStock   decimal.Decimal `json:"minimum_stock"`
}

// UpdateProductRequest body para PUT /api/products/:id (patch parcial).
type UpdateProductRequest struct {
	Name           *string          `json:"name,omitempty"`
	Description    *string          `json:"description,omitempty"`
	CategoryID     *string          `json:"category_id,omitempty"`
	UnitID         *string          `json:"unit_id,omitempty"`
	EstimatedPrice *decimal.Decimal `json:"estimated_price,omitempty"`
	MinimumStock   *decimal.Decimal `json:"minimum_stock,omitempty"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	CategoryID     string          `json:"category_id"`
	Category       string          `json:"category,omitempty"`
	UnitID         string          `json:"unit_id"`
	Unit           string          `json:"unit,omitempty"`
	EstimatedPrice decimal.Decimal `json:"estimated_price"`
	MinimumStock   decimal.Decimal `json:"minimum_stock"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProductListResponse respuesta de GET /api/products.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
