package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Todos los agregados se calculan sobre productos visibles; el valor del
// inventario es Σ (stock_actual × precio_estimado).
type DashboardSummaryDTO struct {
	TotalProducts  int             `json:"total_products"`
	TotalValue     decimal.Decimal `json:"total_value"`
	LowStockItems  int             `json:"low_stock_items"` // productos con stock < mínimo
	CategoryCount  int             `json:"category_count"`
	ContainerCount int             `json:"container_count"`

	// Desglose por categoría ordenado de mayor a menor valor
	Categories []CategorySummaryDTO `json:"categories"`

	// Metadatos del período
	DateLabel string `json:"date_label"` // ej: "Agosto 2026"
}

// CategorySummaryDTO agregados de una categoría para el dashboard.
type CategorySummaryDTO struct {
	Category string          `json:"category"`
	Products int             `json:"products"`
	Value    decimal.Decimal `json:"value"`
}

// CatalogResponse respuesta de los endpoints de catálogo.
type CatalogResponse struct {
	Categories      []CatalogItemDTO `json:"categories,omitempty"`
	Units           []CatalogItemDTO `json:"units,omitempty"`
	MovementReasons []CatalogItemDTO `json:"movement_reasons,omitempty"`
}

// CatalogItemDTO ítem genérico de catálogo.
type CatalogItemDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind,omitempty"` // solo motivos de movimiento
}
