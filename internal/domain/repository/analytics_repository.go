package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProductStockRow fila producto + stock derivado para el dashboard. El stock
// llega precalculado desde SQL (SUM sobre stock_details visibles); el fold de
// agregación se hace en el caso de uso.
type ProductStockRow struct {
	ProductID      string
	Name           string
	Category       string
	CurrentStock   decimal.Decimal
	EstimatedPrice decimal.Decimal
	MinimumStock   decimal.Decimal
}

// AnalyticsRepository consultas read-only para el dashboard.
type AnalyticsRepository interface {
	GetProductStockRows(ctx context.Context) ([]ProductStockRow, error)
	CountContainers(ctx context.Context) (int, error)
}
