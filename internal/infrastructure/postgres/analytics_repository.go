package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jcastror/resto-inventario/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetProductStockRows devuelve una fila por producto visible con su stock
// derivado (SUM sobre stock_details visibles; COALESCE a cero si el producto
// no tiene renglones). La agregación del dashboard se hace en el caso de uso.
func (r *AnalyticsRepo) GetProductStockRows(ctx context.Context) ([]repository.ProductStockRow, error) {
	const query = `
	SELECT
	    p.id                                   AS product_id,
	    p.name                                 AS product_name,
	    c.name                                 AS category,
	    COALESCE(SUM(sd.quantity), 0)          AS current_stock,
	    p.estimated_price,
	    p.minimum_stock
	FROM products p
	JOIN categories c ON c.id = p.category_id
	LEFT JOIN stock_details sd ON sd.product_id = p.id AND sd.visible = TRUE
	WHERE p.visible = TRUE
	GROUP BY p.id, p.name, c.name, p.estimated_price, p.minimum_stock
	ORDER BY p.name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetProductStockRows: %w", err)
	}
	defer rows.Close()

	var results []repository.ProductStockRow
	for rows.Next() {
		var row repository.ProductStockRow
		if err := rows.Scan(
			&row.ProductID,
			&row.Name,
			&row.Category,
			&row.CurrentStock,
			&row.EstimatedPrice,
			&row.MinimumStock,
		); err != nil {
			return nil, fmt.Errorf("analytics.GetProductStockRows scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// CountContainers cuenta los contenedores visibles.
func (r *AnalyticsRepo) CountContainers(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM containers WHERE visible = TRUE`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("analytics.CountContainers: %w", err)
	}
	return n, nil
}
