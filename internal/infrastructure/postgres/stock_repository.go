package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jcastror/resto-inventario/internal/domain/entity"
	"github.com/jcastror/resto-inventario/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación del puerto StockRepository sobre PostgreSQL
// (usable con pool o tx). stock_details guarda los renglones
// producto-contenedor; la suma de los visibles es el stock del producto.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el renglón producto-contenedor, o nil si no existe.
func (r *StockRepo) Get(productID, containerID string) (*entity.StockDetail, error) {
	query := `
		SELECT id, product_id, container_id, quantity, visible, updated_at
		FROM stock_details WHERE product_id = $1 AND container_id = $2 AND visible = TRUE`
	var d entity.StockDetail
	err := r.q.QueryRow(context.Background(), query, productID, containerID).Scan(
		&d.ID, &d.ProductID, &d.ContainerID, &d.Quantity, &d.Visible, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock detail: %w", err)
	}
	return &d, nil
}

// ListForUpdateByProduct bloquea (SELECT FOR UPDATE) los renglones visibles
// del producto dentro de la transacción en curso y los devuelve.
func (r *StockRepo) ListForUpdateByProduct(productID string) ([]*entity.StockDetail, error) {
	query := `
		SELECT id, product_id, container_id, quantity, visible, updated_at
		FROM stock_details WHERE product_id = $1 AND visible = TRUE
		ORDER BY container_id FOR UPDATE`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("lock stock details: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockDetail
	for rows.Next() {
		var d entity.StockDetail
		if err := rows.Scan(&d.ID, &d.ProductID, &d.ContainerID, &d.Quantity, &d.Visible, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Upsert inserta o actualiza el renglón producto-contenedor.
func (r *StockRepo) Upsert(detail *entity.StockDetail) error {
	query := `
		INSERT INTO stock_details (id, product_id, container_id, quantity, visible, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (product_id, container_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, visible = EXCLUDED.visible, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		detail.ID, detail.ProductID, detail.ContainerID, detail.Quantity, detail.Visible, detail.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert stock detail: %w", err)
	}
	return nil
}

// CurrentStock suma las cantidades de los renglones visibles del producto.
// COALESCE devuelve cero cuando el producto no tiene renglones.
func (r *StockRepo) CurrentStock(productID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM stock_details WHERE product_id = $1 AND visible = TRUE`,
		productID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("current stock: %w", err)
	}
	return total, nil
}

// CountActiveByContainer cuenta renglones visibles con cantidad distinta de
// cero en el contenedor.
func (r *StockRepo) CountActiveByContainer(containerID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM stock_details WHERE container_id = $1 AND visible = TRUE AND quantity <> 0`,
		containerID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count stock by container: %w", err)
	}
	return n, nil
}
