package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastror/resto-inventario/internal/domain"
	"github.com/jcastror/resto-inventario/internal/domain/entity"
	"github.com/jcastror/resto-inventario/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
// Todas las lecturas filtran visible = TRUE; el borrado es un flip del flag.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `
	p.id, p.name, p.description, p.category_id, c.name, p.unit_id, u.name,
	p.estimated_price, p.minimum_stock, p.visible, p.created_at, p.updated_at`

const productJoins = `
	FROM products p
	JOIN categories c ON c.id = p.category_id
	JOIN units u ON u.id = p.unit_id`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, category_id, unit_id, estimated_price, minimum_stock, visible, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.CategoryID, product.UnitID,
		product.EstimatedPrice, product.MinimumStock, product.Visible, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto visible por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT` + productColumns + productJoins + ` WHERE p.id = $1 AND p.visible = TRUE`
	p, err := r.scanOne(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByName obtiene un producto visible por nombre exacto.
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	query := `SELECT` + productColumns + productJoins + ` WHERE p.name = $1 AND p.visible = TRUE`
	p, err := r.scanOne(r.q.QueryRow(context.Background(), query, name))
	if err != nil {
		return nil, fmt.Errorf("get product by name: %w", err)
	}
	return p, nil
}

// Update actualiza los datos maestros de un producto. El stock no se toca aquí.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, category_id = $4, unit_id = $5,
			estimated_price = $6, minimum_stock = $7, updated_at = $8
		WHERE id = $1 AND visible = TRUE`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.CategoryID, product.UnitID,
		product.EstimatedPrice, product.MinimumStock, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista productos visibles con paginación.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT` + productColumns + productJoins + `
		WHERE p.visible = TRUE ORDER BY p.name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.CategoryName,
			&p.UnitID, &p.UnitName, &p.EstimatedPrice, &p.MinimumStock, &p.Visible,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// SoftDelete marca el producto como no visible.
func (r *ProductRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET visible = FALSE, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.CategoryName,
		&p.UnitID, &p.UnitName, &p.EstimatedPrice, &p.MinimumStock, &p.Visible,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
