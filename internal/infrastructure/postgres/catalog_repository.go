package postgres

import (
	"context"
	"fmt"

	"github.com/jcastror/resto-inventario/internal/domain/entity"
	"github.com/jcastror/resto-inventario/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo lecturas de catálogos (categorías, unidades, motivos).
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador de catálogos.
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// ListCategories lista las categorías visibles ordenadas por nombre.
func (r *CatalogRepo) ListCategories() ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, visible FROM categories WHERE visible = TRUE ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Visible); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ListUnits lista las unidades de medida visibles ordenadas por nombre.
func (r *CatalogRepo) ListUnits() ([]*entity.Unit, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, abbreviation, visible FROM units WHERE visible = TRUE ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()
	var list []*entity.Unit
	for rows.Next() {
		var u entity.Unit
		if err := rows.Scan(&u.ID, &u.Name, &u.Abbreviation, &u.Visible); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// ListMovementReasons lista los motivos de movimiento visibles.
func (r *CatalogRepo) ListMovementReasons() ([]*entity.MovementReason, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, kind, visible FROM movement_reasons WHERE visible = TRUE ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list movement reasons: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementReason
	for rows.Next() {
		var m entity.MovementReason
		if err := rows.Scan(&m.ID, &m.Name, &m.Kind, &m.Visible); err != nil {
			return nil, fmt.Errorf("scan movement reason: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
