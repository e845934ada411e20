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

var _ repository.ContainerRepository = (*ContainerRepo)(nil)

// ContainerRepo implementación del puerto ContainerRepository sobre PostgreSQL (usable con pool o tx).
type ContainerRepo struct {
	q Querier
}

// NewContainerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContainerRepository(q Querier) *ContainerRepo {
	return &ContainerRepo{q: q}
}

// Create persiste un nuevo contenedor.
func (r *ContainerRepo) Create(container *entity.Container) error {
	query := `
		INSERT INTO containers (id, name, location, description, visible, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		container.ID, container.Name, container.Location, container.Description,
		container.Visible, container.CreatedAt, container.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert container: %w", err)
	}
	return nil
}

// GetByID obtiene un contenedor visible por ID.
func (r *ContainerRepo) GetByID(id string) (*entity.Container, error) {
	query := `
		SELECT id, name, location, description, visible, created_at, updated_at
		FROM containers WHERE id = $1 AND visible = TRUE`
	var c entity.Container
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Location, &c.Description, &c.Visible, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get container: %w", err)
	}
	return &c, nil
}

// Update actualiza un contenedor existente.
func (r *ContainerRepo) Update(container *entity.Container) error {
	query := `
		UPDATE containers SET name = $2, location = $3, description = $4, updated_at = $5
		WHERE id = $1 AND visible = TRUE`
	_, err := r.q.Exec(context.Background(), query,
		container.ID, container.Name, container.Location, container.Description, container.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update container: %w", err)
	}
	return nil
}

// List lista contenedores visibles con paginación.
func (r *ContainerRepo) List(limit, offset int) ([]*entity.Container, error) {
	query := `
		SELECT id, name, location, description, visible, created_at, updated_at
		FROM containers WHERE visible = TRUE ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Container
	for rows.Next() {
		var c entity.Container
		if err := rows.Scan(&c.ID, &c.Name, &c.Location, &c.Description, &c.Visible,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan container: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// SoftDelete marca el contenedor como no visible.
func (r *ContainerRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE containers SET visible = FALSE, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete container: %w", err)
	}
	return nil
}
