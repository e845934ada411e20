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

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL (usable con pool o tx).
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Create persiste un nuevo rol.
func (r *RoleRepo) Create(role *entity.Role) error {
	query := `
		INSERT INTO roles (id, name, description, visible, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		role.ID, role.Name, role.Description, role.Visible, role.CreatedAt, role.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByID obtiene un rol visible por ID.
func (r *RoleRepo) GetByID(id string) (*entity.Role, error) {
	query := `
		SELECT id, name, description, visible, created_at, updated_at
		FROM roles WHERE id = $1 AND visible = TRUE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get role")
}

// GetByName obtiene un rol visible por nombre.
func (r *RoleRepo) GetByName(name string) (*entity.Role, error) {
	query := `
		SELECT id, name, description, visible, created_at, updated_at
		FROM roles WHERE name = $1 AND visible = TRUE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name), "get role by name")
}

// Update actualiza un rol existente.
func (r *RoleRepo) Update(role *entity.Role) error {
	query := `
		UPDATE roles SET name = $2, description = $3, updated_at = $4
		WHERE id = $1 AND visible = TRUE`
	_, err := r.q.Exec(context.Background(), query,
		role.ID, role.Name, role.Description, role.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update role: %w", err)
	}
	return nil
}

// List lista los roles visibles.
func (r *RoleRepo) List() ([]*entity.Role, error) {
	query := `
		SELECT id, name, description, visible, created_at, updated_at
		FROM roles WHERE visible = TRUE ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Description, &role.Visible,
			&role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}

// SoftDelete marca el rol como no visible.
func (r *RoleRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE roles SET visible = FALSE, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete role: %w", err)
	}
	return nil
}

func (r *RoleRepo) scanOne(row pgx.Row, op string) (*entity.Role, error) {
	var role entity.Role
	err := row.Scan(&role.ID, &role.Name, &role.Description, &role.Visible,
		&role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &role, nil
}
