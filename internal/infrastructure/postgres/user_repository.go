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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `
	u.id, u.username, u.email, u.password_hash, u.name, u.role_id, r.name,
	u.visible, u.created_at, u.updated_at`

const userJoins = `
	FROM users u
	JOIN roles r ON r.id = u.role_id`

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, name, role_id, visible, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.Name, user.RoleID,
		user.Visible, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario visible por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT` + userColumns + userJoins + ` WHERE u.id = $1 AND u.visible = TRUE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get user")
}

// FindByIdentifier resuelve el usuario visible por username o email (login).
func (r *UserRepo) FindByIdentifier(identifier string) (*entity.User, error) {
	query := `SELECT` + userColumns + userJoins + `
		WHERE (u.username = $1 OR u.email = $1) AND u.visible = TRUE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, identifier), "find user")
}

// Update actualiza un usuario existente. Username es inmutable.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET email = $2, password_hash = $3, name = $4, role_id = $5, updated_at = $6
		WHERE id = $1 AND visible = TRUE`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.RoleID, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// List lista usuarios visibles con paginación.
func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	query := `SELECT` + userColumns + userJoins + `
		WHERE u.visible = TRUE ORDER BY u.username ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Name,
			&u.RoleID, &u.RoleName, &u.Visible, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// SoftDelete marca el usuario como no visible.
func (r *UserRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE users SET visible = FALSE, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete user: %w", err)
	}
	return nil
}

// CountVisibleByRole cuenta usuarios visibles asignados al rol.
func (r *UserRepo) CountVisibleByRole(roleID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM users WHERE role_id = $1 AND visible = TRUE`, roleID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count users by role: %w", err)
	}
	return n, nil
}

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Name,
		&u.RoleID, &u.RoleName, &u.Visible, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}
