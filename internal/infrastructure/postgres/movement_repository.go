package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jcastror/resto-inventario/internal/domain/entity"
	"github.com/jcastror/resto-inventario/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL
// (usable con pool o tx). La tabla movements es append-only.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `
	m.id, m.product_id, m.container_id, m.reason_id, COALESCE(mr.name, ''),
	m.document_ref, m.note, m.kind, m.quantity, m.unit_price,
	m.balance_before, m.balance_after, m.date, m.created_at, COALESCE(m.created_by, '')`

// Create persiste un movimiento del kardex.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, product_id, container_id, reason_id, document_ref, note, kind, quantity, unit_price, balance_before, balance_after, date, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	createdBy := (*string)(nil)
	if movement.CreatedBy != "" {
		createdBy = &movement.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.ContainerID, movement.ReasonID,
		movement.DocumentRef, movement.Note, movement.Kind, movement.Quantity,
		movement.UnitPrice, movement.BalanceBefore, movement.BalanceAfter,
		movement.Date, movement.CreatedAt, createdBy,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// ListByProduct lista los movimientos de un producto ordenados por fecha
// ascendente, restringidos a la ventana [from, to] (límites inclusivos).
func (r *MovementRepo) ListByProduct(productID string, from, to *time.Time) ([]*entity.Movement, error) {
	query := `
		SELECT` + movementColumns + `
		FROM movements m
		LEFT JOIN movement_reasons mr ON mr.id = m.reason_id
		WHERE m.product_id = $1`
	args := []any{productID}
	pos := 2
	if from != nil {
		query += fmt.Sprintf(" AND m.date >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND m.date <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += " ORDER BY m.date ASC, m.created_at ASC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements by product: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// LastByProduct devuelve el movimiento más reciente del producto, o nil si no
// tiene historial.
func (r *MovementRepo) LastByProduct(productID string) (*entity.Movement, error) {
	query := `
		SELECT` + movementColumns + `
		FROM movements m
		LEFT JOIN movement_reasons mr ON mr.id = m.reason_id
		WHERE m.product_id = $1
		ORDER BY m.date DESC, m.created_at DESC LIMIT 1`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("last movement: %w", err)
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("last movement: %w", err)
		}
		return nil, nil
	}
	m, err := scanMovement(rows)
	if err != nil {
		return nil, fmt.Errorf("scan last movement: %w", err)
	}
	return m, rows.Err()
}

func scanMovement(rows pgx.Rows) (*entity.Movement, error) {
	var m entity.Movement
	if err := rows.Scan(&m.ID, &m.ProductID, &m.ContainerID, &m.ReasonID, &m.ReasonName,
		&m.DocumentRef, &m.Note, &m.Kind, &m.Quantity, &m.UnitPrice,
		&m.BalanceBefore, &m.BalanceAfter, &m.Date, &m.CreatedAt, &m.CreatedBy); err != nil {
		return nil, err
	}
	return &m, nil
}
