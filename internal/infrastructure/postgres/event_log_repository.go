package postgres

import (
	"context"
	"fmt"

	"github.com/jcastror/resto-inventario/internal/domain/entity"
	"github.com/jcastror/resto-inventario/internal/domain/repository"
)

var _ repository.EventLogRepository = (*EventLogRepo)(nil)

type EventLogRepo struct {
	db Querier
}

func NewEventLogRepository(db Querier) *EventLogRepo {
	return &EventLogRepo{db: db}
}

// Record inserta un registro de auditoría. El llamador decide si el fallo
// se propaga o solo se registra en el log.
func (r *EventLogRepo) Record(ev *entity.EventLog) error {
	query := `
	INSERT INTO event_logs (id, user_id, action, entity, entity_id, detail, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(context.Background(), query,
		ev.ID, ev.UserID, ev.Action, ev.Entity, ev.EntityID, ev.Detail, ev.CreatedAt)
	if err != nil {
		return fmt.Errorf("error registrando evento: %w", err)
	}
	return nil
}

// ListRecent devuelve los últimos eventos, más recientes primero.
func (r *EventLogRepo) ListRecent(limit int) ([]*entity.EventLog, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
	SELECT id, user_id, action, entity, entity_id, detail, created_at
	FROM event_logs
	ORDER BY created_at DESC
	LIMIT $1`

	rows, err := r.db.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("error listando eventos: %w", err)
	}
	defer rows.Close()

	var events []*entity.EventLog
	for rows.Next() {
		var ev entity.EventLog
		if err := rows.Scan(&ev.ID, &ev.UserID, &ev.Action, &ev.Entity,
			&ev.EntityID, &ev.Detail, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("error leyendo evento: %w", err)
		}
		events = append(events, &ev)
	}
	return events, rows.Err()
}
