package repository

import (
	"github.com/jcastror/resto-inventario/internal/domain/entity"
)

// EventLogRepository puerto de escritura del registro de auditoría.
type EventLogRepository interface {
	Record(event *entity.EventLog) error
	ListRecent(limit int) ([]*entity.EventLog, error)
}
