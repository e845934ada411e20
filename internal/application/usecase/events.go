package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jcastror/resto-inventario/internal/domain/entity"
	"github.com/jcastror/resto-inventario/internal/domain/repository"
)

// recordEvent escribe una fila de auditoría best-effort: un fallo al
// registrar nunca bloquea la operación que lo originó.
func recordEvent(events repository.EventLogRepository, actorID, action, entityName, entityID, detail string) {
	if events == nil {
		return
	}
	err := events.Record(&entity.EventLog{
		ID:        uuid.New().String(),
		UserID:    actorID,
		Action:    action,
		Entity:    entityName,
		EntityID:  entityID,
		Detail:    detail,
		CreatedAt: time.Now(),
	})
	if err != nil {
		log.Warn().Err(err).Str("entity", entityName).Str("action", action).Msg("registro de evento fallido")
	}
}
