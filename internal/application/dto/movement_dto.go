package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/inventory/movements.
// En AJUSTE, Quantity es el balance absoluto que queda tras la corrección.
type RegisterMovementRequest struct {
	ProductID   string           `json:"product_id"`
	ContainerID string           `json:"container_id"`
	Kind        string           `json:"kind"` // ENTRADA, SALIDA, AJUSTE
	Quantity    decimal.Decimal  `json:"quantity"`
	UnitPrice   *decimal.Decimal `json:"unit_price,omitempty"`
	ReasonID    string           `json:"reason_id,omitempty"`
	DocumentRef string           `json:"document_ref,omitempty"`
	Note        string           `json:"note,omitempty"`
}

// MovementResponse un renglón del kardex en respuestas. RunningBalance es el
// snapshot balance_after persistido al registrar el movimiento.
type MovementResponse struct {
	ID             string           `json:"id"`
	Kind           string           `json:"kind"`
	Quantity       decimal.Decimal  `json:"quantity"`
	UnitPrice      *decimal.Decimal `json:"unit_price,omitempty"`
	BalanceBefore  decimal.Decimal  `json:"balance_before"`
	RunningBalance decimal.Decimal  `json:"running_balance"`
	ContainerID    string           `json:"container_id,omitempty"`
	Reason         string           `json:"reason,omitempty"`
	DocumentRef    string           `json:"document_ref,omitempty"`
	Note           string           `json:"note,omitempty"`
	Date           time.Time        `json:"date"`
	CreatedBy      string           `json:"created_by,omitempty"`
}

// KardexStatsDTO agregados del período, espejo JSON de kardex.Stats.
type KardexStatsDTO struct {
	MovimientosPeriodo int             `json:"movimientos_periodo"`
	NumEntradas        int             `json:"num_entradas"`
	NumSalidas         int             `json:"num_salidas"`
	NumAjustes         int             `json:"num_ajustes"`
	CantidadEntradas   decimal.Decimal `json:"cantidad_entradas"`
	CantidadSalidas    decimal.Decimal `json:"cantidad_salidas"`
	CantidadAjustes    decimal.Decimal `json:"cantidad_ajustes"`
	ValorTotalEntradas decimal.Decimal `json:"valor_total_entradas"`
	ValorTotalSalidas  decimal.Decimal `json:"valor_total_salidas"`
}

// KardexResponse respuesta de GET /api/products/:id/kardex.
type KardexResponse struct {
	Product    ProductResponse    `json:"product"`
	From       *time.Time         `json:"from,omitempty"`
	To         *time.Time         `json:"to,omitempty"`
	Movements  []MovementResponse `json:"movements"`
	Stats      KardexStatsDTO     `json:"stats"`
	CurrentStk decimal.Decimal    `json:"current_stock"`
	LowStock   bool               `json:"low_stock"`
}
