package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del kardex.
const (
	MovementKindEntry  = "ENTRADA" // aumenta el balance
	MovementKindExit   = "SALIDA"  // disminuye el balance
	MovementKindAdjust = "AJUSTE"  // corrección absoluta: fija el balance en Quantity
)

// ValidMovementKind verifica que el tipo sea uno de los soportados.
func ValidMovementKind(kind string) bool {
	switch kind {
	case MovementKindEntry, MovementKindExit, MovementKindAdjust:
		return true
	}
	return false
}

// Movement representa un movimiento del kardex de un producto. Inmutable una
// vez registrado: nunca se actualiza ni se borra. BalanceBefore/BalanceAfter
// son snapshots del stock del producto tomados al momento de escribir.
type Movement struct {
	ID            string
	ProductID     string
	ContainerID   *string // contenedor afectado; nil en ajustes globales antiguos
	ReasonID      *string
	ReasonName    string // denormalizado en lecturas
	DocumentRef   string // factura, remisión, acta
	Note          string
	Kind          string          // ENTRADA, SALIDA, AJUSTE
	Quantity      decimal.Decimal // magnitud no negativa; en AJUSTE es el balance absoluto
	UnitPrice     *decimal.Decimal
	BalanceBefore decimal.Decimal
	BalanceAfter  decimal.Decimal
	Date          time.Time
	CreatedAt     time.Time
	CreatedBy     string
}

// MovementReason motivo de movimiento (catálogo): compra, merma, consumo, etc.
type MovementReason struct {
	ID      string
	Name    string
	Kind    string // tipo de movimiento al que aplica
	Visible bool
}
