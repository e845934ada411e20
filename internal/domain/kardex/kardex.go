// Package kardex implementa el núcleo del libro de inventario: el fold de
// movimientos ordenados por fecha que produce balances corridos y los
// agregados por tipo de movimiento de un período.
//
// Convención de signos: ENTRADA suma al balance, SALIDA resta, AJUSTE fija el
// balance en la cantidad indicada (corrección absoluta, no incremental).
package kardex

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastror/resto-inventario/internal/domain/entity"
)

// Stats agregados del kardex sobre una ventana de tiempo. Derivado, nunca
// persistido. Los valores monetarios solo acumulan entradas y salidas con
// precio unitario registrado; los ajustes quedan excluidos del total.
type Stats struct {
	MovimientosPeriodo int

	NumEntradas int
	NumSalidas  int
	NumAjustes  int

	CantidadEntradas decimal.Decimal
	CantidadSalidas  decimal.Decimal
	CantidadAjustes  decimal.Decimal

	ValorTotalEntradas decimal.Decimal
	ValorTotalSalidas  decimal.Decimal
}

// Aggregate recorre los movimientos filtrados y acumula conteos, cantidades y
// valores por tipo. Una lista vacía produce Stats en cero, nunca error.
func Aggregate(movs []*entity.Movement) Stats {
	s := Stats{
		CantidadEntradas:   decimal.Zero,
		CantidadSalidas:    decimal.Zero,
		CantidadAjustes:    decimal.Zero,
		ValorTotalEntradas: decimal.Zero,
		ValorTotalSalidas:  decimal.Zero,
	}
	for _, m := range movs {
		s.MovimientosPeriodo++
		switch m.Kind {
		case entity.MovementKindEntry:
			s.NumEntradas++
			s.CantidadEntradas = s.CantidadEntradas.Add(m.Quantity)
			if m.UnitPrice != nil {
				s.ValorTotalEntradas = s.ValorTotalEntradas.Add(m.Quantity.Mul(*m.UnitPrice))
			}
		case entity.MovementKindExit:
			s.NumSalidas++
			s.CantidadSalidas = s.CantidadSalidas.Add(m.Quantity)
			if m.UnitPrice != nil {
				s.ValorTotalSalidas = s.ValorTotalSalidas.Add(m.Quantity.Mul(*m.UnitPrice))
			}
		case entity.MovementKindAdjust:
			s.NumAjustes++
			s.CantidadAjustes = s.CantidadAjustes.Add(m.Quantity)
		}
	}
	return s
}

// ExpectedBalanceAfter calcula el balance que debería quedar después de
// aplicar el movimiento sobre el balance previo:
//
//	ENTRADA: before + quantity
//	SALIDA:  before - quantity
//	AJUSTE:  quantity (absoluto)
func ExpectedBalanceAfter(before decimal.Decimal, m *entity.Movement) decimal.Decimal {
	switch m.Kind {
	case entity.MovementKindEntry:
		return before.Add(m.Quantity)
	case entity.MovementKindExit:
		return before.Sub(m.Quantity)
	case entity.MovementKindAdjust:
		return m.Quantity
	}
	return before
}

// VerifyChain valida la consistencia de los snapshots persistidos de una
// secuencia de movimientos ordenada por fecha ascendente:
//
//	balance_after[i]      == ExpectedBalanceAfter(balance_before[i], mov[i])
//	balance_before[i+1]   == balance_after[i]
//
// Los snapshots se escriben al registrar el movimiento y el kardex confía en
// ellos en lugar de recomputar el fold desde el origen; un escritor
// concurrente podría desalinearlos. Retorna el primer quiebre encontrado.
func VerifyChain(movs []*entity.Movement) error {
	var prev *entity.Movement
	for i, m := range movs {
		want := ExpectedBalanceAfter(m.BalanceBefore, m)
		if !m.BalanceAfter.Equal(want) {
			return fmt.Errorf("kardex: movimiento %s (pos %d): balance_after %s, esperado %s",
				m.ID, i, m.BalanceAfter.String(), want.String())
		}
		if prev != nil && !m.BalanceBefore.Equal(prev.BalanceAfter) {
			return fmt.Errorf("kardex: movimiento %s (pos %d): balance_before %s no empalma con balance_after previo %s",
				m.ID, i, m.BalanceBefore.String(), prev.BalanceAfter.String())
		}
		prev = m
	}
	return nil
}

// EndOfDay devuelve el último instante del día calendario de t, para que el
// límite superior de un rango [from, to] dado como fecha sea inclusivo.
func EndOfDay(t time.Time) time.Time {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start.Add(24*time.Hour - time.Nanosecond)
}

// NormalizeRange valida y ajusta una ventana [from, to]: retorna error si
// from > to, y promueve un `to` sin hora (00:00:00) al fin del día para que
// un rango de un solo día incluya todos los movimientos de ese día.
func NormalizeRange(from, to *time.Time) (*time.Time, *time.Time, error) {
	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, fmt.Errorf("kardex: rango inválido: from %s posterior a to %s",
			from.Format("2006-01-02"), to.Format("2006-01-02"))
	}
	if to != nil {
		if h, m, s := to.Clock(); h == 0 && m == 0 && s == 0 {
			eod := EndOfDay(*to)
			to = &eod
		}
	}
	return from, to, nil
}
