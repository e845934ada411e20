package kardex_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastror/resto-inventario/internal/domain/entity"
	"github.com/jcastror/resto-inventario/internal/domain/kardex"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// mov arma un movimiento con snapshots consistentes a partir del balance previo.
func mov(id, kind, qty string, unitPrice *decimal.Decimal, before decimal.Decimal) *entity.Movement {
	m := &entity.Movement{
		ID:            id,
		Kind:          kind,
		Quantity:      dec(qty),
		UnitPrice:     unitPrice,
		BalanceBefore: before,
	}
	m.BalanceAfter = kardex.ExpectedBalanceAfter(before, m)
	return m
}

// ──────────────────────────────────────────────────────────────────────────────
// ExpectedBalanceAfter
// ──────────────────────────────────────────────────────────────────────────────

func TestExpectedBalanceAfter_EntradaSuma(t *testing.T) {
	m := &entity.Movement{Kind: entity.MovementKindEntry, Quantity: dec("5")}
	got := kardex.ExpectedBalanceAfter(dec("10"), m)
	assert.True(t, got.Equal(dec("15")), "ENTRADA debe sumar: got %s", got)
}

func TestExpectedBalanceAfter_SalidaResta(t *testing.T) {
	m := &entity.Movement{Kind: entity.MovementKindExit, Quantity: dec("4")}
	got := kardex.ExpectedBalanceAfter(dec("10"), m)
	assert.True(t, got.Equal(dec("6")), "SALIDA debe restar: got %s", got)
}

func TestExpectedBalanceAfter_AjusteEsAbsoluto(t *testing.T) {
	// AJUSTE fija el balance en la cantidad indicada, sin importar el previo.
	m := &entity.Movement{Kind: entity.MovementKindAdjust, Quantity: dec("7.5")}
	got := kardex.ExpectedBalanceAfter(dec("100"), m)
	assert.True(t, got.Equal(dec("7.5")), "AJUSTE debe fijar el balance: got %s", got)
}

// ──────────────────────────────────────────────────────────────────────────────
// VerifyChain
// ──────────────────────────────────────────────────────────────────────────────

func TestVerifyChain_CadenaConsistente(t *testing.T) {
	m1 := mov("m1", entity.MovementKindEntry, "10", decPtr("2.50"), decimal.Zero)
	m2 := mov("m2", entity.MovementKindExit, "3", nil, m1.BalanceAfter)
	m3 := mov("m3", entity.MovementKindAdjust, "5", nil, m2.BalanceAfter)

	assert.NoError(t, kardex.VerifyChain([]*entity.Movement{m1, m2, m3}))
	assert.True(t, m3.BalanceAfter.Equal(dec("5")))
}

func TestVerifyChain_SnapshotDesalineado(t *testing.T) {
	m1 := mov("m1", entity.MovementKindEntry, "10", nil, decimal.Zero)
	m2 := mov("m2", entity.MovementKindExit, "3", nil, m1.BalanceAfter)
	m2.BalanceAfter = dec("99") // snapshot corrupto

	err := kardex.VerifyChain([]*entity.Movement{m1, m2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "m2", "el error debe señalar el movimiento que quiebra la cadena")
}

func TestVerifyChain_BeforeNoEmpalma(t *testing.T) {
	m1 := mov("m1", entity.MovementKindEntry, "10", nil, decimal.Zero)
	m2 := mov("m2", entity.MovementKindExit, "3", nil, dec("8")) // debería arrancar en 10

	err := kardex.VerifyChain([]*entity.Movement{m1, m2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no empalma")
}

func TestVerifyChain_ListaVacia(t *testing.T) {
	assert.NoError(t, kardex.VerifyChain(nil))
}

// ──────────────────────────────────────────────────────────────────────────────
// Aggregate
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregate_SumasPorTipo(t *testing.T) {
	m1 := mov("m1", entity.MovementKindEntry, "10", decPtr("2.00"), decimal.Zero)
	m2 := mov("m2", entity.MovementKindEntry, "5", decPtr("3.00"), m1.BalanceAfter)
	m3 := mov("m3", entity.MovementKindExit, "4", decPtr("2.50"), m2.BalanceAfter)
	m4 := mov("m4", entity.MovementKindAdjust, "8", nil, m3.BalanceAfter)

	s := kardex.Aggregate([]*entity.Movement{m1, m2, m3, m4})

	assert.Equal(t, 4, s.MovimientosPeriodo)
	assert.Equal(t, 2, s.NumEntradas)
	assert.Equal(t, 1, s.NumSalidas)
	assert.Equal(t, 1, s.NumAjustes)
	assert.True(t, s.CantidadEntradas.Equal(dec("15")), "cantidad entradas: %s", s.CantidadEntradas)
	assert.True(t, s.CantidadSalidas.Equal(dec("4")))
	assert.True(t, s.CantidadAjustes.Equal(dec("8")))
	// 10×2.00 + 5×3.00 = 35 ; 4×2.50 = 10
	assert.True(t, s.ValorTotalEntradas.Equal(dec("35")), "valor entradas: %s", s.ValorTotalEntradas)
	assert.True(t, s.ValorTotalSalidas.Equal(dec("10")))
}

func TestAggregate_PrecioNuloAportaCero(t *testing.T) {
	m1 := mov("m1", entity.MovementKindEntry, "10", nil, decimal.Zero)
	m2 := mov("m2", entity.MovementKindEntry, "5", decPtr("2.00"), m1.BalanceAfter)

	s := kardex.Aggregate([]*entity.Movement{m1, m2})

	assert.True(t, s.CantidadEntradas.Equal(dec("15")))
	assert.True(t, s.ValorTotalEntradas.Equal(dec("10")), "solo la entrada con precio aporta valor")
}

func TestAggregate_VentanaVacia(t *testing.T) {
	s := kardex.Aggregate(nil)

	assert.Equal(t, 0, s.MovimientosPeriodo)
	assert.Equal(t, 0, s.NumEntradas)
	assert.True(t, s.CantidadEntradas.IsZero())
	assert.True(t, s.CantidadSalidas.IsZero())
	assert.True(t, s.CantidadAjustes.IsZero())
	assert.True(t, s.ValorTotalEntradas.IsZero())
	assert.True(t, s.ValorTotalSalidas.IsZero())
}

func TestAggregate_AjusteExcluidoDelValor(t *testing.T) {
	m := mov("m1", entity.MovementKindAdjust, "8", decPtr("5.00"), decimal.Zero)

	s := kardex.Aggregate([]*entity.Movement{m})

	assert.True(t, s.ValorTotalEntradas.IsZero(), "los ajustes no entran al total monetario")
	assert.True(t, s.ValorTotalSalidas.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// NormalizeRange / EndOfDay
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizeRange_RangoInvertido(t *testing.T) {
	from := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	_, _, err := kardex.NormalizeRange(&from, &to)
	assert.Error(t, err, "from posterior a to debe rechazarse")
}

func TestNormalizeRange_DiaUnicoIncluyeTodoElDia(t *testing.T) {
	// from y to en la misma fecha sin hora: la ventana debe cubrir el día completo.
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	from, to, err := kardex.NormalizeRange(&day, &day)
	require.NoError(t, err)
	require.NotNil(t, to)

	lateMove := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)
	assert.False(t, to.Before(lateMove), "un movimiento a las 23:30 debe caer dentro del rango")
	assert.True(t, from.Equal(day))
	assert.Equal(t, 10, to.Day(), "el límite superior no debe pasar al día siguiente")
}

func TestNormalizeRange_ToConHoraNoSePromueve(t *testing.T) {
	to := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	_, got, err := kardex.NormalizeRange(nil, &to)
	require.NoError(t, err)
	assert.True(t, got.Equal(to), "un to con hora explícita se respeta tal cual")
}

func TestNormalizeRange_SinLimites(t *testing.T) {
	from, to, err := kardex.NormalizeRange(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, from)
	assert.Nil(t, to)
}

func TestEndOfDay(t *testing.T) {
	ts := time.Date(2026, 3, 10, 9, 15, 0, 0, time.UTC)
	eod := kardex.EndOfDay(ts)

	assert.Equal(t, 10, eod.Day())
	assert.Equal(t, 23, eod.Hour())
	assert.True(t, eod.Before(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)))
}
