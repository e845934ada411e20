package kardex_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appkardex "github.com/jcastror/resto-inventario/internal/application/kardex"
	"github.com/jcastror/resto-inventario/internal/domain"
	"github.com/jcastror/resto-inventario/internal/domain/entity"
	domkardex "github.com/jcastror/resto-inventario/internal/domain/kardex"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(*entity.Product) error { return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) GetByName(string) (*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Update(*entity.Product) error { return nil }
func (f *fakeProductRepo) List(int, int) ([]*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) SoftDelete(string) error { return nil }

type fakeMovementRepo struct {
	movements []*entity.Movement
}

func (f *fakeMovementRepo) Create(*entity.Movement) error { return nil }

// ListByProduct filtra por ventana inclusiva, como hace el SQL real.
func (f *fakeMovementRepo) ListByProduct(productID string, from, to *time.Time) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range f.movements {
		if m.ProductID != productID {
			continue
		}
		if from != nil && m.Date.Before(*from) {
			continue
		}
		if to != nil && m.Date.After(*to) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMovementRepo) LastByProduct(string) (*entity.Movement, error) { return nil, nil }

type fakeStockRepo struct {
	current decimal.Decimal
}

func (f *fakeStockRepo) Get(string, string) (*entity.StockDetail, error) { return nil, nil }
func (f *fakeStockRepo) ListForUpdateByProduct(string) ([]*entity.StockDetail, error) {
	return nil, nil
}
func (f *fakeStockRepo) Upsert(*entity.StockDetail) error { return nil }
func (f *fakeStockRepo) CurrentStock(string) (decimal.Decimal, error) {
	return f.current, nil
}
func (f *fakeStockRepo) CountActiveByContainer(string) (int, error) { return 0, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

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

func testProduct(minStock string) *entity.Product {
	return &entity.Product{
		ID:           "p1",
		Name:         "Arroz blanco",
		CategoryName: "Granos",
		UnitName:     "kg",
		MinimumStock: dec(minStock),
		Visible:      true,
	}
}

func chainedMov(id, kind, qty string, price *decimal.Decimal, before decimal.Decimal, date time.Time) *entity.Movement {
	m := &entity.Movement{
		ID:            id,
		ProductID:     "p1",
		Kind:          kind,
		Quantity:      dec(qty),
		UnitPrice:     price,
		BalanceBefore: before,
		Date:          date,
	}
	m.BalanceAfter = domkardex.ExpectedBalanceAfter(before, m)
	return m
}

func newTestUseCase(movs []*entity.Movement, current string, minStock string) *appkardex.UseCase {
	return appkardex.NewUseCase(
		&fakeProductRepo{products: map[string]*entity.Product{"p1": testProduct(minStock)}},
		&fakeMovementRepo{movements: movs},
		&fakeStockRepo{current: dec(current)},
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Compute
// ──────────────────────────────────────────────────────────────────────────────

func TestCompute_EstadisticasYSaldos(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	m1 := chainedMov("m1", entity.MovementKindEntry, "10", decPtr("2.00"), decimal.Zero, base)
	m2 := chainedMov("m2", entity.MovementKindExit, "4", decPtr("2.50"), m1.BalanceAfter, base.Add(time.Hour))
	uc := newTestUseCase([]*entity.Movement{m1, m2}, "6", "3")

	out, err := uc.Compute(context.Background(), "p1", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "Arroz blanco", out.Product.Name)
	require.Len(t, out.Movements, 2)
	assert.True(t, out.Movements[0].RunningBalance.Equal(dec("10")))
	assert.True(t, out.Movements[1].RunningBalance.Equal(dec("6")))
	assert.Equal(t, 2, out.Stats.MovimientosPeriodo)
	assert.True(t, out.Stats.ValorTotalEntradas.Equal(dec("20")))
	assert.True(t, out.Stats.ValorTotalSalidas.Equal(dec("10")))
	assert.True(t, out.CurrentStk.Equal(dec("6")))
	assert.False(t, out.LowStock, "6 >= mínimo 3")
}

func TestCompute_ProductoInexistente(t *testing.T) {
	uc := newTestUseCase(nil, "0", "0")

	_, err := uc.Compute(context.Background(), "no-existe", nil, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompute_RangoInvertido(t *testing.T) {
	uc := newTestUseCase(nil, "0", "0")
	from := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Compute(context.Background(), "p1", &from, &to)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompute_VentanaSinMovimientos(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	m1 := chainedMov("m1", entity.MovementKindEntry, "10", nil, decimal.Zero, base)
	uc := newTestUseCase([]*entity.Movement{m1}, "10", "3")

	// Ventana posterior a todos los movimientos: estadísticas en cero, sin error.
	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	out, err := uc.Compute(context.Background(), "p1", &from, &to)
	require.NoError(t, err)

	assert.Empty(t, out.Movements)
	assert.Equal(t, 0, out.Stats.MovimientosPeriodo)
	assert.True(t, out.Stats.CantidadEntradas.IsZero())
	assert.True(t, out.CurrentStk.Equal(dec("10")), "el stock actual no depende de la ventana")
}

func TestCompute_ToDeSoloFechaCubreElDiaCompleto(t *testing.T) {
	// Movimiento a las 18:00 del 10 de marzo; to = 10 de marzo sin hora.
	late := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	m1 := chainedMov("m1", entity.MovementKindEntry, "5", nil, decimal.Zero, late)
	uc := newTestUseCase([]*entity.Movement{m1}, "5", "1")

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	out, err := uc.Compute(context.Background(), "p1", &day, &day)
	require.NoError(t, err)

	assert.Len(t, out.Movements, 1, "un to de solo fecha debe incluir movimientos de la tarde")
}

func TestCompute_BajoStock(t *testing.T) {
	uc := newTestUseCase(nil, "2", "5")

	out, err := uc.Compute(context.Background(), "p1", nil, nil)
	require.NoError(t, err)

	assert.True(t, out.LowStock, "stock 2 bajo mínimo 5")
}

func TestCompute_CadenaRotaNoInvalidaLaLectura(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	m1 := chainedMov("m1", entity.MovementKindEntry, "10", nil, decimal.Zero, base)
	m2 := chainedMov("m2", entity.MovementKindExit, "3", nil, dec("8"), base.Add(time.Hour)) // no empalma
	uc := newTestUseCase([]*entity.Movement{m1, m2}, "5", "1")

	out, err := uc.Compute(context.Background(), "p1", nil, nil)

	require.NoError(t, err, "el quiebre de cadena solo se reporta en el log")
	assert.Len(t, out.Movements, 2)
}
