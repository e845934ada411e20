package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastror/resto-inventario/internal/application/dto"
	"github.com/jcastror/resto-inventario/internal/application/inventory"
	"github.com/jcastror/resto-inventario/internal/domain"
	"github.com/jcastror/resto-inventario/internal/domain/entity"
	"github.com/jcastror/resto-inventario/internal/domain/repository"
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

type fakeContainerRepo struct {
	containers map[string]*entity.Container
}

func (f *fakeContainerRepo) Create(*entity.Container) error { return nil }
func (f *fakeContainerRepo) GetByID(id string) (*entity.Container, error) {
	return f.containers[id], nil
}
func (f *fakeContainerRepo) Update(*entity.Container) error { return nil }
func (f *fakeContainerRepo) List(int, int) ([]*entity.Container, error) { return nil, nil }
func (f *fakeContainerRepo) SoftDelete(string) error { return nil }

type fakeMovementRepo struct {
	created []*entity.Movement
}

func (f *fakeMovementRepo) Create(m *entity.Movement) error {
	f.created = append(f.created, m)
	return nil
}
func (f *fakeMovementRepo) ListByProduct(string, *time.Time, *time.Time) ([]*entity.Movement, error) {
	return nil, nil
}
func (f *fakeMovementRepo) LastByProduct(string) (*entity.Movement, error) { return nil, nil }

type fakeStockRepo struct {
	details []*entity.StockDetail
}

func (f *fakeStockRepo) Get(string, string) (*entity.StockDetail, error) { return nil, nil }
func (f *fakeStockRepo) ListForUpdateByProduct(productID string) ([]*entity.StockDetail, error) {
	var out []*entity.StockDetail
	for _, d := range f.details {
		if d.ProductID == productID && d.Visible {
			out = append(out, d)
		}
	}
	return out, nil
}
func (f *fakeStockRepo) Upsert(detail *entity.StockDetail) error {
	for i, d := range f.details {
		if d.ProductID == detail.ProductID && d.ContainerID == detail.ContainerID {
			f.details[i] = detail
			return nil
		}
	}
	f.details = append(f.details, detail)
	return nil
}
func (f *fakeStockRepo) CurrentStock(string) (decimal.Decimal, error) { return decimal.Zero, nil }
func (f *fakeStockRepo) CountActiveByContainer(string) (int, error) { return 0, nil }

// fakeTxRunner ejecuta el closure directamente, sin transacción real.
type fakeTxRunner struct {
	movRepo   *fakeMovementRepo
	stockRepo *fakeStockRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.MovementRepository, repository.StockRepository) error) error {
	return fn(f.movRepo, f.stockRepo)
}

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

type fixture struct {
	uc        *inventory.RegisterMovementUseCase
	movRepo   *fakeMovementRepo
	stockRepo *fakeStockRepo
}

func newFixture(details ...*entity.StockDetail) *fixture {
	movRepo := &fakeMovementRepo{}
	stockRepo := &fakeStockRepo{details: details}
	uc := inventory.NewRegisterMovementUseCase(
		&fakeTxRunner{movRepo: movRepo, stockRepo: stockRepo},
		&fakeProductRepo{products: map[string]*entity.Product{
			"p1": {ID: "p1", Name: "Arroz", Visible: true},
		}},
		&fakeContainerRepo{containers: map[string]*entity.Container{
			"c1": {ID: "c1", Name: "Despensa", Visible: true},
			"c2": {ID: "c2", Name: "Nevera", Visible: true},
		}},
		nil,
	)
	return &fixture{uc: uc, movRepo: movRepo, stockRepo: stockRepo}
}

func detail(containerID, qty string) *entity.StockDetail {
	return &entity.StockDetail{
		ID:          "sd-" + containerID,
		ProductID:   "p1",
		ContainerID: containerID,
		Quantity:    dec(qty),
		Visible:     true,
	}
}

func req(kind, qty string) dto.RegisterMovementRequest {
	return dto.RegisterMovementRequest{
		ProductID:   "p1",
		ContainerID: "c1",
		Kind:        kind,
		Quantity:    dec(qty),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_EntradaCreaRenglonYSnapshot(t *testing.T) {
	f := newFixture()

	out, err := f.uc.Register(context.Background(), "u1", req(entity.MovementKindEntry, "10"))
	require.NoError(t, err)

	assert.True(t, out.BalanceBefore.IsZero())
	assert.True(t, out.RunningBalance.Equal(dec("10")))
	require.Len(t, f.stockRepo.details, 1)
	assert.True(t, f.stockRepo.details[0].Quantity.Equal(dec("10")))
	require.Len(t, f.movRepo.created, 1)
}

func TestRegister_BalanceANivelDeProducto(t *testing.T) {
	// Stock repartido en dos contenedores: el snapshot suma ambos.
	f := newFixture(detail("c1", "4"), detail("c2", "6"))

	out, err := f.uc.Register(context.Background(), "u1", req(entity.MovementKindEntry, "5"))
	require.NoError(t, err)

	assert.True(t, out.BalanceBefore.Equal(dec("10")))
	assert.True(t, out.RunningBalance.Equal(dec("15")))
}

func TestRegister_SalidaConStockSuficiente(t *testing.T) {
	f := newFixture(detail("c1", "8"))

	out, err := f.uc.Register(context.Background(), "u1", req(entity.MovementKindExit, "3"))
	require.NoError(t, err)

	assert.True(t, out.RunningBalance.Equal(dec("5")))
	assert.True(t, f.stockRepo.details[0].Quantity.Equal(dec("5")))
}

func TestRegister_SalidaSinStock(t *testing.T) {
	f := newFixture(detail("c1", "2"))

	_, err := f.uc.Register(context.Background(), "u1", req(entity.MovementKindExit, "5"))

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, f.movRepo.created, "no debe persistirse ningún movimiento")
	assert.True(t, f.stockRepo.details[0].Quantity.Equal(dec("2")), "el stock no cambia")
}

func TestRegister_SalidaBloqueadaPorRenglon(t *testing.T) {
	// Stock global suficiente pero el contenedor objetivo no alcanza.
	f := newFixture(detail("c1", "2"), detail("c2", "10"))

	_, err := f.uc.Register(context.Background(), "u1", req(entity.MovementKindExit, "5"))

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestRegister_AjusteFijaBalanceAbsoluto(t *testing.T) {
	f := newFixture(detail("c1", "8"))

	out, err := f.uc.Register(context.Background(), "u1", req(entity.MovementKindAdjust, "3"))
	require.NoError(t, err)

	assert.True(t, out.BalanceBefore.Equal(dec("8")))
	assert.True(t, out.RunningBalance.Equal(dec("3")), "AJUSTE deja el balance en la cantidad dada")
	assert.True(t, f.stockRepo.details[0].Quantity.Equal(dec("3")))
}

func TestRegister_AjusteACeroPermitido(t *testing.T) {
	f := newFixture(detail("c1", "8"))

	out, err := f.uc.Register(context.Background(), "u1", req(entity.MovementKindAdjust, "0"))
	require.NoError(t, err)

	assert.True(t, out.RunningBalance.IsZero())
}

func TestRegister_ValidacionDeEntrada(t *testing.T) {
	f := newFixture()

	cases := []struct {
		name string
		in   dto.RegisterMovementRequest
	}{
		{"tipo inválido", dto.RegisterMovementRequest{ProductID: "p1", ContainerID: "c1", Kind: "TRANSFER", Quantity: dec("1")}},
		{"sin producto", dto.RegisterMovementRequest{ContainerID: "c1", Kind: entity.MovementKindEntry, Quantity: dec("1")}},
		{"sin contenedor", dto.RegisterMovementRequest{ProductID: "p1", Kind: entity.MovementKindEntry, Quantity: dec("1")}},
		{"cantidad negativa", req(entity.MovementKindEntry, "-1")},
		{"entrada en cero", req(entity.MovementKindEntry, "0")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.Register(context.Background(), "u1", tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestRegister_ProductoInexistente(t *testing.T) {
	f := newFixture()
	in := req(entity.MovementKindEntry, "1")
	in.ProductID = "no-existe"

	_, err := f.uc.Register(context.Background(), "u1", in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
