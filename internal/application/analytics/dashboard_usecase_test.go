package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastror/resto-inventario/internal/application/analytics"
	"github.com/jcastror/resto-inventario/internal/domain/repository"
)

// fakeAnalyticsRepo repositorio de analítica en memoria.
type fakeAnalyticsRepo struct {
	rows       []repository.ProductStockRow
	containers int

	rowsErr       error
	containersErr error
}

func (f *fakeAnalyticsRepo) GetProductStockRows(context.Context) ([]repository.ProductStockRow, error) {
	return f.rows, f.rowsErr
}

func (f *fakeAnalyticsRepo) CountContainers(context.Context) (int, error) {
	return f.containers, f.containersErr
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func row(name, category, stock, price, min string) repository.ProductStockRow {
	return repository.ProductStockRow{
		ProductID:      "id-" + name,
		Name:           name,
		Category:       category,
		CurrentStock:   dec(stock),
		EstimatedPrice: dec(price),
		MinimumStock:   dec(min),
	}
}

func TestGetSummary_Totales(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		rows: []repository.ProductStockRow{
			row("arroz", "Granos", "10", "3.50", "5"),
			row("lentejas", "Granos", "4", "2.00", "3"),
			row("aceite", "Aceites", "6", "8.00", "2"),
		},
		containers: 4,
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, out.TotalProducts)
	assert.Equal(t, 4, out.ContainerCount)
	assert.Equal(t, 2, out.CategoryCount)
	// 10×3.50 + 4×2.00 + 6×8.00 = 35 + 8 + 48 = 91
	assert.True(t, out.TotalValue.Equal(dec("91")), "total_value: %s", out.TotalValue)
	assert.NotEmpty(t, out.DateLabel)
}

func TestGetSummary_BajoStock(t *testing.T) {
	// {stock 2 / min 5} cuenta, {stock 10 / min 5} no: exactamente 1 producto.
	repo := &fakeAnalyticsRepo{
		rows: []repository.ProductStockRow{
			row("tomate", "Verduras", "2", "1.00", "5"),
			row("papa", "Verduras", "10", "1.00", "5"),
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, out.LowStockItems)
}

func TestGetSummary_StockIgualAlMinimoNoEsBajo(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		rows: []repository.ProductStockRow{
			row("sal", "Condimentos", "5", "1.00", "5"),
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, out.LowStockItems, "stock == mínimo no cuenta como bajo")
}

func TestGetSummary_CategoriasOrdenadasPorValor(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		rows: []repository.ProductStockRow{
			row("arroz", "Granos", "10", "1.00", "1"),    // Granos: 10
			row("aceite", "Aceites", "10", "5.00", "1"),  // Aceites: 50
			row("tomate", "Verduras", "10", "2.00", "1"), // Verduras: 20
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	require.Len(t, out.Categories, 3)
	assert.Equal(t, "Aceites", out.Categories[0].Category)
	assert.Equal(t, "Verduras", out.Categories[1].Category)
	assert.Equal(t, "Granos", out.Categories[2].Category)
	assert.Equal(t, 1, out.Categories[0].Products)
	assert.True(t, out.Categories[0].Value.Equal(dec("50")))
}

func TestGetSummary_SinProductos(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeAnalyticsRepo{containers: 2})

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, out.TotalProducts)
	assert.True(t, out.TotalValue.IsZero())
	assert.Equal(t, 0, out.LowStockItems)
	assert.Equal(t, 2, out.ContainerCount)
	assert.Empty(t, out.Categories)
}

func TestGetSummary_ErrorDeFilasSePropaga(t *testing.T) {
	repo := &fakeAnalyticsRepo{rowsErr: errors.New("conexión perdida")}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background())

	assert.Error(t, err)
	assert.Nil(t, out, "nunca se retornan datos parciales")
}

func TestGetSummary_ErrorDeContenedoresSePropaga(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		rows:          []repository.ProductStockRow{row("arroz", "Granos", "1", "1", "1")},
		containersErr: errors.New("timeout"),
	}
	uc := analytics.NewDashboardUseCase(repo)

	_, err := uc.GetSummary(context.Background())
	assert.Error(t, err)
}
