// Package analytics contiene el caso de uso del dashboard: agregados de
// stock y valor del portafolio de productos.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastror/resto-inventario/internal/application/dto"
	"github.com/jcastror/resto-inventario/internal/domain/repository"
)

// DashboardUseCase genera el resumen del inventario: conteo de productos,
// valor total Σ (stock × precio estimado), productos bajo el mínimo y
// desglose por categoría.
//
// Fuente de datos: AnalyticsRepository (consultas read-only). Las filas
// llegan con el stock ya sumado desde SQL; la reducción a agregados se hace
// aquí. Cualquier fallo de consulta invalida el resumen completo: nunca se
// retornan datos parciales.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Dos llamadas en paralelo:
//  1. GetProductStockRows → fold de totales y categorías
//  2. CountContainers     → ContainerCount
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type rowsResult struct {
		rows []repository.ProductStockRow
		err  error
	}
	type countResult struct {
		n   int
		err error
	}

	rowsCh := make(chan rowsResult, 1)
	containersCh := make(chan countResult, 1)

	go func() {
		rows, err := uc.analyticsRepo.GetProductStockRows(ctx)
		rowsCh <- rowsResult{rows, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountContainers(ctx)
		containersCh <- countResult{n, err}
	}()

	rows := <-rowsCh
	containers := <-containersCh

	if rows.err != nil {
		return nil, fmt.Errorf("dashboard: filas de productos: %w", rows.err)
	}
	if containers.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de contenedores: %w", containers.err)
	}

	totalValue := decimal.Zero
	lowStock := 0
	type catAgg struct {
		products int
		value    decimal.Decimal
	}
	byCategory := make(map[string]*catAgg)

	for _, r := range rows.rows {
		value := r.CurrentStock.Mul(r.EstimatedPrice)
		totalValue = totalValue.Add(value)
		if r.CurrentStock.LessThan(r.MinimumStock) {
			lowStock++
		}
		agg := byCategory[r.Category]
		if agg == nil {
			agg = &catAgg{value: decimal.Zero}
			byCategory[r.Category] = agg
		}
		agg.products++
		agg.value = agg.value.Add(value)
	}

	categories := make([]dto.CategorySummaryDTO, 0, len(byCategory))
	for name, agg := range byCategory {
		categories = append(categories, dto.CategorySummaryDTO{
			Category: name,
			Products: agg.products,
			Value:    agg.value.Round(2),
		})
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Value.Equal(categories[j].Value) {
			return categories[i].Category < categories[j].Category
		}
		return categories[i].Value.GreaterThan(categories[j].Value)
	})

	return &dto.DashboardSummaryDTO{
		TotalProducts:  len(rows.rows),
		TotalValue:     totalValue.Round(2),
		LowStockItems:  lowStock,
		CategoryCount:  len(byCategory),
		ContainerCount: containers.n,
		Categories:     categories,
		DateLabel:      monthLabel(time.Now()),
	}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Agosto 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
