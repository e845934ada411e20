// Package excel genera el libro XLSX del kardex con excelize.
//
// Estructura del libro:
//
//	Hoja "Producto"     — ficha del producto y rango consultado
//	Hoja "Movimientos"  — un renglón por movimiento, con saldo corrido
//	Hoja "Estadísticas" — agregados del período
package excel

import (
	"bytes"
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jcastror/resto-inventario/internal/application/dto"
	appkardex "github.com/jcastror/resto-inventario/internal/application/kardex"
)

const (
	sheetProduct   = "Producto"
	sheetMovements = "Movimientos"
	sheetStats     = "Estadísticas"
)

var _ appkardex.WorkbookGenerator = (*KardexWorkbookGenerator)(nil)

// KardexWorkbookGenerator implementa kardex.WorkbookGenerator con excelize.
type KardexWorkbookGenerator struct{}

// NewKardexWorkbookGenerator construye el generador.
func NewKardexWorkbookGenerator() *KardexWorkbookGenerator {
	return &KardexWorkbookGenerator{}
}

// GenerateKardexWorkbook arma el XLSX y devuelve sus bytes.
func (g *KardexWorkbookGenerator) GenerateKardexWorkbook(_ context.Context, data *dto.KardexResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00467F"}},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: crear estilo: %w", err)
	}

	if err := writeProductSheet(f, data); err != nil {
		return nil, err
	}
	if err := writeMovementsSheet(f, headerStyle, data.Movements); err != nil {
		return nil, err
	}
	if err := writeStatsSheet(f, data); err != nil {
		return nil, err
	}

	// La hoja por defecto sobra una vez creadas las propias.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("excel: eliminar hoja por defecto: %w", err)
	}
	idx, err := f.GetSheetIndex(sheetProduct)
	if err != nil {
		return nil, fmt.Errorf("excel: índice de hoja: %w", err)
	}
	f.SetActiveSheet(idx)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func writeProductSheet(f *excelize.File, data *dto.KardexResponse) error {
	if _, err := f.NewSheet(sheetProduct); err != nil {
		return fmt.Errorf("excel: crear hoja %s: %w", sheetProduct, err)
	}

	rows := [][]interface{}{
		{"Kardex de producto"},
		{},
		{"Producto", data.Product.Name},
		{"Categoría", data.Product.Category},
		{"Unidad", data.Product.Unit},
		{"Precio estimado", toFloat(data.Product.EstimatedPrice)},
		{"Stock mínimo", toFloat(data.Product.MinimumStock)},
		{"Stock actual", toFloat(data.CurrentStk)},
		{"Bajo stock", yesNo(data.LowStock)},
	}
	if data.From != nil {
		rows = append(rows, []interface{}{"Desde", data.From.Format("2006-01-02 15:04")})
	}
	if data.To != nil {
		rows = append(rows, []interface{}{"Hasta", data.To.Format("2006-01-02 15:04")})
	}

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheetProduct, cell, &row); err != nil {
			return fmt.Errorf("excel: fila de producto: %w", err)
		}
	}
	if err := f.SetColWidth(sheetProduct, "A", "A", 18); err != nil {
		return err
	}
	return f.SetColWidth(sheetProduct, "B", "B", 30)
}

func writeMovementsSheet(f *excelize.File, headerStyle int, movements []dto.MovementResponse) error {
	if _, err := f.NewSheet(sheetMovements); err != nil {
		return fmt.Errorf("excel: crear hoja %s: %w", sheetMovements, err)
	}

	header := []interface{}{
		"Fecha", "Tipo", "Cantidad", "Precio unit.",
		"Saldo anterior", "Saldo", "Motivo", "Documento", "Nota", "Registrado por",
	}
	if err := f.SetSheetRow(sheetMovements, "A1", &header); err != nil {
		return fmt.Errorf("excel: cabecera de movimientos: %w", err)
	}
	lastCell, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(sheetMovements, "A1", lastCell, headerStyle); err != nil {
		return fmt.Errorf("excel: estilo de cabecera: %w", err)
	}

	for i, m := range movements {
		var unitPrice interface{}
		if m.UnitPrice != nil {
			unitPrice = toFloat(*m.UnitPrice)
		}
		row := []interface{}{
			m.Date.Format("2006-01-02 15:04"),
			m.Kind,
			toFloat(m.Quantity),
			unitPrice,
			toFloat(m.BalanceBefore),
			toFloat(m.RunningBalance),
			m.Reason,
			m.DocumentRef,
			m.Note,
			m.CreatedBy,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetMovements, cell, &row); err != nil {
			return fmt.Errorf("excel: fila de movimiento: %w", err)
		}
	}
	if err := f.SetColWidth(sheetMovements, "A", "A", 17); err != nil {
		return err
	}
	return f.SetColWidth(sheetMovements, "G", "J", 22)
}

func writeStatsSheet(f *excelize.File, data *dto.KardexResponse) error {
	if _, err := f.NewSheet(sheetStats); err != nil {
		return fmt.Errorf("excel: crear hoja %s: %w", sheetStats, err)
	}

	s := data.Stats
	rows := [][]interface{}{
		{"Estadísticas del período"},
		{},
		{"Movimientos en el período", s.MovimientosPeriodo},
		{"Entradas", s.NumEntradas},
		{"Salidas", s.NumSalidas},
		{"Ajustes", s.NumAjustes},
		{"Cantidad entradas", toFloat(s.CantidadEntradas)},
		{"Cantidad salidas", toFloat(s.CantidadSalidas)},
		{"Cantidad ajustes", toFloat(s.CantidadAjustes)},
		{"Valor total entradas", toFloat(s.ValorTotalEntradas)},
		{"Valor total salidas", toFloat(s.ValorTotalSalidas)},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheetStats, cell, &row); err != nil {
			return fmt.Errorf("excel: fila de estadísticas: %w", err)
		}
	}
	return f.SetColWidth(sheetStats, "A", "A", 26)
}

func toFloat(d decimal.Decimal) float64 {
	v, _ := d.Float64()
	return v
}

func yesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}
