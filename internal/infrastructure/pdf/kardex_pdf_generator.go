// Package pdf implementa la representación imprimible del kardex con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del producto  │  Rango consultado           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FICHA: Categoría / Unidad / Stock actual / Stock mínimo    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Cant | P.Unit | Saldo                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: entradas / salidas / ajustes / valores            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jcastror/resto-inventario/internal/application/dto"
	appkardex "github.com/jcastror/resto-inventario/internal/application/kardex"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appkardex.PDFGenerator = (*KardexPDFGenerator)(nil)

// KardexPDFGenerator implementa kardex.PDFGenerator usando Maroto v2.
type KardexPDFGenerator struct{}

// NewKardexPDFGenerator construye el generador.
func NewKardexPDFGenerator() *KardexPDFGenerator { return &KardexPDFGenerator{} }

// GenerateKardexPDF genera el PDF y devuelve sus bytes.
func (g *KardexPDFGenerator) GenerateKardexPDF(_ context.Context, data *dto.KardexResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Kardex de producto", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(productCardRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableMovementRows(data.Movements) {
		m.AddRows(r)
	}
	if len(data.Movements) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin movimientos en el período consultado.", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRows(data)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: producto (izq) y rango consultado (der).
func headerRow(data *dto.KardexResponse) core.Row {
	rango := "Histórico completo"
	if data.From != nil && data.To != nil {
		rango = data.From.Format("02/01/2006") + " — " + data.To.Format("02/01/2006")
	} else if data.From != nil {
		rango = "Desde " + data.From.Format("02/01/2006")
	} else if data.To != nil {
		rango = "Hasta " + data.To.Format("02/01/2006")
	}

	return row.New(16).Add(
		col.New(7).Add(
			text.New("KARDEX DE PRODUCTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1,
			}),
			text.New(data.Product.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 6,
			}),
		),
		col.New(5).Add(
			text.New("PERÍODO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorGray, Top: 1,
			}),
			text.New(rango, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
		),
	)
}

// productCardRow: ficha con categoría, unidad y stock.
func productCardRow(data *dto.KardexResponse) core.Row {
	stockColor := colorPrimary
	stockLabel := "Stock actual: " + data.CurrentStk.StringFixed(2)
	if data.LowStock {
		stockColor = colorAlert
		stockLabel += "  (BAJO MÍNIMO)"
	}

	return row.New(12).Add(
		col.New(8).Add(
			text.New(fmt.Sprintf("Categoría: %s   |   Unidad: %s   |   Stock mínimo: %s",
				nonEmpty(data.Product.Category, "—"),
				nonEmpty(data.Product.Unit, "—"),
				data.Product.MinimumStock.StringFixed(2),
			), props.Text{Size: 8, Top: 3, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(stockLabel, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: stockColor, Top: 3,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Tipo", 2, align.Center),
		h("Cantidad", 2, align.Right),
		h("P. Unit.", 2, align.Right),
		h("Motivo", 2, align.Left),
		h("Saldo", 2, align.Right),
	)
}

// tableMovementRows: una fila por movimiento, con el saldo corrido.
func tableMovementRows(movements []dto.MovementResponse) []core.Row {
	result := make([]core.Row, 0, len(movements))
	for _, m := range movements {
		unitPrice := "—"
		if m.UnitPrice != nil {
			unitPrice = "$" + m.UnitPrice.StringFixed(2)
		}
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(
				m.Date.Format("02/01/2006 15:04"),
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				m.Kind,
				props.Text{Size: 7.5, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				m.Quantity.StringFixed(2),
				props.Text{Size: 7.5, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				unitPrice,
				props.Text{Size: 7.5, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(m.Reason, "—"),
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				m.RunningBalance.StringFixed(2),
				props.Text{Style: fontstyle.Bold, Size: 7.5, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// summaryRows: agregados del período en dos filas.
func summaryRows(data *dto.KardexResponse) []core.Row {
	s := data.Stats
	label := func(txt string) core.Component {
		return text.New(txt, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		})
	}
	value := func(txt string) core.Component {
		return text.New(txt, props.Text{Size: 8, Top: 6, Color: colorGray})
	}

	return []core.Row{
		row.New(12).Add(
			col.New(3).Add(
				label("Movimientos"),
				value(fmt.Sprintf("%d", s.MovimientosPeriodo)),
			),
			col.New(3).Add(
				label("Entradas"),
				value(fmt.Sprintf("%d (%s)", s.NumEntradas, s.CantidadEntradas.StringFixed(2))),
			),
			col.New(3).Add(
				label("Salidas"),
				value(fmt.Sprintf("%d (%s)", s.NumSalidas, s.CantidadSalidas.StringFixed(2))),
			),
			col.New(3).Add(
				label("Ajustes"),
				value(fmt.Sprintf("%d (%s)", s.NumAjustes, s.CantidadAjustes.StringFixed(2))),
			),
		),
		row.New(12).Add(
			col.New(6).Add(
				label("Valor total entradas"),
				value("$"+s.ValorTotalEntradas.StringFixed(2)),
			),
			col.New(6).Add(
				label("Valor total salidas"),
				value("$"+s.ValorTotalSalidas.StringFixed(2)),
			),
		),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
