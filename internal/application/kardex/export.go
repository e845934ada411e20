package kardex

import (
	"context"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jcastror/resto-inventario/internal/application/dto"
)

// WorkbookGenerator genera el libro XLSX del kardex (hoja de información,
// hoja de movimientos, hoja de estadísticas).
type WorkbookGenerator interface {
	GenerateKardexWorkbook(ctx context.Context, data *dto.KardexResponse) ([]byte, error)
}

// PDFGenerator genera la representación imprimible del kardex.
type PDFGenerator interface {
	GenerateKardexPDF(ctx context.Context, data *dto.KardexResponse) ([]byte, error)
}

// ExportResult bytes del documento más el nombre de archivo sugerido.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportUseCase calcula el kardex y lo serializa vía el generador inyectado.
type ExportUseCase struct {
	kardexUC *UseCase
	workbook WorkbookGenerator
	pdf      PDFGenerator
	now      func() time.Time
}

// NewExportUseCase construye el caso de uso de exportación.
func NewExportUseCase(kardexUC *UseCase, workbook WorkbookGenerator, pdf PDFGenerator) *ExportUseCase {
	return &ExportUseCase{kardexUC: kardexUC, workbook: workbook, pdf: pdf, now: time.Now}
}

// ExportWorkbook genera el XLSX multi-hoja del kardex.
func (uc *ExportUseCase) ExportWorkbook(ctx context.Context, productID string, from, to *time.Time) (*ExportResult, error) {
	data, err := uc.kardexUC.Compute(ctx, productID, from, to)
	if err != nil {
		return nil, err
	}
	raw, err := uc.workbook.GenerateKardexWorkbook(ctx, data)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		Filename:    Filename(data.Product.Name, uc.now(), "xlsx"),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        raw,
	}, nil
}

// ExportPDF genera la versión imprimible del kardex.
func (uc *ExportUseCase) ExportPDF(ctx context.Context, productID string, from, to *time.Time) (*ExportResult, error) {
	data, err := uc.kardexUC.Compute(ctx, productID, from, to)
	if err != nil {
		return nil, err
	}
	raw, err := uc.pdf.GenerateKardexPDF(ctx, data)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		Filename:    Filename(data.Product.Name, uc.now(), "pdf"),
		ContentType: "application/pdf",
		Data:        raw,
	}, nil
}

// Filename arma Kardex_<producto>_<timestamp>.<ext> con el nombre del
// producto saneado: sin tildes ni caracteres fuera de [A-Za-z0-9-].
func Filename(productName string, ts time.Time, ext string) string {
	return "Kardex_" + sanitize(productName) + "_" + ts.Format("20060102-150405") + "." + ext
}

// sanitize quita diacríticos (NFD + borrar marcas + NFC) y reemplaza todo lo
// que no sea alfanumérico por guiones.
func sanitize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	clean, _, err := transform.String(t, s)
	if err != nil {
		clean = s
	}
	var b strings.Builder
	lastDash := false
	for _, r := range clean {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "producto"
	}
	return out
}
