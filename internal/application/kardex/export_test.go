package kardex_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	appkardex "github.com/jcastror/resto-inventario/internal/application/kardex"
)

func TestFilename_SaneaTildesYEspacios(t *testing.T) {
	ts := time.Date(2026, 3, 10, 14, 30, 45, 0, time.UTC)

	got := appkardex.Filename("Azúcar morena (1 kg)", ts, "xlsx")

	assert.Equal(t, "Kardex_Azucar-morena-1-kg_20260310-143045.xlsx", got)
}

func TestFilename_NombreSimple(t *testing.T) {
	ts := time.Date(2026, 3, 10, 14, 30, 45, 0, time.UTC)

	got := appkardex.Filename("Arroz", ts, "pdf")

	assert.Equal(t, "Kardex_Arroz_20260310-143045.pdf", got)
}

func TestFilename_NombreVacioUsaFallback(t *testing.T) {
	ts := time.Date(2026, 3, 10, 14, 30, 45, 0, time.UTC)

	got := appkardex.Filename("¡¡¡", ts, "pdf")

	assert.Equal(t, "Kardex_producto_20260310-143045.pdf", got)
}

func TestFilename_EnieYDiacriticos(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	got := appkardex.Filename("Ñame añejo", ts, "xlsx")

	assert.Equal(t, "Kardex_Name-anejo_20260102-030405.xlsx", got)
}
