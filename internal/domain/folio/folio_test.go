package folio_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/folio"
)

func TestDayKey(t *testing.T) {
	d := time.Date(2026, 8, 27, 15, 4, 5, 0, time.Local)
	assert.Equal(t, "20260827", folio.DayKey(d))

	// Dos horas distintas del mismo día producen la misma clave
	assert.Equal(t, folio.DayKey(d), folio.DayKey(d.Add(3*time.Hour)))
}

func TestBuild_RellenoCuatroDigitos(t *testing.T) {
	assert.Equal(t, "V-20260827-0001", folio.Build(folio.SalePrefix, "20260827", 1))
	assert.Equal(t, "DEV-20260827-0042", folio.Build(folio.ReturnPrefix, "20260827", 42))
	assert.Equal(t, "V-20260827-9999", folio.Build(folio.SalePrefix, "20260827", 9999))
}

func TestBuild_SinTopeArtificial(t *testing.T) {
	// Pasado 9999 el sufijo continúa como literal de 5+ dígitos
	assert.Equal(t, "V-20260827-10000", folio.Build(folio.SalePrefix, "20260827", 10000))
	assert.Equal(t, "DEV-20260827-123456", folio.Build(folio.ReturnPrefix, "20260827", 123456))
}

func TestScanPattern(t *testing.T) {
	assert.Equal(t, "V-20260827-%", folio.ScanPattern(folio.SalePrefix, "20260827"))
	assert.Equal(t, "DEV-20260827-%", folio.ScanPattern(folio.ReturnPrefix, "20260827"))
}

func TestSuffix(t *testing.T) {
	cases := []struct {
		folio string
		want  int
	}{
		{"V-20260827-0001", 1},
		{"DEV-20260827-0137", 137},
		{"V-20260827-10000", 10000},
		{"sin-sufijo-", 0},
		{"basura", 0},
		{"", 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, folio.Suffix(c.folio), "folio %q", c.folio)
	}
}

func TestBuildSuffix_Roundtrip(t *testing.T) {
	for _, n := range []int{1, 9, 999, 9999, 10000, 54321} {
		f := folio.Build(folio.SalePrefix, "20260827", n)
		assert.Equal(t, n, folio.Suffix(f))
	}
}
