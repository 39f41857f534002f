// Package folio genera los números de documento secuenciales por día:
// V-YYYYMMDD-NNNN para ventas y DEV-YYYYMMDD-NNNN para devoluciones.
package folio

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Prefijos por tipo de documento.
const (
	SalePrefix   = "V"
	ReturnPrefix = "DEV"
)

// DayKey devuelve la clave de día YYYYMMDD usada en los folios.
// Dos peticiones en el mismo día calendario obtienen la misma clave.
func DayKey(t time.Time) string {
	return t.Format("20060102")
}

// Build arma el folio <PREFIX>-<YYYYMMDD>-<NNNN>. El sufijo se rellena con
// ceros a 4 dígitos y continúa como literal de 5+ dígitos pasado 9999.
func Build(prefix, dayKey string, suffix int) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, dayKey, suffix)
}

// ScanPattern devuelve el patrón LIKE para buscar los folios de un día:
// "<PREFIX>-<YYYYMMDD>-%".
func ScanPattern(prefix, dayKey string) string {
	return prefix + "-" + dayKey + "-%"
}

// Suffix extrae el sufijo numérico final de un folio. Retorna 0 si el folio
// no tiene la forma esperada.
func Suffix(f string) int {
	idx := strings.LastIndex(f, "-")
	if idx < 0 || idx == len(f)-1 {
		return 0
	}
	n, err := strconv.Atoi(f[idx+1:])
	if err != nil {
		return 0
	}
	return n
}
