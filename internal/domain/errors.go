package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrProductNotInSale = errors.New("el producto no pertenece a la venta")
	ErrFolioConflict    = errors.New("folio duplicado")
	ErrUserNotFound     = errors.New("usuario no encontrado")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
)

// ReturnLimitError indica que la cantidad solicitada excede lo devolvible:
// comprado menos lo ya devuelto en devoluciones PROCESSED anteriores.
type ReturnLimitError struct {
	ProductID       int64
	Purchased       int
	AlreadyReturned int
	Requested       int
}

// Available devuelve las unidades que aún se pueden devolver.
func (e *ReturnLimitError) Available() int {
	return e.Purchased - e.AlreadyReturned
}

func (e *ReturnLimitError) Error() string {
	return fmt.Sprintf(
		"no puedes devolver %d unidades. Compradas: %d, Ya devueltas: %d, Disponibles: %d",
		e.Requested, e.Purchased, e.AlreadyReturned, e.Available(),
	)
}
