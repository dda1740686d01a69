package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrInvalidQuantity      = errors.New("cantidad inválida")
	ErrInsufficientQuantity = errors.New("cantidad insuficiente en la unidad de stock")
	ErrForbidden            = errors.New("acceso denegado")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrPartialBatch         = errors.New("una o más líneas del lote fallaron")
)

// InsufficientQuantityError indica que un despacho excede la cantidad restante
// de la unidad al momento del commit. Lleva la cantidad real restante para que
// la UI pueda re-solicitar al usuario con datos frescos.
type InsufficientQuantityError struct {
	StockUnitID string
	Requested   decimal.Decimal
	Remaining   decimal.Decimal
}

func (e *InsufficientQuantityError) Error() string {
	return fmt.Sprintf("cantidad insuficiente en unidad %s: solicitado %s, restante %s",
		e.StockUnitID, e.Requested, e.Remaining)
}

// Unwrap permite errors.Is(err, ErrInsufficientQuantity).
func (e *InsufficientQuantityError) Unwrap() error { return ErrInsufficientQuantity }

// LineFailure describe el fallo de una línea dentro de una operación por lotes
// (receive o allocate). Index es la posición de la línea en el request.
type LineFailure struct {
	Index       int
	StockUnitID string // vacío en receive (la unidad aún no existe)
	Err         error
}

// BatchValidationError agrupa todos los fallos por línea de una operación
// all-or-nothing. La operación completa se rechaza; el caller recibe la lista
// completa para mostrarla de una sola vez.
type BatchValidationError struct {
	Failures []LineFailure
}

func (e *BatchValidationError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, fmt.Sprintf("línea %d: %v", f.Index, f.Err))
	}
	return "lote rechazado: " + strings.Join(parts, "; ")
}

// Unwrap permite errors.Is(err, ErrPartialBatch).
func (e *BatchValidationError) Unwrap() error { return ErrPartialBatch }
