package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados derivados de una unidad de stock. Nunca se persisten: se calculan
// siempre desde (RemainingQuantity, InitialQuantity) para evitar que estado y
// cantidad se desincronicen.
const (
	StatusFull     = "FULL"     // remaining == initial
	StatusPartial  = "PARTIAL"  // 0 < remaining < initial
	StatusDepleted = "DEPLETED" // remaining == 0
)

// StockUnit representa un lote/rollo/pieza física de un producto con su propia
// cantidad. El ID (UUID) es también el payload del código QR impreso.
//
// Ciclo de vida: la crea goods inward con remaining == initial; solo el
// allocator de salidas la muta (remaining decrece monótonamente); nunca se
// borra — las unidades agotadas quedan como registro histórico.
type StockUnit struct {
	ID                string
	CompanyID         string
	ProductID         string
	WarehouseID       string
	SequenceNumber    int64 // numeración legible, única por (producto, bodega)
	InitialQuantity   decimal.Decimal
	RemainingQuantity decimal.Decimal
	CreatedFromInwardID *string

	// Atributos descriptivos: solo para visualización, fuera de los invariantes.
	Grade           string
	SupplierRef     string
	Location        string
	ManufactureDate *time.Time

	QRGeneratedAt *time.Time // primera inclusión en un lote de etiquetas
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Status deriva el estado desde las cantidades. Función pura; ver constantes.
func (u *StockUnit) Status() string {
	switch {
	case u.RemainingQuantity.LessThanOrEqual(decimal.Zero):
		return StatusDepleted
	case u.RemainingQuantity.GreaterThanOrEqual(u.InitialQuantity):
		return StatusFull
	default:
		return StatusPartial
	}
}

// Depleted indica si la unidad no tiene cantidad restante.
func (u *StockUnit) Depleted() bool {
	return u.RemainingQuantity.LessThanOrEqual(decimal.Zero)
}
