package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

// EligibleFilter restringe el listado de unidades de stock. Statuses acepta
// FULL/PARTIAL/DEPLETED; vacío significa FULL+PARTIAL (elegibles para despacho).
// DEPLETED solo aparece si se pide explícitamente (vistas de auditoría).
type EligibleFilter struct {
	CompanyID   string
	WarehouseID string
	ProductID   string // opcional
	Statuses    []string
	Limit       int
	Offset      int
}

// StockUnitRepository define el puerto de persistencia de unidades de stock.
// Decrement es la única primitiva de mutación de RemainingQuantity: ningún
// otro camino puede cambiarla.
type StockUnitRepository interface {
	Create(unit *entity.StockUnit) error
	GetByID(id string) (*entity.StockUnit, error)
	GetByIDs(ids []string) ([]*entity.StockUnit, error)
	ListEligible(filter EligibleFilter) ([]*entity.StockUnit, error)

	// NextSequence incrementa y devuelve el contador por (producto, bodega).
	// Debe ser atómico: números únicos y crecientes aun con recepciones
	// concurrentes del mismo producto.
	NextSequence(productID, warehouseID string) (int64, error)

	// Decrement aplica remaining -= amount solo si amount <= remaining, en una
	// sola operación condicional contra el store (nunca read-then-write).
	// Devuelve la unidad actualizada; *domain.InsufficientQuantityError si no
	// alcanza; domain.ErrNotFound si la unidad no existe.
	Decrement(id string, amount decimal.Decimal) (*entity.StockUnit, error)

	// MarkQRGenerated fija qr_generated_at en las unidades que aún lo tienen
	// nulo. Idempotente: re-incluir una unidad ya marcada no cambia nada.
	MarkQRGenerated(ids []string) error
}
