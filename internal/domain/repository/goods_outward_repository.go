package repository

import (
	"time"

	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

// GoodsOutwardRepository define el puerto de persistencia de despachos.
// Create persiste el evento y todas sus líneas; se usa dentro de la misma
// transacción que los Decrement correspondientes.
type GoodsOutwardRepository interface {
	Create(outward *entity.GoodsOutward) error
	// GetByID devuelve el despacho con sus líneas; nil si no existe.
	GetByID(id string) (*entity.GoodsOutward, error)
	ListByWarehouse(warehouseID string, from, to *time.Time, limit, offset int) ([]*entity.GoodsOutward, error)
}
