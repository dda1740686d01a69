package repository

import "github.com/tu-usuario/stock-ledger/internal/domain/entity"

// LabelBatchRepository define el puerto de persistencia de lotes de etiquetas.
// La membresía es de solo lectura una vez creado el lote.
type LabelBatchRepository interface {
	Create(batch *entity.LabelBatch) error
	// GetByID devuelve el lote con sus IDs de unidad en orden; nil si no existe.
	GetByID(id string) (*entity.LabelBatch, error)
	// ListByWarehouse lista lotes de una bodega; productID opcional filtra los
	// lotes que contienen al menos una unidad de ese producto.
	ListByWarehouse(warehouseID, productID string, limit, offset int) ([]*entity.LabelBatch, error)
}
