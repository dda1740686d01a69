package repository

import (
	"time"

	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

// GoodsInwardRepository define el puerto de persistencia de recepciones.
type GoodsInwardRepository interface {
	Create(inward *entity.GoodsInward) error
	// GetByID devuelve la recepción con sus unidades producidas; nil si no existe.
	GetByID(id string) (*entity.GoodsInward, error)
	ListByWarehouse(warehouseID string, from, to *time.Time, limit, offset int) ([]*entity.GoodsInward, error)
	// Cancel marca la recepción como cancelada (soft-cancel); no toca unidades.
	Cancel(id string, at time.Time) error
}
