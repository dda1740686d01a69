package repository

import "github.com/tu-usuario/stock-ledger/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para bodegas.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	List(companyID string, limit, offset int) ([]*entity.Warehouse, error)
}
