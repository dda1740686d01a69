package dto

import (
	"time"

	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	SKU           string `json:"sku"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	MeasuringUnit string `json:"measuring_unit"` // COUNT, LENGTH, WEIGHT
	StockType     string `json:"stock_type"`     // PIECE, ROLL, BULK
}

// ProductDTO producto del catálogo.
type ProductDTO struct {
	ID            string    `json:"id"`
	SKU           string    `json:"sku"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	MeasuringUnit string    `json:"measuring_unit"`
	StockType     string    `json:"stock_type"`
	CreatedAt     time.Time `json:"created_at"`
}

// FromProduct convierte la entidad a DTO.
func FromProduct(p *entity.Product) ProductDTO {
	return ProductDTO{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		MeasuringUnit: p.MeasuringUnit,
		StockType:     p.StockType,
		CreatedAt:     p.CreatedAt,
	}
}

// CreateWarehouseRequest body para POST /api/warehouses.
type CreateWarehouseRequest struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// WarehouseDTO bodega.
type WarehouseDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// FromWarehouse convierte la entidad a DTO.
func FromWarehouse(w *entity.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		ID:        w.ID,
		Name:      w.Name,
		Address:   w.Address,
		CreatedAt: w.CreatedAt,
	}
}
