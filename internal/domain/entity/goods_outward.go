package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoodsOutward representa un evento de despacho: consume cantidad de una o
// más unidades de stock de la misma bodega, posiblemente de varios productos.
type GoodsOutward struct {
	ID          string
	CompanyID   string
	WarehouseID string
	SourceRef   string // orden de venta / traslado; solo para auditoría
	Date        time.Time
	CreatedAt   time.Time
	CreatedBy   string

	Items []*GoodsOutwardItem
}

// GoodsOutwardItem es una línea del despacho: referencia exactamente una
// unidad de stock y la cantidad despachada de ella (> 0).
type GoodsOutwardItem struct {
	ID                 string
	OutwardID          string
	StockUnitID        string
	QuantityDispatched decimal.Decimal
	ProductID          string // denormalizado para vistas de flujo de stock
}
