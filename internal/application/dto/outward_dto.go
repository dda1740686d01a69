package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

// AllocateLineRequest una línea del despacho: unidad + cantidad a despachar.
type AllocateLineRequest struct {
	StockUnitID string          `json:"stock_unit_id"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// AllocateOutwardRequest body para POST /api/outward. Las líneas pueden
// abarcar varias unidades y varios productos de la misma bodega.
type AllocateOutwardRequest struct {
	WarehouseID string                `json:"warehouse_id"`
	SourceRef   string                `json:"source_ref,omitempty"`
	Date        *time.Time            `json:"date,omitempty"`
	Lines       []AllocateLineRequest `json:"lines"`
}

// GoodsOutwardItemDTO línea de despacho persistida.
type GoodsOutwardItemDTO struct {
	ID                 string          `json:"id"`
	StockUnitID        string          `json:"stock_unit_id"`
	ProductID          string          `json:"product_id"`
	QuantityDispatched decimal.Decimal `json:"quantity_dispatched"`
}

// GoodsOutwardDTO respuesta de despacho con sus líneas.
type GoodsOutwardDTO struct {
	ID          string                `json:"id"`
	WarehouseID string                `json:"warehouse_id"`
	SourceRef   string                `json:"source_ref,omitempty"`
	Date        time.Time             `json:"date"`
	Items       []GoodsOutwardItemDTO `json:"items"`
}

// FromGoodsOutward convierte la entidad a DTO.
func FromGoodsOutward(g *entity.GoodsOutward) GoodsOutwardDTO {
	out := GoodsOutwardDTO{
		ID:          g.ID,
		WarehouseID: g.WarehouseID,
		SourceRef:   g.SourceRef,
		Date:        g.Date,
	}
	for _, it := range g.Items {
		out.Items = append(out.Items, GoodsOutwardItemDTO{
			ID:                 it.ID,
			StockUnitID:        it.StockUnitID,
			ProductID:          it.ProductID,
			QuantityDispatched: it.QuantityDispatched,
		})
	}
	return out
}

// ListOutwardRequest filtros del listado de despachos.
type ListOutwardRequest struct {
	WarehouseID string     `query:"warehouse_id"`
	From        *time.Time `query:"from"`
	To          *time.Time `query:"to"`
	PageRequest
}
