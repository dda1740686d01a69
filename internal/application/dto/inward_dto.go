package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

// UnitSpecRequest especifica una unidad a crear en la recepción.
type UnitSpecRequest struct {
	Quantity        decimal.Decimal `json:"quantity"`
	Grade           string          `json:"grade,omitempty"`
	SupplierRef     string          `json:"supplier_ref,omitempty"`
	Location        string          `json:"location,omitempty"`
	ManufactureDate *time.Time      `json:"manufacture_date,omitempty"`
}

// ReceiveGoodsRequest body para POST /api/inward.
type ReceiveGoodsRequest struct {
	ProductID   string            `json:"product_id"`
	WarehouseID string            `json:"warehouse_id"`
	SourceRef   string            `json:"source_ref,omitempty"`
	Date        *time.Time        `json:"date,omitempty"` // por defecto: ahora
	UnitSpecs   []UnitSpecRequest `json:"unit_specs"`
}

// GoodsInwardDTO respuesta de recepción con las unidades creadas.
type GoodsInwardDTO struct {
	ID          string         `json:"id"`
	ProductID   string         `json:"product_id"`
	WarehouseID string         `json:"warehouse_id"`
	SourceRef   string         `json:"source_ref,omitempty"`
	Date        time.Time      `json:"date"`
	CancelledAt *time.Time     `json:"cancelled_at,omitempty"`
	Units       []StockUnitDTO `json:"units,omitempty"`
}

// FromGoodsInward convierte la entidad a DTO.
func FromGoodsInward(g *entity.GoodsInward) GoodsInwardDTO {
	out := GoodsInwardDTO{
		ID:          g.ID,
		ProductID:   g.ProductID,
		WarehouseID: g.WarehouseID,
		SourceRef:   g.SourceRef,
		Date:        g.Date,
		CancelledAt: g.CancelledAt,
	}
	for _, u := range g.Units {
		out.Units = append(out.Units, FromStockUnit(u))
	}
	return out
}

// ListInwardRequest filtros del listado de recepciones.
type ListInwardRequest struct {
	WarehouseID string     `query:"warehouse_id"`
	From        *time.Time `query:"from"`
	To          *time.Time `query:"to"`
	PageRequest
}
