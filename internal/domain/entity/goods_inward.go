package entity

import "time"

// GoodsInward representa un evento de recepción de mercancía: crea 1..N
// unidades de stock para un producto en una bodega. Inmutable después de
// creado, salvo la marca de cancelación (soft-cancel) que no toca cantidades.
type GoodsInward struct {
	ID          string
	CompanyID   string
	WarehouseID string
	ProductID   string
	SourceRef   string // partner/orden de compra; solo para auditoría
	Date        time.Time
	CreatedAt   time.Time
	CreatedBy   string
	CancelledAt *time.Time

	// Unidades producidas por esta recepción (cargadas en lecturas de detalle).
	Units []*StockUnit
}

// Cancelled indica si la recepción fue marcada como cancelada.
func (g *GoodsInward) Cancelled() bool { return g.CancelledAt != nil }
