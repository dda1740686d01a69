package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

// StockUnitDTO representación de una unidad de stock para la UI.
// Status siempre se deriva de las cantidades al serializar.
type StockUnitDTO struct {
	ID                  string          `json:"id"`
	ProductID           string          `json:"product_id"`
	WarehouseID         string          `json:"warehouse_id"`
	SequenceNumber      int64           `json:"sequence_number"`
	InitialQuantity     decimal.Decimal `json:"initial_quantity"`
	RemainingQuantity   decimal.Decimal `json:"remaining_quantity"`
	Status              string          `json:"status"`
	CreatedFromInwardID *string         `json:"created_from_inward_id,omitempty"`
	Grade               string          `json:"grade,omitempty"`
	SupplierRef         string          `json:"supplier_ref,omitempty"`
	Location            string          `json:"location,omitempty"`
	ManufactureDate     *time.Time      `json:"manufacture_date,omitempty"`
	QRGeneratedAt       *time.Time      `json:"qr_generated_at,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
}

// FromStockUnit convierte la entidad a DTO derivando el estado.
func FromStockUnit(u *entity.StockUnit) StockUnitDTO {
	return StockUnitDTO{
		ID:                  u.ID,
		ProductID:           u.ProductID,
		WarehouseID:         u.WarehouseID,
		SequenceNumber:      u.SequenceNumber,
		InitialQuantity:     u.InitialQuantity,
		RemainingQuantity:   u.RemainingQuantity,
		Status:              u.Status(),
		CreatedFromInwardID: u.CreatedFromInwardID,
		Grade:               u.Grade,
		SupplierRef:         u.SupplierRef,
		Location:            u.Location,
		ManufactureDate:     u.ManufactureDate,
		QRGeneratedAt:       u.QRGeneratedAt,
		CreatedAt:           u.CreatedAt,
	}
}

// ListStockUnitsRequest filtros del listado de unidades.
// statuses vacío = FULL+PARTIAL (elegibles); DEPLETED solo si se pide.
type ListStockUnitsRequest struct {
	WarehouseID string `query:"warehouse_id"`
	ProductID   string `query:"product_id"`
	Statuses    string `query:"statuses"` // CSV: FULL,PARTIAL,DEPLETED
	PageRequest
}
