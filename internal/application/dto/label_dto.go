package dto

import (
	"time"

	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

// CreateLabelBatchRequest body para POST /api/label-batches.
type CreateLabelBatchRequest struct {
	WarehouseID    string   `json:"warehouse_id"`
	Name           string   `json:"name"`
	StockUnitIDs   []string `json:"stock_unit_ids"`
	TemplateFields []string `json:"template_fields"`
}

// LabelBatchDTO lote de etiquetas para renderizado externo: lista ordenada de
// IDs (payload QR) más la plantilla de campos.
type LabelBatchDTO struct {
	ID             string    `json:"id"`
	WarehouseID    string    `json:"warehouse_id"`
	Name           string    `json:"name"`
	TemplateFields []string  `json:"template_fields"`
	StockUnitIDs   []string  `json:"stock_unit_ids"`
	CreatedAt      time.Time `json:"created_at"`
}

// FromLabelBatch convierte la entidad a DTO.
func FromLabelBatch(b *entity.LabelBatch) LabelBatchDTO {
	return LabelBatchDTO{
		ID:             b.ID,
		WarehouseID:    b.WarehouseID,
		Name:           b.Name,
		TemplateFields: b.TemplateFields,
		StockUnitIDs:   b.StockUnitIDs,
		CreatedAt:      b.CreatedAt,
	}
}

// ListLabelBatchesRequest filtros del listado de lotes.
type ListLabelBatchesRequest struct {
	WarehouseID string `query:"warehouse_id"`
	ProductID   string `query:"product_id"`
	PageRequest
}
