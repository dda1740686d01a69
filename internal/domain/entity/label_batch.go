package entity

import "time"

// LabelBatch agrupa unidades de stock para marcado físico (impresión de QR).
// No tiene semántica de cantidad: referencia unidades solo por identidad y su
// membresía es de solo lectura una vez creado (regenerar = crear otro lote).
// Una unidad puede aparecer en varios lotes a lo largo de su vida (reimpresión).
type LabelBatch struct {
	ID             string
	CompanyID      string
	WarehouseID    string
	Name           string
	TemplateFields []string // campos a renderizar en la etiqueta, en orden
	CreatedAt      time.Time
	CreatedBy      string

	// IDs de unidades en el orden seleccionado por el usuario.
	StockUnitIDs []string
}
