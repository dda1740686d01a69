package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string           `json:"code"`
	Message string           `json:"message"`
	Details []LineFailureDTO `json:"details,omitempty"` // fallos por línea (PARTIAL_BATCH)
}

// LineFailureDTO detalle de una línea rechazada en receive/allocate.
type LineFailureDTO struct {
	Index       int    `json:"index"`
	StockUnitID string `json:"stock_unit_id,omitempty"`
	Code        string `json:"code"`
	Message     string `json:"message"`
	Remaining   string `json:"remaining,omitempty"` // cantidad restante real (INSUFFICIENT_QUANTITY)
}
