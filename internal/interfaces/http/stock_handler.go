package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/application/inventory"
)

// StockHandler maneja las lecturas de unidades de stock.
type StockHandler struct {
	query *inventory.StockQueryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(query *inventory.StockQueryUseCase) *StockHandler {
	return &StockHandler{query: query}
}

// List godoc
// @Summary      Listar unidades de stock de una bodega
// @Description  Sin statuses devuelve solo FULL+PARTIAL (elegibles para
//
//	despacho); las DEPLETED aparecen únicamente si se piden
//	explícitamente (vistas de auditoría).
//
// @Tags         stock-units
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  true   "Bodega (UUID)"
// @Param        product_id    query  string  false  "Filtrar por producto"
// @Param        statuses      query  string  false  "CSV: FULL,PARTIAL,DEPLETED"
// @Success      200  {array}   dto.StockUnitDTO
// @Router       /api/stock-units [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ListStockUnitsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválida"})
	}
	units, err := h.query.ListUnits(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.StockUnitDTO, 0, len(units))
	for _, u := range units {
		out = append(out, dto.FromStockUnit(u))
	}
	return c.JSON(fiber.Map{"total": len(out), "units": out})
}

// GetByID devuelve el detalle de una unidad (aterrizaje del escaneo QR: el ID
// de la unidad es el payload del código).
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	unit, err := h.query.GetUnit(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromStockUnit(unit))
}
