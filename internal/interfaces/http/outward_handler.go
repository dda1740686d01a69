package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/application/inventory"
)

// OutwardHandler maneja las peticiones HTTP de despachos (goods outward).
type OutwardHandler struct {
	allocate *inventory.AllocateOutwardUseCase
	query    *inventory.StockQueryUseCase
}

// NewOutwardHandler construye el handler.
func NewOutwardHandler(allocate *inventory.AllocateOutwardUseCase, query *inventory.StockQueryUseCase) *OutwardHandler {
	return &OutwardHandler{allocate: allocate, query: query}
}

// Allocate godoc
// @Summary      Registrar despacho (goods outward)
// @Description  Decrementa una o más unidades de stock de la bodega en una sola
//
//	transacción. Si alguna línea excede el restante al momento del
//	commit, ninguna línea se aplica y se devuelve el detalle completo.
//
// @Tags         outward
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AllocateOutwardRequest  true  "warehouse_id, source_ref, lines"
// @Success      201   {object}  dto.GoodsOutwardDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/outward [post]
func (h *OutwardHandler) Allocate(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.AllocateOutwardRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	outward, err := h.allocate.Allocate(c.Context(), companyID, userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromGoodsOutward(outward))
}

// List lista despachos de una bodega en un rango de fechas.
func (h *OutwardHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ListOutwardRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválida"})
	}
	list, err := h.query.ListOutward(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.GoodsOutwardDTO, 0, len(list))
	for _, g := range list {
		out = append(out, dto.FromGoodsOutward(g))
	}
	return c.JSON(fiber.Map{"total": len(out), "outward": out})
}

// GetByID devuelve un despacho con sus líneas.
func (h *OutwardHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	outward, err := h.query.GetOutward(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromGoodsOutward(outward))
}
