package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/application/inventory"
)

// InwardHandler maneja las peticiones HTTP de recepciones (goods inward).
type InwardHandler struct {
	receive *inventory.ReceiveGoodsUseCase
	query   *inventory.StockQueryUseCase
}

// NewInwardHandler construye el handler.
func NewInwardHandler(receive *inventory.ReceiveGoodsUseCase, query *inventory.StockQueryUseCase) *InwardHandler {
	return &InwardHandler{receive: receive, query: query}
}

// Receive godoc
// @Summary      Registrar recepción de mercancía (goods inward)
// @Description  Crea 1..N unidades de stock con numeración por (producto, bodega).
//
//	All-or-nothing: si alguna spec es inválida no se crea ninguna unidad.
//
// @Tags         inward
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReceiveGoodsRequest  true  "product_id, warehouse_id, source_ref, unit_specs"
// @Success      201   {object}  dto.GoodsInwardDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/inward [post]
func (h *InwardHandler) Receive(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ReceiveGoodsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	inward, err := h.receive.Receive(c.Context(), companyID, userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromGoodsInward(inward))
}

// List godoc
// @Summary      Listar recepciones de una bodega
// @Tags         inward
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  true   "Bodega (UUID)"
// @Param        from          query  string  false  "Fecha desde (RFC3339)"
// @Param        to            query  string  false  "Fecha hasta (RFC3339)"
// @Success      200  {array}   dto.GoodsInwardDTO
// @Router       /api/inward [get]
func (h *InwardHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ListInwardRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválida"})
	}
	list, err := h.query.ListInward(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.GoodsInwardDTO, 0, len(list))
	for _, g := range list {
		out = append(out, dto.FromGoodsInward(g))
	}
	return c.JSON(fiber.Map{"total": len(out), "inward": out})
}

// GetByID devuelve una recepción con sus unidades.
func (h *InwardHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	inward, err := h.query.GetInward(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromGoodsInward(inward))
}

// Cancel marca una recepción como cancelada (soft-cancel); las unidades que
// produjo se conservan como historial.
func (h *InwardHandler) Cancel(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	if err := h.receive.Cancel(c.Context(), companyID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "recepción cancelada"})
}
