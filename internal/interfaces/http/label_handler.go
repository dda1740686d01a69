package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/application/inventory"
)

// LabelHandler maneja los lotes de etiquetas QR.
type LabelHandler struct {
	uc *inventory.LabelBatchUseCase
}

// NewLabelHandler construye el handler.
func NewLabelHandler(uc *inventory.LabelBatchUseCase) *LabelHandler {
	return &LabelHandler{uc: uc}
}

// Create godoc
// @Summary      Crear lote de etiquetas
// @Description  Agrupa unidades existentes para marcado físico. No toca
//
//	cantidades; unidades parciales o agotadas también se pueden
//	re-etiquetar. La primera inclusión fija qr_generated_at.
//
// @Tags         label-batches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLabelBatchRequest  true  "warehouse_id, name, stock_unit_ids, template_fields"
// @Success      201   {object}  dto.LabelBatchDTO
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/label-batches [post]
func (h *LabelHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateLabelBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	batch, err := h.uc.CreateBatch(c.Context(), companyID, userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromLabelBatch(batch))
}

// List lista lotes de una bodega, con filtro opcional por producto.
func (h *LabelHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ListLabelBatchesRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválida"})
	}
	list, err := h.uc.ListBatches(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.LabelBatchDTO, 0, len(list))
	for _, b := range list {
		out = append(out, dto.FromLabelBatch(b))
	}
	return c.JSON(fiber.Map{"total": len(out), "batches": out})
}

// GetByID devuelve un lote con sus IDs de unidad en orden de impresión.
func (h *LabelHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	batch, err := h.uc.GetBatch(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromLabelBatch(batch))
}
