package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain"
)

// respondError mapea errores de dominio a códigos HTTP y cuerpos uniformes.
// INSUFFICIENT_QUANTITY y PARTIAL_BATCH llevan el detalle completo (unidad,
// restante, fallos por línea) para que la UI re-solicite con datos frescos.
func respondError(c *fiber.Ctx, err error) error {
	var batchErr *domain.BatchValidationError
	if errors.As(err, &batchErr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code:    "PARTIAL_BATCH",
			Message: "una o más líneas fallaron; ninguna fue aplicada",
			Details: lineFailures(batchErr),
		})
	}
	var insufErr *domain.InsufficientQuantityError
	if errors.As(err, &insufErr) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "INSUFFICIENT_QUANTITY",
			Message: insufErr.Error(),
			Details: []dto.LineFailureDTO{{
				StockUnitID: insufErr.StockUnitID,
				Code:        "INSUFFICIENT_QUANTITY",
				Message:     insufErr.Error(),
				Remaining:   insufErr.Remaining.String(),
			}},
		})
	}
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity), errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// lineFailures convierte los fallos por línea a DTO, clasificando cada uno.
func lineFailures(batchErr *domain.BatchValidationError) []dto.LineFailureDTO {
	out := make([]dto.LineFailureDTO, 0, len(batchErr.Failures))
	for _, f := range batchErr.Failures {
		d := dto.LineFailureDTO{
			Index:       f.Index,
			StockUnitID: f.StockUnitID,
			Message:     f.Err.Error(),
		}
		var insuf *domain.InsufficientQuantityError
		switch {
		case errors.As(f.Err, &insuf):
			d.Code = "INSUFFICIENT_QUANTITY"
			d.Remaining = insuf.Remaining.String()
		case errors.Is(f.Err, domain.ErrInvalidQuantity):
			d.Code = "INVALID_QUANTITY"
		case errors.Is(f.Err, domain.ErrNotFound):
			d.Code = "NOT_FOUND"
		case errors.Is(f.Err, domain.ErrDuplicate):
			d.Code = "DUPLICATE"
		default:
			d.Code = "VALIDATION"
		}
		out = append(out, d)
	}
	return out
}
