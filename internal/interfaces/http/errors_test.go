package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain"
)

// respondWith monta una ruta que siempre responde el error dado y devuelve la
// respuesta HTTP decodificada.
func respondWith(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error { return respondError(c, err) })

	resp, reqErr := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil), -1)
	require.NoError(t, reqErr)
	defer resp.Body.Close()

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestRespondError_MapeoDeSentinelas(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"entrada inválida", domain.ErrInvalidInput, http.StatusBadRequest, "VALIDATION"},
		{"cantidad inválida", domain.ErrInvalidQuantity, http.StatusBadRequest, "VALIDATION"},
		{"duplicado", domain.ErrDuplicate, http.StatusConflict, "DUPLICATE"},
		{"desconocido", errors.New("se cayó la base"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := respondWith(t, tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantCode, body.Code)
		})
	}
}

// Cantidad insuficiente → 409 con la cantidad restante real en el detalle,
// para que la UI re-solicite con datos frescos.
func TestRespondError_CantidadInsuficiente(t *testing.T) {
	status, body := respondWith(t, &domain.InsufficientQuantityError{
		StockUnitID: "su-1",
		Requested:   decimal.RequireFromString("70"),
		Remaining:   decimal.RequireFromString("30"),
	})

	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "INSUFFICIENT_QUANTITY", body.Code)
	require.Len(t, body.Details, 1)
	assert.Equal(t, "su-1", body.Details[0].StockUnitID)
	assert.Equal(t, "30", body.Details[0].Remaining)
}

// Lote rechazado → 422 con TODOS los fallos por línea, cada uno clasificado.
func TestRespondError_LoteRechazado(t *testing.T) {
	status, body := respondWith(t, &domain.BatchValidationError{Failures: []domain.LineFailure{
		{Index: 0, Err: domain.ErrInvalidQuantity},
		{Index: 2, StockUnitID: "su-9", Err: domain.ErrNotFound},
		{Index: 3, StockUnitID: "su-1", Err: &domain.InsufficientQuantityError{
			StockUnitID: "su-1",
			Requested:   decimal.RequireFromString("50"),
			Remaining:   decimal.RequireFromString("10"),
		}},
	}})

	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "PARTIAL_BATCH", body.Code)
	require.Len(t, body.Details, 3)
	assert.Equal(t, 0, body.Details[0].Index)
	assert.Equal(t, 2, body.Details[1].Index)
	assert.Equal(t, "su-9", body.Details[1].StockUnitID)
	assert.Equal(t, "10", body.Details[2].Remaining, "la línea insuficiente lleva su restante real")
}
