package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// TestStockUnit_Status valida la derivación de estado a partir de las
// cantidades: el estado nunca se almacena, siempre se calcula.
//
//	remaining <= 0         → DEPLETED
//	remaining >= initial   → FULL
//	en el medio            → PARTIAL
// ──────────────────────────────────────────────────────────────────────────────

func unitWith(initial, remaining string) *entity.StockUnit {
	return &entity.StockUnit{
		ID:                "su-1",
		InitialQuantity:   decimal.RequireFromString(initial),
		RemainingQuantity: decimal.RequireFromString(remaining),
	}
}

func TestStockUnit_Status(t *testing.T) {
	cases := []struct {
		name      string
		initial   string
		remaining string
		want      string
	}{
		{"sin consumo", "100", "100", entity.StatusFull},
		{"consumo parcial", "100", "60", entity.StatusPartial},
		{"casi agotada", "100", "0.001", entity.StatusPartial},
		{"agotada exacta", "100", "0", entity.StatusDepleted},
		{"decimal completo", "45.5", "45.5", entity.StatusFull},
		{"decimal parcial", "45.5", "20.25", entity.StatusPartial},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, unitWith(tc.initial, tc.remaining).Status())
		})
	}
}

// TestStockUnit_StatusDerivado verifica que el estado cambia al mutar las
// cantidades sin ningún campo adicional que sincronizar.
func TestStockUnit_StatusDerivado(t *testing.T) {
	u := unitWith("100", "100")
	assert.Equal(t, entity.StatusFull, u.Status())

	u.RemainingQuantity = decimal.RequireFromString("40")
	assert.Equal(t, entity.StatusPartial, u.Status())

	u.RemainingQuantity = decimal.Zero
	assert.Equal(t, entity.StatusDepleted, u.Status())
	assert.True(t, u.Depleted())
}
