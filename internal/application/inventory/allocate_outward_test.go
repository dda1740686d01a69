package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/application/inventory"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

func (e *testEnv) allocateUC() *inventory.AllocateOutwardUseCase {
	return inventory.NewAllocateOutwardUseCase(e.tx, warehouseRepoFake{e.store}, unitRepoFake{e.store})
}

func line(unitID, quantity string) dto.AllocateLineRequest {
	return dto.AllocateLineRequest{StockUnitID: unitID, Quantity: qty(quantity)}
}

func (e *testEnv) allocate(lines ...dto.AllocateLineRequest) (*entity.GoodsOutward, error) {
	return e.allocateUC().Allocate(context.Background(), testCompanyID, testUserID, dto.AllocateOutwardRequest{
		WarehouseID: testWarehouseID,
		Lines:       lines,
	})
}

func (e *testEnv) remaining(t *testing.T, unitID string) string {
	t.Helper()
	u, err := unitRepoFake{e.store}.GetByID(unitID)
	require.NoError(t, err)
	require.NotNil(t, u)
	return u.RemainingQuantity.String()
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de despacho (goods outward)
// ──────────────────────────────────────────────────────────────────────────────

// El ciclo de vida completo de una unidad: FULL → PARTIAL → DEPLETED, y un
// intento más sobre la unidad agotada que debe fallar con restante 0.
func TestAllocate_CicloDeVidaDeUnidad(t *testing.T) {
	env := newTestEnv()
	unit := env.receiveUnits(t, "100")[0]

	out, err := env.allocate(line(unit.ID, "40"))
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "60", env.remaining(t, unit.ID))

	_, err = env.allocate(line(unit.ID, "60"))
	require.NoError(t, err)
	assert.Equal(t, "0", env.remaining(t, unit.ID))

	_, err = env.allocate(line(unit.ID, "1"))
	var batchErr *domain.BatchValidationError
	require.ErrorAs(t, err, &batchErr, "despachar de una unidad agotada debe fallar")
	require.Len(t, batchErr.Failures, 1)
	var insuf *domain.InsufficientQuantityError
	require.ErrorAs(t, batchErr.Failures[0].Err, &insuf)
	assert.Equal(t, unit.ID, insuf.StockUnitID)
	assert.True(t, insuf.Remaining.IsZero(), "el error lleva el restante real (0)")
}

func TestAllocate_CantidadExcedeRestante(t *testing.T) {
	env := newTestEnv()
	unit := env.receiveUnits(t, "50")[0]

	_, err := env.allocate(line(unit.ID, "50.01"))

	var batchErr *domain.BatchValidationError
	require.ErrorAs(t, err, &batchErr)
	require.Len(t, batchErr.Failures, 1)
	var insuf *domain.InsufficientQuantityError
	require.ErrorAs(t, batchErr.Failures[0].Err, &insuf)
	assert.Equal(t, "50", insuf.Remaining.String())
	assert.Equal(t, "50", env.remaining(t, unit.ID), "el fallo no debe consumir nada")
}

// Varias líneas, varias unidades, varios productos: todas se aplican en la
// misma operación y cada línea queda registrada con su unidad y cantidad.
func TestAllocate_MultiLinea(t *testing.T) {
	env := newTestEnv()
	units := env.receiveUnits(t, "100", "80")

	out, err := env.allocate(line(units[0].ID, "30"), line(units[1].ID, "80"))
	require.NoError(t, err)
	require.Len(t, out.Items, 2)

	assert.Equal(t, "70", env.remaining(t, units[0].ID))
	assert.Equal(t, "0", env.remaining(t, units[1].ID))
	assert.Equal(t, testProductID, out.Items[0].ProductID)
	assert.True(t, out.Items[1].QuantityDispatched.Equal(qty("80")))
}

// Todo-o-nada: si la tercera línea no alcanza, las dos primeras se revierten.
func TestAllocate_RollbackSiUnaLineaFalla(t *testing.T) {
	env := newTestEnv()
	units := env.receiveUnits(t, "100", "100", "10")

	_, err := env.allocate(
		line(units[0].ID, "50"),
		line(units[1].ID, "50"),
		line(units[2].ID, "50"), // insuficiente
	)

	var batchErr *domain.BatchValidationError
	require.ErrorAs(t, err, &batchErr)
	require.Len(t, batchErr.Failures, 1)
	assert.Equal(t, 2, batchErr.Failures[0].Index)

	assert.Equal(t, "100", env.remaining(t, units[0].ID), "línea 1 revertida")
	assert.Equal(t, "100", env.remaining(t, units[1].ID), "línea 2 revertida")
	assert.Equal(t, "10", env.remaining(t, units[2].ID))
	assert.Empty(t, env.store.outwards, "el despacho no debe persistirse")
}

// La pre-validación junta todos los fallos para mostrarlos de una sola vez.
func TestAllocate_ReportaTodosLosFallos(t *testing.T) {
	env := newTestEnv()
	unit := env.receiveUnits(t, "10")[0]

	_, err := env.allocate(
		line(unit.ID, "0"),         // cantidad inválida
		line("su-fantasma", "5"),   // no existe
		line(unit.ID, "99"),        // insuficiente
	)

	var batchErr *domain.BatchValidationError
	require.ErrorAs(t, err, &batchErr)
	require.Len(t, batchErr.Failures, 3)
	assert.ErrorIs(t, batchErr.Failures[0].Err, domain.ErrInvalidQuantity)
	assert.ErrorIs(t, batchErr.Failures[1].Err, domain.ErrNotFound)
	assert.ErrorIs(t, batchErr.Failures[2].Err, domain.ErrInsufficientQuantity)
}

// Dos líneas del mismo despacho sobre la misma unidad: la validación usa la
// cantidad combinada, no cada línea por separado.
func TestAllocate_CantidadCombinadaPorUnidad(t *testing.T) {
	env := newTestEnv()
	unit := env.receiveUnits(t, "100")[0]

	_, err := env.allocate(line(unit.ID, "60"), line(unit.ID, "60"))

	var batchErr *domain.BatchValidationError
	require.ErrorAs(t, err, &batchErr)
	require.Len(t, batchErr.Failures, 1)
	assert.Equal(t, 1, batchErr.Failures[0].Index, "la segunda línea es la que excede el total")
	assert.Equal(t, "100", env.remaining(t, unit.ID))

	// Combinadas dentro del límite sí pasan.
	_, err = env.allocate(line(unit.ID, "60"), line(unit.ID, "40"))
	require.NoError(t, err)
	assert.Equal(t, "0", env.remaining(t, unit.ID))
}

// Una unidad de otra bodega no es visible para el despacho: se reporta como
// inexistente, no como prohibida.
func TestAllocate_UnidadDeOtraBodega(t *testing.T) {
	env := newTestEnv()
	env.store.warehouses["wh-2"] = &entity.Warehouse{ID: "wh-2", CompanyID: testCompanyID}
	unit := env.receiveUnits(t, "100")[0]

	_, err := env.allocateUC().Allocate(context.Background(), testCompanyID, testUserID, dto.AllocateOutwardRequest{
		WarehouseID: "wh-2",
		Lines:       []dto.AllocateLineRequest{line(unit.ID, "10")},
	})

	var batchErr *domain.BatchValidationError
	require.ErrorAs(t, err, &batchErr)
	require.Len(t, batchErr.Failures, 1)
	assert.ErrorIs(t, batchErr.Failures[0].Err, domain.ErrNotFound)
}

// Carrera entre dos despachos: 70 y 50 contra una unidad con 100 restantes.
// Exactamente uno debe ganar; jamás queda remaining negativo.
func TestAllocate_ConcurrenciaSinSobreAsignacion(t *testing.T) {
	env := newTestEnv()
	unit := env.receiveUnits(t, "100")[0]

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, q := range []string{"70", "50"} {
		wg.Add(1)
		go func(i int, q string) {
			defer wg.Done()
			_, errs[i] = env.allocate(line(unit.ID, q))
		}(i, q)
	}
	wg.Wait()

	okCount := 0
	for _, err := range errs {
		if err == nil {
			okCount++
			continue
		}
		// El perdedor falla por cantidad insuficiente, detectada en la
		// pre-validación o recién en el decremento condicional.
		var batchErr *domain.BatchValidationError
		require.ErrorAs(t, err, &batchErr)
		require.Len(t, batchErr.Failures, 1)
		assert.ErrorIs(t, batchErr.Failures[0].Err, domain.ErrInsufficientQuantity)
	}
	assert.Equal(t, 1, okCount, "exactamente un despacho debe aplicarse")

	u, err := unitRepoFake{env.store}.GetByID(unit.ID)
	require.NoError(t, err)
	assert.False(t, u.RemainingQuantity.IsNegative(), "remaining nunca puede ser negativo")
}

// failingUnitReads simula un store caído en las lecturas de pre-validación.
type failingUnitReads struct {
	unitRepoFake
	err error
}

func (f failingUnitReads) GetByIDs(ids []string) ([]*entity.StockUnit, error) {
	return nil, f.err
}

// Un fallo de infraestructura al leer las unidades se propaga tal cual: no
// debe disfrazarse de lote rechazado con líneas inexistentes.
func TestAllocate_FalloDeLecturaSePropaga(t *testing.T) {
	env := newTestEnv()
	unit := env.receiveUnits(t, "100")[0]

	readErr := errors.New("conexión perdida")
	uc := inventory.NewAllocateOutwardUseCase(
		env.tx,
		warehouseRepoFake{env.store},
		failingUnitReads{unitRepoFake{env.store}, readErr},
	)

	_, err := uc.Allocate(context.Background(), testCompanyID, testUserID, dto.AllocateOutwardRequest{
		WarehouseID: testWarehouseID,
		Lines:       []dto.AllocateLineRequest{line(unit.ID, "10")},
	})

	require.ErrorIs(t, err, readErr)
	var batchErr *domain.BatchValidationError
	assert.False(t, errors.As(err, &batchErr),
		"el error de store no debe reportarse como fallos por línea")
	assert.Equal(t, "100", env.remaining(t, unit.ID), "nada debe consumirse")
}

func TestAllocate_BodegaInexistente(t *testing.T) {
	env := newTestEnv()
	unit := env.receiveUnits(t, "10")[0]

	_, err := env.allocateUC().Allocate(context.Background(), testCompanyID, testUserID, dto.AllocateOutwardRequest{
		WarehouseID: "wh-fantasma",
		Lines:       []dto.AllocateLineRequest{line(unit.ID, "5")},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
