package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

// AllocateOutwardUseCase aplica un evento de despacho (goods outward) contra
// una o más unidades de stock sin sobre-asignar jamás.
//
// No hay reservas: la elegibilidad se verifica en el commit, no antes. La
// cantidad "disponible" que vio el usuario puede haber cambiado entre la vista
// y el submit; en ese caso la operación falla con la cantidad restante real y
// la UI re-solicita.
type AllocateOutwardUseCase struct {
	txRunner      TxRunner
	warehouseRepo repository.WarehouseRepository
	unitRepo      repository.StockUnitRepository // lecturas de pre-validación fuera de tx
}

// NewAllocateOutwardUseCase construye el caso de uso.
func NewAllocateOutwardUseCase(
	txRunner TxRunner,
	warehouseRepo repository.WarehouseRepository,
	unitRepo repository.StockUnitRepository,
) *AllocateOutwardUseCase {
	return &AllocateOutwardUseCase{
		txRunner:      txRunner,
		warehouseRepo: warehouseRepo,
		unitRepo:      unitRepo,
	}
}

// Allocate valida cada línea, y dentro de una transacción decrementa cada
// unidad con un update condicional y persiste el evento con sus líneas.
// All-or-nothing: si la línea 3 de 5 falla por cantidad insuficiente, las
// líneas 1-2 se revierten con el rollback de la tx.
//
// La pre-validación (existencia, bodega, cantidad > 0) junta todos los fallos
// en un BatchValidationError para mostrarlos de una sola vez. El chequeo de
// cantidad definitivo ocurre recién en el Decrement condicional dentro de la
// tx, contra el remaining del momento del commit.
func (uc *AllocateOutwardUseCase) Allocate(ctx context.Context, companyID, userID string, in dto.AllocateOutwardRequest) (*entity.GoodsOutward, error) {
	if in.WarehouseID == "" || len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}

	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if warehouse.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	failures, err := uc.validateLines(companyID, in.WarehouseID, in.Lines)
	if err != nil {
		return nil, err
	}
	if len(failures) > 0 {
		return nil, &domain.BatchValidationError{Failures: failures}
	}

	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	outward := &entity.GoodsOutward{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		WarehouseID: in.WarehouseID,
		SourceRef:   in.SourceRef,
		Date:        date,
		CreatedAt:   now,
		CreatedBy:   userID,
	}

	err = uc.txRunner.Run(ctx, func(
		unitRepo repository.StockUnitRepository,
		_ repository.GoodsInwardRepository,
		outwardRepo repository.GoodsOutwardRepository,
		_ repository.LabelBatchRepository,
	) error {
		for i, line := range in.Lines {
			// Única primitiva de mutación: update condicional contra el
			// remaining actual. Dos despachos concurrentes sobre la misma
			// unidad se serializan aquí; el que no alcanza falla y la tx
			// completa se revierte.
			updated, err := unitRepo.Decrement(line.StockUnitID, line.Quantity)
			if err != nil {
				var insuf *domain.InsufficientQuantityError
				if errors.As(err, &insuf) {
					return &domain.BatchValidationError{Failures: []domain.LineFailure{
						{Index: i, StockUnitID: line.StockUnitID, Err: err},
					}}
				}
				return err
			}
			outward.Items = append(outward.Items, &entity.GoodsOutwardItem{
				ID:                 uuid.New().String(),
				OutwardID:          outward.ID,
				StockUnitID:        line.StockUnitID,
				ProductID:          updated.ProductID,
				QuantityDispatched: line.Quantity,
			})
		}
		return outwardRepo.Create(outward)
	})
	if err != nil {
		return nil, err
	}
	return outward, nil
}

// validateLines junta todos los fallos de pre-validación: cantidad > 0, unidad
// existente, misma empresa y misma bodega que el despacho. La unidad agotada
// se reporta como cantidad insuficiente (restante 0) igual que en el commit.
func (uc *AllocateOutwardUseCase) validateLines(companyID, warehouseID string, lines []dto.AllocateLineRequest) ([]domain.LineFailure, error) {
	var failures []domain.LineFailure

	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.StockUnitID)
	}
	units, err := uc.unitRepo.GetByIDs(ids)
	if err != nil {
		// Fallo de lectura del store: no es un fallo de línea, se propaga.
		return nil, err
	}
	byID := make(map[string]*entity.StockUnit, len(units))
	for _, u := range units {
		byID[u.ID] = u
	}

	// Cantidad combinada por unidad: varias líneas pueden apuntar a la misma
	// unidad dentro del mismo despacho.
	requested := make(map[string]decimal.Decimal)

	for i, line := range lines {
		if !line.Quantity.GreaterThan(decimal.Zero) {
			failures = append(failures, domain.LineFailure{
				Index: i, StockUnitID: line.StockUnitID, Err: domain.ErrInvalidQuantity,
			})
			continue
		}
		unit, ok := byID[line.StockUnitID]
		if !ok || unit.CompanyID != companyID {
			failures = append(failures, domain.LineFailure{
				Index: i, StockUnitID: line.StockUnitID, Err: domain.ErrNotFound,
			})
			continue
		}
		if unit.WarehouseID != warehouseID {
			// Fuera del alcance de bodega del despacho: para el caller no existe.
			failures = append(failures, domain.LineFailure{
				Index: i, StockUnitID: line.StockUnitID, Err: domain.ErrNotFound,
			})
			continue
		}
		total := requested[line.StockUnitID].Add(line.Quantity)
		requested[line.StockUnitID] = total
		if total.GreaterThan(unit.RemainingQuantity) {
			failures = append(failures, domain.LineFailure{
				Index: i, StockUnitID: line.StockUnitID,
				Err: &domain.InsufficientQuantityError{
					StockUnitID: line.StockUnitID,
					Requested:   line.Quantity,
					Remaining:   unit.RemainingQuantity,
				},
			})
		}
	}
	return failures, nil
}
