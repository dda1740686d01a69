package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

// ReceiveGoodsUseCase traduce un evento de recepción (goods inward) en 1..N
// unidades de stock nuevas, de forma transaccional: si alguna spec es inválida
// no se crea ninguna unidad.
type ReceiveGoodsUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	inwardRepo    repository.GoodsInwardRepository // lecturas y cancel fuera de tx
}

// NewReceiveGoodsUseCase construye el caso de uso.
func NewReceiveGoodsUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	inwardRepo repository.GoodsInwardRepository,
) *ReceiveGoodsUseCase {
	return &ReceiveGoodsUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		inwardRepo:    inwardRepo,
	}
}

// Receive valida las specs, verifica producto y bodega de la empresa, y dentro
// de una transacción asigna el siguiente sequence_number por (producto, bodega)
// y crea la recepción con sus unidades (remaining = initial, estado FULL).
//
// All-or-nothing: toda spec con cantidad <= 0 se reporta; si hay al menos un
// fallo, la operación completa se rechaza con la lista de todos los fallos.
func (uc *ReceiveGoodsUseCase) Receive(ctx context.Context, companyID, userID string, in dto.ReceiveGoodsRequest) (*entity.GoodsInward, error) {
	if in.ProductID == "" || in.WarehouseID == "" || len(in.UnitSpecs) == 0 {
		return nil, domain.ErrInvalidInput
	}

	var failures []domain.LineFailure
	for i, spec := range in.UnitSpecs {
		if !spec.Quantity.GreaterThan(decimal.Zero) {
			failures = append(failures, domain.LineFailure{Index: i, Err: domain.ErrInvalidQuantity})
		}
	}
	if len(failures) > 0 {
		return nil, &domain.BatchValidationError{Failures: failures}
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
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

	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	inward := &entity.GoodsInward{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		WarehouseID: in.WarehouseID,
		ProductID:   in.ProductID,
		SourceRef:   in.SourceRef,
		Date:        date,
		CreatedAt:   now,
		CreatedBy:   userID,
	}

	err = uc.txRunner.Run(ctx, func(
		unitRepo repository.StockUnitRepository,
		inwardRepo repository.GoodsInwardRepository,
		_ repository.GoodsOutwardRepository,
		_ repository.LabelBatchRepository,
	) error {
		if err := inwardRepo.Create(inward); err != nil {
			return err
		}
		for _, spec := range in.UnitSpecs {
			// El contador se incrementa dentro de la tx: números únicos y
			// crecientes aun con recepciones concurrentes del mismo producto.
			seq, err := unitRepo.NextSequence(in.ProductID, in.WarehouseID)
			if err != nil {
				return err
			}
			inwardID := inward.ID
			unit := &entity.StockUnit{
				ID:                  uuid.New().String(),
				CompanyID:           companyID,
				ProductID:           in.ProductID,
				WarehouseID:         in.WarehouseID,
				SequenceNumber:      seq,
				InitialQuantity:     spec.Quantity,
				RemainingQuantity:   spec.Quantity,
				CreatedFromInwardID: &inwardID,
				Grade:               spec.Grade,
				SupplierRef:         spec.SupplierRef,
				Location:            spec.Location,
				ManufactureDate:     spec.ManufactureDate,
				CreatedAt:           now,
				UpdatedAt:           now,
			}
			if err := unitRepo.Create(unit); err != nil {
				return err
			}
			inward.Units = append(inward.Units, unit)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inward, nil
}

// Cancel marca una recepción como cancelada (soft-cancel). No borra ni toca
// las unidades que produjo: el historial del ledger se conserva.
func (uc *ReceiveGoodsUseCase) Cancel(ctx context.Context, companyID, inwardID string) error {
	inward, err := uc.inwardRepo.GetByID(inwardID)
	if err != nil {
		return err
	}
	if inward == nil {
		return domain.ErrNotFound
	}
	if inward.CompanyID != companyID {
		return domain.ErrForbidden
	}
	if inward.Cancelled() {
		return nil // idempotente
	}
	return uc.inwardRepo.Cancel(inwardID, time.Now())
}
