package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

// LabelBatchUseCase agrupa unidades de stock en lotes nombrados para marcado
// físico. Puramente aditivo: no toca cantidades ni estados; las unidades
// agotadas o parciales también pueden re-etiquetarse.
type LabelBatchUseCase struct {
	txRunner      TxRunner
	warehouseRepo repository.WarehouseRepository
	unitRepo      repository.StockUnitRepository
	batchRepo     repository.LabelBatchRepository
}

// NewLabelBatchUseCase construye el caso de uso.
func NewLabelBatchUseCase(
	txRunner TxRunner,
	warehouseRepo repository.WarehouseRepository,
	unitRepo repository.StockUnitRepository,
	batchRepo repository.LabelBatchRepository,
) *LabelBatchUseCase {
	return &LabelBatchUseCase{
		txRunner:      txRunner,
		warehouseRepo: warehouseRepo,
		unitRepo:      unitRepo,
		batchRepo:     batchRepo,
	}
}

// CreateBatch valida que cada unidad exista y pertenezca a la bodega, crea el
// lote y fija qr_generated_at en las unidades que aún no lo tienen (la primera
// inclusión gana; re-incluir una unidad ya marcada no cambia nada).
func (uc *LabelBatchUseCase) CreateBatch(ctx context.Context, companyID, userID string, in dto.CreateLabelBatchRequest) (*entity.LabelBatch, error) {
	if in.WarehouseID == "" || in.Name == "" || len(in.StockUnitIDs) == 0 {
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

	units, err := uc.unitRepo.GetByIDs(in.StockUnitIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.StockUnit, len(units))
	for _, u := range units {
		byID[u.ID] = u
	}
	var failures []domain.LineFailure
	seen := make(map[string]bool, len(in.StockUnitIDs))
	for i, id := range in.StockUnitIDs {
		// La membresía es por identidad: una unidad no puede aparecer dos
		// veces en el mismo lote (PK batch_id + stock_unit_id).
		if seen[id] {
			failures = append(failures, domain.LineFailure{Index: i, StockUnitID: id, Err: domain.ErrDuplicate})
			continue
		}
		seen[id] = true
		u, ok := byID[id]
		if !ok || u.CompanyID != companyID || u.WarehouseID != in.WarehouseID {
			failures = append(failures, domain.LineFailure{Index: i, StockUnitID: id, Err: domain.ErrNotFound})
		}
	}
	if len(failures) > 0 {
		return nil, &domain.BatchValidationError{Failures: failures}
	}

	batch := &entity.LabelBatch{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		WarehouseID:    in.WarehouseID,
		Name:           in.Name,
		TemplateFields: in.TemplateFields,
		StockUnitIDs:   in.StockUnitIDs,
		CreatedAt:      time.Now(),
		CreatedBy:      userID,
	}

	err = uc.txRunner.Run(ctx, func(
		unitRepo repository.StockUnitRepository,
		_ repository.GoodsInwardRepository,
		_ repository.GoodsOutwardRepository,
		batchRepo repository.LabelBatchRepository,
	) error {
		if err := batchRepo.Create(batch); err != nil {
			return err
		}
		return unitRepo.MarkQRGenerated(in.StockUnitIDs)
	})
	if err != nil {
		return nil, err
	}
	return batch, nil
}

// GetBatch devuelve un lote por ID validando el alcance de empresa.
func (uc *LabelBatchUseCase) GetBatch(ctx context.Context, companyID, batchID string) (*entity.LabelBatch, error) {
	batch, err := uc.batchRepo.GetByID(batchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, domain.ErrNotFound
	}
	if batch.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return batch, nil
}

// ListBatches lista los lotes de una bodega, con filtro opcional por producto.
func (uc *LabelBatchUseCase) ListBatches(ctx context.Context, companyID string, in dto.ListLabelBatchesRequest) ([]*entity.LabelBatch, error) {
	if in.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil || warehouse.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	in.DefaultPage()
	return uc.batchRepo.ListByWarehouse(in.WarehouseID, in.ProductID, in.Limit, in.Offset)
}
