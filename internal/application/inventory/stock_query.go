package inventory

import (
	"context"
	"strings"

	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

// StockQueryUseCase expone las lecturas del ledger para las pantallas:
// unidades elegibles, detalle de unidad (aterrizaje del escaneo QR) y los
// eventos de entrada/salida para vistas de flujo de stock y auditoría.
type StockQueryUseCase struct {
	unitRepo      repository.StockUnitRepository
	inwardRepo    repository.GoodsInwardRepository
	outwardRepo   repository.GoodsOutwardRepository
	warehouseRepo repository.WarehouseRepository
}

// NewStockQueryUseCase construye el caso de uso.
func NewStockQueryUseCase(
	unitRepo repository.StockUnitRepository,
	inwardRepo repository.GoodsInwardRepository,
	outwardRepo repository.GoodsOutwardRepository,
	warehouseRepo repository.WarehouseRepository,
) *StockQueryUseCase {
	return &StockQueryUseCase{
		unitRepo:      unitRepo,
		inwardRepo:    inwardRepo,
		outwardRepo:   outwardRepo,
		warehouseRepo: warehouseRepo,
	}
}

// ListUnits lista unidades de la bodega. Sin statuses devuelve solo las
// elegibles para despacho (FULL+PARTIAL); DEPLETED solo si se pide explícito.
func (uc *StockQueryUseCase) ListUnits(ctx context.Context, companyID string, in dto.ListStockUnitsRequest) ([]*entity.StockUnit, error) {
	if in.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkWarehouse(companyID, in.WarehouseID); err != nil {
		return nil, err
	}
	var statuses []string
	for _, s := range strings.Split(in.Statuses, ",") {
		s = strings.TrimSpace(strings.ToUpper(s))
		switch s {
		case entity.StatusFull, entity.StatusPartial, entity.StatusDepleted:
			statuses = append(statuses, s)
		case "":
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	in.DefaultPage()
	return uc.unitRepo.ListEligible(repository.EligibleFilter{
		CompanyID:   companyID,
		WarehouseID: in.WarehouseID,
		ProductID:   in.ProductID,
		Statuses:    statuses,
		Limit:       in.Limit,
		Offset:      in.Offset,
	})
}

// GetUnit devuelve el detalle de una unidad validando el alcance de empresa.
func (uc *StockQueryUseCase) GetUnit(ctx context.Context, companyID, unitID string) (*entity.StockUnit, error) {
	unit, err := uc.unitRepo.GetByID(unitID)
	if err != nil {
		return nil, err
	}
	if unit == nil || unit.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return unit, nil
}

// GetInward devuelve una recepción con sus unidades.
func (uc *StockQueryUseCase) GetInward(ctx context.Context, companyID, inwardID string) (*entity.GoodsInward, error) {
	inward, err := uc.inwardRepo.GetByID(inwardID)
	if err != nil {
		return nil, err
	}
	if inward == nil || inward.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return inward, nil
}

// ListInward lista recepciones de una bodega en un rango de fechas.
func (uc *StockQueryUseCase) ListInward(ctx context.Context, companyID string, in dto.ListInwardRequest) ([]*entity.GoodsInward, error) {
	if in.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkWarehouse(companyID, in.WarehouseID); err != nil {
		return nil, err
	}
	in.DefaultPage()
	return uc.inwardRepo.ListByWarehouse(in.WarehouseID, in.From, in.To, in.Limit, in.Offset)
}

// GetOutward devuelve un despacho con sus líneas.
func (uc *StockQueryUseCase) GetOutward(ctx context.Context, companyID, outwardID string) (*entity.GoodsOutward, error) {
	outward, err := uc.outwardRepo.GetByID(outwardID)
	if err != nil {
		return nil, err
	}
	if outward == nil || outward.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return outward, nil
}

// ListOutward lista despachos de una bodega en un rango de fechas.
func (uc *StockQueryUseCase) ListOutward(ctx context.Context, companyID string, in dto.ListOutwardRequest) ([]*entity.GoodsOutward, error) {
	if in.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkWarehouse(companyID, in.WarehouseID); err != nil {
		return nil, err
	}
	in.DefaultPage()
	return uc.outwardRepo.ListByWarehouse(in.WarehouseID, in.From, in.To, in.Limit, in.Offset)
}

func (uc *StockQueryUseCase) checkWarehouse(companyID, warehouseID string) error {
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return err
	}
	if warehouse == nil || warehouse.CompanyID != companyID {
		return domain.ErrNotFound
	}
	return nil
}
