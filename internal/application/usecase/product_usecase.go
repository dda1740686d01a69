package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

// ProductUseCase casos de uso para el catálogo de productos. Para el ledger
// el producto es inmutable: define unidad de medida y tipo de stock.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

func validMeasuringUnit(s string) bool {
	return s == entity.MeasureCount || s == entity.MeasureLength || s == entity.MeasureWeight
}

func validStockType(s string) bool {
	return s == entity.StockTypePIECE || s == entity.StockTypeROLL || s == entity.StockTypeBULK
}

// Create crea un producto del catálogo.
func (uc *ProductUseCase) Create(companyID string, in dto.CreateProductRequest) (*entity.Product, error) {
	if in.SKU == "" || in.Name == "" || !validMeasuringUnit(in.MeasuringUnit) || !validStockType(in.StockType) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		SKU:           in.SKU,
		Name:          in.Name,
		Description:   in.Description,
		MeasuringUnit: in.MeasuringUnit,
		StockType:     in.StockType,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID obtiene un producto por ID validando el alcance de empresa.
func (uc *ProductUseCase) GetByID(companyID, id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// List lista los productos de la empresa.
func (uc *ProductUseCase) List(companyID string, page dto.PageRequest) ([]*entity.Product, error) {
	page.DefaultPage()
	return uc.repo.List(companyID, page.Limit, page.Offset)
}
