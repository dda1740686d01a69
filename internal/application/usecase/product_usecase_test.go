package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/application/usecase"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

// productRepoStub repositorio mínimo en memoria para los tests de catálogo.
type productRepoStub struct {
	byID map[string]*entity.Product
}

func newProductRepoStub() *productRepoStub {
	return &productRepoStub{byID: map[string]*entity.Product{}}
}

func (s *productRepoStub) Create(p *entity.Product) error {
	s.byID[p.ID] = p
	return nil
}

func (s *productRepoStub) GetByID(id string) (*entity.Product, error) {
	return s.byID[id], nil
}

func (s *productRepoStub) List(companyID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range s.byID {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func TestProductCreate_Valido(t *testing.T) {
	uc := usecase.NewProductUseCase(newProductRepoStub())

	p, err := uc.Create("co-1", dto.CreateProductRequest{
		SKU:           "TELA-001",
		Name:          "Tela cruda",
		MeasuringUnit: entity.MeasureLength,
		StockType:     entity.StockTypeROLL,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "co-1", p.CompanyID)
}

func TestProductCreate_UnidadDeMedidaInvalida(t *testing.T) {
	uc := usecase.NewProductUseCase(newProductRepoStub())

	_, err := uc.Create("co-1", dto.CreateProductRequest{
		SKU:           "X-1",
		Name:          "X",
		MeasuringUnit: "GALONES",
		StockType:     entity.StockTypePIECE,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_TipoDeStockInvalido(t *testing.T) {
	uc := usecase.NewProductUseCase(newProductRepoStub())

	_, err := uc.Create("co-1", dto.CreateProductRequest{
		SKU:           "X-1",
		Name:          "X",
		MeasuringUnit: entity.MeasureCount,
		StockType:     "CAJA",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un producto de otra empresa no se distingue de uno inexistente.
func TestProductGetByID_AlcanceDeEmpresa(t *testing.T) {
	repo := newProductRepoStub()
	uc := usecase.NewProductUseCase(repo)

	p, err := uc.Create("co-1", dto.CreateProductRequest{
		SKU:           "TELA-002",
		Name:          "Tela estampada",
		MeasuringUnit: entity.MeasureLength,
		StockType:     entity.StockTypeROLL,
	})
	require.NoError(t, err)

	_, err = uc.GetByID("co-2", p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := uc.GetByID("co-1", p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}
