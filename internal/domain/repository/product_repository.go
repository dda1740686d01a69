package repository

import "github.com/tu-usuario/stock-ledger/internal/domain/entity"

// ProductRepository define el puerto de persistencia para productos del catálogo.
// El ledger solo lo consulta (lookup de colaborador); Create existe para la API
// de catálogo que consumen las pantallas.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(companyID string, limit, offset int) ([]*entity.Product, error)
}
