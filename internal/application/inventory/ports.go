package inventory

import (
	"context"

	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el ledger: o todas
// las líneas de una operación se aplican, o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		unitRepo repository.StockUnitRepository,
		inwardRepo repository.GoodsInwardRepository,
		outwardRepo repository.GoodsOutwardRepository,
		batchRepo repository.LabelBatchRepository,
	) error) error
}
