package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/stock-ledger/internal/application/inventory"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Los decrementos y el evento de despacho comparten tx:
// si una línea falla, todas se revierten.
func (r *TxRunner) Run(ctx context.Context, fn func(
	unitRepo repository.StockUnitRepository,
	inwardRepo repository.GoodsInwardRepository,
	outwardRepo repository.GoodsOutwardRepository,
	batchRepo repository.LabelBatchRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	unitRepo := NewStockUnitRepository(tx)
	inwardRepo := NewGoodsInwardRepository(tx)
	outwardRepo := NewGoodsOutwardRepository(tx)
	batchRepo := NewLabelBatchRepository(tx)

	if err := fn(unitRepo, inwardRepo, outwardRepo, batchRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
