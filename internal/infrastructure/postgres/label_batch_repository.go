package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

var _ repository.LabelBatchRepository = (*LabelBatchRepo)(nil)

// LabelBatchRepo implementación sobre PostgreSQL (usable con pool o tx).
// La membresía lote-unidad es many-to-many (label_batch_units) con posición
// para preservar el orden de impresión.
type LabelBatchRepo struct {
	q Querier
}

// NewLabelBatchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLabelBatchRepository(q Querier) *LabelBatchRepo {
	return &LabelBatchRepo{q: q}
}

// Create persiste el lote y su membresía ordenada.
func (r *LabelBatchRepo) Create(batch *entity.LabelBatch) error {
	query := `
		INSERT INTO label_batches (id, company_id, warehouse_id, name, template_fields, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	createdBy := (*string)(nil)
	if batch.CreatedBy != "" {
		createdBy = &batch.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.CompanyID, batch.WarehouseID, batch.Name,
		batch.TemplateFields, batch.CreatedAt, createdBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create label batch: %w", err)
	}
	memberQuery := `
		INSERT INTO label_batch_units (batch_id, stock_unit_id, position)
		VALUES ($1, $2, $3)`
	for i, unitID := range batch.StockUnitIDs {
		if _, err := r.q.Exec(context.Background(), memberQuery, batch.ID, unitID, i); err != nil {
			return fmt.Errorf("create label batch unit: %w", err)
		}
	}
	return nil
}

// GetByID obtiene el lote con sus IDs de unidad en orden; nil si no existe.
func (r *LabelBatchRepo) GetByID(id string) (*entity.LabelBatch, error) {
	query := `
		SELECT id, company_id, warehouse_id, name, template_fields, created_at, created_by
		FROM label_batches WHERE id = $1`
	b, err := r.scanBatch(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get label batch: %w", err)
	}
	ids, err := r.listUnitIDs(id)
	if err != nil {
		return nil, err
	}
	b.StockUnitIDs = ids
	return b, nil
}

// ListByWarehouse lista lotes de una bodega; productID opcional filtra los
// lotes que contienen al menos una unidad de ese producto.
func (r *LabelBatchRepo) ListByWarehouse(warehouseID, productID string, limit, offset int) ([]*entity.LabelBatch, error) {
	query := `
		SELECT b.id, b.company_id, b.warehouse_id, b.name, b.template_fields, b.created_at, b.created_by
		FROM label_batches b WHERE b.warehouse_id = $1`
	args := []any{warehouseID}
	pos := 2
	if productID != "" {
		query += fmt.Sprintf(` AND EXISTS (
			SELECT 1 FROM label_batch_units lbu
			JOIN stock_units su ON su.id = lbu.stock_unit_id
			WHERE lbu.batch_id = b.id AND su.product_id = $%d)`, pos)
		args = append(args, productID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY b.created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list label batches: %w", err)
	}
	defer rows.Close()
	var list []*entity.LabelBatch
	for rows.Next() {
		b, err := r.scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan label batch: %w", err)
		}
		list = append(list, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, b := range list {
		ids, err := r.listUnitIDs(b.ID)
		if err != nil {
			return nil, err
		}
		b.StockUnitIDs = ids
	}
	return list, nil
}

func (r *LabelBatchRepo) listUnitIDs(batchID string) ([]string, error) {
	query := `
		SELECT stock_unit_id FROM label_batch_units
		WHERE batch_id = $1 ORDER BY position ASC`
	rows, err := r.q.Query(context.Background(), query, batchID)
	if err != nil {
		return nil, fmt.Errorf("list batch units: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan batch unit: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *LabelBatchRepo) scanBatch(row pgx.Row) (*entity.LabelBatch, error) {
	var b entity.LabelBatch
	var createdBy *string
	err := row.Scan(
		&b.ID, &b.CompanyID, &b.WarehouseID, &b.Name,
		&b.TemplateFields, &b.CreatedAt, &createdBy,
	)
	if err != nil {
		return nil, err
	}
	if createdBy != nil {
		b.CreatedBy = *createdBy
	}
	return &b, nil
}
