package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

var _ repository.GoodsInwardRepository = (*GoodsInwardRepo)(nil)

// GoodsInwardRepo implementación sobre PostgreSQL (usable con pool o tx).
type GoodsInwardRepo struct {
	q Querier
}

// NewGoodsInwardRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGoodsInwardRepository(q Querier) *GoodsInwardRepo {
	return &GoodsInwardRepo{q: q}
}

// Create persiste la cabecera de la recepción (las unidades las crea el
// StockUnitRepo dentro de la misma tx).
func (r *GoodsInwardRepo) Create(inward *entity.GoodsInward) error {
	query := `
		INSERT INTO goods_inward (id, company_id, warehouse_id, product_id, source_ref, date, created_at, created_by, cancelled_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	createdBy := (*string)(nil)
	if inward.CreatedBy != "" {
		createdBy = &inward.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		inward.ID, inward.CompanyID, inward.WarehouseID, inward.ProductID,
		inward.SourceRef, inward.Date, inward.CreatedAt, createdBy, inward.CancelledAt,
	)
	if err != nil {
		return fmt.Errorf("create goods inward: %w", err)
	}
	return nil
}

// GetByID obtiene una recepción con sus unidades; nil si no existe.
func (r *GoodsInwardRepo) GetByID(id string) (*entity.GoodsInward, error) {
	query := `
		SELECT id, company_id, warehouse_id, product_id, source_ref, date, created_at, created_by, cancelled_at
		FROM goods_inward WHERE id = $1`
	g, err := r.scanInward(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get goods inward: %w", err)
	}

	unitRepo := NewStockUnitRepository(r.q)
	unitsQuery := `SELECT id FROM stock_units WHERE created_from_inward_id = $1 ORDER BY sequence_number ASC`
	rows, err := r.q.Query(context.Background(), unitsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("list inward units: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var uid string
		if err := rows.Scan(&uid); err != nil {
			return nil, fmt.Errorf("scan inward unit id: %w", err)
		}
		ids = append(ids, uid)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	units, err := unitRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	// GetByIDs no garantiza orden; reordenar por sequence_number.
	byID := make(map[string]*entity.StockUnit, len(units))
	for _, u := range units {
		byID[u.ID] = u
	}
	for _, uid := range ids {
		if u, ok := byID[uid]; ok {
			g.Units = append(g.Units, u)
		}
	}
	return g, nil
}

// ListByWarehouse lista recepciones de una bodega en un rango de fechas
// (cabeceras solamente; el detalle carga las unidades).
func (r *GoodsInwardRepo) ListByWarehouse(warehouseID string, from, to *time.Time, limit, offset int) ([]*entity.GoodsInward, error) {
	query := `
		SELECT id, company_id, warehouse_id, product_id, source_ref, date, created_at, created_by, cancelled_at
		FROM goods_inward WHERE warehouse_id = $1`
	args := []any{warehouseID}
	pos := 2
	if from != nil {
		query += fmt.Sprintf(" AND date >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND date <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY date DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list goods inward: %w", err)
	}
	defer rows.Close()
	var list []*entity.GoodsInward
	for rows.Next() {
		g, err := r.scanInward(rows)
		if err != nil {
			return nil, fmt.Errorf("scan goods inward: %w", err)
		}
		list = append(list, g)
	}
	return list, rows.Err()
}

// Cancel marca la recepción como cancelada; no toca las unidades.
func (r *GoodsInwardRepo) Cancel(id string, at time.Time) error {
	query := `UPDATE goods_inward SET cancelled_at = $2 WHERE id = $1 AND cancelled_at IS NULL`
	tag, err := r.q.Exec(context.Background(), query, id, at)
	if err != nil {
		return fmt.Errorf("cancel goods inward: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Ya cancelada o inexistente; el caso de uso ya validó existencia.
		return nil
	}
	return nil
}

func (r *GoodsInwardRepo) scanInward(row pgx.Row) (*entity.GoodsInward, error) {
	var g entity.GoodsInward
	var createdBy *string
	err := row.Scan(
		&g.ID, &g.CompanyID, &g.WarehouseID, &g.ProductID,
		&g.SourceRef, &g.Date, &g.CreatedAt, &createdBy, &g.CancelledAt,
	)
	if err != nil {
		return nil, err
	}
	if createdBy != nil {
		g.CreatedBy = *createdBy
	}
	return &g, nil
}
