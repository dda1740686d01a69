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

var _ repository.GoodsOutwardRepository = (*GoodsOutwardRepo)(nil)

// GoodsOutwardRepo implementación sobre PostgreSQL (usable con pool o tx).
type GoodsOutwardRepo struct {
	q Querier
}

// NewGoodsOutwardRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGoodsOutwardRepository(q Querier) *GoodsOutwardRepo {
	return &GoodsOutwardRepo{q: q}
}

// Create persiste el despacho y todas sus líneas. Se llama dentro de la misma
// tx que los Decrement: el evento y el ledger nunca quedan inconsistentes.
func (r *GoodsOutwardRepo) Create(outward *entity.GoodsOutward) error {
	query := `
		INSERT INTO goods_outward (id, company_id, warehouse_id, source_ref, date, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	createdBy := (*string)(nil)
	if outward.CreatedBy != "" {
		createdBy = &outward.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		outward.ID, outward.CompanyID, outward.WarehouseID,
		outward.SourceRef, outward.Date, outward.CreatedAt, createdBy,
	)
	if err != nil {
		return fmt.Errorf("create goods outward: %w", err)
	}
	itemQuery := `
		INSERT INTO goods_outward_items (id, outward_id, stock_unit_id, product_id, quantity_dispatched)
		VALUES ($1, $2, $3, $4, $5)`
	for _, it := range outward.Items {
		if _, err := r.q.Exec(context.Background(), itemQuery,
			it.ID, it.OutwardID, it.StockUnitID, it.ProductID, it.QuantityDispatched,
		); err != nil {
			return fmt.Errorf("create goods outward item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un despacho con sus líneas; nil si no existe.
func (r *GoodsOutwardRepo) GetByID(id string) (*entity.GoodsOutward, error) {
	query := `
		SELECT id, company_id, warehouse_id, source_ref, date, created_at, created_by
		FROM goods_outward WHERE id = $1`
	g, err := r.scanOutward(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get goods outward: %w", err)
	}
	items, err := r.listItems(id)
	if err != nil {
		return nil, err
	}
	g.Items = items
	return g, nil
}

// ListByWarehouse lista despachos de una bodega en un rango de fechas, con
// sus líneas (las vistas de flujo de stock las necesitan).
func (r *GoodsOutwardRepo) ListByWarehouse(warehouseID string, from, to *time.Time, limit, offset int) ([]*entity.GoodsOutward, error) {
	query := `
		SELECT id, company_id, warehouse_id, source_ref, date, created_at, created_by
		FROM goods_outward WHERE warehouse_id = $1`
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
		return nil, fmt.Errorf("list goods outward: %w", err)
	}
	defer rows.Close()
	var list []*entity.GoodsOutward
	for rows.Next() {
		g, err := r.scanOutward(rows)
		if err != nil {
			return nil, fmt.Errorf("scan goods outward: %w", err)
		}
		list = append(list, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, g := range list {
		items, err := r.listItems(g.ID)
		if err != nil {
			return nil, err
		}
		g.Items = items
	}
	return list, nil
}

func (r *GoodsOutwardRepo) listItems(outwardID string) ([]*entity.GoodsOutwardItem, error) {
	query := `
		SELECT id, outward_id, stock_unit_id, product_id, quantity_dispatched
		FROM goods_outward_items WHERE outward_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, outwardID)
	if err != nil {
		return nil, fmt.Errorf("list outward items: %w", err)
	}
	defer rows.Close()
	var items []*entity.GoodsOutwardItem
	for rows.Next() {
		var it entity.GoodsOutwardItem
		if err := rows.Scan(&it.ID, &it.OutwardID, &it.StockUnitID, &it.ProductID, &it.QuantityDispatched); err != nil {
			return nil, fmt.Errorf("scan outward item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

func (r *GoodsOutwardRepo) scanOutward(row pgx.Row) (*entity.GoodsOutward, error) {
	var g entity.GoodsOutward
	var createdBy *string
	err := row.Scan(
		&g.ID, &g.CompanyID, &g.WarehouseID,
		&g.SourceRef, &g.Date, &g.CreatedAt, &createdBy,
	)
	if err != nil {
		return nil, err
	}
	if createdBy != nil {
		g.CreatedBy = *createdBy
	}
	return &g, nil
}
