package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

var _ repository.StockUnitRepository = (*StockUnitRepo)(nil)

// StockUnitRepo implementación de StockUnitRepository sobre PostgreSQL
// (usable con pool o tx).
type StockUnitRepo struct {
	q Querier
}

// NewStockUnitRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockUnitRepository(q Querier) *StockUnitRepo {
	return &StockUnitRepo{q: q}
}

const stockUnitColumns = `id, company_id, product_id, warehouse_id, sequence_number,
	initial_quantity, remaining_quantity, created_from_inward_id,
	grade, supplier_ref, location, manufacture_date, qr_generated_at,
	created_at, updated_at`

// Create persiste una unidad nueva. La tabla tiene unique en
// (product_id, warehouse_id, sequence_number) y CHECK de cantidades.
func (r *StockUnitRepo) Create(unit *entity.StockUnit) error {
	query := `
		INSERT INTO stock_units (` + stockUnitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		unit.ID, unit.CompanyID, unit.ProductID, unit.WarehouseID, unit.SequenceNumber,
		unit.InitialQuantity, unit.RemainingQuantity, unit.CreatedFromInwardID,
		unit.Grade, unit.SupplierRef, unit.Location, unit.ManufactureDate, unit.QRGeneratedAt,
		unit.CreatedAt, unit.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create stock unit: %w", err)
	}
	return nil
}

func scanStockUnit(row pgx.Row) (*entity.StockUnit, error) {
	var u entity.StockUnit
	err := row.Scan(
		&u.ID, &u.CompanyID, &u.ProductID, &u.WarehouseID, &u.SequenceNumber,
		&u.InitialQuantity, &u.RemainingQuantity, &u.CreatedFromInwardID,
		&u.Grade, &u.SupplierRef, &u.Location, &u.ManufactureDate, &u.QRGeneratedAt,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID obtiene una unidad por ID; nil si no existe.
func (r *StockUnitRepo) GetByID(id string) (*entity.StockUnit, error) {
	query := `SELECT ` + stockUnitColumns + ` FROM stock_units WHERE id = $1`
	u, err := scanStockUnit(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock unit: %w", err)
	}
	return u, nil
}

// GetByIDs obtiene varias unidades por ID (las inexistentes simplemente faltan).
func (r *StockUnitRepo) GetByIDs(ids []string) ([]*entity.StockUnit, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + stockUnitColumns + ` FROM stock_units WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("get stock units: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockUnit
	for rows.Next() {
		u, err := scanStockUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock unit: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// ListEligible lista unidades filtrando por estado derivado de las cantidades
// (el estado no se persiste). Sin statuses: FULL+PARTIAL, es decir
// remaining > 0 — las agotadas solo aparecen si se piden explícitamente.
func (r *StockUnitRepo) ListEligible(filter repository.EligibleFilter) ([]*entity.StockUnit, error) {
	query := `SELECT ` + stockUnitColumns + `
		FROM stock_units WHERE company_id = $1 AND warehouse_id = $2`
	args := []any{filter.CompanyID, filter.WarehouseID}
	pos := 3
	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if cond := statusCondition(filter.Statuses); cond != "" {
		query += " AND (" + cond + ")"
	}
	query += fmt.Sprintf(" ORDER BY sequence_number ASC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock units: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockUnit
	for rows.Next() {
		u, err := scanStockUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock unit: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// statusCondition traduce estados derivados a condiciones sobre cantidades.
func statusCondition(statuses []string) string {
	if len(statuses) == 0 {
		return "remaining_quantity > 0"
	}
	var conds []string
	for _, s := range statuses {
		switch s {
		case entity.StatusFull:
			conds = append(conds, "remaining_quantity = initial_quantity")
		case entity.StatusPartial:
			conds = append(conds, "(remaining_quantity > 0 AND remaining_quantity < initial_quantity)")
		case entity.StatusDepleted:
			conds = append(conds, "remaining_quantity = 0")
		}
	}
	return strings.Join(conds, " OR ")
}

// NextSequence incrementa y devuelve el contador por (producto, bodega).
// El upsert toma el row lock del contador, así que recepciones concurrentes
// del mismo producto se serializan y los números nunca se repiten.
func (r *StockUnitRepo) NextSequence(productID, warehouseID string) (int64, error) {
	query := `
		INSERT INTO stock_unit_counters (product_id, warehouse_id, last_seq)
		VALUES ($1, $2, 1)
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET last_seq = stock_unit_counters.last_seq + 1
		RETURNING last_seq`
	var seq int64
	if err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// Decrement aplica remaining -= amount en un solo update condicional: el WHERE
// exige remaining >= amount, así que dos despachos concurrentes leyendo el
// mismo remaining no pueden sobre-asignar — el segundo no matchea la fila.
func (r *StockUnitRepo) Decrement(id string, amount decimal.Decimal) (*entity.StockUnit, error) {
	if !amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidQuantity
	}
	query := `
		UPDATE stock_units
		SET remaining_quantity = remaining_quantity - $2, updated_at = now()
		WHERE id = $1 AND remaining_quantity >= $2
		RETURNING ` + stockUnitColumns
	u, err := scanStockUnit(r.q.QueryRow(context.Background(), query, id, amount))
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		if isCheckViolation(err) {
			// El CHECK del storage no debería dispararse con el WHERE de arriba;
			// si pasa, se trata igual que cantidad insuficiente.
			return nil, r.insufficient(id, amount)
		}
		return nil, fmt.Errorf("decrement stock unit: %w", err)
	}
	// Cero filas: distinguir inexistente de insuficiente con una lectura
	// dentro de la misma tx.
	current, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	return nil, &domain.InsufficientQuantityError{
		StockUnitID: id,
		Requested:   amount,
		Remaining:   current.RemainingQuantity,
	}
}

func (r *StockUnitRepo) insufficient(id string, amount decimal.Decimal) error {
	current, err := r.GetByID(id)
	if err != nil || current == nil {
		return &domain.InsufficientQuantityError{StockUnitID: id, Requested: amount, Remaining: decimal.Zero}
	}
	return &domain.InsufficientQuantityError{
		StockUnitID: id,
		Requested:   amount,
		Remaining:   current.RemainingQuantity,
	}
}

// MarkQRGenerated fija qr_generated_at solo donde aún es NULL (idempotente:
// la primera inclusión en un lote gana, re-incluir no cambia nada).
func (r *StockUnitRepo) MarkQRGenerated(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	query := `
		UPDATE stock_units
		SET qr_generated_at = now(), updated_at = now()
		WHERE id = ANY($1) AND qr_generated_at IS NULL`
	if _, err := r.q.Exec(context.Background(), query, ids); err != nil {
		return fmt.Errorf("mark qr generated: %w", err)
	}
	return nil
}
