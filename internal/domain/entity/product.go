package entity

import "time"

// Unidades de medida soportadas para productos.
const (
	MeasureCount  = "COUNT"  // piezas contables
	MeasureLength = "LENGTH" // metros (rollos, telas)
	MeasureWeight = "WEIGHT" // kilogramos (granel)
)

// Tipos de stock: cómo se numeran y muestran las unidades del producto.
const (
	StockTypePIECE = "PIECE" // pieza discreta
	StockTypeROLL  = "ROLL"  // rollo continuo
	StockTypeBULK  = "BULK"  // lote a granel
)

// Product representa una entrada del catálogo. Inmutable para efectos del
// ledger; las operaciones de stock solo lo referencian por ID.
type Product struct {
	ID            string
	CompanyID     string
	SKU           string // código único por empresa
	Name          string
	Description   string
	MeasuringUnit string // COUNT, LENGTH, WEIGHT
	StockType     string // PIECE, ROLL, BULK
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // soft-delete; no cascada sobre las unidades
}
