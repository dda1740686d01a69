package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-ledger/internal/application/inventory"
	"github.com/tu-usuario/stock-ledger/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	WarehouseUC  *usecase.WarehouseUseCase
	ProductUC    *usecase.ProductUseCase
	ReceiveGoods *inventory.ReceiveGoodsUseCase
	Allocate     *inventory.AllocateOutwardUseCase
	LabelBatch   *inventory.LabelBatchUseCase
	StockQuery   *inventory.StockQueryUseCase
	JWTSecret    string
}

// Router registra las rutas de la API. Todo el ledger es protegido: el
// alcance de empresa sale del token, nunca de estado ambiente.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Warehouses (colaborador: el ledger referencia bodegas por ID)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)

	// Products (colaborador: measuring_unit y stock_type)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	// Goods inward (recepciones -> crean unidades)
	inward := protected.Group("/inward")
	inwardHandler := NewInwardHandler(deps.ReceiveGoods, deps.StockQuery)
	inward.Post("/", inwardHandler.Receive)
	inward.Get("/", inwardHandler.List)
	inward.Get("/:id", inwardHandler.GetByID)
	inward.Post("/:id/cancel", inwardHandler.Cancel)

	// Goods outward (despachos -> decrementan unidades)
	outward := protected.Group("/outward")
	outwardHandler := NewOutwardHandler(deps.Allocate, deps.StockQuery)
	outward.Post("/", outwardHandler.Allocate)
	outward.Get("/", outwardHandler.List)
	outward.Get("/:id", outwardHandler.GetByID)

	// Stock units (lecturas del ledger)
	units := protected.Group("/stock-units")
	stockHandler := NewStockHandler(deps.StockQuery)
	units.Get("/", stockHandler.List)
	units.Get("/:id", stockHandler.GetByID)

	// Label batches (agrupación para marcado físico)
	labels := protected.Group("/label-batches")
	labelHandler := NewLabelHandler(deps.LabelBatch)
	labels.Post("/", labelHandler.Create)
	labels.Get("/", labelHandler.List)
	labels.Get("/:id", labelHandler.GetByID)
}
