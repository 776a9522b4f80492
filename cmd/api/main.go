package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/Compras-api/docs"
	"github.com/jhoicas/Compras-api/internal/application/inventory"
	"github.com/jhoicas/Compras-api/internal/application/procurement"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
	"github.com/jhoicas/Compras-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Compras-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Compras-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Compras-api/internal/interfaces/http"
	"github.com/jhoicas/Compras-api/pkg/config"
	"github.com/jhoicas/Compras-api/pkg/logger"
)

// storage repositorios del adaptador elegido por STORAGE_DRIVER.
type storage struct {
	products  repository.ProductRepository
	batches   repository.BatchRepository
	orders    repository.PurchaseOrderRepository
	movements repository.AccountingMovementRepository
	txRunner  procurement.TxRunner
	close     func()
}

func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	if cfg.Storage.Driver == "memory" {
		store := memory.NewStore()
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		return &storage{
			products:  store.Products(),
			batches:   store.Batches(),
			orders:    store.PurchaseOrders(),
			movements: store.Movements(),
			txRunner:  memory.NewTxRunner(store),
			close:     func() {},
		}, nil
	}

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.DB.ConnectionString(), log.Component("migrate"), "up"); err != nil {
			return nil, err
		}
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	return &storage{
		products:  postgres.NewProductRepository(pool),
		batches:   postgres.NewBatchRepository(pool),
		orders:    postgres.NewPurchaseOrderRepository(pool),
		movements: postgres.NewAccountingMovementRepository(pool),
		txRunner:  postgres.NewTxRunner(pool),
		close:     pool.Close,
	}, nil
}

// @title                       Compras API
// @version                     1.0
// @description                 Productos, lotes, órdenes de compra y movimientos contables.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Bool("strict_transitions", cfg.Policy.StrictTransitions).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer store.close()

	clock := usecase.SystemClock
	productUC := usecase.NewProductUseCase(store.products, store.batches, clock)
	batchUC := usecase.NewBatchUseCase(store.batches, store.products, store.orders, clock)
	orderUC := usecase.NewPurchaseOrderUseCase(store.orders, clock, cfg.Policy.StrictTransitions, log.Component("purchase_orders"))
	accountingUC := usecase.NewAccountingUseCase(store.movements, store.orders)

	deleteOrderUC := procurement.NewDeleteOrderUseCase(store.txRunner)
	deleteProductUC := procurement.NewDeleteProductUseCase(store.txRunner)
	orderSheetUC := procurement.NewOrderSheetUseCase(
		store.orders, store.batches, store.products, store.movements,
		infrapdf.NewOrderSheetGenerator(), clock,
	)
	replenishmentUC := inventory.NewReplenishmentUseCase(store.products, store.batches, clock)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Compras API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:     productUC,
		BatchUC:       batchUC,
		OrderUC:       orderUC,
		AccountingUC:  accountingUC,
		DeleteOrder:   deleteOrderUC,
		DeleteProduct: deleteProductUC,
		OrderSheet:    orderSheetUC,
		Replenish:     replenishmentUC,
		JWTSecret:     cfg.JWT.Secret,
	})
	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: API sin autenticación")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
