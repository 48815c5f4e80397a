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

	appanalytics "github.com/jhoicas/edinho-pneus-api/internal/application/analytics"
	"github.com/jhoicas/edinho-pneus-api/internal/application/export"
	"github.com/jhoicas/edinho-pneus-api/internal/application/pos"
	"github.com/jhoicas/edinho-pneus-api/internal/application/usecase"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/entity"
	"github.com/jhoicas/edinho-pneus-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/edinho-pneus-api/internal/infrastructure/pdf"
	"github.com/jhoicas/edinho-pneus-api/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/edinho-pneus-api/internal/interfaces/http"
	"github.com/jhoicas/edinho-pneus-api/pkg/config"
	"github.com/jhoicas/edinho-pneus-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	store := memory.NewStore()
	if cfg.Store.Seed {
		memory.Seed(store, cfg.Store.DefaultID)
		counts := store.Counts()
		log.Info().
			Str("store_id", cfg.Store.DefaultID).
			Int("users", counts.Users).
			Int("service_orders", counts.ServiceOrders).
			Int("products", counts.Products).
			Int("transactions", counts.Transactions).
			Int("courier_orders", counts.CourierOrders).
			Msg("dados de exemplo carregados")
	}
	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vazio: POST /api/session desativado")
	}

	userRepo := memory.NewUserRepository(store)
	productRepo := memory.NewProductRepository(store)
	serviceOrderRepo := memory.NewServiceOrderRepository(store)
	transactionRepo := memory.NewTransactionRepository(store)
	courierRepo := memory.NewCourierOrderRepository(store)
	txRunner := memory.NewTxRunner(store)

	method, ok := entity.ParsePaymentMethod(cfg.POS.PaymentMethod)
	if !ok {
		log.Warn().Str("value", cfg.POS.PaymentMethod).Msg("POS_PAYMENT_METHOD inválido, usando MISTO")
		method = entity.PaymentMisto
	}
	checkoutUC := pos.NewCheckoutUseCase(productRepo, txRunner, pos.CheckoutConfig{
		DecrementStock: cfg.POS.DecrementStock,
		DefaultMethod:  method,
	}, store.Now)

	dashboardUC := appanalytics.NewDashboardUseCase(
		transactionRepo, serviceOrderRepo, productRepo, courierRepo,
		appanalytics.DashboardConfig{
			LowStockThreshold: cfg.Dashboard.LowStockThreshold,
			Location:          cfg.Dashboard.Location(),
		},
		store.Now,
	)

	exportUC := export.NewExportUseCase(
		productRepo, transactionRepo,
		infrapdf.NewMarotoInventoryReport(cfg.Dashboard.LowStockThreshold),
		xmlexport.NewLedgerWriter(),
		store.Now,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Immutable:    true,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Docs.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.SwaggerFile,
			Path:     "docs",
			Title:    "Edinho Pneus API",
		}))
	} else {
		log.Warn().Str("file", cfg.Docs.SwaggerFile).Msg("documento OpenAPI ausente, /docs desativado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		UserUC:         usecase.NewUserUseCase(userRepo),
		ProductUC:      usecase.NewProductUseCase(productRepo),
		ServiceOrderUC: usecase.NewServiceOrderUseCase(serviceOrderRepo),
		TransactionUC:  usecase.NewTransactionUseCase(transactionRepo),
		CourierUC:      usecase.NewCourierUseCase(courierRepo),
		CatalogUC:      pos.NewCatalogUseCase(productRepo),
		CheckoutUC:     checkoutUC,
		DashboardUC:    dashboardUC,
		ExportUC:       exportUC,
		Session: httpRouter.SessionConfig{
			Secret:     cfg.JWT.Secret,
			Issuer:     cfg.JWT.Issuer,
			ExpMinutes: cfg.JWT.Expiration,
		},
		DefaultStore: cfg.Store.DefaultID,
		Logger:       log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
