package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"ordervoice/order-api/internal/config"
	"ordervoice/order-api/internal/domain/catalog"
	"ordervoice/order-api/internal/domain/customer"
	"ordervoice/order-api/internal/domain/order"
	"ordervoice/order-api/internal/domain/pipeline"
	"ordervoice/order-api/internal/domain/tenant"
	"ordervoice/order-api/internal/infrastructure/crontab"
	"ordervoice/order-api/internal/infrastructure/database"
	_ "ordervoice/order-api/internal/infrastructure/database/dbschema"
	"ordervoice/order-api/internal/infrastructure/database/repository/customerrepo"
	"ordervoice/order-api/internal/infrastructure/database/repository/interactionrepo"
	"ordervoice/order-api/internal/infrastructure/database/repository/orderrepo"
	"ordervoice/order-api/internal/infrastructure/database/repository/productrepo"
	"ordervoice/order-api/internal/infrastructure/database/repository/tenantrepo"
	"ordervoice/order-api/internal/infrastructure/database/transaction"
	"ordervoice/order-api/internal/infrastructure/inference"
	"ordervoice/order-api/internal/infrastructure/logger"
	"ordervoice/order-api/internal/infrastructure/observability"
	"ordervoice/order-api/internal/infrastructure/safety"
	"ordervoice/order-api/internal/interfaces/httpserver"
	"ordervoice/order-api/internal/interfaces/httpserver/handlers/customerhandler"
	"ordervoice/order-api/internal/interfaces/httpserver/handlers/interactionhandler"
	"ordervoice/order-api/internal/interfaces/httpserver/handlers/producthandler"
	"ordervoice/order-api/internal/interfaces/httpserver/handlers/tenanthandler"
	"ordervoice/order-api/internal/interfaces/httpserver/routes/v1/customerroute"
	"ordervoice/order-api/internal/interfaces/httpserver/routes/v1/interactionroute"
	"ordervoice/order-api/internal/interfaces/httpserver/routes/v1/productroute"
	"ordervoice/order-api/internal/interfaces/httpserver/routes/v1/tenantroute"
	v1 "ordervoice/order-api/internal/interfaces/httpserver/routes/v1"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("load config: %v", err))
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(fmt.Sprintf("configure logger: %v", err))
	}

	ctx := context.Background()
	otelShutdown, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("initialize observability")
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := otelShutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("shutdown telemetry")
			}
		}()
	}

	db, err := database.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	if cfg.AutoMigrate {
		if err := database.Migration(db); err != nil {
			log.Fatal().Err(err).Msg("migrate database")
		}
	}

	tx := transaction.NewDatabase(db)

	// Repositories
	tenants := tenantrepo.NewTenantGormRepository(tx)
	customers := customerrepo.NewCustomerGormRepository(tx)
	products := productrepo.NewProductGormRepository(tx)
	interactions := interactionrepo.NewInteractionGormRepository(tx)
	orders := orderrepo.NewOrderGormRepository(tx)

	// Domain services
	tenantService := tenant.NewService(tenants)
	customerService := customer.NewService(customers)
	catalogService := catalog.NewService(products)
	builder := order.NewBuilder(
		catalog.NewResolver(products),
		orders,
		order.NewRuleEngine(order.DefaultThresholds()),
		log,
	)

	// Providers
	ai := inference.NewOpenAIProvider(cfg, log)
	var verifier pipeline.SafetyVerifier
	if cfg.HasSafetyCredential() {
		verifier = safety.NewWhiteCircleClient(cfg, log)
	}
	gate := pipeline.NewSafetyGate(verifier, cfg.SafetyMode, cfg.HasSafetyCredential(), log)

	orchestrator := pipeline.NewOrchestrator(tx, interactions, orders, builder, ai, gate, log)

	// HTTP boundary
	v1Route := v1.NewV1Route(
		tenantroute.NewTenantRoute(tenanthandler.NewTenantHandler(tenantService)),
		customerroute.NewCustomerRoute(customerhandler.NewCustomerHandler(customerService)),
		productroute.NewProductRoute(producthandler.NewProductHandler(catalogService)),
		interactionroute.NewInteractionRoute(interactionhandler.NewInteractionHandler(orchestrator, customerService, log)),
		tenantService,
	)
	server := httpserver.NewHttpServer(v1Route, cfg, log)
	jobs := crontab.NewCrontab(cfg, orders)

	appCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var eg errgroup.Group
	eg.Go(func() error {
		return jobs.Run(appCtx)
	})
	eg.Go(func() error {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		log.Info().Int("port", cfg.MetricsPort).Msg("metrics server listening")
		err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.MetricsPort), mux)
		if err != nil {
			cancel()
		}
		return err
	})
	eg.Go(func() error {
		log.Info().Int("port", cfg.HTTPPort).Msg("http server listening")
		err := server.Run()
		if err != nil {
			cancel()
		}
		return err
	})

	if err := eg.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
