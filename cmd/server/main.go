package main

import (
	"fmt"
	"log/slog"

	"github.com/Hitchiker-V/Skydo-Mock/infra"
	"github.com/Hitchiker-V/Skydo-Mock/infra/pdf"
	infrarepo "github.com/Hitchiker-V/Skydo-Mock/infra/repository"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/config"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/fx"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/logging"
	analyticssvc "github.com/Hitchiker-V/Skydo-Mock/pkg/service/analytics"
	authsvc "github.com/Hitchiker-V/Skydo-Mock/pkg/service/auth"
	clientsvc "github.com/Hitchiker-V/Skydo-Mock/pkg/service/client"
	invoicesvc "github.com/Hitchiker-V/Skydo-Mock/pkg/service/invoice"
	paymentsvc "github.com/Hitchiker-V/Skydo-Mock/pkg/service/payment"
	usersvc "github.com/Hitchiker-V/Skydo-Mock/pkg/service/user"
	"github.com/Hitchiker-V/Skydo-Mock/webapi"
	log "github.com/charmbracelet/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(slog.Default())
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	logger := logging.New(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB.Url)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := infra.Migrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	rates := rateSource(cfg, logger)
	engine := fx.NewEngine(rates)

	userRepo := infrarepo.NewUserRepository(db)
	clientRepo := infrarepo.NewClientRepository(db)
	invoiceRepo := infrarepo.NewInvoiceRepository(db)
	txRepo := infrarepo.NewTransactionRepository(db)
	vaRepo := infrarepo.NewVirtualAccountRepository(db)
	analyticsRepo := infrarepo.NewAnalyticsRepository(db)

	app := webapi.NewApp(webapi.Deps{
		Auth:      authsvc.New(userRepo, vaRepo, cfg.Jwt, logger),
		Users:     usersvc.New(userRepo, vaRepo, logger),
		Clients:   clientsvc.New(clientRepo, logger),
		Invoices:  invoicesvc.New(invoiceRepo, clientRepo, txRepo, logger),
		Payments:  paymentsvc.New(invoiceRepo, txRepo, engine, logger),
		Analytics: analyticssvc.New(analyticsRepo, txRepo, logger),
		PDF:       pdf.NewGenerator(),
		Jwt:       cfg.Jwt,
		Logger:    logger,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "address", addr)
	return app.Listen(addr)
}

// rateSource wraps the mock rate table in whichever cache the config asks
// for. Redis failures fall back to the in-process cache so a missing broker
// never blocks payments.
func rateSource(cfg *config.AppConfig, logger *slog.Logger) fx.RateSource {
	mock := fx.NewMockRateSource()
	if cfg.RateCache.Url != "" {
		cache, err := fx.NewRedisCache(cfg.RateCache.Url, cfg.RateCache.Prefix, cfg.RateCache.TTL, logger)
		if err == nil {
			return fx.NewCachedRateSource(mock, cache)
		}
		logger.Warn("redis rate cache unavailable, using memory cache", "error", err)
	}
	return fx.NewCachedRateSource(mock, fx.NewMemoryCache(cfg.RateCache.TTL))
}
