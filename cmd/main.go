package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-HospitalBookingService/internal/api"
	confirmBookingHandler "github.com/m04kA/SMC-HospitalBookingService/internal/api/handlers/confirm_booking"
	createCalendarSessionHandler "github.com/m04kA/SMC-HospitalBookingService/internal/api/handlers/create_calendar_session"
	exportPassPDFHandler "github.com/m04kA/SMC-HospitalBookingService/internal/api/handlers/export_pass_pdf"
	exportPassQRHandler "github.com/m04kA/SMC-HospitalBookingService/internal/api/handlers/export_pass_qr"
	exportPriceListHandler "github.com/m04kA/SMC-HospitalBookingService/internal/api/handlers/export_price_list"
	getCalendarSessionHandler "github.com/m04kA/SMC-HospitalBookingService/internal/api/handlers/get_calendar_session"
	getHospitalHandler "github.com/m04kA/SMC-HospitalBookingService/internal/api/handlers/get_hospital"
	getHospitalFiltersHandler "github.com/m04kA/SMC-HospitalBookingService/internal/api/handlers/get_hospital_filters"
	listHospitalsHandler "github.com/m04kA/SMC-HospitalBookingService/internal/api/handlers/list_hospitals"
	updateCalendarSessionHandler "github.com/m04kA/SMC-HospitalBookingService/internal/api/handlers/update_calendar_session"
	"github.com/m04kA/SMC-HospitalBookingService/internal/config"
	"github.com/m04kA/SMC-HospitalBookingService/internal/infra/document"
	hospitalRepo "github.com/m04kA/SMC-HospitalBookingService/internal/infra/storage/hospital"
	sessionRepo "github.com/m04kA/SMC-HospitalBookingService/internal/infra/storage/session"
	calendarService "github.com/m04kA/SMC-HospitalBookingService/internal/service/calendar"
	hospitalsService "github.com/m04kA/SMC-HospitalBookingService/internal/service/hospitals"
	passesService "github.com/m04kA/SMC-HospitalBookingService/internal/service/passes"
	confirmBookingUC "github.com/m04kA/SMC-HospitalBookingService/internal/usecase/confirm_booking"
	"github.com/m04kA/SMC-HospitalBookingService/pkg/clock"
	"github.com/m04kA/SMC-HospitalBookingService/pkg/logger"
	"github.com/m04kA/SMC-HospitalBookingService/pkg/metrics"
)

// domainMetrics метрики, которые пишут сервисы и use case
type domainMetrics interface {
	IncCalendarTransition(action string, applied bool)
	IncBookingConfirmed()
	IncPassExported(format string)
}

func main() {
	// Загружаем конфигурацию
	configPath := config.PathFromEnv()
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-HospitalBookingService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		appMetrics       domainMetrics = metrics.Nop{}
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		appMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Часовой пояс календаря
	loc, err := cfg.Calendar.Location()
	if err != nil {
		log.Fatal("Invalid calendar timezone: %v", err)
	}
	timeProvider := clock.NewReal(loc)

	// Каталог больниц
	var catalog hospitalsService.HospitalRepository
	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		catalog = hospitalRepo.NewPostgresRepository(db)
	default:
		catalog = hospitalRepo.NewSeededRepository()
		log.Info("Using in-memory hospital catalog")
	}

	// Хранилище календарных сессий
	var sessions calendarService.SessionRepository
	switch cfg.Sessions.Store {
	case config.SessionStoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := client.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}
		log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

		sessions = sessionRepo.NewRedisRepository(client, cfg.Sessions.TTL())
	default:
		sessions = sessionRepo.NewMemoryRepository(cfg.Sessions.TTL())
		log.Info("Using in-memory session store (ttl=%s)", cfg.Sessions.TTL())
	}

	// Инициализируем сервисы
	hospitalSvc := hospitalsService.NewService(catalog, log)
	calendarSvc := calendarService.NewService(
		sessions,
		hospitalSvc,
		timeProvider,
		calendarService.UUIDGenerator{},
		appMetrics,
		log,
	)
	passSvc := passesService.NewService(
		document.NewQREncoder(cfg.Booking.QRSize),
		document.NewPassRenderer(),
		document.NewPriceListWriter(),
		hospitalSvc,
		timeProvider,
		appMetrics,
		log,
		passesService.Config{
			PublicURL: cfg.Server.PublicURL,
			Currency:  cfg.Booking.Currency,
		},
	)

	// Инициализируем use cases
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		calendarSvc,
		hospitalSvc,
		passSvc,
		confirmBookingUC.NewBookingIDGenerator(cfg.Booking.IDPrefix, nil),
		appMetrics,
		log,
	)

	// Инициализируем handlers
	routerHandlers := &api.Handlers{
		ListHospitals:         listHospitalsHandler.NewHandler(hospitalSvc, log),
		GetHospitalFilters:    getHospitalFiltersHandler.NewHandler(hospitalSvc, log),
		GetHospital:           getHospitalHandler.NewHandler(hospitalSvc, log),
		ExportPriceList:       exportPriceListHandler.NewHandler(passSvc, log),
		CreateCalendarSession: createCalendarSessionHandler.NewHandler(calendarSvc, log),
		GetCalendarSession:    getCalendarSessionHandler.NewHandler(calendarSvc, log),
		UpdateCalendarSession: updateCalendarSessionHandler.NewHandler(calendarSvc, log),
		ConfirmBooking:        confirmBookingHandler.NewHandler(confirmBookingUseCase, log),
		ExportPassPDF:         exportPassPDFHandler.NewHandler(passSvc, log),
		ExportPassQR:          exportPassQRHandler.NewHandler(passSvc, log),
	}

	// Настраиваем роутер
	routerOpts := api.Options{Logger: log}
	if cfg.Metrics.Enabled {
		routerOpts.Metrics = metricsCollector
		routerOpts.MetricsPath = cfg.Metrics.Path
		routerOpts.MetricsHandler = metricsCollector.Handler()
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}
	r := api.NewRouter(routerHandlers, routerOpts)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
