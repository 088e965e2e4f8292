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

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-BookingSlotsService/internal/api/gql"
	getBookingSlotsHandler "github.com/m04kA/SMC-BookingSlotsService/internal/api/handlers/get_booking_slots"
	getSlotConfigHandler "github.com/m04kA/SMC-BookingSlotsService/internal/api/handlers/get_slot_config"
	updateSlotConfigHandler "github.com/m04kA/SMC-BookingSlotsService/internal/api/handlers/update_slot_config"
	"github.com/m04kA/SMC-BookingSlotsService/internal/api/middleware"
	"github.com/m04kA/SMC-BookingSlotsService/internal/config"
	bookingProductCache "github.com/m04kA/SMC-BookingSlotsService/internal/infra/cache/bookingproduct"
	bookingRepo "github.com/m04kA/SMC-BookingSlotsService/internal/infra/storage/booking"
	bookingProductRepo "github.com/m04kA/SMC-BookingSlotsService/internal/infra/storage/bookingproduct"
	slotConfigService "github.com/m04kA/SMC-BookingSlotsService/internal/service/slotconfig"
	getBookingSlotsUC "github.com/m04kA/SMC-BookingSlotsService/internal/usecase/get_booking_slots"
	"github.com/m04kA/SMC-BookingSlotsService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BookingSlotsService/pkg/events"
	"github.com/m04kA/SMC-BookingSlotsService/pkg/logger"
	"github.com/m04kA/SMC-BookingSlotsService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting SMC-BookingSlotsService...")

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Booking.Timezone, err)
	}
	log.Info("Shop timezone: %s", location)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
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

	// Репозитории (с метриками или без)
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	productRepository := bookingProductRepo.NewRepository(executor)
	bookingRepository := bookingRepo.NewRepository(executor)

	// Кэш настроек бронирования (если включен)
	var (
		productReader getBookingSlotsUC.ProductReader = productRepository
		cache         *bookingProductCache.Cache
	)

	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis is unavailable at %s, requests will fall back to database: %v", cfg.Redis.Addr, err)
		}

		cache = bookingProductCache.NewCache(redisClient, productRepository, cfg.Redis.TTLDuration(), metricsCollector, log)
		productReader = cache
		log.Info("Redis cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	}

	// События (если включены)
	var publisher events.Publisher = events.NoopPublisher{}

	if cfg.NATS.Enabled {
		bus, err := events.NewNATSBus(cfg.NATS.URL, cfg.NATS.ClientName)
		if err != nil {
			log.Fatal("Failed to connect to NATS: %v", err)
		}
		publisher = bus

		if cache != nil {
			if err := bus.Subscribe(events.SubjectSlotConfigUpdated, cache.OnSlotConfigUpdated); err != nil {
				log.Fatal("Failed to subscribe to %s: %v", events.SubjectSlotConfigUpdated, err)
			}
		}
		log.Info("NATS events enabled (url=%s)", cfg.NATS.URL)
	}
	defer publisher.Close()

	// Сервисы и use cases
	var invalidator slotConfigService.CacheInvalidator
	if cache != nil {
		invalidator = cache
	}
	slotConfigSvc := slotConfigService.NewService(productRepository, invalidator, publisher, log)

	getBookingSlotsUseCase := getBookingSlotsUC.NewUseCase(
		productReader,
		bookingRepository,
		metricsCollector,
		location,
		log,
	)

	// GraphQL
	schema, err := gql.NewSchema(gql.NewResolver(getBookingSlotsUseCase, productReader, log))
	if err != nil {
		log.Fatal("Failed to build GraphQL schema: %v", err)
	}

	// Инициализируем handlers
	getBookingSlots := getBookingSlotsHandler.NewHandler(getBookingSlotsUseCase, log)
	getSlotConfig := getSlotConfigHandler.NewHandler(slotConfigSvc, log)
	updateSlotConfig := updateSlotConfigHandler.NewHandler(slotConfigSvc, log)
	graphQL := gql.NewHandler(schema, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	r.HandleFunc("/graphql", graphQL.Handle).Methods(http.MethodPost)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Слоты бронирования продукта на дату
	api.HandleFunc("/products/{productId}/booking-slots", getBookingSlots.Handle).Methods(http.MethodGet)

	// Настройки слотов продукта
	api.HandleFunc("/products/{productId}/slot-config", getSlotConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют JWT с ролью admin)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.Auth(cfg.Auth.JWTSecret, log))

	admin.HandleFunc("/products/{productId}/slot-config", updateSlotConfig.Handle).Methods(http.MethodPut)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	close(stopMetricsCh)

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
