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

	"github.com/pbp-kelompok-b10/any-venue/internal/api/handlers"
	bookingPageHandler "github.com/pbp-kelompok-b10/any-venue/internal/api/handlers/booking_page"
	cancelBookingHandler "github.com/pbp-kelompok-b10/any-venue/internal/api/handlers/cancel_booking"
	changeRoleHandler "github.com/pbp-kelompok-b10/any-venue/internal/api/handlers/change_role"
	createBookingHandler "github.com/pbp-kelompok-b10/any-venue/internal/api/handlers/create_booking"
	getSlotHandler "github.com/pbp-kelompok-b10/any-venue/internal/api/handlers/get_slot"
	getUserBookingsHandler "github.com/pbp-kelompok-b10/any-venue/internal/api/handlers/get_user_bookings"
	listSlotsHandler "github.com/pbp-kelompok-b10/any-venue/internal/api/handlers/list_slots"
	"github.com/pbp-kelompok-b10/any-venue/internal/api/middleware"
	"github.com/pbp-kelompok-b10/any-venue/internal/config"
	"github.com/pbp-kelompok-b10/any-venue/internal/infra/broker"
	bookingRepo "github.com/pbp-kelompok-b10/any-venue/internal/infra/storage/booking"
	eventRepo "github.com/pbp-kelompok-b10/any-venue/internal/infra/storage/event"
	profileRepo "github.com/pbp-kelompok-b10/any-venue/internal/infra/storage/profile"
	reviewRepo "github.com/pbp-kelompok-b10/any-venue/internal/infra/storage/review"
	slotRepo "github.com/pbp-kelompok-b10/any-venue/internal/infra/storage/slot"
	venueRepo "github.com/pbp-kelompok-b10/any-venue/internal/infra/storage/venue"
	bookingsService "github.com/pbp-kelompok-b10/any-venue/internal/service/bookings"
	profilesService "github.com/pbp-kelompok-b10/any-venue/internal/service/profiles"
	slotsService "github.com/pbp-kelompok-b10/any-venue/internal/service/slots"
	cancelBookingUC "github.com/pbp-kelompok-b10/any-venue/internal/usecase/cancel_booking"
	createBookingUC "github.com/pbp-kelompok-b10/any-venue/internal/usecase/create_booking"
	listSlotsUC "github.com/pbp-kelompok-b10/any-venue/internal/usecase/list_slots"
	openBookingPageUC "github.com/pbp-kelompok-b10/any-venue/internal/usecase/open_booking_page"
	"github.com/pbp-kelompok-b10/any-venue/pkg/dbmetrics"
	"github.com/pbp-kelompok-b10/any-venue/pkg/logger"
	"github.com/pbp-kelompok-b10/any-venue/pkg/metrics"
	"github.com/pbp-kelompok-b10/any-venue/pkg/tracing"
	"github.com/pbp-kelompok-b10/any-venue/pkg/txmanager"
)

// eventPublisher общий интерфейс для RabbitMQ и noop-публикатора
type eventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
	Close() error
}

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

	log.Info("Starting any-venue booking service...")

	location, err := cfg.Slots.Location()
	if err != nil {
		log.Fatal("Invalid slots timezone: %v", err)
	}

	// Метрики (nil-коллектор безопасен, если выключены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Трейсинг
	shutdownTracing, err := tracing.Init(context.Background(), tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: cfg.Metrics.ServiceName,
		Environment: cfg.Tracing.Environment,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	if err != nil {
		log.Fatal("Failed to initialize tracing: %v", err)
	}
	if cfg.Tracing.Enabled {
		log.Info("Tracing enabled, exporting to %s", cfg.Tracing.Endpoint)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB, cfg.Database.TxMaxRetries)

	// Redis для rate limit; без него лимитер пропускает запросы
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis unavailable at %s, rate limiting disabled: %v", cfg.Redis.Addr, err)
			_ = redisClient.Close()
			redisClient = nil
		} else {
			log.Info("Connected to Redis at %s", cfg.Redis.Addr)
		}
		cancel()
	}

	// Брокер событий
	var publisher eventPublisher = broker.NoopPublisher{}
	if cfg.Broker.Enabled {
		p, err := broker.NewPublisher(cfg.Broker.URL, cfg.Broker.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to broker: %v", err)
		}
		publisher = p
		log.Info("Publishing booking events to exchange %s", cfg.Broker.Exchange)
	}
	defer publisher.Close()

	// Репозитории
	slotRepository := slotRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	venueRepository := venueRepo.NewRepository(wrappedDB)
	profileRepository := profileRepo.NewRepository(wrappedDB)
	eventRepository := eventRepo.NewRepository(wrappedDB)
	reviewRepository := reviewRepo.NewRepository(wrappedDB)

	// Сервисы
	generator, err := slotsService.NewGenerator(
		slotRepository,
		slotsService.Template{StartHour: cfg.Slots.StartHour, EndHour: cfg.Slots.EndHour},
		metricsCollector,
		log,
	)
	if err != nil {
		log.Fatal("Invalid slot template: %v", err)
	}

	horizon := slotsService.NewHorizon(
		generator,
		slotRepository,
		bookingRepository,
		venueRepository,
		txMgr,
		publisher,
		metricsCollector,
		log,
		slotsService.Window{PrefetchDays: cfg.Slots.PrefetchDays, HorizonDays: cfg.Slots.HorizonDays},
	)

	bookingSvc := bookingsService.NewService(bookingRepository, slotRepository, venueRepository, log)
	profileSvc := profilesService.NewService(
		profileRepository,
		venueRepository,
		eventRepository,
		bookingRepository,
		slotRepository,
		reviewRepository,
		txMgr,
		log,
	)

	// Use cases
	listSlotsUseCase := listSlotsUC.NewUseCase(venueRepository, bookingRepository, horizon, location, log)
	openBookingPageUseCase := openBookingPageUC.NewUseCase(venueRepository, horizon, cfg.Slots.PrefetchDays, location, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		slotRepository,
		bookingRepository,
		venueRepository,
		txMgr,
		publisher,
		metricsCollector,
		location,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		slotRepository,
		bookingRepository,
		txMgr,
		publisher,
		metricsCollector,
		location,
		log,
	)

	// Handlers
	listSlots := listSlotsHandler.NewHandler(listSlotsUseCase, log)
	bookingPage := bookingPageHandler.NewHandler(openBookingPageUseCase, log)
	getSlot := getSlotHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	changeRole := changeRoleHandler.NewHandler(profileSvc, log)

	auth := middleware.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.Issuer, log)
	limiter := middleware.NewRateLimiter(redisClient, middleware.RateLimitOptions{
		Enabled:        cfg.RateLimit.Enabled,
		Prefix:         cfg.RateLimit.Prefix,
		Capacity:       cfg.RateLimit.Capacity,
		RefillTokens:   cfg.RateLimit.RefillTokens,
		RefillInterval: time.Duration(cfg.RateLimit.RefillInterval) * time.Millisecond,
		TTL:            time.Duration(cfg.RateLimit.TTL) * time.Second,
	}, log)

	// Роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (токен необязателен, но проверяется, если передан)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	public.Use(auth.Optional)

	public.HandleFunc("/venues/{venueId}/slots", listSlots.Handle).Methods(http.MethodGet)
	public.HandleFunc("/venues/{venueId}/booking-page", bookingPage.Handle).Methods(http.MethodGet)
	public.HandleFunc("/slots/{slotId}", getSlot.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (Authorization: Bearer <jwt>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(auth.Required)

	// мутации бронирований под rate limit
	mutations := protected.PathPrefix("/bookings").Subrouter()
	mutations.Use(limiter.Middleware)
	mutations.HandleFunc("", createBooking.Handle).Methods(http.MethodPost)
	mutations.HandleFunc("/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	protected.HandleFunc("/me/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/me/role", changeRole.Handle).Methods(http.MethodPut)

	// HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("Failed to flush traces: %v", err)
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}

	log.Info("Server stopped gracefully")
}
