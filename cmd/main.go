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

	addBlockHandler "github.com/m04kA/SMC-FitnessScheduling/internal/api/handlers/add_block"
	createBlockedSlotHandler "github.com/m04kA/SMC-FitnessScheduling/internal/api/handlers/create_blocked_slot"
	createBookingHandler "github.com/m04kA/SMC-FitnessScheduling/internal/api/handlers/create_booking"
	deleteBlockedSlotHandler "github.com/m04kA/SMC-FitnessScheduling/internal/api/handlers/delete_blocked_slot"
	getAvailabilityHandler "github.com/m04kA/SMC-FitnessScheduling/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/m04kA/SMC-FitnessScheduling/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-FitnessScheduling/internal/api/handlers/get_booking"
	getNavigationHandler "github.com/m04kA/SMC-FitnessScheduling/internal/api/handlers/get_navigation"
	listBlocksHandler "github.com/m04kA/SMC-FitnessScheduling/internal/api/handlers/list_blocks"
	listBookingsHandler "github.com/m04kA/SMC-FitnessScheduling/internal/api/handlers/list_bookings"
	removeBlockHandler "github.com/m04kA/SMC-FitnessScheduling/internal/api/handlers/remove_block"
	setAvailabilityHandler "github.com/m04kA/SMC-FitnessScheduling/internal/api/handlers/set_availability"
	updateBookingStatusHandler "github.com/m04kA/SMC-FitnessScheduling/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-FitnessScheduling/internal/api/middleware"
	"github.com/m04kA/SMC-FitnessScheduling/internal/config"
	"github.com/m04kA/SMC-FitnessScheduling/internal/domain"
	availabilityCache "github.com/m04kA/SMC-FitnessScheduling/internal/infra/cache/availability"
	"github.com/m04kA/SMC-FitnessScheduling/internal/infra/redisclient"
	availabilityRepo "github.com/m04kA/SMC-FitnessScheduling/internal/infra/storage/availability"
	blockRepo "github.com/m04kA/SMC-FitnessScheduling/internal/infra/storage/block"
	bookingRepo "github.com/m04kA/SMC-FitnessScheduling/internal/infra/storage/booking"
	subjectRepo "github.com/m04kA/SMC-FitnessScheduling/internal/infra/storage/subject"
	accountServiceClient "github.com/m04kA/SMC-FitnessScheduling/internal/integrations/accountservice"
	"github.com/m04kA/SMC-FitnessScheduling/internal/integrations/notifications"
	availabilityService "github.com/m04kA/SMC-FitnessScheduling/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-FitnessScheduling/internal/service/bookings"
	navigationService "github.com/m04kA/SMC-FitnessScheduling/internal/service/navigation"
	createBookingUC "github.com/m04kA/SMC-FitnessScheduling/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-FitnessScheduling/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/dbmetrics"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/logger"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/metrics"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/txmanager"
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

	log.Info("Starting SMC-FitnessScheduling...")
	log.Info("Configuration loaded from config.toml")

	// Календарь сервиса: день недели и "сегодня" считаются в фиксированном смещении
	calendar := domain.NewFixedCalendar(cfg.Calendar.UTCOffsetHours)
	log.Info("Calendar offset: UTC%+d", cfg.Calendar.UTCOffsetHours)

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

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.New(wrappedDB)

	// Подключаемся к Redis
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	redisClient, err := redisclient.NewClient(redisCtx, redisclient.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	redisCancel()
	if err != nil {
		log.Fatal("Failed to connect to Redis: %v", err)
	}
	log.Info("Successfully connected to Redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	patternCache := availabilityCache.NewCache(redisClient, cfg.Redis.AvailabilityTTLDuration())

	// Уведомления уходят в Redis stream, который читает сервис рассылок
	var publisher bookingsService.NotificationPublisher
	if cfg.Notifications.Enabled {
		publisher = notifications.NewRedisPublisher(redisClient, cfg.Notifications.Stream, cfg.Notifications.MaxLen, metricsCollector, log)
		log.Info("Notifications enabled (stream=%s, max_len=%d)", cfg.Notifications.Stream, cfg.Notifications.MaxLen)
	} else {
		publisher = notifications.NewNopPublisher(log)
		log.Warn("Notifications disabled")
	}

	// Инициализируем интеграционных клиентов
	accountClient := accountServiceClient.NewClient(
		cfg.AccountService.URL,
		cfg.AccountService.TimeoutDuration(),
		log,
	)
	log.Info("Integration clients initialized (AccountService=%s timeout=%ds)",
		cfg.AccountService.URL, cfg.AccountService.Timeout)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	availabilityRepository := availabilityRepo.NewRepository(wrappedDB)
	blockRepository := blockRepo.NewRepository(wrappedDB, calendar.Location())
	subjectRepository := subjectRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(
		availabilityRepository,
		blockRepository,
		patternCache,
		accountClient,
		txMgr,
		calendar,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		accountClient,
		txMgr,
		publisher,
		metricsCollector,
		calendar,
		bookingsService.Options{AllowRequesterCancel: cfg.Bookings.AllowRequesterCancel},
		log,
	)
	navigationSvc := navigationService.NewService(accountClient, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		availabilitySvc,
		bookingRepository,
		blockRepository,
		calendar,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		getAvailableSlotsUseCase,
		bookingRepository,
		subjectRepository,
		txMgr,
		publisher,
		metricsCollector,
		calendar,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, calendar, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	createBlockedSlot := createBlockedSlotHandler.NewHandler(bookingSvc, log)
	deleteBlockedSlot := deleteBlockedSlotHandler.NewHandler(bookingSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	setAvailability := setAvailabilityHandler.NewHandler(availabilitySvc, log)
	addBlock := addBlockHandler.NewHandler(availabilitySvc, log)
	listBlocks := listBlocksHandler.NewHandler(availabilitySvc, log)
	removeBlock := removeBlockHandler.NewHandler(availabilitySvc, log)
	getNavigation := getNavigationHandler.NewHandler(navigationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestLogging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные слоты провайдера на дату
	api.HandleFunc("/providers/{providerId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Недельное расписание провайдера
	api.HandleFunc("/providers/{providerId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Удаляются только служебные записи blocked
	protected.HandleFunc("/bookings/{bookingId}", deleteBlockedSlot.Handle).Methods(http.MethodDelete)

	// --- Управление расписанием (провайдер, менеджер, админ) ---
	protected.HandleFunc("/providers/{providerId}/availability", setAvailability.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/providers/{providerId}/blocks", addBlock.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/providers/{providerId}/blocks", listBlocks.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/blocks/{blockId}", removeBlock.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/providers/{providerId}/blocked-slots", createBlockedSlot.Handle).Methods(http.MethodPost)

	// --- Навигация ---
	protected.HandleFunc("/me/navigation", getNavigation.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis client: %v", err)
	}

	log.Info("Server stopped gracefully")
}
