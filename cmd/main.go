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

	cancelBookingHandler "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/api/handlers/create_booking"
	getAttendeeBookingsHandler "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/api/handlers/get_attendee_bookings"
	getAvailabilityHandler "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/api/handlers/get_availability"
	getBookingHandler "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/api/handlers/get_booking"
	getBookingAuditHandler "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/api/handlers/get_booking_audit"
	getPolicyHandler "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/api/handlers/get_policy"
	getYachtBookingsHandler "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/api/handlers/get_yacht_bookings"
	rescheduleBookingHandler "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/api/handlers/reschedule_booking"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/api/middleware"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/config"
	auditRepo "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/infra/storage/audit"
	reservationRepo "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/infra/storage/reservation"
	fleetServiceClient "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/integrations/fleetservice"
	identityServiceClient "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/integrations/identityservice"
	reservationsService "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/service/reservations"
	cancelBookingUC "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/usecase/cancel_booking"
	createBookingUC "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/usecase/create_booking"
	getAvailabilityUC "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/usecase/get_availability"
	rescheduleBookingUC "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/usecase/reschedule_booking"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/pkg/dbmetrics"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/pkg/logger"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/pkg/metrics"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/pkg/simpletxmanager"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/pkg/txmanager"
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

	log.Info("Starting PYA-CharterBookingService...")
	log.Info("Configuration loaded from config.toml")

	policy := cfg.Policy.ToDomain()
	log.Info("Charter policy: window=%d-%d, durations=%d-%dh, buffer=%dh",
		policy.DayStartHour, policy.DayEndHour,
		policy.MinDurationHours, policy.MaxDurationHours,
		policy.InterBookingBufferHours)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем интеграционных клиентов
	fleetClient := fleetServiceClient.NewClient(
		cfg.FleetService.URL,
		time.Duration(cfg.FleetService.Timeout)*time.Second,
		log,
	)
	identityClient := identityServiceClient.NewClient(
		cfg.IdentityService.URL,
		time.Duration(cfg.IdentityService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (FleetService=%s timeout=%ds, IdentityService=%s timeout=%ds)",
		cfg.FleetService.URL, cfg.FleetService.Timeout, cfg.IdentityService.URL, cfg.IdentityService.Timeout)

	// Инициализируем репозитории и транзакционный менеджер
	// (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		auditRepository       *auditRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		auditRepository = auditRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		auditRepository = auditRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		auditRepository,
		fleetClient,
		identityClient,
		log,
	)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		reservationRepository,
		fleetClient,
		policy,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		reservationRepository,
		auditRepository,
		fleetClient,
		txMgr,
		policy,
		log,
	)

	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		reservationRepository,
		auditRepository,
		fleetClient,
		identityClient,
		txMgr,
		policy,
		log,
	)

	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		reservationRepository,
		auditRepository,
		identityClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getPolicy := getPolicyHandler.NewHandler(policy, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(reservationsSvc, log)
	getBookingAudit := getBookingAuditHandler.NewHandler(reservationsSvc, log)
	getAttendeeBookings := getAttendeeBookingsHandler.NewHandler(reservationsSvc, log)
	getYachtBookings := getYachtBookingsHandler.NewHandler(reservationsSvc, log)

	// Rate limiter на создание бронирований
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступность яхты на календарный месяц
	api.HandleFunc("/yachts/{slug}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Публичная политика расписания
	api.HandleFunc("/policy", getPolicy.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-Email header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	// Создание бронирования (с rate limit'ом на ключ email+IP)
	protected.Handle("/bookings",
		rateLimiter.Limit(http.HandlerFunc(createBooking.Handle))).Methods(http.MethodPost)

	// Получение бронирования по UID
	protected.HandleFunc("/bookings/{uid}", getBooking.Handle).Methods(http.MethodGet)

	// История мутаций бронирования (только администратор)
	protected.HandleFunc("/bookings/{uid}/audit", getBookingAudit.Handle).Methods(http.MethodGet)

	// Перенос бронирования (только администратор)
	protected.HandleFunc("/bookings/{uid}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)

	// Отмена бронирования (владелец или администратор)
	protected.HandleFunc("/bookings/{uid}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований участника
	protected.HandleFunc("/attendees/{email}/bookings", getAttendeeBookings.Handle).Methods(http.MethodGet)

	// Бронирования яхты за период (только администратор)
	protected.HandleFunc("/yachts/{slug}/bookings", getYachtBookings.Handle).Methods(http.MethodGet)

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
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
