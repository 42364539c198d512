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

	checkStayedCustomerHandler "github.com/petservice-marketplace/PSM-BookingService/internal/api/handlers/check_stayed_customer"
	createAppointmentHandler "github.com/petservice-marketplace/PSM-BookingService/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/petservice-marketplace/PSM-BookingService/internal/api/handlers/delete_appointment"
	getCustomerAppointmentsHandler "github.com/petservice-marketplace/PSM-BookingService/internal/api/handlers/get_customer_appointments"
	getGroomerAppointmentsHandler "github.com/petservice-marketplace/PSM-BookingService/internal/api/handlers/get_groomer_appointments"
	getMonthlyAppointmentsHandler "github.com/petservice-marketplace/PSM-BookingService/internal/api/handlers/get_monthly_appointments"
	getRemainingCapacityHandler "github.com/petservice-marketplace/PSM-BookingService/internal/api/handlers/get_remaining_capacity"
	getTransactionRefHandler "github.com/petservice-marketplace/PSM-BookingService/internal/api/handlers/get_transaction_ref"
	reserveCapacityHandler "github.com/petservice-marketplace/PSM-BookingService/internal/api/handlers/reserve_capacity"
	updateDatesHandler "github.com/petservice-marketplace/PSM-BookingService/internal/api/handlers/update_dates"
	updateStatusHandler "github.com/petservice-marketplace/PSM-BookingService/internal/api/handlers/update_status"
	"github.com/petservice-marketplace/PSM-BookingService/internal/api/middleware"
	"github.com/petservice-marketplace/PSM-BookingService/internal/config"
	appointmentRepo "github.com/petservice-marketplace/PSM-BookingService/internal/infra/storage/appointment"
	capacityRepo "github.com/petservice-marketplace/PSM-BookingService/internal/infra/storage/capacity"
	customerServiceClient "github.com/petservice-marketplace/PSM-BookingService/internal/integrations/customerservice"
	"github.com/petservice-marketplace/PSM-BookingService/internal/integrations/eventbus"
	groomerServiceClient "github.com/petservice-marketplace/PSM-BookingService/internal/integrations/groomerservice"
	appointmentsService "github.com/petservice-marketplace/PSM-BookingService/internal/service/appointments"
	enrichmentService "github.com/petservice-marketplace/PSM-BookingService/internal/service/enrichment"
	identityService "github.com/petservice-marketplace/PSM-BookingService/internal/service/identity"
	createAppointmentUC "github.com/petservice-marketplace/PSM-BookingService/internal/usecase/create_appointment"
	getRemainingCapacityUC "github.com/petservice-marketplace/PSM-BookingService/internal/usecase/get_remaining_capacity"
	reserveCapacityUC "github.com/petservice-marketplace/PSM-BookingService/internal/usecase/reserve_capacity"
	"github.com/petservice-marketplace/PSM-BookingService/pkg/dbmetrics"
	"github.com/petservice-marketplace/PSM-BookingService/pkg/logger"
	"github.com/petservice-marketplace/PSM-BookingService/pkg/metrics"
	"github.com/petservice-marketplace/PSM-BookingService/pkg/simpletxmanager"
	"github.com/petservice-marketplace/PSM-BookingService/pkg/txmanager"
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

	log.Info("Starting PSM-BookingService...")
	log.Info("Configuration loaded from config.toml")

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
	customerClient := customerServiceClient.NewClient(
		cfg.CustomerService.URL,
		time.Duration(cfg.CustomerService.Timeout)*time.Second,
		log,
	)
	groomerClient := groomerServiceClient.NewClient(
		cfg.GroomerService.URL,
		time.Duration(cfg.GroomerService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (CustomerService=%s timeout=%ds, GroomerService=%s timeout=%ds)",
		cfg.CustomerService.URL, cfg.CustomerService.Timeout, cfg.GroomerService.URL, cfg.GroomerService.Timeout)

	// Подключаемся к шине событий (если включена)
	var eventPublisher *eventbus.Publisher
	if cfg.EventBus.Enabled {
		eventPublisher, err = eventbus.NewPublisher(cfg.EventBus.URL, cfg.EventBus.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to event bus: %v", err)
		}
		defer eventPublisher.Close()
		log.Info("Event bus connected (exchange=%s, routing_key=%s)", cfg.EventBus.Exchange, eventbus.RoutingKey)
	} else {
		log.Warn("Event bus disabled, lifecycle events will not be published")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		capacityRepository    *capacityRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		capacityRepository = capacityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		capacityRepository = capacityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	identitySvc := identityService.NewService(customerClient, groomerClient, log)
	enrichmentSvc := enrichmentService.NewService(groomerClient, log)

	var eventsForServices appointmentsService.EventPublisher
	if eventPublisher != nil {
		eventsForServices = eventPublisher
	}

	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		identitySvc,
		enrichmentSvc,
		eventsForServices,
		log,
	)

	// Инициализируем use cases
	var eventsForUseCase createAppointmentUC.EventPublisher
	if eventPublisher != nil {
		eventsForUseCase = eventPublisher
	}

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		capacityRepository,
		identitySvc,
		eventsForUseCase,
		txMgr,
		log,
	)

	reserveCapacityUseCase := reserveCapacityUC.NewUseCase(
		capacityRepository,
		groomerClient,
		txMgr,
		log,
	)

	getRemainingCapacityUseCase := getRemainingCapacityUC.NewUseCase(
		capacityRepository,
		groomerClient,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getTransactionRef := getTransactionRefHandler.NewHandler(appointmentsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateStatus := updateStatusHandler.NewHandler(appointmentsSvc, log)
	updateDates := updateDatesHandler.NewHandler(appointmentsSvc, log)
	getGroomerAppointments := getGroomerAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getMonthlyAppointments := getMonthlyAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getCustomerAppointments := getCustomerAppointmentsHandler.NewHandler(appointmentsSvc, log)
	checkStayedCustomer := checkStayedCustomerHandler.NewHandler(appointmentsSvc, log)
	reserveCapacity := reserveCapacityHandler.NewHandler(reserveCapacityUseCase, log)
	getRemainingCapacity := getRemainingCapacityHandler.NewHandler(getRemainingCapacityUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Записи ---
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/stayed", checkStayedCustomer.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/appointments/{appointmentId}/transaction", getTransactionRef.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}/status", updateStatus.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{appointmentId}/dates", updateDates.Handle).Methods(http.MethodPost)

	// --- Записи грумера и клиента ---
	api.HandleFunc("/groomers/{groomerId}/appointments", getGroomerAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/groomers/{groomerId}/appointments/month", getMonthlyAppointments.Handle).Methods(http.MethodPost)
	api.HandleFunc("/customers/{customerId}/appointments", getCustomerAppointments.Handle).Methods(http.MethodGet)

	// --- Вместимость ---
	api.HandleFunc("/capacity/check", reserveCapacity.Handle).Methods(http.MethodPost)
	api.HandleFunc("/groomers/{groomerId}/capacity", getRemainingCapacity.Handle).Methods(http.MethodGet)

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
