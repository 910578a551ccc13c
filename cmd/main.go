package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	applyPromoHandler "github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers/apply_promo"
	createSessionHandler "github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers/create_session"
	getSnapshotHandler "github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers/get_snapshot"
	navigateHandler "github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers/navigate"
	selectServiceHandler "github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers/select_service"
	setCustomerFieldHandler "github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers/set_customer_field"
	setDetailsHandler "github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers/set_details"
	setLocationHandler "github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers/set_location"
	setScheduleHandler "github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers/set_schedule"
	submitBookingHandler "github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers/submit_booking"
	toggleExtraHandler "github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers/toggle_extra"
	"github.com/m04kA/SMC-ConfiguratorService/internal/api/middleware"
	"github.com/m04kA/SMC-ConfiguratorService/internal/availability"
	"github.com/m04kA/SMC-ConfiguratorService/internal/catalog"
	"github.com/m04kA/SMC-ConfiguratorService/internal/config"
	bookingAPIClient "github.com/m04kA/SMC-ConfiguratorService/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-ConfiguratorService/internal/service/sessions"
	"github.com/m04kA/SMC-ConfiguratorService/internal/wizard"
	"github.com/m04kA/SMC-ConfiguratorService/pkg/logger"
	"github.com/m04kA/SMC-ConfiguratorService/pkg/metrics"
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

	log.Info("Starting SMC-ConfiguratorService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Учет исходящих запросов к бэкенду по операциям (если метрики включены)
	var backendObserver bookingAPIClient.Observer
	if cfg.Metrics.Enabled {
		backendObserver = func(operation, outcome string) {
			metricsCollector.BackendRequests.WithLabelValues(operation, outcome).Inc()
		}
	}

	// Клиент booking-бэкенда: каталог, надбавки, доступность, создание брони
	bookingClient := bookingAPIClient.NewClient(
		cfg.BookingAPI.URL,
		time.Duration(cfg.BookingAPI.Timeout)*time.Second,
		log,
		backendObserver,
	)
	log.Info("BookingAPI client initialized (url=%s, timeout=%ds)",
		cfg.BookingAPI.URL, cfg.BookingAPI.Timeout)

	promos := wizard.StaticPromos(cfg.Promos)
	log.Info("Loaded %d promo codes from config", len(cfg.Promos))

	// Хук учета отброшенных устаревших ответов (zip/slots)
	var staleHook func(kind string)
	if cfg.Metrics.Enabled {
		staleHook = func(kind string) {
			metricsCollector.StaleResponses.WithLabelValues(kind).Inc()
		}
	}

	// Фабрика сессий: каждая сессия получает собственный кэш каталога
	// и загрузчик доступности, привязанные к ее widget-токену
	factory := func(id string, token string) *wizard.Session {
		return wizard.NewSession(wizard.Config{
			ID:        id,
			Token:     token,
			Catalog:   catalog.NewCache(bookingClient, token, log),
			Slots:     availability.NewFetcher(bookingClient, token, log),
			Zip:       bookingClient,
			Submitter: bookingClient,
			Promos:    promos,
			Logger:    log,
			StaleHook: staleHook,
		})
	}

	var gauge sessions.Gauge
	if cfg.Metrics.Enabled {
		gauge = metricsCollector.ActiveSessions
	}

	sessionManager := sessions.NewManager(
		factory,
		time.Duration(cfg.Sessions.TTLMinutes)*time.Minute,
		gauge,
		log,
	)
	sessionManager.StartCleanup(time.Duration(cfg.Sessions.CleanupIntervalMinutes) * time.Minute)
	defer sessionManager.Stop()
	log.Info("Session registry started (ttl=%dm, cleanup every %dm)",
		cfg.Sessions.TTLMinutes, cfg.Sessions.CleanupIntervalMinutes)

	// Инициализируем handlers
	createSession := createSessionHandler.NewHandler(sessionManager, log)
	getSnapshot := getSnapshotHandler.NewHandler(sessionManager, log)
	setLocation := setLocationHandler.NewHandler(sessionManager, log)
	selectService := selectServiceHandler.NewHandler(sessionManager, log)
	toggleExtra := toggleExtraHandler.NewHandler(sessionManager, log)
	setDetails := setDetailsHandler.NewHandler(sessionManager, log)
	setSchedule := setScheduleHandler.NewHandler(sessionManager, log)
	setCustomerField := setCustomerFieldHandler.NewHandler(sessionManager, log)
	applyPromo := applyPromoHandler.NewHandler(sessionManager, log)
	navigate := navigateHandler.NewHandler(sessionManager, log)
	submitBooking := submitBookingHandler.NewHandler(sessionManager, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix: все маршруты требуют widget-токен
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// Rate limiter публичного API виджета (если включен)
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		api.Use(limiter.Middleware)
		log.Info("Rate limiter enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// Жизненный цикл сессии
	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}", getSnapshot.Handle).Methods(http.MethodGet)

	// Команды мастера
	api.HandleFunc("/sessions/{sessionId}/location", setLocation.Handle).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/service", selectService.Handle).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/extras/{extraId}", toggleExtra.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/details", setDetails.Handle).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/schedule", setSchedule.Handle).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/customer", setCustomerField.Handle).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/promo", applyPromo.Handle).Methods(http.MethodPost)

	// Навигация и отправка
	api.HandleFunc("/sessions/{sessionId}/advance", navigate.HandleAdvance).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/retreat", navigate.HandleRetreat).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/submit", submitBooking.Handle).Methods(http.MethodPost)

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
