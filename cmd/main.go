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

	advanceStepHandler "github.com/avekla/NSK-BookingFlow/internal/api/handlers/advance_step"
	createFlowHandler "github.com/avekla/NSK-BookingFlow/internal/api/handlers/create_flow"
	getFlowHandler "github.com/avekla/NSK-BookingFlow/internal/api/handlers/get_flow"
	selectSlotHandler "github.com/avekla/NSK-BookingFlow/internal/api/handlers/select_slot"
	stepBackHandler "github.com/avekla/NSK-BookingFlow/internal/api/handlers/step_back"
	submitBookingHandler "github.com/avekla/NSK-BookingFlow/internal/api/handlers/submit_booking"
	updateScheduleHandler "github.com/avekla/NSK-BookingFlow/internal/api/handlers/update_schedule"
	updateStudentsHandler "github.com/avekla/NSK-BookingFlow/internal/api/handlers/update_students"
	"github.com/avekla/NSK-BookingFlow/internal/api/middleware"
	"github.com/avekla/NSK-BookingFlow/internal/config"
	"github.com/avekla/NSK-BookingFlow/internal/flow"
	"github.com/avekla/NSK-BookingFlow/internal/infra/flowstore"
	availabilityServiceClient "github.com/avekla/NSK-BookingFlow/internal/integrations/availabilityservice"
	bookingServiceClient "github.com/avekla/NSK-BookingFlow/internal/integrations/bookingservice"
	courseServiceClient "github.com/avekla/NSK-BookingFlow/internal/integrations/courseservice"
	"github.com/avekla/NSK-BookingFlow/pkg/logger"
	"github.com/avekla/NSK-BookingFlow/pkg/metrics"
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

	log.Info("Starting NSK-BookingFlow...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем интеграционных клиентов
	courseClient := courseServiceClient.NewClient(
		cfg.CourseService.URL,
		time.Duration(cfg.CourseService.Timeout)*time.Second,
		log,
	)
	availabilityClient := availabilityServiceClient.NewClient(
		cfg.AvailabilityService.URL,
		time.Duration(cfg.AvailabilityService.Timeout)*time.Second,
		log,
	)
	bookingClient := bookingServiceClient.NewClient(
		cfg.BookingService.URL,
		time.Duration(cfg.BookingService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (CourseService=%s, AvailabilityService=%s, BookingService=%s)",
		cfg.CourseService.URL, cfg.AvailabilityService.URL, cfg.BookingService.URL)

	// Инициализируем хранилище флоу с фоновой очисткой по TTL
	store := flowstore.NewStore(time.Duration(cfg.Flow.SessionTTLMinutes) * time.Minute)
	stopEvictionCh := make(chan struct{})
	store.StartEviction(
		time.Duration(cfg.Flow.SweepIntervalSeconds)*time.Second,
		stopEvictionCh,
		func(evicted int) {
			log.Info("Evicted %d expired flow(s)", evicted)
			for i := 0; i < evicted; i++ {
				metricsCollector.RecordFlowEvicted()
			}
		},
	)
	log.Info("Flow store initialized (ttl=%dm, sweep=%ds)",
		cfg.Flow.SessionTTLMinutes, cfg.Flow.SweepIntervalSeconds)

	// Инициализируем менеджер флоу
	manager := flow.NewManager(
		store,
		courseClient,
		availabilityClient,
		bookingClient,
		time.Duration(cfg.Flow.ProbeTimeoutSeconds)*time.Second,
		log,
		metricsCollector,
	)

	// Инициализируем handlers
	createFlow := createFlowHandler.NewHandler(manager, log)
	getFlow := getFlowHandler.NewHandler(manager, log)
	updateSchedule := updateScheduleHandler.NewHandler(manager, log)
	selectSlot := selectSlotHandler.NewHandler(manager, log)
	updateStudents := updateStudentsHandler.NewHandler(manager, log)
	advanceStep := advanceStepHandler.NewHandler(manager, log)
	stepBack := stepBackHandler.NewHandler(manager, log)
	submitBooking := submitBookingHandler.NewHandler(manager, log)

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

	// Создание нового флоу бронирования
	api.HandleFunc("/flows", createFlow.Handle).Methods(http.MethodPost)

	// Текущее состояние флоу
	api.HandleFunc("/flows/{flowId}", getFlow.Handle).Methods(http.MethodGet)

	// Дата, локация и размер группы
	api.HandleFunc("/flows/{flowId}/schedule", updateSchedule.Handle).Methods(http.MethodPatch)

	// Выбор тайм-слота
	api.HandleFunc("/flows/{flowId}/slot", selectSlot.Handle).Methods(http.MethodPost)

	// Имена студентов и заметки
	api.HandleFunc("/flows/{flowId}/students", updateStudents.Handle).Methods(http.MethodPatch)

	// Навигация по шагам
	api.HandleFunc("/flows/{flowId}/advance", advanceStep.Handle).Methods(http.MethodPost)
	api.HandleFunc("/flows/{flowId}/back", stepBack.Handle).Methods(http.MethodPost)

	// Отправка бронирования
	api.HandleFunc("/flows/{flowId}/submit", submitBooking.Handle).Methods(http.MethodPost)

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

	// Останавливаем фоновую очистку флоу
	close(stopEvictionCh)

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
