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

	cancelReservationHandler "github.com/dreamstay-app/DS-BookingGateway/internal/api/handlers/cancel_reservation"
	checkinHandler "github.com/dreamstay-app/DS-BookingGateway/internal/api/handlers/checkin"
	checkoutHandler "github.com/dreamstay-app/DS-BookingGateway/internal/api/handlers/checkout"
	createReservationHandler "github.com/dreamstay-app/DS-BookingGateway/internal/api/handlers/create_reservation"
	createSessionHandler "github.com/dreamstay-app/DS-BookingGateway/internal/api/handlers/create_session"
	getReservationHandler "github.com/dreamstay-app/DS-BookingGateway/internal/api/handlers/get_reservation"
	listStaysHandler "github.com/dreamstay-app/DS-BookingGateway/internal/api/handlers/list_stays"
	modifyReservationHandler "github.com/dreamstay-app/DS-BookingGateway/internal/api/handlers/modify_reservation"
	payReservationHandler "github.com/dreamstay-app/DS-BookingGateway/internal/api/handlers/pay_reservation"
	pricePreviewHandler "github.com/dreamstay-app/DS-BookingGateway/internal/api/handlers/price_preview"
	searchHotelsHandler "github.com/dreamstay-app/DS-BookingGateway/internal/api/handlers/search_hotels"
	searchReservationHandler "github.com/dreamstay-app/DS-BookingGateway/internal/api/handlers/search_reservation"
	"github.com/dreamstay-app/DS-BookingGateway/internal/api/middleware"
	"github.com/dreamstay-app/DS-BookingGateway/internal/config"
	searchCache "github.com/dreamstay-app/DS-BookingGateway/internal/infra/cache/search"
	staysRepo "github.com/dreamstay-app/DS-BookingGateway/internal/infra/storage/stays"
	"github.com/dreamstay-app/DS-BookingGateway/internal/integrations/hotelbackend"
	reservationsService "github.com/dreamstay-app/DS-BookingGateway/internal/service/reservations"
	"github.com/dreamstay-app/DS-BookingGateway/internal/service/session"
	createReservationUC "github.com/dreamstay-app/DS-BookingGateway/internal/usecase/create_reservation"
	modifyReservationUC "github.com/dreamstay-app/DS-BookingGateway/internal/usecase/modify_reservation"
	pricePreviewUC "github.com/dreamstay-app/DS-BookingGateway/internal/usecase/price_preview"
	searchHotelsUC "github.com/dreamstay-app/DS-BookingGateway/internal/usecase/search_hotels"
	"github.com/dreamstay-app/DS-BookingGateway/pkg/logger"
	"github.com/dreamstay-app/DS-BookingGateway/pkg/metrics"
)

func main() {
	// Cargamos la configuración
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Inicializamos el logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting DS-BookingGateway...")
	log.Info("Configuration loaded from config.toml")

	// Métricas (si están habilitadas)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Base de datos para el registro de estadías
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

	// Cliente del backend hotelero
	var backendMetrics hotelbackend.MetricsCollector
	if metricsCollector != nil {
		backendMetrics = metricsCollector
	}
	backendClient := hotelbackend.NewClient(
		cfg.Backend.URL,
		time.Duration(cfg.Backend.Timeout)*time.Second,
		log,
		backendMetrics,
	)
	log.Info("Hotel backend client initialized (url=%s timeout=%ds)", cfg.Backend.URL, cfg.Backend.Timeout)

	// Cache de búsquedas sobre Redis (opcional)
	var cache searchHotelsUC.SearchCache
	if cfg.Cache.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}

		var cacheMetrics searchCache.MetricsCollector
		if metricsCollector != nil {
			cacheMetrics = metricsCollector
		}
		cache = searchCache.NewCache(redisClient, time.Duration(cfg.Cache.TTLSeconds)*time.Second, log, cacheMetrics)
		log.Info("Search cache enabled (addr=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTLSeconds)
	}

	// Sesiones de huéspedes en memoria
	var sessionsGauge session.SessionsGauge
	if metricsCollector != nil {
		sessionsGauge = metricsCollector.ActiveSessions
	}
	sessionManager := session.NewManager(time.Duration(cfg.Sessions.TTLMinutes)*time.Minute, log, sessionsGauge)

	purgeDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sessionManager.PurgeExpired()
			case <-purgeDone:
				return
			}
		}
	}()

	// Repositorios, servicios y use cases
	staysRepository := staysRepo.NewRepository(db)

	reservationsSvc := reservationsService.NewService(backendClient, staysRepository, realTime{}, log)

	searchHotelsUseCase := searchHotelsUC.NewUseCase(backendClient, cache, log)
	createReservationUseCase := createReservationUC.NewUseCase(backendClient, log)
	pricePreviewUseCase := pricePreviewUC.NewUseCase(backendClient, log)
	modifyReservationUseCase := modifyReservationUC.NewUseCase(backendClient, log)

	// Handlers
	createSession := createSessionHandler.NewHandler(sessionManager, log)
	searchHotels := searchHotelsHandler.NewHandler(searchHotelsUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(log)
	searchReservation := searchReservationHandler.NewHandler(reservationsSvc, log)
	pricePreview := pricePreviewHandler.NewHandler(pricePreviewUseCase, log)
	payReservation := payReservationHandler.NewHandler(reservationsSvc, log)
	modifyReservation := modifyReservationHandler.NewHandler(modifyReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	checkin := checkinHandler.NewHandler(reservationsSvc, log)
	checkout := checkoutHandler.NewHandler(reservationsSvc, log)
	listStays := listStaysHandler.NewHandler(reservationsSvc, log)

	// Router
	r := mux.NewRouter()

	if metricsCollector != nil {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (sin sesión)
	// ============================================================

	// Sesiones de huéspedes
	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions", createSession.HandleDelete).Methods(http.MethodDelete)

	// Búsqueda de hoteles
	api.HandleFunc("/hotels/search", searchHotels.Handle).Methods(http.MethodPost)

	// Recepción
	api.HandleFunc("/reception/checkin", checkin.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reception/checkout", checkout.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reception/stays", listStays.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (requieren X-Session-ID)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Session(sessionManager))

	// Reservas
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/search", searchReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/price-preview", pricePreview.Handle).Methods(http.MethodPost)

	// Copia de trabajo de la sesión
	protected.HandleFunc("/reservation", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservation", modifyReservation.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/reservation/pay", payReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservation/cancel", cancelReservation.Handle).Methods(http.MethodPost)

	// Servidor HTTP
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
	close(purgeDone)

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

type realTime struct{}

func (realTime) Now() time.Time { return time.Now() }
