package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-HotelBookingService/internal/api"
	cancelBookingHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/create_booking"
	createRoomTypeHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/create_room_type"
	getBookingHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_booking"
	getHotelHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_hotel"
	getRoomTypeBookingsHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_room_type_bookings"
	getUserBookingsHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_user_bookings"
	healthHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/health"
	listHotelsHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/list_hotels"
	listRoomTypesHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/list_room_types"
	updateRoomTypeHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/update_room_type"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/booking"
	hotelRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/hotel"
	roomTypeRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/roomtype"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-HotelBookingService/internal/service/bookings"
	hotelsService "github.com/m04kA/SMC-HotelBookingService/internal/service/hotels"
	roomTypesService "github.com/m04kA/SMC-HotelBookingService/internal/service/roomtypes"
	createBookingUC "github.com/m04kA/SMC-HotelBookingService/internal/usecase/create_booking"
	listRoomTypesUC "github.com/m04kA/SMC-HotelBookingService/internal/usecase/list_room_types"
	"github.com/m04kA/SMC-HotelBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelBookingService/pkg/logger"
	"github.com/m04kA/SMC-HotelBookingService/pkg/metrics"
	"github.com/m04kA/SMC-HotelBookingService/pkg/txmanager"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), *configPath)
		},
	}
}

func serve(ctx context.Context, configPath string) error {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting %s %s...", serviceName, serviceVersion)
	log.Info("Configuration loaded from %s", configPath)

	guard, err := availability.ParseGuard(cfg.Booking.AdmissionGuard)
	if err != nil {
		return err
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})
	defer close(stopMetricsCh)

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := openDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info("Successfully connected to database (driver=%s, host=%s, port=%d, db=%s)",
		cfg.Database.Driver, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// С nil-коллектором обертка не пишет метрики
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txManager := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	roomTypeRepository := roomTypeRepo.NewRepository(wrappedDB)
	hotelRepository := hotelRepo.NewRepository(wrappedDB)

	// Движок доступности
	var observer availability.AdmissionObserver
	if metricsCollector != nil {
		observer = metricsCollector
	}
	engine := availability.NewEngine(bookingRepository, roomTypeRepository, txManager, guard, observer,
		log.With("component", "availability"))
	log.Info("Availability engine initialized (admission_guard=%s)", engine.Guard())
	if engine.Guard() == availability.GuardNone {
		log.Warn("Admission guard is disabled: concurrent bookings may exceed room stock")
	}

	// Сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, roomTypeRepository, txManager, log)
	roomTypeSvc := roomTypesService.NewService(roomTypeRepository, engine, log)
	hotelSvc := hotelsService.NewService(hotelRepository, txManager, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(engine, log)
	listRoomTypesUseCase := listRoomTypesUC.NewUseCase(roomTypeRepository, engine, cfg.Booking.PreviewConcurrency, log)

	// Handlers
	h := &api.Handlers{
		Health:              healthHandler.NewHandler(serviceName, serviceVersion),
		ListHotels:          listHotelsHandler.NewHandler(hotelSvc, log),
		GetHotel:            getHotelHandler.NewHandler(hotelSvc, log),
		CreateBooking:       createBookingHandler.NewHandler(createBookingUseCase, log),
		GetUserBookings:     getUserBookingsHandler.NewHandler(bookingSvc, log),
		GetBooking:          getBookingHandler.NewHandler(bookingSvc, log),
		CancelBooking:       cancelBookingHandler.NewHandler(bookingSvc, log),
		ListRoomTypes:       listRoomTypesHandler.NewHandler(listRoomTypesUseCase, log),
		CreateRoomType:      createRoomTypeHandler.NewHandler(roomTypeSvc, log),
		UpdateRoomType:      updateRoomTypeHandler.NewHandler(roomTypeSvc, log),
		GetRoomTypeBookings: getRoomTypeBookingsHandler.NewHandler(bookingSvc, log),
	}

	router := api.NewRouter(h, api.RouterOptions{
		Auth:        middleware.NewAuthenticator(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.LeewaySeconds)*time.Second, log),
		Logger:      log,
		Metrics:     metricsCollector,
		MetricsPath: cfg.Metrics.Path,
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	}

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
	return nil
}
