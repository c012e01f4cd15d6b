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

	cancelBookingHandler "github.com/m04kA/SMC-GymBookingService/internal/api/handlers/cancel_booking"
	closeBookingHandler "github.com/m04kA/SMC-GymBookingService/internal/api/handlers/close_booking"
	createBookingHandler "github.com/m04kA/SMC-GymBookingService/internal/api/handlers/create_booking"
	createExtraordinaryHandler "github.com/m04kA/SMC-GymBookingService/internal/api/handlers/create_extraordinary_event"
	createRecurringHandler "github.com/m04kA/SMC-GymBookingService/internal/api/handlers/create_recurring_event"
	getBookingHandler "github.com/m04kA/SMC-GymBookingService/internal/api/handlers/get_booking"
	getConfirmationsHandler "github.com/m04kA/SMC-GymBookingService/internal/api/handlers/get_confirmations"
	getCourtBookingsHandler "github.com/m04kA/SMC-GymBookingService/internal/api/handlers/get_court_bookings"
	getUserBookingsHandler "github.com/m04kA/SMC-GymBookingService/internal/api/handlers/get_user_bookings"
	getWeekCalendarHandler "github.com/m04kA/SMC-GymBookingService/internal/api/handlers/get_week_calendar"
	listBookingsHandler "github.com/m04kA/SMC-GymBookingService/internal/api/handlers/list_bookings"
	loginHandler "github.com/m04kA/SMC-GymBookingService/internal/api/handlers/login"
	manageEventsHandler "github.com/m04kA/SMC-GymBookingService/internal/api/handlers/manage_events"
	manageFacilitiesHandler "github.com/m04kA/SMC-GymBookingService/internal/api/handlers/manage_facilities"
	manageInventoryHandler "github.com/m04kA/SMC-GymBookingService/internal/api/handlers/manage_inventory"
	manageUsersHandler "github.com/m04kA/SMC-GymBookingService/internal/api/handlers/manage_users"
	usageReportHandler "github.com/m04kA/SMC-GymBookingService/internal/api/handlers/usage_report"
	"github.com/m04kA/SMC-GymBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-GymBookingService/internal/config"
	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	"github.com/m04kA/SMC-GymBookingService/internal/infra/cache/calendar"
	bookingRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/booking"
	eventRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/event"
	facilityRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/facility"
	inventoryRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/inventory"
	userRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-GymBookingService/internal/integrations/eventbus"
	authService "github.com/m04kA/SMC-GymBookingService/internal/service/auth"
	bookingsService "github.com/m04kA/SMC-GymBookingService/internal/service/bookings"
	eventsService "github.com/m04kA/SMC-GymBookingService/internal/service/events"
	facilitiesService "github.com/m04kA/SMC-GymBookingService/internal/service/facilities"
	inventoryService "github.com/m04kA/SMC-GymBookingService/internal/service/inventory"
	"github.com/m04kA/SMC-GymBookingService/internal/service/schedule"
	usersService "github.com/m04kA/SMC-GymBookingService/internal/service/users"
	createBookingUC "github.com/m04kA/SMC-GymBookingService/internal/usecase/create_booking"
	createExtraordinaryUC "github.com/m04kA/SMC-GymBookingService/internal/usecase/create_extraordinary_event"
	createRecurringUC "github.com/m04kA/SMC-GymBookingService/internal/usecase/create_recurring_event"
	getWeekCalendarUC "github.com/m04kA/SMC-GymBookingService/internal/usecase/get_week_calendar"
	"github.com/m04kA/SMC-GymBookingService/pkg/auth"
	"github.com/m04kA/SMC-GymBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GymBookingService/pkg/logger"
	"github.com/m04kA/SMC-GymBookingService/pkg/metrics"
	"github.com/m04kA/SMC-GymBookingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-GymBookingService/pkg/txmanager"
)

// calendarCache общий интерфейс redis кэша и заглушки
type calendarCache interface {
	Get(ctx context.Context, court domain.CourtRef, weekStart time.Time) (*domain.WeekCalendar, int64, bool)
	Set(ctx context.Context, cal *domain.WeekCalendar, version int64)
	Invalidate(ctx context.Context, court domain.CourtRef) error
}

// eventPublisher общий интерфейс RabbitMQ издателя и заглушки
type eventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
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

	log.Info("Starting SMC-GymBookingService...")
	log.Info("Configuration loaded from config.toml")

	location, err := cfg.Calendar.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Calendar.Timezone, err)
	}

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

	// Репозитории работают через обертку с метриками или напрямую через *sql.DB
	var (
		executor  dbmetrics.DBExecutor
		txManager *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		executor = wrappedDB
		txManager = txmanager.NewTransactionManager(wrappedDB)
	} else {
		executor = db
		txManager = simpletxmanager.NewTransactionManager(db)
	}

	bookingRepository := bookingRepo.NewRepository(executor)
	eventRepository := eventRepo.NewRepository(executor)
	facilityRepository := facilityRepo.NewRepository(executor)
	userRepository := userRepo.NewRepository(executor)
	inventoryRepository := inventoryRepo.NewRepository(executor)

	// Кэш календаря (Redis). Недоступный Redis не мешает старту
	var cache calendarCache = calendar.Disabled{}
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancelPing()

		if err != nil {
			log.Warn("Redis is unavailable at %s, calendar cache disabled: %v", cfg.Redis.Addr, err)
		} else {
			cache = calendar.New(
				redisClient,
				time.Duration(cfg.Redis.CalendarTTL)*time.Second,
				metricsCollector,
				log,
			)
			log.Info("Calendar cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.CalendarTTL)
		}
	}

	// Публикация доменных событий (RabbitMQ)
	var publisher eventPublisher = eventbus.Noop{}
	if cfg.RabbitMQ.Enabled {
		p, err := eventbus.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		publisher = p
		log.Info("Domain events are published to exchange %q", cfg.RabbitMQ.Exchange)
	}
	defer publisher.Close()

	issuer := auth.NewIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTL)*time.Minute)

	// Расписание
	checker := schedule.NewChecker(bookingRepository, eventRepository, location, metricsCollector, log)
	builder := schedule.NewCalendarBuilder(cfg.Calendar.StartHour, cfg.Calendar.EndHour, log)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, cache, publisher, txManager, location, log)
	eventSvc := eventsService.NewService(eventRepository, cache, location, log)
	facilitySvc := facilitiesService.NewService(facilityRepository, txManager, log)
	inventorySvc := inventoryService.NewService(inventoryRepository, log)
	userSvc := usersService.NewService(userRepository, usersService.BcryptHasher{}, log)
	authSvc := authService.NewService(userRepository, issuer, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		facilityRepository,
		userRepository,
		checker,
		cache,
		publisher,
		txManager,
		location,
		log,
	)

	createExtraordinaryUseCase := createExtraordinaryUC.NewUseCase(
		eventRepository,
		facilityRepository,
		checker,
		cache,
		publisher,
		txManager,
		location,
		log,
	)

	createRecurringUseCase := createRecurringUC.NewUseCase(
		eventRepository,
		facilityRepository,
		checker,
		cache,
		publisher,
		txManager,
		location,
		log,
	)

	getWeekCalendarUseCase := getWeekCalendarUC.NewUseCase(
		facilityRepository,
		bookingRepository,
		eventRepository,
		builder,
		cache,
		location,
		log,
	)

	// Инициализируем handlers
	login := loginHandler.NewHandler(authSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getWeekCalendar := getWeekCalendarHandler.NewHandler(getWeekCalendarUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	closeBooking := closeBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getConfirmations := getConfirmationsHandler.NewHandler(bookingSvc, log)
	getCourtBookings := getCourtBookingsHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	usageReport := usageReportHandler.NewHandler(bookingSvc, log)
	createExtraordinary := createExtraordinaryHandler.NewHandler(createExtraordinaryUseCase, log)
	createRecurring := createRecurringHandler.NewHandler(createRecurringUseCase, log)
	manageEvents := manageEventsHandler.NewHandler(eventSvc, log)
	manageUsers := manageUsersHandler.NewHandler(userSvc, log)
	manageFacilities := manageFacilitiesHandler.NewHandler(facilitySvc, log)
	manageInventory := manageInventoryHandler.NewHandler(inventorySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/gyms", manageFacilities.ListGyms).Methods(http.MethodGet)
	api.HandleFunc("/gyms/{gymId}/courts", manageFacilities.ListCourts).Methods(http.MethodGet)

	// Недельный календарь корта
	api.HandleFunc("/gyms/{gymId}/courts/{courtNumber}/calendar",
		getWeekCalendar.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(issuer, log))

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/on-behalf", createBooking.HandleOnBehalf).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/confirmations", getConfirmations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/complete", closeBooking.HandleComplete).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/no-show", closeBooking.HandleNoShow).Methods(http.MethodPatch)

	// История бронирований текущего пользователя
	protected.HandleFunc("/users/me/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Поиск пользователей для бронирования от их имени
	protected.HandleFunc("/users/search", manageUsers.Search).Methods(http.MethodGet)

	// Заявка о неисправности
	protected.HandleFunc("/tickets", manageInventory.OpenTicket).Methods(http.MethodPost)

	// ============================================================
	// STAFF ROUTES (employee, admin)
	// ============================================================

	staff := protected.PathPrefix("").Subrouter()
	staff.Use(middleware.RequireRoles(domain.RoleEmployee, domain.RoleAdmin))

	staff.HandleFunc("/gyms/{gymId}/courts/{courtNumber}/bookings",
		getCourtBookings.Handle).Methods(http.MethodGet)

	// --- Мероприятия ---
	staff.HandleFunc("/events/extraordinary", createExtraordinary.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/events/extraordinary", manageEvents.ListExtraordinary).Methods(http.MethodGet)
	staff.HandleFunc("/events/extraordinary/{id}", manageEvents.DeleteExtraordinary).Methods(http.MethodDelete)
	staff.HandleFunc("/events/recurring", createRecurring.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/events/recurring", manageEvents.ListRecurring).Methods(http.MethodGet)
	staff.HandleFunc("/events/recurring/{id}", manageEvents.DeleteRecurring).Methods(http.MethodDelete)

	staff.HandleFunc("/reports/usage", usageReport.Handle).Methods(http.MethodGet)

	// --- Инвентарь ---
	staff.HandleFunc("/materials", manageInventory.CreateMaterial).Methods(http.MethodPost)
	staff.HandleFunc("/materials", manageInventory.ListMaterials).Methods(http.MethodGet)
	staff.HandleFunc("/materials/{id}", manageInventory.UpdateMaterial).Methods(http.MethodPut)
	staff.HandleFunc("/materials/{id}", manageInventory.DeleteMaterial).Methods(http.MethodDelete)
	staff.HandleFunc("/tickets", manageInventory.ListTickets).Methods(http.MethodGet)
	staff.HandleFunc("/tickets/{id}/status", manageInventory.ChangeTicketStatus).Methods(http.MethodPatch)

	// ============================================================
	// ADMIN ROUTES
	// ============================================================

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireRoles(domain.RoleAdmin))

	// --- Пользователи ---
	admin.HandleFunc("/users", manageUsers.Create).Methods(http.MethodPost)
	admin.HandleFunc("/users", manageUsers.List).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", manageUsers.Get).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", manageUsers.Update).Methods(http.MethodPut)
	admin.HandleFunc("/users/{id}", manageUsers.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/users/{id}/status", manageUsers.ToggleStatus).Methods(http.MethodPatch)

	// --- Залы и корты ---
	admin.HandleFunc("/gyms", manageFacilities.CreateGym).Methods(http.MethodPost)
	admin.HandleFunc("/gyms/{gymId}", manageFacilities.GetGym).Methods(http.MethodGet)
	admin.HandleFunc("/gyms/{gymId}", manageFacilities.UpdateGym).Methods(http.MethodPut)
	admin.HandleFunc("/gyms/{gymId}", manageFacilities.DeleteGym).Methods(http.MethodDelete)
	admin.HandleFunc("/gyms/{gymId}/courts", manageFacilities.CreateCourt).Methods(http.MethodPost)
	admin.HandleFunc("/gyms/{gymId}/courts/{courtNumber}", manageFacilities.UpdateCourt).Methods(http.MethodPut)
	admin.HandleFunc("/gyms/{gymId}/courts/{courtNumber}", manageFacilities.DeleteCourt).Methods(http.MethodDelete)
	admin.HandleFunc("/gyms/{gymId}/courts/{courtNumber}/status",
		manageFacilities.ChangeCourtStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/gyms/{gymId}/courts/{courtNumber}/sports",
		manageFacilities.SetCourtSports).Methods(http.MethodPut)

	// --- Виды спорта ---
	admin.HandleFunc("/sports", manageFacilities.CreateSport).Methods(http.MethodPost)
	admin.HandleFunc("/sports", manageFacilities.ListSports).Methods(http.MethodGet)
	admin.HandleFunc("/sports/{sportId}", manageFacilities.UpdateSport).Methods(http.MethodPut)
	admin.HandleFunc("/sports/{sportId}", manageFacilities.DeleteSport).Methods(http.MethodDelete)

	// --- Все бронирования ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", listBookings.HandleDelete).Methods(http.MethodDelete)

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
