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

	advanceWizardSessionHandler "github.com/citystride/CST-BookingService/internal/api/handlers/advance_wizard_session"
	createB2BApplicationHandler "github.com/citystride/CST-BookingService/internal/api/handlers/create_b2b_application"
	createWizardSessionHandler "github.com/citystride/CST-BookingService/internal/api/handlers/create_wizard_session"
	getDaySlotsHandler "github.com/citystride/CST-BookingService/internal/api/handlers/get_day_slots"
	getMonthAvailabilityHandler "github.com/citystride/CST-BookingService/internal/api/handlers/get_month_availability"
	getWizardSessionHandler "github.com/citystride/CST-BookingService/internal/api/handlers/get_wizard_session"
	listGuidesHandler "github.com/citystride/CST-BookingService/internal/api/handlers/list_guides"
	listLanguagesHandler "github.com/citystride/CST-BookingService/internal/api/handlers/list_languages"
	listReviewsHandler "github.com/citystride/CST-BookingService/internal/api/handlers/list_reviews"
	listToursHandler "github.com/citystride/CST-BookingService/internal/api/handlers/list_tours"
	retreatWizardSessionHandler "github.com/citystride/CST-BookingService/internal/api/handlers/retreat_wizard_session"
	submitWizardSessionHandler "github.com/citystride/CST-BookingService/internal/api/handlers/submit_wizard_session"
	updateWizardSessionHandler "github.com/citystride/CST-BookingService/internal/api/handlers/update_wizard_session"
	"github.com/citystride/CST-BookingService/internal/api/middleware"
	"github.com/citystride/CST-BookingService/internal/api/wizardview"
	"github.com/citystride/CST-BookingService/internal/config"
	"github.com/citystride/CST-BookingService/internal/events"
	"github.com/citystride/CST-BookingService/internal/i18n"
	"github.com/citystride/CST-BookingService/internal/infra/cache"
	availabilityRepo "github.com/citystride/CST-BookingService/internal/infra/storage/availability"
	b2bAppRepo "github.com/citystride/CST-BookingService/internal/infra/storage/b2bapp"
	bookingRepo "github.com/citystride/CST-BookingService/internal/infra/storage/booking"
	guideRepo "github.com/citystride/CST-BookingService/internal/infra/storage/guide"
	languageRepo "github.com/citystride/CST-BookingService/internal/infra/storage/language"
	reviewRepo "github.com/citystride/CST-BookingService/internal/infra/storage/review"
	tourRepo "github.com/citystride/CST-BookingService/internal/infra/storage/tour"
	catalogService "github.com/citystride/CST-BookingService/internal/service/catalog"
	createBookingUC "github.com/citystride/CST-BookingService/internal/usecase/create_booking"
	getDaySlotsUC "github.com/citystride/CST-BookingService/internal/usecase/get_day_slots"
	getMonthAvailabilityUC "github.com/citystride/CST-BookingService/internal/usecase/get_month_availability"
	submitB2BApplicationUC "github.com/citystride/CST-BookingService/internal/usecase/submit_b2b_application"
	"github.com/citystride/CST-BookingService/internal/wizard"
	"github.com/citystride/CST-BookingService/pkg/dbmetrics"
	"github.com/citystride/CST-BookingService/pkg/logger"
	"github.com/citystride/CST-BookingService/pkg/metrics"
	"github.com/citystride/CST-BookingService/pkg/simpletxmanager"
	"github.com/citystride/CST-BookingService/pkg/txmanager"
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

	log.Info("Starting CST-BookingService...")
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

	// Кеш доступности: с выключенным Redis кеш всегда недоступен,
	// use cases ходят напрямую в базу
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		log.Info("Successfully connected to redis (addr=%s)", cfg.Redis.Addr)
	} else {
		log.Info("Redis disabled, availability cache is off")
	}
	availabilityCache := cache.NewAvailabilityCache(
		redisClient,
		time.Duration(cfg.Redis.AvailabilityTTL)*time.Second,
	)

	// Публикация событий: с выключенным RabbitMQ события пропускаются
	var publisher *events.Publisher
	var bookingPublisher createBookingUC.EventPublisher
	var b2bPublisher submitB2BApplicationUC.EventPublisher
	if cfg.RabbitMQ.Enabled {
		publisher, err = events.NewPublisher(cfg.RabbitMQ.URL)
		if err != nil {
			log.Fatal("Failed to connect to rabbitmq: %v", err)
		}
		defer publisher.Close()

		bookingPublisher = publisher
		b2bPublisher = publisher
		log.Info("Successfully connected to rabbitmq")
	} else {
		log.Info("RabbitMQ disabled, domain events are not published")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		tourRepository         *tourRepo.Repository
		guideRepository        *guideRepo.Repository
		languageRepository     *languageRepo.Repository
		reviewRepository       *reviewRepo.Repository
		bookingRepository      *bookingRepo.Repository
		b2bAppRepository       *b2bAppRepo.Repository
		availabilityRepository *availabilityRepo.Repository
	)

	var txMgr createBookingUC.TransactionManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		tourRepository = tourRepo.NewRepository(wrappedDB)
		guideRepository = guideRepo.NewRepository(wrappedDB)
		languageRepository = languageRepo.NewRepository(wrappedDB)
		reviewRepository = reviewRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		b2bAppRepository = b2bAppRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		tourRepository = tourRepo.NewRepository(db)
		guideRepository = guideRepo.NewRepository(db)
		languageRepository = languageRepo.NewRepository(db)
		reviewRepository = reviewRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		b2bAppRepository = b2bAppRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Конвертер цен и сервис каталога
	priceConverter := i18n.NewPriceConverter(cfg.Currency.Rates)
	catalogSvc := catalogService.NewService(
		tourRepository,
		guideRepository,
		languageRepository,
		reviewRepository,
		priceConverter,
		log,
	)

	// Инициализируем use cases
	getMonthAvailabilityUseCase := getMonthAvailabilityUC.NewUseCase(
		tourRepository,
		availabilityRepository,
		availabilityCache,
		log,
	)
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(
		tourRepository,
		availabilityRepository,
		guideRepository,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		tourRepository,
		availabilityRepository,
		bookingRepository,
		availabilityCache,
		bookingPublisher,
		txMgr,
		log,
	)
	submitB2BApplicationUseCase := submitB2BApplicationUC.NewUseCase(
		b2bAppRepository,
		b2bPublisher,
		log,
	)

	// Хранилище сессий мастера бронирования
	sessionStore := wizard.NewStore(time.Duration(cfg.Wizard.SessionTTLMinutes) * time.Minute)
	defer sessionStore.Close()
	log.Info("Wizard session store started (ttl=%dm)", cfg.Wizard.SessionTTLMinutes)

	viewBuilder := wizardview.NewBuilder(tourRepository, priceConverter)

	// Инициализируем handlers
	listLanguages := listLanguagesHandler.NewHandler(catalogSvc, log)
	listTours := listToursHandler.NewHandler(catalogSvc, log)
	listGuides := listGuidesHandler.NewHandler(catalogSvc, log)
	listReviews := listReviewsHandler.NewHandler(catalogSvc, log)
	getMonthAvailability := getMonthAvailabilityHandler.NewHandler(getMonthAvailabilityUseCase, log)
	getDaySlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log)
	createWizardSession := createWizardSessionHandler.NewHandler(tourRepository, sessionStore, viewBuilder, log)
	getWizardSession := getWizardSessionHandler.NewHandler(sessionStore, viewBuilder, log)
	updateWizardSession := updateWizardSessionHandler.NewHandler(
		sessionStore,
		viewBuilder,
		getMonthAvailabilityUseCase,
		getDaySlotsUseCase,
		log,
	)
	advanceWizardSession := advanceWizardSessionHandler.NewHandler(sessionStore, viewBuilder, log)
	retreatWizardSession := retreatWizardSessionHandler.NewHandler(sessionStore, viewBuilder, log)
	submitWizardSession := submitWizardSessionHandler.NewHandler(sessionStore, createBookingUseCase, log)
	createB2BApplication := createB2BApplicationHandler.NewHandler(submitB2BApplicationUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталог ---
	// Поддерживаемые языки проведения туров
	api.HandleFunc("/languages", listLanguages.Handle).Methods(http.MethodGet)

	// Активные туры с контентом на запрошенном языке
	api.HandleFunc("/tours", listTours.Handle).Methods(http.MethodGet)

	// Активные гиды с переводами профилей
	api.HandleFunc("/guides", listGuides.Handle).Methods(http.MethodGet)

	// Подтвержденные отзывы
	api.HandleFunc("/reviews", listReviews.Handle).Methods(http.MethodGet)

	// --- Доступность ---
	// Месячная доступность тура по дням
	api.HandleFunc("/tours/{tourId}/availability", getMonthAvailability.Handle).Methods(http.MethodGet)

	// Слоты тура на конкретный день
	api.HandleFunc("/tours/{tourId}/slots", getDaySlots.Handle).Methods(http.MethodGet)

	// --- Мастер бронирования ---
	// Создание сессии мастера
	api.HandleFunc("/wizard-sessions", createWizardSession.Handle).Methods(http.MethodPost)

	// Текущее состояние сессии
	api.HandleFunc("/wizard-sessions/{sessionId}", getWizardSession.Handle).Methods(http.MethodGet)

	// Выбор значений на текущем шаге
	api.HandleFunc("/wizard-sessions/{sessionId}", updateWizardSession.Handle).Methods(http.MethodPatch)

	// Переход к следующему шагу
	api.HandleFunc("/wizard-sessions/{sessionId}/advance", advanceWizardSession.Handle).Methods(http.MethodPost)

	// Возврат к предыдущему шагу
	api.HandleFunc("/wizard-sessions/{sessionId}/retreat", retreatWizardSession.Handle).Methods(http.MethodPost)

	// Отправка бронирования с шага подтверждения
	api.HandleFunc("/wizard-sessions/{sessionId}/submit", submitWizardSession.Handle).Methods(http.MethodPost)

	// --- B2B ---
	// Прием заявки на партнерство
	api.HandleFunc("/b2b-applications", createB2BApplication.Handle).Methods(http.MethodPost)

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
