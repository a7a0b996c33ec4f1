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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	approveReservationHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/approve_reservation"
	assignConciergeHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/assign_concierge"
	cancelReservationHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/cancel_reservation"
	checkSlotHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/check_slot"
	conciergesHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/concierges"
	configHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/config"
	createReservationHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_reservation"
	getReservationHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_reservation"
	listReservationsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/list_reservations"
	listSlotsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/list_slots"
	salonsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/salons"
	usersHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/users"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/config"
	"github.com/m04kA/SMC-SalonService/internal/infra/cache"
	conciergeRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/concierge"
	configRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/config"
	reservationRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/reservation"
	salonRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/salon"
	userRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SalonService/internal/integrations/mailrelay"
	"github.com/m04kA/SMC-SalonService/internal/notification"
	"github.com/m04kA/SMC-SalonService/internal/scheduler"
	conciergesService "github.com/m04kA/SMC-SalonService/internal/service/concierges"
	"github.com/m04kA/SMC-SalonService/internal/service/configresolver"
	"github.com/m04kA/SMC-SalonService/internal/service/identity"
	reservationsService "github.com/m04kA/SMC-SalonService/internal/service/reservations"
	salonsService "github.com/m04kA/SMC-SalonService/internal/service/salons"
	settingsService "github.com/m04kA/SMC-SalonService/internal/service/settings"
	usersService "github.com/m04kA/SMC-SalonService/internal/service/users"
	approveReservationUC "github.com/m04kA/SMC-SalonService/internal/usecase/approve_reservation"
	assignConciergeUC "github.com/m04kA/SMC-SalonService/internal/usecase/assign_concierge"
	cancelReservationUC "github.com/m04kA/SMC-SalonService/internal/usecase/cancel_reservation"
	checkSlotUC "github.com/m04kA/SMC-SalonService/internal/usecase/check_slot"
	createReservationUC "github.com/m04kA/SMC-SalonService/internal/usecase/create_reservation"
	listSlotsUC "github.com/m04kA/SMC-SalonService/internal/usecase/list_slots"
	sendDailyDigestUC "github.com/m04kA/SMC-SalonService/internal/usecase/send_daily_digest"
	sendRemindersUC "github.com/m04kA/SMC-SalonService/internal/usecase/send_reminders"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
	"github.com/m04kA/SMC-SalonService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
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

	log.Info("Starting SMC-SalonService...")
	log.Info("Configuration loaded from config.toml")

	loc := cfg.Location()

	// Domain counters are always recorded; without metrics they go to a private registry
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	} else {
		metricsCollector = metrics.NewWithRegisterer(cfg.Metrics.ServiceName, prometheus.NewRegistry())
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

	// Репозитории и transaction manager (с метриками или без)
	var (
		executor dbmetrics.DBExecutor
		txMgr    *txmanager.TransactionManager
	)
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		executor = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB, txmanager.WithMaxRetries(cfg.Database.MaxTxRetries))
		log.Info("Database metrics collection started")
	} else {
		executor = db
		txMgr = simpletxmanager.NewTransactionManager(db, txmanager.WithMaxRetries(cfg.Database.MaxTxRetries))
	}

	salonRepository := salonRepo.NewRepository(executor)
	reservationRepository := reservationRepo.NewRepository(executor)
	userRepository := userRepo.NewRepository(executor)
	conciergeRepository := conciergeRepo.NewRepository(executor)
	configRepository := configRepo.NewRepository(executor)

	// Кэш конфигурации и салонов
	var lookupCache cache.Cache
	switch cfg.Cache.Backend {
	case "redis":
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		redisCache := cache.NewRedis(redisClient, cfg.Redis.KeyPrefix)
		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			cancelPing()
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}
		cancelPing()
		lookupCache = redisCache
		log.Info("Redis cache connected (addr=%s)", cfg.Redis.Addr)
	default:
		lookupCache = cache.NewMemory()
		log.Info("In-memory cache enabled (ttl=%s)", cfg.Cache.TTL())
	}

	// Отправка почты
	var sender notification.Sender
	switch cfg.Mail.Transport {
	case "smtp":
		sender = notification.NewSMTPSender(notification.SMTPConfig{
			Host:     cfg.Mail.SMTPHost,
			Port:     cfg.Mail.SMTPPort,
			User:     cfg.Mail.SMTPUser,
			Password: cfg.Mail.SMTPPassword,
			From:     cfg.Mail.From,
		})
	case "relay":
		sender = mailrelay.NewClient(cfg.Mail.RelayURL, cfg.Mail.From, time.Duration(cfg.Mail.RelayTimeout)*time.Second, log)
	default:
		sender = notification.NewLogSender(log)
	}
	dispatcher := notification.NewDispatcher(sender, cfg.Mail.QueueSize, cfg.Mail.Workers, log, metricsCollector)
	log.Info("Mail transport: %s (queue=%d, workers=%d)", cfg.Mail.Transport, cfg.Mail.QueueSize, cfg.Mail.Workers)

	// Инициализируем сервисы
	configResolver := configresolver.NewService(configRepository, lookupCache, cfg.Cache.TTL(), log)
	identitySvc := identity.NewService(userRepository, configResolver, log)
	notifier := notification.NewNotifier(dispatcher, configResolver, reservationRepository, cfg.Mail.DefaultSenderName, cfg.Server.PublicURL, log)

	salonSvc := salonsService.NewService(salonRepository, configResolver, identitySvc, lookupCache, cfg.Cache.TTL(), log)
	reservationSvc := reservationsService.NewService(reservationRepository, conciergeRepository, identitySvc, log)
	userSvc := usersService.NewService(userRepository, identitySvc, configResolver, notifier, log)
	conciergeSvc := conciergesService.NewService(conciergeRepository, identitySvc, log)
	settingsSvc := settingsService.NewService(configResolver, identitySvc, log)

	// Инициализируем use cases
	listSlotsUseCase := listSlotsUC.NewUseCase(salonRepository, reservationRepository, configResolver, identitySvc, log)
	checkSlotUseCase := checkSlotUC.NewUseCase(salonRepository, reservationRepository, configResolver, identitySvc, log)
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		salonRepository,
		configResolver,
		identitySvc,
		notifier,
		metricsCollector,
		txMgr,
		log,
	)
	cancelReservationUseCase := cancelReservationUC.NewUseCase(reservationRepository, identitySvc, notifier, loc, log)
	approveReservationUseCase := approveReservationUC.NewUseCase(reservationRepository, identitySvc, notifier, log)
	assignConciergeUseCase := assignConciergeUC.NewUseCase(
		reservationRepository,
		conciergeRepository,
		identitySvc,
		notifier,
		txMgr,
		loc,
		log,
	)
	dailyDigestUseCase := sendDailyDigestUC.NewUseCase(reservationRepository, notifier, sender, configResolver, metricsCollector, loc, log)
	remindersUseCase := sendRemindersUC.NewUseCase(reservationRepository, notifier, sender, metricsCollector, loc, log)

	// Инициализируем handlers
	listSlots := listSlotsHandler.NewHandler(listSlotsUseCase, log)
	checkSlot := checkSlotHandler.NewHandler(checkSlotUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(cancelReservationUseCase, log)
	approveReservation := approveReservationHandler.NewHandler(approveReservationUseCase, log)
	assignConcierge := assignConciergeHandler.NewHandler(assignConciergeUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	salons := salonsHandler.NewHandler(salonSvc, log)
	users := usersHandler.NewHandler(userSvc, log)
	concierges := conciergesHandler.NewHandler(conciergeSvc, log)
	configs := configHandler.NewHandler(settingsSvc, log)

	auth := middleware.NewAuth(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.EmailClaim, log)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (ссылка из письма; авторизация опциональна)
	// ============================================================

	public := api.PathPrefix("/reservations/token").Subrouter()
	public.Use(limiter.Limit, auth.Optional)
	public.HandleFunc("/{token}", getReservation.Handle).Methods(http.MethodGet)
	public.HandleFunc("/{token}/cancel", cancelReservation.HandleByToken).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (права проверяются в сервисах и use cases)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(auth.Required)

	admin.HandleFunc("/salons", salons.ListAdmin).Methods(http.MethodGet)
	admin.HandleFunc("/salons/{salonId}", salons.Toggle).Methods(http.MethodPatch)

	admin.HandleFunc("/reservations", listReservations.HandleAdmin).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{id}/cancel", cancelReservation.HandleByAdmin).Methods(http.MethodPost)
	admin.HandleFunc("/reservations/{id}/approve", approveReservation.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/reservations/{id}/concierge", assignConcierge.Handle).Methods(http.MethodPut)

	admin.HandleFunc("/users", users.List).Methods(http.MethodGet)
	admin.HandleFunc("/users", users.Upsert).Methods(http.MethodPut)

	admin.HandleFunc("/concierges", concierges.List).Methods(http.MethodGet)
	admin.HandleFunc("/concierges", concierges.Add).Methods(http.MethodPost)
	admin.HandleFunc("/concierges/{code}", concierges.Update).Methods(http.MethodPatch)
	admin.HandleFunc("/concierges/{code}", concierges.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/config/{key}", configs.Get).Methods(http.MethodGet)
	admin.HandleFunc("/config/{key}", configs.Set).Methods(http.MethodPut)

	// ============================================================
	// PROTECTED ROUTES (Bearer JWT с email)
	// ============================================================

	protected := api.NewRoute().Subrouter()
	protected.Use(auth.Required)

	protected.HandleFunc("/salons", salons.List).Methods(http.MethodGet)
	protected.HandleFunc("/salons/{salonId}/slots", listSlots.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/salons/{salonId}/check", checkSlot.Handle).Methods(http.MethodGet)

	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/mine", listReservations.HandleMine).Methods(http.MethodGet)

	protected.HandleFunc("/access-requests", users.RequestAccess).Methods(http.MethodPost)

	// Фоновые задачи: сводка дня и напоминания
	schedCtx, stopScheduler := context.WithCancel(context.Background())
	schedDone := make(chan struct{})
	if cfg.Scheduler.Enabled {
		sched := scheduler.New(loc, log,
			scheduler.Job{
				Name: sendDailyDigestUC.JobName,
				Hour: cfg.Scheduler.DigestHour,
				Run: func(ctx context.Context, now time.Time) error {
					_, err := dailyDigestUseCase.Execute(ctx, &sendDailyDigestUC.Request{Date: now})
					return err
				},
			},
			scheduler.Job{
				Name: sendRemindersUC.JobName,
				Hour: cfg.Scheduler.ReminderHour,
				Run: func(ctx context.Context, now time.Time) error {
					_, err := remindersUseCase.Execute(ctx, &sendRemindersUC.Request{BaseDate: now})
					return err
				},
			},
		)
		go func() {
			defer close(schedDone)
			sched.Start(schedCtx)
		}()
	} else {
		close(schedDone)
		log.Info("Scheduler disabled")
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	stopScheduler()
	<-schedDone

	// Дожидаемся отправки писем из очереди
	dispatcher.Close()

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	log.Info("Server stopped gracefully")
}
