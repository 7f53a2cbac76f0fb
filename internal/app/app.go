package app

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/dictchannels/portal/internal/config"
	"github.com/dictchannels/portal/internal/delivery/httpd"
	"github.com/dictchannels/portal/internal/mail"
	"github.com/dictchannels/portal/internal/repository"
	"github.com/dictchannels/portal/internal/service"
	"github.com/dictchannels/portal/internal/session"
	"github.com/dictchannels/portal/internal/storage"
)

type App struct {
	server   *http.Server
	logger   zerolog.Logger
	config   *config.Config
	db       *sql.DB
	sessions *session.Manager
}

func New(cfg *config.Config, log zerolog.Logger, db *sql.DB) (*App, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	sessions := session.NewManager(redisClient, cfg.Session)

	objectStorage, err := storage.NewMinIOStorage(cfg.Storage)
	if err != nil {
		return nil, err
	}

	mailClient := mail.NewClient(cfg.Mail, log)

	studentRepo := repository.NewStudentRepository(db, log)
	catalogRepo := repository.NewCatalogRepository(db, log)
	intakeRepo := repository.NewIntakeRepository(db, log)
	enrollmentRepo := repository.NewEnrollmentRepository(db, log)
	assignmentRepo := repository.NewAssignmentRepository(db, log)
	submissionRepo := repository.NewSubmissionRepository(db, log)
	certificateRepo := repository.NewCertificateRepository(db, log)
	announcementRepo := repository.NewAnnouncementRepository(db, log)
	messageRepo := repository.NewMessageRepository(db, log)
	paymentRepo := repository.NewPaymentRepository(db, log)

	catalogService := service.NewCatalogService(catalogRepo, log)
	intakeService := service.NewIntakeService(intakeRepo, mailClient, cfg.Mail.AdminEmail, log)
	authService := service.NewAuthService(studentRepo, log)
	registrationService := service.NewRegistrationService(studentRepo, cfg.Students.IDPrefix, log)
	dashboardService := service.NewDashboardService(enrollmentRepo, submissionRepo, certificateRepo, assignmentRepo, log)
	portalService := service.NewPortalService(
		enrollmentRepo,
		assignmentRepo,
		submissionRepo,
		certificateRepo,
		announcementRepo,
		messageRepo,
		paymentRepo,
		objectStorage,
		log,
	)

	renderer, err := httpd.NewRenderer(log)
	if err != nil {
		return nil, err
	}

	handler := httpd.NewHandler(
		catalogService,
		intakeService,
		authService,
		registrationService,
		dashboardService,
		portalService,
		sessions,
		renderer,
		log,
	)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(httpd.MetricsMiddleware)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	handler.RegisterRoutes(router)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &App{
		server:   server,
		logger:   log,
		config:   cfg,
		db:       db,
		sessions: sessions,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info().Msgf("Starting portal on %s", a.config.Server.Address)
	return a.server.ListenAndServe()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info().Msg("Shutting down portal...")

	// Drain in-flight requests before their backing connections go away.
	err := a.server.Shutdown(ctx)

	if a.sessions != nil {
		if closeErr := a.sessions.Close(); closeErr != nil {
			a.logger.Error().Err(closeErr).Msg("Failed to close session store")
		}
	}

	if a.db != nil {
		if closeErr := a.db.Close(); closeErr != nil {
			a.logger.Error().Err(closeErr).Msg("Failed to close database connection")
		}
	}

	return err
}
