package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"conferencecentral/config"
	_ "conferencecentral/docs"
	"conferencecentral/internal/adapters/auth"
	"conferencecentral/internal/adapters/cache"
	"conferencecentral/internal/adapters/email"
	"conferencecentral/internal/adapters/queue"
	delivery "conferencecentral/internal/delivery/http"
	"conferencecentral/internal/delivery/http/controllers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
	"conferencecentral/internal/repository/postgres"
	"conferencecentral/internal/services"
)

const (
	serviceTimeout       = 5 * time.Second
	announcementInterval = time.Hour
	shutdownTimeout      = 10 * time.Second
)

// @title Conference Central API
// @version 1.0
// @description Conference management backend: conferences, sessions, speakers, registration, wishlists, and cached announcements.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	// Repositories
	profileRepo := postgres.NewProfileRepository(db)
	confRepo := postgres.NewConferenceRepository(db)
	sessRepo := postgres.NewSessionRepository(db)
	speakerRepo := postgres.NewSpeakerRepository(db)
	regRepo := postgres.NewRegistrationRepository(db)
	wishRepo := postgres.NewWishlistRepository(db)

	// Adapters
	var derivedCache domain.Cache
	switch cfg.CacheProvider {
	case "memory":
		derivedCache = cache.NewMemoryCache()
	default:
		derivedCache = cache.NewPostgresCache(db)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	hasher := auth.NewBcryptHasher(0)
	issuer := auth.NewJWTIssuer(cfg.JWTSecret)
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)

	dispatcher := queue.NewDispatcher(logger, queue.Options{})
	defer dispatcher.Close()

	// Services
	tokenExpiry := time.Duration(cfg.JWTExpiryHours) * time.Hour
	profileService := services.NewProfileService(profileRepo, hasher, issuer, tokenExpiry)
	conferenceService := services.NewConferenceService(confRepo, profileRepo, dispatcher, logger, serviceTimeout)
	sessionService := services.NewSessionService(confRepo, sessRepo, speakerRepo, dispatcher, logger, serviceTimeout)
	speakerService := services.NewSpeakerService(speakerRepo, logger, serviceTimeout)
	attendeeService := services.NewAttendeeService(regRepo, wishRepo, confRepo, sessRepo, logger, serviceTimeout)
	announcementService := services.NewAnnouncementService(confRepo, sessRepo, speakerRepo, derivedCache, logger, serviceTimeout)
	emailService := services.NewEmailService(mailer, logger)

	// Background task handlers
	dispatcher.RegisterHandler(domain.TaskSendConfirmationEmail, func(ctx context.Context, params map[string]string) error {
		return emailService.SendConferenceCreated(ctx, &domain.ConferenceCreatedEmailData{
			Email:          params[domain.TaskParamEmail],
			ConferenceName: params[domain.TaskParamConferenceName],
			ConferenceInfo: params[domain.TaskParamConferenceInfo],
		})
	})
	dispatcher.RegisterHandler(domain.TaskSearchFeaturedSpeakers, func(ctx context.Context, params map[string]string) error {
		announcementService.RecomputeFeaturedSpeaker(ctx, params[domain.TaskParamConferenceID], params[domain.TaskParamSessionID])
		return nil
	})

	// Periodic announcement recompute, the cron replacement.
	cronCtx, cronCancel := context.WithCancel(context.Background())
	defer cronCancel()
	go func() {
		ticker := time.NewTicker(announcementInterval)
		defer ticker.Stop()
		for {
			select {
			case <-cronCtx.Done():
				return
			case <-ticker.C:
				msg, err := announcementService.RecomputeAnnouncement(cronCtx)
				if err != nil {
					logger.Warn("announcement recompute failed", "err", err)
					continue
				}
				logger.Info("announcement recomputed", "message", msg)
			}
		}
	}()

	mux := delivery.NewRouter(delivery.Controllers{
		Auth:         controllers.NewAuthController(logger, profileService),
		Profile:      controllers.NewProfileController(logger, profileService),
		Conference:   controllers.NewConferenceController(logger, conferenceService),
		Session:      controllers.NewSessionController(logger, sessionService),
		Speaker:      controllers.NewSpeakerController(logger, speakerService, sessionService),
		Attendee:     controllers.NewAttendeeController(logger, attendeeService),
		Announcement: controllers.NewAnnouncementController(logger, announcementService),
	}, verifier, logger)

	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	cronCancel()
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
