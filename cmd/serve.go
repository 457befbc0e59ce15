package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lovejournal-backend/internal/calendar"
	"lovejournal-backend/internal/config"
	"lovejournal-backend/internal/daily"
	"lovejournal-backend/internal/handlers"
	"lovejournal-backend/internal/migrations"
	"lovejournal-backend/internal/repository"
	"lovejournal-backend/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var migrate bool

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return serve(cfg, migrate)
		},
	}
	serveCmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")

	return serveCmd
}

func serve(cfg *config.Config, migrate bool) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	clock := calendar.SystemClock{Location: loc}

	// Connect to database
	db, err := pgxpool.New(context.Background(), cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(context.Background()); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info().Msg("Database connection established")

	if migrate {
		if err := migrations.Up(db); err != nil {
			return err
		}
	}

	prompts, err := daily.NewSelector(cfg.Content.Prompts)
	if err != nil {
		return fmt.Errorf("prompts: %w", err)
	}
	questions, err := daily.NewSelector(cfg.Content.Questions)
	if err != nil {
		return fmt.Errorf("questions: %w", err)
	}

	storage, err := services.NewS3Storage(context.Background(), services.S3Options{
		Region:    cfg.AWS.Region,
		Bucket:    cfg.AWS.S3Bucket,
		AccessKey: cfg.AWS.AccessKey,
		SecretKey: cfg.AWS.SecretKey,
		Endpoint:  cfg.AWS.Endpoint,
		PublicURL: cfg.AWS.PublicURL,
	})
	if err != nil {
		return err
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	coupleRepo := repository.NewCoupleRepository(db)
	memoryRepo := repository.NewMemoryRepository(db)
	journalRepo := repository.NewJournalRepository(db)
	letterRepo := repository.NewLetterRepository(db)
	noteRepo := repository.NewLoveNoteRepository(db)
	reflectionRepo := repository.NewReflectionRepository(db)
	records := services.RecordStores{
		Users:       userRepo,
		Memories:    memoryRepo,
		Journals:    journalRepo,
		Letters:     letterRepo,
		LoveNotes:   noteRepo,
		Reflections: reflectionRepo,
	}

	// Initialize services
	coupleService := services.NewCoupleService(coupleRepo, userRepo, clock)
	userService := services.NewUserService(userRepo, coupleService, services.NewArgon2(), clock, cfg.JWT.Secret, cfg.JWT.TokenTTL())

	// Initialize handlers
	routes := &routeHandlers{
		health:      handlers.NewHealthHandler(db),
		users:       handlers.NewUserHandler(userService),
		memories:    handlers.NewMemoryHandler(services.NewMemoryService(memoryRepo, clock)),
		journals:    handlers.NewJournalHandler(services.NewJournalService(journalRepo, clock)),
		letters:     handlers.NewLetterHandler(services.NewLetterService(letterRepo, clock)),
		loveNotes:   handlers.NewLoveNoteHandler(services.NewLoveNoteService(noteRepo, clock)),
		reflections: handlers.NewReflectionHandler(services.NewReflectionService(reflectionRepo, clock)),
		questions: handlers.NewQuestionHandler(services.NewQuestionService(
			repository.NewQuestionAnswerRepository(db), questions, clock)),
		stats: handlers.NewStatsHandler(
			services.NewInsightsService(records, prompts, clock),
			services.NewStreakService(records, clock),
			services.NewStoryService(records, clock),
		),
		bucketList: handlers.NewBucketListHandler(services.NewBucketListService(
			repository.NewBucketItemRepository(db), memoryRepo, clock)),
		dateIdeas: handlers.NewDateIdeaHandler(services.NewDateIdeaService(
			repository.NewDateIdeaRepository(db), clock, nil)),
		pulse: handlers.NewPulseHandler(services.NewPulseService(repository.NewPulseRepository(db), clock)),
		media: handlers.NewMediaHandler(services.NewMediaService(storage)),
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      newRouter(routes, userService),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().
			Str("host", cfg.Server.Host).
			Int("port", cfg.Server.Port).
			Str("timezone", loc.String()).
			Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-quit:
	}

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
	return nil
}
