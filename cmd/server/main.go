// Command server runs the transport-equipment learning dashboard API.
//
//	@title			Transport Equipment Learning API
//	@version		1.0
//	@description	Bookmarks, learning progress, quizzes, catalog search, web search and report export.
//	@BasePath		/api/v1
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/attribute"

	"github.com/tbourn/transport-edu-backend/internal/catalog"
	"github.com/tbourn/transport-edu-backend/internal/config"
	httpapi "github.com/tbourn/transport-edu-backend/internal/http"
	"github.com/tbourn/transport-edu-backend/internal/observability"
	"github.com/tbourn/transport-edu-backend/internal/repo"
	"github.com/tbourn/transport-edu-backend/internal/search"
	"github.com/tbourn/transport-edu-backend/internal/sysutil"
	"github.com/tbourn/transport-edu-backend/internal/tasks"
	"github.com/tbourn/transport-edu-backend/internal/websearch"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := config.MustLoad()
	version = sysutil.FirstNonEmpty(os.Getenv("SERVICE_VERSION"), version)
	logger := sysutil.ConfigureLogger(os.Stdout, cfg.LogLevel, cfg.OTEL.ServiceName, cfg.LogPretty)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := repo.Open(cfg.DatabaseURL, repo.Options{
		MaxOpenConns: cfg.DBMaxOpenConns,
		Silent:       cfg.GinMode == gin.ReleaseMode,
		Tracing:      cfg.OTEL.Enabled,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("open database")
	}
	if err := repo.AutoMigrate(db); err != nil {
		logger.Fatal().Err(err).Msg("migrate database")
	}

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version,
		attribute.String("db.system", repo.Dialect(db)))
	if err != nil {
		logger.Fatal().Err(err).Msg("setup tracing")
	}

	cat := catalog.MustLoad()
	client := websearch.New(websearch.Config{
		APIKey:  cfg.WebSearch.APIKey,
		BaseURL: cfg.WebSearch.BaseURL,
		Model:   cfg.WebSearch.Model,
		Timeout: cfg.WebSearch.Timeout,
		RPS:     cfg.WebSearch.RPS,
	})
	if !client.Configured() {
		logger.Warn().Msg("OPENAI_API_KEY is not set; web search will answer with a configuration notice")
	}

	idx := search.FromCatalog(cat,
		search.WithStopwords(cfg.Search.Stopwords),
		search.WithTitleBoost(cfg.Search.TitleBoost),
		search.WithMaxDocs(cfg.Search.MaxDocs),
	)

	r := gin.New()
	httpapi.RegisterRoutes(r, httpapi.Deps{
		DB:       db,
		Catalog:  cat,
		Index:    idx,
		Searcher: client,
	}, cfg)

	janitor := tasks.NewJanitor(db, cfg.Maintenance.Schedule, cfg.Maintenance.SearchLogRetention, logger)
	if err := janitor.Start(ctx); err != nil {
		logger.Fatal().Err(err).Msg("start janitor")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Str("version", version).Str("db", repo.Dialect(db)).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("listen")
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info().Dur("timeout", cfg.ShutdownTimeout).Msg("shutting down")

	sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	janitor.Stop()
	if err := srv.Shutdown(sctx); err != nil {
		logger.Error().Err(err).Msg("server shutdown")
	}
	if err := shutdownOTel(sctx); err != nil {
		logger.Warn().Err(err).Msg("tracer shutdown")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info().Msg("server exited")
}
