// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, user identity, logging/redaction, panic
// recovery, metrics, CORS, security headers, compression, idempotency, and
// rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → identity → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	_ "github.com/tbourn/transport-edu-backend/docs"
	"github.com/tbourn/transport-edu-backend/internal/catalog"
	"github.com/tbourn/transport-edu-backend/internal/config"
	"github.com/tbourn/transport-edu-backend/internal/http/handlers"
	"github.com/tbourn/transport-edu-backend/internal/http/middleware"
	"github.com/tbourn/transport-edu-backend/internal/repo"
	"github.com/tbourn/transport-edu-backend/internal/search"
	"github.com/tbourn/transport-edu-backend/internal/services"
	"github.com/tbourn/transport-edu-backend/internal/websearch"
)

// maxBodyBytes caps request bodies for every route.
const maxBodyBytes = 1 << 20

// Deps carries what RegisterRoutes needs beyond configuration.
type Deps struct {
	DB      *gorm.DB
	Catalog *catalog.Catalog
	Index   search.Index
	// Searcher runs web searches; nil builds a client from cfg.WebSearch.
	Searcher services.Searcher
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine and mounts the public API under cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. UserIdentity: resolve X-User-ID (or the configured default)
//  4. Logger: structured logs with PII scrubbing
//  5. Recovery: capture panics after logger
//  6. Body size limiter
//  7. Metrics
//  8. CORS, security headers, gzip
//  9. Idempotency validator (before rate limiter to allow bypass on replay)
//  10. Rate limiter (per user/IP, bypass on replay)
func RegisterRoutes(r *gin.Engine, d Deps, cfg config.Config) {
	r.HandleMethodNotAllowed = true
	db := d.DB

	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	r.Use(middleware.RequestID())
	r.Use(middleware.UserIdentity(cfg.DefaultUserID))
	r.Use(middleware.Logger(middleware.LogOptions{
		MaskHeaders: []string{"X-API-Key"},
	}))
	r.Use(middleware.Recovery())
	r.Use(limitBody(maxBodyBytes))

	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.Use(corsMiddleware(cfg.CORS.AllowedOrigins)...)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		EnablePolicy: true,
		Expose:       []string{"Idempotency-Replayed", "Content-Disposition"},
	}))
	// Workbooks are already deflated.
	r.Use(gzip.Gzip(gzip.DefaultCompression,
		gzip.WithExcludedExtensions([]string{".xlsx"}),
		gzip.WithExcludedPaths([]string{"/metrics"}),
	))

	r.Use(middleware.IdempotencyValidator(
		middleware.IdempotencyOptions{
			MaxLen: middleware.MaxIdempotencyKeyLen,
			Scope:  idempotencyScope,
		},
		func(ctx context.Context, userID, scope, key string, now time.Time) (bool, error) {
			_, err := repo.GetIdempotency(ctx, db, userID, scope, key, now)
			if errors.Is(err, repo.ErrNotFound) {
				return false, nil
			}
			return err == nil, err
		},
	))

	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	r.Use(rl.Handler())

	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := repo.Ping(ctx, db); err != nil {
			_ = c.Error(err)
			handlers.Fail(c, http.StatusServiceUnavailable, handlers.ErrCodeStorageUnavailable, "database unreachable")
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": repo.Dialect(db)})
	})

	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← repo/db/catalog
	searcher := d.Searcher
	if searcher == nil {
		searcher = websearch.New(websearch.Config{
			APIKey:  cfg.WebSearch.APIKey,
			BaseURL: cfg.WebSearch.BaseURL,
			Model:   cfg.WebSearch.Model,
			Timeout: cfg.WebSearch.Timeout,
			RPS:     cfg.WebSearch.RPS,
		})
	}
	h := handlers.New(handlers.Deps{
		Bookmarks: services.NewBookmarkService(db, repo.Bookmarks{}, d.Catalog),
		Progress:  &services.ProgressService{DB: db},
		Quizzes:   &services.QuizService{DB: db, Bank: d.Catalog, IdemTTL: cfg.IdempotencyTTL},
		WebSearch: &services.WebSearchService{DB: db, Client: searcher},
		Reports:   &services.ReportService{DB: db},
		Catalog:   d.Catalog,
		Index:     d.Index,

		DefaultUserID:  cfg.DefaultUserID,
		DefaultCountry: cfg.WebSearch.DefaultCountry,
	})

	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		// Bookmarks
		api.GET("/bookmarks", h.ListBookmarks)
		api.POST("/bookmarks", h.AddBookmark)
		api.GET("/bookmarks/:itemId", h.GetBookmark)
		api.DELETE("/bookmarks/:itemId", h.RemoveBookmark)

		// Progress
		api.GET("/progress", h.GetProgress)
		api.GET("/progress/:page", h.GetPageProgress)
		api.PUT("/progress/:page", h.SetProgress)

		// Quizzes
		api.GET("/quizzes", h.ListQuizLevels)
		api.GET("/quizzes/:level", h.GetQuiz)
		api.POST("/quizzes/:level/submissions", h.SubmitQuiz)
		api.POST("/quiz-results", h.RecordQuizResult)
		api.GET("/quiz-results", h.ListQuizResults)
		api.GET("/quiz-results/stats", h.QuizStats)
		api.GET("/quiz-results/:id", h.GetQuizResult)

		// Catalog
		api.GET("/catalog/search", h.SearchCatalog)
		api.GET("/catalog/pages", h.ListPages)
		api.GET("/catalog/equipment", h.ListEquipment)
		api.GET("/catalog/equipment/:model", h.GetEquipment)
		api.GET("/catalog/terms", h.ListTerms)
		api.GET("/catalog/terms/:term", h.GetTerm)
		api.GET("/catalog/technologies", h.ListTechnologies)
		api.GET("/catalog/technologies/:name", h.GetTechnology)
		api.GET("/catalog/encryption", h.ListEncryption)

		// Web search costs money upstream: a stricter per-IP limit sits on top
		// of the global one.
		wl := middleware.NewRateLimiter(cfg.WebSearch.IPRPS, cfg.WebSearch.IPBurst, middleware.KeyByIP())
		api.POST("/web-search", wl.Handler(), h.WebSearch)
		api.GET("/web-search/logs", h.ListSearchLogs)

		// Report
		api.GET("/report.xlsx", h.ExportReport)
	}
}

// idempotencyScope names the operation an Idempotency-Key belongs to. Quiz
// submissions are scoped per level, matching what QuizService records.
func idempotencyScope(c *gin.Context) string {
	if lvl := strings.TrimSpace(c.Param("level")); lvl != "" {
		return services.SubmissionScope(lvl)
	}
	return c.FullPath()
}

// corsMiddleware returns the CORS chain. Without an allowlist every origin is
// accepted; otherwise allowed origins are echoed back.
func corsMiddleware(origins []string) []gin.HandlerFunc {
	base := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.UserIDHeader, middleware.HeaderIdempotencyKey, "If-None-Match"},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "ETag", "Idempotency-Replayed", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	if len(origins) == 0 {
		base.AllowAllOrigins = true
		return []gin.HandlerFunc{
			// ACAO even without an Origin header, for plain health checks.
			func(c *gin.Context) {
				c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
				c.Next()
			},
			cors.New(base),
		}
	}

	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}
	base.AllowOrigins = origins
	return []gin.HandlerFunc{
		func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		},
		cors.New(base),
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
