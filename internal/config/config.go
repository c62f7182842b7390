// Package config provides application configuration loaded from environment
// variables with defaults and validation. It centralizes server timeouts,
// logging, storage selection, user defaults, web search, maintenance
// scheduling, rate limiting and observability.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tbourn/transport-edu-backend/internal/sysutil"
)

// CORSConfig defines Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins []string
}

// SecurityConfig defines security-related settings such as HSTS.
type SecurityConfig struct {
	EnableHSTS bool
	HSTSMaxAge time.Duration
}

// WebSearchConfig configures the OpenAI-backed web search.
type WebSearchConfig struct {
	APIKey         string        // OPENAI_API_KEY (empty disables the upstream call)
	BaseURL        string        // OPENAI_BASE_URL
	Model          string        // OPENAI_MODEL
	Timeout        time.Duration // WEB_SEARCH_TIMEOUT
	DefaultCountry string        // WEB_SEARCH_DEFAULT_COUNTRY (KR|US|JP|EU)
	RPS            float64       // WEB_SEARCH_RPS, outgoing calls per second (0 = unlimited)
	IPRPS          float64       // WEB_SEARCH_IP_RPS, per-client searches per second (> 0)
	IPBurst        int           // WEB_SEARCH_IP_BURST, per-client bucket size (>= 1)
}

// SearchConfig tunes the in-memory catalog search index.
type SearchConfig struct {
	Stopwords  []string // SEARCH_STOPWORDS, comma-separated words ignored when scoring
	TitleBoost float64  // SEARCH_TITLE_BOOST, score bonus for a title hit (>= 0)
	MaxDocs    int      // SEARCH_MAX_DOCS (0 indexes every document)
}

// MaintenanceConfig configures the cleanup janitor.
type MaintenanceConfig struct {
	Schedule           string        // CLEANUP_SCHEDULE (cron spec or descriptor)
	SearchLogRetention time.Duration // SEARCH_LOG_RETENTION (0 keeps logs forever)
}

// OTELConfig defines OpenTelemetry observability settings.
type OTELConfig struct {
	Enabled     bool    // OTEL_ENABLED
	Endpoint    string  // OTEL_EXPORTER_OTLP_ENDPOINT (e.g. "otel:4317")
	Insecure    bool    // OTEL_EXPORTER_OTLP_INSECURE (true if no TLS)
	ServiceName string  // OTEL_SERVICE_NAME (e.g. "transport-edu-backend")
	SampleRatio float64 // OTEL_TRACES_SAMPLER_ARG in [0..1]
}

// Config holds all configuration values for the application.
type Config struct {
	// Server
	Port              string        // just the number
	ReadTimeout       time.Duration // e.g. 15s
	ReadHeaderTimeout time.Duration // e.g. 10s
	WriteTimeout      time.Duration // e.g. 20s
	IdleTimeout       time.Duration // e.g. 60s
	MaxHeaderBytes    int           // bytes
	GinMode           string        // debug|release|test

	// Logging / Docs
	LogLevel       string // debug|info|warn|error|fatal|panic
	LogPretty      bool   // pretty console logs in dev
	SwaggerEnabled bool   // enable Swagger UI route
	APIBasePath    string // base path for API routes

	ShutdownTimeout   time.Duration // graceful shutdown budget

	// Storage
	DatabaseURL    string // sqlite://app.db, file:..., or postgres://...
	DBMaxOpenConns int    // connection pool size (>= 1)

	// Users
	DefaultUserID string // identity used when X-User-ID is absent

	// Rate limiting
	RateRPS   float64 // tokens per second (>= 0)
	RateBurst int     // bucket size (>= 1)

	// Web protection
	CORS     CORSConfig
	Security SecurityConfig

	// Idempotency
	IdempotencyTTL time.Duration // how long a given Idempotency-Key is valid

	WebSearch   WebSearchConfig
	Search      SearchConfig
	Maintenance MaintenanceConfig

	// Observability
	OTEL OTELConfig
}

// MustLoad loads the configuration and panics if validation fails.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads configuration from environment variables,
// applies defaults, normalizes values, and validates the result.
func Load() (Config, error) {
	cfg := Config{
		// Server
		Port:              getenv("PORT", "8080"),
		ReadTimeout:       getdur("READ_TIMEOUT", 15*time.Second),
		ReadHeaderTimeout: getdur("READ_HEADER_TIMEOUT", 10*time.Second),
		WriteTimeout:      getdur("WRITE_TIMEOUT", 20*time.Second),
		IdleTimeout:       getdur("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes:    getint("MAX_HEADER_BYTES", 1<<20),
		GinMode:           strings.ToLower(getenv("GIN_MODE", "release")),
		ShutdownTimeout:   getdur("SHUTDOWN_TIMEOUT", 10*time.Second),

		// Logging / Docs
		LogLevel:       strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogPretty:      getbool("LOG_PRETTY", false),
		SwaggerEnabled: getbool("SWAGGER_ENABLED", false),
		APIBasePath:    normalizeBasePath(getenv("API_BASE_PATH", "/api/v1")),

		// Storage
		DatabaseURL:    strings.TrimSpace(getenv("DATABASE_URL", "sqlite://app.db")),
		DBMaxOpenConns: getint("DB_MAX_OPEN_CONNS", 10),

		// Users
		DefaultUserID: strings.TrimSpace(getenv("DEFAULT_USER_ID", "default")),

		// Rate limiting
		RateRPS:   getfloat("RATE_RPS", 5.0),
		RateBurst: getint("RATE_BURST", 10),

		// Web protection
		CORS: CORSConfig{
			AllowedOrigins: splitCSV(getenv("CORS_ALLOWED_ORIGINS", "")),
		},
		Security: SecurityConfig{
			EnableHSTS: getbool("ENABLE_HSTS", false),
			HSTSMaxAge: getdur("HSTS_MAX_AGE", 180*24*time.Hour),
		},

		// Idempotency
		IdempotencyTTL: getdur("IDEMPOTENCY_TTL", 24*time.Hour),

		WebSearch: WebSearchConfig{
			APIKey:         strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
			BaseURL:        getenv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:          getenv("OPENAI_MODEL", "gpt-4.1"),
			Timeout:        getdur("WEB_SEARCH_TIMEOUT", 60*time.Second),
			DefaultCountry: strings.ToUpper(getenv("WEB_SEARCH_DEFAULT_COUNTRY", "KR")),
			RPS:            getfloat("WEB_SEARCH_RPS", 1.0),
			IPRPS:          getfloat("WEB_SEARCH_IP_RPS", 0.1),
			IPBurst:        getint("WEB_SEARCH_IP_BURST", 3),
		},
		Search: SearchConfig{
			Stopwords:  splitCSV(getenv("SEARCH_STOPWORDS", "")),
			TitleBoost: getfloat("SEARCH_TITLE_BOOST", 0.5),
			MaxDocs:    getint("SEARCH_MAX_DOCS", 0),
		},
		Maintenance: MaintenanceConfig{
			Schedule:           strings.TrimSpace(getenv("CLEANUP_SCHEDULE", "@hourly")),
			SearchLogRetention: getdur("SEARCH_LOG_RETENTION", 720*time.Hour),
		},

		// Observability (OpenTelemetry)
		OTEL: OTELConfig{
			Enabled:     getbool("OTEL_ENABLED", false),
			Endpoint:    getenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			Insecure:    getbool("OTEL_EXPORTER_OTLP_INSECURE", true),
			ServiceName: getenv("OTEL_SERVICE_NAME", "transport-edu-backend"),
			SampleRatio: getfloat("OTEL_TRACES_SAMPLER_ARG", 1.0),
		},
	}

	// --- normalization ---
	if cfg.LogLevel == "warning" {
		cfg.LogLevel = "warn"
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		cfg.GinMode = "release"
	}
	switch cfg.WebSearch.DefaultCountry {
	case "KR", "US", "JP", "EU":
	default:
		cfg.WebSearch.DefaultCountry = "KR"
	}

	// --- validation ---
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return cfg, errors.New("LOG_LEVEL must be one of: debug, info, warn, error, fatal, panic")
	}
	if strings.TrimSpace(cfg.Port) == "" {
		return cfg, errors.New("PORT must not be empty")
	}
	if cfg.ReadTimeout <= 0 || cfg.ReadHeaderTimeout <= 0 || cfg.WriteTimeout <= 0 || cfg.IdleTimeout <= 0 || cfg.ShutdownTimeout <= 0 {
		return cfg, errors.New("timeouts must be positive durations")
	}
	if cfg.MaxHeaderBytes <= 0 {
		return cfg, errors.New("MAX_HEADER_BYTES must be > 0")
	}
	if cfg.DatabaseURL == "" {
		return cfg, errors.New("DATABASE_URL must not be empty")
	}
	if cfg.DBMaxOpenConns < 1 {
		return cfg, errors.New("DB_MAX_OPEN_CONNS must be >= 1")
	}
	if cfg.DefaultUserID == "" {
		return cfg, errors.New("DEFAULT_USER_ID must not be empty")
	}
	if cfg.RateRPS < 0 {
		return cfg, errors.New("RATE_RPS must be >= 0")
	}
	if cfg.RateBurst < 1 {
		return cfg, errors.New("RATE_BURST must be >= 1")
	}
	if cfg.Security.HSTSMaxAge < 0 {
		return cfg, errors.New("HSTS_MAX_AGE must be >= 0")
	}
	if cfg.IdempotencyTTL <= 0 {
		return cfg, errors.New("IDEMPOTENCY_TTL must be > 0")
	}
	if cfg.WebSearch.Timeout <= 0 {
		return cfg, errors.New("WEB_SEARCH_TIMEOUT must be > 0")
	}
	if cfg.WebSearch.RPS < 0 {
		return cfg, errors.New("WEB_SEARCH_RPS must be >= 0")
	}
	if cfg.WebSearch.IPRPS <= 0 {
		return cfg, errors.New("WEB_SEARCH_IP_RPS must be > 0")
	}
	if cfg.WebSearch.IPBurst < 1 {
		return cfg, errors.New("WEB_SEARCH_IP_BURST must be >= 1")
	}
	if cfg.Search.TitleBoost < 0 {
		return cfg, errors.New("SEARCH_TITLE_BOOST must be >= 0")
	}
	if cfg.Search.MaxDocs < 0 {
		return cfg, errors.New("SEARCH_MAX_DOCS must be >= 0")
	}
	if err := sysutil.ValidateSchedule(cfg.Maintenance.Schedule); err != nil {
		return cfg, errors.New("CLEANUP_SCHEDULE must be a cron spec or descriptor: " + err.Error())
	}
	if cfg.Maintenance.SearchLogRetention < 0 {
		return cfg, errors.New("SEARCH_LOG_RETENTION must be >= 0")
	}
	if cfg.OTEL.SampleRatio < 0 || cfg.OTEL.SampleRatio > 1 {
		return cfg, errors.New("OTEL_TRACES_SAMPLER_ARG must be in [0,1]")
	}

	return cfg, nil
}

// ---- helpers ----

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func getfloat(k string, def float64) float64 {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getint(k string, def int) int {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getbool(k string, def bool) bool {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if sysutil.IsTruthy(v) {
			return true
		}
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return def
}

func getdur(k string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// normalizeBasePath ensures leading '/' and strips trailing '/' (except root).
func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimRight(p, "/")
	}
	return p
}
