package config

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config holds the project config values
type Config struct {
	Env     string
	BaseURL string
	Port    string

	DatabaseDriver string
	DatabaseURL    string
	MaxOpenConns   int

	JWTSecret     string
	TokenCacheTTL time.Duration

	// LEORoleID and JudgeRoleID are the role identifiers tested against a
	// user's role set when computing LEO and judge access.
	LEORoleID   string
	JudgeRoleID string

	// RateLimitRequests requests per RateLimitWindow are allowed for each
	// client IP. Zero disables the limiter.
	RateLimitRequests   int
	RateLimitWindow     time.Duration
	RateLimitTrustProxy bool

	RequestTimeout      time.Duration
	LogFile             string
	HealthCheckSchedule string
}

// New sets up all config related services
func New() *Config {
	if err := godotenv.Load(); err != nil {
		// a missing .env is normal outside of local development
		zap.S().Debug("no .env file found, relying on environment variables")
	}

	conf := &Config{
		Env:                 getEnv("APP_ENV", "local"),
		BaseURL:             os.Getenv("BASE_URL"),
		Port:                getEnv("PORT", "3002"),
		DatabaseDriver:      getEnv("DB_DRIVER", "postgres"),
		DatabaseURL:         os.Getenv("DB_URI"),
		MaxOpenConns:        getEnvInt("DB_MAX_OPEN_CONNS", 10),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		TokenCacheTTL:       getEnvDuration("TOKEN_CACHE_TTL", 5*time.Minute),
		LEORoleID:           os.Getenv("LEO_ROLE_ID"),
		JudgeRoleID:         os.Getenv("JUDGE_ROLE_ID"),
		RateLimitRequests:   getEnvInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:     getEnvDuration("RATE_LIMIT_WINDOW", 15*time.Minute),
		RateLimitTrustProxy: getEnvBool("RATE_LIMIT_TRUST_PROXY", false),
		RequestTimeout:      getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
		LogFile:             os.Getenv("LOG_FILE"),
		HealthCheckSchedule: getEnv("HEALTH_CHECK_SCHEDULE", "@every 5m"),
	}

	//setup zap logger and replace default logger
	logger, err := setLogger(conf.Env)
	if err != nil {
		logger = zap.NewExample()
	}
	if conf.LogFile != "" {
		logger = withFileOutput(logger, conf.LogFile)
	}
	_ = zap.ReplaceGlobals(logger)

	return conf
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// given message, status code and err. The err detail is only logged, never written.
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	if httpStatusCode >= http.StatusInternalServerError {
		zap.S().Errorw(message, "error", err)
	} else {
		zap.S().Debugw(message, "error", err, "status", httpStatusCode)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	b, _ := json.Marshal(map[string]string{"error": message})
	_, _ = w.Write(b)
}

func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		zap.S().Warnw("invalid integer in environment, using default", "key", key, "default", defaultValue)
		return defaultValue
	}
	return i
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		zap.S().Warnw("invalid duration in environment, using default", "key", key, "default", defaultValue)
		return defaultValue
	}
	return d
}

func getEnvBool(key string, defaultValue bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		zap.S().Warnw("invalid boolean in environment, using default", "key", key, "default", defaultValue)
		return defaultValue
	}
	return b
}
