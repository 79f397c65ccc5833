package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	LogLevel  string
	LogFormat string

	CORSAllowedOrigins []string

	// StrictTransitions enables the guarded booking state machine.
	StrictTransitions bool

	DB      DBConfig
	Gateway GatewayConfig
}

type DBConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	MaxOpenConns int
	MaxIdleConns int
}

// GatewayConfig holds the payment gateway merchant credentials and callback URLs.
type GatewayConfig struct {
	BaseURL         string
	StoreID         string
	StorePasswd     string
	SuccessURL      string
	FailURL         string
	CancelURL       string
	IPNURL          string
	SuccessRedirect string
	DefaultCurrency string
	City            string
	Country         string
	Postcode        string
	Timeout         time.Duration
}

// LoadEnv reads configuration from the process environment. A .env file in the
// working directory is loaded first when present; real env vars win.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		AppAddr:            str("APP_ADDR", ":5000"),
		GinMode:            str("GIN_MODE", ""),
		LogLevel:           str("LOG_LEVEL", "info"),
		LogFormat:          str("LOG_FORMAT", "json"),
		CORSAllowedOrigins: list("CORS_ALLOWED_ORIGINS"),
		StrictTransitions:  boolean("BOOKING_STRICT_TRANSITIONS", false),
		DB: DBConfig{
			Host:         str("DB_HOST", "localhost"),
			Port:         str("DB_PORT", "3306"),
			User:         str("DB_USER", "root"),
			Password:     os.Getenv("DB_PASS"),
			Name:         str("DB_NAME", "tour_management"),
			MaxOpenConns: integer("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: integer("DB_MAX_IDLE_CONNS", 25),
		},
		Gateway: GatewayConfig{
			BaseURL:         strings.TrimRight(str("SSLCZ_BASE_URL", "https://sandbox.sslcommerz.com"), "/"),
			StoreID:         str("SSLCZ_STORE_ID", ""),
			StorePasswd:     str("SSLCZ_STORE_PASSWD", ""),
			SuccessURL:      str("SSLCZ_SUCCESS_URL", ""),
			FailURL:         str("SSLCZ_FAIL_URL", ""),
			CancelURL:       str("SSLCZ_CANCEL_URL", ""),
			IPNURL:          str("SSLCZ_IPN_URL", ""),
			SuccessRedirect: str("PAYMENT_SUCCESS_REDIRECT", ""),
			DefaultCurrency: str("SSLCZ_DEFAULT_CURRENCY", "BDT"),
			City:            str("SSLCZ_CITY", "Dhaka"),
			Country:         str("SSLCZ_COUNTRY", "Bangladesh"),
			Postcode:        str("SSLCZ_POSTCODE", "1000"),
			Timeout:         duration("SSLCZ_TIMEOUT", 30*time.Second),
		},
	}
}

func str(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func integer(key string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func boolean(key string, def bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return b
}

func duration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func list(key string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil
	}
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
