package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App               AppConfig
	HTTP              ServerConfig
	GRPC              GRPCConfig
	MySQL             MySQLConfig
	Log               LogConfig
	InternalEndpoints InternalEndpointsConfig
	Auth              AuthConfig
	Razorpay          RazorpayConfig
	Payments          PaymentsConfig
	Jobs              JobsConfig
}

type AppConfig struct {
	ServiceName        string
	CORSAllowedOrigins []string
}

type ServerConfig struct {
	Host string
	Port string
}

type GRPCConfig struct {
	Enabled bool
	Host    string
	Port    string
}

type MySQLConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type LogConfig struct {
	Level string
}

type InternalEndpointsConfig struct {
	AuthGRPCAddr string
}

// AuthConfig describes how end-user bearer tokens issued by the identity
// provider are verified. Exactly one of JWTSecret or JWTPublicKeyPEM is used,
// the public key taking precedence.
type AuthConfig struct {
	JWTSecret       string
	JWTPublicKeyPEM string
	JWTIssuer       string
	EmailClaim      string
}

type RazorpayConfig struct {
	KeyID         string
	KeySecret     string
	SigningSecret string
}

type PaymentsConfig struct {
	EventFeeAmountPaise      int64
	MembershipFeeAmountPaise int64
	MinDonationAmountPaise   int64
	DisplayName              string
	EnforceOrderMatch        bool
	OrderTTL                 time.Duration
	JobBatchSize             int32
}

type JobsConfig struct {
	ExpireOrdersInterval time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	mysqlDSN := os.Getenv("MYSQL_DSN")
	if mysqlDSN == "" {
		return nil, errors.New("MYSQL_DSN environment variable is required")
	}

	keyID := strings.TrimSpace(os.Getenv("RAZORPAY_KEY_ID"))
	keySecret := strings.TrimSpace(os.Getenv("RAZORPAY_KEY_SECRET"))
	if keyID == "" || keySecret == "" {
		return nil, errors.New("RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET environment variables are required")
	}

	jwtSecret := os.Getenv("AUTH_JWT_SECRET")
	jwtPublicKey := os.Getenv("AUTH_JWT_PUBLIC_KEY")
	if strings.TrimSpace(jwtSecret) == "" && strings.TrimSpace(jwtPublicKey) == "" {
		return nil, errors.New("AUTH_JWT_SECRET or AUTH_JWT_PUBLIC_KEY environment variable is required")
	}

	return &Config{
		App: AppConfig{
			ServiceName:        getEnv("APP_SERVICE_NAME", "member-payments-service"),
			CORSAllowedOrigins: getListEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		HTTP: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnv("HTTP_PORT", "8080"),
		},
		GRPC: GRPCConfig{
			Enabled: getBoolEnv("GRPC_ENABLED", true),
			Host:    getEnv("GRPC_HOST", "0.0.0.0"),
			Port:    getEnv("GRPC_PORT", "9090"),
		},
		MySQL: MySQLConfig{
			DSN:             mysqlDSN,
			MaxOpenConns:    getIntEnv("MYSQL_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getIntEnv("MYSQL_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getMinutesEnv("MYSQL_CONN_MAX_LIFETIME_MINUTES", 30*time.Minute),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		InternalEndpoints: InternalEndpointsConfig{
			AuthGRPCAddr: getEnv("AUTH_SERVICE_GRPC_ADDR", "localhost:9090"),
		},
		Auth: AuthConfig{
			JWTSecret:       jwtSecret,
			JWTPublicKeyPEM: strings.ReplaceAll(jwtPublicKey, `\n`, "\n"),
			JWTIssuer:       getEnv("AUTH_JWT_ISSUER", ""),
			EmailClaim:      getEnv("AUTH_JWT_EMAIL_CLAIM", "email_address"),
		},
		Razorpay: RazorpayConfig{
			KeyID:         keyID,
			KeySecret:     keySecret,
			SigningSecret: getEnv("RAZORPAY_SIGNING_SECRET", keySecret),
		},
		Payments: PaymentsConfig{
			EventFeeAmountPaise:      getInt64Env("PAYMENTS_EVENT_FEE_PAISE", 500*100),
			MembershipFeeAmountPaise: getInt64Env("PAYMENTS_MEMBERSHIP_FEE_PAISE", 5000*100),
			MinDonationAmountPaise:   getInt64Env("PAYMENTS_MIN_DONATION_PAISE", 10*100),
			DisplayName:              getEnv("PAYMENTS_DISPLAY_NAME", "MITMAA Payment"),
			EnforceOrderMatch:        getBoolEnv("PAYMENTS_ENFORCE_ORDER_MATCH", true),
			OrderTTL:                 getMinutesEnv("PAYMENTS_ORDER_TTL_MINUTES", 24*time.Hour),
			JobBatchSize:             int32(getIntEnv("PAYMENTS_JOB_BATCH_SIZE", 100)),
		},
		Jobs: JobsConfig{
			ExpireOrdersInterval: getMinutesEnv("PAYMENTS_ORDER_EXPIRE_INTERVAL_MINUTES", 10*time.Minute),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getListEnv(key string, defaultValue []string) []string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	items := make([]string, 0)
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}

func getMinutesEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if minutes, err := strconv.Atoi(value); err == nil {
			return time.Duration(minutes) * time.Minute
		}
	}
	return defaultValue
}
