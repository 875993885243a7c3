package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	HTTPPort  int
	GRPCPort  int
	DB        DBConfig
	Kafka     KafkaConfig
	Redis     RedisConfig
	Analytics AnalyticsConfig
	Oracle    OracleConfig
	Outbox    OutboxConfig
	Telemetry TelemetryConfig
	Auth      AuthConfig
	TLS       TLSConfig
	LogLevel  string
	LogFormat string

	GRPCReflection bool
}

// DBConfig holds PostgreSQL connection parameters.
type DBConfig struct {
	Host          string
	Port          int
	User          string
	Password      string
	Name          string
	SSLMode       string
	MaxConns      int32
	MinConns      int32
	// MigrationsURL overrides the migrations compiled into the binary.
	MigrationsURL string
}

// KafkaConfig holds Kafka connection parameters.
type KafkaConfig struct {
	Brokers      []string
	EventsTopic  string
	ReloadTopic  string
	ConsumerGrp  string
	SASLUsername string
	SASLPassword string
	TLSEnabled   bool
}

// RedisConfig holds decision cache parameters. An empty Addr disables the cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// AnalyticsConfig holds the ClickHouse sink parameters. An empty DSN disables it.
type AnalyticsConfig struct {
	ClickHouseDSN string
	Table         string
}

// OracleConfig locates the artifact manifest.
type OracleConfig struct {
	ManifestPath  string
	CheckSchedule string
}

// OutboxConfig drives the outbox relay.
type OutboxConfig struct {
	Schedule  string
	BatchSize int
}

// TelemetryConfig holds observability configuration.
type TelemetryConfig struct {
	OTLPEndpoint string
	ServiceName  string
}

// AuthConfig holds JWT validation settings.
type AuthConfig struct {
	Issuer        string
	PublicKey     string
	PublicKeyFile string
	Secret        string
}

// TLSConfig enables TLS on the gRPC listener when both files are set.
// ClientCAFile additionally requires client certificates.
type TLSConfig struct {
	CertFile     string
	KeyFile      string
	ClientCAFile string
}

// Load reads configuration from environment variables with defaults.
// A .env file in the working directory is applied first when present;
// variables already set in the environment win.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPPort: getEnvInt("HTTP_PORT", 8090),
		GRPCPort: getEnvInt("GRPC_PORT", 9090),
		DB: DBConfig{
			Host:          getEnv("DB_HOST", "localhost"),
			Port:          getEnvInt("DB_PORT", 5432),
			User:          getEnv("DB_USER", "bib"),
			Password:      getEnv("DB_PASSWORD", "bib_dev_password"),
			Name:          getEnv("DB_NAME", "bib_decisioning"),
			SSLMode:       getEnv("DB_SSLMODE", "disable"),
			MaxConns:      int32(getEnvInt("DB_MAX_CONNS", 20)),
			MinConns:      int32(getEnvInt("DB_MIN_CONNS", 5)),
			MigrationsURL: getEnv("DB_MIGRATIONS_URL", ""),
		},
		Kafka: KafkaConfig{
			Brokers:      getEnvList("KAFKA_BROKERS", []string{"localhost:9092"}),
			EventsTopic:  getEnv("KAFKA_EVENTS_TOPIC", "decisioning.events"),
			ReloadTopic:  getEnv("KAFKA_RELOAD_TOPIC", "decisioning.oracle.published"),
			ConsumerGrp:  getEnv("KAFKA_CONSUMER_GROUP", "decisioning-service"),
			SASLUsername: getEnv("KAFKA_SASL_USERNAME", ""),
			SASLPassword: getEnv("KAFKA_SASL_PASSWORD", ""),
			TLSEnabled:   getEnvBool("KAFKA_TLS_ENABLED", false),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			TTL:      getEnvDuration("DECISION_CACHE_TTL", 15*time.Minute),
		},
		Analytics: AnalyticsConfig{
			ClickHouseDSN: getEnv("CLICKHOUSE_DSN", ""),
			Table:         getEnv("CLICKHOUSE_TABLE", "decision_events"),
		},
		Oracle: OracleConfig{
			ManifestPath:  getEnv("ORACLE_MANIFEST", "artifacts/manifest.yaml"),
			CheckSchedule: getEnv("ORACLE_CHECK_SCHEDULE", "@every 5m"),
		},
		Outbox: OutboxConfig{
			Schedule:  getEnv("OUTBOX_SCHEDULE", "@every 5s"),
			BatchSize: getEnvInt("OUTBOX_BATCH_SIZE", 100),
		},
		Telemetry: TelemetryConfig{
			OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			ServiceName:  "decisioning-service",
		},
		Auth: AuthConfig{
			Issuer:        getEnv("JWT_ISSUER", "bib-decisioning"),
			PublicKey:     getEnv("JWT_PUBLIC_KEY", ""),
			PublicKeyFile: getEnv("JWT_PUBLIC_KEY_FILE", ""),
			Secret:        getEnv("JWT_SECRET", ""),
		},
		TLS: TLSConfig{
			CertFile:     getEnv("TLS_CERT_FILE", ""),
			KeyFile:      getEnv("TLS_KEY_FILE", ""),
			ClientCAFile: getEnv("TLS_CLIENT_CA_FILE", ""),
		},
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		GRPCReflection: getEnvBool("GRPC_REFLECTION", false),
	}
}

// TLSEnabled reports whether the gRPC listener should serve TLS.
func (c TLSConfig) TLSEnabled() bool { return c.CertFile != "" && c.KeyFile != "" }

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

func getEnvList(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
