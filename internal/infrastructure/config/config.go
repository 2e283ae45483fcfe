package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config アプリケーション全体の設定
type Config struct {
	Server        ServerConfig
	Partners      PartnersConfig
	Validation    ValidationConfig
	Signature     SignatureConfig
	DemoLogin     DemoLoginConfig
	JWT           JWTConfig
	OpenTelemetry OpenTelemetryConfig
	Environment   string
}

// ServerConfig サーバー設定
type ServerConfig struct {
	Port         int
	GRPCPort     int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// PartnersConfig パートナーIDと共有シークレットの対応
type PartnersConfig struct {
	Secrets map[string]string
}

// ValidationConfig 取引検証の設定
type ValidationConfig struct {
	TimestampOffset       time.Duration
	TimestampWindow       time.Duration
	VerifyPartnerPassword bool
}

// SignatureConfig 署名設定
type SignatureConfig struct {
	TimestampMode  string // "fixed", "request"
	FixedTimestamp string // yyyyMMddHHmmss
}

// DemoLoginConfig デモ用ログインの認証情報
type DemoLoginConfig struct {
	Username string
	Password string
}

// JWTConfig JWT設定
type JWTConfig struct {
	Secret     string
	Expiration time.Duration
	Issuer     string
}

// OpenTelemetryConfig OpenTelemetry設定
type OpenTelemetryConfig struct {
	Enabled         bool
	ServiceName     string
	ServiceVersion  string
	OTLPEndpoint    string
	OTLPInsecure    bool
	TraceExporter   string  // "otlp", "none"
	MetricsExporter string  // "otlp", "none"
	SampleRatio     float64 // 0.0 - 1.0
	MetricsInterval time.Duration
}

const defaultPartners = "FAKEGOOGLE:FAKEPASSWORD1234,FAKEPEOPLE:FAKEPASSWORD4578"

// Load 設定を読み込む
func Load() (*Config, error) {
	// .envファイルを読み込む（存在しない場合は無視）
	_ = godotenv.Load()

	env := getEnv("ENVIRONMENT", "development")
	port := getEnvAsInt("SERVER_PORT", 8080)

	partners, err := parsePartners(getEnv("PARTNERS", defaultPartners))
	if err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg := &Config{
		Environment: env,
		Server: ServerConfig{
			Port:         port,
			GRPCPort:     getEnvAsInt("GRPC_PORT", port+1),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Partners: PartnersConfig{
			Secrets: partners,
		},
		Validation: ValidationConfig{
			TimestampOffset:       getEnvAsDuration("TIMESTAMP_OFFSET", 8*time.Hour),
			TimestampWindow:       getEnvAsDuration("TIMESTAMP_WINDOW", 60*time.Minute),
			VerifyPartnerPassword: getEnvAsBool("VERIFY_PARTNER_PASSWORD", false),
		},
		Signature: SignatureConfig{
			TimestampMode:  getEnv("SIGNATURE_TIMESTAMP_MODE", "fixed"),
			FixedTimestamp: getEnv("SIGNATURE_FIXED_TIMESTAMP", "20250118162534"),
		},
		DemoLogin: DemoLoginConfig{
			Username: getEnv("DEMO_USERNAME", "test"),
			Password: getEnv("DEMO_PASSWORD", "password"),
		},
		JWT: JWTConfig{
			Secret:     getEnv("JWT_SECRET", ""),
			Expiration: getEnvAsDuration("JWT_EXPIRATION", 24*time.Hour),
			Issuer:     getEnv("JWT_ISSUER", "transaction-api"),
		},
		OpenTelemetry: OpenTelemetryConfig{
			Enabled:         getEnvAsBool("OTEL_ENABLED", true),
			ServiceName:     getEnv("OTEL_SERVICE_NAME", "transaction-api"),
			ServiceVersion:  getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			OTLPEndpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			OTLPInsecure:    getEnvAsBool("OTEL_EXPORTER_OTLP_INSECURE", true),
			TraceExporter:   getEnv("OTEL_TRACES_EXPORTER", "otlp"),
			MetricsExporter: getEnv("OTEL_METRICS_EXPORTER", "otlp"),
			SampleRatio:     getEnvAsFloat("OTEL_TRACES_SAMPLER_ARG", 1.0),
			MetricsInterval: getEnvAsDuration("OTEL_METRIC_EXPORT_INTERVAL", 60*time.Second),
		},
	}

	// 必須設定の検証
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate 設定の検証
func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if len(c.Partners.Secrets) == 0 {
		return fmt.Errorf("PARTNERS must define at least one partner")
	}
	if c.Validation.TimestampWindow <= 0 {
		return fmt.Errorf("TIMESTAMP_WINDOW must be positive")
	}
	switch c.Signature.TimestampMode {
	case "fixed":
		if len(c.Signature.FixedTimestamp) != 14 {
			return fmt.Errorf("SIGNATURE_FIXED_TIMESTAMP must be 14 digits (yyyyMMddHHmmss)")
		}
		if _, err := strconv.ParseUint(c.Signature.FixedTimestamp, 10, 64); err != nil {
			return fmt.Errorf("SIGNATURE_FIXED_TIMESTAMP must be 14 digits (yyyyMMddHHmmss)")
		}
	case "request":
	default:
		return fmt.Errorf("unsupported SIGNATURE_TIMESTAMP_MODE: %s", c.Signature.TimestampMode)
	}
	if c.OpenTelemetry.SampleRatio < 0 || c.OpenTelemetry.SampleRatio > 1 {
		return fmt.Errorf("OTEL_TRACES_SAMPLER_ARG must be between 0 and 1")
	}
	if c.Server.Port == c.Server.GRPCPort {
		return fmt.Errorf("GRPC_PORT must differ from SERVER_PORT")
	}
	return nil
}

// parsePartners "ID:SECRET,ID:SECRET" 形式のパートナー定義を解析
func parsePartners(value string) (map[string]string, error) {
	partners := make(map[string]string)
	for _, entry := range strings.Split(value, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		id, secret, ok := strings.Cut(entry, ":")
		id = strings.TrimSpace(id)
		secret = strings.TrimSpace(secret)
		if !ok || id == "" || secret == "" {
			return nil, fmt.Errorf("invalid PARTNERS entry: %q", entry)
		}
		if _, dup := partners[id]; dup {
			return nil, fmt.Errorf("duplicate partner in PARTNERS: %s", id)
		}
		partners[id] = secret
	}
	return partners, nil
}

// getEnv 環境変数を取得（デフォルト値付き）
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt 環境変数を整数として取得
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsFloat 環境変数を浮動小数点数として取得
func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool 環境変数を真偽値として取得
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration 環境変数を時間として取得
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
