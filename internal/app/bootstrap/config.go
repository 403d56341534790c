package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/gurushop/commerce-ledger/internal/domain"
)

// Config is the resolved runtime configuration for the commerce ledger.
// It merges file defaults and environment overrides to support both local and
// deployed runs.
type Config struct {
	ServiceID string

	HTTPPort int
	GRPCPort int

	DatabaseURL string
	RedisURL    string

	KafkaBrokers   []string
	OrderPaidTopic string

	SendGridAPIKey string
	MailFromName   string
	MailFromAddr   string

	BcryptCost int

	TierThresholds     []int64
	AnniversaryYears   int
	TempPasswordLength int
	ResetRateThreshold int
	ResetRateWindow    time.Duration

	RequestTimeout time.Duration
	MaxDBConns     int32
}

// configFile mirrors the YAML schema used by configs/default.yaml.
// It is intentionally separate from Config so runtime-only fields stay internal.
type configFile struct {
	Service struct {
		ID       string `yaml:"id"`
		HTTPPort int    `yaml:"http_port"`
		GRPCPort int    `yaml:"grpc_port"`
	} `yaml:"service"`
	Dependencies struct {
		PostgresURL  string   `yaml:"postgres_url"`
		RedisURL     string   `yaml:"redis_url"`
		KafkaBrokers []string `yaml:"kafka_brokers"`
	} `yaml:"dependencies"`
	Membership struct {
		TierThresholds   []int64 `yaml:"tier_thresholds"`
		AnniversaryYears int     `yaml:"anniversary_years"`
	} `yaml:"membership"`
	Mail struct {
		FromName string `yaml:"from_name"`
		FromAddr string `yaml:"from_addr"`
	} `yaml:"mail"`
}

// LoadConfig resolves configuration in priority order: defaults -> file -> env.
// This order keeps local bootstrap simple while allowing environment-specific overrides.
func LoadConfig(path string) (Config, error) {
	defaultPolicy := domain.DefaultTierPolicy()
	thresholds := make([]int64, 0, len(defaultPolicy.Thresholds))
	for _, t := range defaultPolicy.Thresholds {
		thresholds = append(thresholds, t.IntPart())
	}

	cfg := Config{
		ServiceID:          "commerce-ledger",
		HTTPPort:           8080,
		GRPCPort:           9090,
		OrderPaidTopic:     "commerce.order.paid",
		MailFromName:       "GuruShop",
		BcryptCost:         12,
		TierThresholds:     thresholds,
		AnniversaryYears:   defaultPolicy.AnniversaryYears,
		TempPasswordLength: 8,
		ResetRateThreshold: 5,
		ResetRateWindow:    15 * time.Minute,
		RequestTimeout:     10 * time.Second,
		MaxDBConns:         20,
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		var f configFile
		if unmarshalErr := yaml.Unmarshal(raw, &f); unmarshalErr != nil {
			return Config{}, fmt.Errorf("parse config file: %w", unmarshalErr)
		}
		if f.Service.ID != "" {
			cfg.ServiceID = f.Service.ID
		}
		if f.Service.HTTPPort > 0 {
			cfg.HTTPPort = f.Service.HTTPPort
		}
		if f.Service.GRPCPort > 0 {
			cfg.GRPCPort = f.Service.GRPCPort
		}
		if f.Dependencies.PostgresURL != "" {
			cfg.DatabaseURL = f.Dependencies.PostgresURL
		}
		if f.Dependencies.RedisURL != "" {
			cfg.RedisURL = f.Dependencies.RedisURL
		}
		if len(f.Dependencies.KafkaBrokers) > 0 {
			cfg.KafkaBrokers = f.Dependencies.KafkaBrokers
		}
		if len(f.Membership.TierThresholds) > 0 {
			cfg.TierThresholds = f.Membership.TierThresholds
		}
		if f.Membership.AnniversaryYears > 0 {
			cfg.AnniversaryYears = f.Membership.AnniversaryYears
		}
		if f.Mail.FromName != "" {
			cfg.MailFromName = f.Mail.FromName
		}
		if f.Mail.FromAddr != "" {
			cfg.MailFromAddr = f.Mail.FromAddr
		}
	}

	cfg.DatabaseURL = envOrDefault("DB_URL", envOrDefault("POSTGRES_URL", cfg.DatabaseURL))
	cfg.RedisURL = envOrDefault("REDIS_URL", cfg.RedisURL)
	cfg.KafkaBrokers = envCSV("KAFKA_BROKERS", cfg.KafkaBrokers)
	cfg.OrderPaidTopic = envOrDefault("ORDER_PAID_TOPIC", cfg.OrderPaidTopic)
	cfg.SendGridAPIKey = envOrDefault("SENDGRID_API_KEY", cfg.SendGridAPIKey)
	cfg.MailFromName = envOrDefault("MAIL_FROM_NAME", cfg.MailFromName)
	cfg.MailFromAddr = envOrDefault("MAIL_FROM_ADDR", cfg.MailFromAddr)

	cfg.HTTPPort = envInt("HTTP_PORT", cfg.HTTPPort)
	cfg.GRPCPort = envInt("GRPC_PORT", cfg.GRPCPort)
	cfg.BcryptCost = envInt("BCRYPT_ROUNDS", cfg.BcryptCost)
	cfg.TempPasswordLength = envInt("TEMP_PASSWORD_LENGTH", cfg.TempPasswordLength)
	cfg.ResetRateThreshold = envInt("RESET_RATE_THRESHOLD", cfg.ResetRateThreshold)
	cfg.ResetRateWindow = time.Duration(envInt("RESET_RATE_WINDOW_SECONDS", int(cfg.ResetRateWindow.Seconds()))) * time.Second
	cfg.RequestTimeout = time.Duration(envInt("REQUEST_TIMEOUT_SECONDS", int(cfg.RequestTimeout.Seconds()))) * time.Second
	cfg.MaxDBConns = int32(envInt("DB_MAX_CONNS", int(cfg.MaxDBConns)))

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("missing DB_URL/POSTGRES_URL")
	}
	if cfg.RedisURL == "" {
		return Config{}, fmt.Errorf("missing REDIS_URL")
	}
	for i := 1; i < len(cfg.TierThresholds); i++ {
		if cfg.TierThresholds[i] <= cfg.TierThresholds[i-1] {
			return Config{}, fmt.Errorf("tier thresholds must be strictly increasing")
		}
	}

	return cfg, nil
}

// TierPolicy converts the configured thresholds into the domain policy.
func (c Config) TierPolicy() domain.TierPolicy {
	thresholds := make([]decimal.Decimal, 0, len(c.TierThresholds))
	for _, t := range c.TierThresholds {
		thresholds = append(thresholds, decimal.NewFromInt(t))
	}
	return domain.TierPolicy{
		Thresholds:       thresholds,
		AnniversaryYears: c.AnniversaryYears,
	}
}

// envOrDefault returns an env var when present, otherwise the provided fallback.
func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func envCSV(name string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
