package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"zapagenda/pkg/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	StoreURL     string
	StoreAPIKey  string
	StoreTimeout time.Duration

	MessagingURL   string
	MessagingToken string

	GeminiAPIKey string
	GeminiModel  string

	KafkaBrokers []string
	KafkaTopic   string

	MinLeadTime               time.Duration
	AdvanceBookingDays        int
	DefaultServiceDurationMin int

	Timezone string
	Location *time.Location

	RequestTimeout time.Duration

	Log *logger.Logger
}

func Load(serviceName string) *Config {
	_ = godotenv.Load()

	cfg := &Config{
		StoreURL:     getEnvStr(EnvStoreURL, DefaultStoreURL),
		StoreAPIKey:  getEnvStr(EnvStoreAPIKey, ""),
		StoreTimeout: getEnvDuration(EnvStoreTimeout, DefaultStoreTimeout),

		MessagingURL:   getEnvStr(EnvMessagingURL, ""),
		MessagingToken: getEnvStr(EnvMessagingToken, ""),

		GeminiAPIKey: getEnvStr(EnvGeminiAPIKey, ""),
		GeminiModel:  getEnvStr(EnvGeminiModel, DefaultGeminiModel),

		KafkaBrokers: splitAndTrim(getEnvStr(EnvKafkaBrokers, DefaultKafkaBrokers)),
		KafkaTopic:   getEnvStr(EnvKafkaTopic, DefaultKafkaTopic),

		MinLeadTime:               getEnvDuration(EnvMinLeadTime, DefaultMinLeadTime),
		AdvanceBookingDays:        getEnvNum(EnvAdvanceBookingDays, DefaultAdvanceBookingDays),
		DefaultServiceDurationMin: getEnvNum(EnvDefaultServiceDurationMin, DefaultDefaultServiceDurationMin),

		Timezone: getEnvStr(EnvTimezone, DefaultTimezone),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:    logger.JSON,
			AddSource: true,
			Service:   serviceName,
		}),
	}

	err := cfg.Validate()
	if err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func (cfg *Config) Validate() error {
	var errors []string

	urlRegex := regexp.MustCompile(`^https?://`)

	if cfg.StoreURL == "" {
		errors = append(errors, "StoreURL cannot be empty")
	} else if !urlRegex.MatchString(cfg.StoreURL) {
		errors = append(errors, fmt.Sprintf("StoreURL must start with 'http://' or 'https://', got: %s", cfg.StoreURL))
	}

	if cfg.MessagingURL != "" && !urlRegex.MatchString(cfg.MessagingURL) {
		errors = append(errors, fmt.Sprintf("MessagingURL must start with 'http://' or 'https://', got: %s", cfg.MessagingURL))
	}

	if cfg.StoreTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("StoreTimeout must be positive, got: %s", cfg.StoreTimeout))
	}
	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}

	if cfg.MinLeadTime < 0 {
		errors = append(errors, fmt.Sprintf("MinLeadTime cannot be negative, got: %s", cfg.MinLeadTime))
	}
	if cfg.AdvanceBookingDays <= 0 {
		errors = append(errors, fmt.Sprintf("AdvanceBookingDays must be positive, got: %d", cfg.AdvanceBookingDays))
	}
	if cfg.DefaultServiceDurationMin <= 0 {
		errors = append(errors, fmt.Sprintf("DefaultServiceDurationMin must be positive, got: %d", cfg.DefaultServiceDurationMin))
	}

	if len(cfg.KafkaBrokers) == 0 {
		errors = append(errors, "KafkaBrokers cannot be empty")
	}
	if cfg.KafkaTopic == "" {
		errors = append(errors, "KafkaTopic cannot be empty")
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		errors = append(errors, fmt.Sprintf("Timezone must be a valid IANA identifier, got: %s", cfg.Timezone))
	} else {
		cfg.Location = loc
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"store_url", cfg.StoreURL,
		"store_api_key_set", cfg.StoreAPIKey != "",
		"store_timeout", cfg.StoreTimeout,
		"messaging_url", cfg.MessagingURL,
		"messaging_token_set", cfg.MessagingToken != "",
		"gemini_api_key_set", cfg.GeminiAPIKey != "",
		"gemini_model", cfg.GeminiModel,
		"kafka_brokers", strings.Join(cfg.KafkaBrokers, ","),
		"kafka_topic", cfg.KafkaTopic,
		"min_lead_time", cfg.MinLeadTime,
		"advance_booking_days", cfg.AdvanceBookingDays,
		"default_service_duration_min", cfg.DefaultServiceDurationMin,
		"timezone", cfg.Timezone,
		"request_timeout", cfg.RequestTimeout,
	)
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
