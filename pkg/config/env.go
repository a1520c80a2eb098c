package config

const (
	EnvStoreURL     = "STORE_URL"
	EnvStoreAPIKey  = "STORE_API_KEY"
	EnvStoreTimeout = "STORE_TIMEOUT"

	EnvMessagingURL   = "MESSAGING_URL"
	EnvMessagingToken = "MESSAGING_TOKEN"

	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvGeminiModel  = "GEMINI_MODEL"

	EnvKafkaBrokers = "KAFKA_BROKERS"
	EnvKafkaTopic   = "KAFKA_TOPIC"

	EnvLogLevel = "LOG_LEVEL"

	EnvMinLeadTime               = "MIN_LEAD_TIME"
	EnvAdvanceBookingDays        = "ADVANCE_BOOKING_DAYS"
	EnvDefaultServiceDurationMin = "DEFAULT_SERVICE_DURATION_MIN"
	EnvTimezone                  = "TIMEZONE"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
)
