package config

import "time"

const (
	DefaultStoreURL     = "http://localhost:54321/rest/v1"
	DefaultStoreTimeout = 10 * time.Second

	DefaultGeminiModel = "gemini-1.5-flash"

	DefaultKafkaBrokers = "localhost:9092"
	DefaultKafkaTopic   = "zapagenda.bookings"

	DefaultLogLevel = "info"

	DefaultMinLeadTime               = 30 * time.Minute
	DefaultAdvanceBookingDays        = 30
	DefaultDefaultServiceDurationMin = 30
	DefaultTimezone                  = "America/Sao_Paulo"

	DefaultRequestTimeout = 30 * time.Second
)
