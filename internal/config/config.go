package config

import (
	"errors"
	"os"
	"strconv"
)

// Config carries every credential and endpoint the service talks to.
// It is built once in main and passed down; nothing else reads os.Getenv.
type Config struct {
	Port string

	// MongoDB (OTP store)
	MongoURI      string
	MongoDatabase string

	// SMTP (OTP delivery + ops alerts)
	MailHost string
	MailPort int
	MailUser string
	MailPass string
	MailFrom string

	// Zoho Invoice
	ZohoBaseURL    string
	ZohoOAuthToken string
	ZohoOrgID      string

	// Google Apps Script spreadsheet endpoint
	SheetURL string

	// Groq chat completions
	GroqAPIURL string
	GroqAPIKey string
	GroqModel  string

	// Fixed internal copy recipient for invoices and degraded-booking alerts
	OpsEmail string

	// Optional RabbitMQ for degraded-booking alerts; empty disables the queue
	AMQPURL string

	// When true a successfully verified OTP is deleted and cannot be replayed
	OTPSingleUse bool
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		MongoURI:       os.Getenv("MONGO_URI"),
		MongoDatabase:  getEnv("MONGO_DATABASE", "peace-trail"),
		MailHost:       getEnv("MAIL_HOST", "smtp.gmail.com"),
		MailPort:       getEnvInt("MAIL_PORT", 587),
		MailUser:       os.Getenv("MAIL_USER"),
		MailPass:       os.Getenv("MAIL_PASSWORD"),
		MailFrom:       getEnv("MAIL_FROM", os.Getenv("MAIL_USER")),
		ZohoBaseURL:    getEnv("ZOHO_BASE_URL", "https://www.zohoapis.com/invoice/v3"),
		ZohoOAuthToken: os.Getenv("ZOHO_OAUTHTOKEN"),
		ZohoOrgID:      os.Getenv("ZOHO_ORGANIZATION_ID"),
		SheetURL:       os.Getenv("GAS_DATA_URL"),
		GroqAPIURL:     getEnv("GROQ_API_URL", "https://api.groq.com/openai/v1/chat/completions"),
		GroqAPIKey:     os.Getenv("GROQ_API_KEY"),
		GroqModel:      getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
		OpsEmail:       os.Getenv("OPS_EMAIL"),
		AMQPURL:        os.Getenv("AMQP_URL"),
		OTPSingleUse:   getEnvBool("OTP_SINGLE_USE", false),
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI is required")
	}
	if cfg.SheetURL == "" {
		return nil, errors.New("GAS_DATA_URL is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
