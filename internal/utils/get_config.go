package utils

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Application
	AppPort     string `yaml:"APP_PORT"`
	AppURL      string `yaml:"APP_URL"`
	AppTimezone string `yaml:"APP_TIMEZONE"`
	RateLimit   string `yaml:"RATE_LIMIT_MAX"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Telegram staff alerts
	TelegramBotToken string `yaml:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   string `yaml:"TELEGRAM_CHAT_ID"`

	// Seeded administrator
	AdminEmail    string `yaml:"ADMIN_EMAIL"`
	AdminPassword string `yaml:"ADMIN_PASSWORD"`

	// Restaurant rules
	FeaturedSlotCount        string `yaml:"FEATURED_SLOT_COUNT"`
	ReservationMaxGuests     string `yaml:"RESERVATION_MAX_GUESTS"`
	ReservationAdvanceMonths string `yaml:"RESERVATION_ADVANCE_MONTHS"`
}

var config Config

var defaults = map[string]string{
	"APP_PORT":                   "8080",
	"APP_TIMEZONE":               "UTC",
	"RATE_LIMIT_MAX":             "20",
	"FEATURED_SLOT_COUNT":        "3",
	"RESERVATION_MAX_GUESTS":     "20",
	"RESERVATION_ADVANCE_MONTHS": "3",
}

// LoadConfig reads config.yaml and then lets .env / process environment
// override any key.
func LoadConfig() {
	LoadConfigFrom("config.yaml")
}

func LoadConfigFrom(path string) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Error reading .env file: %s\n", err)
	}

	config = Config{}
	file, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
	} else if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}

	for key, field := range fields(&config) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*field = v
		}
	}
}

func fields(c *Config) map[string]*string {
	return map[string]*string{
		"APP_PORT":                   &c.AppPort,
		"APP_URL":                    &c.AppURL,
		"APP_TIMEZONE":               &c.AppTimezone,
		"RATE_LIMIT_MAX":             &c.RateLimit,
		"DB_USER":                    &c.DBUser,
		"DB_NAME":                    &c.DBName,
		"DB_PASSWORD":                &c.DBPassword,
		"DB_PORT":                    &c.DBPort,
		"DB_HOST":                    &c.DBHost,
		"JWT_SECRET":                 &c.JWTSecret,
		"SMTP_HOST":                  &c.SMTPHost,
		"SMTP_PORT":                  &c.SMTPPort,
		"SMTP_SENDER_NAME":           &c.SMTPSenderName,
		"SMTP_AUTH_EMAIL":            &c.SMTPAuthEmail,
		"SMTP_AUTH_PASSWORD":         &c.SMTPAuthPassword,
		"AWS_S3_BUCKET":              &c.AWSS3Bucket,
		"AWS_S3_REGION":              &c.AWSS3Region,
		"AWS_ACCESS_KEY":             &c.AWSAccessKey,
		"AWS_SECRET_KEY":             &c.AWSSecretKey,
		"TELEGRAM_BOT_TOKEN":         &c.TelegramBotToken,
		"TELEGRAM_CHAT_ID":           &c.TelegramChatID,
		"ADMIN_EMAIL":                &c.AdminEmail,
		"ADMIN_PASSWORD":             &c.AdminPassword,
		"FEATURED_SLOT_COUNT":        &c.FeaturedSlotCount,
		"RESERVATION_MAX_GUESTS":     &c.ReservationMaxGuests,
		"RESERVATION_ADVANCE_MONTHS": &c.ReservationAdvanceMonths,
	}
}

func GetConfig(key string) string {
	field, ok := fields(&config)[key]
	if !ok {
		return ""
	}
	if *field == "" {
		return defaults[key]
	}
	return *field
}

// GetConfigInt falls back to fallback when the key is unset or not a positive
// integer.
func GetConfigInt(key string, fallback int) int {
	n, err := strconv.Atoi(GetConfig(key))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
