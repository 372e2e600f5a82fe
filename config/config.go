package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hajruuudin/life-line/models"
)

// Config holds every setting the application reads from the environment. It
// is built once in main and passed into the component constructors.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURI  string

	N8NURL            string
	N8NWebhookAuthKey string

	HuggingFaceAPIKey string

	FeatureAIChat               bool
	FeatureAIIllnessSuggestions bool
	FeatureAIDrive              bool

	JWTSecret        string
	JWTExpireMinutes int

	DriveFolderName string
	CalendarName    string

	Port        string
	FrontendURL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, relying on environment")
	}

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "lifeline"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURI:  os.Getenv("GOOGLE_REDIRECT_URI"),

		N8NURL:            os.Getenv("N8N_URL"),
		N8NWebhookAuthKey: os.Getenv("N8N_WEBHOOK_AUTH_KEY"),

		HuggingFaceAPIKey: os.Getenv("HUGGINGFACE_API_KEY"),

		FeatureAIChat:               getEnvBool("FEATURE_AI_CHAT_ENABLED", true),
		FeatureAIIllnessSuggestions: getEnvBool("FEATURE_AI_ILLNESS_SUGGESTIONS_ENABLED", true),
		FeatureAIDrive:              getEnvBool("FEATURE_AI_DRIVE_ENABLED", true),

		JWTSecret:        os.Getenv("JWT_SECRET_KEY"),
		JWTExpireMinutes: getEnvInt("JWT_ACCESS_TOKEN_EXPIRE_MINUTES", 30),

		DriveFolderName: getEnv("DRIVE_FOLDER_NAME", "LifeLine Records"),
		CalendarName:    getEnv("CALENDAR_NAME", "LifeLine"),

		Port:        getEnv("BACKEND_PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:4200"),
	}
}

// ConnectDB opens the Postgres connection and migrates the schema.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.FamilyMember{},
		&models.Medication{},
		&models.MedicationUsage{},
		&models.IllnessLog{},
		&models.GoogleCredentials{},
		&models.ChatHistory{},
	); err != nil {
		return nil, fmt.Errorf("auto-migrate failed: %w", err)
	}

	return db, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
