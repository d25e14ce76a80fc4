package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Tracking TrackingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	LiveTopic          string
}

type DatabaseConfig struct {
	// Driver selects the GORM dialector: "sqlite" (default, embedded
	// single-user store) or "postgres".
	Driver     string
	Connection string
}

type TrackingConfig struct {
	// Timezone used for logical-day math on both the write and read
	// path. Tagging and range filtering must agree, so it is loaded
	// once here and passed down explicitly.
	Timezone string
	Location *time.Location
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	tzName := getEnv("TRACKER_TIMEZONE", "Local")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		log.Printf("Warning: invalid TRACKER_TIMEZONE %q, falling back to Local", tzName)
		loc = time.Local
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			LiveTopic:          getEnv("LIVE_ACTIVITY_TOPIC_NAME", "LIVE_ACTIVITY"),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "sqlite"),
			Connection: getEnv("DB_CONNECTION_STRING", "data/activitylog.db"),
		},
		Tracking: TrackingConfig{
			Timezone: tzName,
			Location: loc,
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
