package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, read once at startup.
type Config struct {
	Port        string
	DatabaseURL string // postgres DSN; empty means embedded SQLite
	SQLitePath  string
	StaticDir   string
	UploadDir   string

	// AdminPassword guards mutating endpoints. Empty disables the gate and
	// leaves the admin API open, matching the original deployment.
	AdminPassword string
	JWTSecret     []byte
}

// Load reads configuration from the environment, with a .env file as an
// optional local override source.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment only")
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		SQLitePath:    getEnv("SQLITE_PATH", "restaurant.db"),
		StaticDir:     getEnv("STATIC_DIR", "./public"),
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		JWTSecret:     []byte(getEnv("JWT_SECRET", "restaurant_site_secret_2024")),
	}
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
