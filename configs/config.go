package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	// OrderSecret is the shared secret folded into the order security hash.
	OrderSecret string
	// OrderAPIURL is where checkout submits orders; empty means this server's
	// own /api/orders/create.
	OrderAPIURL string

	PGStoreID    string
	PGAPIKey     string
	PGAPIURL     string
	PGSuccessURL string
	PGFailURL    string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:    getEnv("DB_SOURCE", "erp.db"),
		Port:        getEnv("PORT", "8000"),
		JWTSecret:   getEnv("JWT_SECRET", "changeme"),
		JWTTTL:      time.Duration(24) * time.Hour,
		OrderSecret: getEnv("ORDER_SECRET", "changeme"),
		OrderAPIURL: os.Getenv("ORDER_API_URL"),

		PGStoreID:    os.Getenv("PG_STORE_ID"),
		PGAPIKey:     os.Getenv("PG_API_KEY"),
		PGAPIURL:     os.Getenv("PG_API_URL"),
		PGSuccessURL: os.Getenv("PG_SUCCESS_URL"),
		PGFailURL:    os.Getenv("PG_FAIL_URL"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
