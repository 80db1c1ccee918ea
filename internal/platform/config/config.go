package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIPort string
	JWTKey  []byte
	JWTExp  time.Duration

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	DBConnStr  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	OpenAIAPIKey      string
	OpenAIModel       string
	EvaluationTimeout time.Duration

	GeneralRateLimit     int
	GeneralRateWindow    time.Duration
	AuthRateLimit        int
	AuthRateWindow       time.Duration
	EvaluationRateLimit  int
	EvaluationRateWindow time.Duration
}

var AppConfig *Config

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	AppConfig = &Config{
		APIPort:    getEnv("API_PORT", "8080"),
		JWTKey:     []byte(getEnv("JWT_SECRET", "defaultsecret")),
		JWTExp:     time.Duration(getEnvAsInt("JWT_EXPIRATION_HOURS", 168)) * time.Hour,
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "user"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "sysdesignlab_db"),
		DBSslMode:  getEnv("DB_SSLMODE", "disable"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		EvaluationTimeout: time.Duration(getEnvAsInt("EVALUATION_TIMEOUT_SECONDS", 30)) * time.Second,

		GeneralRateLimit:     getEnvAsInt("RATE_LIMIT_GENERAL_MAX", 100),
		GeneralRateWindow:    time.Duration(getEnvAsInt("RATE_LIMIT_GENERAL_WINDOW_MINUTES", 15)) * time.Minute,
		AuthRateLimit:        getEnvAsInt("RATE_LIMIT_AUTH_MAX", 5),
		AuthRateWindow:       time.Duration(getEnvAsInt("RATE_LIMIT_AUTH_WINDOW_MINUTES", 15)) * time.Minute,
		EvaluationRateLimit:  getEnvAsInt("RATE_LIMIT_EVALUATION_MAX", 10),
		EvaluationRateWindow: time.Duration(getEnvAsInt("RATE_LIMIT_EVALUATION_WINDOW_MINUTES", 60)) * time.Minute,
	}

	AppConfig.DBConnStr = "host=" + AppConfig.DBHost +
		" port=" + AppConfig.DBPort +
		" user=" + AppConfig.DBUser +
		" password=" + AppConfig.DBPassword +
		" dbname=" + AppConfig.DBName +
		" sslmode=" + AppConfig.DBSslMode
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
