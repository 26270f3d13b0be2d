package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Mining   MiningConfig
	Matching MatchingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	MiningLogFilePath  string
	CorsAllowedOrigins string
	NatsURL            string
	MiningTopic        string
}

type DatabaseConfig struct {
	Connection string
}

type MiningConfig struct {
	WindowDays       int
	EventCap         int
	SupportThreshold int
	MinPatternLen    int
	MaxPatternLen    int
}

type MatchingConfig struct {
	FuzzyThreshold         float64
	SupportWeight          float64
	CoverageWeight         float64
	EarlyAccountMaxDays    int
	EarlyAccountMultiplier float64
	FirstWeekMaxDays       int
	FirstWeekMultiplier    float64
	TemplateCacheTTLMin    int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			MiningLogFilePath:  getEnv("MINING_LOG_FILE_PATH", "logs/mining.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			MiningTopic:        getEnv("MINE_PATTERNS_TOPIC_NAME", "MINE_PATTERNS"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Mining: MiningConfig{
			WindowDays:       getEnvAsInt("MINING_WINDOW_DAYS", 7),
			EventCap:         getEnvAsInt("MINING_EVENT_CAP", 10000),
			SupportThreshold: getEnvAsInt("MINING_SUPPORT_THRESHOLD", 3),
			MinPatternLen:    getEnvAsInt("MINING_MIN_PATTERN_LEN", 3),
			MaxPatternLen:    getEnvAsInt("MINING_MAX_PATTERN_LEN", 5),
		},
		Matching: MatchingConfig{
			FuzzyThreshold:         getEnvAsFloat("MATCH_FUZZY_THRESHOLD", 0.7),
			SupportWeight:          getEnvAsFloat("MATCH_SUPPORT_WEIGHT", 0.7),
			CoverageWeight:         getEnvAsFloat("MATCH_COVERAGE_WEIGHT", 0.3),
			EarlyAccountMaxDays:    getEnvAsInt("MATCH_EARLY_ACCOUNT_MAX_DAYS", 3),
			EarlyAccountMultiplier: getEnvAsFloat("MATCH_EARLY_ACCOUNT_MULTIPLIER", 0.5),
			FirstWeekMaxDays:       getEnvAsInt("MATCH_FIRST_WEEK_MAX_DAYS", 7),
			FirstWeekMultiplier:    getEnvAsFloat("MATCH_FIRST_WEEK_MULTIPLIER", 0.7),
			TemplateCacheTTLMin:    getEnvAsInt("TEMPLATE_CACHE_TTL_MINUTES", 10),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
