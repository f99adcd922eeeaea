package config

import "os"

// Config is the env-driven service configuration
type Config struct {
	MongoURI      string
	MongoDatabase string
	RedisAddr     string
	HTTPPort      string
	JWTSecret     string
	AdminUsername string
	AdminPassword string
	// QuestionBankPath optionally points at a YAML catalog overriding the
	// built-in question bank.
	QuestionBankPath string
}

// Load reads configuration from the environment with local-dev defaults
func Load() *Config {
	return &Config{
		MongoURI:         getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:    getEnv("MONGO_DB", "riderassess"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:         getEnv("PORT", "8080"),
		JWTSecret:        getEnv("JWT_SECRET", "super-secret-key-change-in-production"),
		AdminUsername:    getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:    getEnv("ADMIN_PASSWORD", "password123"),
		QuestionBankPath: os.Getenv("QUESTION_BANK_PATH"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
