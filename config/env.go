package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Redis  RedisConfig
	DB     DBConfig
	Auth   AuthConfig
	Notify NotifyConfig
}

type ServerConfig struct {
	Port string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type AuthConfig struct {
	AdminPassword string
	JwtSecret     string
	TokenTTLHours int
}

type NotifyConfig struct {
	EmailWebhookURL string
	WhatsAppPhone   string
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	tokenTTL, _ := strconv.Atoi(getEnv("ADMIN_TOKEN_TTL_HOURS", "12"))

	return Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			Name:     getEnv("DB_NAME", "piccante"),
		},
		Auth: AuthConfig{
			AdminPassword: getEnv("ADMIN_PASSWORD", ""),
			JwtSecret:     getEnv("JWT_SECRET", ""),
			TokenTTLHours: tokenTTL,
		},
		Notify: NotifyConfig{
			EmailWebhookURL: getEnv("ORDER_EMAIL_WEBHOOK_URL", ""),
			WhatsAppPhone:   getEnv("WHATSAPP_PHONE", "+4915259630500"),
		},
	}
}

func (c DBConfig) DSN() string {
	return "host=" + c.Host + " port=" + c.Port + " user=" + c.User +
		" password=" + c.Password + " dbname=" + c.Name + " sslmode=disable"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
