package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mnasyf821-dotcom/palcars/internal/constants"
	"github.com/mnasyf821-dotcom/palcars/internal/core/locale"

	"github.com/joho/godotenv"
)

// devJWTSecret подставляется, если JWT_SECRET не задан. Только для локального запуска.
const devJWTSecret = "palcars-dev-secret-change-me"

type RESTConfig struct {
	Port           string
	AllowedOrigins []string
}

type StdoutLogConfig struct {
	Level  string
	IsJSON bool
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

// DatabaseConfig - пустой URL означает хранение поданных объявлений в памяти
type DatabaseConfig struct {
	URL      string
	MaxConns int32
}

// RedisConfig - пустой адрес означает хранение сессий в памяти
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RabbitMQConfig - пустой URL отключает публикацию событий
type RabbitMQConfig struct {
	URL string
}

type AuthConfig struct {
	JWTSecret     string
	SessionTTL    time.Duration
	LoginDelay    time.Duration
	RegisterDelay time.Duration
	// DevSecret - секрет взят по умолчанию, а не из окружения
	DevSecret bool
}

type CatalogConfig struct {
	PageSize        int
	DefaultLanguage locale.Language
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	AppName      string
	Rest         RESTConfig
	StdoutLogger StdoutLogConfig
	FluentBit    FluentBitConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	RabbitMQ     RabbitMQConfig
	Auth         AuthConfig
	Catalog      CatalogConfig
}

// LoadConfig загружает конфигурацию из .env (если он есть) и переменных окружения
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		if len(envPath) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not load .env file (path: %v): %w", envPath, err)
		}
		log.Println("Info: .env file not found, using process environment only.")
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "palcars")

	cfg.Rest.Port = getEnvAsString("PORT", "8080")
	cfg.Rest.AllowedOrigins = getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"})

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")
	cfg.StdoutLogger.IsJSON = getEnvAsBool("STDOUT_LOG_JSON", false)

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}
		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.Database.URL = os.Getenv("DATABASE_URL")
	cfg.Database.MaxConns = int32(getEnvAsInt("DATABASE_MAX_CONNS", 10))

	cfg.Redis.Addr = os.Getenv("REDIS_ADDR")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	cfg.Redis.DB = getEnvAsInt("REDIS_DB", 0)

	cfg.RabbitMQ.URL = os.Getenv("RABBITMQ_URL")

	cfg.Auth.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.Auth.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is not set. Using the development secret.")
		cfg.Auth.JWTSecret = devJWTSecret
		cfg.Auth.DevSecret = true
	}
	cfg.Auth.SessionTTL = getEnvAsDuration("SESSION_TTL", constants.DefaultSessionTTL)
	cfg.Auth.LoginDelay = getEnvAsDuration("AUTH_LOGIN_DELAY", 800*time.Millisecond)
	cfg.Auth.RegisterDelay = getEnvAsDuration("AUTH_REGISTER_DELAY", 1000*time.Millisecond)

	cfg.Catalog.PageSize = getEnvAsInt("PAGE_SIZE", constants.DefaultPageSize)
	if cfg.Catalog.PageSize < 1 || cfg.Catalog.PageSize > constants.MaxPageSize {
		return nil, fmt.Errorf("PAGE_SIZE must be between 1 and %d, got %d", constants.MaxPageSize, cfg.Catalog.PageSize)
	}

	lang, ok := locale.Parse(getEnvAsString("DEFAULT_LANGUAGE", string(locale.DefaultLanguage)))
	if !ok {
		return nil, fmt.Errorf("DEFAULT_LANGUAGE must be 'ar' or 'en'")
	}
	cfg.Catalog.DefaultLanguage = lang

	return cfg, nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt читает переменную окружения как int или возвращает значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valDuration, err := time.ParseDuration(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as duration: %v. Using default value: %s\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valDuration
}

// getEnvAsList разбирает список через запятую
func getEnvAsList(key string, defaultValue []string) []string {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(valStr, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
