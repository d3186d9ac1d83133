package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"

	"github.com/Geezkick/NjiaSafe-Drive/internal/geo"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Stats Config
	StatsTimeWindowMinutes int `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"60"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`

	// Геолокация по умолчанию, если клиент не передал корректные координаты
	DefaultLat float64 `env:"DEFAULT_LAT" envDefault:"51.505"`
	DefaultLng float64 `env:"DEFAULT_LNG" envDefault:"-0.09"`

	// Часовой пояс, в котором считается граница суток для счетчика V2V
	Timezone string `env:"TIMEZONE" envDefault:"UTC"`

	// Тарифы и ограничения
	V2VFreeDailyLimit    int `env:"V2V_FREE_DAILY_LIMIT" envDefault:"5"`
	SafetyRadiusMeters   int `env:"SAFETY_RADIUS_METERS" envDefault:"5000"`
	IncidentRadiusMeters int `env:"INCIDENT_RADIUS_METERS" envDefault:"500"`

	// Внешние API
	NominatimURL         string        `env:"NOMINATIM_URL" envDefault:"https://nominatim.openstreetmap.org"`
	OpenMeteoURL         string        `env:"OPEN_METEO_URL" envDefault:"https://api.open-meteo.com"`
	OpenWeatherMapURL    string        `env:"OPENWEATHERMAP_URL" envDefault:"https://api.openweathermap.org"`
	OpenWeatherMapAPIKey string        `env:"OPENWEATHERMAP_API_KEY"`
	OverpassURL          string        `env:"OVERPASS_URL" envDefault:"https://overpass-api.de/api/interpreter"`
	OSRMURL              string        `env:"OSRM_URL" envDefault:"https://router.project-osrm.org"`
	OSRMEnabled          bool          `env:"OSRM_ENABLED" envDefault:"true"`
	HTTPClientTimeout    time.Duration `env:"HTTP_CLIENT_TIMEOUT" envDefault:"10s"`
	UserAgent            string        `env:"USER_AGENT" envDefault:"njiasafe-drive/1.0"`

	// Кеширование ответов внешних API
	WeatherCacheTTL time.Duration `env:"WEATHER_CACHE_TTL" envDefault:"10m"`
	GeocodeCacheTTL time.Duration `env:"GEOCODE_CACHE_TTL" envDefault:"24h"`

	// Поток событий безопасности (пусто - отключено)
	KinesisSecurityStream string `env:"KINESIS_SECURITY_STREAM"`

	// Фоновые задачи
	SchedulerInterval time.Duration `env:"SCHEDULER_INTERVAL" envDefault:"1m"`
	V2VStatusInterval time.Duration `env:"V2V_STATUS_INTERVAL" envDefault:"10s"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		WebhookURL:             os.Getenv("WEBHOOK_URL"),
		WebhookSecret:          os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:         getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:      getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:       getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		StatsTimeWindowMinutes: getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 60),
		DefaultLat:             getEnvAsFloat("DEFAULT_LAT", 51.505),
		DefaultLng:             getEnvAsFloat("DEFAULT_LNG", -0.09),
		Timezone:               getEnv("TIMEZONE", "UTC"),
		V2VFreeDailyLimit:      getEnvAsInt("V2V_FREE_DAILY_LIMIT", 5),
		SafetyRadiusMeters:     getEnvAsInt("SAFETY_RADIUS_METERS", 5000),
		IncidentRadiusMeters:   getEnvAsInt("INCIDENT_RADIUS_METERS", 500),
		NominatimURL:           getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
		OpenMeteoURL:           getEnv("OPEN_METEO_URL", "https://api.open-meteo.com"),
		OpenWeatherMapURL:      getEnv("OPENWEATHERMAP_URL", "https://api.openweathermap.org"),
		OpenWeatherMapAPIKey:   os.Getenv("OPENWEATHERMAP_API_KEY"),
		OverpassURL:            getEnv("OVERPASS_URL", "https://overpass-api.de/api/interpreter"),
		OSRMURL:                getEnv("OSRM_URL", "https://router.project-osrm.org"),
		OSRMEnabled:            getEnvAsBool("OSRM_ENABLED", true),
		HTTPClientTimeout:      getEnvAsDuration("HTTP_CLIENT_TIMEOUT", 10*time.Second),
		UserAgent:              getEnv("USER_AGENT", "njiasafe-drive/1.0"),
		WeatherCacheTTL:        getEnvAsDuration("WEATHER_CACHE_TTL", 10*time.Minute),
		GeocodeCacheTTL:        getEnvAsDuration("GEOCODE_CACHE_TTL", 24*time.Hour),
		KinesisSecurityStream:  os.Getenv("KINESIS_SECURITY_STREAM"),
		SchedulerInterval:      getEnvAsDuration("SCHEDULER_INTERVAL", time.Minute),
		V2VStatusInterval:      getEnvAsDuration("V2V_STATUS_INTERVAL", 10*time.Second),
	}

	// Загрузка API ключей
	cfg.APIKeys = splitList(os.Getenv("API_KEYS"))

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate отклоняет значения, с которыми сервис не сможет работать
func (c *Config) validate() error {
	if !geo.Valid(c.DefaultLat, c.DefaultLng) {
		return fmt.Errorf("invalid DEFAULT_LAT/DEFAULT_LNG %v,%v", c.DefaultLat, c.DefaultLng)
	}

	durations := []struct {
		key   string
		value time.Duration
	}{
		{"SCHEDULER_INTERVAL", c.SchedulerInterval},
		{"V2V_STATUS_INTERVAL", c.V2VStatusInterval},
		{"WEBHOOK_TIMEOUT", c.WebhookTimeout},
		{"HTTP_CLIENT_TIMEOUT", c.HTTPClientTimeout},
	}
	for _, d := range durations {
		if d.value <= 0 {
			return fmt.Errorf("%s must be positive, got %s", d.key, d.value)
		}
	}
	return nil
}

// Location возвращает часовой пояс, в котором считаются сутки. Некорректное значение - UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
