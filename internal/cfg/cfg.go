package cfg

import (
	"os"
	"time"

	"github.com/jimlawless/whereami"
	"github.com/joho/godotenv"
	"github.com/meditrack-app/go-backend/pkg/e"
	"github.com/meditrack-app/go-backend/pkg/logger"
)

type Config struct {
	Http     *HTTPConfig
	Catalog  *CatalogCfg
	Overpass *OverpassCfg
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type CatalogCfg struct {
	SeedPath string // Путь к JSON-файлу с каталогом товаров
}

type OverpassCfg struct {
	Endpoint string        // Адрес интерпретатора Overpass
	Timeout  time.Duration // Таймаут внешнего вызова; обязателен, ретраев нет
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	// .env подхватывается при наличии, его отсутствие — не ошибка
	if err := godotenv.Load(); err == nil {
		log.Debugf(".env file loaded")
	}

	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	overpass, err := loadOverpassCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Http:     http,
		Catalog:  loadCatalogCfg(),
		Overpass: overpass,
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadCatalogCfg() *CatalogCfg {
	const defaultSeedPath = "data/products.json"

	return &CatalogCfg{
		SeedPath: getEnvOrDefault("CATALOG_SEED_PATH", defaultSeedPath),
	}
}

func loadOverpassCfg(log logger.Logger) (*OverpassCfg, error) {
	const (
		defaultEndpoint = "https://overpass-api.de/api/interpreter"
		defaultTimeout  = 10 * time.Second
	)

	timeout, err := parseDurationEnv("OVERPASS_TIMEOUT", defaultTimeout)
	if err != nil {
		log.Errorf(err, "invalid OVERPASS_TIMEOUT")
		return nil, err
	}

	return &OverpassCfg{
		Endpoint: getEnvOrDefault("OVERPASS_URL", defaultEndpoint),
		Timeout:  timeout,
	}, nil
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}
