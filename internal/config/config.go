package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config содержит все настройки сервиса. Значения читаются из переменных
// окружения; адрес сервера дополнительно можно задать флагом -a.
type Config struct {
	ServerAddress NetworkAddress `env:"SERVER_ADDRESS"`

	// Ключ поиска по организациям; без него любой поиск завершается
	// явной ошибкой
	YandexAPIKey string `env:"YANDEX_SEARCH_API_KEY"`
	// Отдельный ключ геокодера; по умолчанию используется YandexAPIKey
	GeocoderAPIKey  string `env:"GEOCODER_API_KEY"`
	SearchBaseURL   string `env:"SEARCH_MAPS_BASE_URL" envDefault:"https://search-maps.yandex.ru/v1/"`
	GeocoderBaseURL string `env:"GEOCODER_BASE_URL" envDefault:"https://geocode-maps.yandex.ru/1.x/"`

	ProxyAPIKey     string `env:"PROXYAPI_KEY"`
	ProxyAPIBaseURL string `env:"PROXYAPI_BASE_URL"`

	// Директория снапшотов и экспортных файлов
	ExportsDir string `env:"EXPORTS_DIR" envDefault:"exports"`

	// Паузы, сдерживающие частоту запросов к внешним API
	CategoryPause time.Duration `env:"CATEGORY_PAUSE" envDefault:"500ms"`
	EmailPause    time.Duration `env:"EMAIL_PAUSE" envDefault:"1s"`

	SearchTimeout time.Duration `env:"SEARCH_TIMEOUT" envDefault:"10s"`
	LLMTimeout    time.Duration `env:"LLM_TIMEOUT" envDefault:"30s"`
}

// Load читает конфигурацию из окружения и флагов командной строки
func Load() (*Config, error) {
	cfg := &Config{
		ServerAddress: NetworkAddress{Host: "localhost", Port: 8000},
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	flag.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	flag.Parse()

	if cfg.GeocoderAPIKey == "" {
		cfg.GeocoderAPIKey = cfg.YandexAPIKey
	}

	return cfg, nil
}
