package maps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avc-dev/resort-finder/internal/geo"
	"github.com/avc-dev/resort-finder/internal/model"
	"go.uber.org/zap"
)

var ErrMissingAPIKey = errors.New("API key not found")

// Config задаёт параметры клиента картографического API
type Config struct {
	APIKey        string
	GeocoderKey   string // по умолчанию совпадает с APIKey
	SearchBaseURL string
	GeocodeURL    string
	Timeout       time.Duration
	CategoryPause time.Duration
	PageSize      int
}

// Client — клиент поиска по организациям и геокодера. Один экземпляр
// обслуживает все запуски поиска, безопасен для конкурентного использования.
type Client struct {
	apiKey        string
	geocoderKey   string
	searchBaseURL string
	geocodeURL    string
	httpc         *http.Client
	categoryPause time.Duration
	pageSize      int
	logger        *zap.Logger
}

// NewClient создаёт клиент картографического API
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = 20
	}
	if cfg.GeocoderKey == "" {
		cfg.GeocoderKey = cfg.APIKey
	}

	return &Client{
		apiKey:        cfg.APIKey,
		geocoderKey:   cfg.GeocoderKey,
		searchBaseURL: cfg.SearchBaseURL,
		geocodeURL:    cfg.GeocodeURL,
		httpc:         &http.Client{Timeout: cfg.Timeout},
		categoryPause: cfg.CategoryPause,
		pageSize:      cfg.PageSize,
		logger:        logger,
	}
}

// Ready проверяет, что клиенту выдан ключ API. Без ключа любой поиск
// завершается явной ошибкой, подмены на демо-данные нет.
func (c *Client) Ready() error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// searchResponse — форма ответа поиска по организациям
type searchResponse struct {
	Features []feature `json:"features"`
}

type feature struct {
	Geometry struct {
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
	Properties struct {
		Name            string `json:"name"`
		Description     string `json:"description"`
		CompanyMetaData struct {
			ID      string `json:"id"`
			Address string `json:"address"`
			URL     string `json:"url"`
		} `json:"CompanyMetaData"`
	} `json:"properties"`
}

// SearchOrganizations выполняет по одному запросу на каждую категорию в
// заданном порядке и нормализует ответы в канонические записи организаций.
//
// Отмена контекста проверяется перед каждой категорией и перед каждым
// элементом ответа; уже собранные результаты при отмене сохраняются.
// Ошибка одной категории (транспортная или не-200) логируется и не
// прерывает обход остальных.
func (c *Client) SearchOrganizations(ctx context.Context, scope model.Scope, categories []string) ([]model.Organization, error) {
	if err := c.Ready(); err != nil {
		return nil, err
	}

	var results []model.Organization

	for i, category := range categories {
		if ctx.Err() != nil {
			c.logger.Info("Search cancelled",
				zap.String("category", category),
				zap.Int("collected", len(results)),
			)
			break
		}

		c.logger.Info("Searching category",
			zap.String("category", category),
			zap.Int("index", i+1),
			zap.Int("total", len(categories)),
		)

		features, err := c.searchCategory(ctx, scope, category)
		if err != nil {
			c.logger.Warn("Category search failed, skipping",
				zap.String("category", category),
				zap.Error(err),
			)
			continue
		}

		for _, f := range features {
			if ctx.Err() != nil {
				break
			}

			org, ok := normalizeFeature(f, category, scope.City(), len(results))
			if !ok {
				continue
			}
			if containsOrganization(results, org) {
				continue
			}
			results = append(results, org)
		}

		// Пауза между категориями сдерживает частоту запросов к API
		if i < len(categories)-1 {
			if !sleepCtx(ctx, c.categoryPause) {
				break
			}
		}
	}

	// Защитная перефильтрация: в выдаче остаются только запрошенные категории
	requested := make(map[string]struct{}, len(categories))
	for _, category := range categories {
		requested[category] = struct{}{}
	}

	filtered := make([]model.Organization, 0, len(results))
	for _, org := range results {
		if _, ok := requested[org.Type]; ok {
			filtered = append(filtered, org)
		}
	}

	return filtered, nil
}

// searchCategory выполняет один запрос поиска для категории
func (c *Client) searchCategory(ctx context.Context, scope model.Scope, category string) ([]feature, error) {
	params := url.Values{}
	params.Set("type", "biz")
	params.Set("lang", "ru_RU")
	params.Set("results", strconv.Itoa(c.pageSize))
	params.Set("apikey", c.apiKey)

	if scope.IsCoordinates() {
		lat, lon := scope.Center()
		latSpan, lonSpan := geo.SpanForRadius(lat, scope.RadiusKm())
		params.Set("text", category)
		params.Set("ll", formatFloat(lon)+","+formatFloat(lat))
		params.Set("spn", formatFloat(lonSpan)+","+formatFloat(latSpan))
	} else {
		params.Set("text", category+" "+scope.City())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchBaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	// 403 — сигнал об исчерпании лимита: категорию бросаем сразу, не читая тело
	if resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("rate limited: status %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	return parsed.Features, nil
}

// normalizeFeature приводит сырой объект ответа к канонической записи.
// Записи без названия отбрасываются. Отсутствующий идентификатор и сайт
// синтезируются — это эвристические значения, не проверенные данные.
func normalizeFeature(f feature, category, city string, sequence int) (model.Organization, bool) {
	name := f.Properties.Name
	if name == "" {
		return model.Organization{}, false
	}

	meta := f.Properties.CompanyMetaData

	yandexID := meta.ID
	if yandexID == "" {
		yandexID = fmt.Sprintf("yandex_%04d_%s", sequence+1, strings.ReplaceAll(category, " ", "_"))
	}

	fullAddress := meta.Address
	if fullAddress == "" {
		fullAddress = f.Properties.Description
	}

	website := meta.URL
	if website == "" {
		website = syntheticWebsite(name)
	}

	return model.Organization{
		Name:        name,
		Coordinates: f.Geometry.Coordinates,
		YandexID:    yandexID,
		FullAddress: fullAddress,
		Website:     website,
		Type:        category,
		City:        city,
	}, true
}

// syntheticWebsite строит сайт-заглушку из первых символов названия
func syntheticWebsite(name string) string {
	runes := []rune(name)
	if len(runes) > 15 {
		runes = runes[:15]
	}
	slug := strings.ToLower(strings.ReplaceAll(string(runes), " ", ""))
	return "https://" + slug + ".ru"
}

// containsOrganization проверяет наличие точного повтора среди уже собранных
func containsOrganization(orgs []model.Organization, org model.Organization) bool {
	for _, existing := range orgs {
		if existing.Equal(org) {
			return true
		}
	}
	return false
}

// sleepCtx спит заданное время, прерываясь по отмене контекста.
// Возвращает false, если сон был прерван.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// formatFloat печатает координату без хвостовых нулей
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
