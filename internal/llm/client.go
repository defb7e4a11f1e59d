package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

var ErrMissingCredentials = errors.New("ProxyAPI credentials not found")

// Config задаёт параметры клиента chat-completion прокси
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client ищет email организаций через языковую модель, доступную по
// OpenAI-совместимому прокси
type Client struct {
	apiKey  string
	baseURL string
	model   string
	httpc   *http.Client
	logger  *zap.Logger
}

// NewClient создаёт клиент поиска email
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-3.5-turbo"
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		model:   cfg.Model,
		httpc:   &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

// Ready проверяет, что клиенту выданы ключ и адрес прокси
func (c *Client) Ready() error {
	if c.apiKey == "" || c.baseURL == "" {
		return ErrMissingCredentials
	}
	return nil
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// FindEmail спрашивает у модели официальный email организации и возвращает
// сырой ответ с обрезанными пробелами. Решение, считать ли ответ адресом,
// принимает вызывающий код.
func (c *Client) FindEmail(ctx context.Context, orgName, city string) (string, error) {
	if err := c.Ready(); err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(
		"Найди официальный email адрес для организации %q в городе %s.\n"+
			"Организация предоставляет услуги размещения отдыхающих "+
			"(база отдыха, дом отдыха, гостиница, санаторий, гостевой дом, хостел).\n\n"+
			"Верни только email адрес, если найдешь. Если не найдешь, верни \"не найден\".",
		orgName, city,
	)

	body, err := json.Marshal(chatRequest{
		Model:     c.model,
		Messages:  []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens: 100,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completion status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode chat response: %w", err)
	}

	if len(parsed.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	answer := strings.TrimSpace(parsed.Choices[0].Message.Content)
	c.logger.Debug("Email lookup answer", zap.String("organization", orgName), zap.String("answer", answer))

	return answer, nil
}
