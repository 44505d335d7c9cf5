package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"elpais-opinion-parser/internal/config"
	"elpais-opinion-parser/internal/observability"
)

// Client — клиент Google Cloud Translation v2.
// Один батч-запрос на прогон, без ретраев и кеширования.
type Client struct {
	client   *http.Client
	endpoint string
	apiKey   string
	source   string
	target   string
	format   string
	logger   *observability.Logger
}

func NewClient(cfg *config.Config, apiKey string, logger *observability.Logger) *Client {
	return &Client{
		client:   &http.Client{Timeout: cfg.GetTranslateTimeout()},
		endpoint: cfg.Translate.Endpoint,
		apiKey:   apiKey,
		source:   cfg.Translate.Source,
		target:   cfg.Translate.Target,
		format:   cfg.Translate.Format,
		logger:   logger,
	}
}

type translateRequest struct {
	Format string   `json:"format"`
	Q      []string `json:"q"`
	Target string   `json:"target"`
	Source string   `json:"source"`
}

type translateResponse struct {
	Data *struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

// Translate переводит батч строк одним запросом. Порядок ответа
// соответствует порядку запроса; несовпадение количества — ошибка.
// Пустой вход возвращается пустым без сетевого вызова.
func (c *Client) Translate(ctx context.Context, texts []string) ([]string, error) {
	if len(texts) == 0 {
		return []string{}, nil
	}

	body, err := json.Marshal(translateRequest{
		Format: c.format,
		Q:      texts,
		Target: c.target,
		Source: c.source,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode translation request: %w", err)
	}

	reqURL := c.endpoint + "?key=" + url.QueryEscape(c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build translation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("translation request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Error("Failed to close response body", "error", err.Error())
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Хвост ответа полезен для диагностики, но ограничиваем размер
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("translation request failed: status %d: %s", resp.StatusCode, string(snippet))
	}

	var parsed translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode translation response: %w", err)
	}

	if parsed.Data == nil {
		return nil, fmt.Errorf("no data returned from translation API")
	}

	if len(parsed.Data.Translations) != len(texts) {
		return nil, fmt.Errorf("translation count mismatch: got %d, want %d", len(parsed.Data.Translations), len(texts))
	}

	translated := make([]string, 0, len(parsed.Data.Translations))
	for _, t := range parsed.Data.Translations {
		translated = append(translated, t.TranslatedText)
	}

	return translated, nil
}
