package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"elpais-opinion-parser/internal/config"
	"elpais-opinion-parser/internal/observability"
)

// ImageFetcher скачивает изображения статей потоковой записью на диск
type ImageFetcher struct {
	client    *http.Client
	userAgent string
	logger    *observability.Logger
}

func NewImageFetcher(cfg *config.Config, logger *observability.Logger) *ImageFetcher {
	client := &http.Client{
		Timeout: cfg.GetImageTimeout(),
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 5,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	return &ImageFetcher{
		client:    client,
		userAgent: cfg.HTTP.UserAgent,
		logger:    logger,
	}
}

// Download скачивает URL в файл. Тело пишется через io.Copy,
// без буферизации всего изображения в памяти.
func (f *ImageFetcher) Download(ctx context.Context, urlStr, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return fmt.Errorf("invalid image URL: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("image request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			f.logger.Error("Failed to close response body", "error", err.Error())
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("image request failed: status %d", resp.StatusCode)
	}

	file, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	if _, err := io.Copy(file, resp.Body); err != nil {
		if closeErr := file.Close(); closeErr != nil {
			f.logger.Error("Failed to close image file", "error", closeErr.Error())
		}
		// Недокачанный файл не оставляем
		if rmErr := os.Remove(destPath); rmErr != nil {
			f.logger.Error("Failed to remove partial image file", "error", rmErr.Error())
		}
		return fmt.Errorf("failed to write image file: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close image file: %w", err)
	}

	return nil
}
