package scraper

import (
	"context"
	"fmt"

	"elpais-opinion-parser/internal/config"
	"elpais-opinion-parser/internal/fetcher"
	"elpais-opinion-parser/internal/observability"
	"elpais-opinion-parser/internal/output"
)

type Extractor struct {
	cfg       *config.Config
	selectors *config.Selectors
	images    *fetcher.ImageFetcher
	logger    *observability.Logger
}

func NewExtractor(cfg *config.Config, selectors *config.Selectors, images *fetcher.ImageFetcher, logger *observability.Logger) *Extractor {
	return &Extractor{
		cfg:       cfg,
		selectors: selectors,
		images:    images,
		logger:    logger,
	}
}

// CollectHeaders возвращает заголовки успешно извлечённых карточек
// в порядке документа. Ноль извлечённых статей — структурная ошибка.
func CollectHeaders(outcomes []Outcome) ([]string, error) {
	var headers []string
	for _, outcome := range outcomes {
		if outcome.Skipped() {
			continue
		}
		headers = append(headers, outcome.Article.Header)
	}

	if len(headers) == 0 {
		return nil, fmt.Errorf("no articles extracted")
	}

	return headers, nil
}

// Extract находит контейнер статей, снимает его скриншот и извлекает
// до max_articles карточек в порядке документа. Возвращает заголовки
// успешно извлечённых статей и результат по каждой карточке.
func (e *Extractor) Extract(ctx context.Context, sess Page, paths *output.RunPaths) ([]string, []Outcome, error) {
	container, err := sess.ElementWithin(e.cfg.GetElementWait(), e.selectors.ArticleContainer)
	if err != nil {
		return nil, nil, fmt.Errorf("timed out waiting for article container: %w", err)
	}

	// Скриншот контейнера: неудача логируется, прогон не прерывается
	if err := sess.SaveElementScreenshot(container, paths.ScreenshotPath()); err != nil {
		e.logger.Error("Failed to save content screenshot", "error", err.Error())
	} else {
		e.logger.Info("Screenshot saved", "path", paths.ScreenshotPath())
	}

	html, err := container.HTML()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read article container HTML: %w", err)
	}

	pageURL, err := sess.CurrentURL()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get page URL: %w", err)
	}

	outcomes, err := ParseArticles(html, e.selectors, pageURL, e.cfg.MaxArticles)
	if err != nil {
		return nil, nil, err
	}

	e.logger.Info("Article cards parsed", "total", len(outcomes))

	for _, outcome := range outcomes {
		if outcome.Skipped() {
			e.logger.Warn("Article skipped",
				"index", outcome.Index,
				"reason", outcome.SkipReason,
			)
			continue
		}

		if outcome.Article.ImageURL == "" {
			e.logger.Warn("No image found for article", "index", outcome.Index)
			continue
		}

		// Загрузка изображения: неудача не валит статью
		imagePath := paths.ImagePath(outcome.Index)
		if err := e.images.Download(ctx, outcome.Article.ImageURL, imagePath); err != nil {
			e.logger.Error("Failed to save article image",
				"index", outcome.Index,
				"url", outcome.Article.ImageURL,
				"error", err.Error(),
			)
			continue
		}
		e.logger.Info("Image saved", "index", outcome.Index, "path", imagePath)
	}

	headers, err := CollectHeaders(outcomes)
	if err != nil {
		return nil, outcomes, err
	}

	return headers, outcomes, nil
}
