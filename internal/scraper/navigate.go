package scraper

import (
	"fmt"

	"github.com/go-rod/rod/lib/proto"

	"elpais-opinion-parser/internal/config"
	"elpais-opinion-parser/internal/observability"
)

type Navigator struct {
	cfg       *config.Config
	selectors *config.Selectors
	logger    *observability.Logger
}

func NewNavigator(cfg *config.Config, selectors *config.Selectors, logger *observability.Logger) *Navigator {
	return &Navigator{
		cfg:       cfg,
		selectors: selectors,
		logger:    logger,
	}
}

// OpenOpinion переходит в раздел Opinión: вторая ссылка навигации.
// Любая ошибка здесь структурная и прерывает прогон.
func (n *Navigator) OpenOpinion(sess Page) error {
	// Обычный поиск: потолок — текущий implicit wait сессии,
	// пониженный после обработки cookie-баннера
	nav, err := sess.Element(n.selectors.Nav)
	if err != nil {
		return fmt.Errorf("failed to locate navigation region: %w", err)
	}

	links, err := nav.Elements(n.selectors.NavLink)
	if err != nil {
		return fmt.Errorf("failed to list navigation links: %w", err)
	}

	// Санити-проверка, что навигация реально загрузилась
	if len(links) < 3 {
		return fmt.Errorf("navigation has %d links, want at least 3", len(links))
	}

	opinion := links[1]
	if err := opinion.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("failed to open opinion section: %w", err)
	}

	n.logger.Info("Navigated to opinion section")
	return nil
}
