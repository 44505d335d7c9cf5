package scraper

import (
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"elpais-opinion-parser/internal/config"
	"elpais-opinion-parser/internal/observability"
)

type ConsentHandler struct {
	cfg       *config.Config
	selectors *config.Selectors
	logger    *observability.Logger
}

func NewConsentHandler(cfg *config.Config, selectors *config.Selectors, logger *observability.Logger) *ConsentHandler {
	return &ConsentHandler{
		cfg:       cfg,
		selectors: selectors,
		logger:    logger,
	}
}

// Dismiss пытается закрыть cookie-баннер. Отсутствие баннера или
// истечение ожидания — штатный случай ("баннер не показан"), прогон
// продолжается. После обработки потолок поиска элементов понижается,
// чтобы последующие поиски не висели подолгу.
func (h *ConsentHandler) Dismiss(sess Page) {
	defer sess.SetLookupTimeout(h.cfg.GetSettledWait())

	notice, err := sess.ElementWithin(h.cfg.GetElementWait(), h.selectors.Notice)
	if err != nil {
		h.logger.Info("Cookie notice not found or timed out, continuing", "error", err.Error())
		return
	}

	accept, err := notice.Element("#" + h.selectors.AcceptButtonID)
	if err != nil {
		h.logger.Info("Cookie accept button not found, continuing", "error", err.Error())
		return
	}

	// Ждём пока кнопка получит ожидаемую подпись
	wait := accept.Timeout(h.cfg.GetElementWait())
	if err := wait.Wait(rod.Eval(`(label) => this.innerText.trim() === label`, h.selectors.AcceptButtonLabel)); err != nil {
		h.logger.Info("Cookie accept button label never settled, continuing", "error", err.Error())
		return
	}

	if err := accept.Click(proto.InputMouseButtonLeft, 1); err != nil {
		h.logger.Info("Failed to click cookie accept button, continuing", "error", err.Error())
		return
	}

	h.logger.Info("Cookie consent handled")
}
