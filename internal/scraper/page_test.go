package scraper

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-rod/rod"

	"elpais-opinion-parser/internal/config"
	"elpais-opinion-parser/internal/observability"
)

// fakePage записывает обращения к странице; живой браузер не нужен
type fakePage struct {
	elementErr error
	withinErr  error

	elementSelectors []string
	withinSelectors  []string
	lookupTimeouts   []time.Duration
}

func (p *fakePage) Element(selector string) (*rod.Element, error) {
	p.elementSelectors = append(p.elementSelectors, selector)
	return nil, p.elementErr
}

func (p *fakePage) ElementWithin(timeout time.Duration, selector string) (*rod.Element, error) {
	p.withinSelectors = append(p.withinSelectors, selector)
	return nil, p.withinErr
}

func (p *fakePage) SetLookupTimeout(timeout time.Duration) {
	p.lookupTimeouts = append(p.lookupTimeouts, timeout)
}

func (p *fakePage) SaveElementScreenshot(el *rod.Element, path string) error {
	return errors.New("no live page")
}

func (p *fakePage) CurrentURL() (string, error) {
	return "https://elpais.com/opinion/", nil
}

func testLogger(t *testing.T) *observability.Logger {
	t.Helper()
	return observability.NewLogger(filepath.Join(t.TempDir(), "test.log"), "error", 1, 1, 1)
}

func testConfig() *config.Config {
	return &config.Config{
		BaseURL:     "https://elpais.com",
		MaxArticles: 5,
		Browser: config.BrowserConfig{
			ImplicitWaitS: 25,
			SettledWaitS:  2,
			ElementWaitS:  1,
		},
	}
}
