package browser

import (
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"elpais-opinion-parser/internal/config"
	"elpais-opinion-parser/internal/observability"
)

// Session владеет одним браузером и одной страницей на весь прогон.
// lookupTimeout — аналог implicit wait: потолок ожидания для обычных
// поисков элементов, понижается после обработки cookie-баннера.
type Session struct {
	cfg           *config.Config
	logger        *observability.Logger
	launcher      *launcher.Launcher
	browser       *rod.Browser
	page          *rod.Page
	lookupTimeout time.Duration
}

func Launch(cfg *config.Config, logger *observability.Logger) (*Session, error) {
	l := launcher.New().Headless(cfg.Browser.Headless)
	if cfg.Browser.ChromePath != "" {
		l = l.Bin(cfg.Browser.ChromePath)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	page, err := b.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		if closeErr := b.Close(); closeErr != nil {
			logger.Error("Failed to close browser", "error", closeErr.Error())
		}
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	return &Session{
		cfg:           cfg,
		logger:        logger,
		launcher:      l,
		browser:       b,
		page:          page,
		lookupTimeout: cfg.GetImplicitWait(),
	}, nil
}

// Open переходит на URL и ждёт загрузки страницы
func (s *Session) Open(url string) error {
	if err := s.page.Navigate(url); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	if err := s.page.WaitLoad(); err != nil {
		return fmt.Errorf("failed to wait for page load: %w", err)
	}
	return nil
}

// Element ищет элемент с потолком lookupTimeout
func (s *Session) Element(selector string) (*rod.Element, error) {
	return s.page.Timeout(s.lookupTimeout).Element(selector)
}

// ElementWithin ищет элемент с явным потолком ожидания
func (s *Session) ElementWithin(timeout time.Duration, selector string) (*rod.Element, error) {
	return s.page.Timeout(timeout).Element(selector)
}

// SetLookupTimeout меняет потолок для последующих поисков
func (s *Session) SetLookupTimeout(timeout time.Duration) {
	s.lookupTimeout = timeout
}

// CurrentURL возвращает URL активной страницы
func (s *Session) CurrentURL() (string, error) {
	info, err := s.page.Info()
	if err != nil {
		return "", fmt.Errorf("failed to get page info: %w", err)
	}
	return info.URL, nil
}

// SaveElementScreenshot делает PNG скриншот элемента и пишет его на диск
func (s *Session) SaveElementScreenshot(el *rod.Element, path string) error {
	data, err := el.Screenshot(proto.PageCaptureScreenshotFormatPng, 0)
	if err != nil {
		return fmt.Errorf("failed to capture screenshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write screenshot: %w", err)
	}
	return nil
}

// RunScript отправляет команду через канал исполнения скриптов страницы.
// Формат команды задаёт вызывающая сторона (см. internal/report).
func (s *Session) RunScript(payload string) error {
	if _, err := s.page.Eval(`(cmd) => cmd`, payload); err != nil {
		return fmt.Errorf("failed to run session script: %w", err)
	}
	return nil
}

// Close закрывает сессию безусловно, независимо от исхода прогона
func (s *Session) Close() {
	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			s.logger.Error("Failed to close browser", "error", err.Error())
		}
	}
	if s.launcher != nil {
		s.launcher.Cleanup()
	}
}
