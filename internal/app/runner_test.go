package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-rod/rod"

	"elpais-opinion-parser/internal/browser"
	"elpais-opinion-parser/internal/checksum"
	"elpais-opinion-parser/internal/config"
	"elpais-opinion-parser/internal/observability"
	"elpais-opinion-parser/internal/output"
	"elpais-opinion-parser/internal/scraper"
)

type fakeSession struct{}

func (f *fakeSession) Open(url string) error { return nil }

func (f *fakeSession) Profile() (*browser.Profile, error) {
	return &browser.Profile{Name: "chrome", Platform: "linux", Version: "126"}, nil
}

func (f *fakeSession) Element(string) (*rod.Element, error) {
	return nil, errors.New("no live page")
}

func (f *fakeSession) ElementWithin(time.Duration, string) (*rod.Element, error) {
	return nil, errors.New("no live page")
}

func (f *fakeSession) SetLookupTimeout(time.Duration) {}

func (f *fakeSession) SaveElementScreenshot(*rod.Element, string) error {
	return errors.New("no live page")
}

func (f *fakeSession) CurrentURL() (string, error) {
	return "https://elpais.com/opinion/", nil
}

type fakeConsent struct{ called bool }

func (f *fakeConsent) Dismiss(scraper.Page) { f.called = true }

type fakeNavigator struct {
	err    error
	called bool
}

func (f *fakeNavigator) OpenOpinion(scraper.Page) error {
	f.called = true
	return f.err
}

type fakeExtractor struct {
	headers  []string
	outcomes []scraper.Outcome
	err      error
	called   bool
}

func (f *fakeExtractor) Extract(context.Context, scraper.Page, *output.RunPaths) ([]string, []scraper.Outcome, error) {
	f.called = true
	if f.err != nil {
		return nil, f.outcomes, f.err
	}
	return f.headers, f.outcomes, nil
}

type fakeTranslator struct {
	out    []string
	err    error
	called bool
}

func (f *fakeTranslator) Translate(_ context.Context, texts []string) ([]string, error) {
	f.called = true
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

type fakeReporter struct {
	passed []map[string]int
	failed []error
}

func (f *fakeReporter) ReportPassed(repeated map[string]int) {
	f.passed = append(f.passed, repeated)
}

func (f *fakeReporter) ReportFailed(err error) {
	f.failed = append(f.failed, err)
}

func testRunner(t *testing.T, nav *fakeNavigator, ext *fakeExtractor, tr *fakeTranslator, rep *fakeReporter) *Runner {
	t.Helper()

	cfg := &config.Config{
		BaseURL:     "https://elpais.com",
		MaxArticles: 5,
		Output:      config.OutputConfig{ImagesDir: t.TempDir()},
	}
	logger := observability.NewLogger(filepath.Join(t.TempDir(), "test.log"), "error", 1, 1, 1)

	return &Runner{
		cfg:        cfg,
		logger:     logger,
		session:    &fakeSession{},
		consent:    &fakeConsent{},
		navigator:  nav,
		extractor:  ext,
		translator: tr,
		reporter:   rep,
		checksums:  checksum.NewGenerator(),
	}
}

func TestRunReportsPassed(t *testing.T) {
	ext := &fakeExtractor{
		headers: []string{"El gato duerme", "el gato come"},
		outcomes: []scraper.Outcome{
			{Index: 0, Article: &scraper.Article{Header: "El gato duerme"}},
			{Index: 1, Article: &scraper.Article{Header: "el gato come"}},
		},
	}
	tr := &fakeTranslator{out: []string{"The cat sleeps", "the cat eats"}}
	rep := &fakeReporter{}

	runner := testRunner(t, &fakeNavigator{}, ext, tr, rep)

	if err := runner.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if len(rep.passed) != 1 || len(rep.failed) != 0 {
		t.Fatalf("Reported passed=%d failed=%d, want 1/0", len(rep.passed), len(rep.failed))
	}

	// Причина успеха — повторяющиеся слова из переведённых заголовков
	if rep.passed[0]["the"] != 2 || rep.passed[0]["cat"] != 2 {
		t.Errorf("Repeated words = %v", rep.passed[0])
	}
}

func TestRunFailureStopsPipeline(t *testing.T) {
	nav := &fakeNavigator{err: errors.New("navigation has 2 links, want at least 3")}
	ext := &fakeExtractor{}
	tr := &fakeTranslator{}
	rep := &fakeReporter{}

	runner := testRunner(t, nav, ext, tr, rep)

	err := runner.Run(context.Background())
	if err == nil {
		t.Fatalf("Run should fail when navigation fails")
	}

	// Первая ошибка финальна: последующие шаги не выполняются
	if ext.called {
		t.Errorf("Extractor ran after navigation failure")
	}
	if tr.called {
		t.Errorf("Translator ran after navigation failure")
	}

	if len(rep.failed) != 1 || len(rep.passed) != 0 {
		t.Fatalf("Reported passed=%d failed=%d, want 0/1", len(rep.passed), len(rep.failed))
	}
	if rep.failed[0].Error() != nav.err.Error() {
		t.Errorf("Reported reason = %q, want %q", rep.failed[0].Error(), nav.err.Error())
	}
}

func TestRunExtractionFailureReported(t *testing.T) {
	ext := &fakeExtractor{
		outcomes: []scraper.Outcome{{Index: 0, SkipReason: "header element not found"}},
		err:      errors.New("no articles extracted"),
	}
	tr := &fakeTranslator{}
	rep := &fakeReporter{}

	runner := testRunner(t, &fakeNavigator{}, ext, tr, rep)

	if err := runner.Run(context.Background()); err == nil {
		t.Fatalf("Run should fail when nothing was extracted")
	}

	if tr.called {
		t.Errorf("Translator ran after extraction failure")
	}
	if len(rep.failed) != 1 {
		t.Fatalf("Reported failed=%d, want 1", len(rep.failed))
	}
	if rep.failed[0].Error() != "no articles extracted" {
		t.Errorf("Reported reason = %q", rep.failed[0].Error())
	}
}
