package app

import (
	"context"
	"strings"
	"time"

	"elpais-opinion-parser/internal/browser"
	"elpais-opinion-parser/internal/checksum"
	"elpais-opinion-parser/internal/config"
	"elpais-opinion-parser/internal/fetcher"
	"elpais-opinion-parser/internal/observability"
	"elpais-opinion-parser/internal/output"
	"elpais-opinion-parser/internal/report"
	"elpais-opinion-parser/internal/scraper"
	"elpais-opinion-parser/internal/storage"
	"elpais-opinion-parser/internal/translate"
	"elpais-opinion-parser/internal/wordfreq"
)

// Шаги машины состояний. Поля Runner объявлены интерфейсами,
// чтобы порядок исполнения проверялся без живого браузера.
type runSession interface {
	scraper.Page
	Open(url string) error
	Profile() (*browser.Profile, error)
}

type consentStep interface {
	Dismiss(sess scraper.Page)
}

type navigationStep interface {
	OpenOpinion(sess scraper.Page) error
}

type extractStep interface {
	Extract(ctx context.Context, sess scraper.Page, paths *output.RunPaths) ([]string, []scraper.Outcome, error)
}

type headerTranslator interface {
	Translate(ctx context.Context, texts []string) ([]string, error)
}

type statusReporter interface {
	ReportPassed(repeated map[string]int)
	ReportFailed(err error)
}

// Runner прогоняет машину состояний одного прогона:
// Start → ConsentHandled → Navigated → ArticlesExtracted →
// Translated → Analyzed → Reported. Первая ошибка любого шага
// финальна: прогон репортится как failed и завершается.
type Runner struct {
	cfg        *config.Config
	logger     *observability.Logger
	session    runSession
	consent    consentStep
	navigator  navigationStep
	extractor  extractStep
	translator headerTranslator
	reporter   statusReporter
	repo       storage.Repository // nil, если хранилище выключено
	checksums  *checksum.Generator

	startedAt  time.Time
	browserDir string
}

func NewRunner(
	cfg *config.Config,
	selectors *config.Selectors,
	logger *observability.Logger,
	sess *browser.Session,
	translator *translate.Client,
	repo storage.Repository,
) *Runner {
	images := fetcher.NewImageFetcher(cfg, logger)

	return &Runner{
		cfg:        cfg,
		logger:     logger,
		session:    sess,
		consent:    scraper.NewConsentHandler(cfg, selectors, logger),
		navigator:  scraper.NewNavigator(cfg, selectors, logger),
		extractor:  scraper.NewExtractor(cfg, selectors, images, logger),
		translator: translator,
		reporter:   report.NewReporter(sess, logger),
		repo:       repo,
		checksums:  checksum.NewGenerator(),
	}
}

type runResult struct {
	Outcomes   []scraper.Outcome
	Headers    []string
	Translated []string
	Stats      wordfreq.Report
}

// Run выполняет прогон и всегда репортит исход оркестрации
func (r *Runner) Run(ctx context.Context) error {
	r.startedAt = time.Now()

	result, err := r.execute(ctx)
	if err != nil {
		r.reporter.ReportFailed(err)
		r.persist(ctx, result, "failed", err.Error())
		return err
	}

	r.reporter.ReportPassed(result.Stats.Repeated)
	r.persist(ctx, result, "passed", "")
	return nil
}

func (r *Runner) execute(ctx context.Context) (*runResult, error) {
	// Профиль браузера нужен только для путей вывода:
	// его отсутствие не причина валить прогон
	r.browserDir = "unknown_browser"
	if profile, err := r.session.Profile(); err != nil {
		r.logger.Warn("Failed to resolve browser profile", "error", err.Error())
	} else {
		r.browserDir = profile.DirName()
	}

	paths, err := output.NewRunPaths(r.cfg.Output.ImagesDir, r.browserDir, r.startedAt)
	if err != nil {
		return nil, err
	}

	if err := r.session.Open(r.cfg.BaseURL); err != nil {
		return nil, err
	}

	r.consent.Dismiss(r.session)

	if err := r.navigator.OpenOpinion(r.session); err != nil {
		return nil, err
	}

	headers, outcomes, err := r.extractor.Extract(ctx, r.session, paths)
	if err != nil {
		return nil, err
	}

	translated, err := r.translator.Translate(ctx, headers)
	if err != nil {
		return nil, err
	}

	stats := wordfreq.Analyze(translated)
	r.logAnalysis(len(translated), stats)

	return &runResult{
		Outcomes:   outcomes,
		Headers:    headers,
		Translated: translated,
		Stats:      stats,
	}, nil
}

func (r *Runner) logAnalysis(processed int, stats wordfreq.Report) {
	r.logger.Info("Successfully processed articles", "count", processed)

	for word, count := range stats.Repeated {
		r.logger.Info("Repeated word", "word", word, "count", count)
	}

	r.logger.Info("Unique words", "words", strings.Join(stats.Unique, ", "))
	r.logger.Info("Word frequency analysis completed",
		"total_words", stats.TotalWords,
		"repeated", len(stats.Repeated),
		"unique", len(stats.Unique),
	)
}

// persist сохраняет историю прогона, если хранилище включено.
// Ошибки хранилища только логируются: оно вспомогательное.
func (r *Runner) persist(ctx context.Context, result *runResult, status, reason string) {
	if r.repo == nil {
		return
	}

	run := &storage.RunRecord{
		StartedAt: r.startedAt,
		Browser:   r.browserDir,
		Status:    status,
		Reason:    reason,
	}
	if result != nil {
		run.TotalWords = result.Stats.TotalWords
	}

	runID, err := r.repo.SaveRun(ctx, run)
	if err != nil {
		r.logger.Error("Failed to save run record", "error", err.Error())
		return
	}

	if result == nil {
		return
	}

	// Переводы выровнены по порядку с успешными карточками
	translatedIdx := 0
	for _, outcome := range result.Outcomes {
		if outcome.Skipped() {
			continue
		}

		record := &storage.ArticleRecord{
			SequenceNum: outcome.Index,
			Header:      outcome.Article.Header,
			HeaderURL:   outcome.Article.HeaderURL,
			ImageURL:    outcome.Article.ImageURL,
			Content:     outcome.Article.Content,
			CheckSum: r.checksums.GenerateContentHash(
				outcome.Article.HeaderURL,
				outcome.Article.Header,
				outcome.Article.Content,
			),
		}
		if translatedIdx < len(result.Translated) {
			record.TranslatedHeader = result.Translated[translatedIdx]
		}
		translatedIdx++

		if _, err := r.repo.UpsertArticle(ctx, runID, record); err != nil {
			r.logger.Error("Failed to save article record",
				"index", outcome.Index,
				"error", err.Error(),
			)
		}
	}
}
