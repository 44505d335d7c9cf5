package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// RunPaths — контекст путей вывода одного прогона:
// images/test_<timestamp>/<browser>_<platform>_<major>/
type RunPaths struct {
	Root       string
	BrowserDir string
}

// NewRunPaths создаёт дерево директорий для прогона.
// browserDir приходит из профиля браузера; при неизвестном профиле
// вызывающая сторона передаёт "unknown_browser".
func NewRunPaths(imagesDir, browserDir string, startedAt time.Time) (*RunPaths, error) {
	timestamp := startedAt.Format("2006-01-02_15-04-05")
	root := filepath.Join(imagesDir, fmt.Sprintf("test_%s", timestamp))

	full := filepath.Join(root, browserDir)
	if err := os.MkdirAll(full, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	return &RunPaths{
		Root:       root,
		BrowserDir: full,
	}, nil
}

// ScreenshotPath — путь скриншота контейнера статей
func (p *RunPaths) ScreenshotPath() string {
	return filepath.Join(p.BrowserDir, "content_screenshot.png")
}

// ImagePath — путь изображения статьи по её порядковому номеру
func (p *RunPaths) ImagePath(index int) string {
	return filepath.Join(p.BrowserDir, fmt.Sprintf("article_%d.jpg", index))
}
