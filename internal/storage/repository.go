package storage

import (
	"context"
	"time"
)

// RunRecord — итог одного прогона для истории
type RunRecord struct {
	StartedAt  time.Time
	Browser    string
	Status     string // passed / failed
	Reason     string
	TotalWords int
}

// ArticleRecord — извлечённая статья для сохранения в БД
type ArticleRecord struct {
	SequenceNum      int
	Header           string
	HeaderURL        string
	ImageURL         string
	Content          string
	TranslatedHeader string
	CheckSum         string // SHA256 контента
}

// Repository — интерфейс хранилища истории прогонов.
// Хранилище вспомогательное: его ошибки не валят прогон.
type Repository interface {
	// SaveRun сохраняет итог прогона, возвращает его UID
	SaveRun(ctx context.Context, run *RunRecord) (int64, error)

	// UpsertArticle сохраняет или обновляет статью по URL,
	// возвращает isNew
	UpsertArticle(ctx context.Context, runID int64, article *ArticleRecord) (bool, error)

	Close() error
}
