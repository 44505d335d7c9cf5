package mssql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/microsoft/go-mssqldb"

	"elpais-opinion-parser/internal/observability"
	"elpais-opinion-parser/internal/storage"
)

type Repository struct {
	db             *sql.DB
	commandTimeout time.Duration
	logger         *observability.Logger
}

func NewRepository(dsn string, commandTimeoutMS int, logger *observability.Logger) (*Repository, error) {
	db, err := sql.Open("sqlserver", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Тестируем соединение
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Repository{
		db:             db,
		commandTimeout: time.Duration(commandTimeoutMS) * time.Millisecond,
		logger:         logger,
	}, nil
}

// SaveRun сохраняет итог прогона и возвращает его UID
func (r *Repository) SaveRun(ctx context.Context, run *storage.RunRecord) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.commandTimeout)
	defer cancel()

	query := `
		INSERT INTO TblOpinionRuns ([StartedAt], [Browser], [Status], [Reason], [TotalWords])
		OUTPUT INSERTED.UID
		VALUES (@StartedAt, @Browser, @Status, @Reason, @TotalWords);
	`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() {
		if err := stmt.Close(); err != nil {
			r.logger.Error("Failed to close statement", "error", err.Error())
		}
	}()

	var uid int64
	err = stmt.QueryRowContext(ctx,
		sql.Named("StartedAt", run.StartedAt),
		sql.Named("Browser", run.Browser),
		sql.Named("Status", run.Status),
		sql.Named("Reason", run.Reason),
		sql.Named("TotalWords", run.TotalWords),
	).Scan(&uid)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	return uid, nil
}

// UpsertArticle сохраняет или обновляет статью по URL
func (r *Repository) UpsertArticle(ctx context.Context, runID int64, article *storage.ArticleRecord) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.commandTimeout)
	defer cancel()

	// MERGE statement для MS SQL
	query := `
		MERGE INTO TblOpinionArticles AS target
		USING (SELECT @URL AS URL) AS source
		ON target.[URL] = source.URL
		WHEN MATCHED THEN
			UPDATE SET
				[Run_UID] = @RunUID,
				[SequenceNum] = @SequenceNum,
				[Header] = @Header,
				[TranslatedHeader] = @TranslatedHeader,
				[Content] = @Content,
				[ImageURL] = @ImageURL,
				[CheckSum] = @CheckSum
		WHEN NOT MATCHED THEN
			INSERT ([Run_UID], [SequenceNum], [Header], [TranslatedHeader], [Content], [URL], [ImageURL], [CheckSum])
			VALUES (@RunUID, @SequenceNum, @Header, @TranslatedHeader, @Content, @URL, @ImageURL, @CheckSum);
	`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return false, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() {
		if err := stmt.Close(); err != nil {
			r.logger.Error("Failed to close statement", "error", err.Error())
		}
	}()

	result, err := stmt.ExecContext(ctx,
		sql.Named("RunUID", runID),
		sql.Named("SequenceNum", article.SequenceNum),
		sql.Named("Header", article.Header),
		sql.Named("TranslatedHeader", article.TranslatedHeader),
		sql.Named("Content", article.Content),
		sql.Named("URL", article.HeaderURL),
		sql.Named("ImageURL", article.ImageURL),
		sql.Named("CheckSum", article.CheckSum),
	)
	if err != nil {
		return false, fmt.Errorf("failed to execute upsert: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// Close закрывает соединение с БД
func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}
