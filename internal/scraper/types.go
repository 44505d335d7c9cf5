package scraper

type Article struct {
	Header    string
	HeaderURL string
	ImageURL  string
	Content   string
}

// Outcome — результат извлечения одной карточки: либо статья,
// либо причина пропуска. Пропуск карточки не прерывает прогон.
type Outcome struct {
	Index      int
	Article    *Article
	SkipReason string
}

func (o *Outcome) Skipped() bool {
	return o.Article == nil
}
