package scraper

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"elpais-opinion-parser/internal/config"
)

// ParseArticles парсит HTML контейнера и возвращает результат по каждой
// карточке в порядке документа, не больше maxArticles. Карточка без
// заголовка, ссылки или абзаца текста помечается пропущенной.
func ParseArticles(html string, sel *config.Selectors, pageURL string, maxArticles int) ([]Outcome, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse container HTML: %w", err)
	}

	var outcomes []Outcome

	doc.Find(sel.ArticleCard).EachWithBreak(func(i int, card *goquery.Selection) bool {
		if i >= maxArticles {
			return false
		}
		outcomes = append(outcomes, parseCard(i, card, sel, pageURL))
		return true
	})

	return outcomes, nil
}

func parseCard(index int, card *goquery.Selection, sel *config.Selectors, pageURL string) Outcome {
	header := card.Find(sel.Header).First()
	if header.Length() == 0 {
		return Outcome{Index: index, SkipReason: "header element not found"}
	}

	headerText := strings.TrimSpace(header.Text())
	if headerText == "" {
		return Outcome{Index: index, SkipReason: "header text is empty"}
	}

	href, exists := header.Find(sel.HeaderLink).First().Attr("href")
	if !exists || href == "" {
		return Outcome{Index: index, SkipReason: "header link not found"}
	}

	content := card.Find(sel.Content).First()
	if content.Length() == 0 {
		return Outcome{Index: index, SkipReason: "content paragraph not found"}
	}

	article := &Article{
		Header:    headerText,
		HeaderURL: resolveURL(pageURL, href),
		Content:   strings.TrimSpace(content.Text()),
	}

	// Изображение опционально: сначала основной атрибут, затем lazy-load
	img := card.Find(sel.Image).First()
	if img.Length() > 0 {
		src, ok := img.Attr(sel.ImageAttr)
		if !ok || src == "" {
			src, _ = img.Attr(sel.ImageFallbackAttr)
		}
		if src != "" {
			article.ImageURL = resolveURL(pageURL, src)
		}
	}

	return Outcome{Index: index, Article: article}
}

// resolveURL приводит ссылку к абсолютной относительно страницы
func resolveURL(pageURL, href string) string {
	href = strings.TrimSpace(href)
	base, err := url.Parse(pageURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
