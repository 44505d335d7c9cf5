package scraper

import (
	"time"

	"github.com/go-rod/rod"
)

// Page — операции активной страницы, нужные шагам прогона.
// Реализуется browser.Session. Element ограничен текущим
// implicit wait сессии, ElementWithin — явным потолком.
type Page interface {
	Element(selector string) (*rod.Element, error)
	ElementWithin(timeout time.Duration, selector string) (*rod.Element, error)
	SetLookupTimeout(timeout time.Duration)
	SaveElementScreenshot(el *rod.Element, path string) error
	CurrentURL() (string, error)
}
