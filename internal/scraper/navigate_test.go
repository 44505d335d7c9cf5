package scraper

import (
	"errors"
	"strings"
	"testing"
)

func TestOpenOpinionUsesSessionLookup(t *testing.T) {
	page := &fakePage{elementErr: errors.New("nav never appeared")}
	navigator := NewNavigator(testConfig(), testSelectors(), testLogger(t))

	err := navigator.OpenOpinion(page)
	if err == nil {
		t.Fatalf("OpenOpinion should fail when navigation is missing")
	}
	if !strings.Contains(err.Error(), "failed to locate navigation region") {
		t.Errorf("Unexpected error: %v", err)
	}

	// Навигация ищется обычным поиском с потолком сессии,
	// а не отдельным явным ожиданием
	if len(page.elementSelectors) != 1 || page.elementSelectors[0] != "nav" {
		t.Errorf("Element lookups = %v, want [nav]", page.elementSelectors)
	}
	if len(page.withinSelectors) != 0 {
		t.Errorf("Unexpected explicit waits: %v", page.withinSelectors)
	}
}
