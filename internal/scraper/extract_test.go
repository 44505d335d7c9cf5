package scraper

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"elpais-opinion-parser/internal/output"
)

func TestCollectHeaders(t *testing.T) {
	outcomes := []Outcome{
		{Index: 0, Article: &Article{Header: "Primero"}},
		{Index: 1, SkipReason: "header element not found"},
		{Index: 2, Article: &Article{Header: "Tercero"}},
	}

	headers, err := CollectHeaders(outcomes)
	if err != nil {
		t.Fatalf("CollectHeaders error: %v", err)
	}

	want := []string{"Primero", "Tercero"}
	if !reflect.DeepEqual(headers, want) {
		t.Errorf("Headers = %v, want %v", headers, want)
	}
}

func TestCollectHeadersNoneExtracted(t *testing.T) {
	outcomes := []Outcome{
		{Index: 0, SkipReason: "header element not found"},
		{Index: 1, SkipReason: "content paragraph not found"},
	}

	_, err := CollectHeaders(outcomes)
	if err == nil {
		t.Fatalf("CollectHeaders should fail when every card is skipped")
	}
	if !strings.Contains(err.Error(), "no articles extracted") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestCollectHeadersEmpty(t *testing.T) {
	if _, err := CollectHeaders(nil); err == nil {
		t.Fatalf("CollectHeaders should fail on empty input")
	}
}

func TestExtractContainerTimeout(t *testing.T) {
	page := &fakePage{withinErr: errors.New("deadline exceeded")}
	extractor := NewExtractor(testConfig(), testSelectors(), nil, testLogger(t))

	paths, err := output.NewRunPaths(t.TempDir(), "chrome_linux_126", time.Now())
	if err != nil {
		t.Fatalf("NewRunPaths error: %v", err)
	}

	_, _, err = extractor.Extract(context.Background(), page, paths)
	if err == nil {
		t.Fatalf("Extract should fail when the container never appears")
	}
	if !strings.Contains(err.Error(), "article container") {
		t.Errorf("Unexpected error: %v", err)
	}
}
