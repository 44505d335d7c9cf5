package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"reflect"
	"testing"

	"elpais-opinion-parser/internal/config"
	"elpais-opinion-parser/internal/observability"
)

func testClient(t *testing.T, endpoint string) *Client {
	t.Helper()

	cfg := &config.Config{
		Translate: config.TranslateConfig{
			Endpoint: endpoint,
			Source:   "es",
			Target:   "en",
			Format:   "text",
			TimeoutS: 5,
		},
	}
	logger := observability.NewLogger(filepath.Join(t.TempDir(), "test.log"), "error", 1, 1, 1)

	return NewClient(cfg, "test-key", logger)
}

func TestTranslate(t *testing.T) {
	var gotBody translateRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Method = %s, want POST", r.Method)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("key = %q, want test-key", r.URL.Query().Get("key"))
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}

		_, _ = w.Write([]byte(`{"data":{"translations":[{"translatedText":"The cat sleeps"},{"translatedText":"the cat eats"}]}}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)

	result, err := client.Translate(context.Background(), []string{"El gato duerme", "el gato come"})
	if err != nil {
		t.Fatalf("Translate error: %v", err)
	}

	want := []string{"The cat sleeps", "the cat eats"}
	if !reflect.DeepEqual(result, want) {
		t.Errorf("Translate = %v, want %v", result, want)
	}

	if gotBody.Source != "es" || gotBody.Target != "en" || gotBody.Format != "text" {
		t.Errorf("Request parameters wrong: %+v", gotBody)
	}
	if !reflect.DeepEqual(gotBody.Q, []string{"El gato duerme", "el gato come"}) {
		t.Errorf("Request q = %v", gotBody.Q)
	}
}

func TestTranslateEmptyInputSkipsRequest(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	client := testClient(t, server.URL)

	result, err := client.Translate(context.Background(), nil)
	if err != nil {
		t.Fatalf("Translate error: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("Translate = %v, want empty", result)
	}
	if calls != 0 {
		t.Errorf("Translate made %d network calls on empty input", calls)
	}
}

func TestTranslateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := testClient(t, server.URL)

	result, err := client.Translate(context.Background(), []string{"hola"})
	if err == nil {
		t.Fatalf("Translate should fail on HTTP 500")
	}
	if result != nil {
		t.Errorf("Translate returned partial result on error: %v", result)
	}
}

func TestTranslateMissingData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error": "quota exceeded"}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)

	if _, err := client.Translate(context.Background(), []string{"hola"}); err == nil {
		t.Fatalf("Translate should fail when response has no data field")
	}
}

func TestTranslateCountMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"translations":[{"translatedText":"hello"}]}}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)

	if _, err := client.Translate(context.Background(), []string{"hola", "adiós"}); err == nil {
		t.Fatalf("Translate should fail when translation count differs from request count")
	}
}
