package interpret

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestHTTPClient_MiniReport(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"interpretation": "мини-отчет готов"})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, 5*time.Second, nil)
	got, err := client.MiniReport(context.Background(), map[string]string{"report": "### Аркан_МЧ=18"})
	if err != nil {
		t.Fatalf("MiniReport: %v", err)
	}
	if got != "мини-отчет готов" {
		t.Fatalf("interpretation = %q", got)
	}
	if gotPath != "/webhook/numerology-mini-report" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotBody["report"] != "### Аркан_МЧ=18" {
		t.Fatalf("payload = %v", gotBody)
	}
}

func TestHTTPClient_ResponseKeyPerReportType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var key string
		switch r.URL.Path {
		case "/webhook/numerology-full-report":
			key = "full_interpretation"
		case "/webhook/numerology-compatibility":
			key = "compatibility"
		case "/webhook/weekly-forecast":
			key = "forecast"
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{key: "текст"})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, 5*time.Second, nil)
	ctx := context.Background()

	if got, err := client.FullReport(ctx, nil); err != nil || got != "текст" {
		t.Fatalf("FullReport = %q, %v", got, err)
	}
	if got, err := client.Compatibility(ctx, nil); err != nil || got != "текст" {
		t.Fatalf("Compatibility = %q, %v", got, err)
	}
	if got, err := client.WeeklyForecast(ctx, nil); err != nil || got != "текст" {
		t.Fatalf("WeeklyForecast = %q, %v", got, err)
	}
}

func TestHTTPClient_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, 5*time.Second, nil)
	_, err := client.MiniReport(context.Background(), nil)
	if err == nil || !strings.Contains(err.Error(), "status=502") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestHTTPClient_MissingKeyAndEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"other": "x"})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, 5*time.Second, nil)
	if _, err := client.MiniReport(context.Background(), nil); err == nil {
		t.Fatalf("expected missing key error")
	}

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"interpretation": "   "})
	}))
	defer empty.Close()

	client = NewHTTPClient(empty.URL, 5*time.Second, nil)
	if _, err := client.MiniReport(context.Background(), nil); err == nil {
		t.Fatalf("expected empty response error")
	}
}

func TestDisabledInterpreter(t *testing.T) {
	d := NewDisabled("test mode")
	if _, err := d.MiniReport(context.Background(), nil); err == nil {
		t.Fatalf("expected error from disabled interpreter")
	}
	if _, err := d.WeeklyForecast(context.Background(), nil); err == nil || err.Error() != "test mode" {
		t.Fatalf("expected reason in error, got %v", err)
	}
}
