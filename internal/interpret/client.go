package interpret

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Interpreter define la interfaz hacia el servicio externo de narrativas.
// El motor produce los datos; la narrativa se genera del otro lado.
type Interpreter interface {
	MiniReport(ctx context.Context, payload any) (string, error)
	FullReport(ctx context.Context, payload any) (string, error)
	Compatibility(ctx context.Context, payload any) (string, error)
	WeeklyForecast(ctx context.Context, payload any) (string, error)
}

// Rutas de webhook por tipo de reporte.
const (
	miniReportPath     = "/webhook/numerology-mini-report"
	fullReportPath     = "/webhook/numerology-full-report"
	compatibilityPath  = "/webhook/numerology-compatibility"
	weeklyForecastPath = "/webhook/weekly-forecast"
)

// HTTPClient implementa Interpreter contra webhooks estilo n8n.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPClient construye un cliente apuntando a la base de webhooks.
func NewHTTPClient(baseURL string, timeout time.Duration, log *zap.Logger) *HTTPClient {
	if baseURL == "" {
		baseURL = "http://localhost:5678"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  log,
	}
}

func (c *HTTPClient) MiniReport(ctx context.Context, payload any) (string, error) {
	return c.post(ctx, miniReportPath, payload, "interpretation")
}

func (c *HTTPClient) FullReport(ctx context.Context, payload any) (string, error) {
	return c.post(ctx, fullReportPath, payload, "full_interpretation")
}

func (c *HTTPClient) Compatibility(ctx context.Context, payload any) (string, error) {
	return c.post(ctx, compatibilityPath, payload, "compatibility")
}

func (c *HTTPClient) WeeklyForecast(ctx context.Context, payload any) (string, error) {
	return c.post(ctx, weeklyForecastPath, payload, "forecast")
}

// post envía el payload al webhook y extrae la clave de respuesta esperada.
func (c *HTTPClient) post(ctx context.Context, path string, payload any, responseKey string) (string, error) {
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if c.logger != nil {
			c.logger.Warn("interpret error response",
				zap.Int("status", resp.StatusCode),
				zap.ByteString("body", respBody),
			)
		}
		return "", fmt.Errorf("interpret http error: status=%d", resp.StatusCode)
	}

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	raw, ok := parsed[responseKey]
	if !ok {
		return "", fmt.Errorf("interpret response missing %q", responseKey)
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return "", fmt.Errorf("unmarshal %q: %w", responseKey, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("interpret empty response")
	}
	return text, nil
}
