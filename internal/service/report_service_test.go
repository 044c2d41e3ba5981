package service

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"numero-bot/internal/domain"
	"numero-bot/internal/interpret"
	"numero-bot/internal/numerology"
)

type mockReportRepo struct {
	created []domain.Report
	paid    []string
	err     error
}

func (m *mockReportRepo) Create(_ context.Context, report domain.Report) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, report)
	return nil
}

func (m *mockReportRepo) ListByUserID(_ context.Context, userID string) ([]domain.Report, error) {
	var out []domain.Report
	for _, r := range m.created {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockReportRepo) MarkPaid(_ context.Context, id string) error {
	m.paid = append(m.paid, id)
	return nil
}

type memoryCache struct {
	data map[string]string
	hits int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string]string)}
}

func (c *memoryCache) Get(_ context.Context, key string) (string, bool) {
	value, ok := c.data[key]
	if ok {
		c.hits++
	}
	return value, ok
}

func (c *memoryCache) Set(_ context.Context, key, value string) {
	c.data[key] = value
}

func newTestReportService(interp interpret.Interpreter, cache InterpretationCache, repo *mockReportRepo, dir string) *ReportService {
	return NewReportService(interp, cache, repo, nil, dir, zap.NewNop())
}

func TestReportService_MiniReportUsesInterpretation(t *testing.T) {
	repo := &mockReportRepo{}
	mock := &interpret.MockInterpreter{Response: "Ваш мини-отчет."}
	svc := newTestReportService(mock, nil, repo, "")

	report, err := svc.MiniReport(context.Background(), "user-1", "01.01.1990", "Иванов Иван")
	if err != nil {
		t.Fatalf("MiniReport: %v", err)
	}
	if report.Type != domain.ReportTypeMini || report.Narrative != "Ваш мини-отчет." {
		t.Fatalf("report = %+v", report)
	}
	if report.Paid {
		t.Fatalf("mini report should not be born paid")
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one stored report, got %d", len(repo.created))
	}
}

func TestReportService_MiniReportDegradesToSummary(t *testing.T) {
	repo := &mockReportRepo{}
	mock := &interpret.MockInterpreter{Err: errors.New("webhook down")}
	svc := newTestReportService(mock, nil, repo, "")

	report, err := svc.MiniReport(context.Background(), "user-1", "01.01.1990", "Иванов Иван")
	if err != nil {
		t.Fatalf("MiniReport: %v", err)
	}
	if !strings.Contains(report.Narrative, "### Аркан_МЧ=18") {
		t.Fatalf("expected engine summary fallback, got %q", report.Narrative)
	}
}

func TestReportService_InvalidDatePropagates(t *testing.T) {
	repo := &mockReportRepo{}
	svc := newTestReportService(&interpret.MockInterpreter{Response: "x"}, nil, repo, "")

	_, err := svc.MiniReport(context.Background(), "user-1", "30.02.2000", "Иванов Иван")
	var invalid *numerology.InvalidDateError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidDateError, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("no report should be stored on engine failure")
	}
}

func TestReportService_CachesInterpretation(t *testing.T) {
	repo := &mockReportRepo{}
	cache := newMemoryCache()
	mock := &interpret.MockInterpreter{Response: "Нарратив."}
	svc := newTestReportService(mock, cache, repo, "")

	ctx := context.Background()
	if _, err := svc.MiniReport(ctx, "user-1", "01.01.1990", "Иванов Иван"); err != nil {
		t.Fatalf("first MiniReport: %v", err)
	}
	if _, err := svc.MiniReport(ctx, "user-1", "01.01.1990", "Иванов Иван"); err != nil {
		t.Fatalf("second MiniReport: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected one upstream call, got %d", len(mock.Calls))
	}
	if cache.hits != 1 {
		t.Fatalf("expected one cache hit, got %d", cache.hits)
	}
}

func TestReportService_FullReportWritesDocument(t *testing.T) {
	dir := t.TempDir()
	repo := &mockReportRepo{}
	mock := &interpret.MockInterpreter{Response: "Введение.\n\nБлок один.\n\nБлок два.\n\nРекомендации."}
	svc := newTestReportService(mock, nil, repo, dir)

	report, err := svc.FullReport(context.Background(), "user-1", "01.01.1990", "Иванов Иван")
	if err != nil {
		t.Fatalf("FullReport: %v", err)
	}
	if report.FilePath == "" {
		t.Fatalf("expected document path")
	}

	data, err := os.ReadFile(report.FilePath)
	if err != nil {
		t.Fatalf("read document: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "НУМЕРОЛОГИЧЕСКИЙ ОТЧЕТ") {
		t.Fatalf("document missing title:\n%s", content)
	}
	if !strings.Contains(content, "Введение.") {
		t.Fatalf("document missing narrative intro:\n%s", content)
	}
	if !strings.Contains(content, "Число выражения: 18") {
		t.Fatalf("document missing key numbers:\n%s", content)
	}
}

func TestReportService_CompatibilityReport(t *testing.T) {
	dir := t.TempDir()
	repo := &mockReportRepo{}
	mock := &interpret.MockInterpreter{Response: "Пара совместима на 84.5%.\n\nСила.\n\nТрудности.\n\nСоветы."}
	svc := newTestReportService(mock, nil, repo, dir)

	report, err := svc.CompatibilityReport(context.Background(), "user-1",
		numerology.Person{Birthdate: "01.01.1990", FullName: "Иванов Иван"},
		numerology.Person{Birthdate: "14.03.1995", FullName: "КАРЛЮК ОЛЬГА ЕВГЕНЬЕВНА"},
	)
	if err != nil {
		t.Fatalf("CompatibilityReport: %v", err)
	}
	if report.Type != domain.ReportTypeCompatibility {
		t.Fatalf("type = %q", report.Type)
	}

	data, err := os.ReadFile(report.FilePath)
	if err != nil {
		t.Fatalf("read document: %v", err)
	}
	if !strings.Contains(string(data), "Общая совместимость: 84.5%") {
		t.Fatalf("document missing score:\n%s", string(data))
	}
}

func TestReportService_CompatibilityInvalidSecondPerson(t *testing.T) {
	repo := &mockReportRepo{}
	svc := newTestReportService(&interpret.MockInterpreter{Response: "x"}, nil, repo, "")

	_, err := svc.CompatibilityReport(context.Background(), "user-1",
		numerology.Person{Birthdate: "01.01.1990", FullName: "Иванов Иван"},
		numerology.Person{Birthdate: "31.11.2000", FullName: "А"},
	)
	if err == nil || !strings.Contains(err.Error(), "second person") {
		t.Fatalf("expected second person error, got %v", err)
	}
}

func TestReportService_StoreFailureSurfaces(t *testing.T) {
	repo := &mockReportRepo{err: pgx.ErrTxClosed}
	svc := newTestReportService(&interpret.MockInterpreter{Response: "x"}, nil, repo, "")

	_, err := svc.MiniReport(context.Background(), "user-1", "01.01.1990", "Иванов Иван")
	if err == nil || !strings.Contains(err.Error(), "store report") {
		t.Fatalf("expected store error, got %v", err)
	}
}
