package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"numero-bot/internal/domain"
	"numero-bot/internal/interpret"
	"numero-bot/internal/numerology"
	"numero-bot/internal/repository"
)

// ReportService compone el motor, el servicio de interpretación y el
// renderizado en los tres reportes que vende el bot. Si la interpretación
// falla, el reporte degrada al resumen canónico del motor: el cálculo nunca
// se pierde por culpa del colaborador externo.
type ReportService struct {
	interp     interpret.Interpreter
	cache      InterpretationCache
	reports    repository.ReportRepository
	renderer   ReportRenderer
	dumper     *numerology.Dumper
	reportsDir string
	logger     *zap.Logger
}

func NewReportService(
	interp interpret.Interpreter,
	cache InterpretationCache,
	reports repository.ReportRepository,
	dumper *numerology.Dumper,
	reportsDir string,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		interp:     interp,
		cache:      cache,
		reports:    reports,
		renderer:   ReportRenderer{},
		dumper:     dumper,
		reportsDir: reportsDir,
		logger:     logger,
	}
}

// MiniReport genera el reporte gratuito de presentación.
func (s *ReportService) MiniReport(ctx context.Context, userID, birthdate, fullName string) (domain.Report, error) {
	profile, err := numerology.ComputeProfile(birthdate, fullName)
	if err != nil {
		return domain.Report{}, err
	}
	s.dumper.DumpProfile(profile)

	summary := profile.Summary()
	narrative, ok := s.interpretCached(ctx, domain.ReportTypeMini, summary, profile, s.interp.MiniReport)
	if !ok {
		narrative = summary
	}

	return s.saveReport(ctx, domain.Report{
		UserID:    userID,
		Type:      domain.ReportTypeMini,
		Narrative: narrative,
	})
}

// FullReport genera el reporte completo y su documento en disco.
func (s *ReportService) FullReport(ctx context.Context, userID, birthdate, fullName string) (domain.Report, error) {
	profile, err := numerology.ComputeProfile(birthdate, fullName)
	if err != nil {
		return domain.Report{}, err
	}
	s.dumper.DumpProfile(profile)

	summary := profile.Summary()
	narrative, ok := s.interpretCached(ctx, domain.ReportTypeFull, summary, profile, s.interp.FullReport)
	if !ok {
		narrative = summary
	}

	sections := interpret.ParseFullReport(narrative)
	document := s.renderer.RenderFull(profile, sections, time.Now())
	path := s.writeDocument(profile.FullName, domain.ReportTypeFull, document)

	return s.saveReport(ctx, domain.Report{
		UserID:    userID,
		Type:      domain.ReportTypeFull,
		Narrative: narrative,
		FilePath:  path,
	})
}

// CompatibilityReport genera el análisis de pareja y su documento.
func (s *ReportService) CompatibilityReport(ctx context.Context, userID string, a, b numerology.Person) (domain.Report, error) {
	result, err := numerology.ComputeCompatibility(a, b)
	if err != nil {
		return domain.Report{}, err
	}
	s.dumper.DumpCompatibility(result)

	summary := result.Summary()
	narrative, ok := s.interpretCached(ctx, domain.ReportTypeCompatibility, summary, result, s.interp.Compatibility)
	if !ok {
		narrative = summary
	}

	sections := interpret.ParseCompatibilityReport(narrative)
	document := s.renderer.RenderCompatibility(result, sections, time.Now())
	path := s.writeDocument(result.PersonA.FullName, domain.ReportTypeCompatibility, document)

	return s.saveReport(ctx, domain.Report{
		UserID:    userID,
		Type:      domain.ReportTypeCompatibility,
		Narrative: narrative,
		FilePath:  path,
	})
}

// ListByUser devuelve el historial de reportes del usuario.
func (s *ReportService) ListByUser(ctx context.Context, userID string) ([]domain.Report, error) {
	return s.reports.ListByUserID(ctx, userID)
}

// MarkPaid registra el pago confirmado de un reporte. El protocolo de pago
// vive fuera de este servicio; acá solo queda la contabilidad.
func (s *ReportService) MarkPaid(ctx context.Context, reportID string) error {
	return s.reports.MarkPaid(ctx, reportID)
}

type interpretFn func(ctx context.Context, payload any) (string, error)

// interpretCached consulta la cache por hash del resumen antes de llamar al
// servicio externo. El segundo valor indica si hay narrativa utilizable.
func (s *ReportService) interpretCached(ctx context.Context, reportType, summary string, payload any, call interpretFn) (string, bool) {
	key := CacheKey(reportType, summary)
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			return cached, true
		}
	}

	narrative, err := call(ctx, payload)
	if err != nil {
		s.logger.Warn("interpretation unavailable",
			zap.String("type", reportType),
			zap.Error(err),
		)
		return "", false
	}

	if s.cache != nil {
		s.cache.Set(ctx, key, narrative)
	}
	return narrative, true
}

func (s *ReportService) saveReport(ctx context.Context, report domain.Report) (domain.Report, error) {
	report.ID = uuid.NewString()
	report.CreatedAt = time.Now().UTC()
	if err := s.reports.Create(ctx, report); err != nil {
		return domain.Report{}, fmt.Errorf("store report: %w", err)
	}
	return report, nil
}

// writeDocument guarda el documento bajo un directorio por usuario, con
// nombre resistente a colisiones. Es mejor esfuerzo: en fallo devuelve vacío.
func (s *ReportService) writeDocument(fullName, reportType, content string) string {
	if s.reportsDir == "" {
		return ""
	}
	dir := filepath.Join(s.reportsDir, sanitizeFilename(fullName))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.logger.Warn("create report dir failed", zap.String("dir", dir), zap.Error(err))
		return ""
	}
	filename := fmt.Sprintf("%s_%s.txt", reportType, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		s.logger.Warn("write report failed", zap.String("path", path), zap.Error(err))
		return ""
	}
	return path
}

func sanitizeFilename(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteRune('_')
		}
	}
	if sb.Len() == 0 {
		return "user_unknown"
	}
	return sb.String()
}
