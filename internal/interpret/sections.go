package interpret

import (
	"regexp"
	"strconv"
	"strings"
)

// La narrativa llega como texto plano separado por líneas en blanco; estas
// estructuras le dan forma para el renderizado de documentos. Los textos por
// defecto replican los del bot original.

// FullReportSections es la narrativa del reporte completo ya seccionada.
type FullReportSections struct {
	Introduction     string `json:"introduction"`
	LifePathDetailed string `json:"life_path_detailed"`
	Forecast         string `json:"forecast"`
	Recommendations  string `json:"recommendations"`
}

// CompatibilitySections es la narrativa del reporte de pareja ya seccionada.
type CompatibilitySections struct {
	Intro           string  `json:"intro"`
	Score           float64 `json:"score"`
	Strengths       string  `json:"strengths"`
	Challenges      string  `json:"challenges"`
	Recommendations string  `json:"recommendations"`
}

var percentPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)%`)

// ParseFullReport separa la narrativa del reporte completo en secciones.
func ParseFullReport(text string) FullReportSections {
	sections := FullReportSections{
		Introduction:     "Персональный нумерологический анализ на основе ваших данных.",
		LifePathDetailed: "Подробный анализ числа жизненного пути.",
		Forecast:         "Прогноз на ближайшее время.",
		Recommendations:  "Рекомендации для вашего развития.",
	}

	parts := splitSections(text)
	if len(parts) >= 3 {
		sections.Introduction = parts[0]
		sections.LifePathDetailed = strings.Join(parts[1:3], "\n")
		if len(parts) > 3 {
			sections.Recommendations = parts[len(parts)-1]
		}
	}
	return sections
}

// ParseCompatibilityReport separa la narrativa de pareja en secciones y
// extrae el porcentaje de compatibilidad si aparece en el texto.
func ParseCompatibilityReport(text string) CompatibilitySections {
	sections := CompatibilitySections{
		Intro:           "Анализ совместимости на основе нумерологических расчетов.",
		Score:           75,
		Strengths:       "Сильные стороны отношений.",
		Challenges:      "Возможные трудности в отношениях.",
		Recommendations: "Рекомендации для улучшения отношений.",
	}

	if match := percentPattern.FindStringSubmatch(text); match != nil {
		if score, err := strconv.ParseFloat(match[1], 64); err == nil {
			sections.Score = score
		}
	}

	parts := splitSections(text)
	if len(parts) >= 1 {
		sections.Intro = parts[0]
	}
	if len(parts) >= 2 {
		sections.Strengths = parts[1]
	}
	if len(parts) >= 3 {
		sections.Challenges = parts[2]
	}
	if len(parts) >= 4 {
		sections.Recommendations = parts[3]
	}
	return sections
}

func splitSections(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return strings.Split(text, "\n\n")
}
