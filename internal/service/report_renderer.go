package service

import (
	"fmt"
	"strings"
	"time"

	"numero-bot/internal/interpret"
	"numero-bot/internal/numerology"
)

// ReportRenderer arma el documento de texto plano que recibe el usuario.
// Es puro: toma datos y narrativa, devuelve el contenido completo.
type ReportRenderer struct{}

const (
	rendererRule      = "========================================"
	rendererThinRule  = "----------------------------------------"
	rendererStampLay  = "02.01.2006"
)

// RenderFull produce el reporte personal completo.
func (ReportRenderer) RenderFull(profile *numerology.Profile, sections interpret.FullReportSections, now time.Time) string {
	var sb strings.Builder

	writeHeader(&sb, "НУМЕРОЛОГИЧЕСКИЙ ОТЧЕТ", profile.FullName, profile.Birthdate, now)

	sb.WriteString("ВВЕДЕНИЕ\n")
	sb.WriteString(rendererThinRule + "\n")
	sb.WriteString(sections.Introduction + "\n\n")

	sb.WriteString("КЛЮЧЕВЫЕ ЧИСЛА ВАШЕЙ СУДЬБЫ\n")
	sb.WriteString(rendererThinRule + "\n")
	writeKeyNumbers(&sb, profile)

	sb.WriteString("ПОДРОБНЫЙ АНАЛИЗ ЧИСЕЛ\n")
	sb.WriteString(rendererThinRule + "\n")
	sb.WriteString(sections.LifePathDetailed + "\n\n")

	writeFooter(&sb, sections.Forecast, sections.Recommendations, now)
	return sb.String()
}

// RenderCompatibility produce el reporte de pareja.
func (ReportRenderer) RenderCompatibility(result *numerology.Compatibility, sections interpret.CompatibilitySections, now time.Time) string {
	var sb strings.Builder

	writeHeader(&sb, "ОТЧЕТ О НУМЕРОЛОГИЧЕСКОЙ СОВМЕСТИМОСТИ",
		result.PersonA.FullName, result.PersonA.Birthdate, now)

	sb.WriteString("ВВЕДЕНИЕ\n")
	sb.WriteString(rendererThinRule + "\n")
	sb.WriteString(sections.Intro + "\n\n")

	sb.WriteString("АНАЛИЗ СОВМЕСТИМОСТИ\n")
	sb.WriteString(rendererThinRule + "\n")
	fmt.Fprintf(&sb, "Партнер: %s\n", result.PersonB.FullName)
	fmt.Fprintf(&sb, "Дата рождения партнера: %s\n\n", result.PersonB.Birthdate)
	fmt.Fprintf(&sb, "Общая совместимость: %.1f%%\n\n", result.Scores.Percent)

	sb.WriteString("Сильные стороны отношений:\n")
	sb.WriteString(sections.Strengths + "\n\n")
	sb.WriteString("Возможные трудности:\n")
	sb.WriteString(sections.Challenges + "\n\n")
	if len(result.Challenges) > 0 {
		for _, challenge := range result.Challenges {
			fmt.Fprintf(&sb, "- %s\n", challenge)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("Рекомендации по улучшению отношений:\n")
	sb.WriteString(sections.Recommendations + "\n\n")

	writeFooter(&sb, "", "", now)
	return sb.String()
}

func writeHeader(sb *strings.Builder, title, fullName, birthdate string, now time.Time) {
	sb.WriteString(rendererRule + "\n")
	sb.WriteString(title + "\n")
	sb.WriteString(rendererRule + "\n\n")
	fmt.Fprintf(sb, "Отчет для: %s\n", fullName)
	fmt.Fprintf(sb, "Дата рождения: %s\n", birthdate)
	fmt.Fprintf(sb, "Дата составления: %s\n\n", now.Format(rendererStampLay))
}

// Los nombres legados de los números clave mapean a componentes del perfil:
// жизненный путь = СЗ, выражение = МЧ, душа = ЗК, личность = ПЧХ.
func writeKeyNumbers(sb *strings.Builder, profile *numerology.Profile) {
	fmt.Fprintf(sb, "Число жизненного пути: %d (%.1f%%)\n", profile.SocialSignificance.Arcane, profile.SocialSignificance.Percent)
	fmt.Fprintf(sb, "Число выражения: %d (%.1f%%)\n", profile.Master.Arcane, profile.Master.Percent)
	fmt.Fprintf(sb, "Число души: %d (%.1f%%)\n", profile.EarthCircle.Arcane, profile.EarthCircle.Percent)
	fmt.Fprintf(sb, "Число личности: %d (%.1f%%)\n\n", profile.HumanPotential.Arcane, profile.HumanPotential.Percent)
}

func writeFooter(sb *strings.Builder, forecast, recommendations string, now time.Time) {
	if forecast != "" || recommendations != "" {
		sb.WriteString("ПРОГНОЗ И РЕКОМЕНДАЦИИ\n")
		sb.WriteString(rendererThinRule + "\n")
		if forecast != "" {
			sb.WriteString(forecast + "\n\n")
		}
		if recommendations != "" {
			sb.WriteString("Личные рекомендации:\n")
			sb.WriteString(recommendations + "\n\n")
		}
	}
	sb.WriteString(rendererRule + "\n")
	fmt.Fprintf(sb, "© ИИ-Нумеролог %d. Все права защищены.\n", now.Year())
	sb.WriteString("Данный отчет сгенерирован с использованием искусственного интеллекта.\n")
}
