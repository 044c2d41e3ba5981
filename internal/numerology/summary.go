package numerology

import (
	"fmt"
	"strings"
)

// Summary produce el esquema canónico de claves que se reenvía al servicio
// de interpretación y se guarda como registro de depuración. Es un formato
// de salida, no pensado para re-parsearse.
func (p *Profile) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Параметры по корневой дате %s\n", p.Birthdate)
	writeComponent(&sb, "Дт", p.Day)
	fmt.Fprintf(&sb, "## Параметры \"Мт\"\n")
	fmt.Fprintf(&sb, "### Аркан_Мт=%d\n", p.Month.Arcane)
	fmt.Fprintf(&sb, "### Процент_Мт=%.1f\n", p.Month.Percent)
	fmt.Fprintf(&sb, "### Тип_Мт=%s\n", p.Master.Polarity)
	writeComponent(&sb, "Гт", p.Year)
	fmt.Fprintf(&sb, "## Параметры \"МЧ\"\n")
	fmt.Fprintf(&sb, "### Аркан_МЧ=%d\n", p.Master.Arcane)
	fmt.Fprintf(&sb, "### Процент_МЧ=%.1f\n", p.Master.Percent)
	fmt.Fprintf(&sb, "### Тип_МЧ=%s\n", p.Master.Polarity)
	fmt.Fprintf(&sb, "### ПДМ_МЧ=%s\n", p.Master.Disposition)
	writeComponent(&sb, "ЗК", p.EarthCircle)
	writeComponent(&sb, "ПЧХ", p.HumanPotential)
	writeComponent(&sb, "КЧХ", p.KarmicHuman)
	writeComponent(&sb, "ПР", p.PlanetaryResonance)
	writeComponent(&sb, "СЗ", p.SocialSignificance)
	writeComponent(&sb, "ОПВ", p.PowerAttitude)
	writeComponent(&sb, "ЭБ", p.EnergyBalance)
	writeComponent(&sb, "БС", p.FateBlock)
	fmt.Fprintf(&sb, "## Параметры \"СТ\"\n")
	fmt.Fprintf(&sb, "### Аркан_СТ=%d\n", p.Status.Arcane)
	fmt.Fprintf(&sb, "### Процент_СТ=%.1f\n", p.Status.Percent)
	return sb.String()
}

func writeComponent(sb *strings.Builder, label string, c Component) {
	fmt.Fprintf(sb, "## Параметры %q\n", label)
	fmt.Fprintf(sb, "### Аркан_%s=%d\n", label, c.Arcane)
	fmt.Fprintf(sb, "### Процент_%s=%.1f\n", label, c.Percent)
}

// Summary produce el esquema canónico del análisis de pareja, con los
// puntajes en forma porcentual y las dos cartas completas.
func (c *Compatibility) Summary() string {
	var sb strings.Builder
	sb.WriteString("# Анализ совместимости\n")
	sb.WriteString("## Общие параметры\n")
	fmt.Fprintf(&sb, "### Совместимость_Общая=%.1f%%\n", c.Scores.Percent)
	fmt.Fprintf(&sb, "### Совместимость_Жизненные_Пути=%.1f%%\n", c.Scores.LifePath*10)
	fmt.Fprintf(&sb, "### Совместимость_Эмоциональная=%.1f%%\n", c.Scores.Emotional*10)
	fmt.Fprintf(&sb, "### Совместимость_Интеллектуальная=%.1f%%\n", c.Scores.Intellectual*10)
	fmt.Fprintf(&sb, "### Совместимость_Физическая=%.1f%%\n", c.Scores.Physical*10)
	karmic := "Нет"
	if c.KarmicConnection {
		karmic = "Да"
	}
	fmt.Fprintf(&sb, "### Кармическая_Связь=%s\n", karmic)
	sb.WriteString("\n## Аркан Совместимости\n")
	fmt.Fprintf(&sb, "### Аркан_С1=%d\n", c.PersonA.Master.Arcane)
	fmt.Fprintf(&sb, "### Аркан_С2=%d\n", c.PersonB.Master.Arcane)
	fmt.Fprintf(&sb, "### Тип_С1=%s\n", c.PersonA.Master.Polarity)
	fmt.Fprintf(&sb, "### Тип_С2=%s\n", c.PersonB.Master.Polarity)
	sb.WriteString("\n## Карта Совместимости\n")
	fmt.Fprintf(&sb, "### Карта_С1=%s\n", c.PersonA.Summary())
	fmt.Fprintf(&sb, "### Карта_С2=%s\n", c.PersonB.Summary())
	return sb.String()
}
