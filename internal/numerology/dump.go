package numerology

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"
)

// Dumper guarda los cálculos en disco para depuración y monitoreo.
// Es un efecto opcional de mejor esfuerzo: ningún fallo de escritura se
// propaga, solo se registra en el log.
type Dumper struct {
	dir    string
	logger *zap.Logger
}

// NewDumper crea un Dumper sobre el directorio dado. Con dir vacío el
// Dumper queda deshabilitado.
func NewDumper(dir string, logger *zap.Logger) *Dumper {
	return &Dumper{dir: dir, logger: logger}
}

// DumpProfile escribe el resumen de un perfil. Devuelve la ruta creada o
// cadena vacía si no se escribió nada.
func (d *Dumper) DumpProfile(p *Profile) string {
	if d == nil || d.dir == "" || p == nil {
		return ""
	}
	now := time.Now()
	filename := fmt.Sprintf("%s_%s.md", now.Format("20060102_150405"), sanitizeName(p.FullName))

	var sb strings.Builder
	sb.WriteString("# Нумерологический расчет\n\n")
	fmt.Fprintf(&sb, "Дата рождения: %s\n", p.Birthdate)
	fmt.Fprintf(&sb, "ФИО: %s\n", p.FullName)
	fmt.Fprintf(&sb, "Дата и время расчета: %s\n\n", now.Format("02.01.2006 15:04:05"))
	sb.WriteString("## Параметры расчета\n\n")
	sb.WriteString(p.Summary())
	sb.WriteString(dumpFooter)

	return d.write(d.dir, filename, sb.String())
}

// DumpCompatibility escribe el resumen de un análisis de pareja en el
// subdirectorio compatibility/.
func (d *Dumper) DumpCompatibility(c *Compatibility) string {
	if d == nil || d.dir == "" || c == nil {
		return ""
	}
	now := time.Now()
	filename := fmt.Sprintf("%s_%s_and_%s.md",
		now.Format("20060102_150405"),
		sanitizeName(c.PersonA.FullName),
		sanitizeName(c.PersonB.FullName),
	)

	var sb strings.Builder
	sb.WriteString("# Расчет совместимости\n\n")
	fmt.Fprintf(&sb, "Первый человек: %s, %s\n", c.PersonA.FullName, c.PersonA.Birthdate)
	fmt.Fprintf(&sb, "Второй человек: %s, %s\n", c.PersonB.FullName, c.PersonB.Birthdate)
	fmt.Fprintf(&sb, "Дата и время расчета: %s\n\n", now.Format("02.01.2006 15:04:05"))
	sb.WriteString(c.Summary())
	sb.WriteString(dumpFooter)

	return d.write(filepath.Join(d.dir, "compatibility"), filename, sb.String())
}

const dumpFooter = "\n\n## Примечание\n\n" +
	"Этот файл содержит данные, которые отправляются на интерпретацию.\n" +
	"Сам анализ и формирование отчета происходит на стороне ИИ-сервиса.\n"

func (d *Dumper) write(dir, filename, content string) string {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		d.log("create dump dir failed", dir, err)
		return ""
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		d.log("write dump failed", path, err)
		return ""
	}
	return path
}

func (d *Dumper) log(msg, path string, err error) {
	if d.logger != nil {
		d.logger.Warn(msg, zap.String("path", path), zap.Error(err))
	}
}

// sanitizeName reemplaza todo carácter no alfanumérico por '_' para que el
// nombre de archivo sea seguro y resistente a colisiones entre escritores.
func sanitizeName(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteRune('_')
		}
	}
	return sb.String()
}
