package numerology

// Polarity clasifica un arcano como ИНЬ o ЯН.
type Polarity string

// Disposition clasifica un arcano como СУДЬБА o ВОЛЯ.
type Disposition string

// Los valores rusos son parte del formato de intercambio con el servicio de
// interpretación; no traducir.
const (
	PolarityYin  Polarity = "ИНЬ"
	PolarityYang Polarity = "ЯН"

	DispositionFate Disposition = "СУДЬБА"
	DispositionWill Disposition = "ВОЛЯ"
)

// arcanePercents asigna a cada arcano 1..22 su porcentaje fijo.
var arcanePercents = map[int]float64{
	1: 27.0, 2: 22.5, 3: 36.0, 4: 99.0, 5: 31.5,
	6: 18.0, 7: 54.0, 8: 58.5, 9: 40.5, 10: 81.0,
	11: 67.5, 12: 9.0, 13: 90.0, 14: 45.0, 15: 72.0,
	16: 94.5, 17: 63.0, 18: 13.5, 19: 85.5, 20: 4.5,
	21: 49.5, 22: 76.5,
}

var yinArcanes = map[int]bool{
	2: true, 3: true, 6: true, 12: true, 14: true, 15: true,
	17: true, 18: true, 20: true, 21: true, 22: true,
}

var fateArcanes = map[int]bool{
	1: true, 2: true, 5: true, 6: true, 9: true, 10: true,
	13: true, 14: true, 15: true, 16: true, 20: true,
}

// ArcanePercent devuelve el porcentaje tabulado del arcano, 0.0 si está
// fuera de rango.
func ArcanePercent(arcane int) float64 {
	return arcanePercents[arcane]
}

// PolarityOf clasifica el arcano por pertenencia al conjunto ИНЬ.
func PolarityOf(arcane int) Polarity {
	if yinArcanes[arcane] {
		return PolarityYin
	}
	return PolarityYang
}

// DispositionOf clasifica el arcano por pertenencia al conjunto СУДЬБА.
func DispositionOf(arcane int) Disposition {
	if fateArcanes[arcane] {
		return DispositionFate
	}
	return DispositionWill
}
