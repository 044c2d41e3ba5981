package numerology

import (
	"fmt"
	"math"
	"time"
)

// Formatos de fecha aceptados: ISO cuando la cadena contiene '-', si no DD.MM.YYYY.
const (
	isoDateLayout = "2006-01-02"
	dotDateLayout = "02.01.2006"
)

// InvalidDateError es el único error de dominio del motor: la fecha de
// nacimiento no se pudo interpretar como fecha de calendario válida.
type InvalidDateError struct {
	Input string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid birthdate %q", e.Input)
}

// Component es un par arcano/porcentaje derivado del perfil.
type Component struct {
	Arcane  int     `json:"arcane"`
	Percent float64 `json:"percent"`
}

// MasterComponent es el Мастер Число con sus dos clasificaciones.
type MasterComponent struct {
	Arcane      int         `json:"arcane"`
	Percent     float64     `json:"percent"`
	Polarity    Polarity    `json:"tm_type"`
	Disposition Disposition `json:"pdm_type"`
}

// StatusComponent lleva un porcentaje con signo (diferencia, no tabla) y el
// arcano más cercano a su valor absoluto.
type StatusComponent struct {
	Arcane  int     `json:"arcane"`
	Percent float64 `json:"percent"`
}

// Profile es el resultado inmutable del cálculo. Las claves JSON replican el
// formato que consume el servicio de interpretación (dt, mt, gt, ...).
type Profile struct {
	Birthdate     string `json:"birthdate"` // normalizada a DD.MM.YYYY
	FullName      string `json:"fio"`
	UniqueLetters string `json:"unique_letters"`

	Day                Component       `json:"dt"`
	Month              Component       `json:"mt"`
	Year               Component       `json:"gt"`
	Master             MasterComponent `json:"master_number"`
	EarthCircle        Component       `json:"zk"`
	HumanPotential     Component       `json:"pch"`
	KarmicHuman        Component       `json:"kch"`
	PlanetaryResonance Component       `json:"pr"`
	SocialSignificance Component       `json:"sz"`
	PowerAttitude      Component       `json:"opv"`
	EnergyBalance      Component       `json:"eb"`
	FateBlock          Component       `json:"bs"`
	Status             StatusComponent `json:"st"`
}

// ParseBirthdate interpreta la fecha en los dos formatos soportados.
func ParseBirthdate(birthdate string) (time.Time, error) {
	layout := dotDateLayout
	for _, r := range birthdate {
		if r == '-' {
			layout = isoDateLayout
			break
		}
	}
	t, err := time.Parse(layout, birthdate)
	if err != nil {
		return time.Time{}, &InvalidDateError{Input: birthdate}
	}
	return t, nil
}

// ComputeProfile ejecuta el pipeline completo de cálculo para una persona.
// Es una función pura: mismas entradas, mismo resultado, sin estado oculto.
func ComputeProfile(birthdate, fullName string) (*Profile, error) {
	date, err := ParseBirthdate(birthdate)
	if err != nil {
		return nil, err
	}

	day := ArcaneReduce(date.Day())
	month := int(date.Month()) // 1..12 ya cae dentro de [1,22], sin reducción
	year := ArcaneReduce(digitSum(date.Year()))

	letters := UniqueLetters(fullName)
	master := ArcaneReduce(lettersSum(letters))

	earthCircle := ArcaneReduce(day + 2*month + year)
	humanPotential := ArcaneReduce(4*day + 3*month + 3*year)
	karmicHuman := ArcaneReduce(foldPositive(day - year))
	planetaryResonance := ArcaneReduce(6*day + 6*month + 5*year)
	socialSignificance := ArcaneReduce(day + month + year)
	powerAttitude := ArcaneReduce(foldPositive(day - month))
	energyBalance := ArcaneReduce(foldPositive(month - year))
	fateBlock := ArcaneReduce(master + day + month)

	x := (ArcanePercent(master) + ArcanePercent(humanPotential)) / 2
	y := (ArcanePercent(fateBlock) + ArcanePercent(karmicHuman)) / 2
	statusPercent := x - y

	return &Profile{
		Birthdate:          date.Format(dotDateLayout),
		FullName:           fullName,
		UniqueLetters:      letters,
		Day:                component(day),
		Month:              component(month),
		Year:               component(year),
		Master: MasterComponent{
			Arcane:      master,
			Percent:     ArcanePercent(master),
			Polarity:    PolarityOf(master),
			Disposition: DispositionOf(master),
		},
		EarthCircle:        component(earthCircle),
		HumanPotential:     component(humanPotential),
		KarmicHuman:        component(karmicHuman),
		PlanetaryResonance: component(planetaryResonance),
		SocialSignificance: component(socialSignificance),
		PowerAttitude:      component(powerAttitude),
		EnergyBalance:      component(energyBalance),
		FateBlock:          component(fateBlock),
		Status: StatusComponent{
			Arcane:  nearestArcane(statusPercent),
			Percent: statusPercent,
		},
	}, nil
}

// PersonalYear calcula el número de año personal para un año de referencia
// dado. El año se pasa explícito para mantener el motor sin dependencia del
// reloj.
func PersonalYear(birthdate string, year int) (int, error) {
	date, err := ParseBirthdate(birthdate)
	if err != nil {
		return 0, err
	}
	return ArcaneReduce(date.Day() + int(date.Month()) + year), nil
}

func component(arcane int) Component {
	return Component{Arcane: arcane, Percent: ArcanePercent(arcane)}
}

/// foldPositive aplica la política de las fórmulas de resta: un resultado
// cero o negativo se corrige sumando 22.
func foldPositive(v int) int {
	if v <= 0 {
		v += 22
	}
	return v
}

// nearestArcane busca el arcano cuyo porcentaje tabulado queda más cerca de
// |statusPercent|. Recorrido lineal 1..22, el primer mínimo gana el empate.
func nearestArcane(statusPercent float64) int {
	target := math.Abs(statusPercent)
	best := 0
	minDiff := math.Inf(1)
	for arcane := 1; arcane <= 22; arcane++ {
		diff := math.Abs(ArcanePercent(arcane) - target)
		if diff < minDiff {
			minDiff = diff
			best = arcane
		}
	}
	return best
}
