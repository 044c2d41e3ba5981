package numerology

import "fmt"

// Person identifica a una persona para el cálculo por pareja.
type Person struct {
	Birthdate string `json:"birthdate"`
	FullName  string `json:"fio"`
}

// CompatibilityScores agrupa los cuatro sub-puntajes [0,10], el total
// ponderado y su forma porcentual.
type CompatibilityScores struct {
	LifePath     float64 `json:"life_path"`
	Emotional    float64 `json:"emotional"`
	Intellectual float64 `json:"intellectual"`
	Physical     float64 `json:"physical"`
	Total        float64 `json:"total"`
	Percent      float64 `json:"percent"`
}

// Compatibility es el resultado inmutable del cálculo por pareja.
type Compatibility struct {
	PersonA          *Profile            `json:"person1"`
	PersonB          *Profile            `json:"person2"`
	Scores           CompatibilityScores `json:"compatibility"`
	KarmicConnection bool                `json:"karmic_connection"`
	Challenges       []string            `json:"challenges"`
}

// Textos de desafíos en el formato que muestra el bot; no traducir.
const (
	challengeLifePaths = "Разные жизненные пути"
	challengeEmotional = "Разные эмоциональные потребности"
	challengePolarity  = "Противоположные энергетические типы (Инь/Ян)"
)

// ComputeCompatibility calcula el perfil de cada persona y deriva los
// puntajes de pareja. Si una fecha es inválida, el error indica de quién.
func ComputeCompatibility(a, b Person) (*Compatibility, error) {
	profileA, err := ComputeProfile(a.Birthdate, a.FullName)
	if err != nil {
		return nil, fmt.Errorf("first person: %w", err)
	}
	profileB, err := ComputeProfile(b.Birthdate, b.FullName)
	if err != nil {
		return nil, fmt.Errorf("second person: %w", err)
	}

	lifePathDiff := absInt(profileA.SocialSignificance.Arcane - profileB.SocialSignificance.Arcane)
	emotionalDiff := absInt(profileA.EarthCircle.Arcane - profileB.EarthCircle.Arcane)
	intellectualDiff := absInt(profileA.Master.Arcane - profileB.Master.Arcane)
	physicalDiff := absInt(profileA.HumanPotential.Arcane - profileB.HumanPotential.Arcane)

	lifePath := diffScore(lifePathDiff)
	emotional := diffScore(emotionalDiff)
	intellectual := diffScore(intellectualDiff)
	physical := diffScore(physicalDiff)

	// Ponderación fija: 40% vida, 30% emocional, 20% intelectual, 10% físico.
	total := lifePath*0.4 + emotional*0.3 + intellectual*0.2 + physical*0.1

	karmic := profileA.SocialSignificance.Arcane == profileB.SocialSignificance.Arcane ||
		profileA.Master.Arcane == profileB.Master.Arcane

	var challenges []string
	if lifePathDiff > 5 {
		challenges = append(challenges, challengeLifePaths)
	}
	if emotionalDiff > 5 {
		challenges = append(challenges, challengeEmotional)
	}
	if profileA.Master.Polarity != profileB.Master.Polarity {
		challenges = append(challenges, challengePolarity)
	}

	return &Compatibility{
		PersonA: profileA,
		PersonB: profileB,
		Scores: CompatibilityScores{
			LifePath:     lifePath,
			Emotional:    emotional,
			Intellectual: intellectual,
			Physical:     physical,
			Total:        total,
			Percent:      total * 10,
		},
		KarmicConnection: karmic,
		Challenges:       challenges,
	}, nil
}

// diffScore convierte una diferencia de arcanos en puntaje [0,10].
func diffScore(diff int) float64 {
	score := 10 - 0.5*float64(diff)
	if score > 10 {
		score = 10
	}
	return score
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
