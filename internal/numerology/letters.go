package numerology

import (
	"strings"
	"unicode"
)

// letterValues es la tabla cerrada de 33 letras del alfabeto ruso.
// Cualquier carácter fuera de la tabla (latinos, dígitos, signos) vale 0.
var letterValues = map[rune]int{
	'а': 1, 'б': 2, 'в': 3, 'г': 4, 'д': 5, 'е': 6, 'ё': 6, 'ж': 8, 'з': 9,
	'и': 1, 'й': 2, 'к': 3, 'л': 4, 'м': 5, 'н': 6, 'о': 7, 'п': 8, 'р': 9,
	'с': 1, 'т': 2, 'у': 3, 'ф': 4, 'х': 5, 'ц': 6, 'ч': 7, 'ш': 8, 'щ': 9,
	'ъ': 1, 'ы': 2, 'ь': 3, 'э': 4, 'ю': 5, 'я': 6,
}

// LetterValue devuelve el valor numérico de una letra según la tabla,
// sin distinguir mayúsculas.
func LetterValue(r rune) int {
	return letterValues[unicode.ToLower(r)]
}

// UniqueLetters reduce un nombre completo a su secuencia de letras únicas.
// Toma los dos primeros tokens (apellido + nombre); si hay menos de dos usa
// la cadena entera. Conserva el orden de primera aparición, en minúsculas,
// descartando todo lo que no sea letra.
func UniqueLetters(fullName string) string {
	parts := strings.Fields(fullName)
	var base string
	if len(parts) >= 2 {
		base = parts[0] + parts[1]
	} else {
		base = fullName
	}

	var sb strings.Builder
	seen := make(map[rune]bool)
	for _, r := range strings.ToLower(base) {
		if !unicode.IsLetter(r) || seen[r] {
			continue
		}
		seen[r] = true
		sb.WriteRune(r)
	}
	return sb.String()
}

// lettersSum suma los valores de cada letra de la secuencia.
func lettersSum(letters string) int {
	total := 0
	for _, r := range letters {
		total += LetterValue(r)
	}
	return total
}
