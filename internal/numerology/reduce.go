package numerology

// DigitSumReduce suma los dígitos decimales de n hasta dejar un solo dígito.
// Ejemplo: 28 -> 2+8 = 10 -> 1+0 = 1.
func DigitSumReduce(n int) int {
	for n > 9 {
		n = digitSum(n)
	}
	return n
}

// ArcaneReduce pliega cualquier entero al rango de arcanos [1, 22].
// Valores cero o negativos (producto de las fórmulas de resta) se normalizan
// sumando 22 antes de reducir; un múltiplo exacto de 22 vale 22, nunca 0.
func ArcaneReduce(n int) int {
	for n <= 0 {
		n += 22
	}
	for n > 22 {
		n -= 22
	}
	return n
}

// digitSum suma los dígitos decimales de n una sola vez, sin recursión.
// El cálculo del año depende de esta pasada única: no usar DigitSumReduce ahí.
func digitSum(n int) int {
	if n < 0 {
		n = -n
	}
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}
