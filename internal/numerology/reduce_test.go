package numerology

import "testing"

func TestArcaneReduce_Boundaries(t *testing.T) {
	cases := map[int]int{
		0:  22,
		1:  1,
		22: 22,
		23: 1,
		44: 22,
		45: 1,
		66: 22,
	}
	for in, want := range cases {
		if got := ArcaneReduce(in); got != want {
			t.Fatalf("ArcaneReduce(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestArcaneReduce_NegativeInputsNormalize(t *testing.T) {
	if got := ArcaneReduce(-18); got != 4 {
		t.Fatalf("ArcaneReduce(-18) = %d, want 4", got)
	}
	if got := ArcaneReduce(-22); got != 22 {
		t.Fatalf("ArcaneReduce(-22) = %d, want 22", got)
	}
}

func TestArcaneReduce_AlwaysInRange(t *testing.T) {
	for n := 0; n <= 500; n++ {
		got := ArcaneReduce(n)
		if got < 1 || got > 22 {
			t.Fatalf("ArcaneReduce(%d) = %d, out of [1,22]", n, got)
		}
	}
}

func TestDigitSumReduce(t *testing.T) {
	cases := map[int]int{
		0:    0,
		9:    9,
		10:   1,
		28:   1,
		99:   9,
		1990: 1,
	}
	for in, want := range cases {
		if got := DigitSumReduce(in); got != want {
			t.Fatalf("DigitSumReduce(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestDigitSum_SinglePassOnly(t *testing.T) {
	// La suma de dígitos del año es de una sola pasada: 1990 -> 19, no 1.
	if got := digitSum(1990); got != 19 {
		t.Fatalf("digitSum(1990) = %d, want 19", got)
	}
	if got := digitSum(1995); got != 24 {
		t.Fatalf("digitSum(1995) = %d, want 24", got)
	}
}
