package bancore

import "strings"

// NormalizeCPF strips every non-digit rune from a raw CPF, so that
// "111.444.777-35" and "11144477735" map to the same key.
func NormalizeCPF(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidCPF reports whether raw is a well-formed CPF: 11 digits after
// normalization, not all identical, and both check digits matching the
// weighted mod-11 algorithm. It is a pure function and never panics on
// malformed input.
func ValidCPF(raw string) bool {
	cpf := NormalizeCPF(raw)
	if len(cpf) != 11 {
		return false
	}
	if strings.Count(cpf, cpf[:1]) == 11 {
		return false
	}

	digits := make([]int, 11)
	for i := range cpf {
		digits[i] = int(cpf[i] - '0')
	}

	// First check digit: weights 10..2 over the first 9 digits.
	if checkDigit(digits[:9], 10) != digits[9] {
		return false
	}
	// Second check digit: weights 11..2 over the first 10 digits.
	return checkDigit(digits[:10], 11) == digits[10]
}

// checkDigit computes a mod-11 check digit with descending weights starting
// at first: sum(digit[i] * (first - i)) % 11, mapped to 0 when the remainder
// is below 2 and to 11-remainder otherwise.
func checkDigit(digits []int, first int) int {
	sum := 0
	for i, d := range digits {
		sum += d * (first - i)
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}
