package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders v with the shortest digits that round-trip.
//
// Plain notation is used for 1e-6 <= |v| < 1e21 and exponent notation outside it
// ("1e+21", "1.5e-7"). Negative zero prints as "0".
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	neg := s[0] == '-'
	if neg {
		s = s[1:]
	}
	mant, expPart, _ := strings.Cut(s, "e")
	exp, err := strconv.Atoi(expPart)
	if err != nil {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	digits := strings.Replace(mant, ".", "", 1)

	// v = 0.digits * 10^n
	k := len(digits)
	n := exp + 1

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	switch {
	case k <= n && n <= 21:
		b.WriteString(digits)
		b.WriteString(strings.Repeat("0", n-k))
	case 0 < n && n <= 21:
		b.WriteString(digits[:n])
		b.WriteByte('.')
		b.WriteString(digits[n:])
	case -6 < n && n <= 0:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -n))
		b.WriteString(digits)
	default:
		b.WriteByte(digits[0])
		if k > 1 {
			b.WriteByte('.')
			b.WriteString(digits[1:])
		}
		b.WriteByte('e')
		if n-1 >= 0 {
			b.WriteByte('+')
		}
		b.WriteString(strconv.Itoa(n - 1))
	}
	return b.String()
}

// ParseNumber parses the longest numeric prefix of s.
//
// It accepts an optional sign, digits with at most one decimal point, an optional
// exponent, or "Infinity". Input without a numeric prefix yields NaN.
func ParseNumber(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\r")
	if s == "" {
		return math.NaN()
	}

	i := 0
	sign := 1.0
	if s[0] == '+' || s[0] == '-' {
		if s[0] == '-' {
			sign = -1
		}
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		return math.Inf(int(sign))
	}

	start := i
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return math.NaN()
	}

	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			end = k
		}
	}

	v, err := strconv.ParseFloat(s[start:end], 64)
	if err != nil {
		// ErrRange still carries the saturated value (±Inf or 0).
		if !errors.Is(err, strconv.ErrRange) {
			return math.NaN()
		}
	}
	return sign * v
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
