package entity

import "strconv"

// FormatPrice печатает сумму в сумах с разделителями тысяч: "1,250,000 UZS".
func FormatPrice(v float64) string {
	s := strconv.FormatFloat(v, 'f', 0, 64)

	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte

	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}

		out = append(out, c)
	}

	if neg {
		out = append([]byte{'-'}, out...)
	}

	return string(out) + " UZS"
}
