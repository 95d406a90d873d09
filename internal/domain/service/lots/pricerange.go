package service

import (
	"regexp"
	"strconv"
	"strings"
)

//nolint:gochecknoglobals
var priceRangeRe = regexp.MustCompile(`^(\d+)([MB])?-(\d+)([MB])?$`)

const (
	million = 1_000_000
	billion = 1_000_000_000
)

// ParsePriceRange разбирает пользовательский диапазон вида "100M-500M" или
// "1B-5B". Единица по умолчанию — миллионы.
func ParsePriceRange(query string) (minPrice, maxPrice float64, ok bool) {
	query = strings.ToUpper(strings.ReplaceAll(query, " ", ""))

	m := priceRangeRe.FindStringSubmatch(query)
	if m == nil {
		return 0, 0, false
	}

	minVal, _ := strconv.ParseFloat(m[1], 64)
	maxVal, _ := strconv.ParseFloat(m[3], 64)

	return minVal * unitMultiplier(m[2]), maxVal * unitMultiplier(m[4]), true
}

func unitMultiplier(unit string) float64 {
	if unit == "B" {
		return billion
	}

	return million
}
