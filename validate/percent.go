package validate

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	percentNumberRe = regexp.MustCompile(`\d+(?:[.,]\d+)?`)

	// "60,40" is a comma-separated pair of whole shares, not 60.40. Inputs
	// where a decimal comma is plausible ("33,5 / 66,5") never hit this
	// shape because they carry another separator between the shares.
	percentIntPairRe = regexp.MustCompile(`^\s*(\d+)\s*%?\s*,\s*(\d+)\s*%?\s*$`)
)

// NormalizePercentValue parses a single percentage out of free-form input
// ("40", "40%", "40,5 процентов") and reformats it. The share must fall in
// (0, 100].
func NormalizePercentValue(raw string) (string, bool) {
	nums := parsePercentNumbers(raw)
	if len(nums) != 1 {
		return "", false
	}
	v := nums[0]
	if v <= 0 || v > 100 {
		return "", false
	}
	return formatPercent(v) + "%", true
}

// NormalizePercentPair parses two percentages ("60,40", "60/40", "60% 40%")
// and reformats them as "60% / 40%". Both shares must be positive and sum to
// 100 within a hundredth of a point.
func NormalizePercentPair(raw string) (string, bool) {
	nums := parsePercentNumbers(raw)
	if m := percentIntPairRe.FindStringSubmatch(raw); m != nil {
		a, _ := strconv.ParseFloat(m[1], 64)
		b, _ := strconv.ParseFloat(m[2], 64)
		nums = []float64{a, b}
	}
	if len(nums) != 2 {
		return "", false
	}
	a, b := nums[0], nums[1]
	if a <= 0 || b <= 0 {
		return "", false
	}
	if math.Abs(a+b-100) > 0.01 {
		return "", false
	}
	return fmt.Sprintf("%s%% / %s%%", formatPercent(a), formatPercent(b)), true
}

func parsePercentNumbers(raw string) []float64 {
	matches := percentNumberRe.FindAllString(raw, -1)
	out := make([]float64, 0, len(matches))
	for _, m := range matches {
		v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", "."), 64)
		if err != nil {
			return nil
		}
		out = append(out, v)
	}
	return out
}

// formatPercent prints whole shares bare ("60") and fractional shares with up
// to two decimals, trailing zeros stripped ("33.5", "33.33").
func formatPercent(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// sharesComplement reports whether two normalized percent values ("40%",
// "60%") add up to a full hundred.
func sharesComplement(a, b string) bool {
	na := parsePercentNumbers(a)
	nb := parsePercentNumbers(b)
	if len(na) != 1 || len(nb) != 1 {
		return false
	}
	return math.Abs(na[0]+nb[0]-100) <= 0.01
}
