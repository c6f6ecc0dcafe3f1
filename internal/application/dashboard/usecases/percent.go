package usecases

import "sort"

// Share is one slice of a distribution.
type Share struct {
	Label   string  `json:"label"`
	Count   int64   `json:"count"`
	Percent float64 `json:"percent"`
}

const tenthsOfWhole = 1000

// Distribute turns counts into percentages rounded to one decimal with the
// largest-remainder method, so the percentages sum to exactly 100.0. A zero
// total yields an empty distribution.
func Distribute(labels []string, counts []int64) []Share {
	var total int64
	for _, c := range counts {
		total += c
	}
	if total <= 0 {
		return []Share{}
	}

	type part struct {
		index     int
		tenths    int64
		remainder int64
	}
	parts := make([]part, len(counts))
	var assigned int64
	for i, c := range counts {
		scaled := c * tenthsOfWhole
		parts[i] = part{index: i, tenths: scaled / total, remainder: scaled % total}
		assigned += parts[i].tenths
	}

	byRemainder := make([]part, len(parts))
	copy(byRemainder, parts)
	sort.SliceStable(byRemainder, func(i, j int) bool {
		return byRemainder[i].remainder > byRemainder[j].remainder
	})
	for k := int64(0); k < tenthsOfWhole-assigned; k++ {
		parts[byRemainder[k].index].tenths++
	}

	shares := make([]Share, len(parts))
	for i, p := range parts {
		shares[i] = Share{Label: labels[i], Count: counts[i], Percent: float64(p.tenths) / 10}
	}
	return shares
}
