package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sum(shares []Share) float64 {
	var tenths int
	for _, s := range shares {
		tenths += int(s.Percent*10 + 0.5)
	}
	return float64(tenths) / 10
}

func TestDistribute(t *testing.T) {
	tests := []struct {
		name   string
		counts []int64
		want   []float64
	}{
		{"thirds", []int64{1, 1, 1}, []float64{33.4, 33.3, 33.3}},
		{"even", []int64{1, 1}, []float64{50, 50}},
		{"single", []int64{7}, []float64{100}},
		{"with zero", []int64{0, 3, 1}, []float64{0, 75, 25}},
		{"sevenths", []int64{1, 1, 1, 1, 1, 1, 1}, []float64{14.3, 14.3, 14.3, 14.3, 14.3, 14.3, 14.2}},
		{"skewed", []int64{2, 1, 1, 1, 1, 1, 1, 1, 1, 1}, []float64{18.1, 9.1, 9.1, 9.1, 9.1, 9.1, 9.1, 9.1, 9.1, 9.1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			labels := make([]string, len(tt.counts))
			shares := Distribute(labels, tt.counts)

			got := make([]float64, len(shares))
			for i, s := range shares {
				got[i] = s.Percent
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 100.0, sum(shares))
		})
	}
}

func TestDistribute_EmptyTotal(t *testing.T) {
	assert.Empty(t, Distribute([]string{"a", "b"}, []int64{0, 0}))
	assert.Empty(t, Distribute(nil, nil))
}
