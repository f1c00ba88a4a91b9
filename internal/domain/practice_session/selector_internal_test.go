package practicesession

import "testing"

func TestPickWeighted(t *testing.T) {
	weights := []float64{1, 2, 3}

	tests := []struct {
		r    float64
		want int
	}{
		{0, 0},
		{1, 0},
		{1.5, 1},
		{3, 1},
		{3.01, 2},
		{6, 2},
		{6.0000001, 2}, // rounding overshoot: last candidate wins
	}

	for _, tt := range tests {
		if got := pickWeighted(weights, tt.r); got != tt.want {
			t.Errorf("pickWeighted(%v, %f) = %d, want %d", weights, tt.r, got, tt.want)
		}
	}
}
