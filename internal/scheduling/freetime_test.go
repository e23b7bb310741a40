package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeFreeWindows(t *testing.T) {
	cases := []struct {
		name  string
		start int
		end   int
		busy  []Interval
		want  []Interval
	}{
		{"empty day", 540, 1080, nil, []Interval{{540, 1080}}},
		{"overlapping busy", 540, 1080, []Interval{{650, 700}, {600, 660}}, []Interval{{540, 600}, {700, 1080}}},
		{"touching busy coalesce", 540, 1080, []Interval{{600, 660}, {660, 720}}, []Interval{{540, 600}, {720, 1080}}},
		{"short gaps dropped", 540, 1080, []Interval{{545, 600}, {1075, 1200}}, []Interval{{600, 1075}}},
		{"busy clipped to day", 540, 1080, []Interval{{0, 560}, {1000, 1440}}, []Interval{{560, 1000}}},
		{"fully busy", 540, 1080, []Interval{{500, 1100}}, []Interval{}},
		{"inverted day", 1080, 540, nil, []Interval{}},
		{"bounds clamped", -10, 2000, nil, []Interval{{0, 1440}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputeFreeWindows(tc.start, tc.end, tc.busy))
		})
	}
}
