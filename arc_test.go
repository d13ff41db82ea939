package vpath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArcToCubics_SegmentCount(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 Point
		r      float64
		want   int
	}{
		{"half circle", Pt(0, 0), Pt(10, 0), 5, 8},
		{"quarter circle", Pt(5, 0), Pt(0, 5), 5, 4},
		{"short arc", Pt(10, 0), Pt(10*math.Cos(0.1), 10*math.Sin(0.1)), 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cubics := arcToCubics(tt.p0, tt.r, tt.r, 0, false, true, tt.p1)
			require.Len(t, cubics, tt.want)
			assert.Equal(t, tt.p0, cubics[0].P0)
			assert.Equal(t, tt.p1, cubics[len(cubics)-1].P3)
			for i := 1; i < len(cubics); i++ {
				assert.Equal(t, cubics[i-1].P3, cubics[i].P0)
			}
		})
	}
}

func TestArcToCubics_Degenerate(t *testing.T) {
	assert.Nil(t, arcToCubics(Pt(1, 1), 5, 5, 0, false, true, Pt(1, 1)))

	cubics := arcToCubics(Pt(0, 0), 0, 5, 0, false, true, Pt(9, 0))
	require.Len(t, cubics, 1)
	assert.True(t, cubics[0].P1.Approx(Pt(3, 0), 1e-12))
	assert.True(t, cubics[0].P2.Approx(Pt(6, 0), 1e-12))
}
