package pose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmoothstep(t *testing.T) {
	assert.Equal(t, 0.0, Smoothstep(0))
	assert.Equal(t, 1.0, Smoothstep(1))
	assert.Equal(t, 0.5, Smoothstep(0.5))

	prev := Smoothstep(0)
	for i := 1; i <= 100; i++ {
		cur := Smoothstep(float64(i) / 100)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestInterpolateEndpointsExact(t *testing.T) {
	lib := Default()
	names := lib.Names()

	for _, from := range names {
		for _, to := range names {
			a, err := lib.Get(from)
			require.NoError(t, err)
			b, err := lib.Get(to)
			require.NoError(t, err)

			for _, steps := range []int{2, 3, 10, 12, 20} {
				frames := Interpolate(a, b, steps)
				require.Len(t, frames, steps)
				assert.Equal(t, a, frames[0], "%s->%s/%d", from, to, steps)
				assert.Equal(t, b, frames[steps-1], "%s->%s/%d", from, to, steps)
			}
		}
	}
}

func TestInterpolateSingleStep(t *testing.T) {
	lib := Default()
	a, _ := lib.Get(Neutral)
	b, _ := lib.Get(Victory)

	frames := Interpolate(a, b, 1)
	assert.Equal(t, []Pose{a}, frames)
}

func TestInterpolateNonPositiveSteps(t *testing.T) {
	lib := Default()
	a, _ := lib.Get(Neutral)

	assert.Empty(t, Interpolate(a, a, 0))
	assert.Empty(t, Interpolate(a, a, -3))
}

func TestInterpolateMidpoint(t *testing.T) {
	var a, b Pose
	b[3] = Point{X: 100, Y: -51}

	frames := Interpolate(a, b, 3)
	require.Len(t, frames, 3)
	// t=0.5 时缓动值也为 0.5
	assert.Equal(t, Point{X: 50, Y: -26}, frames[1][3])
}

func TestInterpolateEasesIn(t *testing.T) {
	var a, b Pose
	b[0] = Point{X: 1000}

	frames := Interpolate(a, b, 11)
	// 起步速度小于中段速度
	first := frames[1][0].X - frames[0][0].X
	middle := frames[6][0].X - frames[5][0].X
	assert.Less(t, first, middle)
	for i := 1; i < len(frames); i++ {
		assert.GreaterOrEqual(t, frames[i][0].X, frames[i-1][0].X)
	}
}
