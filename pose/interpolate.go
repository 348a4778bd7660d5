package pose

import "math"

// Smoothstep 三次缓动曲线，两端速度为零
func Smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// Interpolate 在两个姿势之间生成 steps 个过渡姿势
// 第一帧等于 a，steps > 1 时最后一帧等于 b
func Interpolate(a, b Pose, steps int) []Pose {
	if steps <= 0 {
		return []Pose{}
	}

	frames := make([]Pose, steps)
	for i := 0; i < steps; i++ {
		t := 0.0
		if steps > 1 {
			t = float64(i) / float64(steps-1)
		}
		frames[i] = Blend(a, b, Smoothstep(t))
	}
	return frames
}

// Blend 按比例 t 线性混合两个姿势，坐标四舍五入到整数像素
func Blend(a, b Pose, t float64) Pose {
	var out Pose
	for j := range a {
		out[j] = Point{
			X: lerp(a[j].X, b[j].X, t),
			Y: lerp(a[j].Y, b[j].Y, t),
		}
	}
	return out
}

func lerp(from, to int, t float64) int {
	return int(math.Round(float64(from) + float64(to-from)*t))
}
