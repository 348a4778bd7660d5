// Package render 把姿势绘制到画布上
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"stickfight/pose"
)

// 默认画面参数
const (
	DefaultWidth       = 600
	DefaultHeight      = 600
	DefaultThickness   = 3
	DefaultJointRadius = 6
	DefaultHeadRadius  = 12

	// 圆形近似使用的分段数
	circleSegments = 64
)

var (
	// DefaultColor 小人线条颜色
	DefaultColor = color.RGBA{R: 255, G: 100, B: 0, A: 255}
	// Background 画布背景色
	Background = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Style 绘制样式
type Style struct {
	Color       color.RGBA
	Thickness   int
	JointRadius int
	HeadRadius  int
}

// DefaultStyle 默认绘制样式
func DefaultStyle() Style {
	return Style{
		Color:       DefaultColor,
		Thickness:   DefaultThickness,
		JointRadius: DefaultJointRadius,
		HeadRadius:  DefaultHeadRadius,
	}
}

// Renderer 火柴人绘制器，无内部状态，可并发使用
type Renderer struct {
	style Style
	edges []pose.Edge
}

// Option 绘制器选项
type Option func(*Renderer)

// WithEdges 替换骨架连线，越界的连线会被跳过
func WithEdges(edges []pose.Edge) Option {
	return func(r *Renderer) {
		r.edges = append([]pose.Edge(nil), edges...)
	}
}

// New 创建绘制器
func New(style Style, opts ...Option) *Renderer {
	r := &Renderer{style: style, edges: pose.Edges()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Style 当前绘制样式
func (r *Renderer) Style() Style { return r.style }

// NewCanvas 创建纯色背景的画布
func NewCanvas(width, height int, bg color.Color) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return canvas
}

// Stickman 使用默认关节与头部半径绘制姿势
func Stickman(canvas *image.RGBA, p pose.Pose, c color.RGBA, thickness int) *image.RGBA {
	style := DefaultStyle()
	style.Color = c
	style.Thickness = thickness
	return New(style).Render(canvas, p)
}

// Render 在画布上绘制姿势并返回同一个画布，不会清空已有内容
// 绘制顺序：关节圆点、骨架连线、头部圆圈
func (r *Renderer) Render(canvas *image.RGBA, p pose.Pose) *image.RGBA {
	bounds := canvas.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return canvas
	}
	src := image.NewUniform(r.style.Color)
	origin := bounds.Min

	z := vector.NewRasterizer(w, h)

	// 关节和骨架同色且同向绕行，合并为一次光栅化
	for _, pt := range p {
		addCircle(z, center(pt, origin), float32(r.style.JointRadius), false)
	}
	half := float32(r.style.Thickness) / 2
	for _, e := range r.edges {
		if !e.Valid(len(p)) {
			continue
		}
		addSegment(z, center(p[e.From], origin), center(p[e.To], origin), half)
	}
	z.Draw(canvas, bounds, src, image.Point{})

	// 头部圆圈最后绘制，覆盖在颈部连线之上
	z.Reset(w, h)
	head := center(p.Head(), origin)
	radius := float32(r.style.HeadRadius)
	addCircle(z, head, radius+half, false)
	if inner := radius - half; inner > 0 {
		addCircle(z, head, inner, true)
	}
	z.Draw(canvas, bounds, src, image.Point{})

	return canvas
}

type vec struct{ x, y float32 }

// center 像素中心在光栅坐标中的位置
func center(pt pose.Point, origin image.Point) vec {
	return vec{
		x: float32(pt.X-origin.X) + 0.5,
		y: float32(pt.Y-origin.Y) + 0.5,
	}
}

// addCircle 添加圆形路径，reverse 为 true 时反向绕行用于挖空
func addCircle(z *vector.Rasterizer, c vec, radius float32, reverse bool) {
	if radius <= 0 {
		return
	}
	for i := 0; i <= circleSegments; i++ {
		theta := 2 * math.Pi * float64(i) / circleSegments
		if reverse {
			theta = -theta
		}
		x := c.x + radius*float32(math.Cos(theta))
		y := c.y + radius*float32(math.Sin(theta))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
}

// addSegment 添加宽度为 2*half 的线段矩形，绕行方向与 addCircle 一致
func addSegment(z *vector.Rasterizer, a, b vec, half float32) {
	dx, dy := b.x-a.x, b.y-a.y
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 || half <= 0 {
		return
	}
	nx, ny := -dy/length*half, dx/length*half

	z.MoveTo(a.x-nx, a.y-ny)
	z.LineTo(b.x-nx, b.y-ny)
	z.LineTo(b.x+nx, b.y+ny)
	z.LineTo(a.x+nx, a.y+ny)
	z.ClosePath()
}
