// Package animation 把编排序列组装为逐帧画面
package animation

import (
	"fmt"
	"image"
	"image/color"

	"github.com/sirupsen/logrus"

	"stickfight/choreo"
	pkglog "stickfight/pkg/log"
	"stickfight/pose"
	"stickfight/render"
)

// Assembler 遍历编排序列，插值并绘制每一帧
type Assembler struct {
	library    *pose.Library
	renderer   *render.Renderer
	width      int
	height     int
	background color.RGBA
	log        logrus.FieldLogger
}

// Option 组装器选项
type Option func(*Assembler)

// WithCanvasSize 设置画布尺寸
func WithCanvasSize(width, height int) Option {
	return func(a *Assembler) {
		a.width = width
		a.height = height
	}
}

// WithBackground 设置背景色
func WithBackground(bg color.RGBA) Option {
	return func(a *Assembler) { a.background = bg }
}

// WithStyle 设置绘制样式
func WithStyle(style render.Style) Option {
	return func(a *Assembler) { a.renderer = render.New(style) }
}

// WithLogger 设置日志
func WithLogger(logger logrus.FieldLogger) Option {
	return func(a *Assembler) { a.log = logger }
}

// NewAssembler 创建组装器，默认 600x600 白底
func NewAssembler(library *pose.Library, opts ...Option) *Assembler {
	a := &Assembler{
		library:    library,
		renderer:   render.New(render.DefaultStyle()),
		width:      render.DefaultWidth,
		height:     render.DefaultHeight,
		background: render.Background,
		log:        pkglog.Discard(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Poses 计算整段动画的姿势轨迹，不做绘制
// 每一步的帧数决定进入该步姿势的过渡长度，第一步的帧数不使用
func (a *Assembler) Poses(seq choreo.Sequence) ([]pose.Pose, error) {
	if err := seq.Validate(); err != nil {
		return nil, err
	}

	track := make([]pose.Pose, 0, seq.TotalFrames())
	for i := 0; i+1 < len(seq); i++ {
		from, err := a.library.Get(seq[i].Pose)
		if err != nil {
			return nil, fmt.Errorf("第 %d 步：%w", i, err)
		}
		to, err := a.library.Get(seq[i+1].Pose)
		if err != nil {
			return nil, fmt.Errorf("第 %d 步：%w", i+1, err)
		}
		track = append(track, pose.Interpolate(from, to, seq[i+1].Frames)...)
	}
	return track, nil
}

// Assemble 为每个插值姿势分配新画布并绘制，返回有序的帧序列
func (a *Assembler) Assemble(seq choreo.Sequence) ([]*image.RGBA, error) {
	track, err := a.Poses(seq)
	if err != nil {
		return nil, err
	}

	frames := make([]*image.RGBA, 0, len(track))
	for _, p := range track {
		canvas := render.NewCanvas(a.width, a.height, a.background)
		frames = append(frames, a.renderer.Render(canvas, p))
	}

	a.log.WithFields(logrus.Fields{
		"steps":  len(seq),
		"frames": len(frames),
	}).Debug("🎞️ 动画帧组装完成")

	return frames, nil
}
