package encoder

import (
	"context"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"math"
	"os"

	"github.com/sirupsen/logrus"
)

// FormatGIF 动态 GIF，不依赖 ffmpeg
const FormatGIF = "gif"

// GIFEncoder 使用调色板量化输出动态 GIF
type GIFEncoder struct {
	log logrus.FieldLogger
}

// NewGIFEncoder 创建 GIF 编码器
func NewGIFEncoder(opts Options) (Encoder, error) {
	return &GIFEncoder{log: opts.logger()}, nil
}

func (e *GIFEncoder) Extension() string { return FormatGIF }

// Encode 量化每一帧并写入 GIF 文件
func (e *GIFEncoder) Encode(ctx context.Context, frames []*image.RGBA, path string, fps int) error {
	if err := checkFrames(frames); err != nil {
		return err
	}
	if err := checkOutputDir(path); err != nil {
		return err
	}
	if fps <= 0 {
		fps = DefaultFPS
	}

	delay := int(math.Round(100 / float64(fps)))
	if delay < 1 {
		delay = 1
	}

	anim := &gif.GIF{
		Image: make([]*image.Paletted, 0, len(frames)),
		Delay: make([]int, 0, len(frames)),
	}
	for _, f := range frames {
		if err := ctx.Err(); err != nil {
			return &EncodingIOError{Path: path, Op: "write", Err: err}
		}
		paletted := image.NewPaletted(f.Bounds(), palette.Plan9)
		draw.Draw(paletted, f.Bounds(), f, f.Bounds().Min, draw.Src)
		anim.Image = append(anim.Image, paletted)
		anim.Delay = append(anim.Delay, delay)
	}

	file, err := os.Create(path)
	if err != nil {
		return &EncodingIOError{Path: path, Op: "open", Err: err}
	}

	encodeErr := gif.EncodeAll(file, anim)
	closeErr := file.Close()
	if encodeErr != nil {
		return &EncodingIOError{Path: path, Op: "write", Err: encodeErr}
	}
	if closeErr != nil {
		return &EncodingIOError{Path: path, Op: "finalize", Err: closeErr}
	}

	e.log.WithFields(logrus.Fields{
		"path":   path,
		"frames": len(frames),
		"delay":  delay,
	}).Debug("🎬 GIF 写入完成")
	return nil
}
