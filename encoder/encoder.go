// Package encoder 把帧序列写成视频文件
package encoder

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	pkglog "stickfight/pkg/log"
)

// DefaultFPS 默认帧率
const DefaultFPS = 15

// ErrEmptyAnimation 没有可编码的帧
var ErrEmptyAnimation = errors.New("动画帧序列为空")

// EncodingIOError 输出流无法打开、写入或收尾
type EncodingIOError struct {
	Path string
	Op   string // open / write / finalize
	Err  error
}

func (e *EncodingIOError) Error() string {
	return fmt.Sprintf("视频编码 %s 失败 (%s)：%v", e.Op, e.Path, e.Err)
}

func (e *EncodingIOError) Unwrap() error { return e.Err }

// Encoder 视频编码器
type Encoder interface {
	// Encode 以 fps 帧率把 frames 按顺序写入 path
	// frames 为空时返回 ErrEmptyAnimation 且不创建文件
	Encode(ctx context.Context, frames []*image.RGBA, path string, fps int) error
	// Extension 输出文件扩展名（不含点）
	Extension() string
}

// Options 编码器构造参数
type Options struct {
	FFmpegPath string
	Quality    int
	Logger     logrus.FieldLogger
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return pkglog.Discard()
}

// checkOutputDir 输出目录必须已经存在
func checkOutputDir(path string) error {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return &EncodingIOError{Path: path, Op: "open", Err: err}
	}
	if !info.IsDir() {
		return &EncodingIOError{Path: path, Op: "open", Err: fmt.Errorf("%s 不是目录", dir)}
	}
	return nil
}

// checkFrames 所有帧尺寸必须与第一帧一致
func checkFrames(frames []*image.RGBA) error {
	if len(frames) == 0 {
		return ErrEmptyAnimation
	}
	for i, f := range frames {
		if f == nil {
			return fmt.Errorf("第 %d 帧为空", i)
		}
	}
	size := frames[0].Bounds().Size()
	if size.X == 0 || size.Y == 0 {
		return fmt.Errorf("第 0 帧尺寸为空")
	}
	for i, f := range frames {
		if f.Bounds().Size() != size {
			return fmt.Errorf("第 %d 帧尺寸 %v 与首帧 %v 不一致", i, f.Bounds().Size(), size)
		}
	}
	return nil
}
