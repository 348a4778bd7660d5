package encoder

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os/exec"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// FormatMP4 mp4v 编码的 MP4 文件
const FormatMP4 = "mp4"

const defaultQuality = 5

// FFmpegEncoder 通过管道把原始 RGB 帧交给 ffmpeg 子进程编码
type FFmpegEncoder struct {
	binary  string
	quality int
	log     logrus.FieldLogger
}

// NewFFmpegEncoder 创建 ffmpeg 编码器，找不到 ffmpeg 时返回错误
func NewFFmpegEncoder(opts Options) (Encoder, error) {
	binary := opts.FFmpegPath
	if binary == "" {
		binary = "ffmpeg"
	}
	resolved, err := exec.LookPath(binary)
	if err != nil {
		return nil, fmt.Errorf("未找到 ffmpeg (%s)：%w", binary, err)
	}

	quality := opts.Quality
	if quality <= 0 {
		quality = defaultQuality
	}

	return &FFmpegEncoder{
		binary:  resolved,
		quality: quality,
		log:     opts.logger(),
	}, nil
}

func (e *FFmpegEncoder) Extension() string { return FormatMP4 }

func (e *FFmpegEncoder) args(width, height, fps int, path string) []string {
	return []string{
		"-y",
		"-loglevel", "error",
		"-f", "rawvideo",
		"-pix_fmt", "rgb24",
		"-s", fmt.Sprintf("%dx%d", width, height),
		"-r", strconv.Itoa(fps),
		"-i", "-",
		"-an",
		// yuv420p 要求宽高为偶数，奇数尺寸向右下补一像素
		"-vf", "pad=ceil(iw/2)*2:ceil(ih/2)*2:color=white",
		"-c:v", "mpeg4",
		"-tag:v", "mp4v",
		"-q:v", strconv.Itoa(e.quality),
		"-pix_fmt", "yuv420p",
		path,
	}
}

// Encode 把帧写入 ffmpeg 的标准输入，任何一帧写入失败都返回 EncodingIOError
// 子进程在所有路径上都会被回收
func (e *FFmpegEncoder) Encode(ctx context.Context, frames []*image.RGBA, path string, fps int) error {
	if err := checkFrames(frames); err != nil {
		return err
	}
	if err := checkOutputDir(path); err != nil {
		return err
	}
	if fps <= 0 {
		fps = DefaultFPS
	}

	size := frames[0].Bounds().Size()
	cmd := exec.CommandContext(ctx, e.binary, e.args(size.X, size.Y, fps, path)...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return &EncodingIOError{Path: path, Op: "open", Err: err}
	}
	if err := cmd.Start(); err != nil {
		return &EncodingIOError{Path: path, Op: "open", Err: err}
	}

	e.log.WithFields(logrus.Fields{
		"path":   path,
		"frames": len(frames),
		"fps":    fps,
		"size":   fmt.Sprintf("%dx%d", size.X, size.Y),
	}).Debug("🎬 开始写入视频帧")

	buf := make([]byte, size.X*size.Y*3)
	var writeErr error
	for i, f := range frames {
		toRGB24(f, buf)
		if _, err := stdin.Write(buf); err != nil {
			writeErr = fmt.Errorf("写入第 %d 帧失败：%w", i, err)
			break
		}
	}

	closeErr := stdin.Close()
	waitErr := cmd.Wait()

	switch {
	case writeErr != nil:
		return &EncodingIOError{Path: path, Op: "write", Err: withStderr(writeErr, &stderr)}
	case waitErr != nil:
		return &EncodingIOError{Path: path, Op: "finalize", Err: withStderr(waitErr, &stderr)}
	case closeErr != nil:
		return &EncodingIOError{Path: path, Op: "finalize", Err: closeErr}
	}
	return nil
}

// toRGB24 把 RGBA 帧转换为紧凑的 RGB 字节
func toRGB24(img *image.RGBA, dst []byte) {
	b := img.Bounds()
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			dst[i] = row[x*4]
			dst[i+1] = row[x*4+1]
			dst[i+2] = row[x*4+2]
			i += 3
		}
	}
}

func withStderr(err error, stderr *bytes.Buffer) error {
	msg := strings.TrimSpace(stderr.String())
	if msg == "" {
		return err
	}
	return fmt.Errorf("%w\nffmpeg: %s", err, msg)
}
