// Package generator 串联文本解析、帧组装和视频编码，完成一次动画生成
package generator

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"stickfight/animation"
	"stickfight/choreo"
	"stickfight/encoder"
	"stickfight/pose"
	pkglog "stickfight/pkg/log"
)

// tokenLength 文件名中随机标识的十六进制长度
const tokenLength = 8

// Result 一次生成的结果，失败时 Success 为 false 且 Err 非空
type Result struct {
	Success  bool
	State    State
	VideoURL string
	Path     string
	Filename string
	Frames   int
	Sequence choreo.Sequence
	Message  string
	Elapsed  time.Duration
	Err      error
}

// Generator 动画生成流水线，可被多个请求并发使用
// 姿势库构造后只读，所有请求共用同一份
type Generator struct {
	library   *pose.Library
	assembler *animation.Assembler
	encoder   encoder.Encoder
	outputDir string
	urlPrefix string
	fps       int
	log       logrus.FieldLogger
	newToken  func() (string, error)

	generated atomic.Int64
	failed    atomic.Int64
}

// Option 流水线选项
type Option func(*Generator)

// WithLogger 设置日志
func WithLogger(logger logrus.FieldLogger) Option {
	return func(g *Generator) { g.log = logger }
}

// WithFPS 设置输出帧率
func WithFPS(fps int) Option {
	return func(g *Generator) { g.fps = fps }
}

// WithURLPrefix 设置视频访问路径前缀
func WithURLPrefix(prefix string) Option {
	return func(g *Generator) { g.urlPrefix = prefix }
}

// WithAssembler 替换帧组装器
func WithAssembler(assembler *animation.Assembler) Option {
	return func(g *Generator) { g.assembler = assembler }
}

// WithTokenSource 替换文件名随机标识的生成方式
func WithTokenSource(fn func() (string, error)) Option {
	return func(g *Generator) { g.newToken = fn }
}

// New 创建生成流水线，outputDir 必须已经存在
func New(library *pose.Library, enc encoder.Encoder, outputDir string, opts ...Option) *Generator {
	g := &Generator{
		library:   library,
		encoder:   enc,
		outputDir: outputDir,
		urlPrefix: "/" + filepath.ToSlash(outputDir),
		fps:       encoder.DefaultFPS,
		log:       pkglog.Discard(),
		newToken:  randomToken,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.assembler == nil {
		g.assembler = animation.NewAssembler(library, animation.WithLogger(g.log))
	}
	return g
}

// Library 使用的姿势库
func (g *Generator) Library() *pose.Library { return g.library }

// Assembler 使用的帧组装器
func (g *Generator) Assembler() *animation.Assembler { return g.assembler }

// Stats 成功与失败的生成次数
func (g *Generator) Stats() (generated, failed int64) {
	return g.generated.Load(), g.failed.Load()
}

// Generate 解析描述文本并生成视频
func (g *Generator) Generate(ctx context.Context, prompt string) Result {
	entry := pkglog.WithRequestID(ctx, g.log)
	entry.WithField("prompt", prompt).Infof("🚀 收到动画生成请求 [%s]", StateReceived)

	seq := choreo.Interpret(prompt)
	return g.run(ctx, entry, seq)
}

// GenerateSequence 直接使用给定的编排序列生成视频
func (g *Generator) GenerateSequence(ctx context.Context, seq choreo.Sequence) Result {
	entry := pkglog.WithRequestID(ctx, g.log)
	entry.Infof("🚀 收到编排序列生成请求 [%s]", StateReceived)
	return g.run(ctx, entry, seq)
}

func (g *Generator) run(ctx context.Context, entry *logrus.Entry, seq choreo.Sequence) Result {
	start := time.Now()
	res := Result{State: StateInterpreted, Sequence: seq}
	entry.WithField("poses", strings.Join(seq.PoseNames(), ",")).Debugf("🧭 [%s]", res.State)

	fail := func(err error) Result {
		g.failed.Add(1)
		entry.WithField("state", res.State.String()).Errorf("❌ 动画生成失败：%v", err)
		res.State = StateFailed
		res.Success = false
		res.Err = err
		res.Message = err.Error()
		res.Elapsed = time.Since(start)
		return res
	}

	res.State = StateAssembling
	frames, err := g.assembler.Assemble(seq)
	if err != nil {
		return fail(fmt.Errorf("组装动画失败：%w", err))
	}
	res.Frames = len(frames)
	entry.WithField("frames", res.Frames).Debugf("🎞️ [%s]", res.State)

	res.State = StateEncoding
	token, err := g.newToken()
	if err != nil {
		return fail(fmt.Errorf("生成文件名失败：%w", err))
	}
	res.Filename = fmt.Sprintf("animation_%s.%s", token, g.encoder.Extension())
	res.Path = filepath.Join(g.outputDir, res.Filename)

	if err := g.encoder.Encode(ctx, frames, res.Path, g.fps); err != nil {
		return fail(err)
	}

	g.generated.Add(1)
	res.State = StateDone
	res.Success = true
	res.VideoURL = path.Join(g.urlPrefix, res.Filename)
	res.Elapsed = time.Since(start)

	entry.WithFields(logrus.Fields{
		"file":       res.Filename,
		"frames":     res.Frames,
		"elapsed_ms": res.Elapsed.Milliseconds(),
	}).Infof("✅ 动画生成完成 [%s]", res.State)

	return res
}

// randomToken 取随机 UUID 的前 8 位十六进制字符
func randomToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(id.String(), "-", "")[:tokenLength], nil
}
