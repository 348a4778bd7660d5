package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"stickfight/animation"
	"stickfight/choreo"
	"stickfight/config"
	"stickfight/define"
	"stickfight/encoder"
	"stickfight/generator"
	fileconfig "stickfight/pkg/config"
	pkglog "stickfight/pkg/log"
	"stickfight/pose"
)

func main() {
	// 解析命令行参数
	var (
		configPath = flag.String("config", "", "JSON 配置文件路径")
		saveConfig = flag.String("save-config", "", "把默认配置写入该路径后退出")
		prompt     = flag.String("prompt", "", "打斗描述，例如 \"punch right then kick\"")
		seqPath    = flag.String("sequence", "", "JSON 编排序列文件，指定后忽略 -prompt")
		outDir     = flag.String("out", "", "视频输出目录，默认使用配置中的目录")
		fps        = flag.Int("fps", 0, "视频帧率，默认使用配置中的帧率")
		format     = flag.String("format", "", "视频格式 (mp4 或 gif)")
		ffmpegPath = flag.String("ffmpeg", "", "ffmpeg 可执行文件路径")
		size       = flag.Int("size", 0, "画布边长，默认 600")
		verbose    = flag.Bool("v", false, "输出调试日志")
	)
	flag.Parse()

	if *saveConfig != "" {
		if err := fileconfig.SaveConfig(define.DefaultConfig(), *saveConfig); err != nil {
			fatalf("保存默认配置失败: %v", err)
		}
		fmt.Printf("✅ 默认配置已写入 %s\n", *saveConfig)
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fatalf("加载配置失败: %v", err)
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}
	if *fps > 0 {
		cfg.FPS = *fps
	}
	if *format != "" {
		cfg.Format = *format
	}
	if *ffmpegPath != "" {
		cfg.FFmpegPath = *ffmpegPath
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}
	if err := config.Validate(cfg); err != nil {
		fatalf("%v", err)
	}

	logger := pkglog.NewLogger(pkglog.Options{Level: cfg.LogLevel, Dir: cfg.LogDir})

	if err := config.PrepareOutputDir(cfg); err != nil {
		fatalf("%v", err)
	}

	enc, err := encoder.Create(cfg.Format, encoder.Options{FFmpegPath: cfg.FFmpegPath, Logger: logger})
	if err != nil {
		fatalf("创建视频编码器失败: %v", err)
	}

	lib := pose.Default()
	opts := []generator.Option{
		generator.WithFPS(cfg.FPS),
		generator.WithURLPrefix(cfg.URLPrefix),
		generator.WithLogger(logger),
	}
	if *size > 0 {
		side := evenSize(*size)
		if side != *size {
			logger.Warnf("⚠️ 画布边长 %d 为奇数，调整为 %d", *size, side)
		}
		opts = append(opts, generator.WithAssembler(animation.NewAssembler(lib,
			animation.WithCanvasSize(side, side),
			animation.WithLogger(logger),
		)))
	}
	gen := generator.New(lib, enc, cfg.OutputDir, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var res generator.Result
	if *seqPath != "" {
		seq, err := loadSequence(*seqPath)
		if err != nil {
			fatalf("读取编排序列失败: %v", err)
		}
		res = gen.GenerateSequence(ctx, seq)
	} else {
		res = gen.Generate(ctx, *prompt)
	}

	if !res.Success {
		fatalf("生成失败 [%s]: %s", res.State, res.Message)
	}

	fmt.Printf("🎬 编排序列: %v\n", res.Sequence.PoseNames())
	fmt.Printf("🖼️ 共 %d 帧，耗时 %s\n", res.Frames, res.Elapsed)
	fmt.Printf("✅ 视频已保存到 %s\n", res.Path)
}

// evenSize 视频按 yuv420p 编码，画布边长向上取偶数
func evenSize(n int) int {
	if n%2 != 0 {
		return n + 1
	}
	return n
}

func loadConfig(path string) (*define.Config, error) {
	cfg := define.DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if err := fileconfig.LoadConfig(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadSequence(path string) (choreo.Sequence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var seq choreo.Sequence
	if err := json.Unmarshal(data, &seq); err != nil {
		return nil, fmt.Errorf("解析 %s 失败：%w", path, err)
	}
	return seq, nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "❌ "+format+"\n", args...)
	os.Exit(1)
}
