package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"stickfight/config"
	"stickfight/define"
	fileconfig "stickfight/pkg/config"
)

// 解析配置
// 优先级：默认值 < JSON 配置文件 < 命令行参数 < 环境变量
func ParseConfig(args []string) (*define.Config, error) {
	cfg := define.DefaultConfig()

	fs := flag.NewFlagSet("stickfight", flag.ContinueOnError)
	var (
		configPath string
		flags      = *cfg
	)
	fs.StringVar(&configPath, "config", "", "JSON 配置文件路径")
	fs.StringVar(&flags.WebPort, "port", cfg.WebPort, "Web 服务的端口")
	fs.StringVar(&flags.StaticDir, "static-dir", cfg.StaticDir, "静态文件目录")
	fs.StringVar(&flags.OutputDir, "output-dir", cfg.OutputDir, "生成视频的保存目录")
	fs.StringVar(&flags.URLPrefix, "url-prefix", cfg.URLPrefix, "生成视频的访问路径前缀")
	fs.IntVar(&flags.FPS, "fps", cfg.FPS, "视频帧率")
	fs.StringVar(&flags.Format, "format", cfg.Format, "视频格式 (mp4 或 gif)")
	fs.StringVar(&flags.FFmpegPath, "ffmpeg", cfg.FFmpegPath, "ffmpeg 可执行文件路径")
	fs.StringVar(&flags.LogLevel, "log-level", cfg.LogLevel, "日志级别")
	fs.StringVar(&flags.LogDir, "log-dir", cfg.LogDir, "日志文件目录，为空时只输出到终端")
	fs.Float64Var(&flags.RateLimit, "rate-limit", cfg.RateLimit, "每个客户端每秒允许的生成请求数，0 表示不限制")
	fs.IntVar(&flags.RateBurst, "rate-burst", cfg.RateBurst, "生成请求的突发上限")
	fs.BoolVar(&flags.EnableCORS, "cors", cfg.EnableCORS, "是否启用 CORS")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// 配置文件
	if configPath != "" {
		if err := fileconfig.LoadConfig(configPath, cfg); err != nil {
			return nil, err
		}
	}

	// 只有显式传入的命令行参数才覆盖配置文件
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.WebPort = flags.WebPort
		case "static-dir":
			cfg.StaticDir = flags.StaticDir
		case "output-dir":
			cfg.OutputDir = flags.OutputDir
		case "url-prefix":
			cfg.URLPrefix = flags.URLPrefix
		case "fps":
			cfg.FPS = flags.FPS
		case "format":
			cfg.Format = flags.Format
		case "ffmpeg":
			cfg.FFmpegPath = flags.FFmpegPath
		case "log-level":
			cfg.LogLevel = flags.LogLevel
		case "log-dir":
			cfg.LogDir = flags.LogDir
		case "rate-limit":
			cfg.RateLimit = flags.RateLimit
		case "rate-burst":
			cfg.RateBurst = flags.RateBurst
		case "cors":
			cfg.EnableCORS = flags.EnableCORS
		}
	})

	// 环境变量覆盖命令行参数
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *define.Config) error {
	if v := os.Getenv("WEB_PORT"); v != "" {
		cfg.WebPort = v
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		cfg.StaticDir = v
	}
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("VIDEO_URL_PREFIX"); v != "" {
		cfg.URLPrefix = v
	}
	if v := os.Getenv("VIDEO_FPS"); v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("环境变量 VIDEO_FPS 无效：%w", err)
		}
		cfg.FPS = fps
	}
	if v := os.Getenv("VIDEO_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("FFMPEG_PATH"); v != "" {
		cfg.FFmpegPath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LOG_DIR"); v != "" {
		cfg.LogDir = v
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		limit, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("环境变量 RATE_LIMIT 无效：%w", err)
		}
		cfg.RateLimit = limit
	}
	if v := os.Getenv("RATE_BURST"); v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("环境变量 RATE_BURST 无效：%w", err)
		}
		cfg.RateBurst = burst
	}
	return nil
}
