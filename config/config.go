package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"stickfight/define"
	"stickfight/encoder"
)

var validate = validator.New()

// Validate 校验配置
func Validate(cfg *define.Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("配置无效：%w", err)
	}
	for _, format := range encoder.SupportedFormats() {
		if cfg.Format == format {
			return nil
		}
	}
	return fmt.Errorf("配置无效：不支持的视频格式 %s，可用格式: %v", cfg.Format, encoder.SupportedFormats())
}

// PrepareOutputDir 在接受请求前创建视频输出目录
func PrepareOutputDir(cfg *define.Config) error {
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("创建输出目录 %s 失败：%w", cfg.OutputDir, err)
	}
	info, err := os.Stat(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("检查输出目录 %s 失败：%w", cfg.OutputDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("输出路径 %s 不是目录", cfg.OutputDir)
	}
	return nil
}
