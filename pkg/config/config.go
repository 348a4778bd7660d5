package config

import (
	"encoding/json"
	"fmt"
	"os"

	"stickfight/define"
)

// LoadConfig 从 JSON 文件加载配置，文件中未出现的字段保持 cfg 原值
func LoadConfig(configPath string, cfg *define.Config) error {
	file, err := os.Open(configPath)
	if err != nil {
		return fmt.Errorf("打开配置文件失败：%w", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		return fmt.Errorf("解析配置文件失败：%w", err)
	}

	return nil
}

// SaveConfig 保存配置到文件
func SaveConfig(cfg *define.Config, configPath string) error {
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("创建配置文件失败：%w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("保存配置文件失败：%w", err)
	}

	return nil
}
