package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"frt-state-sol/internal/pkg/logger"
)

type LogConfig struct {
	Format   string `yaml:"format"`   // 日志格式，支持 "console" 或 "json"
	LogDir   string `yaml:"log_dir"`  // 日志目录（可为相对路径或绝对路径）
	Level    string `yaml:"level"`    // 日志级别：debug / info / warn / error
	Compress bool   `yaml:"compress"` // 是否压缩旧日志文件
}

func (c *LogConfig) ToLogOption() logger.LogOption {
	return logger.LogOption{
		Format:   c.Format,
		LogDir:   c.LogDir,
		Level:    c.Level,
		Compress: c.Compress,
	}
}

// DisplayConfig 表示展示层格式化配置，仅影响字符串输出，不参与任何金额计算。
type DisplayConfig struct {
	ThousandsSep      string `yaml:"thousands_sep"`       // 千位分隔符，默认 ","
	MaxFractionDigits int    `yaml:"max_fraction_digits"` // 小数位展示上限，默认 9
	TrimTrailingZeros bool   `yaml:"trim_trailing_zeros"` // 是否去除小数尾部的 0
}

// Config 是主配置结构体。
type Config struct {
	LogConf     LogConfig     `yaml:"logger"`  // 日志配置
	DisplayConf DisplayConfig `yaml:"display"` // 展示层配置
}

// Parse 解析 YAML 配置并填充默认值。
func Parse(data []byte) (Config, error) {
	c := defaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal yaml: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load 从文件加载配置。
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

func defaultConfig() Config {
	return Config{
		LogConf: LogConfig{
			Format: "console",
			Level:  "info",
		},
		DisplayConf: DisplayConfig{
			ThousandsSep:      ",",
			MaxFractionDigits: 9,
			TrimTrailingZeros: true,
		},
	}
}

func (c *Config) validate() error {
	switch c.LogConf.Format {
	case "console", "json":
	default:
		return fmt.Errorf("config: unsupported log format %q", c.LogConf.Format)
	}
	if c.DisplayConf.MaxFractionDigits < 0 || c.DisplayConf.MaxFractionDigits > 18 {
		return fmt.Errorf("config: max_fraction_digits out of range: %d", c.DisplayConf.MaxFractionDigits)
	}
	return nil
}
