package config

import (
	"errors"
	"net/url"
	"time"
)

// DefaultTranslationAPIURL 翻译后端默认地址
const DefaultTranslationAPIURL = "https://api.deeplx.org/translate"

// Config 应用配置根结构
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Translation TranslationConfig `mapstructure:"translation"`
	Log         LogConfig         `mapstructure:"log"`
}

// ServerConfig HTTP 服务器配置
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	CORS         bool          `mapstructure:"cors"`
}

// TranslationConfig 翻译后端配置
type TranslationConfig struct {
	APIURL  string        `mapstructure:"api_url"` // 环境变量 TRANSLATION_API_URL
	Timeout time.Duration `mapstructure:"timeout"` // 0 表示不设置超时
	Models  []string      `mapstructure:"models"`  // /v1/models 返回的模型列表，如 deepl-en-zh
	OwnedBy string        `mapstructure:"owned_by"`
}

// LogConfig 日志配置 (Zerolog)
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	FilePath   string `mapstructure:"file_path"`
	TimeFormat string `mapstructure:"time_format"`
	MaxSize    int    `mapstructure:"max_size"`    // 单个日志文件大小上限 (MB)
	MaxBackups int    `mapstructure:"max_backups"` // 保留的旧日志文件数
	MaxAge     int    `mapstructure:"max_age"`     // 旧日志保留天数
	DumpBody   bool   `mapstructure:"dump_body"`   // debug 级别下记录请求体
}

// Validate 验证配置有效性
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.New("invalid server port")
	}

	validModes := map[string]bool{"debug": true, "release": true, "test": true}
	if !validModes[c.Server.Mode] {
		return errors.New("invalid server mode, must be debug/release/test")
	}

	if c.Translation.APIURL == "" {
		return errors.New("translation api url is required")
	}
	u, err := url.Parse(c.Translation.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("invalid translation api url")
	}

	if c.Translation.Timeout < 0 {
		return errors.New("translation timeout must not be negative")
	}

	return nil
}
