package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"transgate/internal/config"
)

// Init 初始化全局日志
func Init(cfg *config.LogConfig) error {
	// 设置日志级别
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// 设置时间格式
	switch cfg.TimeFormat {
	case "Unix":
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	case "UnixMs":
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	default:
		zerolog.TimeFieldFormat = time.RFC3339
	}

	log.Logger = zerolog.New(newWriter(cfg)).With().Timestamp().Caller().Logger()

	// 未注入 logger 的 context 回退到全局 logger
	zerolog.DefaultContextLogger = &log.Logger

	return nil
}

// newWriter 根据配置选择输出：stdout 或按大小滚动的日志文件
func newWriter(cfg *config.LogConfig) io.Writer {
	var output io.Writer = os.Stdout
	if cfg.Output == "file" && cfg.FilePath != "" {
		output = &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    orDefault(cfg.MaxSize, 10),
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
		}
	}

	// Console 格式 (开发环境友好)
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
			NoColor:    cfg.Output == "file",
		}
	}

	return output
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
