package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	. "github.com/smartystreets/goconvey/convey"
	"gopkg.in/natefinch/lumberjack.v2"

	"transgate/internal/config"
)

func TestInit(t *testing.T) {
	Convey("Init 按配置设置全局日志", t, func() {
		defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

		Convey("合法级别生效", func() {
			So(Init(&config.LogConfig{Level: "debug", Format: "json"}), ShouldBeNil)
			So(zerolog.GlobalLevel(), ShouldEqual, zerolog.DebugLevel)
		})

		Convey("非法级别回退到 info", func() {
			So(Init(&config.LogConfig{Level: "verbose"}), ShouldBeNil)
			So(zerolog.GlobalLevel(), ShouldEqual, zerolog.InfoLevel)
		})

		Convey("file 输出写入滚动日志文件", func() {
			path := filepath.Join(t.TempDir(), "transgate.log")
			cfg := &config.LogConfig{Level: "info", Format: "json", Output: "file", FilePath: path}

			w, ok := newWriter(cfg).(*lumberjack.Logger)
			So(ok, ShouldBeTrue)
			So(w.MaxSize, ShouldEqual, 10)

			So(Init(cfg), ShouldBeNil)
			log.Info().Msg("hello")

			data, err := os.ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, "hello")
		})
	})
}
