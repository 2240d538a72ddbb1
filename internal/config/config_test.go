package config

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8000,
			Mode: "release",
		},
		Translation: TranslationConfig{
			APIURL: DefaultTranslationAPIURL,
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	Convey("Config.Validate 校验服务与翻译配置", t, func() {
		Convey("默认配置有效", func() {
			So(validConfig().Validate(), ShouldBeNil)
		})

		Convey("端口越界无效", func() {
			cfg := validConfig()
			cfg.Server.Port = 70000
			So(cfg.Validate(), ShouldNotBeNil)

			cfg.Server.Port = 0
			So(cfg.Validate(), ShouldNotBeNil)
		})

		Convey("未知模式无效", func() {
			cfg := validConfig()
			cfg.Server.Mode = "prod"
			So(cfg.Validate().Error(), ShouldContainSubstring, "invalid server mode")
		})

		Convey("翻译地址为空或不是绝对地址时无效", func() {
			cfg := validConfig()
			cfg.Translation.APIURL = ""
			So(cfg.Validate(), ShouldNotBeNil)

			cfg.Translation.APIURL = "/translate"
			So(cfg.Validate().Error(), ShouldEqual, "invalid translation api url")
		})

		Convey("负数超时无效，零值表示不限制", func() {
			cfg := validConfig()
			cfg.Translation.Timeout = -time.Second
			So(cfg.Validate(), ShouldNotBeNil)

			cfg.Translation.Timeout = 0
			So(cfg.Validate(), ShouldBeNil)
		})
	})
}
