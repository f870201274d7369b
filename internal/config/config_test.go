package config_test

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
	"github.com/swashington/snas/internal/config"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.AITimeoutMS, convey.ShouldEqual, 1500)
			convey.So(cfg.SLAMS, convey.ShouldEqual, 2000)
			convey.So(cfg.CacheTTLMS, convey.ShouldEqual, 300_000)
			convey.So(cfg.CSABoost, convey.ShouldEqual, 25)
			convey.So(cfg.RecencyBoost, convey.ShouldEqual, 20)
			convey.So(cfg.CertificationBoost, convey.ShouldEqual, 30)
			convey.So(cfg.IssuerBoost, convey.ShouldEqual, 15)
			convey.So(cfg.RecencyWindowDays, convey.ShouldEqual, 90)
			convey.So(cfg.ImportBatchSize, convey.ShouldEqual, 50)
			convey.So(cfg.MaxBadgeLimit, convey.ShouldEqual, 100)
		})

		convey.Convey("And the AI backend should be off by default", func() {
			convey.So(cfg.AIBaseURL, convey.ShouldBeEmpty)
			convey.So(cfg.AIAPIKey, convey.ShouldBeEmpty)
			convey.So(cfg.RedisAddr, convey.ShouldBeEmpty)
		})
	})
}
