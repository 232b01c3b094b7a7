package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/okian/mergington/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldResemble, config.New())
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("MERGINGTON_ADDR", ":8080")
			_ = os.Setenv("MERGINGTON_RECAPTCHA_ENABLED", "false")
			_ = os.Setenv("MERGINGTON_RECAPTCHA_TIMEOUT_MS", "1500")
			_ = os.Setenv("MERGINGTON_ENFORCE_CAPACITY", "true")
			_ = os.Setenv("MERGINGTON_LOG_LEVEL", "debug")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.RecaptchaEnabled, convey.ShouldBeFalse)
				convey.So(cfg.RecaptchaTimeoutMS, convey.ShouldEqual, 1500)
				convey.So(cfg.EnforceCapacity, convey.ShouldBeTrue)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.RecaptchaSecret, convey.ShouldEqual, config.DefaultRecaptchaSecret)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
addr: ":9090"
log_format: json
recaptcha_secret: "s3cret"
recaptcha_verify_url: "http://verify.local/siteverify"
otel_endpoint: "http://collector:4318"
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("MERGINGTON_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file and keep other defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.LogFormat, convey.ShouldEqual, "json")
				convey.So(cfg.RecaptchaSecret, convey.ShouldEqual, "s3cret")
				convey.So(cfg.RecaptchaVerifyURL, convey.ShouldEqual, "http://verify.local/siteverify")
				convey.So(cfg.OTelEndpoint, convey.ShouldEqual, "http://collector:4318")
				convey.So(cfg.RecaptchaTimeoutMS, convey.ShouldEqual, 5000)
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":9090"
recaptcha_timeout_ms: 2000
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("MERGINGTON_CONFIG", tmpFile)
			_ = os.Setenv("MERGINGTON_ADDR", ":8080")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.RecaptchaTimeoutMS, convey.ShouldEqual, 2000)
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempConfigFile(`invalid: yaml: content: [`)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("MERGINGTON_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("MERGINGTON_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("MERGINGTON_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When verification is enabled without a timeout", func() {
			_ = os.Setenv("MERGINGTON_RECAPTCHA_TIMEOUT_MS", "0")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "recaptcha_timeout_ms")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When verification is disabled without a timeout", func() {
			_ = os.Setenv("MERGINGTON_RECAPTCHA_ENABLED", "false")
			_ = os.Setenv("MERGINGTON_RECAPTCHA_TIMEOUT_MS", "0")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then the timeout should not matter", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.RecaptchaTimeoutMS, convey.ShouldEqual, 0)
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("MERGINGTON_RECAPTCHA_TIMEOUT_MS", "soon")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"MERGINGTON_CONFIG",
		"MERGINGTON_ADDR",
		"MERGINGTON_LOG_LEVEL",
		"MERGINGTON_LOG_FORMAT",
		"MERGINGTON_RECAPTCHA_ENABLED",
		"MERGINGTON_RECAPTCHA_SECRET",
		"MERGINGTON_RECAPTCHA_VERIFY_URL",
		"MERGINGTON_RECAPTCHA_TIMEOUT_MS",
		"MERGINGTON_ENFORCE_CAPACITY",
		"MERGINGTON_OTEL_ENDPOINT",
		"MERGINGTON_SERVICE_NAME",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "mergington-config-*.yaml")
	if err != nil {
		panic(err)
	}
	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}
	if err := tmpFile.Close(); err != nil {
		panic(err)
	}
	return tmpFile.Name()
}
