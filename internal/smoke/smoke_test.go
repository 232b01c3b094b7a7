package smoke

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/okian/mergington/internal/adapters/http/api"
	"github.com/okian/mergington/internal/adapters/repository"
	service "github.com/okian/mergington/internal/app"
	"github.com/okian/mergington/internal/domain/verification"
	"github.com/okian/mergington/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(logger.WithWriter(io.Discard)); err != nil {
		panic(err)
	}
}

func newTarget(v verification.Verifier) *httptest.Server {
	svc := service.New(
		service.WithStore(repository.NewMemoryStore()),
		service.WithVerifier(v),
	)
	mux := http.NewServeMux()
	api.NewServer(svc, svc, logger.Get()).Register(context.Background(), mux)
	return httptest.NewServer(mux)
}

func newConfig(baseURL string) *Config {
	return &Config{
		BaseURL:  baseURL,
		Email:    "smoke@mergington.edu",
		Activity: "Chess Club",
		Token:    "smoke-token",
		Timeout:  2 * time.Second,
		Verbose:  true,
	}
}

func TestRun(t *testing.T) {
	Convey("Given a service accepting every token", t, func() {
		srv := newTarget(verification.StaticVerifier{Success: true})
		defer srv.Close()
		ctx := context.Background()

		Convey("When running the walkthrough", func() {
			report, err := Run(ctx, newConfig(srv.URL), logger.Get())

			Convey("Then every step should return its expected status", func() {
				So(err, ShouldBeNil)
				So(len(report.Steps), ShouldEqual, 4)
				So(report.Steps[0].Body.Message, ShouldEqual, "Signed up smoke@mergington.edu for Chess Club")
				So(report.Steps[1].Body.Detail, ShouldContainSubstring, "already signed up")
				So(report.Steps[2].Body.Message, ShouldEqual, "Removed smoke@mergington.edu from Chess Club")
				So(report.Steps[3].Body.Detail, ShouldContainSubstring, "not signed up")
				So(report.Duration, ShouldBeGreaterThan, 0)
			})

			Convey("And a second run should pass against the restored roster", func() {
				_, err := Run(ctx, newConfig(srv.URL), logger.Get())
				So(err, ShouldBeNil)
			})
		})

		Convey("When the target activity does not exist", func() {
			cfg := newConfig(srv.URL)
			cfg.Activity = "Underwater Basket Weaving"
			_, err := Run(ctx, cfg, logger.Get())

			Convey("Then it should report the missing activity", func() {
				So(errors.Is(err, ErrActivityMissing), ShouldBeTrue)
			})
		})

		Convey("When the email is already on the roster", func() {
			cfg := newConfig(srv.URL)
			cfg.Email = "michael@mergington.edu"
			_, err := Run(ctx, cfg, logger.Get())

			Convey("Then it should refuse to start", func() {
				So(errors.Is(err, ErrRosterMismatch), ShouldBeTrue)
			})
		})
	})

	Convey("Given a service rejecting every token", t, func() {
		srv := newTarget(verification.StaticVerifier{Success: false})
		defer srv.Close()

		Convey("When running the walkthrough", func() {
			report, err := Run(context.Background(), newConfig(srv.URL), logger.Get())

			Convey("Then the first signup should fail with the verification detail", func() {
				So(errors.Is(err, ErrUnexpectedStatus), ShouldBeTrue)
				So(len(report.Steps), ShouldEqual, 1)
				So(report.Steps[0].Status, ShouldEqual, http.StatusBadRequest)
				So(report.Steps[0].Body.Detail, ShouldEqual, "Invalid reCAPTCHA. Please try again.")
			})
		})
	})

	Convey("Given no service listening", t, func() {
		srv := newTarget(verification.StaticVerifier{Success: true})
		url := srv.URL
		srv.Close()

		Convey("When running the walkthrough", func() {
			_, err := Run(context.Background(), newConfig(url), logger.Get())

			Convey("Then it should fail the health check", func() {
				So(errors.Is(err, ErrUnhealthy), ShouldBeTrue)
			})
		})
	})
}
