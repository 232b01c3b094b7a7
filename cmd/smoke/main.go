package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/mergington/internal/smoke"
	"github.com/okian/mergington/pkg/logger"
)

// Default configuration constants.
const (
	defaultTimeout = 10 * time.Second
	runTimeout     = time.Minute
)

func main() {
	var (
		baseURL  = flag.String("url", "http://localhost:8000", "Base URL of the service")
		email    = flag.String("email", "smoke@mergington.edu", "Student email to sign up and remove")
		activity = flag.String("activity", "Chess Club", "Activity name")
		token    = flag.String("token", "smoke-token", "reCAPTCHA token sent with the signup")
		timeout  = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		jsonLogs = flag.Bool("json", false, "Emit JSON logs")
		verbose  = flag.Bool("verbose", false, "Log every response")
		help     = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		smoke.ShowHelp()
		return
	}

	format := "text"
	if *jsonLogs {
		format = "json"
	}
	if err := logger.Init(logger.WithFormat(format)); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	log := logger.Named("smoke")
	_, err := smoke.Run(ctx, &smoke.Config{
		BaseURL:  *baseURL,
		Email:    *email,
		Activity: *activity,
		Token:    *token,
		Timeout:  *timeout,
		Verbose:  *verbose,
	}, log)
	if err != nil {
		log.Error(ctx, "smoke run failed", logger.Error(err))
		os.Exit(1)
	}
}
