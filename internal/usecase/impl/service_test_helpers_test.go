package impl

import (
	"io"
	"log/slog"
	"time"

	"backoffice/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Dashboard.PageSize = 5
	cfg.Dashboard.RedirectPath = "/dashboard"
	cfg.Dashboard.RedirectDelay = 2500 * time.Millisecond

	return cfg
}
