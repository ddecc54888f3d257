package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/depcheck/pkg/observability"
)

// logHooks traces resolution and HTTP activity at debug level.
type logHooks struct {
	logger *log.Logger
}

func (c *CLI) registerHooks() {
	h := logHooks{logger: c.Logger}
	observability.SetResolveHooks(h)
	observability.SetHTTPHooks(h)
}

func (h logHooks) OnResolveStart(_ context.Context, count int) {
	h.logger.Debug("resolve started", "libraries", count)
}

func (h logHooks) OnLookup(_ context.Context, coordinate string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("lookup", "library", coordinate, "duration", d.Round(time.Millisecond), "err", err)
		return
	}
	h.logger.Debug("lookup", "library", coordinate, "duration", d.Round(time.Millisecond))
}

func (h logHooks) OnResolveComplete(_ context.Context, count, failed int, d time.Duration) {
	h.logger.Debug("resolve finished", "libraries", count, "failed", failed, "duration", d.Round(time.Millisecond))
}

func (h logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("http response", "method", method, "host", host, "path", path, "status", status, "duration", d.Round(time.Millisecond))
}

func (h logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("http error", "method", method, "host", host, "path", path, "err", err)
}
