package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/depcheck/pkg/deps"
	"github.com/matzehuels/depcheck/pkg/errors"
	"github.com/matzehuels/depcheck/pkg/pipeline"
	"github.com/matzehuels/depcheck/pkg/render/html"
)

const (
	sessionCookie   = appName + "_session"
	maxSessions     = 256
	maxScriptBytes  = 1 << 20
	shutdownTimeout = 5 * time.Second
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		resolve resolveFlags
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the version check panel over HTTP",
		Long: `Serve starts a small web panel: paste a build script, press Check and watch the
versions resolve. Each browser session runs one check at a time; starting a new
check replaces the one in flight.

Routes:
  GET  /              panel page
  POST /check         HTML table fragment (form field "script", optional "filename")
  POST /check/stream  server-sent events: "progress" lines, then one "result"`,
		Example: `  depcheck serve
  depcheck serve --addr :9090 --index search`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(resolve)
			if err != nil {
				return err
			}
			srv, err := newServer(opts, c.Logger, maxSessions)
			if err != nil {
				return err
			}
			printInfo(cmd.ErrOrStderr(), "Serving on %s", StyleLink.Render("http://"+addr))
			return srv.run(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	resolve.register(cmd)

	return cmd
}

// server is the HTTP panel. It keeps one runner per browser session, for at
// most a fixed number of sessions; the least recently used session is closed
// when a new one would exceed the limit.
type server struct {
	opts   pipeline.Options
	logger *log.Logger

	mu       sync.Mutex // serializes session lookup and creation
	sessions *lru.Cache[string, *pipeline.Runner]
}

func newServer(opts pipeline.Options, logger *log.Logger, limit int) (*server, error) {
	sessions, err := lru.NewWithEvict(limit, func(id string, runner *pipeline.Runner) {
		runner.Close()
		logger.Debug("session closed", "session", id)
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "session limit %d", limit)
	}
	return &server{
		opts:     opts,
		logger:   logger,
		sessions: sessions,
	}, nil
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handleIndex)
	r.Post("/check", s.handleCheck)
	r.Post("/check/stream", s.handleStream)
	return r
}

// run serves on addr until ctx is cancelled or the listener fails.
func (s *server) run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("listen %s: %w", addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.closeSessions()
		return httpServer.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"id", middleware.GetReqID(r.Context()),
			"duration", time.Since(start).Round(time.Millisecond))
	})
}

// =============================================================================
// Sessions
// =============================================================================

// session returns the runner of the request's browser session, creating the
// session and its cookie when needed.
func (s *server) session(w http.ResponseWriter, r *http.Request) (*pipeline.Runner, error) {
	id := ""
	if c, err := r.Cookie(sessionCookie); err == nil {
		if parsed, err := uuid.Parse(c.Value); err == nil {
			id = parsed.String()
		}
	}
	if id == "" {
		id = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteStrictMode,
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if runner, ok := s.sessions.Get(id); ok {
		return runner, nil
	}
	runner, err := pipeline.NewRunner(s.opts)
	if err != nil {
		return nil, err
	}
	s.sessions.Add(id, runner)
	s.logger.Debug("session created", "session", id)
	return runner, nil
}

// closeSessions closes every session's runner.
func (s *server) closeSessions() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions.Purge()
}

// =============================================================================
// Handlers
// =============================================================================

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, indexPage)
}

// handleCheck answers with the finished table. A check replaced by a newer
// one from the same session answers 409.
func (s *server) handleCheck(w http.ResponseWriter, r *http.Request) {
	runner, run, ok := s.start(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if run == nil {
		_, _ = io.WriteString(w, html.NoLibraryMessage)
		return
	}

	var final deps.Result
	if ok, _ := runner.Deliver(run, func(res deps.Result) error {
		if res.Terminal() {
			final = res
		}
		return nil
	}); !ok {
		http.Error(w, "check superseded by a newer one", http.StatusConflict)
		return
	}
	_, _ = io.WriteString(w, html.Table(final.Declared, final.Resolved))
}

// handleStream answers with server-sent events: one "progress" event per
// lookup and a final "result" event holding the table.
func (s *server) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	runner, run, ok := s.start(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	if run == nil {
		if err := writeEvent(w, "result", html.NoLibraryMessage); err == nil {
			flusher.Flush()
		}
		return
	}

	_, err := runner.Deliver(run, func(res deps.Result) error {
		var err error
		if res.Terminal() {
			err = writeEvent(w, "result", html.Table(res.Declared, res.Resolved))
		} else {
			err = writeEvent(w, "progress", html.Progress(res.Progress))
		}
		if err != nil {
			return err
		}
		flusher.Flush()
		return nil
	})
	if err != nil {
		s.logger.Debug("stream closed", "run", run.ID, "err", err)
	}
}

// start reads the form and starts a check on the session's runner. run is
// nil when the script holds no declarations. ok is false if an error
// response was written.
func (s *server) start(w http.ResponseWriter, r *http.Request) (runner *pipeline.Runner, run *pipeline.Run, ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxScriptBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form: "+err.Error(), http.StatusBadRequest)
		return nil, nil, false
	}

	runner, err := s.session(w, r)
	if err != nil {
		http.Error(w, errors.UserMessage(err), http.StatusInternalServerError)
		return nil, nil, false
	}

	run, err = runner.Start(r.Context(), r.FormValue("filename"), r.FormValue("script"))
	switch {
	case errors.Is(err, errors.ErrCodeNoDeclarations):
		return runner, nil, true
	case err != nil:
		http.Error(w, errors.UserMessage(err), http.StatusInternalServerError)
		return nil, nil, false
	}
	return runner, run, true
}

// writeEvent writes one server-sent event in a single write.
func writeEvent(w io.Writer, event, data string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "event: %s\n", event)
	for _, line := range strings.Split(data, "\n") {
		fmt.Fprintf(&b, "data: %s\n", line)
	}
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>depcheck</title>
<style>
body { font-family: sans-serif; margin: 2em; }
textarea { width: 100%; height: 16em; font-family: monospace; }
th, td { padding: 0.2em 1em 0.2em 0; }
tr.outdated td:last-child { color: #c60; font-weight: bold; }
#status { color: #666; }
</style>
</head>
<body>
<h1>depcheck</h1>
<form id="form">
<textarea name="script" placeholder="Paste a build.gradle, libs.versions.toml or pom.xml"></textarea>
<p><button type="submit">Check</button></p>
</form>
<div id="status"></div>
<div id="result"></div>
<script>
const form = document.getElementById("form");
const status = document.getElementById("status");
const result = document.getElementById("result");
form.addEventListener("submit", async (e) => {
  e.preventDefault();
  status.innerHTML = "";
  result.innerHTML = "";
  const resp = await fetch("/check/stream", { method: "POST", body: new URLSearchParams(new FormData(form)) });
  const reader = resp.body.getReader();
  const decoder = new TextDecoder();
  let buf = "";
  for (;;) {
    const { done, value } = await reader.read();
    if (done) break;
    buf += decoder.decode(value, { stream: true });
    let idx;
    while ((idx = buf.indexOf("\n\n")) >= 0) {
      const block = buf.slice(0, idx);
      buf = buf.slice(idx + 2);
      let event = "message", data = [];
      for (const line of block.split("\n")) {
        if (line.startsWith("event: ")) event = line.slice(7);
        else if (line.startsWith("data: ")) data.push(line.slice(6));
      }
      if (event === "progress") status.innerHTML = data.join("\n");
      if (event === "result") { status.innerHTML = "Version check finished."; result.innerHTML = data.join("\n"); }
    }
  }
});
</script>
</body>
</html>
`
