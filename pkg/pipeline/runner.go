package pipeline

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/depcheck/pkg/deps"
	"github.com/matzehuels/depcheck/pkg/deps/manifests"
	"github.com/matzehuels/depcheck/pkg/errors"
)

// Run is one started version check.
type Run struct {
	ID        string             // Unique run identifier
	Type      string             // Extractor type that read the script
	Declared  []deps.Library     // Declarations in source order
	Snapshots <-chan deps.Result // Progress snapshots, then one terminal snapshot
}

// Runner owns at most one in-flight run.
//
// Runner is safe for concurrent use. Starting a run cancels the previous
// one; snapshots of a replaced run are dropped by [Runner.Deliver]. No lock
// is held while a consumer handles a snapshot, so a slow consumer never
// delays the next [Runner.Start].
type Runner struct {
	resolver *deps.Resolver
	logger   *log.Logger

	mu      sync.Mutex
	current string
	cancel  context.CancelFunc
	closed  bool
}

// NewRunner validates opts and creates a Runner.
func NewRunner(opts Options) (*Runner, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return &Runner{
		resolver: deps.NewResolver(opts.NewFetcher(), opts.Logger),
		logger:   opts.Logger,
	}, nil
}

// Start extracts declarations from text and starts resolving them.
//
// name selects the extractor (see [manifests.Detect]); pass "" or "-" to
// detect by content. Any previous run is cancelled, even when text holds no
// declarations. In that case Start returns a NO_DECLARATIONS error and no
// lookup is made.
func (r *Runner) Start(ctx context.Context, name, text string) (*Run, error) {
	extractor := manifests.Detect(name, text)
	declared := extractor.Extract(text)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, errors.New(errors.ErrCodeInternal, "runner is closed")
	}
	r.stopLocked()

	if len(declared) == 0 {
		r.logger.Debug("no declarations", "type", extractor.Type())
		return nil, errors.New(errors.ErrCodeNoDeclarations, "no library declaration found")
	}

	runCtx, cancel := context.WithCancel(ctx)
	run := &Run{
		ID:        uuid.NewString(),
		Type:      extractor.Type(),
		Declared:  declared,
		Snapshots: r.resolver.ResolveLatest(runCtx, declared),
	}
	r.current = run.ID
	r.cancel = cancel

	r.logger.Info("check started", "run", run.ID, "type", run.Type, "libraries", len(declared))
	return run, nil
}

// Current reports whether id names the latest started run.
func (r *Runner) Current(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return id != "" && id == r.current
}

// Deliver drains run's snapshots, passing each to fn while run is current.
// It returns true if the terminal snapshot was delivered.
//
// Currency is checked before each call, so a replaced run gets no further
// calls once its replacement has started. A snapshot already handed to fn
// when the run is replaced is not taken back. If fn returns an error, Deliver
// stops and returns it; the run itself keeps going until its context ends.
func (r *Runner) Deliver(run *Run, fn func(deps.Result) error) (bool, error) {
	delivered := false
	for res := range run.Snapshots {
		if !r.Current(run.ID) {
			continue
		}
		if err := fn(res); err != nil {
			r.logger.Debug("delivery stopped", "run", run.ID, "err", err)
			return false, err
		}
		delivered = delivered || res.Terminal()
	}
	if !delivered {
		r.logger.Debug("dropped stale run", "run", run.ID)
	}
	return delivered, nil
}

// Cancel stops the in-flight run, if any. Its remaining snapshots are dropped.
func (r *Runner) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()
}

// Close cancels the in-flight run and rejects further starts.
func (r *Runner) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()
	r.closed = true
}

func (r *Runner) stopLocked() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.current = ""
}
