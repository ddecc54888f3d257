package deps

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/depcheck/pkg/errors"
	"github.com/matzehuels/depcheck/pkg/observability"
)

// Resolver pairs declared libraries with their latest published versions.
//
// A Resolver holds no per-run state; one instance can serve any number of
// runs, including concurrent ones.
type Resolver struct {
	fetcher Fetcher
	logger  *log.Logger
}

// NewResolver creates a Resolver that looks libraries up through fetcher.
// If logger is nil, log output is discarded.
func NewResolver(fetcher Fetcher, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Resolver{fetcher: fetcher, logger: logger}
}

// ResolveLatest starts a resolution run over declared and returns its
// snapshot stream.
//
// The run executes on its own goroutine. It emits one progress snapshot per
// lookup, then exactly one terminal snapshot, then closes the channel. The
// channel is buffered for the whole run, so the producer never blocks and an
// abandoned stream does not leak the goroutine.
//
// Cancelling ctx stops further lookups; the remaining rows resolve to
// [Unknown] and the terminal snapshot is still delivered.
func (r *Resolver) ResolveLatest(ctx context.Context, declared []Library) <-chan Result {
	out := make(chan Result, len(declared)+1)
	go r.run(ctx, declared, out)
	return out
}

func (r *Resolver) run(ctx context.Context, declared []Library, out chan<- Result) {
	defer close(out)

	hooks := observability.Resolve()
	start := time.Now()
	hooks.OnResolveStart(ctx, len(declared))

	resolved := make([]Library, len(declared))
	failed := 0
	for i, lib := range declared {
		latest, err := r.lookup(ctx, lib)
		if err != nil {
			failed++
			if ctx.Err() == nil {
				r.logger.Warn("lookup failed", "library", lib.Coordinate(), "code", errors.GetCode(err), "err", err)
			}
			latest = Unknown(lib)
		}
		resolved[i] = latest

		out <- Result{
			Declared: declared,
			Progress: progressMessage(lib, i+1, len(declared)),
		}
	}

	hooks.OnResolveComplete(ctx, len(declared), failed, time.Since(start))
	out <- Result{Declared: declared, Resolved: resolved}
}

func (r *Resolver) lookup(ctx context.Context, lib Library) (Library, error) {
	if err := ctx.Err(); err != nil {
		return Library{}, err
	}
	start := time.Now()
	latest, err := r.fetcher.FetchLatest(ctx, lib.GroupID, lib.ArtifactID)
	observability.Resolve().OnLookup(ctx, lib.Coordinate(), time.Since(start), err)
	if err != nil {
		return Library{}, err
	}
	r.logger.Debug("resolved", "library", lib.Coordinate(), "declared", lib.Version, "latest", latest.Version)
	return latest, nil
}

// progressMessage describes the lookup that just finished, e.g.
// "Checking com.example:foo ... (2/5)".
func progressMessage(lib Library, n, total int) string {
	return fmt.Sprintf("Checking %s ... (%d/%d)", lib.Coordinate(), n, total)
}
