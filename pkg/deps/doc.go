// Package deps extracts declared libraries from build scripts and resolves
// their latest published versions.
//
// # Overview
//
// Checking a build script is a two-stage pipeline:
//
//  1. An [Extractor] scans the raw script text into an ordered slice of
//     declared [Library] values (group, artifact, declared version).
//  2. A [Resolver] looks each declaration up in a package index through a
//     [Fetcher] and streams [Result] snapshots back to the caller.
//
// Extractors live in subpackages ([gradle], [java]); the [manifests] package
// picks one by file name or content.
//
// # Resolving Latest Versions
//
//	r := deps.NewResolver(fetcher, logger)
//	for res := range r.ResolveLatest(ctx, declared) {
//	    if !res.Terminal() {
//	        fmt.Println(res.Progress) // "Checking com.example:foo ... (2/5)"
//	        continue
//	    }
//	    for i, lib := range res.Declared {
//	        fmt.Println(lib.Coordinate(), lib.Version, res.Resolved[i].Version)
//	    }
//	}
//
// The resolver runs on its own goroutine and performs one lookup per
// declaration, sequentially and in declared order. Each lookup produces a
// progress snapshot; the final snapshot carries the resolved slice, index
// aligned with the declared one.
//
// # Failures
//
// A failed lookup never aborts a run. The row falls back to [Unknown], whose
// version is [UnknownVersion]. Cancelling the context fills the remaining rows
// the same way and still delivers the terminal snapshot.
//
// [gradle]: github.com/matzehuels/depcheck/pkg/deps/gradle
// [java]: github.com/matzehuels/depcheck/pkg/deps/java
// [manifests]: github.com/matzehuels/depcheck/pkg/deps/manifests
package deps
