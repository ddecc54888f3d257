// Package pkg provides the core libraries for depcheck, a checker that puts
// the library versions a build script declares next to the latest published
// ones.
//
// # Overview
//
// The pkg directory is organized into these areas:
//
//  1. [deps] - Domain types, extractors and the version resolver
//  2. [integrations] - Package index clients (Maven repositories, Central search)
//  3. [pipeline] - Orchestration (extract → resolve → deliver snapshots)
//  4. [render] and [io] - HTML fragments and JSON reports
//
// # Architecture
//
// The typical data flow through depcheck:
//
//	Build script text (build.gradle, libs.versions.toml, pom.xml)
//	         ↓
//	    [deps/manifests] picks an extractor
//	         ↓
//	    declared libraries, in source order
//	         ↓
//	    [deps] Resolver (one lookup per library, progress snapshots)
//	         ↓
//	    terminal snapshot: declared and resolved, index aligned
//	         ↓
//	    text table, HTML table or JSON
//
// # Quick Start
//
// Check a Gradle script against Maven Central:
//
//	import (
//	    "context"
//
//	    "github.com/matzehuels/depcheck/pkg/deps"
//	    "github.com/matzehuels/depcheck/pkg/deps/gradle"
//	    "github.com/matzehuels/depcheck/pkg/integrations/maven"
//	    "github.com/matzehuels/depcheck/pkg/render/html"
//	)
//
//	declared := gradle.Extract(script)
//	resolver := deps.NewResolver(maven.NewMetadataClient(nil), nil)
//	for r := range resolver.ResolveLatest(context.Background(), declared) {
//	    if r.Terminal() {
//	        fmt.Println(html.Table(r.Declared, r.Resolved))
//	    }
//	}
//
// # Package Guide
//
// [deps] - The [deps.Library] value type, the Extractor and Fetcher
// interfaces and the sequential Resolver. A lookup that fails yields the
// "unknown" sentinel instead of aborting the run.
//
// [deps/gradle] - Gradle build scripts (Groovy and Kotlin DSL) and version
// catalogs.
//
// [deps/java] - Maven POM files, including property placeholders.
//
// [integrations/maven] - maven-metadata.xml lookups across repositories and
// the Maven Central search API.
//
// [pipeline] - Options, validation and the Runner, which keeps at most one
// in-flight check and drops snapshots of replaced runs.
//
// [errors] - Coded errors shared by every layer.
//
// [observability] - Hooks for resolve and HTTP events.
//
// [deps]: https://pkg.go.dev/github.com/matzehuels/depcheck/pkg/deps
// [deps/manifests]: https://pkg.go.dev/github.com/matzehuels/depcheck/pkg/deps/manifests
// [deps/gradle]: https://pkg.go.dev/github.com/matzehuels/depcheck/pkg/deps/gradle
// [deps/java]: https://pkg.go.dev/github.com/matzehuels/depcheck/pkg/deps/java
// [integrations]: https://pkg.go.dev/github.com/matzehuels/depcheck/pkg/integrations
// [integrations/maven]: https://pkg.go.dev/github.com/matzehuels/depcheck/pkg/integrations/maven
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/depcheck/pkg/pipeline
// [render]: https://pkg.go.dev/github.com/matzehuels/depcheck/pkg/render
// [io]: https://pkg.go.dev/github.com/matzehuels/depcheck/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/depcheck/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/depcheck/pkg/observability
package pkg
