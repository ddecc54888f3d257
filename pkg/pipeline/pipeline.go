// Package pipeline runs version checks for the CLI and the HTTP panel.
//
// This package wires extraction, lookup and snapshot delivery together so
// every entry point behaves the same way. A [Runner] owns at most one
// in-flight check: starting a new check cancels the previous one and its
// remaining snapshots are never delivered.
//
// # Usage
//
//	runner, err := pipeline.NewRunner(pipeline.Options{Logger: logger})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer runner.Close()
//
//	run, err := runner.Start(ctx, "build.gradle", text)
//	if errors.Is(err, errors.ErrCodeNoDeclarations) {
//	    fmt.Println(html.NoLibraryMessage)
//	    return
//	}
//	runner.Deliver(run, func(r deps.Result) error {
//	    if r.Terminal() {
//	        fmt.Println(html.Table(r.Declared, r.Resolved))
//	    }
//	    return nil
//	})
package pipeline

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/depcheck/pkg/deps"
	"github.com/matzehuels/depcheck/pkg/errors"
	"github.com/matzehuels/depcheck/pkg/integrations/maven"
)

// Package index backends.
const (
	IndexMetadata = "metadata"
	IndexSearch   = "search"
)

// DefaultIndex is the package index used when none is configured.
const DefaultIndex = IndexMetadata

// ValidIndexes is the set of supported package index backends.
var ValidIndexes = map[string]bool{
	IndexMetadata: true,
	IndexSearch:   true,
}

// Format constants for rendered output.
const (
	FormatText = "text"
	FormatHTML = "html"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatHTML: true,
	FormatJSON: true,
}

// Options configures a [Runner].
type Options struct {
	// Index selects the lookup backend: "metadata" (maven-metadata.xml from
	// Repositories) or "search" (Maven Central search API).
	Index string `json:"index,omitempty"`

	// Repositories lists Maven repository roots for the metadata index,
	// tried in order. Empty selects Maven Central and Google Maven.
	Repositories []string `json:"repositories,omitempty"`

	// Runtime options (not serialized)
	Logger  *log.Logger  `json:"-"`
	Fetcher deps.Fetcher `json:"-"` // overrides Index and Repositories

	validated bool `json:"-"`
}

// ValidateIndex checks that an index backend is supported.
func ValidateIndex(index string) error {
	if !ValidIndexes[index] {
		return errors.New(errors.ErrCodeInvalidIndex, "invalid index: %q (must be one of: metadata, search)", index)
	}
	return nil
}

// ValidateFormat checks that an output format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: text, html, json)", format)
	}
	return nil
}

// ValidateAndSetDefaults checks the options and fills in defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Index == "" {
		o.Index = DefaultIndex
	}
	if err := ValidateIndex(o.Index); err != nil {
		return err
	}
	for i, repo := range o.Repositories {
		repo = strings.TrimSpace(repo)
		if err := errors.ValidateURL(repo); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "repository %q", repo)
		}
		o.Repositories[i] = strings.TrimRight(repo, "/")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// NewFetcher returns the lookup backend selected by the options.
func (o *Options) NewFetcher() deps.Fetcher {
	if o.Fetcher != nil {
		return o.Fetcher
	}
	if o.Index == IndexSearch {
		return maven.NewSearchClient()
	}
	return maven.NewMetadataClient(o.Repositories)
}
