// Package manifests selects the extractor for a build file.
package manifests

import (
	"strings"

	"github.com/matzehuels/depcheck/pkg/deps"
	"github.com/matzehuels/depcheck/pkg/deps/gradle"
	"github.com/matzehuels/depcheck/pkg/deps/java"
)

// All returns every supported extractor, Gradle scripts first.
func All() []deps.Extractor {
	return []deps.Extractor{gradle.Script{}, gradle.Catalog{}, java.POM{}}
}

// Types returns the Type of each supported extractor.
func Types() []string {
	all := All()
	types := make([]string, len(all))
	for i, e := range all {
		types[i] = e.Type()
	}
	return types
}

// Detect picks the extractor for filename. When no extractor claims the
// name (stdin, pasted text), the content decides: XML is read as a POM, a
// [libraries] table as a version catalog, anything else as a Gradle script.
func Detect(filename, text string) deps.Extractor {
	if filename != "" && filename != "-" {
		for _, e := range All() {
			if e.Supports(filename) {
				return e
			}
		}
	}

	trimmed := strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(trimmed, "<"):
		return java.POM{}
	case hasLibrariesTable(trimmed):
		return gradle.Catalog{}
	}
	return gradle.Script{}
}

func hasLibrariesTable(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "[libraries]" {
			return true
		}
	}
	return false
}
