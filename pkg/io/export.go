package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/depcheck/pkg/deps"
	"github.com/matzehuels/depcheck/pkg/versions"
)

type report struct {
	Libraries []library `json:"libraries"`
}

type library struct {
	Group       string `json:"group"`
	Artifact    string `json:"artifact"`
	Using       string `json:"using"`
	Latest      string `json:"latest"`
	MetadataURL string `json:"metadata_url,omitempty"`
	Outdated    bool   `json:"outdated"`
}

// WriteJSON encodes a terminal result as JSON and writes it to w.
func WriteJSON(w io.Writer, r deps.Result) error {
	if !r.Terminal() {
		return fmt.Errorf("encode: result is not terminal")
	}

	out := report{Libraries: make([]library, len(r.Declared))}
	for i, lib := range r.Declared {
		latest := deps.Unknown(lib)
		if i < len(r.Resolved) {
			latest = r.Resolved[i]
		}
		out.Libraries[i] = library{
			Group:       lib.GroupID,
			Artifact:    lib.ArtifactID,
			Using:       lib.Version,
			Latest:      latest.Version,
			MetadataURL: latest.MetadataURL,
			Outdated:    versions.IsOutdated(lib.Version, latest.Version),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a terminal result to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(r deps.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
