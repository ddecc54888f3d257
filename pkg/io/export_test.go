package io

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/depcheck/pkg/deps"
)

func sampleResult() deps.Result {
	declared := []deps.Library{
		{GroupID: "com.example", ArtifactID: "foo", Version: "1.0.0"},
		{GroupID: "com.example", ArtifactID: "bar", Version: "2.0.0"},
	}
	return deps.Result{
		Declared: declared,
		Resolved: []deps.Library{
			{GroupID: "com.example", ArtifactID: "foo", Version: "1.2.0", MetadataURL: "https://repo.example/foo"},
			deps.Unknown(declared[1]),
		},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleResult()); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	var got report
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(got.Libraries) != 2 {
		t.Fatalf("got %d libraries, want 2", len(got.Libraries))
	}

	foo := got.Libraries[0]
	if foo.Group != "com.example" || foo.Artifact != "foo" || foo.Using != "1.0.0" || foo.Latest != "1.2.0" {
		t.Errorf("libraries[0] = %+v", foo)
	}
	if !foo.Outdated || foo.MetadataURL != "https://repo.example/foo" {
		t.Errorf("libraries[0] = %+v", foo)
	}

	bar := got.Libraries[1]
	if bar.Latest != deps.UnknownVersion || bar.Outdated {
		t.Errorf("libraries[1] = %+v", bar)
	}
	if strings.Count(buf.String(), "metadata_url") != 1 {
		t.Errorf("metadata_url should be omitted for unknown entries:\n%s", buf.String())
	}
}

func TestWriteJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, deps.Result{Resolved: []deps.Library{}}); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}
	if !strings.Contains(buf.String(), `"libraries": []`) {
		t.Errorf("got %s", buf.String())
	}
}

func TestWriteJSON_RejectsProgress(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, deps.Result{Progress: "Checking a:b ... (1/1)"}); err == nil {
		t.Error("WriteJSON() should reject a progress snapshot")
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "versions.json")
	if err := ExportJSON(sampleResult(), path); err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"artifact": "foo"`) {
		t.Errorf("unexpected file content:\n%s", data)
	}
}
