package gradle

import (
	"path"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/depcheck/pkg/deps"
)

// Catalog extracts declarations from a Gradle version catalog
// (gradle/libs.versions.toml).
type Catalog struct{}

func (Catalog) Type() string { return "libs.versions.toml" }

func (Catalog) Supports(name string) bool {
	return strings.HasSuffix(path.Base(strings.ReplaceAll(name, "\\", "/")), ".versions.toml")
}

// Extract returns the [libraries] entries in file order. Entries whose
// version cannot be determined are skipped.
func (Catalog) Extract(text string) []deps.Library {
	var doc struct {
		Versions  map[string]any `toml:"versions"`
		Libraries map[string]any `toml:"libraries"`
	}
	md, err := toml.Decode(text, &doc)
	if err != nil {
		return nil
	}

	var libs []deps.Library
	for _, key := range md.Keys() {
		if len(key) != 2 || key[0] != "libraries" {
			continue
		}
		lib, ok := catalogEntry(doc.Libraries[key[1]], doc.Versions)
		if ok {
			libs = append(libs, lib)
		}
	}
	return libs
}

// catalogEntry handles both notations:
//
//	guava = "com.google.guava:guava:33.0.0-jre"
//	okhttp = { module = "com.squareup.okhttp3:okhttp", version.ref = "okhttp" }
func catalogEntry(v any, versions map[string]any) (deps.Library, bool) {
	switch e := v.(type) {
	case string:
		return parseCoordinate(e)
	case map[string]any:
		var group, name string
		if module, ok := e["module"].(string); ok {
			g, n, found := strings.Cut(module, ":")
			if !found {
				return deps.Library{}, false
			}
			group, name = g, n
		} else {
			group, _ = e["group"].(string)
			name, _ = e["name"].(string)
		}
		lib := deps.Library{
			GroupID:    strings.TrimSpace(group),
			ArtifactID: strings.TrimSpace(name),
			Version:    catalogVersion(e["version"], versions),
		}
		return lib, valid(lib)
	}
	return deps.Library{}, false
}

// catalogVersion resolves a version that is a plain string, a
// { ref = "..." } reference, or a rich { strictly | require | prefer } table.
func catalogVersion(v any, versions map[string]any) string {
	switch ver := v.(type) {
	case string:
		return ver
	case map[string]any:
		if ref, ok := ver["ref"].(string); ok {
			if _, nested := versions[ref].(map[string]any); nested {
				return catalogVersion(versions[ref], nil)
			}
			s, _ := versions[ref].(string)
			return s
		}
		for _, k := range []string{"strictly", "require", "prefer"} {
			if s, ok := ver[k].(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}
