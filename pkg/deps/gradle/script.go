package gradle

import (
	"path"
	"strings"

	"github.com/matzehuels/depcheck/pkg/deps"
	"github.com/matzehuels/depcheck/pkg/errors"
)

// Script extracts declarations from Groovy and Kotlin DSL build scripts.
type Script struct{}

func (Script) Type() string { return "build.gradle" }

func (Script) Supports(name string) bool {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	return strings.HasSuffix(base, ".gradle") || strings.HasSuffix(base, ".gradle.kts")
}

func (Script) Extract(text string) []deps.Library { return Extract(text) }

// Extract returns the libraries declared in the dependencies blocks of a
// Gradle build script, in source order. Duplicates are kept.
func Extract(text string) []deps.Library {
	toks := tokenize(text)

	var libs []deps.Library
	for i := 0; i+1 < len(toks); i++ {
		if toks[i].kind == tokIdent && toks[i].text == "dependencies" && toks[i+1].kind == tokLBrace {
			var found []deps.Library
			found, i = scanBlock(toks, i+2)
			libs = append(libs, found...)
		}
	}
	return libs
}

// scanBlock reads statements from the first token after a dependencies "{"
// up to its matching "}". It returns the index of that brace.
func scanBlock(toks []token, i int) ([]deps.Library, int) {
	var libs []deps.Library
	depth := 1
	for i < len(toks) {
		switch toks[i].kind {
		case tokLBrace:
			depth++
		case tokRBrace:
			depth--
			if depth == 0 {
				return libs, i
			}
		case tokIdent:
			if found, next, ok := statement(toks, i); ok {
				libs = append(libs, found...)
				i = next
				continue
			}
		}
		i++
	}
	return libs, i
}

// statement parses a declaration that starts with the configuration name at
// toks[i]. ok is false if toks[i] does not start one.
func statement(toks []token, i int) (libs []deps.Library, next int, ok bool) {
	j := i + 1
	if j < len(toks) && toks[j].kind == tokLParen {
		j++
	}
	if j >= len(toks) {
		return nil, i, false
	}

	switch {
	case toks[j].kind == tokString:
		for {
			if lib, valid := parseCoordinate(toks[j].text); valid {
				libs = append(libs, lib)
			}
			j++
			if j+1 < len(toks) && toks[j].kind == tokComma && toks[j+1].kind == tokString {
				j++
				continue
			}
			return libs, j, true
		}
	case isPairStart(toks, j):
		fields, end := pairs(toks, j)
		if lib, valid := fromFields(fields); valid {
			libs = append(libs, lib)
		}
		return libs, end, true
	}
	return nil, i, false
}

func isPairStart(toks []token, j int) bool {
	return j+2 < len(toks) &&
		toks[j].kind == tokIdent &&
		(toks[j+1].kind == tokColon || toks[j+1].kind == tokEquals) &&
		toks[j+2].kind == tokString
}

// pairs reads "key: 'value'" or key = "value" pairs separated by commas.
func pairs(toks []token, j int) (map[string]string, int) {
	fields := make(map[string]string)
	for isPairStart(toks, j) {
		fields[toks[j].text] = toks[j+2].text
		j += 3
		if j < len(toks) && toks[j].kind == tokComma {
			j++
			continue
		}
		break
	}
	return fields, j
}

func fromFields(fields map[string]string) (deps.Library, bool) {
	lib := deps.Library{
		GroupID:    strings.TrimSpace(fields["group"]),
		ArtifactID: strings.TrimSpace(fields["name"]),
		Version:    strings.TrimSpace(fields["version"]),
	}
	return lib, valid(lib)
}

// parseCoordinate parses "group:artifact:version[:classifier][@ext]".
func parseCoordinate(s string) (deps.Library, bool) {
	if at := strings.IndexByte(s, '@'); at >= 0 {
		s = s[:at]
	}
	parts := strings.Split(s, ":")
	if len(parts) < 3 {
		return deps.Library{}, false
	}
	lib := deps.Library{
		GroupID:    strings.TrimSpace(parts[0]),
		ArtifactID: strings.TrimSpace(parts[1]),
		Version:    strings.TrimSpace(parts[2]),
	}
	return lib, valid(lib)
}

func valid(lib deps.Library) bool {
	if lib.Version == "" || strings.ContainsAny(lib.Version, " \t") {
		return false
	}
	return errors.ValidateCoordinatePart(lib.GroupID) == nil &&
		errors.ValidateCoordinatePart(lib.ArtifactID) == nil
}
