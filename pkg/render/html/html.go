// Package html renders version check results as HTML fragments.
//
// The fragments are self-contained and unstyled apart from a class on
// outdated rows, so they can be embedded in any page:
//
//	frag := html.Table(result.Declared, result.Resolved)
//
// All library text is escaped.
package html

import (
	"bytes"
	"fmt"
	stdhtml "html"

	"github.com/matzehuels/depcheck/pkg/deps"
	"github.com/matzehuels/depcheck/pkg/versions"
)

// NoLibraryMessage is shown when a script holds no declarations.
const NoLibraryMessage = `<span style="color:red">[Error] No library declaration is found. Please input gradle script which contains dependencies blocks.</span>`

// OutdatedClass marks rows whose latest version is newer than the declared one.
const OutdatedClass = "outdated"

// Table renders one row per declared library.
//
// declared and resolved are index aligned. The library cell links to the
// resolved metadata URL when there is one. A missing resolved entry is
// rendered as unknown.
func Table(declared, resolved []deps.Library) string {
	var buf bytes.Buffer
	buf.WriteString("<table>")
	buf.WriteString(`<tr><th align="left">Library</th><th align="left">Using version</th><th align="left">Latest version</th></tr>`)

	for i, lib := range declared {
		latest := deps.Unknown(lib)
		if i < len(resolved) {
			latest = resolved[i]
		}

		if versions.IsOutdated(lib.Version, latest.Version) {
			fmt.Fprintf(&buf, `<tr class="%s">`, OutdatedClass)
		} else {
			buf.WriteString("<tr>")
		}
		fmt.Fprintf(&buf, "<td>%s</td>", libraryCell(lib, latest.MetadataURL))
		fmt.Fprintf(&buf, "<td>%s</td>", stdhtml.EscapeString(lib.Version))
		fmt.Fprintf(&buf, "<td>%s</td>", stdhtml.EscapeString(latest.Version))
		buf.WriteString("</tr>")
	}

	buf.WriteString("</table>")
	return buf.String()
}

// Progress renders a progress line.
func Progress(msg string) string {
	return "<p>" + stdhtml.EscapeString(msg) + "</p>"
}

func libraryCell(lib deps.Library, url string) string {
	name := stdhtml.EscapeString(lib.Coordinate())
	if url == "" {
		return name
	}
	return fmt.Sprintf(`<a href="%s">%s</a>`, stdhtml.EscapeString(url), name)
}
