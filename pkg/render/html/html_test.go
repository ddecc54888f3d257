package html

import (
	"strings"
	"testing"

	"github.com/matzehuels/depcheck/pkg/deps"
)

const header = `<table><tr><th align="left">Library</th><th align="left">Using version</th><th align="left">Latest version</th></tr>`

func TestTable(t *testing.T) {
	declared := []deps.Library{
		{GroupID: "com.example", ArtifactID: "foo", Version: "1.0.0"},
		{GroupID: "com.example", ArtifactID: "bar", Version: "2.0.0"},
	}
	resolved := []deps.Library{
		{GroupID: "com.example", ArtifactID: "foo", Version: "1.2.0", MetadataURL: "https://repo.example/foo/maven-metadata.xml"},
		deps.Unknown(declared[1]),
	}

	want := header +
		`<tr class="outdated"><td><a href="https://repo.example/foo/maven-metadata.xml">com.example:foo</a></td><td>1.0.0</td><td>1.2.0</td></tr>` +
		`<tr><td>com.example:bar</td><td>2.0.0</td><td>unknown</td></tr>` +
		`</table>`

	if got := Table(declared, resolved); got != want {
		t.Errorf("Table() =\n%s\nwant\n%s", got, want)
	}
}

func TestTable_Empty(t *testing.T) {
	if got := Table(nil, nil); got != header+"</table>" {
		t.Errorf("Table(nil) = %s", got)
	}
}

func TestTable_UpToDate(t *testing.T) {
	declared := []deps.Library{{GroupID: "g", ArtifactID: "a", Version: "2.0"}}
	resolved := []deps.Library{{GroupID: "g", ArtifactID: "a", Version: "2.0"}}

	if got := Table(declared, resolved); strings.Contains(got, OutdatedClass) {
		t.Errorf("up-to-date row marked outdated: %s", got)
	}
}

func TestTable_Escapes(t *testing.T) {
	declared := []deps.Library{{GroupID: "g<script>", ArtifactID: "a&b", Version: `"1"`}}
	resolved := []deps.Library{{GroupID: "g<script>", ArtifactID: "a&b", Version: "<2>", MetadataURL: `https://x/"onmouseover="`}}

	got := Table(declared, resolved)
	for _, raw := range []string{"<script>", "a&b", `"1"`, "<2>", `"onmouseover="`} {
		if strings.Contains(got, raw) {
			t.Errorf("output contains unescaped %q: %s", raw, got)
		}
	}
	if !strings.Contains(got, "g&lt;script&gt;:a&amp;b") {
		t.Errorf("escaped coordinate missing: %s", got)
	}
}

func TestTable_ShortResolved(t *testing.T) {
	declared := []deps.Library{{GroupID: "g", ArtifactID: "a", Version: "1"}}
	if got := Table(declared, nil); !strings.Contains(got, "<td>unknown</td>") {
		t.Errorf("missing resolved entry not rendered as unknown: %s", got)
	}
}

func TestProgress(t *testing.T) {
	if got := Progress("Checking a:b ... (1/2)"); got != "<p>Checking a:b ... (1/2)</p>" {
		t.Errorf("Progress() = %q", got)
	}
	if got := Progress("<b>"); got != "<p>&lt;b&gt;</p>" {
		t.Errorf("Progress() = %q", got)
	}
}
