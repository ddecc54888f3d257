// Package render turns version check results into presentable output.
//
// The [html] subpackage builds the HTML fragment shown by the web panel and
// written by "depcheck check --format html". Terminal output lives in the
// CLI; JSON export lives in [io].
//
// [html]: github.com/matzehuels/depcheck/pkg/render/html
// [io]: github.com/matzehuels/depcheck/pkg/io
package render
