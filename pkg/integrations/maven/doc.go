// Package maven looks up the latest published version of Maven libraries.
//
// # Overview
//
// Two [deps.Fetcher] implementations are provided:
//
//   - [MetadataClient] reads maven-metadata.xml from one or more Maven
//     layout repositories (Maven Central and Google Maven by default).
//   - [SearchClient] queries the Maven Central search API
//     (https://search.maven.org).
//
// # Usage
//
//	client := maven.NewMetadataClient(nil) // default repositories
//	lib, err := client.FetchLatest(ctx, "com.google.guava", "guava")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(lib.Version, lib.MetadataURL)
//
// # Latest Version
//
// The metadata client uses <release>, falls back to <latest>, and finally to
// the highest entry of <versions> as ordered by [versions.Compare].
// Repositories are tried in order; the first one that knows the library
// answers and its metadata URL is returned as [deps.Library.MetadataURL].
//
// # Coordinates
//
// Group and artifact IDs are validated before they are placed in a URL, so a
// malformed declaration cannot address arbitrary repository paths.
//
// [deps.Fetcher]: github.com/matzehuels/depcheck/pkg/deps.Fetcher
// [deps.Library.MetadataURL]: github.com/matzehuels/depcheck/pkg/deps.Library
// [versions.Compare]: github.com/matzehuels/depcheck/pkg/versions.Compare
package maven
