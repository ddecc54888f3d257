package deps

import "context"

// UnknownVersion marks a library whose latest version could not be resolved.
const UnknownVersion = "unknown"

// Library identifies one declared or resolved library.
//
// A declared Library carries the version found in the build script. A
// resolved Library carries the latest version reported by the package index
// and, when the index is known, the URL of its metadata page.
//
// Library is a value type; it is never modified after construction.
type Library struct {
	GroupID     string // Maven groupId (e.g., "com.google.guava")
	ArtifactID  string // Maven artifactId (e.g., "guava")
	Version     string // Declared or latest version
	MetadataURL string // Package index metadata page (empty if absent)
}

// Coordinate returns the "groupId:artifactId" pair identifying the library
// independent of version.
func (l Library) Coordinate() string {
	return l.GroupID + ":" + l.ArtifactID
}

// String returns the full "groupId:artifactId:version" notation.
func (l Library) String() string {
	return l.Coordinate() + ":" + l.Version
}

// Unknown returns the sentinel resolved entry for lib: same coordinate,
// version [UnknownVersion], no metadata URL.
func Unknown(lib Library) Library {
	return Library{GroupID: lib.GroupID, ArtifactID: lib.ArtifactID, Version: UnknownVersion}
}

// IsUnknown reports whether lib is an [Unknown] sentinel.
func (l Library) IsUnknown() bool {
	return l.Version == UnknownVersion && l.MetadataURL == ""
}

// Result is one snapshot of a resolution run.
//
// Progress snapshots have a nil Resolved slice and a non-empty Progress
// message. The terminal snapshot has Resolved set, index aligned with
// Declared (len(Resolved) == len(Declared)), and an empty Progress.
type Result struct {
	Declared []Library
	Resolved []Library
	Progress string
}

// Terminal reports whether r is the final snapshot of a run.
func (r Result) Terminal() bool {
	return r.Resolved != nil
}

// Extractor scans build-script text for library declarations.
//
// Extract never fails: malformed input degrades to a partial or empty
// result. Declarations are returned in source order, duplicates included.
type Extractor interface {
	// Type returns the script type identifier (e.g., "build.gradle").
	Type() string
	// Supports reports whether this extractor handles the given filename.
	Supports(filename string) bool
	// Extract returns the declared libraries found in text.
	Extract(text string) []Library
}

// Fetcher looks up the latest published version of a library.
type Fetcher interface {
	// FetchLatest returns the latest version of groupID:artifactID as a
	// resolved Library. Errors cover unknown libraries and transport failures.
	FetchLatest(ctx context.Context, groupID, artifactID string) (Library, error)
}

// FetcherFunc adapts an ordinary function to the [Fetcher] interface.
type FetcherFunc func(ctx context.Context, groupID, artifactID string) (Library, error)

// FetchLatest calls f(ctx, groupID, artifactID).
func (f FetcherFunc) FetchLatest(ctx context.Context, groupID, artifactID string) (Library, error) {
	return f(ctx, groupID, artifactID)
}
