package maven

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/matzehuels/depcheck/pkg/deps"
	pkgerrors "github.com/matzehuels/depcheck/pkg/errors"
	"github.com/matzehuels/depcheck/pkg/integrations"
	"github.com/matzehuels/depcheck/pkg/versions"
)

const (
	// CentralURL is the Maven Central repository root.
	CentralURL = "https://repo1.maven.org/maven2"
	// GoogleURL is the Google Maven repository root (Android and AndroidX).
	GoogleURL = "https://dl.google.com/dl/android/maven2"
)

// DefaultRepositories lists the repositories tried when none are configured.
var DefaultRepositories = []string{CentralURL, GoogleURL}

// MetadataClient resolves latest versions from maven-metadata.xml.
//
// All methods are safe for concurrent use by multiple goroutines.
type MetadataClient struct {
	*integrations.Client
	repositories []string
}

// NewMetadataClient creates a client that queries repositories in order.
// An empty list selects [DefaultRepositories].
func NewMetadataClient(repositories []string) *MetadataClient {
	if len(repositories) == 0 {
		repositories = DefaultRepositories
	}
	repos := make([]string, len(repositories))
	for i, r := range repositories {
		repos[i] = strings.TrimRight(r, "/")
	}
	return &MetadataClient{
		Client:       integrations.NewClient(nil),
		repositories: repos,
	}
}

// Repositories returns the repository roots in lookup order.
func (c *MetadataClient) Repositories() []string {
	return append([]string(nil), c.repositories...)
}

// FetchLatest implements [deps.Fetcher].
//
// Returns:
//   - the latest version with MetadataURL set to the metadata that answered
//   - a PACKAGE_NOT_FOUND error wrapping [integrations.ErrNotFound] if no
//     repository has the library
//   - a NETWORK_ERROR error wrapping [integrations.ErrNetwork] if a
//     repository failed and none answered
//   - a coded INVALID_COORDINATE error for malformed IDs
func (c *MetadataClient) FetchLatest(ctx context.Context, groupID, artifactID string) (deps.Library, error) {
	if err := validate(groupID, artifactID); err != nil {
		return deps.Library{}, err
	}

	var lastErr error
	for _, repo := range c.repositories {
		url := MetadataURL(repo, groupID, artifactID)

		var meta metadata
		err := c.GetXML(ctx, url, &meta)
		if err == nil {
			if v := meta.latest(); v != "" {
				return deps.Library{
					GroupID:     groupID,
					ArtifactID:  artifactID,
					Version:     v,
					MetadataURL: url,
				}, nil
			}
			err = fmt.Errorf("%w: no versions in %s", integrations.ErrNotFound, url)
		}
		if ctx.Err() != nil {
			return deps.Library{}, ctx.Err()
		}
		if lastErr == nil || !errors.Is(err, integrations.ErrNotFound) {
			lastErr = err
		}
	}

	if lastErr == nil {
		lastErr = integrations.ErrNotFound
	}
	return deps.Library{}, coded(lastErr, groupID, artifactID)
}

// MetadataURL returns the maven-metadata.xml location of groupID:artifactID
// under repo.
func MetadataURL(repo, groupID, artifactID string) string {
	groupPath := strings.ReplaceAll(groupID, ".", "/")
	return fmt.Sprintf("%s/%s/%s/maven-metadata.xml", strings.TrimRight(repo, "/"), groupPath, artifactID)
}

func validate(groupID, artifactID string) error {
	if err := pkgerrors.ValidateCoordinatePart(groupID); err != nil {
		return err
	}
	return pkgerrors.ValidateCoordinatePart(artifactID)
}

// coded attaches the error code matching err's sentinel. Other errors, such
// as decode failures and context errors, are returned unchanged.
func coded(err error, groupID, artifactID string) error {
	switch {
	case errors.Is(err, integrations.ErrNotFound):
		return pkgerrors.Wrap(pkgerrors.ErrCodePackageNotFound, err, "maven artifact %s:%s not found", groupID, artifactID)
	case errors.Is(err, integrations.ErrNetwork):
		return pkgerrors.Wrap(pkgerrors.ErrCodeNetwork, err, "lookup of %s:%s failed", groupID, artifactID)
	}
	return err
}

type metadata struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Versioning struct {
		Latest   string   `xml:"latest"`
		Release  string   `xml:"release"`
		Versions []string `xml:"versions>version"`
	} `xml:"versioning"`
}

func (m *metadata) latest() string {
	v := &m.Versioning
	switch {
	case strings.TrimSpace(v.Release) != "":
		return strings.TrimSpace(v.Release)
	case strings.TrimSpace(v.Latest) != "":
		return strings.TrimSpace(v.Latest)
	}
	return versions.Highest(v.Versions)
}
