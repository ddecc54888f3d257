package maven

import (
	"context"
	"fmt"

	"github.com/matzehuels/depcheck/pkg/deps"
	"github.com/matzehuels/depcheck/pkg/integrations"
)

// SearchURL is the Maven Central search endpoint.
const SearchURL = "https://search.maven.org/solrsearch/select"

// SearchClient resolves latest versions through the Maven Central search API.
//
// All methods are safe for concurrent use by multiple goroutines.
type SearchClient struct {
	*integrations.Client
	baseURL string
	repoURL string
}

// NewSearchClient creates a Maven Central search client.
func NewSearchClient() *SearchClient {
	return &SearchClient{
		Client:  integrations.NewClient(nil),
		baseURL: SearchURL,
		repoURL: CentralURL,
	}
}

// FetchLatest implements [deps.Fetcher]. The returned MetadataURL points at
// the library's maven-metadata.xml on Maven Central.
//
// Returns:
//   - a PACKAGE_NOT_FOUND error wrapping [integrations.ErrNotFound] if the
//     search has no match
//   - a NETWORK_ERROR error wrapping [integrations.ErrNetwork] for HTTP failures
func (c *SearchClient) FetchLatest(ctx context.Context, groupID, artifactID string) (deps.Library, error) {
	if err := validate(groupID, artifactID); err != nil {
		return deps.Library{}, err
	}

	query := fmt.Sprintf("g:%q AND a:%q", groupID, artifactID)
	url := fmt.Sprintf("%s?q=%s&rows=1&wt=json", c.baseURL, integrations.URLEncode(query))

	var resp searchResponse
	if err := c.Get(ctx, url, &resp); err != nil {
		return deps.Library{}, coded(err, groupID, artifactID)
	}
	if resp.Response.NumFound == 0 || len(resp.Response.Docs) == 0 {
		return deps.Library{}, coded(integrations.ErrNotFound, groupID, artifactID)
	}

	doc := resp.Response.Docs[0]
	version := doc.LatestVersion
	if version == "" {
		version = doc.Version
	}
	if version == "" {
		return deps.Library{}, coded(fmt.Errorf("%w: no version in search result", integrations.ErrNotFound), groupID, artifactID)
	}

	return deps.Library{
		GroupID:     groupID,
		ArtifactID:  artifactID,
		Version:     version,
		MetadataURL: MetadataURL(c.repoURL, groupID, artifactID),
	}, nil
}

type searchResponse struct {
	Response struct {
		NumFound int         `json:"numFound"`
		Docs     []searchDoc `json:"docs"`
	} `json:"response"`
}

type searchDoc struct {
	GroupID       string `json:"g"`
	ArtifactID    string `json:"a"`
	Version       string `json:"v"`
	LatestVersion string `json:"latestVersion"`
}
