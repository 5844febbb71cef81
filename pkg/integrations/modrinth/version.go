package modrinth

import (
	"context"
	"time"

	errs "github.com/matzehuels/modrinth-go/pkg/errors"
	"github.com/matzehuels/modrinth-go/pkg/integrations"
)

// Version is a single release of a project.
type Version struct {
	ID              string         `json:"id"`
	ProjectID       string         `json:"project_id"`
	AuthorID        string         `json:"author_id"`
	Name            string         `json:"name"`
	VersionNumber   string         `json:"version_number"`
	Changelog       *string        `json:"changelog"`
	ChangelogURL    *string        `json:"changelog_url"` // Deprecated upstream, always null
	Dependencies    []Dependency   `json:"dependencies"`
	GameVersions    []string       `json:"game_versions"`
	VersionType     VersionType    `json:"version_type"`
	Loaders         []string       `json:"loaders"`
	Featured        bool           `json:"featured"`
	Status          VersionStatus  `json:"status,omitzero"`
	RequestedStatus *VersionStatus `json:"requested_status"`
	DatePublished   time.Time      `json:"date_published"`
	Downloads       int            `json:"downloads"`
	Files           []VersionFile  `json:"files"`
}

// Dependency is a version's relation to another version, project, or external file.
// At least one of VersionID, ProjectID and FileName is set.
type Dependency struct {
	VersionID      *string        `json:"version_id"`
	ProjectID      *string        `json:"project_id"`
	FileName       *string        `json:"file_name"`
	DependencyType DependencyType `json:"dependency_type"`
}

// VersionFile is a downloadable file attached to a version.
type VersionFile struct {
	Hashes   Hashes  `json:"hashes"`
	URL      string  `json:"url"`
	Filename string  `json:"filename"`
	Primary  bool    `json:"primary"`
	Size     int64   `json:"size"`
	FileType *string `json:"file_type"`
}

// Hashes holds the hex-encoded digests of a version file.
type Hashes struct {
	SHA512 string `json:"sha512"`
	SHA1   string `json:"sha1"`
}

// VersionFilter narrows [Client.ListVersionsFiltered].
// Nil fields are not sent; the remote then applies no filter for them.
type VersionFilter struct {
	Loaders      []string // e.g. ["fabric"]
	GameVersions []string // e.g. ["1.20.1"]
	Featured     *bool
}

// ListVersions lists every version of a project, newest first.
func (c *Client) ListVersions(ctx context.Context, projectIDOrSlug string) ([]Version, error) {
	return c.ListVersionsFiltered(ctx, projectIDOrSlug, VersionFilter{})
}

// ListVersionsFiltered lists the versions of a project that match filter.
func (c *Client) ListVersionsFiltered(ctx context.Context, projectIDOrSlug string, filter VersionFilter) ([]Version, error) {
	if err := errs.ValidateID(projectIDOrSlug); err != nil {
		return nil, err
	}
	return integrations.Fetch[[]Version](ctx, c.Client, integrations.Request{
		Endpoint: "version.list",
		Path:     []string{"project", projectIDOrSlug, "version"},
		Query: []integrations.Param{
			integrations.JSONParam("loaders", filter.Loaders),
			integrations.JSONParam("game_versions", filter.GameVersions),
			integrations.JSONParam("featured", filter.Featured),
		},
	})
}

// GetVersion fetches a version by id.
func (c *Client) GetVersion(ctx context.Context, versionID string) (*Version, error) {
	if err := errs.ValidateID(versionID); err != nil {
		return nil, err
	}
	return fetch[Version](ctx, c, integrations.Request{
		Endpoint: "version.get",
		Path:     []string{"version", versionID},
	})
}

// GetMultipleVersions fetches several versions by id in one request.
func (c *Client) GetMultipleVersions(ctx context.Context, versionIDs []string) ([]Version, error) {
	if err := errs.ValidateIDs(versionIDs); err != nil {
		return nil, err
	}
	return integrations.Fetch[[]Version](ctx, c.Client, integrations.Request{
		Endpoint: "version.get_multiple",
		Path:     []string{"versions"},
		Query:    []integrations.Param{integrations.JSONParam("ids", versionIDs)},
	})
}

// GetVersionFromHash finds the version that contains a file with the given hash.
func (c *Client) GetVersionFromHash(ctx context.Context, hash string, algorithm HashAlgorithm) (*Version, error) {
	if err := errs.ValidateHash(hash, string(algorithm)); err != nil {
		return nil, err
	}
	return fetch[Version](ctx, c, integrations.Request{
		Endpoint: "version_file.get",
		Path:     []string{"version_file", hash},
		Query:    []integrations.Param{integrations.StringParam("algorithm", string(algorithm))},
	})
}
