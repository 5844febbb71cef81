package modrinth

import (
	"context"
	"strconv"
	"time"

	errs "github.com/matzehuels/modrinth-go/pkg/errors"
	"github.com/matzehuels/modrinth-go/pkg/integrations"
)

// maxSearchLimit is the largest page size the search endpoint accepts.
const maxSearchLimit = 100

// Facet is a single search filter term in "type:value" form.
type Facet string

// FacetCategory matches projects in a category or using a loader (e.g. "forge").
func FacetCategory(name string) Facet { return Facet("categories:" + name) }

// FacetVersion matches projects supporting a game version.
func FacetVersion(gameVersion string) Facet { return Facet("versions:" + gameVersion) }

// FacetProjectType matches projects of a type.
func FacetProjectType(t ProjectType) Facet { return Facet("project_type:" + string(t)) }

// FacetLicense matches projects under a license id.
func FacetLicense(id string) Facet { return Facet("license:" + id) }

// FacetProjectID matches a single project by id.
func FacetProjectID(id string) Facet { return Facet("project_id:" + id) }

// FacetOpenSource matches projects by whether they are open source.
func FacetOpenSource(open bool) Facet { return Facet("open_source:" + strconv.FormatBool(open)) }

// FacetClientSide matches projects by client-side support.
func FacetClientSide(s SideType) Facet { return Facet("client_side:" + string(s)) }

// FacetServerSide matches projects by server-side support.
func FacetServerSide(s SideType) Facet { return Facet("server_side:" + string(s)) }

// Index is the sort order of search results.
type Index string

const (
	IndexRelevance Index = "relevance"
	IndexDownloads Index = "downloads"
	IndexFollows   Index = "follows"
	IndexNewest    Index = "newest"
	IndexUpdated   Index = "updated"
)

// SearchOptions narrows and pages a search. The zero value applies no filters
// and uses the remote defaults (relevance order, 10 hits).
type SearchOptions struct {
	// Facets filter the results. Terms in an inner slice are ORed; the inner
	// slices are ANDed together.
	Facets [][]Facet
	Index  Index
	Offset int
	Limit  int // 1-100; 0 uses the remote default
}

// SearchResults is one page of search hits.
type SearchResults struct {
	Hits      []SearchHit `json:"hits"`
	Offset    int         `json:"offset"`
	Limit     int         `json:"limit"`
	TotalHits int         `json:"total_hits"`
}

// SearchHit is the summary of a project returned by search.
type SearchHit struct {
	ProjectID          string      `json:"project_id"`
	Slug               string      `json:"slug"`
	Title              string      `json:"title"`
	Description        string      `json:"description"`
	Author             string      `json:"author"`
	Categories         []string    `json:"categories"`
	DisplayCategories  []string    `json:"display_categories,omitzero"`
	ClientSide         SideType    `json:"client_side"`
	ServerSide         SideType    `json:"server_side"`
	ProjectType        ProjectType `json:"project_type"`
	Downloads          int         `json:"downloads"`
	Follows            int         `json:"follows"`
	IconURL            *string     `json:"icon_url"`
	Color              *int        `json:"color"`
	ThreadID           string      `json:"thread_id,omitzero"`
	MonetizationStatus string      `json:"monetization_status,omitzero"`
	Versions           []string    `json:"versions"`
	LatestVersion      string      `json:"latest_version,omitzero"`
	License            string      `json:"license"`
	Gallery            []string    `json:"gallery,omitzero"`
	FeaturedGallery    *string     `json:"featured_gallery"`
	DateCreated        time.Time   `json:"date_created"`
	DateModified       time.Time   `json:"date_modified"`
}

// Search runs a full-text project search. An empty query matches every project.
func (c *Client) Search(ctx context.Context, query string, opts SearchOptions) (*SearchResults, error) {
	if opts.Offset < 0 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "offset must not be negative, got %d", opts.Offset)
	}
	if opts.Limit < 0 || opts.Limit > maxSearchLimit {
		return nil, errs.New(errs.ErrCodeInvalidInput, "limit must be between 0 and %d, got %d", maxSearchLimit, opts.Limit)
	}
	for _, group := range opts.Facets {
		if len(group) == 0 {
			return nil, errs.New(errs.ErrCodeInvalidInput, "facet groups must not be empty")
		}
	}

	return fetch[SearchResults](ctx, c, integrations.Request{
		Endpoint: "search",
		Path:     []string{"search"},
		Query: []integrations.Param{
			integrations.StringParam("query", query),
			integrations.JSONParam("facets", facetStrings(opts.Facets)),
			integrations.StringParam("index", string(opts.Index)),
			integrations.IntParam("offset", opts.Offset),
			integrations.IntParam("limit", opts.Limit),
		},
	})
}

// facetStrings converts facets to the nested string form the query encodes.
// It returns nil when there are no facets so the parameter is left out.
func facetStrings(facets [][]Facet) [][]string {
	if len(facets) == 0 {
		return nil
	}
	out := make([][]string, len(facets))
	for i, group := range facets {
		out[i] = make([]string, len(group))
		for j, f := range group {
			out[i][j] = string(f)
		}
	}
	return out
}
