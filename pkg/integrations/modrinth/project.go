package modrinth

import (
	"context"
	"time"

	errs "github.com/matzehuels/modrinth-go/pkg/errors"
	"github.com/matzehuels/modrinth-go/pkg/integrations"
)

// maxRandomProjects is the largest count the random projects endpoint accepts.
const maxRandomProjects = 100

// Project is a mod, modpack, resource pack, shader, plugin or datapack.
//
// Nullable remote fields are pointers and encode back to null. Fields the
// remote omits on some responses carry omitzero, so an empty list it did send
// survives re-encoding. The zero value is never returned with a nil error.
type Project struct {
	ID                   string            `json:"id"`
	Slug                 string            `json:"slug"`
	Title                string            `json:"title"`
	Description          string            `json:"description"`
	Body                 string            `json:"body"`
	BodyURL              *string           `json:"body_url"` // Deprecated upstream, always null
	Categories           []string          `json:"categories"`
	AdditionalCategories []string          `json:"additional_categories"`
	ClientSide           SideType          `json:"client_side"`
	ServerSide           SideType          `json:"server_side"`
	Status               ProjectStatus     `json:"status"`
	RequestedStatus      *ProjectStatus    `json:"requested_status"`
	ProjectType          ProjectType       `json:"project_type"`
	IssuesURL            *string           `json:"issues_url"`
	SourceURL            *string           `json:"source_url"`
	WikiURL              *string           `json:"wiki_url"`
	DiscordURL           *string           `json:"discord_url"`
	DonationURLs         []DonationLink    `json:"donation_urls,omitzero"`
	Downloads            int               `json:"downloads"`
	Followers            int               `json:"followers"`
	IconURL              *string           `json:"icon_url"`
	Color                *int              `json:"color"`
	ThreadID             string            `json:"thread_id,omitzero"`
	MonetizationStatus   string            `json:"monetization_status,omitzero"`
	Team                 string            `json:"team"`
	ModeratorMessage     *ModeratorMessage `json:"moderator_message"`
	Published            time.Time         `json:"published"`
	Updated              time.Time         `json:"updated"`
	Approved             *time.Time        `json:"approved"`
	Queued               *time.Time        `json:"queued"`
	License              License           `json:"license"`
	Versions             []string          `json:"versions"`
	GameVersions         []string          `json:"game_versions"`
	Loaders              []string          `json:"loaders"`
	Gallery              []GalleryItem     `json:"gallery"`
}

// ProjectDependencies lists every project and version a project's versions depend on.
type ProjectDependencies struct {
	Projects []Project `json:"projects"`
	Versions []Version `json:"versions"`
}

type projectIDResponse struct {
	ID string `json:"id"`
}

// GetProject fetches a project by id or slug.
func (c *Client) GetProject(ctx context.Context, idOrSlug string) (*Project, error) {
	if err := errs.ValidateID(idOrSlug); err != nil {
		return nil, err
	}
	return fetch[Project](ctx, c, integrations.Request{
		Endpoint: "project.get",
		Path:     []string{"project", idOrSlug},
	})
}

// GetMultipleProjects fetches several projects by id or slug in one request.
// Unknown ids are silently left out of the result by the remote.
func (c *Client) GetMultipleProjects(ctx context.Context, idsOrSlugs []string) ([]Project, error) {
	if err := errs.ValidateIDs(idsOrSlugs); err != nil {
		return nil, err
	}
	return integrations.Fetch[[]Project](ctx, c.Client, integrations.Request{
		Endpoint: "project.get_multiple",
		Path:     []string{"projects"},
		Query:    []integrations.Param{integrations.JSONParam("ids", idsOrSlugs)},
	})
}

// GetRandomProjects returns up to count random projects (1-100).
func (c *Client) GetRandomProjects(ctx context.Context, count int) ([]Project, error) {
	if count < 1 || count > maxRandomProjects {
		return nil, errs.New(errs.ErrCodeInvalidInput, "count must be between 1 and %d, got %d", maxRandomProjects, count)
	}
	return integrations.Fetch[[]Project](ctx, c.Client, integrations.Request{
		Endpoint: "project.random",
		Path:     []string{"projects_random"},
		Query:    []integrations.Param{integrations.IntParam("count", count)},
	})
}

// CheckProject resolves an id or slug to the project's id.
// A project that does not exist yields a REQUEST error with status 404.
func (c *Client) CheckProject(ctx context.Context, idOrSlug string) (string, error) {
	if err := errs.ValidateID(idOrSlug); err != nil {
		return "", err
	}
	resp, err := integrations.Fetch[projectIDResponse](ctx, c.Client, integrations.Request{
		Endpoint: "project.check",
		Path:     []string{"project", idOrSlug, "check"},
	})
	if err != nil {
		return "", err
	}
	return resp.ID, nil
}

// GetProjectDependencies lists the projects and versions the project depends on.
func (c *Client) GetProjectDependencies(ctx context.Context, idOrSlug string) (*ProjectDependencies, error) {
	if err := errs.ValidateID(idOrSlug); err != nil {
		return nil, err
	}
	return fetch[ProjectDependencies](ctx, c, integrations.Request{
		Endpoint: "project.dependencies",
		Path:     []string{"project", idOrSlug, "dependencies"},
	})
}

// fetch is [integrations.Fetch] for endpoints that return a single record.
func fetch[T any](ctx context.Context, c *Client, r integrations.Request) (*T, error) {
	v, err := integrations.Fetch[T](ctx, c.Client, r)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
