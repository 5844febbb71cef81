package modrinth

import (
	"context"

	errs "github.com/matzehuels/modrinth-go/pkg/errors"
	"github.com/matzehuels/modrinth-go/pkg/integrations"
)

// TeamMember is a user's membership in a project team.
// Permissions and PayoutsSplit are null unless the caller may see them.
type TeamMember struct {
	TeamID       string   `json:"team_id"`
	User         User     `json:"user"`
	Role         string   `json:"role"`
	Permissions  *int64   `json:"permissions"` // Bitfield
	Accepted     bool     `json:"accepted"`
	PayoutsSplit *float64 `json:"payouts_split"`
	Ordering     int      `json:"ordering"`
}

// ListProjectTeamMembers lists the members of a project's team.
func (c *Client) ListProjectTeamMembers(ctx context.Context, projectIDOrSlug string) ([]TeamMember, error) {
	if err := errs.ValidateID(projectIDOrSlug); err != nil {
		return nil, err
	}
	return integrations.Fetch[[]TeamMember](ctx, c.Client, integrations.Request{
		Endpoint: "team.project_members",
		Path:     []string{"project", projectIDOrSlug, "members"},
	})
}

// ListTeamMembers lists the members of a team by team id.
func (c *Client) ListTeamMembers(ctx context.Context, teamID string) ([]TeamMember, error) {
	if err := errs.ValidateID(teamID); err != nil {
		return nil, err
	}
	return integrations.Fetch[[]TeamMember](ctx, c.Client, integrations.Request{
		Endpoint: "team.members",
		Path:     []string{"team", teamID, "members"},
	})
}

// ListMultipleTeamsMembers lists the members of several teams in one request.
// Each inner slice holds the members of one team.
func (c *Client) ListMultipleTeamsMembers(ctx context.Context, teamIDs []string) ([][]TeamMember, error) {
	if err := errs.ValidateIDs(teamIDs); err != nil {
		return nil, err
	}
	return integrations.Fetch[[][]TeamMember](ctx, c.Client, integrations.Request{
		Endpoint: "team.get_multiple",
		Path:     []string{"teams"},
		Query:    []integrations.Param{integrations.JSONParam("ids", teamIDs)},
	})
}
