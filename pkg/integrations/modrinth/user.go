package modrinth

import (
	"context"
	"net/http"
	"strings"
	"time"

	errs "github.com/matzehuels/modrinth-go/pkg/errors"
	"github.com/matzehuels/modrinth-go/pkg/integrations"
)

// User is a Modrinth account. Email and the auth fields are only populated
// when the caller is authenticated as that user; other responses send them
// as null.
type User struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Name          *string   `json:"name"`
	Email         *string   `json:"email"`
	Bio           *string   `json:"bio"`
	AvatarURL     string    `json:"avatar_url"`
	Created       time.Time `json:"created"`
	Role          UserRole  `json:"role"`
	Badges        int       `json:"badges"` // Bitfield
	AuthProviders *[]string `json:"auth_providers"`
	EmailVerified *bool     `json:"email_verified"`
	HasPassword   *bool     `json:"has_password"`
	HasTOTP       *bool     `json:"has_totp"`
}

// Notification is a message delivered to a user.
type Notification struct {
	ID      string               `json:"id"`
	UserID  string               `json:"user_id"`
	Type    *string              `json:"type"`
	Title   string               `json:"title"`
	Text    string               `json:"text"`
	Link    string               `json:"link"`
	Read    bool                 `json:"read"`
	Created time.Time            `json:"created"`
	Actions []NotificationAction `json:"actions"`
}

// NotificationAction is an action a user can take on a notification.
type NotificationAction struct {
	Title string `json:"title"`
	// ActionRoute is the HTTP method and path to call, e.g. ["POST", "team/{id}/join"].
	ActionRoute []string `json:"action_route"`
}

// ReportSubmission is the body of [Client.SubmitReport].
type ReportSubmission struct {
	ReportType string         `json:"report_type"` // One of the values from ListReportTypes
	ItemID     string         `json:"item_id"`
	ItemType   ReportItemType `json:"item_type"`
	Body       string         `json:"body"` // Markdown
}

// Report is a submitted moderation report.
type Report struct {
	ID         string         `json:"id"`
	ReportType string         `json:"report_type"`
	ItemID     string         `json:"item_id"`
	ItemType   ReportItemType `json:"item_type"`
	Body       string         `json:"body"`
	Reporter   string         `json:"reporter"`
	Created    time.Time      `json:"created"`
	Closed     bool           `json:"closed"`
	ThreadID   string         `json:"thread_id,omitzero"`
}

// GetUser fetches a user by id or username.
func (c *Client) GetUser(ctx context.Context, idOrUsername string) (*User, error) {
	if err := errs.ValidateID(idOrUsername); err != nil {
		return nil, err
	}
	return fetch[User](ctx, c, integrations.Request{
		Endpoint: "user.get",
		Path:     []string{"user", idOrUsername},
	})
}

// GetCurrentUser fetches the user the configured token belongs to.
// Requires a token.
func (c *Client) GetCurrentUser(ctx context.Context) (*User, error) {
	return fetch[User](ctx, c, integrations.Request{
		Endpoint: "user.current",
		Path:     []string{"user"},
	})
}

// GetMultipleUsers fetches several users by id or username in one request.
func (c *Client) GetMultipleUsers(ctx context.Context, idsOrUsernames []string) ([]User, error) {
	if err := errs.ValidateIDs(idsOrUsernames); err != nil {
		return nil, err
	}
	return integrations.Fetch[[]User](ctx, c.Client, integrations.Request{
		Endpoint: "user.get_multiple",
		Path:     []string{"users"},
		Query:    []integrations.Param{integrations.JSONParam("ids", idsOrUsernames)},
	})
}

// ListUserProjects lists the projects a user is a member of.
func (c *Client) ListUserProjects(ctx context.Context, idOrUsername string) ([]Project, error) {
	if err := errs.ValidateID(idOrUsername); err != nil {
		return nil, err
	}
	return integrations.Fetch[[]Project](ctx, c.Client, integrations.Request{
		Endpoint: "user.projects",
		Path:     []string{"user", idOrUsername, "projects"},
	})
}

// GetNotifications lists a user's notifications. Requires a token for that user.
func (c *Client) GetNotifications(ctx context.Context, idOrUsername string) ([]Notification, error) {
	if err := errs.ValidateID(idOrUsername); err != nil {
		return nil, err
	}
	return integrations.Fetch[[]Notification](ctx, c.Client, integrations.Request{
		Endpoint: "user.notifications",
		Path:     []string{"user", idOrUsername, "notifications"},
	})
}

// ListFollowedProjects lists the projects a user follows. Requires a token for that user.
func (c *Client) ListFollowedProjects(ctx context.Context, idOrUsername string) ([]Project, error) {
	if err := errs.ValidateID(idOrUsername); err != nil {
		return nil, err
	}
	return integrations.Fetch[[]Project](ctx, c.Client, integrations.Request{
		Endpoint: "user.follows",
		Path:     []string{"user", idOrUsername, "follows"},
	})
}

// SubmitReport files a moderation report and returns it as stored. Requires a token.
func (c *Client) SubmitReport(ctx context.Context, report ReportSubmission) (*Report, error) {
	if err := errs.ValidateID(report.ItemID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(report.ReportType) == "" {
		return nil, errs.New(errs.ErrCodeInvalidInput, "report type is required")
	}
	if report.ItemType == "" {
		return nil, errs.New(errs.ErrCodeInvalidInput, "report item type is required")
	}
	if strings.TrimSpace(report.Body) == "" {
		return nil, errs.New(errs.ErrCodeInvalidInput, "report body is required")
	}
	return fetch[Report](ctx, c, integrations.Request{
		Endpoint: "report.submit",
		Method:   http.MethodPost,
		Path:     []string{"report"},
		Body:     report,
	})
}
