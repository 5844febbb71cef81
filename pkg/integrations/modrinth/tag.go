package modrinth

import (
	"context"
	"time"

	"github.com/matzehuels/modrinth-go/pkg/integrations"
)

// Category is a project category.
type Category struct {
	Icon        string      `json:"icon"` // SVG markup
	Name        string      `json:"name"`
	ProjectType ProjectType `json:"project_type"`
	Header      string      `json:"header"`
}

// Loader is a mod loader or platform.
type Loader struct {
	Icon                  string        `json:"icon"` // SVG markup
	Name                  string        `json:"name"`
	SupportedProjectTypes []ProjectType `json:"supported_project_types"`
}

// GameVersion is a release of the game.
type GameVersion struct {
	Version     string    `json:"version"`
	VersionType string    `json:"version_type"` // release, snapshot, alpha or beta
	Date        time.Time `json:"date"`
	Major       bool      `json:"major"`
}

// LicenseTag is a license Modrinth offers when creating a project.
type LicenseTag struct {
	Short string `json:"short"`
	Name  string `json:"name"`
}

// DonationPlatform is a supported donation platform.
type DonationPlatform struct {
	Short string `json:"short"`
	Name  string `json:"name"`
}

// ListCategories lists every project category.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	return listTag[Category](ctx, c, "category")
}

// ListLoaders lists every loader.
func (c *Client) ListLoaders(ctx context.Context) ([]Loader, error) {
	return listTag[Loader](ctx, c, "loader")
}

// ListGameVersions lists every game version, newest first.
func (c *Client) ListGameVersions(ctx context.Context) ([]GameVersion, error) {
	return listTag[GameVersion](ctx, c, "game_version")
}

// ListLicenses lists the licenses offered for new projects.
func (c *Client) ListLicenses(ctx context.Context) ([]LicenseTag, error) {
	return listTag[LicenseTag](ctx, c, "license")
}

// ListDonationPlatforms lists the supported donation platforms.
func (c *Client) ListDonationPlatforms(ctx context.Context) ([]DonationPlatform, error) {
	return listTag[DonationPlatform](ctx, c, "donation_platform")
}

// ListReportTypes lists the values accepted as ReportSubmission.ReportType.
func (c *Client) ListReportTypes(ctx context.Context) ([]string, error) {
	return listTag[string](ctx, c, "report_type")
}

// ListProjectTypes lists every project type.
func (c *Client) ListProjectTypes(ctx context.Context) ([]ProjectType, error) {
	return listTag[ProjectType](ctx, c, "project_type")
}

// ListSideTypes lists every side type.
func (c *Client) ListSideTypes(ctx context.Context) ([]SideType, error) {
	return listTag[SideType](ctx, c, "side_type")
}

func listTag[T any](ctx context.Context, c *Client, tag string) ([]T, error) {
	return integrations.Fetch[[]T](ctx, c.Client, integrations.Request{
		Endpoint: "tag." + tag,
		Path:     []string{"tag", tag},
	})
}
