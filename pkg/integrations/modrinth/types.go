package modrinth

import "time"

// Enumerated string types mirror the remote schema. Values the library does
// not know about decode unchanged, so newer server releases never fail a call.

// SideType describes whether a project is needed on the client or server side.
type SideType string

const (
	SideRequired    SideType = "required"
	SideOptional    SideType = "optional"
	SideUnsupported SideType = "unsupported"
	SideUnknown     SideType = "unknown"
)

// ProjectType is the kind of content a project distributes.
type ProjectType string

const (
	ProjectTypeMod          ProjectType = "mod"
	ProjectTypeModpack      ProjectType = "modpack"
	ProjectTypeResourcePack ProjectType = "resourcepack"
	ProjectTypeShader       ProjectType = "shader"
	ProjectTypePlugin       ProjectType = "plugin"
	ProjectTypeDatapack     ProjectType = "datapack"
)

// ProjectStatus is the moderation state of a project.
type ProjectStatus string

const (
	ProjectApproved   ProjectStatus = "approved"
	ProjectArchived   ProjectStatus = "archived"
	ProjectRejected   ProjectStatus = "rejected"
	ProjectDraft      ProjectStatus = "draft"
	ProjectUnlisted   ProjectStatus = "unlisted"
	ProjectProcessing ProjectStatus = "processing"
	ProjectWithheld   ProjectStatus = "withheld"
	ProjectScheduled  ProjectStatus = "scheduled"
	ProjectPrivate    ProjectStatus = "private"
	ProjectUnknown    ProjectStatus = "unknown"
)

// VersionType is the release channel of a version.
type VersionType string

const (
	VersionRelease VersionType = "release"
	VersionBeta    VersionType = "beta"
	VersionAlpha   VersionType = "alpha"
)

// VersionStatus is the visibility of a version.
type VersionStatus string

const (
	VersionListed    VersionStatus = "listed"
	VersionArchived  VersionStatus = "archived"
	VersionDraft     VersionStatus = "draft"
	VersionUnlisted  VersionStatus = "unlisted"
	VersionScheduled VersionStatus = "scheduled"
	VersionUnknown   VersionStatus = "unknown"
)

// DependencyType describes how a version relates to one of its dependencies.
type DependencyType string

const (
	DependencyRequired     DependencyType = "required"
	DependencyOptional     DependencyType = "optional"
	DependencyIncompatible DependencyType = "incompatible"
	DependencyEmbedded     DependencyType = "embedded"
)

// UserRole is a user's site-wide role.
type UserRole string

const (
	RoleDeveloper UserRole = "developer"
	RoleModerator UserRole = "moderator"
	RoleAdmin     UserRole = "admin"
)

// ReportItemType is the kind of item a report refers to.
type ReportItemType string

const (
	ReportProject ReportItemType = "project"
	ReportUser    ReportItemType = "user"
	ReportVersion ReportItemType = "version"
)

// HashAlgorithm selects the hash used to look up a version file.
type HashAlgorithm string

const (
	SHA1   HashAlgorithm = "sha1"
	SHA512 HashAlgorithm = "sha512"
)

// License is a project's license.
type License struct {
	ID   string  `json:"id"` // SPDX identifier, or a custom "LicenseRef-" value
	Name string  `json:"name"`
	URL  *string `json:"url"`
}

// DonationLink is a project's donation platform link.
type DonationLink struct {
	ID       string `json:"id"` // Platform short name (e.g. "patreon")
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// GalleryItem is an image in a project's gallery.
type GalleryItem struct {
	URL         string    `json:"url"`
	Featured    bool      `json:"featured"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Created     time.Time `json:"created"`
	Ordering    int       `json:"ordering"`
}

// ModeratorMessage is a note left by a moderator on a project.
type ModeratorMessage struct {
	Message string  `json:"message"`
	Body    *string `json:"body"`
}
