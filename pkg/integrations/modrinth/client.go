package modrinth

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/modrinth-go/pkg/buildinfo"
	errs "github.com/matzehuels/modrinth-go/pkg/errors"
	"github.com/matzehuels/modrinth-go/pkg/integrations"
	"github.com/matzehuels/modrinth-go/pkg/observability"
)

// DefaultBaseURL is the production Modrinth v2 API root.
const DefaultBaseURL = "https://api.modrinth.com/v2/"

// =============================================================================
// Options - Client Configuration
// =============================================================================

// Options configures a [Client]. The zero value is valid and talks to the
// production API anonymously with the library's own User-Agent.
type Options struct {
	// UserAgent identifies the application to Modrinth. Modrinth asks every
	// client to send a uniquely identifying value; build one with [UserAgent].
	UserAgent string

	// BaseURL overrides the API root, e.g. to point at a staging or mock server.
	BaseURL string

	// Token is a personal access token sent as the Authorization header.
	// Required by GetCurrentUser, GetNotifications, ListFollowedProjects and SubmitReport.
	Token string

	// HTTPClient sends requests. Defaults to an *http.Client with a 10s timeout.
	HTTPClient integrations.Doer

	// Logger receives debug logs for every request. Defaults to a discard logger.
	Logger *log.Logger

	// Hooks receives request events. Nil uses the process-wide observability.HTTP() hooks.
	Hooks observability.HTTPHooks

	// RateLimits records the rate-limit headers of every response.
	// Defaults to a tracker owned by the client.
	RateLimits *integrations.RateLimitTracker

	// validated tracks whether ValidateAndSetDefaults has succeeded.
	validated bool
}

// SetDefaults fills in every unset field.
func (o *Options) SetDefaults() {
	if o.UserAgent == "" {
		o.UserAgent = DefaultUserAgent()
	}
	if o.BaseURL == "" {
		o.BaseURL = DefaultBaseURL
	}
	if o.HTTPClient == nil {
		o.HTTPClient = integrations.NewHTTPClient()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if o.RateLimits == nil {
		o.RateLimits = integrations.NewRateLimitTracker()
	}
}

// Validate checks the options without modifying them.
func (o *Options) Validate() error {
	if o.BaseURL != "" {
		if err := errs.ValidateURL(o.BaseURL); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidInput, err, "invalid base URL")
		}
	}
	if strings.ContainsAny(o.UserAgent, "\r\n") {
		return errs.New(errs.ErrCodeInvalidInput, "user agent must be a single line")
	}
	if strings.ContainsAny(o.Token, "\r\n ") {
		return errs.New(errs.ErrCodeInvalidInput, "token must not contain whitespace")
	}
	return nil
}

// ValidateAndSetDefaults validates the options and applies defaults.
// Calling it more than once has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.Validate(); err != nil {
		return err
	}
	o.SetDefaults()
	o.validated = true
	return nil
}

// UserAgent builds a User-Agent value in the form Modrinth recommends:
// "name/version (contact)". Empty version and contact parts are left out.
func UserAgent(name, version, contact string) string {
	ua := name
	if version != "" {
		ua += "/" + version
	}
	if contact != "" {
		ua += " (" + contact + ")"
	}
	return ua
}

// DefaultUserAgent returns the User-Agent sent when none is configured.
func DefaultUserAgent() string {
	return UserAgent("matzehuels/modrinth-go", buildinfo.ModuleVersion(), buildinfo.ModulePath)
}

// =============================================================================
// Client
// =============================================================================

// Client provides access to the Modrinth v2 API.
//
// Each method performs exactly one request and returns either a decoded
// payload or an error from [errors]; never both. Arguments are validated
// locally before any I/O and rejected with an INVALID_INPUT error.
//
// All methods are safe for concurrent use by multiple goroutines.
//
// [errors]: github.com/matzehuels/modrinth-go/pkg/errors
type Client struct {
	*integrations.Client
}

// NewClient creates a Modrinth client.
func NewClient(opts Options) (*Client, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	var headers map[string]string
	if opts.Token != "" {
		headers = map[string]string{"Authorization": opts.Token}
	}

	c, err := integrations.NewClient(integrations.Config{
		BaseURL:    opts.BaseURL,
		UserAgent:  opts.UserAgent,
		Headers:    headers,
		HTTP:       opts.HTTPClient,
		Logger:     opts.Logger,
		Hooks:      opts.Hooks,
		RateLimits: opts.RateLimits,
	})
	if err != nil {
		return nil, fmt.Errorf("modrinth: %w", err)
	}
	return &Client{Client: c}, nil
}

// RateLimit returns the rate-limit state reported by the most recent response,
// or false if no response carrying rate-limit headers has been received.
func (c *Client) RateLimit() (integrations.RateLimit, bool) {
	return c.RateLimits().Current()
}
