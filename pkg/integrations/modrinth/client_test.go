package modrinth

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/modrinth-go/internal/mockapi"
	errs "github.com/matzehuels/modrinth-go/pkg/errors"
	"github.com/matzehuels/modrinth-go/pkg/integrations"
	"github.com/matzehuels/modrinth-go/pkg/observability"
)

const testUserAgent = "modrinth-go-test/1.0 (test@example.com)"

func testClient(t *testing.T, s *mockapi.Server) *Client {
	t.Helper()
	c, err := NewClient(Options{
		BaseURL:   s.BaseURL(),
		UserAgent: testUserAgent,
		Hooks:     observability.NoopHTTPHooks{},
	})
	if err != nil {
		t.Fatalf("NewClient() error: %v", err)
	}
	return c
}

// lastRequest returns the most recent request the server received.
func lastRequest(t *testing.T, s *mockapi.Server) mockapi.Recorded {
	t.Helper()
	r, ok := s.Last()
	if !ok {
		t.Fatal("server received no request")
	}
	return r
}

// wantCode fails the test unless err carries code.
func wantCode(t *testing.T, err error, code errs.Code) {
	t.Helper()
	if !errs.Is(err, code) {
		t.Fatalf("error = %v, want %s", err, code)
	}
}

func TestNewClientDefaults(t *testing.T) {
	c, err := NewClient(Options{})
	if err != nil {
		t.Fatalf("NewClient() error: %v", err)
	}
	if c.Client == nil {
		t.Fatal("expected client to be initialized")
	}
	if got := c.BaseURL(); got != DefaultBaseURL {
		t.Errorf("BaseURL() = %q, want %q", got, DefaultBaseURL)
	}
	if _, ok := c.RateLimit(); ok {
		t.Error("RateLimit() should be empty before the first response")
	}
}

func TestOptionsSetDefaults(t *testing.T) {
	var opts Options
	opts.SetDefaults()

	if opts.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q", opts.BaseURL)
	}
	if opts.UserAgent != DefaultUserAgent() {
		t.Errorf("UserAgent = %q", opts.UserAgent)
	}
	if opts.HTTPClient == nil || opts.Logger == nil || opts.RateLimits == nil {
		t.Error("SetDefaults() left a field unset")
	}
	if opts.Hooks != nil {
		t.Error("SetDefaults() should leave Hooks nil so the global hooks apply")
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"zero", Options{}, false},
		{"custom base", Options{BaseURL: "http://localhost:8080/v2/"}, false},
		{"relative base", Options{BaseURL: "api/v2"}, true},
		{"ftp base", Options{BaseURL: "ftp://modrinth.com"}, true},
		{"multi-line agent", Options{UserAgent: "a\r\nX-Evil: 1"}, true},
		{"token", Options{Token: "mrp_abc123"}, false},
		{"token with newline", Options{Token: "mrp_abc\n"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errs.Is(err, errs.ErrCodeInvalidInput) {
				t.Errorf("Validate() code = %s, want INVALID_INPUT", errs.GetCode(err))
			}
		})
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{UserAgent: "first"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	tracker := opts.RateLimits
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.RateLimits != tracker {
		t.Error("second call replaced defaults")
	}
}

func TestNewClientInvalidOptions(t *testing.T) {
	_, err := NewClient(Options{BaseURL: "not a url"})
	wantCode(t, err, errs.ErrCodeInvalidInput)
}

func TestUserAgent(t *testing.T) {
	tests := []struct {
		name, version, contact string
		want                   string
	}{
		{"launcher", "1.4.0", "ops@example.com", "launcher/1.4.0 (ops@example.com)"},
		{"launcher", "1.4.0", "", "launcher/1.4.0"},
		{"launcher", "", "ops@example.com", "launcher (ops@example.com)"},
		{"launcher", "", "", "launcher"},
	}
	for _, tt := range tests {
		if got := UserAgent(tt.name, tt.version, tt.contact); got != tt.want {
			t.Errorf("UserAgent(%q, %q, %q) = %q, want %q", tt.name, tt.version, tt.contact, got, tt.want)
		}
	}
}

func TestDefaultUserAgent(t *testing.T) {
	ua := DefaultUserAgent()
	if !strings.HasPrefix(ua, "matzehuels/modrinth-go/") {
		t.Errorf("DefaultUserAgent() = %q", ua)
	}
	if !strings.HasSuffix(ua, "(github.com/matzehuels/modrinth-go)") {
		t.Errorf("DefaultUserAgent() = %q, want contact suffix", ua)
	}
}

func TestClientHeaders(t *testing.T) {
	s := mockapi.New(t)
	s.Raw(http.MethodGet, "/user", http.StatusOK, mockapi.Fixture(t, "current_user.json"))

	c, err := NewClient(Options{
		BaseURL:   s.BaseURL(),
		UserAgent: testUserAgent,
		Token:     "mrp_secret",
		Hooks:     observability.NoopHTTPHooks{},
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.GetCurrentUser(context.Background()); err != nil {
		t.Fatalf("GetCurrentUser() error: %v", err)
	}

	req := lastRequest(t, s)
	if ua := req.Header.Get("User-Agent"); ua != testUserAgent {
		t.Errorf("User-Agent = %q, want %q", ua, testUserAgent)
	}
	if auth := req.Header.Get("Authorization"); auth != "mrp_secret" {
		t.Errorf("Authorization = %q, want token", auth)
	}
}

func TestClientNoTokenNoAuthorization(t *testing.T) {
	s := mockapi.New(t)
	s.Raw(http.MethodGet, "/tag/report_type", http.StatusOK, []byte(`["spam"]`))

	c := testClient(t, s)
	if _, err := c.ListReportTypes(context.Background()); err != nil {
		t.Fatal(err)
	}
	if auth := lastRequest(t, s).Header.Get("Authorization"); auth != "" {
		t.Errorf("Authorization = %q, want none", auth)
	}
}

func TestClientRateLimit(t *testing.T) {
	s := mockapi.New(t)
	s.SetRateLimit(300, 299, 60)
	s.Raw(http.MethodGet, "/tag/side_type", http.StatusOK, []byte(`["required","optional","unsupported","unknown"]`))

	c := testClient(t, s)
	if _, err := c.ListSideTypes(context.Background()); err != nil {
		t.Fatal(err)
	}

	rl, ok := c.RateLimit()
	if !ok {
		t.Fatal("RateLimit() reported no state")
	}
	if rl.Limit != 300 || rl.Remaining != 299 || rl.Reset != time.Minute {
		t.Errorf("RateLimit() = %+v", rl)
	}

	first, _ := c.RateLimit()
	second, _ := c.RateLimit()
	if first != second {
		t.Error("RateLimit() is not idempotent")
	}
}

func TestClientRateLimitSharedTracker(t *testing.T) {
	s := mockapi.New(t)
	s.SetRateLimit(300, 5, 9)
	s.Raw(http.MethodGet, "/tag/project_type", http.StatusOK, []byte(`["mod"]`))

	tracker := integrations.NewRateLimitTracker()
	a, _ := NewClient(Options{BaseURL: s.BaseURL(), RateLimits: tracker, Hooks: observability.NoopHTTPHooks{}})
	b, _ := NewClient(Options{BaseURL: s.BaseURL(), RateLimits: tracker, Hooks: observability.NoopHTTPHooks{}})

	if _, err := a.ListProjectTypes(context.Background()); err != nil {
		t.Fatal(err)
	}
	if rl, ok := b.RateLimit(); !ok || rl.Remaining != 5 {
		t.Errorf("shared tracker not updated: %+v, %v", rl, ok)
	}
}

func TestClientRateLimitConcurrentSuccessAndFailure(t *testing.T) {
	s := mockapi.New(t)
	project := mockapi.Fixture(t, "project.json")
	s.Handle(http.MethodGet, "/project/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Ratelimit-Limit", "300")
		w.Header().Set("X-Ratelimit-Remaining", "200")
		w.Header().Set("X-Ratelimit-Reset", "200")
		w.WriteHeader(http.StatusOK)
		w.Write(project)
	})
	s.Handle(http.MethodGet, "/version/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Ratelimit-Limit", "300")
		w.Header().Set("X-Ratelimit-Remaining", "500")
		w.Header().Set("X-Ratelimit-Reset", "500")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream failure"))
	})

	c := testClient(t, s)
	for range 20 {
		var g errgroup.Group
		g.Go(func() error {
			_, err := c.GetProject(context.Background(), "AANobbMI")
			return err
		})
		g.Go(func() error {
			_, err := c.GetVersion(context.Background(), "xuWxRZPd")
			if !errs.Is(err, errs.ErrCodeServer) {
				t.Errorf("GetVersion() error = %v, want SERVER", err)
			}
			return nil
		})
		if err := g.Wait(); err != nil {
			t.Fatalf("GetProject() error: %v", err)
		}

		rl, ok := c.RateLimit()
		if !ok {
			t.Fatal("RateLimit() reported no state")
		}
		switch {
		case rl.Remaining == 200 && rl.Reset == 200*time.Second:
		case rl.Remaining == 500 && rl.Reset == 500*time.Second:
		default:
			t.Fatalf("RateLimit() mixes two responses: %+v", rl)
		}
	}
}

func TestClientCancelledCall(t *testing.T) {
	s := mockapi.New(t)
	s.SetRateLimit(300, 1, 1)
	s.Raw(http.MethodGet, "/project/{id}", http.StatusOK, mockapi.Fixture(t, "project.json"))

	c := testClient(t, s)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p, err := c.GetProject(ctx, "sodium")
	wantCode(t, err, errs.ErrCodeTransport)
	if p != nil {
		t.Error("GetProject() returned data alongside an error")
	}
	if _, ok := c.RateLimit(); ok {
		t.Error("cancelled call updated the rate limit")
	}
}
