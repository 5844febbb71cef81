package modrinth

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/matzehuels/modrinth-go/internal/mockapi"
	errs "github.com/matzehuels/modrinth-go/pkg/errors"
)

func TestClient_GetUser(t *testing.T) {
	s := mockapi.New(t)
	s.Raw(http.MethodGet, "/user/{id}", http.StatusOK, mockapi.Fixture(t, "user.json"))

	c := testClient(t, s)
	u, err := c.GetUser(context.Background(), "jellysquid3")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if u.ID != "TEZXhE2U" || u.Role != RoleDeveloper {
		t.Errorf("unexpected user %+v", u)
	}
	if u.Name != nil || u.Email != nil || u.EmailVerified != nil || u.AuthProviders != nil {
		t.Errorf("expected private fields to be empty, got %+v", u)
	}
	if path := lastRequest(t, s).Path; path != "/v2/user/jellysquid3" {
		t.Errorf("path = %q", path)
	}
}

func TestClient_GetCurrentUser(t *testing.T) {
	s := mockapi.New(t)
	s.Raw(http.MethodGet, "/user", http.StatusOK, mockapi.Fixture(t, "current_user.json"))

	c := testClient(t, s)
	u, err := c.GetCurrentUser(context.Background())
	if err != nil {
		t.Fatalf("GetCurrentUser failed: %v", err)
	}
	if u.Email == nil || *u.Email != "user@example.com" {
		t.Errorf("unexpected email %v", u.Email)
	}
	if u.HasTOTP == nil || *u.HasTOTP {
		t.Errorf("unexpected has_totp %v", u.HasTOTP)
	}
	if u.AuthProviders == nil || len(*u.AuthProviders) != 1 || (*u.AuthProviders)[0] != "github" {
		t.Errorf("unexpected auth providers %v", u.AuthProviders)
	}
}

func TestClient_GetCurrentUser_Unauthorized(t *testing.T) {
	s := mockapi.New(t)
	s.Handle(http.MethodGet, "/user", func(w http.ResponseWriter, r *http.Request) {
		mockapi.WriteError(w, http.StatusUnauthorized, "unauthorized", "Authentication Error: Invalid Authentication Credentials")
	})

	c := testClient(t, s)
	u, err := c.GetCurrentUser(context.Background())
	wantCode(t, err, errs.ErrCodeRequest)
	if u != nil {
		t.Error("expected nil user on error")
	}
	if errs.StatusCode(err) != http.StatusUnauthorized {
		t.Errorf("status = %d", errs.StatusCode(err))
	}
	if msg := errs.UserMessage(err); msg != "Authentication Error: Invalid Authentication Credentials" {
		t.Errorf("UserMessage() = %q", msg)
	}
}

func TestClient_GetMultipleUsers(t *testing.T) {
	s := mockapi.New(t)
	user := mockapi.Fixture(t, "user.json")
	s.Raw(http.MethodGet, "/users", http.StatusOK, append(append([]byte("["), user...), ']'))

	c := testClient(t, s)
	users, err := c.GetMultipleUsers(context.Background(), []string{"jellysquid3"})
	if err != nil {
		t.Fatalf("GetMultipleUsers failed: %v", err)
	}
	if len(users) != 1 || users[0].Username != "jellysquid3" {
		t.Errorf("unexpected users %+v", users)
	}
	if q := lastRequest(t, s).RawQuery; q != "ids=%5B%22jellysquid3%22%5D" {
		t.Errorf("query = %q", q)
	}

	_, err = c.GetMultipleUsers(context.Background(), nil)
	wantCode(t, err, errs.ErrCodeInvalidInput)
}

func TestClient_UserProjectLists(t *testing.T) {
	project := mockapi.Fixture(t, "project.json")
	list := append(append([]byte("["), project...), ']')

	tests := []struct {
		name    string
		pattern string
		call    func(*Client) ([]Project, error)
		want    string
	}{
		{
			name:    "projects",
			pattern: "/user/{id}/projects",
			call: func(c *Client) ([]Project, error) {
				return c.ListUserProjects(context.Background(), "jellysquid3")
			},
			want: "/v2/user/jellysquid3/projects",
		},
		{
			name:    "follows",
			pattern: "/user/{id}/follows",
			call: func(c *Client) ([]Project, error) {
				return c.ListFollowedProjects(context.Background(), "Dc7EYhxG")
			},
			want: "/v2/user/Dc7EYhxG/follows",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mockapi.New(t)
			s.Raw(http.MethodGet, tt.pattern, http.StatusOK, list)

			projects, err := tt.call(testClient(t, s))
			if err != nil {
				t.Fatalf("call failed: %v", err)
			}
			if len(projects) != 1 || projects[0].ID != "AANobbMI" {
				t.Errorf("unexpected projects %+v", projects)
			}
			if path := lastRequest(t, s).Path; path != tt.want {
				t.Errorf("path = %q, want %q", path, tt.want)
			}
		})
	}
}

func TestClient_GetNotifications(t *testing.T) {
	s := mockapi.New(t)
	s.Raw(http.MethodGet, "/user/{id}/notifications", http.StatusOK, mockapi.Fixture(t, "notifications.json"))

	c := testClient(t, s)
	notes, err := c.GetNotifications(context.Background(), "Dc7EYhxG")
	if err != nil {
		t.Fatalf("GetNotifications failed: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notes))
	}
	n := notes[0]
	if n.Type == nil || *n.Type != "team_invite" || n.Read {
		t.Errorf("unexpected notification %+v", n)
	}
	if len(n.Actions) != 2 || n.Actions[0].ActionRoute[0] != http.MethodPost {
		t.Errorf("unexpected actions %+v", n.Actions)
	}
}

func TestClient_SubmitReport(t *testing.T) {
	s := mockapi.New(t)
	s.Raw(http.MethodPost, "/report", http.StatusOK, mockapi.Fixture(t, "report.json"))

	c := testClient(t, s)
	submission := ReportSubmission{
		ReportType: "spam",
		ItemID:     "AANobbMI",
		ItemType:   ReportProject,
		Body:       "This project duplicates another listing.",
	}
	report, err := c.SubmitReport(context.Background(), submission)
	if err != nil {
		t.Fatalf("SubmitReport failed: %v", err)
	}
	if report.ID != "VPhSDevJ" || report.Closed {
		t.Errorf("unexpected report %+v", report)
	}

	req := lastRequest(t, s)
	if req.Method != http.MethodPost || req.Path != "/v2/report" {
		t.Errorf("request = %s %s", req.Method, req.Path)
	}
	if ct := req.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var sent map[string]string
	if err := json.Unmarshal(req.Body, &sent); err != nil {
		t.Fatalf("request body is not JSON: %v", err)
	}
	want := map[string]string{
		"report_type": "spam",
		"item_id":     "AANobbMI",
		"item_type":   "project",
		"body":        "This project duplicates another listing.",
	}
	for k, v := range want {
		if sent[k] != v {
			t.Errorf("body[%q] = %q, want %q", k, sent[k], v)
		}
	}
}

func TestClient_SubmitReport_Invalid(t *testing.T) {
	s := mockapi.New(t)
	c := testClient(t, s)

	valid := ReportSubmission{ReportType: "spam", ItemID: "AANobbMI", ItemType: ReportProject, Body: "dup"}
	tests := []struct {
		name   string
		mutate func(*ReportSubmission)
	}{
		{"missing item id", func(r *ReportSubmission) { r.ItemID = "" }},
		{"blank report type", func(r *ReportSubmission) { r.ReportType = "  " }},
		{"missing item type", func(r *ReportSubmission) { r.ItemType = "" }},
		{"blank body", func(r *ReportSubmission) { r.Body = "\n" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			_, err := c.SubmitReport(context.Background(), r)
			wantCode(t, err, errs.ErrCodeInvalidInput)
		})
	}
	if n := len(s.Requests()); n != 0 {
		t.Errorf("invalid reports sent %d requests", n)
	}
}
