package integrations

import (
	"errors"
	"strings"
	"testing"

	errs "github.com/matzehuels/modrinth-go/pkg/errors"
)

type project struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func TestResolveSuccess(t *testing.T) {
	var p project
	if err := Resolve(200, []byte(`{"id":"AANobbMI","title":"Sodium"}`), &p); err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if p.ID != "AANobbMI" || p.Title != "Sodium" {
		t.Errorf("Resolve() decoded %+v", p)
	}
}

func TestResolveNoContent(t *testing.T) {
	// 204 carries no body; an empty body never decodes into a payload.
	var p project
	err := Resolve(204, nil, &p)
	if !errs.Is(err, errs.ErrCodeDecode) {
		t.Errorf("Resolve(204) error = %v, want DECODE", err)
	}
}

func TestResolveRequestError(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantReason string
		wantMsg    string
	}{
		{"described", 404, `{"error":"not_found","description":"project missing"}`, "not_found", "project missing"},
		{"no body", 401, "", "", "Unauthorized"},
		{"not json", 403, "forbidden", "", "Forbidden"},
		{"empty description", 400, `{"error":"invalid_input","description":""}`, "invalid_input", "Bad Request"},
		{"unknown status", 499, "", "", "unrecognized status 499"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p project
			err := Resolve(tt.status, []byte(tt.body), &p)

			var e *errs.Error
			if !errors.As(err, &e) {
				t.Fatalf("Resolve() error = %v, want *errors.Error", err)
			}
			if e.Code != errs.ErrCodeRequest {
				t.Errorf("Code = %s, want REQUEST", e.Code)
			}
			if e.Status != tt.status {
				t.Errorf("Status = %d, want %d", e.Status, tt.status)
			}
			if e.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", e.Reason, tt.wantReason)
			}
			if e.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", e.Message, tt.wantMsg)
			}
		})
	}
}

func TestResolveServerError(t *testing.T) {
	tests := []struct {
		status int
		body   string
	}{
		{500, "internal"},
		{503, `{"error":"down"}`},
		{302, ""},
		{100, ""},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var p project
			err := Resolve(tt.status, []byte(tt.body), &p)
			if !errs.Is(err, errs.ErrCodeServer) {
				t.Fatalf("Resolve(%d) error = %v, want SERVER", tt.status, err)
			}
			if errs.StatusCode(err) != tt.status {
				t.Errorf("StatusCode = %d", errs.StatusCode(err))
			}
			if string(errs.BodyOf(err)) != tt.body {
				t.Errorf("BodyOf = %q, want %q", errs.BodyOf(err), tt.body)
			}
		})
	}
}

func TestResolveDecodeErrorKeepsBody(t *testing.T) {
	body := `{"id":"AANobbMI"}`
	var p project
	err := Resolve(200, []byte(body), &p)
	if !errs.Is(err, errs.ErrCodeDecode) {
		t.Fatalf("Resolve() error = %v, want DECODE", err)
	}
	if string(errs.BodyOf(err)) != body {
		t.Errorf("BodyOf = %q, want %q", errs.BodyOf(err), body)
	}
	if !strings.Contains(err.Error(), `"title"`) {
		t.Errorf("error should name the missing field: %v", err)
	}
}
