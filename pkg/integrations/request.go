package integrations

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Request describes a single API operation. It is built fresh for every call
// and never mutated after being handed to the client.
type Request struct {
	// Endpoint is a stable operation name used in logs and metrics (e.g. "project.get").
	Endpoint string

	// Method is the HTTP method. Empty means GET.
	Method string

	// Path holds the unescaped path segments relative to the base URL.
	Path []string

	// Query holds the query parameters in the order they are encoded.
	// Parameters with an empty value are omitted.
	Query []Param

	// Body is JSON-encoded as the request body when non-nil.
	Body any
}

// Param is a single query-string parameter.
type Param struct {
	Key   string
	Value string
}

// StringParam returns a parameter with a verbatim value. An empty value is omitted on encode.
func StringParam(key, value string) Param {
	return Param{Key: key, Value: value}
}

// IntParam returns a parameter for n, or an omitted parameter when n is zero.
func IntParam(key string, n int) Param {
	if n == 0 {
		return Param{Key: key}
	}
	return Param{Key: key, Value: strconv.Itoa(n)}
}

// JSONParam returns a parameter whose value is the JSON encoding of v.
// The remote API expects id lists, facets, and version filters in this form
// (e.g. ids=["AANobbMI","P7dR8mSH"]). A nil v, nil slice, or nil pointer is omitted.
//
// JSONParam panics if v cannot be marshaled; callers only pass string
// slices, nested string slices, and booleans.
func JSONParam(key string, v any) Param {
	if isNil(v) {
		return Param{Key: key}
	}
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("integrations: JSONParam(%q): %v", key, err))
	}
	return Param{Key: key, Value: string(data)}
}

// EncodeQuery encodes params in the supplied order, skipping empty values.
// Unlike [url.Values.Encode] it does not sort keys.
func EncodeQuery(params []Param) string {
	var b strings.Builder
	for _, p := range params {
		if p.Value == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// URL resolves the request path and query against base.
// Each path segment is escaped individually, so ids cannot introduce new segments.
func (r Request) URL(base *url.URL) *url.URL {
	segments := make([]string, len(r.Path))
	for i, s := range r.Path {
		segments[i] = url.PathEscape(s)
	}
	u := base.JoinPath(segments...)
	u.RawQuery = EncodeQuery(r.Query)
	return u
}

func (r Request) method() string {
	if r.Method == "" {
		return http.MethodGet
	}
	return r.Method
}

// build creates the outgoing HTTP request. It performs no I/O.
func (c *Client) build(ctx context.Context, r Request) (*http.Request, error) {
	var body io.Reader
	if r.Body != nil {
		data, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("encode %s request body: %w", r.Endpoint, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, r.method(), r.URL(c.base).String(), body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch x := v.(type) {
	case []string:
		return x == nil
	case [][]string:
		return x == nil
	case *bool:
		return x == nil
	}
	return false
}
