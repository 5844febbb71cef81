// Package observability lets callers watch API traffic without this module
// depending on a particular metrics or tracing backend.
//
// A client reports four events per call through [HTTPHooks]: the request
// leaving, the response arriving, the call failing, and the rate limit the
// response advertised. Hooks are either passed to a client directly or
// installed process-wide with [SetHTTPHooks]; clients without their own hooks
// consult [HTTP] on every call.
//
// [PrometheusHooks] is the bundled implementation. [Multi] fans events out to
// several implementations, e.g. metrics plus an application tracer:
//
//	prom, err := observability.NewPrometheusHooks(prometheus.DefaultRegisterer)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	observability.SetHTTPHooks(observability.Multi(prom, tracer))
package observability

import (
	"context"
	"reflect"
	"sync"
	"time"
)

// HTTPHooks receives events from API calls.
//
// endpoint is a stable operation name (e.g. "project.get"), never a raw URL,
// so implementations can use it as a low-cardinality label.
// Implementations must be safe for concurrent use.
type HTTPHooks interface {
	// OnRequest is called once the request has been built, before it is sent.
	OnRequest(ctx context.Context, method, endpoint string)

	// OnResponse is called for every received response, whatever its status.
	OnResponse(ctx context.Context, method, endpoint string, statusCode int, duration time.Duration)

	// OnError is called when a call ends in an error of any kind.
	OnError(ctx context.Context, method, endpoint string, err error)

	// OnRateLimit is called when a response carried a complete set of rate-limit headers.
	OnRateLimit(ctx context.Context, limit, remaining int, reset time.Duration)
}

// NoopHTTPHooks ignores every event.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, error)                 {}
func (NoopHTTPHooks) OnRateLimit(context.Context, int, int, time.Duration)           {}

// Multi returns hooks that forward every event to each of hooks in order.
// Nil entries are skipped, including nil pointers stored in the interface
// such as a (*PrometheusHooks)(nil).
func Multi(hooks ...HTTPHooks) HTTPHooks {
	var m multiHooks
	for _, h := range hooks {
		if !isNil(h) {
			m = append(m, h)
		}
	}
	return m
}

func isNil(h HTTPHooks) bool {
	if h == nil {
		return true
	}
	v := reflect.ValueOf(h)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

type multiHooks []HTTPHooks

func (m multiHooks) OnRequest(ctx context.Context, method, endpoint string) {
	for _, h := range m {
		h.OnRequest(ctx, method, endpoint)
	}
}

func (m multiHooks) OnResponse(ctx context.Context, method, endpoint string, statusCode int, duration time.Duration) {
	for _, h := range m {
		h.OnResponse(ctx, method, endpoint, statusCode, duration)
	}
}

func (m multiHooks) OnError(ctx context.Context, method, endpoint string, err error) {
	for _, h := range m {
		h.OnError(ctx, method, endpoint, err)
	}
}

func (m multiHooks) OnRateLimit(ctx context.Context, limit, remaining int, reset time.Duration) {
	for _, h := range m {
		h.OnRateLimit(ctx, limit, remaining, reset)
	}
}

// registry holds the process-wide hooks.
var registry = struct {
	sync.RWMutex
	http HTTPHooks
}{http: NoopHTTPHooks{}}

// SetHTTPHooks installs h as the process-wide hooks. A nil h is ignored.
// Install hooks at startup, before clients issue requests.
func SetHTTPHooks(h HTTPHooks) {
	if h == nil {
		return
	}
	registry.Lock()
	registry.http = h
	registry.Unlock()
}

// HTTP returns the process-wide hooks.
func HTTP() HTTPHooks {
	registry.RLock()
	defer registry.RUnlock()
	return registry.http
}

// Reset reinstalls [NoopHTTPHooks]. Tests use it to undo [SetHTTPHooks].
func Reset() {
	registry.Lock()
	registry.http = NoopHTTPHooks{}
	registry.Unlock()
}
