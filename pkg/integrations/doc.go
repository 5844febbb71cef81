// Package integrations provides the shared HTTP layer for remote API clients.
//
// # Overview
//
// The [Client] type turns a [Request] description into an HTTP call and a
// typed result. Service packages build on it:
//
//   - [modrinth]: the Modrinth v2 mod-hosting API
//
// # Request Lifecycle
//
// Every call follows the same steps:
//
//  1. Build: [Request] is resolved against the base URL. Path segments are
//     escaped one by one and query parameters keep their supplied order.
//  2. Send: the request goes through a [Doer] (an *http.Client by default).
//  3. Observe: rate-limit headers of any received response, successful or
//     not, update the client's [RateLimitTracker].
//  4. Resolve: [Resolve] classifies the status. 2xx bodies are decoded with
//     [DecodeStrict]; 4xx become REQUEST errors; anything else SERVER errors.
//
// Errors are [errors.Error] values, so callers branch on [errors.GetCode]:
//
//	project, err := integrations.Fetch[Project](ctx, client, req)
//	if errors.IsNotFound(err) {
//	    // ...
//	}
//
// # Rate Limits
//
// The tracker only records what the server reports. It never delays or
// rejects requests; callers decide how to pace themselves:
//
//	if rl, ok := client.RateLimits().Current(); ok && rl.Remaining == 0 {
//	    time.Sleep(time.Until(rl.ResetAt()))
//	}
//
// # Logging
//
// Requests and responses are logged at debug level with charmbracelet/log.
// A logger attached with [WithLogger] overrides the client's logger for
// that call.
//
// [modrinth]: github.com/matzehuels/modrinth-go/pkg/integrations/modrinth
// [errors.Error]: github.com/matzehuels/modrinth-go/pkg/errors.Error
// [errors.GetCode]: github.com/matzehuels/modrinth-go/pkg/errors.GetCode
package integrations
