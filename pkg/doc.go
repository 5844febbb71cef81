// Package pkg provides the libraries behind modrinth-go, a typed client for the
// Modrinth v2 API.
//
// # Overview
//
// The pkg directory is organized into four areas:
//
//  1. [modrinth] - The Modrinth client: projects, versions, users, teams, tags and search
//  2. [integrations] - The HTTP layer: request building, response classification,
//     strict decoding and rate-limit tracking
//  3. [errors] - Error codes shared by every layer, plus input validation
//  4. [observability] - Hooks for metrics, with a Prometheus implementation
//
// [buildinfo] carries the module version used in the default User-Agent.
//
// # Architecture
//
// Every call follows the same path:
//
//	modrinth.Client method (validate arguments)
//	         ↓
//	    [integrations] Request (path segments + ordered query)
//	         ↓
//	    HTTP round trip (rate limit recorded, hooks notified)
//	         ↓
//	    Resolve (2xx → strict decode, 4xx → REQUEST, other → SERVER)
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/modrinth-go/pkg/integrations/modrinth"
//	)
//
//	client, _ := modrinth.NewClient(modrinth.Options{
//	    UserAgent: modrinth.UserAgent("my-launcher", "1.4.0", "ops@example.com"),
//	})
//
//	// 1. Find a project
//	results, _ := client.Search(ctx, "sodium", modrinth.SearchOptions{Limit: 5})
//
//	// 2. Fetch its versions for one loader
//	versions, _ := client.ListVersionsFiltered(ctx, results.Hits[0].ProjectID,
//	    modrinth.VersionFilter{Loaders: []string{"fabric"}})
//
//	// 3. Check the remaining budget
//	rl, _ := client.RateLimit()
//	fmt.Println(len(versions), rl.Remaining)
//
// # Testing
//
// Run tests:
//
//	go test ./...                          # All tests
//	go test ./pkg/integrations/modrinth/   # Specific package
//	go test -run Example ./...             # Examples only
//
// Tests never reach the network; they run against the chi-based mock API in
// internal/mockapi.
//
// [modrinth]: https://pkg.go.dev/github.com/matzehuels/modrinth-go/pkg/integrations/modrinth
// [integrations]: https://pkg.go.dev/github.com/matzehuels/modrinth-go/pkg/integrations
// [errors]: https://pkg.go.dev/github.com/matzehuels/modrinth-go/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/modrinth-go/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/modrinth-go/pkg/buildinfo
package pkg
