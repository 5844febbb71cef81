// Package modrinth provides a typed client for the Modrinth v2 API.
//
// # Overview
//
// Modrinth (https://modrinth.com) hosts Minecraft mods, modpacks, resource
// packs, shaders, plugins and datapacks. This package exposes one method per
// API operation, each returning a typed payload or an error:
//
//	client, err := modrinth.NewClient(modrinth.Options{
//	    UserAgent: modrinth.UserAgent("my-launcher", "1.4.0", "ops@example.com"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	project, err := client.GetProject(ctx, "sodium")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(project.Title, project.Downloads)
//
// # Operations
//
//   - Projects: [Client.GetProject], [Client.GetMultipleProjects],
//     [Client.GetRandomProjects], [Client.CheckProject],
//     [Client.GetProjectDependencies], [Client.Search]
//   - Versions: [Client.ListVersions], [Client.ListVersionsFiltered],
//     [Client.GetVersion], [Client.GetMultipleVersions], [Client.GetVersionFromHash]
//   - Users: [Client.GetUser], [Client.GetCurrentUser], [Client.GetMultipleUsers],
//     [Client.ListUserProjects], [Client.GetNotifications],
//     [Client.ListFollowedProjects], [Client.SubmitReport]
//   - Teams: [Client.ListProjectTeamMembers], [Client.ListTeamMembers],
//     [Client.ListMultipleTeamsMembers]
//   - Tags: [Client.ListCategories], [Client.ListLoaders], [Client.ListGameVersions],
//     [Client.ListLicenses], [Client.ListDonationPlatforms], [Client.ListReportTypes],
//     [Client.ListProjectTypes], [Client.ListSideTypes]
//
// # Errors
//
// Every error is an *errors.Error whose Code tells what went wrong:
//
//   - INVALID_INPUT: an argument was rejected before any request was sent
//   - TRANSPORT: no response was received (includes context cancellation)
//   - REQUEST: the API answered 4xx; Message holds its description
//   - SERVER: the API answered 5xx or an unexpected status
//   - DECODE: a 2xx body did not match the expected payload
//
// Failed calls are never retried.
//
// # Search
//
// Facets are grouped: terms inside a group are ORed and groups are ANDed.
//
//	results, err := client.Search(ctx, "sodium", modrinth.SearchOptions{
//	    Facets: [][]modrinth.Facet{
//	        {modrinth.FacetCategory("fabric"), modrinth.FacetCategory("quilt")},
//	        {modrinth.FacetVersion("1.20.1")},
//	    },
//	    Index: modrinth.IndexDownloads,
//	    Limit: 20,
//	})
//
// # Rate Limits
//
// Modrinth reports its rate limit on every response. [Client.RateLimit]
// returns the most recent report; the client itself never waits or throttles.
//
// # Authentication
//
// Set [Options.Token] to a personal access token for the endpoints that
// need one. Without it those endpoints answer 401, surfaced as a REQUEST error.
package modrinth
