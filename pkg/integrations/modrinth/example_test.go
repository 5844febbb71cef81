package modrinth_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/matzehuels/modrinth-go/pkg/integrations/modrinth"
	"github.com/matzehuels/modrinth-go/pkg/observability"
)

func ExampleUserAgent() {
	fmt.Println(modrinth.UserAgent("my-launcher", "1.4.0", "ops@example.com"))
	fmt.Println(modrinth.UserAgent("my-launcher", "", ""))
	// Output:
	// my-launcher/1.4.0 (ops@example.com)
	// my-launcher
}

func ExampleFacet() {
	facets := [][]modrinth.Facet{
		{modrinth.FacetCategory("fabric"), modrinth.FacetCategory("quilt")},
		{modrinth.FacetVersion("1.20.1")},
		{modrinth.FacetServerSide(modrinth.SideRequired)},
	}
	for _, group := range facets {
		fmt.Println(group)
	}
	// Output:
	// [categories:fabric categories:quilt]
	// [versions:1.20.1]
	// [server_side:required]
}

func ExampleClient_CheckProject() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Ratelimit-Limit", "300")
		w.Header().Set("X-Ratelimit-Remaining", "299")
		w.Header().Set("X-Ratelimit-Reset", "60")
		fmt.Fprint(w, `{"id":"AANobbMI"}`)
	}))
	defer srv.Close()

	client, err := modrinth.NewClient(modrinth.Options{
		BaseURL:   srv.URL + "/v2/",
		UserAgent: modrinth.UserAgent("example", "1.0.0", ""),
		Hooks:     observability.NoopHTTPHooks{},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	id, err := client.CheckProject(context.Background(), "sodium")
	if err != nil {
		fmt.Println(err)
		return
	}
	rl, _ := client.RateLimit()
	fmt.Println(id, rl.Remaining)
	// Output: AANobbMI 299
}
