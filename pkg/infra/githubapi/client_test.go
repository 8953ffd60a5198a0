package githubapi_test

import (
	"context"
	_ "embed"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/trendchat/pkg/domain/interfaces"
	"github.com/secmon-lab/trendchat/pkg/domain/types"
	"github.com/secmon-lab/trendchat/pkg/infra/githubapi"
)

//go:embed testdata/search_repos.json
var searchReposJSON []byte

func newTestClient(t *testing.T, handler http.HandlerFunc) *githubapi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := gt.R1(githubapi.New(
		githubapi.WithBaseURL(srv.URL + "/"),
	)).NoError(t)
	return client
}

func TestSearchRepositories(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.URL.Path).Equal("/search/repositories")
		gt.V(t, r.URL.Query().Get("q")).Equal("swift web framework")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(searchReposJSON)
	})

	repos := gt.R1(client.SearchRepositories(context.Background(), "swift web framework", &interfaces.SearchOptions{
		PerPage: 10,
	})).NoError(t)

	gt.A(t, repos).Length(2)

	// Fields must reproduce the payload exactly
	gt.V(t, repos[0].Owner).Equal("apple")
	gt.V(t, repos[0].Name).Equal("swift")
	gt.V(t, repos[0].FullName).Equal("apple/swift")
	gt.V(t, repos[0].Stars).Equal(64911)
	gt.V(t, repos[0].Language).Equal("C++")
	gt.V(t, repos[0].Forks).Equal(10423)
	gt.V(t, repos[0].URL).Equal("https://github.com/apple/swift")
	gt.V(t, repos[0].CreatedAt.Year()).Equal(2015)

	gt.V(t, repos[1].Owner).Equal("Kitura")
	gt.V(t, repos[1].Stars).Equal(7625)
	gt.V(t, repos[1].Language).Equal("Swift")

	// Upstream order is preserved
	gt.V(t, repos[0].Rank).Equal(1)
	gt.V(t, repos[1].Rank).Equal(2)
}

func TestSearchRepositoriesTruncation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(searchReposJSON)
	})

	repos := gt.R1(client.SearchRepositories(context.Background(), "swift", &interfaces.SearchOptions{
		PerPage: 1,
	})).NoError(t)

	gt.A(t, repos).Length(1)
	gt.V(t, repos[0].FullName).Equal("apple/swift")
}

func TestSearchRepositoriesRateLimited(t *testing.T) {
	testCases := map[string]int{
		"forbidden":         http.StatusForbidden,
		"too many requests": http.StatusTooManyRequests,
	}

	for name, code := range testCases {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(code)
				_, _ = w.Write([]byte(`{"message":"API rate limit exceeded"}`))
			})

			_, err := client.SearchRepositories(context.Background(), "anything", nil)
			gt.Error(t, err)
			gt.True(t, errors.Is(err, types.ErrRateLimited))
		})
	}
}

func TestNewClientOptions(t *testing.T) {
	t.Run("token and app auth are exclusive", func(t *testing.T) {
		_, err := githubapi.New(
			githubapi.WithToken("ghp_dummy"),
			githubapi.WithApp(123, 456, []byte("key")),
		)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("token auth builds a client", func(t *testing.T) {
		client := gt.R1(githubapi.New(githubapi.WithToken("ghp_dummy"))).NoError(t)
		gt.True(t, client != nil)
	})
}
