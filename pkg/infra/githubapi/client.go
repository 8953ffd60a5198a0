package githubapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trendchat/pkg/domain/interfaces"
	"github.com/secmon-lab/trendchat/pkg/domain/model"
	"github.com/secmon-lab/trendchat/pkg/domain/types"
	"github.com/secmon-lab/trendchat/pkg/utils/logging"
)

// Client queries the GitHub REST search API. Anonymous access works but is
// limited to 60 requests/hour; a token raises that to 5000, and a GitHub App
// installation gets its own quota.
type Client struct {
	gh *github.Client
}

var _ interfaces.GitHubSearch = (*Client)(nil)

type config struct {
	httpClient *http.Client
	baseURL    string
	token      types.GitHubToken

	appID        int64
	appInstallID int64
	appPrivKey   []byte
}

type Option func(*config)

func WithToken(token types.GitHubToken) Option {
	return func(c *config) {
		c.token = token
	}
}

// WithApp authenticates as a GitHub App installation instead of a token.
func WithApp(appID, installID int64, privateKey []byte) Option {
	return func(c *config) {
		c.appID = appID
		c.appInstallID = installID
		c.appPrivKey = privateKey
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *config) {
		c.httpClient = client
	}
}

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

func New(options ...Option) (*Client, error) {
	cfg := &config{
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range options {
		opt(cfg)
	}

	if cfg.token != "" && cfg.appID != 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "token and GitHub App auth are exclusive")
	}

	httpClient := cfg.httpClient
	if cfg.appID != 0 {
		tr := httpClient.Transport
		if tr == nil {
			tr = http.DefaultTransport
		}
		itr, err := ghinstallation.New(tr, cfg.appID, cfg.appInstallID, cfg.appPrivKey)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create GitHub App transport", goerr.V("appID", cfg.appID))
		}
		httpClient = &http.Client{Transport: itr, Timeout: httpClient.Timeout}
	}

	gh := github.NewClient(httpClient)
	if cfg.token != "" {
		gh = gh.WithAuthToken(string(cfg.token))
	}

	if cfg.baseURL != "" {
		u, err := url.Parse(cfg.baseURL)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid base URL", goerr.V("baseURL", cfg.baseURL))
		}
		gh.BaseURL = u
	}

	return &Client{gh: gh}, nil
}

// SearchRepositories queries /search/repositories and keeps the upstream
// result order. HTTP 403/429 is mapped to types.ErrRateLimited.
func (x *Client) SearchRepositories(ctx context.Context, query string, opts *interfaces.SearchOptions) ([]*model.Repository, error) {
	if opts == nil {
		opts = &interfaces.SearchOptions{}
	}
	perPage := opts.PerPage
	if perPage <= 0 {
		perPage = model.MaxSearchResults
	}

	logging.From(ctx).Debug("searching repositories",
		slog.String("query", query),
		slog.String("sort", opts.Sort),
		slog.Int("perPage", perPage),
	)

	result, resp, err := x.gh.Search.Repositories(ctx, query, &github.SearchOptions{
		Sort:        opts.Sort,
		Order:       opts.Order,
		ListOptions: github.ListOptions{PerPage: perPage},
	})
	if err != nil {
		if isRateLimited(resp, err) {
			return nil, goerr.Wrap(types.ErrRateLimited, "repository search was rate limited",
				goerr.V("query", query),
			)
		}
		return nil, goerr.Wrap(err, "failed to search repositories", goerr.V("query", query))
	}

	repos := make([]*model.Repository, 0, len(result.Repositories))
	for i, repo := range result.Repositories {
		if len(repos) >= perPage {
			break
		}
		record := &model.Repository{
			Owner:       repo.GetOwner().GetLogin(),
			Name:        repo.GetName(),
			FullName:    repo.GetFullName(),
			URL:         repo.GetHTMLURL(),
			Description: repo.GetDescription(),
			Language:    repo.GetLanguage(),
			Stars:       repo.GetStargazersCount(),
			Forks:       repo.GetForksCount(),
			CreatedAt:   repo.GetCreatedAt().Time,
			Rank:        i + 1,
		}
		if err := record.Validate(); err != nil {
			return nil, goerr.Wrap(types.ErrBadResponse, "search result contains invalid repository",
				goerr.V("record", record),
			)
		}
		repos = append(repos, record)
	}

	return repos, nil
}

func isRateLimited(resp *github.Response, err error) bool {
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		return true
	}
	if resp != nil && (resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests) {
		return true
	}
	return false
}
