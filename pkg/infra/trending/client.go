package trending

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trendchat/pkg/domain/interfaces"
	"github.com/secmon-lab/trendchat/pkg/domain/model"
	"github.com/secmon-lab/trendchat/pkg/domain/types"
	"github.com/secmon-lab/trendchat/pkg/utils/logging"
	"github.com/secmon-lab/trendchat/pkg/utils/safe"
)

const (
	defaultBaseURL = "https://github.com/trending"

	// The trending page has no API; it serves the full listing only to
	// browser-like clients.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// Client scrapes the GitHub trending page. The markup is undocumented and
// unstable; parse failures surface as types.ErrBadResponse, not panics.
type Client struct {
	httpClient HTTPClient
	baseURL    string
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

var _ interfaces.TrendingSource = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

// WithBaseURL overrides the trending page URL, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = baseURL
	}
}

func New(options ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
	}
	for _, opt := range options {
		opt(client)
	}
	return client
}

// FetchTrending fetches the trending listing for the language and window,
// up to model.TrendingPageSize records in page order.
func (x *Client) FetchTrending(ctx context.Context, language string, window types.TimeWindow) ([]*model.Repository, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}

	pageURL := x.baseURL
	if language != "" {
		pageURL += "/" + url.PathEscape(language)
	}
	pageURL += "?since=" + window.String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build trending request", goerr.V("url", pageURL))
	}
	req.Header.Set("User-Agent", userAgent)

	logging.From(ctx).Debug("fetching trending page",
		slog.String("url", pageURL),
		slog.String("window", window.String()),
	)

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch trending page", goerr.V("url", pageURL))
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, goerr.Wrap(types.ErrBadResponse, fmt.Sprintf("trending page returned status %d", resp.StatusCode),
			goerr.V("url", pageURL),
			goerr.V("status", resp.StatusCode),
		)
	}

	repos, err := Parse(resp.Body)
	if err != nil {
		return nil, err
	}

	if len(repos) > model.TrendingPageSize {
		repos = repos[:model.TrendingPageSize]
	}
	return repos, nil
}
