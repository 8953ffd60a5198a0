package infra

import (
	"net/http"
	"time"

	"github.com/secmon-lab/trendchat/pkg/domain/interfaces"
	"github.com/secmon-lab/trendchat/pkg/repository/memory"
)

// Clients holds every external dependency of the use cases. It is built once
// at startup and passed around explicitly; no ambient module state.
type Clients struct {
	httpClient   HTTPClient
	githubSearch interfaces.GitHubSearch
	trending     interfaces.TrendingSource
	llm          interfaces.LLM
	bqClient     interfaces.BigQuery
	memoryRepo   interfaces.MemoryRepository
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		memoryRepo: memory.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) HTTPClient() HTTPClient {
	return x.httpClient
}
func (x *Clients) GitHubSearch() interfaces.GitHubSearch {
	return x.githubSearch
}
func (x *Clients) Trending() interfaces.TrendingSource {
	return x.trending
}
func (x *Clients) LLM() interfaces.LLM {
	return x.llm
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}
func (x *Clients) MemoryRepo() interfaces.MemoryRepository {
	return x.memoryRepo
}

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Clients) {
		x.httpClient = client
	}
}

func WithGitHubSearch(client interfaces.GitHubSearch) Option {
	return func(x *Clients) {
		x.githubSearch = client
	}
}

func WithTrending(client interfaces.TrendingSource) Option {
	return func(x *Clients) {
		x.trending = client
	}
}

func WithLLM(client interfaces.LLM) Option {
	return func(x *Clients) {
		x.llm = client
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithMemoryRepo(repo interfaces.MemoryRepository) Option {
	return func(x *Clients) {
		x.memoryRepo = repo
	}
}
