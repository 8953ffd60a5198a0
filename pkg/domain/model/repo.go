package model

import (
	"net/url"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trendchat/pkg/domain/types"
)

// Repository represents one GitHub repository entry returned by a fetcher.
// Records are built per call and never cached or deduplicated.
type Repository struct {
	Owner       string    `json:"owner"`
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	Language    string    `json:"language,omitempty"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`

	// PeriodStars is the stars gained in the requested trending window.
	// Zero for records from the search API.
	PeriodStars int `json:"period_stars,omitempty"`

	// Rank is the 1-origin position in the listing the record came from.
	Rank int `json:"rank,omitempty"`
}

func (x *Repository) Validate() error {
	if x.Owner == "" || x.Name == "" {
		return goerr.Wrap(types.ErrInvalidParameter, "owner and name are required",
			goerr.V("owner", x.Owner),
			goerr.V("name", x.Name),
		)
	}
	if x.Stars < 0 {
		return goerr.Wrap(types.ErrInvalidParameter, "star count must be non-negative", goerr.V("stars", x.Stars))
	}
	if x.Forks < 0 {
		return goerr.Wrap(types.ErrInvalidParameter, "fork count must be non-negative", goerr.V("forks", x.Forks))
	}
	if u, err := url.Parse(x.URL); err != nil || u.Scheme == "" || u.Host == "" {
		return goerr.Wrap(types.ErrInvalidParameter, "repository URL is not well-formed", goerr.V("url", x.URL))
	}
	return nil
}
