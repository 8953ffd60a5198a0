package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trendchat/pkg/domain/types"
)

const (
	// TrendingPageSize is the number of entries the trending page lists.
	TrendingPageSize = 25

	MinSearchResults     = 1
	MaxSearchResults     = 10
	DefaultSearchResults = 5

	MinHotRepoDays     = 1
	MaxHotRepoDays     = 30
	DefaultHotRepoDays = 7
)

// TrendingQuery is the input of the trending fetcher.
type TrendingQuery struct {
	Language string
	Window   types.TimeWindow
}

// Normalize fills defaults. The window enum has no unambiguous clamp, so an
// unknown value is rejected by Validate instead.
func (x *TrendingQuery) Normalize() {
	if x.Window == "" {
		x.Window = types.TimeWindowDaily
	}
}

func (x *TrendingQuery) Validate() error {
	return x.Window.Validate()
}

// SearchQuery is the input of the repository search fetcher.
type SearchQuery struct {
	Query      string
	MaxResults int
}

// Clamp forces MaxResults into [MinSearchResults, MaxSearchResults].
// Defaults for an absent value are the caller's concern; an explicit zero is
// out of range and clamps to the minimum.
func (x *SearchQuery) Clamp() {
	if x.MaxResults < MinSearchResults {
		x.MaxResults = MinSearchResults
	}
	if x.MaxResults > MaxSearchResults {
		x.MaxResults = MaxSearchResults
	}
}

func (x *SearchQuery) Validate() error {
	if x.Query == "" {
		return goerr.Wrap(types.ErrInvalidParameter, "search query is empty")
	}
	return nil
}

// HotReposQuery is the input of the hot-new-repos fetcher.
type HotReposQuery struct {
	Language string
	Days     int
}

// Clamp forces Days into [MinHotRepoDays, MaxHotRepoDays].
func (x *HotReposQuery) Clamp() {
	if x.Days < MinHotRepoDays {
		x.Days = MinHotRepoDays
	}
	if x.Days > MaxHotRepoDays {
		x.Days = MaxHotRepoDays
	}
}
