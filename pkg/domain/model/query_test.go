package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/trendchat/pkg/domain/model"
	"github.com/secmon-lab/trendchat/pkg/domain/types"
)

func TestTrendingQuery(t *testing.T) {
	t.Run("empty window defaults to daily", func(t *testing.T) {
		q := &model.TrendingQuery{Language: "go"}
		q.Normalize()
		gt.V(t, q.Window).Equal(types.TimeWindowDaily)
		gt.NoError(t, q.Validate())
	})

	t.Run("weekly and monthly are valid", func(t *testing.T) {
		for _, w := range []types.TimeWindow{types.TimeWindowWeekly, types.TimeWindowMonthly} {
			q := &model.TrendingQuery{Window: w}
			q.Normalize()
			gt.NoError(t, q.Validate())
		}
	})

	t.Run("unknown window is rejected", func(t *testing.T) {
		q := &model.TrendingQuery{Window: "hourly"}
		q.Normalize()
		gt.Error(t, q.Validate())
	})
}

func TestSearchQueryClamp(t *testing.T) {
	t.Run("over-limit clamps to max", func(t *testing.T) {
		q := &model.SearchQuery{Query: "web framework", MaxResults: 50}
		q.Clamp()
		gt.V(t, q.MaxResults).Equal(10)
	})

	t.Run("under-limit clamps to min", func(t *testing.T) {
		q := &model.SearchQuery{Query: "web framework", MaxResults: -3}
		q.Clamp()
		gt.V(t, q.MaxResults).Equal(1)
	})

	t.Run("zero clamps to min", func(t *testing.T) {
		q := &model.SearchQuery{Query: "web framework"}
		q.Clamp()
		gt.V(t, q.MaxResults).Equal(1)
	})

	t.Run("in-range value is kept", func(t *testing.T) {
		q := &model.SearchQuery{Query: "web framework", MaxResults: 3}
		q.Clamp()
		gt.V(t, q.MaxResults).Equal(3)
	})

	t.Run("empty query fails validation", func(t *testing.T) {
		q := &model.SearchQuery{MaxResults: 5}
		gt.Error(t, q.Validate())
	})
}

func TestHotReposQueryClamp(t *testing.T) {
	t.Run("zero clamps to 1", func(t *testing.T) {
		q := &model.HotReposQuery{}
		q.Clamp()
		gt.V(t, q.Days).Equal(1)
	})

	t.Run("below range clamps to 1", func(t *testing.T) {
		q := &model.HotReposQuery{Days: -5}
		q.Clamp()
		gt.V(t, q.Days).Equal(1)
	})

	t.Run("above range clamps to 30", func(t *testing.T) {
		q := &model.HotReposQuery{Days: 100}
		q.Clamp()
		gt.V(t, q.Days).Equal(30)
	})
}
