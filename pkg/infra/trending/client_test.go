package trending_test

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/trendchat/pkg/domain/types"
	"github.com/secmon-lab/trendchat/pkg/infra/trending"
)

//go:embed testdata/trending.html
var trendingHTML []byte

func TestParse(t *testing.T) {
	repos := gt.R1(trending.Parse(bytes.NewReader(trendingHTML))).NoError(t)

	gt.A(t, repos).Length(3)

	gt.V(t, repos[0].Owner).Equal("langgenius")
	gt.V(t, repos[0].Name).Equal("dify")
	gt.V(t, repos[0].FullName).Equal("langgenius/dify")
	gt.V(t, repos[0].URL).Equal("https://github.com/langgenius/dify")
	gt.V(t, repos[0].Description).Equal("Dify is an open-source LLM app development platform.")
	gt.V(t, repos[0].Language).Equal("Python")
	gt.V(t, repos[0].Stars).Equal(54321)
	gt.V(t, repos[0].Forks).Equal(7900)
	gt.V(t, repos[0].PeriodStars).Equal(1024)
	gt.V(t, repos[0].Rank).Equal(1)

	gt.V(t, repos[1].FullName).Equal("BurntSushi/ripgrep")
	gt.V(t, repos[1].Language).Equal("Rust")
	gt.V(t, repos[1].Stars).Equal(42100)
	gt.V(t, repos[1].PeriodStars).Equal(512)
	gt.V(t, repos[1].Rank).Equal(2)

	// Missing description and language are tolerated
	gt.V(t, repos[2].FullName).Equal("tailwindlabs/tailwindcss")
	gt.V(t, repos[2].Language).Equal("")
	gt.V(t, repos[2].Stars).Equal(1200000)
	gt.V(t, repos[2].Rank).Equal(3)

	// Page order is kept: stars-gained descending in the fixture
	gt.V(t, repos[0].PeriodStars >= repos[1].PeriodStars).Equal(true)
	gt.V(t, repos[1].PeriodStars >= repos[2].PeriodStars).Equal(true)
}

func TestParseBrokenPage(t *testing.T) {
	t.Run("page without repo rows", func(t *testing.T) {
		_, err := trending.Parse(bytes.NewReader([]byte("<html><body><p>nothing here</p></body></html>")))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrBadResponse))
	})

	t.Run("rows without repo links", func(t *testing.T) {
		page := `<html><body><article class="Box-row"><p>broken</p></article></body></html>`
		_, err := trending.Parse(bytes.NewReader([]byte(page)))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrBadResponse))
	})
}

func TestParseCount(t *testing.T) {
	testCases := map[string]int{
		"1,234":  1234,
		"1.2k":   1200,
		"3.4m":   3400000,
		"0":      0,
		"42":     42,
		"bogus":  0,
		" 512 ":  512,
		"10,000": 10000,
	}

	for input, expected := range testCases {
		t.Run(input, func(t *testing.T) {
			gt.V(t, trending.ParseCountForTest(input)).Equal(expected)
		})
	}
}

func TestFetchTrending(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.URL.Path).Equal("/rust")
		gt.V(t, r.URL.Query().Get("since")).Equal("weekly")
		gt.V(t, r.Header.Get("User-Agent")).NotEqual("")

		_, _ = w.Write(trendingHTML)
	}))
	defer srv.Close()

	client := trending.New(trending.WithBaseURL(srv.URL))

	repos := gt.R1(client.FetchTrending(context.Background(), "rust", types.TimeWindowWeekly)).NoError(t)
	gt.A(t, repos).Length(3)
}

func TestFetchTrendingFailure(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		client := trending.New(trending.WithBaseURL(srv.URL))
		_, err := client.FetchTrending(context.Background(), "", types.TimeWindowDaily)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrBadResponse))
	})

	t.Run("invalid window", func(t *testing.T) {
		client := trending.New()
		_, err := client.FetchTrending(context.Background(), "", "hourly")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidParameter))
	})
}
