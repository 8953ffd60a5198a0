package cli

import (
	"context"
	"os"
	"strconv"

	"github.com/m-mizutani/gots/slice"
	"github.com/olekukonko/tablewriter"
	"github.com/secmon-lab/trendchat/pkg/cli/config"
	"github.com/secmon-lab/trendchat/pkg/domain/model"
	"github.com/secmon-lab/trendchat/pkg/domain/types"
	"github.com/secmon-lab/trendchat/pkg/infra"
	"github.com/secmon-lab/trendchat/pkg/infra/trending"
	"github.com/secmon-lab/trendchat/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func reposCommand() *cli.Command {
	return &cli.Command{
		Name:    "repos",
		Aliases: []string{"r"},
		Usage:   "Look up repositories without the assistant",
		Commands: []*cli.Command{
			trendingCommand(),
			searchCommand(),
			hotCommand(),
		},
	}
}

func trendingCommand() *cli.Command {
	var (
		language string
		window   string
	)

	return &cli.Command{
		Name:  "trending",
		Usage: "List repositories from the trending page",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "language",
				Usage:       "Programming language filter",
				Destination: &language,
			},
			&cli.StringFlag{
				Name:        "window",
				Usage:       "Time window [daily|weekly|monthly]",
				Value:       "daily",
				Destination: &window,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			uc := usecase.New(infra.New(infra.WithTrending(trending.New())))

			repos, err := uc.GetTrendingRepos(ctx, &model.TrendingQuery{
				Language: language,
				Window:   types.TimeWindow(window),
			})
			if err != nil {
				return err
			}

			renderRepos(repos)
			return nil
		},
	}
}

func searchCommand() *cli.Command {
	var (
		maxResults int64

		github config.GitHub
	)
	searchFlags := []cli.Flag{
		&cli.Int64Flag{
			Name:        "max-results",
			Usage:       "Number of results, between 1 and 10",
			Aliases:     []string{"n"},
			Value:       model.DefaultSearchResults,
			Destination: &maxResults,
		},
	}

	return &cli.Command{
		Name:      "search",
		Usage:     "Search repositories by keyword, sorted by stars",
		ArgsUsage: "<query>",
		Flags: slice.Flatten(
			searchFlags,
			github.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			ghClient, err := github.New()
			if err != nil {
				return err
			}
			uc := usecase.New(infra.New(infra.WithGitHubSearch(ghClient)))

			repos, err := uc.SearchRepos(ctx, &model.SearchQuery{
				Query:      c.Args().First(),
				MaxResults: int(maxResults),
			})
			if err != nil {
				return err
			}

			renderRepos(repos)
			return nil
		},
	}
}

func hotCommand() *cli.Command {
	var (
		language string
		days     int64

		github config.GitHub
	)
	hotFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "language",
			Usage:       "Programming language filter",
			Destination: &language,
		},
		&cli.Int64Flag{
			Name:        "days",
			Usage:       "Look-back window in days, between 1 and 30",
			Value:       model.DefaultHotRepoDays,
			Destination: &days,
		},
	}

	return &cli.Command{
		Name:  "hot",
		Usage: "List recently created repositories gathering stars",
		Flags: slice.Flatten(
			hotFlags,
			github.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			ghClient, err := github.New()
			if err != nil {
				return err
			}
			uc := usecase.New(infra.New(infra.WithGitHubSearch(ghClient)))

			repos, err := uc.GetHotRepos(ctx, &model.HotReposQuery{
				Language: language,
				Days:     int(days),
			})
			if err != nil {
				return err
			}

			renderRepos(repos)
			return nil
		},
	}
}

func renderRepos(repos []*model.Repository) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Rank", "Repository", "Language", "Stars", "Description"})
	table.SetAutoWrapText(false)

	for _, repo := range repos {
		desc := repo.Description
		if len(desc) > 60 {
			desc = desc[:57] + "..."
		}
		table.Append([]string{
			strconv.Itoa(repo.Rank),
			repo.FullName,
			repo.Language,
			strconv.Itoa(repo.Stars),
			desc,
		})
	}
	table.Render()
}
