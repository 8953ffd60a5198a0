package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/trendchat/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func TestGitHubConfig(t *testing.T) {
	t.Run("no credential builds an anonymous client", func(t *testing.T) {
		ghConfig := &config.GitHub{}
		cmd := &cli.Command{
			Name:  "test",
			Flags: ghConfig.Flags(),
			Action: func(ctx context.Context, c *cli.Command) error {
				return nil
			},
		}
		gt.NoError(t, cmd.Run(context.Background(), []string{"test"}))

		client := gt.R1(ghConfig.New()).NoError(t)
		gt.True(t, client != nil)
	})

	t.Run("token builds a client", func(t *testing.T) {
		ghConfig := &config.GitHub{}
		cmd := &cli.Command{
			Name:  "test",
			Flags: ghConfig.Flags(),
			Action: func(ctx context.Context, c *cli.Command) error {
				return nil
			},
		}
		gt.NoError(t, cmd.Run(context.Background(), []string{"test", "--github-token", "ghp_dummy"}))

		client := gt.R1(ghConfig.New()).NoError(t)
		gt.True(t, client != nil)
	})
}
