package config

import (
	"log/slog"

	"github.com/secmon-lab/trendchat/pkg/domain/types"
	"github.com/secmon-lab/trendchat/pkg/infra/githubapi"
	"github.com/urfave/cli/v3"
)

// GitHub configures access to the GitHub REST API. A personal access token
// and a GitHub App credential are exclusive; both are optional and
// unauthenticated access works with a lower rate limit.
type GitHub struct {
	token      string `masq:"secret"`
	appID      int64
	installID  int64
	privateKey string `masq:"secret"`
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token (optional)",
			Category:    "GitHub",
			Sources:     cli.EnvVars("TRENDCHAT_GITHUB_TOKEN"),
			Destination: &x.token,
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID (optional)",
			Category:    "GitHub",
			Sources:     cli.EnvVars("TRENDCHAT_GITHUB_APP_ID"),
			Destination: &x.appID,
		},
		&cli.Int64Flag{
			Name:        "github-app-installation-id",
			Usage:       "GitHub App installation ID",
			Category:    "GitHub",
			Sources:     cli.EnvVars("TRENDCHAT_GITHUB_APP_INSTALLATION_ID"),
			Destination: &x.installID,
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key (PEM)",
			Category:    "GitHub",
			Sources:     cli.EnvVars("TRENDCHAT_GITHUB_APP_PRIVATE_KEY"),
			Destination: &x.privateKey,
		},
	}
}

func (x *GitHub) New() (*githubapi.Client, error) {
	var options []githubapi.Option
	if x.token != "" {
		options = append(options, githubapi.WithToken(types.GitHubToken(x.token)))
	}
	if x.appID != 0 {
		options = append(options, githubapi.WithApp(x.appID, x.installID, []byte(x.privateKey)))
	}
	return githubapi.New(options...)
}

func (x *GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.Int64("appID", x.appID),
		slog.Int64("installID", x.installID),
		slog.Int("privateKey.len", len(x.privateKey)),
	)
}
