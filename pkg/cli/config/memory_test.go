package config_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/trendchat/pkg/cli/config"
	"github.com/secmon-lab/trendchat/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func buildMemory(t *testing.T, args ...string) *config.Memory {
	t.Helper()

	memConfig := &config.Memory{}
	cmd := &cli.Command{
		Name:  "test",
		Flags: memConfig.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
	return memConfig
}

func TestMemoryBackend(t *testing.T) {
	t.Run("default backend is in-process", func(t *testing.T) {
		memConfig := buildMemory(t)
		repo := gt.R1(memConfig.NewRepository(context.Background())).NoError(t)
		gt.True(t, repo != nil)
	})

	t.Run("unknown backend is rejected", func(t *testing.T) {
		memConfig := buildMemory(t, "--memory-backend", "redis")
		_, err := memConfig.NewRepository(context.Background())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("firestore requires project ID", func(t *testing.T) {
		memConfig := buildMemory(t, "--memory-backend", "firestore")
		_, err := memConfig.NewRepository(context.Background())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("postgres requires DSN", func(t *testing.T) {
		memConfig := buildMemory(t, "--memory-backend", "postgres")
		_, err := memConfig.NewRepository(context.Background())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestMemoryFlags(t *testing.T) {
	memConfig := &config.Memory{}
	flags := memConfig.Flags()

	flagNames := make(map[string]bool)
	for _, flag := range flags {
		flagNames[flag.Names()[0]] = true
	}

	gt.True(t, flagNames["memory-backend"])
	gt.True(t, flagNames["firestore-project-id"])
	gt.True(t, flagNames["firestore-database-id"])
	gt.True(t, flagNames["postgres-dsn"])
}
