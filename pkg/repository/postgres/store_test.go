package postgres_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/trendchat/pkg/repository/postgres"
	"github.com/secmon-lab/trendchat/pkg/repository/testhelper"
	"github.com/secmon-lab/trendchat/pkg/utils/testutil"
)

func TestPostgresRepository(t *testing.T) {
	dsn := testutil.GetEnvOrSkip(t, "TEST_POSTGRES_DSN")

	repo := gt.R1(postgres.New(context.Background(), dsn)).NoError(t)
	testhelper.TestAll(t, repo)
}
