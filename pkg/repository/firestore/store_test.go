package firestore_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/trendchat/pkg/repository/firestore"
	"github.com/secmon-lab/trendchat/pkg/repository/testhelper"
	"github.com/secmon-lab/trendchat/pkg/utils/testutil"
)

func TestFirestoreRepository(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_FIRESTORE_PROJECT_ID")
	databaseID := testutil.GetEnvOrSkip(t, "TEST_FIRESTORE_DATABASE_ID")

	repo := gt.R1(firestore.New(context.Background(), projectID, databaseID)).NoError(t)
	testhelper.TestAll(t, repo)
}
