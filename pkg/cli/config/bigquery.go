package config

import (
	"context"
	"log/slog"

	"github.com/secmon-lab/trendchat/pkg/domain/interfaces"
	"github.com/secmon-lab/trendchat/pkg/domain/types"
	"github.com/secmon-lab/trendchat/pkg/infra/bq"
	"github.com/urfave/cli/v3"
)

// BigQuery configures the chat log export. Export is disabled when the
// project ID is empty.
type BigQuery struct {
	projectID string
	datasetID string
	tableID   string
}

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bigquery-project-id",
			Usage:       "BigQuery project ID (optional)",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("TRENDCHAT_BIGQUERY_PROJECT_ID"),
			Destination: &x.projectID,
		},
		&cli.StringFlag{
			Name:        "bigquery-dataset-id",
			Usage:       "BigQuery dataset ID",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("TRENDCHAT_BIGQUERY_DATASET_ID"),
			Value:       "trendchat",
			Destination: &x.datasetID,
		},
		&cli.StringFlag{
			Name:        "bigquery-table-id",
			Usage:       "BigQuery table ID",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("TRENDCHAT_BIGQUERY_TABLE_ID"),
			Value:       "chat_logs",
			Destination: &x.tableID,
		},
	}
}

func (x *BigQuery) Enabled() bool {
	return x.projectID != ""
}

// NewClient returns nil without error when export is disabled.
func (x *BigQuery) NewClient(ctx context.Context) (interfaces.BigQuery, error) {
	if !x.Enabled() {
		return nil, nil
	}
	return bq.New(ctx,
		types.GoogleProjectID(x.projectID),
		types.BQDatasetID(x.datasetID),
		types.BQTableID(x.tableID),
	)
}

func (x *BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("projectID", x.projectID),
		slog.Any("datasetID", x.datasetID),
		slog.Any("tableID", x.tableID),
	)
}
