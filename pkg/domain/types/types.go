package types

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

type (
	SessionID   string
	UserID      string
	RequestID   string
	MemoryID    string
	TimeWindow  string
	GitHubToken string
	LLMAPIKey   string

	GoogleProjectID string
	BQDatasetID     string
	BQTableID       string
)

func (x GoogleProjectID) String() string { return string(x) }
func (x BQDatasetID) String() string     { return string(x) }
func (x BQTableID) String() string       { return string(x) }

const (
	TimeWindowDaily   TimeWindow = "daily"
	TimeWindowWeekly  TimeWindow = "weekly"
	TimeWindowMonthly TimeWindow = "monthly"
)

// Validate checks that the time window is one of the values the trending
// page accepts.
func (x TimeWindow) Validate() error {
	switch x {
	case TimeWindowDaily, TimeWindowWeekly, TimeWindowMonthly:
		return nil
	}
	return goerr.Wrap(ErrInvalidParameter, "invalid time window, should be daily, weekly or monthly", goerr.V("value", string(x)))
}

func (x TimeWindow) String() string { return string(x) }

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func NewSessionID() SessionID {
	return SessionID(uuid.NewString())
}

func NewMemoryID() MemoryID {
	return MemoryID(uuid.NewString())
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x LLMAPIKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x LLMAPIKey) String() string {
	return "***********"
}
