package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/trendchat/pkg/controller/server"
	"github.com/secmon-lab/trendchat/pkg/domain/mock"
	"github.com/secmon-lab/trendchat/pkg/domain/model"
	"github.com/secmon-lab/trendchat/pkg/domain/types"
)

func TestHealth(t *testing.T) {
	srv := server.New(&mock.UseCaseMock{})

	w := httptest.NewRecorder()
	srv.Mux().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	gt.V(t, w.Code).Equal(http.StatusOK)
	gt.V(t, w.Body.String()).Equal("ok")
}

func TestChatEndpoint(t *testing.T) {
	ucMock := &mock.UseCaseMock{
		ChatFunc: func(ctx context.Context, input *model.ChatInput) (*model.ChatOutput, error) {
			return &model.ChatOutput{
				SessionID: input.SessionID,
				Reply:     "hello " + string(input.UserID),
			}, nil
		},
	}
	srv := server.New(ucMock)

	t.Run("valid request", func(t *testing.T) {
		body := bytes.NewBufferString(`{"session_id":"s1","user_id":"u1","message":"hi"}`)
		w := httptest.NewRecorder()
		srv.Mux().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/chat", body))

		gt.V(t, w.Code).Equal(http.StatusOK)

		var out model.ChatOutput
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		gt.V(t, out.SessionID).Equal(types.SessionID("s1"))
		gt.V(t, out.Reply).Equal("hello u1")

		calls := ucMock.ChatCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].Input.Message).Equal("hi")
	})

	t.Run("broken body", func(t *testing.T) {
		body := bytes.NewBufferString(`{`)
		w := httptest.NewRecorder()
		srv.Mux().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/chat", body))

		gt.V(t, w.Code).Equal(http.StatusBadRequest)
	})

	t.Run("empty message", func(t *testing.T) {
		ucMock := &mock.UseCaseMock{
			ChatFunc: func(ctx context.Context, input *model.ChatInput) (*model.ChatOutput, error) {
				return nil, goerr.Wrap(types.ErrInvalidParameter, "message is empty")
			},
		}
		srv := server.New(ucMock)

		body := bytes.NewBufferString(`{"session_id":"s1"}`)
		w := httptest.NewRecorder()
		srv.Mux().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/chat", body))

		gt.V(t, w.Code).Equal(http.StatusBadRequest)
	})
}

func TestTrendingEndpoint(t *testing.T) {
	ucMock := &mock.UseCaseMock{
		GetTrendingReposFunc: func(ctx context.Context, q *model.TrendingQuery) ([]*model.Repository, error) {
			return []*model.Repository{
				{FullName: "o/r", URL: "https://github.com/o/r", Stars: 10, Rank: 1},
			}, nil
		},
	}
	srv := server.New(ucMock)

	w := httptest.NewRecorder()
	srv.Mux().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/repos/trending?language=go&window=weekly", nil))

	gt.V(t, w.Code).Equal(http.StatusOK)

	var resp struct {
		Repositories []*model.Repository `json:"repositories"`
	}
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	gt.A(t, resp.Repositories).Length(1)
	gt.V(t, resp.Repositories[0].FullName).Equal("o/r")

	calls := ucMock.GetTrendingReposCalls()
	gt.A(t, calls).Length(1)
	gt.V(t, calls[0].Q.Language).Equal("go")
	gt.V(t, calls[0].Q.Window).Equal(types.TimeWindowWeekly)
}

func TestSearchEndpoint(t *testing.T) {
	ucMock := &mock.UseCaseMock{
		SearchReposFunc: func(ctx context.Context, q *model.SearchQuery) ([]*model.Repository, error) {
			return nil, nil
		},
	}
	srv := server.New(ucMock)

	t.Run("query parameters are passed through", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Mux().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/repos/search?q=vector+database&max_results=3", nil))

		gt.V(t, w.Code).Equal(http.StatusOK)

		calls := ucMock.SearchReposCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].Q.Query).Equal("vector database")
		gt.V(t, calls[0].Q.MaxResults).Equal(3)
	})

	t.Run("invalid max_results", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Mux().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/repos/search?q=x&max_results=lots", nil))

		gt.V(t, w.Code).Equal(http.StatusBadRequest)
	})
}

func TestHotEndpoint(t *testing.T) {
	ucMock := &mock.UseCaseMock{
		GetHotReposFunc: func(ctx context.Context, q *model.HotReposQuery) ([]*model.Repository, error) {
			return nil, goerr.Wrap(types.ErrRateLimited, "rate limited")
		},
	}
	srv := server.New(ucMock)

	w := httptest.NewRecorder()
	srv.Mux().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/repos/hot?language=rust&days=14", nil))

	gt.V(t, w.Code).Equal(http.StatusTooManyRequests)

	calls := ucMock.GetHotReposCalls()
	gt.A(t, calls).Length(1)
	gt.V(t, calls[0].Q.Language).Equal("rust")
	gt.V(t, calls[0].Q.Days).Equal(14)
}
