package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trendchat/pkg/domain/interfaces"
	"github.com/secmon-lab/trendchat/pkg/domain/model"
	"github.com/secmon-lab/trendchat/pkg/domain/types"
	"github.com/secmon-lab/trendchat/pkg/utils/errutil"
	"github.com/secmon-lab/trendchat/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func New(uc interfaces.UseCase) *Server {
	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/chat", handleChat(uc))
		r.Route("/repos", func(r chi.Router) {
			r.Get("/trending", handleTrending(uc))
			r.Get("/search", handleSearch(uc))
			r.Get("/hot", handleHot(uc))
		})
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}

func handleChat(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			SessionID string `json:"session_id"`
			UserID    string `json:"user_id"`
			Message   string `json:"message"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, r, goerr.Wrap(types.ErrInvalidParameter, "invalid chat request body"))
			return
		}

		out, err := uc.Chat(r.Context(), &model.ChatInput{
			SessionID: types.SessionID(req.SessionID),
			UserID:    types.UserID(req.UserID),
			Message:   req.Message,
		})
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, out)
	}
}

func handleTrending(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repos, err := uc.GetTrendingRepos(r.Context(), &model.TrendingQuery{
			Language: r.URL.Query().Get("language"),
			Window:   types.TimeWindow(r.URL.Query().Get("window")),
		})
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondRepos(w, repos)
	}
}

func handleSearch(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		maxResults, err := queryInt(r, "max_results", model.DefaultSearchResults)
		if err != nil {
			respondError(w, r, err)
			return
		}

		repos, err := uc.SearchRepos(r.Context(), &model.SearchQuery{
			Query:      r.URL.Query().Get("q"),
			MaxResults: maxResults,
		})
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondRepos(w, repos)
	}
}

func handleHot(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days, err := queryInt(r, "days", model.DefaultHotRepoDays)
		if err != nil {
			respondError(w, r, err)
			return
		}

		repos, err := uc.GetHotRepos(r.Context(), &model.HotReposQuery{
			Language: r.URL.Query().Get("language"),
			Days:     days,
		})
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondRepos(w, repos)
	}
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, goerr.Wrap(types.ErrInvalidParameter, "invalid integer query parameter", goerr.V("key", key), goerr.V("value", raw))
	}
	return v, nil
}

func respondRepos(w http.ResponseWriter, repos []*model.Repository) {
	respondJSON(w, http.StatusOK, map[string]any{
		"repositories": repos,
	})
}

func respondJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, types.ErrInvalidParameter):
		code = http.StatusBadRequest
	case errors.Is(err, types.ErrRateLimited):
		code = http.StatusTooManyRequests
	case errors.Is(err, types.ErrBadResponse):
		code = http.StatusBadGateway
	}

	if code == http.StatusInternalServerError {
		errutil.HandleError(r.Context(), "request failed", err)
	}

	respondJSON(w, code, map[string]any{
		"error": err.Error(),
	})
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}
