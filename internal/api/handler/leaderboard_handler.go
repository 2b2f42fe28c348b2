package handler

import (
	"net/http"
	"strconv"

	"ioi_scoring/internal/app/service"
	"ioi_scoring/internal/common"

	"github.com/go-chi/chi/v5"
)

const (
	defaultPage     = 1
	defaultPageSize = 50
	maxPageSize     = 200
)

type LeaderboardHandler struct {
	leaderboardService *service.LeaderboardService
}

func NewLeaderboardHandler(ls *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: ls}
}

func (h *LeaderboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.getLeaderboard) // GET /api/v1/contests/{contestID}/leaderboard
}

func (h *LeaderboardHandler) getLeaderboard(w http.ResponseWriter, r *http.Request) {
	contestID, err := strconv.ParseInt(chi.URLParam(r, "contestID"), 10, 64)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid contest id")
		return
	}

	page, ok := queryIntDefault(r, "page", defaultPage)
	if !ok || page < 1 {
		common.RespondWithError(w, http.StatusBadRequest, "page must be a positive integer")
		return
	}
	pageSize, ok := queryIntDefault(r, "page_size", defaultPageSize)
	if !ok || pageSize < 1 || pageSize > maxPageSize {
		common.RespondWithError(w, http.StatusBadRequest, "page_size must be between 1 and 200")
		return
	}

	resp, err := h.leaderboardService.GetLeaderboard(r.Context(), contestID, page, pageSize)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}

// queryIntDefault parses an optional integer query parameter; a missing value
// yields the fallback, a malformed one fails.
func queryIntDefault(r *http.Request, key string, fallback int) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
