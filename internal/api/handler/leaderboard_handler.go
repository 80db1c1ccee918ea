package handler

import (
	"net/http"
	"strconv"
	"sysdesignlab/internal/api/middleware"
	"sysdesignlab/internal/app/service"
	"sysdesignlab/internal/common"

	"github.com/go-chi/chi/v5"
)

type LeaderboardHandler struct {
	leaderboardService *service.LeaderboardService
}

func NewLeaderboardHandler(ls *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: ls}
}

func (h *LeaderboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.getLeaderboard) // Public

	r.Group(func(authed chi.Router) {
		authed.Use(middleware.Authenticator)
		authed.Get("/me", h.getMyRank)
	})
}

func (h *LeaderboardHandler) getLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			common.RespondWithError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	entries, err := h.leaderboardService.GlobalLeaderboard(r.Context(), limit)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithSuccess(w, http.StatusOK, entries, "")
}

func (h *LeaderboardHandler) getMyRank(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	rank, err := h.leaderboardService.UserRank(r.Context(), userID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithSuccess(w, http.StatusOK, rank, "")
}
