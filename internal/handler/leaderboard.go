package handler

import (
	"net/http"

	"github.com/lufiasha/botdiscord/internal/logger"
)

// Leaderboard returns the top players ranked by experience.
func (h *GameHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	entries, err := h.gameSvc.TopPlayers(r.Context())
	if err != nil {
		log.Error("Leaderboard failed", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: entries})
}
