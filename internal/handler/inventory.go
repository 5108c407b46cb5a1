package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lufiasha/botdiscord/internal/logger"
)

// Inventory returns a player's inventory with display names resolved.
func (h *GameHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID := chi.URLParam(r, "userID")
	if userID == "" {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return
	}

	entries, err := h.gameSvc.Inventory(r.Context(), userID)
	if err != nil {
		log.Error("Inventory lookup failed", "error", err, "user_id", userID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: entries})
}
