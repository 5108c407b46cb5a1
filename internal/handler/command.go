package handler

import (
	"net/http"

	"github.com/lufiasha/botdiscord/internal/game"
	"github.com/lufiasha/botdiscord/internal/logger"
)

// CommandRequest represents a game command issued over the HTTP API.
type CommandRequest struct {
	Command  string `json:"command" validate:"required,command"`
	UserID   string `json:"user_id" validate:"required,max=64"`
	Username string `json:"username" validate:"required,max=100"`
	Arg      string `json:"arg" validate:"max=200"`
}

// GameHandler handles game-related HTTP requests
type GameHandler struct {
	gameSvc game.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameSvc game.Service) *GameHandler {
	return &GameHandler{gameSvc: gameSvc}
}

// Command executes a single game command and returns the reply text.
func (h *GameHandler) Command(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req CommandRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Command"); err != nil {
		return
	}

	msg, err := h.gameSvc.Handle(r.Context(), game.Command{
		Name:     req.Command,
		UserID:   req.UserID,
		Username: req.Username,
		Arg:      req.Arg,
	})
	if err != nil {
		log.Error("Command failed", "error", err, "command", req.Command, "user_id", req.UserID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, MessageResponse{Message: msg})
}
