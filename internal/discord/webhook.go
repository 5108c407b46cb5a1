package discord

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"github.com/lufiasha/botdiscord/internal/game"
	"github.com/lufiasha/botdiscord/internal/logger"
)

// MsgCommandFailed is the generic reply when a command errors out.
const MsgCommandFailed = "⚠️ Что-то пошло не так. Попробуй ещё раз чуть позже."

// InteractionHandler serves Discord's interactions endpoint: signature
// verification, PING/PONG and slash command dispatch to the game service.
func InteractionHandler(publicKey []byte, svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if !discordgo.VerifyInteraction(r, publicKey) {
			log.Warn("Interaction signature verification failed")
			http.Error(w, "invalid request signature", http.StatusUnauthorized)
			return
		}

		var interaction discordgo.Interaction
		if err := json.NewDecoder(r.Body).Decode(&interaction); err != nil {
			log.Error("Failed to decode interaction", "error", err)
			http.Error(w, "invalid interaction body", http.StatusBadRequest)
			return
		}

		switch interaction.Type {
		case discordgo.InteractionPing:
			respond(w, &discordgo.InteractionResponse{
				Type: discordgo.InteractionResponsePong,
			})

		case discordgo.InteractionApplicationCommand:
			cmd := commandFromInteraction(&interaction)
			log.Info("Interaction received", "command", cmd.Name, "user_id", cmd.UserID)

			msg, err := svc.Handle(r.Context(), cmd)
			if err != nil {
				log.Error("Command failed", "error", err, "command", cmd.Name, "user_id", cmd.UserID)
				msg = MsgCommandFailed
			}

			respond(w, &discordgo.InteractionResponse{
				Type: discordgo.InteractionResponseChannelMessageWithSource,
				Data: &discordgo.InteractionResponseData{Content: msg},
			})

		default:
			log.Warn("Unsupported interaction type", "type", interaction.Type)
			http.Error(w, "unsupported interaction type", http.StatusBadRequest)
		}
	}
}

// commandFromInteraction flattens a slash command interaction into the
// transport-neutral command shape.
func commandFromInteraction(interaction *discordgo.Interaction) game.Command {
	data := interaction.ApplicationCommandData()

	cmd := game.Command{Name: data.Name}

	// Guild interactions carry the user under Member, DMs under User.
	switch {
	case interaction.Member != nil && interaction.Member.User != nil:
		cmd.UserID = interaction.Member.User.ID
		cmd.Username = interaction.Member.User.Username
	case interaction.User != nil:
		cmd.UserID = interaction.User.ID
		cmd.Username = interaction.User.Username
	}

	if len(data.Options) > 0 {
		cmd.Arg = data.Options[0].StringValue()
	}
	return cmd
}

func respond(w http.ResponseWriter, response *discordgo.InteractionResponse) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		slog.Error("Failed to encode interaction response", "error", err)
	}
}
