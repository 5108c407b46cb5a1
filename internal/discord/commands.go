// Package discord exposes the game over Discord's interactions webhook.
// Discord signs every request with the application's ed25519 key; anything
// that fails verification is rejected before the body is even parsed.
package discord

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/lufiasha/botdiscord/internal/domain"
)

// Commands returns the slash command definitions to register with Discord.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        domain.CommandStatus,
			Description: "Твой уровень, рассудок, опыт и золото",
		},
		{
			Name:        domain.CommandHunt,
			Description: "Охота на существо из подвала",
		},
		{
			Name:        domain.CommandBoss,
			Description: "Вызов сильнейшего доступного босса",
		},
		{
			Name:        domain.CommandMeditate,
			Description: "Медитация: немного золота, раз в час",
		},
		{
			Name:        domain.CommandEquip,
			Description: "Экипировать оружие или броню",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "item",
					Description: "Название предмета, например: Железный меч",
					Required:    true,
				},
			},
		},
		{
			Name:        domain.CommandOpen,
			Description: "Открыть Сундук воспоминаний",
		},
		{
			Name:        domain.CommandLeaderboard,
			Description: "Пятёрка сильнейших игроков",
		},
		{
			Name:        domain.CommandHelp,
			Description: "Список команд",
		},
	}
}

// ParsePublicKey decodes the hex-encoded ed25519 key Discord signs
// interaction webhooks with.
func ParsePublicKey(hexKey string) (ed25519.PublicKey, error) {
	raw, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid public key encoding: %w", err)
	}
	if len(raw) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("invalid public key length: got %d, want %d", len(raw), ed25519.PublicKeySize)
	}
	return ed25519.PublicKey(raw), nil
}
