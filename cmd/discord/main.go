// Command discord registers the bot's slash commands with Discord.
// Run it once after deploying a build that changes the command set.
package main

import (
	"log"
	"os"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"github.com/lufiasha/botdiscord/internal/discord"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	token := os.Getenv("DISCORD_BOT_TOKEN")
	appID := os.Getenv("DISCORD_APP_ID")
	if token == "" || appID == "" {
		log.Fatal("DISCORD_BOT_TOKEN and DISCORD_APP_ID must be set")
	}

	// Optional: register to a single guild for instant availability while
	// testing. Global commands take up to an hour to propagate.
	guildID := os.Getenv("DISCORD_GUILD_ID")

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	commands := discord.Commands()
	registered, err := session.ApplicationCommandBulkOverwrite(appID, guildID, commands)
	if err != nil {
		log.Fatalf("Failed to register commands: %v", err)
	}

	for _, cmd := range registered {
		log.Printf("Registered /%s", cmd.Name)
	}
	log.Printf("Done: %d commands registered", len(registered))
}
