package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/chu3/chu3-discord-bot-go/internal/domain"
	"go.uber.org/zap"
)

var slashCommands = []*discordgo.ApplicationCommand{
	{
		Name:        "lang",
		Description: "Set bot language for this server or DM",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "code",
				Description: "Language code",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "English", Value: string(domain.LangEnglish)},
					{Name: "Japanese", Value: string(domain.LangJapanese)},
					{Name: "Chinese (Simplified)", Value: string(domain.LangChineseSimplified)},
					{Name: "Chinese (Traditional)", Value: string(domain.LangChineseTraditional)},
					{Name: "Korean", Value: string(domain.LangKorean)},
				},
			},
		},
	},
}

func (b *Bot) registerSlashCommands() error {
	appID := b.session.State.User.ID
	for _, cmd := range slashCommands {
		if _, err := b.session.ApplicationCommandCreate(appID, "", cmd); err != nil {
			return err
		}
	}
	b.logger.Info("Slash commands registered", zap.Int("count", len(slashCommands)))
	return nil
}

// onInteractionCreate routes slash invocations into the shared command
// registry. Replies go back through an ephemeral interaction response.
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()

	params := map[string]any{}
	for _, opt := range data.Options {
		if opt.Type == discordgo.ApplicationCommandOptionString {
			params[opt.Name] = opt.StringValue()
		}
	}

	cmdCtx := b.interactionContext(i)
	cmdCtx.Responder = func(text string) error {
		return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: text,
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
	}

	if err := b.registry.Execute(context.Background(), cmdCtx, data.Name, params); err != nil {
		b.logger.Error("Slash command execution failed",
			zap.String("command", data.Name),
			zap.Error(err),
		)
	}
}

func (b *Bot) interactionContext(i *discordgo.InteractionCreate) *domain.CommandContext {
	var user *discordgo.User
	isAdmin := false

	if i.Member != nil {
		user = i.Member.User
		isAdmin = i.Member.Permissions&discordgo.PermissionAdministrator != 0
	} else {
		user = i.User
	}

	userID, username := "", ""
	if user != nil {
		userID = user.ID
		username = user.Username
	}

	return domain.NewCommandContext(i.GuildID, i.ChannelID, userID, username, "", isAdmin)
}
