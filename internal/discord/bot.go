package discord

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/chu3/chu3-discord-bot-go/internal/adapter"
	"github.com/chu3/chu3-discord-bot-go/internal/command"
	"github.com/chu3/chu3-discord-bot-go/internal/domain"
	"go.uber.org/zap"
)

// Bot wraps the Discord gateway session: it translates inbound messages into
// registry dispatches and renders reply payloads as embeds with attachments.
type Bot struct {
	session    *discordgo.Session
	prefix     string
	translator *adapter.TriggerTranslator
	registry   *command.Registry
	logger     *zap.Logger
}

func NewBot(token, prefix string, translator *adapter.TriggerTranslator, registry *command.Registry, logger *zap.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	b := &Bot{
		session:    session,
		prefix:     prefix,
		translator: translator,
		registry:   registry,
		logger:     logger,
	}

	session.AddHandler(b.onReady)
	session.AddHandler(b.onMessageCreate)
	session.AddHandler(b.onInteractionCreate)

	return b, nil
}

// Start opens the gateway connection and registers slash commands.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}

	if err := b.registerSlashCommands(); err != nil {
		b.logger.Error("Failed to register slash commands", zap.Error(err))
	}

	<-ctx.Done()
	return nil
}

// Shutdown closes the gateway session.
func (b *Bot) Shutdown(ctx context.Context) error {
	return b.session.Close()
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.logger.Info("Bot has logged in",
		zap.String("username", r.User.Username),
		zap.Int("guilds", len(r.Guilds)),
	)

	if err := s.UpdateWatchStatus(0, "out for errors"); err != nil {
		b.logger.Warn("Failed to set presence", zap.Error(err))
	}
}

// onMessageCreate runs the trigger translation and prefix parsing on every
// non-bot message, then dispatches to the registry.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	content := m.Content
	if rewritten, ok := b.translator.Translate(content); ok {
		content = rewritten
	}

	if !strings.HasPrefix(content, b.prefix) {
		return
	}

	parts := strings.Fields(content[len(b.prefix):])
	if len(parts) == 0 {
		return
	}

	name := parts[0]
	params := map[string]any{}
	if len(parts) > 1 {
		// Every command takes a single argument; expose it under both keys
		// the handlers read.
		params["id"] = parts[1]
		params["code"] = parts[1]
	}

	cmdCtx := domain.NewCommandContext(m.GuildID, m.ChannelID, m.Author.ID, m.Author.Username, content, b.isAdmin(s, m))
	cmdCtx.MessageID = m.ID

	if err := b.registry.Execute(context.Background(), cmdCtx, name, params); err != nil {
		if stderrors.Is(err, command.ErrUnknownCommand) {
			b.logger.Debug("Ignoring unknown command", zap.String("command", name))
			return
		}
		b.logger.Error("Command execution failed",
			zap.String("command", name),
			zap.Error(err),
		)
	}
}

func (b *Bot) isAdmin(s *discordgo.Session, m *discordgo.MessageCreate) bool {
	if m.GuildID == "" {
		return false
	}
	perms, err := s.UserChannelPermissions(m.Author.ID, m.ChannelID)
	if err != nil {
		b.logger.Warn("Failed to resolve member permissions",
			zap.String("user", m.Author.ID),
			zap.Error(err),
		)
		return false
	}
	return perms&discordgo.PermissionAdministrator != 0
}

// SendText delivers a plain text reply, honoring an interaction responder
// when the invocation set one.
func (b *Bot) SendText(cmdCtx *domain.CommandContext, text string) error {
	if text == "" {
		return nil
	}
	if cmdCtx.Responder != nil {
		return cmdCtx.Responder(text)
	}
	if cmdCtx.MessageID != "" {
		_, err := b.session.ChannelMessageSendReply(cmdCtx.ChannelID, text, &discordgo.MessageReference{
			MessageID: cmdCtx.MessageID,
			ChannelID: cmdCtx.ChannelID,
			GuildID:   cmdCtx.GuildID,
		})
		return err
	}
	_, err := b.session.ChannelMessageSend(cmdCtx.ChannelID, text)
	return err
}

// SendReply renders a payload as an embed with its image attachments.
func (b *Bot) SendReply(cmdCtx *domain.CommandContext, payload *domain.ReplyPayload) error {
	embed := &discordgo.MessageEmbed{
		Title:       payload.TitleText,
		Description: payload.Description,
		Color:       payload.Color,
	}
	for _, field := range payload.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   field.Label,
			Value:  field.Value,
			Inline: field.Inline,
		})
	}
	if payload.FooterText != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: payload.FooterText}
	}
	if payload.ThumbnailFilename != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{
			URL: "attachment://" + payload.ThumbnailFilename,
		}
	}
	if payload.ImageFilename != "" {
		embed.Image = &discordgo.MessageEmbedImage{
			URL: "attachment://" + payload.ImageFilename,
		}
	}

	files := make([]*discordgo.File, 0, len(payload.Images))
	for _, img := range payload.Images {
		files = append(files, &discordgo.File{
			Name:   img.Filename,
			Reader: bytes.NewReader(img.Data),
		})
	}

	msg := &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
		Files:  files,
	}
	if cmdCtx.MessageID != "" {
		msg.Reference = &discordgo.MessageReference{
			MessageID: cmdCtx.MessageID,
			ChannelID: cmdCtx.ChannelID,
			GuildID:   cmdCtx.GuildID,
		}
	}

	_, err := b.session.ChannelMessageSendComplex(cmdCtx.ChannelID, msg)
	return err
}
