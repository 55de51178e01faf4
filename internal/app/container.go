package app

import (
	"fmt"

	"github.com/chu3/chu3-discord-bot-go/internal/adapter"
	"github.com/chu3/chu3-discord-bot-go/internal/command"
	"github.com/chu3/chu3-discord-bot-go/internal/config"
	"github.com/chu3/chu3-discord-bot-go/internal/discord"
	"github.com/chu3/chu3-discord-bot-go/internal/localization"
	"github.com/chu3/chu3-discord-bot-go/internal/provider"
	"github.com/chu3/chu3-discord-bot-go/internal/provider/bestdori"
	"github.com/chu3/chu3-discord-bot-go/internal/provider/sekai"
	"github.com/chu3/chu3-discord-bot-go/internal/settings"
	"go.uber.org/zap"
)

// Container bundles the assembled services behind the runnable bot.
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	Bot    *discord.Bot
}

// Build assembles the full dependency graph: preference store, localization,
// both providers, the assembler, the command registry and the gateway bot.
func Build(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}

	store, err := settings.NewStore(cfg.Settings.File, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create settings store: %w", err)
	}

	textMaps := localization.NewTextMapService(cfg.Settings.TextMapDir, logger)
	localizer := localization.NewLocalizer(store, textMaps)

	primary := bestdori.NewProvider(cfg.Bestdori.BaseURL, cfg.Bestdori.Timeout, logger)
	mirror := sekai.NewProvider(cfg.Sekai.MirrorBaseURL, cfg.Sekai.AssetBaseURL, cfg.Sekai.Timeout, logger)
	selector := provider.NewSelector(primary, mirror)

	assembler := adapter.NewReplyAssembler(localizer)
	translator := adapter.NewTriggerTranslator(cfg.Bot.Prefix)
	registry := command.NewRegistry()

	bot, err := discord.NewBot(cfg.Discord.Token, cfg.Bot.Prefix, translator, registry, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord bot: %w", err)
	}

	deps := &command.Dependencies{
		Localizer: localizer,
		Settings:  store,
		Providers: selector,
		Assembler: assembler,
		SendText:  bot.SendText,
		SendReply: bot.SendReply,
		Logger:    logger,
	}

	registry.Register(command.NewCardCommand(deps))
	registry.Register(command.NewCharacterCommand(deps))
	registry.Register(command.NewGachaCommand(deps))
	registry.Register(command.NewHelpCommand(deps))
	registry.Register(command.NewLangCommand(deps))

	logger.Info("Command registry assembled", zap.Int("commands", registry.Count()))

	return &Container{
		Config: cfg,
		Logger: logger,
		Bot:    bot,
	}, nil
}
