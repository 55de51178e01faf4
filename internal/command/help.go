package command

import (
	"context"
	"fmt"

	"github.com/chu3/chu3-discord-bot-go/internal/constants"
	"github.com/chu3/chu3-discord-bot-go/internal/domain"
)

// helpFieldKeys lists the textmap key pairs shown in the help embed, in
// display order.
var helpFieldKeys = []struct {
	nameKey string
	descKey string
}{
	{"HELP_FIELD_NAME", "HELP_FIELD_DESC"},
	{"LANG_FIELD_NAME", "LANG_FIELD_DESC"},
	{"CARD_FIELD_NAME", "CARD_FIELD_DESC"},
	{"CHAR_FIELD_NAME", "CHAR_FIELD_DESC"},
	{"GACHA_FIELD_NAME", "GACHA_FIELD_DESC"},
}

type HelpCommand struct {
	deps *Dependencies
}

func NewHelpCommand(deps *Dependencies) *HelpCommand {
	return &HelpCommand{deps: deps}
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Aliases() []string {
	return nil
}

func (c *HelpCommand) Description() string {
	return "Show available commands"
}

func (c *HelpCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	if c.deps == nil || c.deps.Localizer == nil || c.deps.SendReply == nil {
		return fmt.Errorf("help command dependencies not satisfied")
	}

	lang := c.deps.Localizer.ResolveLanguage(cmdCtx.Scope())

	payload := &domain.ReplyPayload{
		TitleText:   c.deps.Localizer.Text(lang, "help", "EMBED_TITLE", nil),
		Description: c.deps.Localizer.Text(lang, "help", "EMBED_DESCRIPTION", nil),
		Color:       constants.EmbedColors.Help,
		FooterText: c.deps.Localizer.Text(lang, "help", "FOOTER", map[string]any{
			"VERSION": constants.Version,
		}),
	}

	for _, keys := range helpFieldKeys {
		name := c.deps.Localizer.Text(lang, "help", keys.nameKey, nil)
		desc := c.deps.Localizer.Text(lang, "help", keys.descKey, nil)
		if name == "" && desc == "" {
			continue
		}
		payload.Fields = append(payload.Fields, domain.ReplyField{Label: name, Value: desc})
	}

	return c.deps.SendReply(cmdCtx, payload)
}
