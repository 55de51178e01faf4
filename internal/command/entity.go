package command

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/chu3/chu3-discord-bot-go/internal/domain"
	"github.com/chu3/chu3-discord-bot-go/internal/provider"
	"github.com/chu3/chu3-discord-bot-go/pkg/errors"
	"go.uber.org/zap"
)

// entityCommand implements the shared lookup flow for card, character and
// gacha: resolve language, route the identifier, fetch from the selected
// provider, assemble the reply. The three concrete commands only differ in
// entity kind, textmap section and placeholder naming.
type entityCommand struct {
	deps          *Dependencies
	kind          domain.EntityKind
	name          string
	aliases       []string
	description   string
	section       string
	idPlaceholder string
}

func (c *entityCommand) Name() string {
	return c.name
}

func (c *entityCommand) Aliases() []string {
	return c.aliases
}

func (c *entityCommand) Description() string {
	return c.description
}

func (c *entityCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	if c.deps == nil ||
		c.deps.Localizer == nil ||
		c.deps.Providers == nil ||
		c.deps.Assembler == nil ||
		c.deps.SendText == nil ||
		c.deps.SendReply == nil {
		return fmt.Errorf("%s command dependencies not satisfied", c.name)
	}

	lang := c.deps.Localizer.ResolveLanguage(cmdCtx.Scope())

	raw := getStringParam(params, "id")
	ident, err := provider.Route(raw)
	if err != nil {
		return c.replyRouteError(cmdCtx, lang, raw, err)
	}

	entity, err := c.fetch(ctx, ident, lang)
	if err != nil {
		return c.replyFetchError(cmdCtx, lang, ident, err)
	}

	payload := c.deps.Assembler.Assemble(entity, lang)
	return c.deps.SendReply(cmdCtx, payload)
}

func (c *entityCommand) fetch(ctx context.Context, ident provider.Identifier, lang domain.LanguageCode) (*domain.NormalizedEntity, error) {
	p := c.deps.Providers.For(ident)
	switch c.kind {
	case domain.EntityCharacter:
		return p.FetchCharacter(ctx, ident.ID, lang)
	case domain.EntityGacha:
		return p.FetchGacha(ctx, ident.ID, lang)
	default:
		return p.FetchCard(ctx, ident.ID, lang)
	}
}

// replyRouteError answers a missing argument with the usage message and a
// malformed identifier with the localized error text. Both are handled
// outcomes, not command failures.
func (c *entityCommand) replyRouteError(cmdCtx *domain.CommandContext, lang domain.LanguageCode, raw string, err error) error {
	if stderrors.Is(err, provider.ErrMissingArgument) {
		return c.deps.SendText(cmdCtx, c.deps.Localizer.Text(lang, c.section, "USAGE", nil))
	}

	c.deps.log().Debug("Rejected malformed identifier",
		zap.String("command", c.name),
		zap.String("raw", raw),
	)
	return c.deps.SendText(cmdCtx, c.deps.Localizer.Text(lang, c.section, "ERROR", map[string]any{
		"ERROR": err.Error(),
	}))
}

// replyFetchError converts typed fetch failures into localized replies.
// Nothing propagates past the command boundary.
func (c *entityCommand) replyFetchError(cmdCtx *domain.CommandContext, lang domain.LanguageCode, ident provider.Identifier, err error) error {
	var notFound *errors.NotFoundError
	if stderrors.As(err, &notFound) {
		return c.deps.SendText(cmdCtx, c.deps.Localizer.Text(lang, c.section, "NOT_FOUND", map[string]any{
			c.idPlaceholder: ident.ID,
		}))
	}

	c.deps.log().Warn("Entity fetch failed",
		zap.String("command", c.name),
		zap.String("source", string(ident.Source)),
		zap.Int("id", ident.ID),
		zap.Error(err),
	)
	return c.deps.SendText(cmdCtx, c.deps.Localizer.Text(lang, c.section, "ERROR", map[string]any{
		"ERROR": err.Error(),
	}))
}
