package command

import (
	"context"
	"fmt"

	"github.com/chu3/chu3-discord-bot-go/internal/domain"
	"github.com/chu3/chu3-discord-bot-go/pkg/errors"
	"go.uber.org/zap"
)

// LangCommand sets the language preference for the invocation scope: the
// guild in server channels (administrators only), the invoking user in direct
// messages. The confirmation is rendered in the newly set language.
type LangCommand struct {
	deps *Dependencies
}

func NewLangCommand(deps *Dependencies) *LangCommand {
	return &LangCommand{deps: deps}
}

func (c *LangCommand) Name() string {
	return "lang"
}

func (c *LangCommand) Aliases() []string {
	return nil
}

func (c *LangCommand) Description() string {
	return "Set bot language for this server or DM"
}

func (c *LangCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	if c.deps == nil || c.deps.Localizer == nil || c.deps.Settings == nil || c.deps.SendText == nil {
		return fmt.Errorf("lang command dependencies not satisfied")
	}

	scope := cmdCtx.Scope()
	current := c.deps.Localizer.ResolveLanguage(scope)

	code, ok := domain.ParseLanguage(getStringParam(params, "code"))
	if !ok {
		return c.deps.SendText(cmdCtx, c.deps.Localizer.Text(current, "lang", "INVALID_CODE", map[string]any{
			"CODES": "ENG, JPN, CHS, CHT, KOR",
		}))
	}

	if scope.Kind == domain.ScopeGuild && !cmdCtx.IsAdmin {
		permErr := errors.NewPermissionError("set server language")
		c.deps.log().Debug("Language change refused",
			zap.String("guild", scope.ID),
			zap.String("user", cmdCtx.UserID),
			zap.Error(permErr),
		)
		return c.deps.SendText(cmdCtx, c.deps.Localizer.Text(current, "lang", "NO_ADMIN", nil))
	}

	if err := c.deps.Settings.Set(scope, code); err != nil {
		c.deps.log().Error("Failed to persist language preference",
			zap.String("scope_kind", string(scope.Kind)),
			zap.String("scope_id", scope.ID),
			zap.Error(err),
		)
		return c.deps.SendText(cmdCtx, c.deps.Localizer.Text(current, "lang", "ERROR", map[string]any{
			"ERROR": err.Error(),
		}))
	}

	confirmKey := "CONFIRM_USER"
	if scope.Kind == domain.ScopeGuild {
		confirmKey = "CONFIRM_GUILD"
	}
	return c.deps.SendText(cmdCtx, c.deps.Localizer.Text(code, "lang", confirmKey, map[string]any{
		"LANG": string(code),
	}))
}
