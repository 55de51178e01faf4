package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/chu3/chu3-discord-bot-go/internal/adapter"
	"github.com/chu3/chu3-discord-bot-go/internal/domain"
	"github.com/chu3/chu3-discord-bot-go/internal/localization"
	"github.com/chu3/chu3-discord-bot-go/internal/provider"
	"github.com/chu3/chu3-discord-bot-go/internal/settings"
	"go.uber.org/zap"
)

type Command interface {
	Name() string
	Aliases() []string
	Description() string
	Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error
}

type Dependencies struct {
	Localizer *localization.Localizer
	Settings  *settings.Store
	Providers *provider.Selector
	Assembler *adapter.ReplyAssembler
	SendText  func(cmdCtx *domain.CommandContext, text string) error
	SendReply func(cmdCtx *domain.CommandContext, payload *domain.ReplyPayload) error
	Logger    *zap.Logger
}

func (d *Dependencies) log() *zap.Logger {
	if d != nil && d.Logger != nil {
		return d.Logger
	}
	return zap.NewNop()
}

func getStringParam(params map[string]any, key string) string {
	if params == nil {
		return ""
	}
	val, ok := params[key]
	if !ok {
		return ""
	}
	switch v := val.(type) {
	case string:
		return strings.TrimSpace(v)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}
