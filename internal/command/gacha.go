package command

import "github.com/chu3/chu3-discord-bot-go/internal/domain"

func NewGachaCommand(deps *Dependencies) Command {
	return &entityCommand{
		deps:          deps,
		kind:          domain.EntityGacha,
		name:          "gacha",
		aliases:       nil,
		description:   "Look up a gacha banner by id",
		section:       "gacha",
		idPlaceholder: "GACHA_ID",
	}
}
