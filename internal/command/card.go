package command

import "github.com/chu3/chu3-discord-bot-go/internal/domain"

func NewCardCommand(deps *Dependencies) Command {
	return &entityCommand{
		deps:          deps,
		kind:          domain.EntityCard,
		name:          "card",
		aliases:       []string{"check_card", "card_check"},
		description:   "Look up a card by id",
		section:       "card",
		idPlaceholder: "CARD_ID",
	}
}
