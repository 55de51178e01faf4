package command

import "github.com/chu3/chu3-discord-bot-go/internal/domain"

func NewCharacterCommand(deps *Dependencies) Command {
	return &entityCommand{
		deps:          deps,
		kind:          domain.EntityCharacter,
		name:          "character",
		aliases:       []string{"char"},
		description:   "Look up a character by id",
		section:       "character",
		idPlaceholder: "CHAR_ID",
	}
}
