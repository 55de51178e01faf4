package adapter

import "strings"

// triggerCommands maps alternate-script trigger words to canonical command
// names. The event and song triggers are kept for parity with the published
// vocabulary even though those lookups are not implemented yet; unknown
// commands are dropped silently after translation.
var triggerCommands = map[string]string{
	"查卡": "card",
	"角色": "character",
	"活动": "event",
	"卡池": "gacha",
	"查谱": "song",
	"帮助": "help",
}

// TriggerTranslator rewrites trigger-word messages into canonical prefix
// command form before normal parsing.
type TriggerTranslator struct {
	prefix string
}

func NewTriggerTranslator(prefix string) *TriggerTranslator {
	return &TriggerTranslator{prefix: prefix}
}

// Translate returns the canonical command text for a trigger-word message and
// reports whether a rewrite happened. A message matches when it equals a
// trigger or starts with the trigger followed by a space; the remainder
// becomes the argument string.
func (t *TriggerTranslator) Translate(content string) (string, bool) {
	trimmed := strings.TrimSpace(content)

	for trigger, command := range triggerCommands {
		if trimmed != trigger && !strings.HasPrefix(trimmed, trigger+" ") {
			continue
		}

		args := strings.TrimSpace(trimmed[len(trigger):])
		rewritten := t.prefix + command
		if args != "" {
			rewritten += " " + args
		}
		return rewritten, true
	}

	return content, false
}
