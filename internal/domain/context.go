package domain

import "time"

// CommandContext carries the invocation metadata a command needs: where to
// reply, who asked, and which preference scope applies.
type CommandContext struct {
	GuildID   string
	ChannelID string
	UserID    string
	Username  string
	IsAdmin   bool
	Message   string
	MessageID string
	Timestamp time.Time

	// Responder, when set, overrides channel delivery for plain text replies.
	// Interaction-based invocations use it to answer ephemerally.
	Responder func(text string) error
}

func NewCommandContext(guildID, channelID, userID, username, message string, isAdmin bool) *CommandContext {
	return &CommandContext{
		GuildID:   guildID,
		ChannelID: channelID,
		UserID:    userID,
		Username:  username,
		IsAdmin:   isAdmin,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// Scope returns the preference scope for this invocation: the guild in server
// channels, the invoking user in direct messages.
func (c *CommandContext) Scope() PreferenceScope {
	if c.GuildID != "" {
		return GuildScope(c.GuildID)
	}
	return UserScope(c.UserID)
}
