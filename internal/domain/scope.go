package domain

// ScopeKind distinguishes where a language preference is stored.
type ScopeKind string

const (
	ScopeGuild ScopeKind = "guild"
	ScopeUser  ScopeKind = "user"
)

// PreferenceScope identifies the holder of a language preference: a guild for
// server channels, an individual user for direct messages.
type PreferenceScope struct {
	Kind ScopeKind
	ID   string
}

func GuildScope(guildID string) PreferenceScope {
	return PreferenceScope{Kind: ScopeGuild, ID: guildID}
}

func UserScope(userID string) PreferenceScope {
	return PreferenceScope{Kind: ScopeUser, ID: userID}
}
