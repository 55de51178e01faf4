package localization

import (
	"github.com/chu3/chu3-discord-bot-go/internal/domain"
)

// PreferenceSource exposes the stored language preference for a scope.
type PreferenceSource interface {
	Get(scope domain.PreferenceScope) (domain.LanguageCode, bool)
}

// Localizer resolves the active language for an invocation scope and renders
// templated messages in it.
type Localizer struct {
	prefs    PreferenceSource
	textMaps *TextMapService
}

func NewLocalizer(prefs PreferenceSource, textMaps *TextMapService) *Localizer {
	return &Localizer{prefs: prefs, textMaps: textMaps}
}

// ResolveLanguage returns the stored preference for scope, or English when no
// preference exists.
func (l *Localizer) ResolveLanguage(scope domain.PreferenceScope) domain.LanguageCode {
	if lang, ok := l.prefs.Get(scope); ok {
		return lang
	}
	return domain.LangEnglish
}

// Text renders section.key for lang with placeholder substitution.
func (l *Localizer) Text(lang domain.LanguageCode, section, key string, placeholders map[string]any) string {
	return l.textMaps.Text(lang, section, key, placeholders)
}
