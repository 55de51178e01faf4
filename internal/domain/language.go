package domain

import "strings"

// LanguageCode identifies one of the five supported display languages. The
// zero-ish default everywhere is English.
type LanguageCode string

const (
	LangJapanese           LanguageCode = "JPN"
	LangEnglish            LanguageCode = "ENG"
	LangChineseTraditional LanguageCode = "CHT"
	LangChineseSimplified  LanguageCode = "CHS"
	LangKorean             LanguageCode = "KOR"
)

// fallbackIndex is the CHS slot. Locale arrays that miss the requested entry
// fall back to it before scanning for any non-empty value.
const fallbackIndex = 3

// localeIndex maps a language code to its fixed positional slot inside
// locale-ordered arrays served by the upstreams.
var localeIndex = map[LanguageCode]int{
	LangJapanese:           0,
	LangEnglish:            1,
	LangChineseTraditional: 2,
	LangChineseSimplified:  3,
	LangKorean:             4,
}

// serverCodes maps locale slots to the server identifiers used by the wiki
// API's per-server asset endpoints.
var serverCodes = [5]string{"jp", "en", "tw", "cn", "kr"}

// AllLanguages lists every supported code in locale-index order.
var AllLanguages = []LanguageCode{
	LangJapanese,
	LangEnglish,
	LangChineseTraditional,
	LangChineseSimplified,
	LangKorean,
}

// ParseLanguage normalizes a user-supplied code. Unknown codes report ok=false
// so callers can reject them instead of silently storing garbage.
func ParseLanguage(raw string) (LanguageCode, bool) {
	code := LanguageCode(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := localeIndex[code]; !ok {
		return LangEnglish, false
	}
	return code, true
}

// Index returns the fixed locale-array slot for the language. Unknown codes
// degrade to the CHS slot, matching lookup behavior for unmapped settings.
func (l LanguageCode) Index() int {
	if idx, ok := localeIndex[l]; ok {
		return idx
	}
	return fallbackIndex
}

// ServerCode returns the wiki API server identifier for the language
// ("jp", "en", "tw", "cn", "kr").
func (l LanguageCode) ServerCode() string {
	return serverCodes[l.Index()]
}

// Valid reports whether the code is one of the five supported languages.
func (l LanguageCode) Valid() bool {
	_, ok := localeIndex[l]
	return ok
}

// SelectLocalized picks the display value out of a locale-ordered array.
// Order: the requested language's slot, then the CHS slot, then the first
// non-empty entry, then the literal "N/A". Upstream arrays are frequently
// shorter than five entries, so every access is bounds-checked here rather
// than at call sites.
func SelectLocalized(values []string, lang LanguageCode) string {
	idx := lang.Index()
	if idx < len(values) && values[idx] != "" {
		return values[idx]
	}
	if fallbackIndex < len(values) && values[fallbackIndex] != "" {
		return values[fallbackIndex]
	}
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ValueNotAvailable
}

// ValueNotAvailable is the display placeholder for data the upstream omits.
const ValueNotAvailable = "N/A"
