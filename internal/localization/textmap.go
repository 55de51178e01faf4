package localization

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/chu3/chu3-discord-bot-go/internal/domain"
	"go.uber.org/zap"
)

// TextMap is one language's message catalog: section → key → template.
type TextMap map[string]map[string]string

// TextMapService loads per-language textmap files lazily and caches them for
// the process lifetime. Two invocations racing on the same language both load
// the same file; the overwrite is idempotent.
type TextMapService struct {
	dir    string
	logger *zap.Logger

	mu     sync.RWMutex
	loaded map[domain.LanguageCode]TextMap
}

func NewTextMapService(dir string, logger *zap.Logger) *TextMapService {
	return &TextMapService{
		dir:    dir,
		logger: logger,
		loaded: make(map[domain.LanguageCode]TextMap),
	}
}

// Text looks up section.key in the textmap for lang and substitutes every
// {NAME} placeholder with its stringified value. A missing section or key
// degrades to an empty string; unmatched placeholders stay verbatim.
func (s *TextMapService) Text(lang domain.LanguageCode, section, key string, placeholders map[string]any) string {
	tm := s.textMap(lang)

	text := tm[section][key]
	for name, value := range placeholders {
		text = strings.ReplaceAll(text, "{"+name+"}", fmt.Sprintf("%v", value))
	}
	return text
}

func (s *TextMapService) textMap(lang domain.LanguageCode) TextMap {
	s.mu.RLock()
	tm, ok := s.loaded[lang]
	s.mu.RUnlock()
	if ok {
		return tm
	}

	tm = s.loadFile(lang)

	s.mu.Lock()
	s.loaded[lang] = tm
	s.mu.Unlock()
	return tm
}

// loadFile reads textmap_<LANG>.json, falling back to the English file when
// the language has no file of its own. A language whose load fails entirely
// caches an empty map so lookups degrade to blank text instead of repeated
// disk probing.
func (s *TextMapService) loadFile(lang domain.LanguageCode) TextMap {
	path := filepath.Join(s.dir, fmt.Sprintf("textmap_%s.json", lang))
	if _, err := os.Stat(path); err != nil {
		s.logger.Debug("Textmap file missing, using English fallback",
			zap.String("lang", string(lang)),
			zap.String("path", path),
		)
		path = filepath.Join(s.dir, fmt.Sprintf("textmap_%s.json", domain.LangEnglish))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Error("Failed to read textmap file",
			zap.String("path", path),
			zap.Error(err),
		)
		return TextMap{}
	}

	var tm TextMap
	if err := json.Unmarshal(data, &tm); err != nil {
		s.logger.Error("Failed to parse textmap file",
			zap.String("path", path),
			zap.Error(err),
		)
		return TextMap{}
	}
	return tm
}
