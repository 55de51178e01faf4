package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/chu3/chu3-discord-bot-go/internal/domain"
	"go.uber.org/zap"
)

// document is the on-disk layout: two flat mappings of snowflake id → language
// code. The whole document is rewritten on every change.
type document struct {
	Guild map[string]domain.LanguageCode `json:"guild"`
	User  map[string]domain.LanguageCode `json:"user"`
}

// Store holds per-guild and per-user language preferences backed by a single
// JSON file. Writes are low volume (admin driven), so every Set persists the
// full document before returning.
type Store struct {
	path   string
	logger *zap.Logger

	mu  sync.RWMutex
	doc document
}

// NewStore loads the settings document at path, creating it with empty
// mappings when it does not exist yet.
func NewStore(path string, logger *zap.Logger) (*Store, error) {
	s := &Store{
		path:   path,
		logger: logger,
		doc: document{
			Guild: make(map[string]domain.LanguageCode),
			User:  make(map[string]domain.LanguageCode),
		},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
		if err := s.persistLocked(); err != nil {
			return nil, err
		}
		logger.Info("Created language settings file", zap.String("path", path))
		return s, nil
	}

	if err := json.Unmarshal(data, &s.doc); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}
	if s.doc.Guild == nil {
		s.doc.Guild = make(map[string]domain.LanguageCode)
	}
	if s.doc.User == nil {
		s.doc.User = make(map[string]domain.LanguageCode)
	}

	logger.Info("Loaded language settings",
		zap.String("path", path),
		zap.Int("guilds", len(s.doc.Guild)),
		zap.Int("users", len(s.doc.User)),
	)
	return s, nil
}

// Get returns the stored language for scope, reporting ok=false when no
// preference has been set.
func (s *Store) Get(scope domain.PreferenceScope) (domain.LanguageCode, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lang, ok := s.mapForLocked(scope.Kind)[scope.ID]
	return lang, ok
}

// Set stores the language for scope and persists the full document. Last
// writer wins per key; the mutex keeps concurrent writers from interleaving
// the file contents.
func (s *Store) Set(scope domain.PreferenceScope, lang domain.LanguageCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mapForLocked(scope.Kind)[scope.ID] = lang
	return s.persistLocked()
}

func (s *Store) mapForLocked(kind domain.ScopeKind) map[string]domain.LanguageCode {
	if kind == domain.ScopeGuild {
		return s.doc.Guild
	}
	return s.doc.User
}

func (s *Store) persistLocked() error {
	data, err := json.MarshalIndent(s.doc, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
