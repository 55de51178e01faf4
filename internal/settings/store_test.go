package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/chu3/chu3-discord-bot-go/internal/domain"
	"go.uber.org/zap"
)

func TestNewStoreCreatesEmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "language_settings.json")

	store, err := NewStore(path, zap.NewNop())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	if _, ok := store.Get(domain.GuildScope("1")); ok {
		t.Error("expected empty store")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("settings file not created: %v", err)
	}

	var doc map[string]map[string]string
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("settings file not valid JSON: %v", err)
	}
	if _, ok := doc["guild"]; !ok {
		t.Error("missing guild mapping")
	}
	if _, ok := doc["user"]; !ok {
		t.Error("missing user mapping")
	}
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "language_settings.json")

	store, err := NewStore(path, zap.NewNop())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	if err := store.Set(domain.GuildScope("100"), domain.LangJapanese); err != nil {
		t.Fatalf("Set guild: %v", err)
	}
	if err := store.Set(domain.UserScope("200"), domain.LangKorean); err != nil {
		t.Fatalf("Set user: %v", err)
	}

	// Reload from the persisted document.
	reloaded, err := NewStore(path, zap.NewNop())
	if err != nil {
		t.Fatalf("NewStore reload: %v", err)
	}

	if lang, ok := reloaded.Get(domain.GuildScope("100")); !ok || lang != domain.LangJapanese {
		t.Errorf("guild preference = (%s, %v), want (JPN, true)", lang, ok)
	}
	if lang, ok := reloaded.Get(domain.UserScope("200")); !ok || lang != domain.LangKorean {
		t.Errorf("user preference = (%s, %v), want (KOR, true)", lang, ok)
	}
}

func TestStoreGuildAndUserKeysIndependent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "language_settings.json")

	store, err := NewStore(path, zap.NewNop())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	// Same snowflake in both scopes must not collide.
	if err := store.Set(domain.GuildScope("42"), domain.LangChineseTraditional); err != nil {
		t.Fatalf("Set guild: %v", err)
	}
	if err := store.Set(domain.UserScope("42"), domain.LangKorean); err != nil {
		t.Fatalf("Set user: %v", err)
	}

	if lang, _ := store.Get(domain.GuildScope("42")); lang != domain.LangChineseTraditional {
		t.Errorf("guild 42 = %s, want CHT", lang)
	}
	if lang, _ := store.Get(domain.UserScope("42")); lang != domain.LangKorean {
		t.Errorf("user 42 = %s, want KOR", lang)
	}
}

func TestStoreConcurrentWritesKeepAllKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "language_settings.json")

	store, err := NewStore(path, zap.NewNop())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = store.Set(domain.GuildScope(fmt.Sprintf("g%d", i)), domain.LangJapanese)
		}(i)
	}
	wg.Wait()

	reloaded, err := NewStore(path, zap.NewNop())
	if err != nil {
		t.Fatalf("NewStore reload: %v", err)
	}
	for i := 0; i < 20; i++ {
		if _, ok := reloaded.Get(domain.GuildScope(fmt.Sprintf("g%d", i))); !ok {
			t.Errorf("lost guild g%d under concurrent writes", i)
		}
	}
}
