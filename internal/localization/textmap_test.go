package localization

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chu3/chu3-discord-bot-go/internal/domain"
	"go.uber.org/zap"
)

func writeTextMap(t *testing.T, dir string, lang domain.LanguageCode, content string) {
	t.Helper()
	path := filepath.Join(dir, "textmap_"+string(lang)+".json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write textmap: %v", err)
	}
}

func TestTextPlaceholderSubstitution(t *testing.T) {
	dir := t.TempDir()
	writeTextMap(t, dir, domain.LangEnglish,
		`{"card": {"NOT_FOUND": "Card {CARD_ID} was not found ({CARD_ID})."}}`)

	svc := NewTextMapService(dir, zap.NewNop())

	got := svc.Text(domain.LangEnglish, "card", "NOT_FOUND", map[string]any{"CARD_ID": 42})
	want := "Card 42 was not found (42)."
	if got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestTextUnmatchedPlaceholderStaysVerbatim(t *testing.T) {
	dir := t.TempDir()
	writeTextMap(t, dir, domain.LangEnglish,
		`{"lang": {"CONFIRM_USER": "Set to {LANG} for {WHO}."}}`)

	svc := NewTextMapService(dir, zap.NewNop())

	got := svc.Text(domain.LangEnglish, "lang", "CONFIRM_USER", map[string]any{"LANG": "KOR"})
	want := "Set to KOR for {WHO}."
	if got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestTextMissingKeyDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	writeTextMap(t, dir, domain.LangEnglish, `{"card": {"USAGE": "u"}}`)

	svc := NewTextMapService(dir, zap.NewNop())

	if got := svc.Text(domain.LangEnglish, "card", "MISSING", nil); got != "" {
		t.Errorf("missing key = %q, want empty", got)
	}
	if got := svc.Text(domain.LangEnglish, "nosection", "USAGE", nil); got != "" {
		t.Errorf("missing section = %q, want empty", got)
	}
}

func TestTextFallsBackToEnglishFile(t *testing.T) {
	dir := t.TempDir()
	writeTextMap(t, dir, domain.LangEnglish, `{"card": {"USAGE": "english usage"}}`)

	svc := NewTextMapService(dir, zap.NewNop())

	if got := svc.Text(domain.LangKorean, "card", "USAGE", nil); got != "english usage" {
		t.Errorf("KOR fallback = %q, want english usage", got)
	}
}

func TestTextMapLoadedOnce(t *testing.T) {
	dir := t.TempDir()
	writeTextMap(t, dir, domain.LangEnglish, `{"card": {"USAGE": "first"}}`)

	svc := NewTextMapService(dir, zap.NewNop())

	if got := svc.Text(domain.LangEnglish, "card", "USAGE", nil); got != "first" {
		t.Fatalf("initial load = %q", got)
	}

	// The cached document survives the file changing underneath.
	writeTextMap(t, dir, domain.LangEnglish, `{"card": {"USAGE": "second"}}`)

	if got := svc.Text(domain.LangEnglish, "card", "USAGE", nil); got != "first" {
		t.Errorf("after rewrite = %q, want cached first", got)
	}
}

func TestTextMissingEverythingDegradesToEmpty(t *testing.T) {
	svc := NewTextMapService(t.TempDir(), zap.NewNop())

	if got := svc.Text(domain.LangEnglish, "card", "USAGE", nil); got != "" {
		t.Errorf("empty dir lookup = %q, want empty", got)
	}
}
