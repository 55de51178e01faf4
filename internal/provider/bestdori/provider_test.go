package bestdori

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chu3/chu3-discord-bot-go/internal/domain"
	"github.com/chu3/chu3-discord-bot-go/pkg/errors"
	"go.uber.org/zap"
)

func newTestProvider(t *testing.T, handler http.Handler) *Provider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewProvider(server.URL, 5*time.Second, zap.NewNop())
}

func TestFetchCard(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/cards/404.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"characterId": 1,
			"prefix": ["", "Card Title EN", "", "", ""],
			"resourceSetName": "res001001"
		}`))
	})
	mux.HandleFunc("/api/characters/1.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"characterName": ["戸山香澄", "Toyama Kasumi", "", "", ""]}`))
	})
	mux.HandleFunc("/assets/jp/characters/resourceset/res001001_rip/card_normal.png", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("normal-bytes"))
	})
	mux.HandleFunc("/assets/jp/characters/resourceset/res001001_rip/card_after_training.png", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	entity, err := newTestProvider(t, mux).FetchCard(context.Background(), 404, domain.LangEnglish)
	if err != nil {
		t.Fatalf("FetchCard: %v", err)
	}

	if entity.Kind != domain.EntityCard || entity.ID != 404 {
		t.Errorf("entity identity = %s/%d", entity.Kind, entity.ID)
	}
	if got := domain.SelectLocalized(entity.LocalizedFields["prefix"], domain.LangEnglish); got != "Card Title EN" {
		t.Errorf("prefix = %q", got)
	}
	if got := domain.SelectLocalized(entity.LocalizedFields["characterName"], domain.LangEnglish); got != "Toyama Kasumi" {
		t.Errorf("characterName = %q", got)
	}
	// The trained art 404s; only the normal variant should survive.
	if len(entity.Images) != 1 {
		t.Fatalf("expected 1 image, got %d", len(entity.Images))
	}
	if entity.Images[0].Slot != domain.ImageSlotNormal || string(entity.Images[0].Data) != "normal-bytes" {
		t.Errorf("image = %s (%d bytes)", entity.Images[0].Slot, len(entity.Images[0].Data))
	}
}

func TestFetchCardNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/cards/9999.json", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := newTestProvider(t, mux).FetchCard(context.Background(), 9999, domain.LangEnglish)

	var notFound *errors.NotFoundError
	if !stderrors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.ID != 9999 {
		t.Errorf("NotFoundError.ID = %d", notFound.ID)
	}
}

func TestFetchCardUpstreamFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/cards/5.json", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := newTestProvider(t, mux).FetchCard(context.Background(), 5, domain.LangEnglish)

	var upstream *errors.UpstreamError
	if !stderrors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.StatusCode != http.StatusBadGateway {
		t.Errorf("StatusCode = %d", upstream.StatusCode)
	}
}

func TestFetchCharacter(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/characters/1.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"characterName": ["戸山香澄", "Toyama Kasumi", "", "", ""], "bandId": 1}`))
	})
	mux.HandleFunc("/api/bands/all.1.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"1": {"bandName": ["Poppin'Party", "Poppin'Party", "", "", ""]}}`))
	})
	mux.HandleFunc("/res/icon/character_1.png", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("icon-bytes"))
	})

	entity, err := newTestProvider(t, mux).FetchCharacter(context.Background(), 1, domain.LangJapanese)
	if err != nil {
		t.Fatalf("FetchCharacter: %v", err)
	}

	if got := domain.SelectLocalized(entity.LocalizedFields["bandName"], domain.LangEnglish); got != "Poppin'Party" {
		t.Errorf("bandName = %q", got)
	}
	if img := entity.Image(domain.ImageSlotIcon); string(img) != "icon-bytes" {
		t.Errorf("icon image = %q", img)
	}
}

func TestFetchCharacterBandCollectionMissingIsUpstream(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/characters/1.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"characterName": ["", "Toyama Kasumi", "", "", ""], "bandId": 1}`))
	})
	mux.HandleFunc("/api/bands/all.1.json", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := newTestProvider(t, mux).FetchCharacter(context.Background(), 1, domain.LangEnglish)

	// The character info fetch succeeded; a 404 on the collection must not
	// read as "character not found".
	var notFound *errors.NotFoundError
	if stderrors.As(err, &notFound) {
		t.Fatalf("collection 404 mapped to NotFoundError: %v", err)
	}
	var upstream *errors.UpstreamError
	if !stderrors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
}

func TestFetchCharacterWithoutBand(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/characters/40.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"characterName": ["", "Solo Singer", "", "", ""]}`))
	})
	mux.HandleFunc("/res/icon/character_40.png", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	entity, err := newTestProvider(t, mux).FetchCharacter(context.Background(), 40, domain.LangEnglish)
	if err != nil {
		t.Fatalf("FetchCharacter: %v", err)
	}

	if got := domain.SelectLocalized(entity.LocalizedFields["bandName"], domain.LangEnglish); got != domain.ValueNotAvailable {
		t.Errorf("bandName without band = %q, want N/A", got)
	}
	if len(entity.Images) != 0 {
		t.Errorf("expected no images, got %d", len(entity.Images))
	}
}

func TestFetchGacha(t *testing.T) {
	var bannerPath string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/gacha/1000.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"gachaName": ["", "Dream Festival", "", "", ""],
			"publishedAt": ["", "1700000000000", "", "", ""],
			"closedAt": ["", "not-a-number", "", "", ""],
			"bannerAssetBundleName": "banner_fes"
		}`))
	})
	mux.HandleFunc("/assets/", func(w http.ResponseWriter, r *http.Request) {
		bannerPath = r.URL.Path
		w.Write([]byte("banner-bytes"))
	})

	entity, err := newTestProvider(t, mux).FetchGacha(context.Background(), 1000, domain.LangEnglish)
	if err != nil {
		t.Fatalf("FetchGacha: %v", err)
	}

	if entity.PeriodStart != "2023-11-14 22:13" {
		t.Errorf("PeriodStart = %q", entity.PeriodStart)
	}
	// Unparseable timestamps pass through verbatim.
	if entity.PeriodEnd != "not-a-number" {
		t.Errorf("PeriodEnd = %q", entity.PeriodEnd)
	}
	if bannerPath != "/assets/en/homebanner_rip/banner_fes.png" {
		t.Errorf("banner path = %q", bannerPath)
	}
	if img := entity.Image(domain.ImageSlotBanner); string(img) != "banner-bytes" {
		t.Errorf("banner image = %q", img)
	}
}

func TestFetchGachaEmptyPeriods(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/gacha/3.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"gachaName": ["ガチャ"], "publishedAt": [], "closedAt": []}`))
	})

	entity, err := newTestProvider(t, mux).FetchGacha(context.Background(), 3, domain.LangChineseSimplified)
	if err != nil {
		t.Fatalf("FetchGacha: %v", err)
	}

	if entity.PeriodStart != domain.ValueNotAvailable || entity.PeriodEnd != domain.ValueNotAvailable {
		t.Errorf("periods = %q / %q, want N/A", entity.PeriodStart, entity.PeriodEnd)
	}
	if len(entity.Images) != 0 {
		t.Errorf("expected no banner without asset bundle name, got %d images", len(entity.Images))
	}
}
