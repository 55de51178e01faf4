package constants

import "time"

const Version = "CHU³-Beta-0.2.0-go"

// Embed accent colors per entity kind.
var EmbedColors = struct {
	Card      int
	Character int
	Gacha     int
	Help      int
}{
	Card:      0x00FF00,
	Character: 0x00AAFF,
	Gacha:     0xFF66FF,
	Help:      0x00FF00,
}

var UpstreamDefaults = struct {
	BestdoriBaseURL    string
	SekaiMirrorBaseURL string
	SekaiAssetBaseURL  string
	HTTPTimeout        time.Duration
}{
	BestdoriBaseURL:    "https://bestdori.com",
	SekaiMirrorBaseURL: "https://raw.githubusercontent.com/Sekai-World",
	SekaiAssetBaseURL:  "https://storage.sekai.best/sekai-jp-assets",
	HTTPTimeout:        15 * time.Second,
}

var BotDefaults = struct {
	Prefix       string
	SettingsFile string
	TextMapDir   string
}{
	Prefix:       "^",
	SettingsFile: "language_settings.json",
	TextMapDir:   "textmaps",
}

// MaxGachaPickups caps how many featured cards a gacha reply lists.
const MaxGachaPickups = 3

// FetchConcurrency bounds parallel upstream calls per invocation.
const FetchConcurrency = 4
