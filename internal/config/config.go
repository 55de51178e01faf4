package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/chu3/chu3-discord-bot-go/internal/constants"
	"github.com/joho/godotenv"
)

type Config struct {
	Discord  DiscordConfig
	Bestdori BestdoriConfig
	Sekai    SekaiConfig
	Settings SettingsConfig
	Logging  LoggingConfig
	Bot      BotConfig
}

type DiscordConfig struct {
	Token string
}

type BestdoriConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SekaiConfig struct {
	MirrorBaseURL string
	AssetBaseURL  string
	Timeout       time.Duration
}

type SettingsConfig struct {
	File       string
	TextMapDir string
}

type LoggingConfig struct {
	Level string
	File  string
}

type BotConfig struct {
	Prefix string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	timeout := time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", int(constants.UpstreamDefaults.HTTPTimeout/time.Second))) * time.Second

	cfg := &Config{
		Discord: DiscordConfig{
			Token: getEnv("DISCORD_TOKEN", ""),
		},
		Bestdori: BestdoriConfig{
			BaseURL: getEnv("BESTDORI_BASE_URL", constants.UpstreamDefaults.BestdoriBaseURL),
			Timeout: timeout,
		},
		Sekai: SekaiConfig{
			MirrorBaseURL: getEnv("SEKAI_MIRROR_BASE_URL", constants.UpstreamDefaults.SekaiMirrorBaseURL),
			AssetBaseURL:  getEnv("SEKAI_ASSET_BASE_URL", constants.UpstreamDefaults.SekaiAssetBaseURL),
			Timeout:       timeout,
		},
		Settings: SettingsConfig{
			File:       getEnv("SETTINGS_FILE", constants.BotDefaults.SettingsFile),
			TextMapDir: getEnv("TEXTMAP_DIR", constants.BotDefaults.TextMapDir),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
		Bot: BotConfig{
			Prefix: getEnv("BOT_PREFIX", constants.BotDefaults.Prefix),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Discord.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.Bestdori.BaseURL == "" {
		return fmt.Errorf("BESTDORI_BASE_URL is required")
	}
	if c.Sekai.MirrorBaseURL == "" {
		return fmt.Errorf("SEKAI_MIRROR_BASE_URL is required")
	}
	if c.Sekai.AssetBaseURL == "" {
		return fmt.Errorf("SEKAI_ASSET_BASE_URL is required")
	}
	if c.Settings.TextMapDir == "" {
		return fmt.Errorf("TEXTMAP_DIR is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
