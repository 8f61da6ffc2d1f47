package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/CrestNiraj12/speakfeed/domain"
)

// Supported payload sources.
const (
	SourceMastodon = "mastodon"
	SourceBluesky  = "bluesky"
)

// Config holds application-level configuration.
type Config struct {
	TemplatesPath string // YAML file with templates and format options
	Source        string // Payload source: "mastodon" or "bluesky"
	LogLevel      string // debug, info, warn, error
}

// Load reads configuration from environment variables.
//
//	SPEAKFEED_TEMPLATES   templates file (default: ~/.config/speakfeed/templates.yaml)
//	SPEAKFEED_SOURCE      payload source (default: "mastodon")
//	SPEAKFEED_LOG_LEVEL   log level (default: "warn")
func Load() (Config, error) {
	path := os.Getenv("SPEAKFEED_TEMPLATES")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
		}
		path = filepath.Join(home, ".config", "speakfeed", "templates.yaml")
	}

	source, err := ParseSource(os.Getenv("SPEAKFEED_SOURCE"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid SPEAKFEED_SOURCE: %w", err)
	}

	level := strings.TrimSpace(os.Getenv("SPEAKFEED_LOG_LEVEL"))
	if level == "" {
		level = "warn"
	}

	return Config{
		TemplatesPath: path,
		Source:        source,
		LogLevel:      level,
	}, nil
}

// ParseSource normalises a source name. Empty means mastodon.
func ParseSource(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", SourceMastodon:
		return SourceMastodon, nil
	case SourceBluesky, "bsky":
		return SourceBluesky, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownSource, s)
}
