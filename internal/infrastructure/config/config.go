// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for editwars configuration.
	DefaultConfigDir = ".editwars"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultHistoryDBFile is the default history cache database file name.
	DefaultHistoryDBFile = "history.db"
)

var (
	// reNonAlphanumeric matches characters that aren't alphanumeric or underscore.
	reNonAlphanumeric = regexp.MustCompile(`[^a-z0-9_]`)
	// reMultipleUnderscores matches consecutive underscores.
	reMultipleUnderscores = regexp.MustCompile(`_+`)
)

// Config holds static infrastructure configuration (read-only after init).
type Config struct {
	Wikipedia WikipediaConfig `yaml:"wikipedia,omitempty"`
	History   HistoryConfig   `yaml:"history,omitempty"`
	Detection DetectionConfig `yaml:"detection,omitempty"`
}

// WikipediaConfig holds configuration for the MediaWiki API client.
type WikipediaConfig struct {
	// Language selects the wiki, e.g. "en" for en.wikipedia.org.
	Language string `yaml:"language,omitempty"`
	// UserAgent identifies this tool to the API, as its etiquette requires.
	UserAgent string `yaml:"user_agent,omitempty"`
	// TimeoutSeconds bounds each HTTP request.
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`
	// MaxRevisions caps how many revisions one analysis fetches.
	MaxRevisions int `yaml:"max_revisions,omitempty"`
}

// HistoryConfig holds configuration for the local revision-history cache.
type HistoryConfig struct {
	// Path is the file path to the SQLite database. Empty disables caching.
	Path string `yaml:"path,omitempty"`
}

// DetectionConfig holds the detection engine parameters as they appear in the
// config file. Zero values fall back to the engine defaults.
type DetectionConfig struct {
	WindowHours         float64  `yaml:"window_hours,omitempty"`
	MinReverts          int      `yaml:"min_reverts,omitempty"`
	CommentIndicators   []string `yaml:"comment_indicators,omitempty"`
	SizeSimilarityRatio float64  `yaml:"size_similarity_ratio,omitempty"`
	SelfRevertDelta     int      `yaml:"self_revert_delta,omitempty"`
	RequireSizeMatch    bool     `yaml:"require_size_match,omitempty"`
	SlidingWindow       bool     `yaml:"sliding_window,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Wikipedia: WikipediaConfig{
			Language:       "en",
			UserAgent:      "EditWarAnalyzer/1.0 (Educational Research Project)",
			TimeoutSeconds: 30,
			MaxRevisions:   500,
		},
		Detection: DetectionConfig{
			WindowHours: 24,
			MinReverts:  3,
		},
	}
}

// Load loads configuration from the .editwars directory in the given path.
// A missing config file is not an error: defaults apply, so analysis works
// without running init first.
func Load(basePath string) (*Config, error) {
	// A .env next to the config is applied first; existing env wins.
	_ = godotenv.Load(filepath.Join(basePath, ".env"))

	cfg := Default()
	cfg.History.Path = HistoryDBPath(basePath)

	configFile := filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
	data, err := os.ReadFile(configFile)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if lang := os.Getenv("EDITWARS_LANGUAGE"); lang != "" {
		c.Wikipedia.Language = lang
	}
	if agent := os.Getenv("EDITWARS_USER_AGENT"); agent != "" {
		c.Wikipedia.UserAgent = agent
	}
	if timeout := os.Getenv("EDITWARS_TIMEOUT_SECONDS"); timeout != "" {
		if v, err := strconv.Atoi(timeout); err == nil && v > 0 {
			c.Wikipedia.TimeoutSeconds = v
		}
	}
}

// ConfigDir returns the path to the .editwars config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// HistoryDBPath returns the path to the history cache database.
func HistoryDBPath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultHistoryDBFile)
}

// Exists checks if an editwars config exists in the given path.
func Exists(basePath string) bool {
	configFile := filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
	_, err := os.Stat(configFile)
	return err == nil
}

// SanitizeTitle converts a page title to a string safe for file names.
func SanitizeTitle(title string) string {
	// Convert to lowercase
	title = strings.ToLower(title)

	// Replace spaces and hyphens with underscores
	title = strings.ReplaceAll(title, " ", "_")
	title = strings.ReplaceAll(title, "-", "_")

	// Remove any characters that aren't alphanumeric or underscore
	title = reNonAlphanumeric.ReplaceAllString(title, "")

	// Remove consecutive underscores
	title = reMultipleUnderscores.ReplaceAllString(title, "_")

	// Trim leading/trailing underscores
	title = strings.Trim(title, "_")

	if title == "" {
		return "page"
	}

	return title
}
