package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Columns maps catalog concepts to workbook header names. The defaults
// match the studio's export; other exports can rename headers here.
type Columns struct {
	Collection    string `toml:"collection"`
	ArticleNo     string `toml:"article_no"`
	Description   string `toml:"description"`
	ColorCode     string `toml:"color_code"`
	ColorName     string `toml:"color_name"`
	Category      string `toml:"category"`
	PositionFront string `toml:"position_front"`
	PositionBack  string `toml:"position_back"`
}

// Config holds all startup configuration. Flags override env, env
// overrides the TOML file, the file overrides defaults.
type Config struct {
	WatchDir    string   `toml:"watch_dir"`
	JournalPath string   `toml:"journal_path"`
	Extensions  []string `toml:"extensions"`
	Exiftool    string   `toml:"exiftool"`
	Columns     Columns  `toml:"columns"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		WatchDir:    "~/.cache/shootlist/photos",
		JournalPath: "~/.local/share/shootlist/journal.db",
		Extensions:  []string{".jpg", ".jpeg", ".png", ".tif", ".tiff"},
		Exiftool:    "exiftool",
		Columns: Columns{
			Collection:    "Kollektion",
			ArticleNo:     "ArtikelNr",
			Description:   "Artikelbezeichnung",
			ColorCode:     "Farbe",
			ColorName:     "Farbname",
			Category:      "Artikelart",
			PositionFront: "PosVorne",
			PositionBack:  "PosHinten",
		},
	}
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	return "~/.config/shootlist/config.toml"
}

// Load reads the config file at path (DefaultPath when empty), applies
// SHOOTLIST_* env overrides, and validates. A missing file is not an
// error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	data, err := os.ReadFile(ExpandHome(path))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// fall through to env + defaults
	case err != nil:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if env := os.Getenv("SHOOTLIST_WATCH_DIR"); env != "" {
		c.WatchDir = env
	}
	if env := os.Getenv("SHOOTLIST_JOURNAL"); env != "" {
		c.JournalPath = env
	}
	if env := os.Getenv("SHOOTLIST_EXIFTOOL"); env != "" {
		c.Exiftool = env
	}
}

// Validate checks that every field the session depends on is usable
func (c *Config) Validate() error {
	if c.WatchDir == "" {
		return fmt.Errorf("config: watch_dir must not be empty")
	}
	if c.JournalPath == "" {
		return fmt.Errorf("config: journal_path must not be empty")
	}
	if c.Exiftool == "" {
		return fmt.Errorf("config: exiftool must not be empty")
	}
	if len(c.Extensions) == 0 {
		return fmt.Errorf("config: extensions must not be empty")
	}
	for _, ext := range c.Extensions {
		if len(ext) < 2 || ext[0] != '.' {
			return fmt.Errorf("config: extension %q must start with a dot", ext)
		}
	}
	cols := map[string]string{
		"columns.article_no":     c.Columns.ArticleNo,
		"columns.description":    c.Columns.Description,
		"columns.color_code":     c.Columns.ColorCode,
		"columns.position_front": c.Columns.PositionFront,
		"columns.position_back":  c.Columns.PositionBack,
	}
	for name, v := range cols {
		if v == "" {
			return fmt.Errorf("config: %s must not be empty", name)
		}
	}
	return nil
}

// ExpandHome resolves a leading ~ against the user's home directory
func ExpandHome(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
