// Package config loads and saves spendview preferences.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
)

// Config holds all spendview configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds data and formatting preferences.
type GeneralConfig struct {
	// CurrencySymbol is the glyph prefixed to formatted amounts.
	CurrencySymbol string `toml:"currency_symbol"`
	// Locale is a BCP 47 tag controlling digit grouping (e.g. "en-IN").
	Locale string `toml:"locale"`
	// DataFile points at a transaction snapshot; empty means the bundled
	// demo dataset.
	DataFile string `toml:"data_file,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		General: GeneralConfig{
			CurrencySymbol: "₹",
			Locale:         "en-IN",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "spendview", "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist,
// then applies environment overrides. A .env file in the working
// directory is honored the same way the environment is.
func Load() (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path())
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	} else if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	_ = godotenv.Load()
	applyEnv(&cfg)
	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := filepath.Dir(Path())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SPENDVIEW_DATA"); v != "" {
		cfg.General.DataFile = v
	}
	if v := os.Getenv("SPENDVIEW_LOCALE"); v != "" {
		cfg.General.Locale = v
	}
	if v := os.Getenv("SPENDVIEW_CURRENCY"); v != "" {
		cfg.General.CurrencySymbol = v
	}
	if v := os.Getenv("SPENDVIEW_THEME"); v != "" {
		cfg.Appearance.Theme = v
	}
}
