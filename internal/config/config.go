// Package config loads CLI settings from flags, environment and an optional
// vaultexport.yaml file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config file lookup and environment prefix.
const (
	FileName  = "vaultexport"
	EnvPrefix = "VAULTEXPORT"
)

// Keys understood in the config file and environment.
const (
	KeyCSVPath         = "csv_path"
	KeyVaultPath       = "vault_path"
	KeyIndexSource     = "index_source"
	KeyCommit          = "commit"
	KeyLogLevel        = "log_level"
	KeyCategoryFolders = "category_folders"
)

// Defaults used when neither flag, environment nor file sets a value.
const (
	DefaultCSVPath   = "THE_RESOURCES_TABLE.csv"
	DefaultVaultPath = "obsidian_export"
	DefaultLogLevel  = "info"
)

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"csv":          KeyCSVPath,
	"vault-path":   KeyVaultPath,
	"index-source": KeyIndexSource,
	"commit":       KeyCommit,
}

// FolderOverride renames the vault folder of one category.
// Listed rather than keyed by category because config keys are case-insensitive.
type FolderOverride struct {
	Category string `mapstructure:"category"`
	Folder   string `mapstructure:"folder"`
}

// Config holds the resolved CLI settings.
type Config struct {
	CSVPath         string
	VaultPath       string
	IndexSource     string
	Commit          bool
	LogLevel        string
	CategoryFolders []FolderOverride
	// File is the config file that was read, empty when none was found.
	File string
}

// New returns a viper instance with the lookup paths, environment binding
// and defaults in place.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", FileName))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyCSVPath, DefaultCSVPath)
	v.SetDefault(KeyVaultPath, DefaultVaultPath)
	v.SetDefault(KeyIndexSource, "")
	v.SetDefault(KeyCommit, false)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
}

// BindFlags binds every known flag present in flags to its config key, so
// an explicitly set flag wins over environment and file.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads the config file, if any, and resolves all keys.
// An explicit file must exist; a missing default file is not an error.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		CSVPath:     v.GetString(KeyCSVPath),
		VaultPath:   v.GetString(KeyVaultPath),
		IndexSource: v.GetString(KeyIndexSource),
		Commit:      v.GetBool(KeyCommit),
		LogLevel:    v.GetString(KeyLogLevel),
		File:        v.ConfigFileUsed(),
	}
	if err := v.UnmarshalKey(KeyCategoryFolders, &cfg.CategoryFolders); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", KeyCategoryFolders, err)
	}
	for i, o := range cfg.CategoryFolders {
		if o.Category == "" || o.Folder == "" {
			return nil, fmt.Errorf("invalid %s entry %d: category and folder are required", KeyCategoryFolders, i+1)
		}
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Level returns the configured log level.
func (c *Config) Level() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

// Folders returns the category folder overrides as a map.
func (c *Config) Folders() map[string]string {
	if len(c.CategoryFolders) == 0 {
		return nil
	}
	out := make(map[string]string, len(c.CategoryFolders))
	for _, o := range c.CategoryFolders {
		out[o.Category] = o.Folder
	}
	return out
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid %s %q: %w", KeyLogLevel, s, err)
	}
	return level, nil
}
