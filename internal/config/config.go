package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// Config represents the diffrec configuration.
type Config struct {
	ContextLines    int    `json:"contextLines"`
	StripWhitespace bool   `json:"stripWhitespace"`
	Format          string `json:"format"`
	JSONLPath       string `json:"jsonlPath"`
	MaxInputBytes   int    `json:"maxInputBytes"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		ContextLines:  3,
		Format:        "text",
		JSONLPath:     "changes.jsonl",
		MaxInputBytes: 1 << 20,
	}
}

// ConfigDir returns the platform-appropriate config directory for diffrec.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "diffrec"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "diffrec"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "diffrec"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "diffrec"), nil
	default:
		return filepath.Join(home, ".config", "diffrec"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only explicitly set values should be present).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.ContextLines > 0 {
		dst.ContextLines = src.ContextLines
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.JSONLPath != "" {
		dst.JSONLPath = src.JSONLPath
	}
	if src.MaxInputBytes > 0 {
		dst.MaxInputBytes = src.MaxInputBytes
	}
	// Bool fields from file: JSON's zero value for bool is false, so a
	// simple merge cannot distinguish unset from false. Trust the file
	// only when it turns the option on.
	dst.StripWhitespace = src.StripWhitespace || dst.StripWhitespace
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("DIFFREC_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("DIFFREC_CONTEXT_LINES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ContextLines = n
		}
	}
	if v := os.Getenv("DIFFREC_JSONL_PATH"); v != "" {
		cfg.JSONLPath = v
	}
	if v := os.Getenv("DIFFREC_MAX_INPUT_BYTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxInputBytes = n
		}
	}
	if v := os.Getenv("DIFFREC_STRIP_WHITESPACE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.StripWhitespace = b
		}
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
	if v, ok := overrides["contextLines"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.ContextLines = n
		}
	}
	if v, ok := overrides["jsonlPath"]; ok && v != "" {
		cfg.JSONLPath = v
	}
	if v, ok := overrides["maxInputBytes"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxInputBytes = n
		}
	}
	if v, ok := overrides["stripWhitespace"]; ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.StripWhitespace = b
		}
	}
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "format":
		cfg.Format = value
	case "jsonlPath":
		cfg.JSONLPath = value
	case "contextLines":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("contextLines must be an integer: %w", err)
		}
		cfg.ContextLines = n
	case "maxInputBytes":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxInputBytes must be an integer: %w", err)
		}
		cfg.MaxInputBytes = n
	case "stripWhitespace":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("stripWhitespace must be a boolean: %w", err)
		}
		cfg.StripWhitespace = b
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
