package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment key, e.g. CLAUSEWISE_PORT.
const EnvPrefix = "CLAUSEWISE"

// ConfigFileEnv names an optional YAML/JSON/TOML config file.
const ConfigFileEnv = EnvPrefix + "_CONFIG"

type Config struct {
	Port string

	// Auth: bearer token required on /api routes when set.
	APIKey string

	LogLevel string

	// Upload limits
	MaxUploadBytes int64

	// Segmentation
	MaxClauses      int
	MinSectionLen   int
	MinParagraphLen int

	// Documents shorter than this (trimmed characters) are rejected.
	MinDocumentLen int

	// Batch analysis
	MaxConcurrentAnalyze int

	// PDF
	PDFFallbackPdfcpu bool

	// Optional YAML overriding rule tables and the jargon dictionary.
	RulesFile string
}

var defaults = map[string]any{
	"port":                   "8090",
	"api_key":                "",
	"log_level":              "info",
	"max_upload_bytes":       int64(20 << 20), // 20MB
	"max_clauses":            6,
	"min_section_len":        50,
	"min_paragraph_len":      100,
	"min_document_len":       100,
	"max_concurrent_analyze": 4,
	"pdf_fallback_pdfcpu":    true,
	"rules_file":             "",
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	return fromViper(v)
}

// Load reads CLAUSEWISE_* environment variables and, when CLAUSEWISE_CONFIG
// is set, the named config file. Environment wins over the file.
func Load() (Config, error) {
	return LoadFile(os.Getenv(ConfigFileEnv))
}

// LoadFile is Load with an explicit config file; an empty path means none.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}
	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
}

func fromViper(v *viper.Viper) Config {
	cfg := Config{
		Port:                 v.GetString("port"),
		APIKey:               v.GetString("api_key"),
		LogLevel:             strings.ToLower(v.GetString("log_level")),
		MaxUploadBytes:       v.GetInt64("max_upload_bytes"),
		MaxClauses:           v.GetInt("max_clauses"),
		MinSectionLen:        v.GetInt("min_section_len"),
		MinParagraphLen:      v.GetInt("min_paragraph_len"),
		MinDocumentLen:       v.GetInt("min_document_len"),
		MaxConcurrentAnalyze: v.GetInt("max_concurrent_analyze"),
		PDFFallbackPdfcpu:    v.GetBool("pdf_fallback_pdfcpu"),
		RulesFile:            v.GetString("rules_file"),
	}

	if cfg.Port == "" {
		cfg.Port = "8090"
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 20 << 20
	}
	if cfg.MaxClauses <= 0 {
		cfg.MaxClauses = 6
	}
	if cfg.MinSectionLen <= 0 {
		cfg.MinSectionLen = 50
	}
	if cfg.MinParagraphLen <= 0 {
		cfg.MinParagraphLen = 100
	}
	if cfg.MinDocumentLen <= 0 {
		cfg.MinDocumentLen = 100
	}
	if cfg.MaxConcurrentAnalyze <= 0 {
		cfg.MaxConcurrentAnalyze = 4
	}

	return cfg
}

func (c Config) Validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.RulesFile != "" {
		if _, err := os.Stat(c.RulesFile); err != nil {
			return fmt.Errorf("CLAUSEWISE_RULES_FILE: %w", err)
		}
	}
	return nil
}

// SlogLevel maps LogLevel onto slog; unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("CLAUSEWISE_LOG_LEVEL: unknown level %q", s)
	}
}
