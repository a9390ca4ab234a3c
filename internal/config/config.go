package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/docuflow/docquery/internal/dictionary"
	dqerrors "github.com/docuflow/docquery/internal/errors"
)

// Config is the complete docquery configuration.
type Config struct {
	Version      int                `yaml:"version" json:"version"`
	Engine       EngineConfig       `yaml:"engine" json:"engine"`
	Logging      LoggingConfig      `yaml:"logging" json:"logging"`
	Dictionaries DictionariesConfig `yaml:"dictionaries" json:"dictionaries"`
	Watch        WatchConfig        `yaml:"watch" json:"watch"`
}

// EngineConfig tunes the expansion engine.
// Values are overridable via:
//  1. Project config (.docquery.yaml) - per-repo tuning
//  2. Env vars (DOCQUERY_MAX_EXPANSIONS, DOCQUERY_LANGUAGE, ...) - highest priority
type EngineConfig struct {
	// MaxExpansions caps the number of expansion terms per query.
	MaxExpansions int `yaml:"max_expansions" json:"max_expansions"`

	// CacheSize is the capacity of the query-result memoization cache.
	CacheSize int `yaml:"cache_size" json:"cache_size"`

	// TopKeywords is how many keywords concept extraction keeps per document.
	TopKeywords int `yaml:"top_keywords" json:"top_keywords"`

	// MaxTopics caps topic clusters per document.
	MaxTopics int `yaml:"max_topics" json:"max_topics"`

	// DefaultLanguage is "en", "ar", or "auto".
	DefaultLanguage string `yaml:"default_language" json:"default_language"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" json:"level"`

	// Format is "text" or "json".
	Format string `yaml:"format" json:"format"`

	// File is an optional log destination; empty logs to stderr.
	File string `yaml:"file" json:"file"`
}

// DictionariesConfig names user synonym/acronym sources merged into the
// built-in dictionary at startup. Files are YAML maps of term to expansion
// list; inline entries live directly in the config.
type DictionariesConfig struct {
	SynonymFiles []string `yaml:"synonym_files" json:"synonym_files"`
	AcronymFiles []string `yaml:"acronym_files" json:"acronym_files"`

	Synonyms map[string][]string `yaml:"synonyms" json:"synonyms"`
	Acronyms map[string][]string `yaml:"acronyms" json:"acronyms"`
}

// WatchConfig configures corpus re-analysis on file changes.
type WatchConfig struct {
	// Debounce is how long to coalesce change events, e.g. "500ms".
	Debounce string `yaml:"debounce" json:"debounce"`
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return &Config{
		Version: 1,
		Engine: EngineConfig{
			MaxExpansions:   10,
			CacheSize:       256,
			TopKeywords:     15,
			MaxTopics:       8,
			DefaultLanguage: "auto",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Watch: WatchConfig{
			Debounce: "500ms",
		},
	}
}

// Load builds the effective configuration for a directory: defaults, then
// the project config file, then environment variable overrides.
func Load(dir string) (*Config, error) {
	cfg := NewConfig()

	if err := cfg.loadFromFile(dir); err != nil {
		return nil, err
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, dqerrors.ConfigError(err.Error(), err)
	}

	return cfg, nil
}

// loadFromFile attempts to load configuration from .docquery.yaml or
// .docquery.yml. A missing file is fine; defaults apply.
func (c *Config) loadFromFile(dir string) error {
	for _, name := range []string{".docquery.yaml", ".docquery.yml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return c.loadYAML(path)
		}
	}
	return nil
}

// loadYAML loads and merges configuration from a YAML file.
func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return dqerrors.Wrap(dqerrors.ErrCodeFileUnreadable, err).
			WithDetail("path", path)
	}

	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return dqerrors.ConfigError(fmt.Sprintf("failed to parse %s: %v", path, err), err).
			WithDetail("path", path)
	}

	c.mergeWith(&parsed)
	return nil
}

// mergeWith merges non-zero values from other into c.
func (c *Config) mergeWith(other *Config) {
	if other.Version != 0 {
		c.Version = other.Version
	}

	if other.Engine.MaxExpansions != 0 {
		c.Engine.MaxExpansions = other.Engine.MaxExpansions
	}
	if other.Engine.CacheSize != 0 {
		c.Engine.CacheSize = other.Engine.CacheSize
	}
	if other.Engine.TopKeywords != 0 {
		c.Engine.TopKeywords = other.Engine.TopKeywords
	}
	if other.Engine.MaxTopics != 0 {
		c.Engine.MaxTopics = other.Engine.MaxTopics
	}
	if other.Engine.DefaultLanguage != "" {
		c.Engine.DefaultLanguage = other.Engine.DefaultLanguage
	}

	if other.Logging.Level != "" {
		c.Logging.Level = other.Logging.Level
	}
	if other.Logging.Format != "" {
		c.Logging.Format = other.Logging.Format
	}
	if other.Logging.File != "" {
		c.Logging.File = other.Logging.File
	}

	if len(other.Dictionaries.SynonymFiles) > 0 {
		c.Dictionaries.SynonymFiles = append(c.Dictionaries.SynonymFiles, other.Dictionaries.SynonymFiles...)
	}
	if len(other.Dictionaries.AcronymFiles) > 0 {
		c.Dictionaries.AcronymFiles = append(c.Dictionaries.AcronymFiles, other.Dictionaries.AcronymFiles...)
	}
	if len(other.Dictionaries.Synonyms) > 0 {
		if c.Dictionaries.Synonyms == nil {
			c.Dictionaries.Synonyms = map[string][]string{}
		}
		for term, expansions := range other.Dictionaries.Synonyms {
			c.Dictionaries.Synonyms[term] = expansions
		}
	}
	if len(other.Dictionaries.Acronyms) > 0 {
		if c.Dictionaries.Acronyms == nil {
			c.Dictionaries.Acronyms = map[string][]string{}
		}
		for term, expansions := range other.Dictionaries.Acronyms {
			c.Dictionaries.Acronyms[term] = expansions
		}
	}

	if other.Watch.Debounce != "" {
		c.Watch.Debounce = other.Watch.Debounce
	}
}

// applyEnvOverrides applies DOCQUERY_* environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("DOCQUERY_MAX_EXPANSIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Engine.MaxExpansions = n
		}
	}
	if v := os.Getenv("DOCQUERY_CACHE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Engine.CacheSize = n
		}
	}
	if v := os.Getenv("DOCQUERY_LANGUAGE"); v != "" {
		c.Engine.DefaultLanguage = strings.ToLower(v)
	}
	if v := os.Getenv("DOCQUERY_LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("DOCQUERY_LOG_FORMAT"); v != "" {
		c.Logging.Format = strings.ToLower(v)
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.Engine.MaxExpansions < 1 {
		return fmt.Errorf("engine.max_expansions must be positive, got %d", c.Engine.MaxExpansions)
	}
	if c.Engine.CacheSize < 1 {
		return fmt.Errorf("engine.cache_size must be positive, got %d", c.Engine.CacheSize)
	}
	if c.Engine.TopKeywords < 1 {
		return fmt.Errorf("engine.top_keywords must be positive, got %d", c.Engine.TopKeywords)
	}
	if c.Engine.MaxTopics < 1 {
		return fmt.Errorf("engine.max_topics must be positive, got %d", c.Engine.MaxTopics)
	}

	validLanguages := map[string]bool{"en": true, "ar": true, "auto": true}
	if !validLanguages[strings.ToLower(c.Engine.DefaultLanguage)] {
		return fmt.Errorf("engine.default_language must be 'en', 'ar', or 'auto', got %s", c.Engine.DefaultLanguage)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("logging.level must be 'debug', 'info', 'warn', or 'error', got %s", c.Logging.Level)
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		return fmt.Errorf("logging.format must be 'text' or 'json', got %s", c.Logging.Format)
	}

	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return dqerrors.InternalError("failed to marshal config", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return dqerrors.Wrap(dqerrors.ErrCodeFileUnreadable, err).WithDetail("path", path)
	}
	return nil
}

// ApplyDictionaries merges configured user mappings into the store: first
// dictionary files, then inline entries (inline wins on key collisions).
func (c *Config) ApplyDictionaries(store *dictionary.Store) error {
	for _, path := range c.Dictionaries.SynonymFiles {
		if err := applyDictionaryFile(path, store.AddSynonym); err != nil {
			return err
		}
	}
	for _, path := range c.Dictionaries.AcronymFiles {
		if err := applyDictionaryFile(path, store.AddAcronym); err != nil {
			return err
		}
	}
	for term, expansions := range c.Dictionaries.Synonyms {
		store.AddSynonym(term, expansions)
	}
	for term, expansions := range c.Dictionaries.Acronyms {
		store.AddAcronym(term, expansions)
	}
	return nil
}

// applyDictionaryFile reads a YAML map of term -> expansions and feeds every
// entry through add.
func applyDictionaryFile(path string, add func(string, []string)) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return dqerrors.New(dqerrors.ErrCodeDictionaryFile,
			fmt.Sprintf("cannot read dictionary file %s", path), err).
			WithSuggestion("check dictionaries paths in .docquery.yaml")
	}

	var entries map[string][]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return dqerrors.New(dqerrors.ErrCodeDictionaryFile,
			fmt.Sprintf("invalid dictionary file %s: %v", path, err), err)
	}

	for term, expansions := range entries {
		add(term, expansions)
	}
	return nil
}
