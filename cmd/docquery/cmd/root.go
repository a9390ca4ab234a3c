// Package cmd provides the CLI commands for docquery.
package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/docuflow/docquery/internal/config"
	"github.com/docuflow/docquery/internal/dictionary"
	"github.com/docuflow/docquery/internal/expand"
	"github.com/docuflow/docquery/internal/extract"
	"github.com/docuflow/docquery/internal/logging"
	"github.com/docuflow/docquery/pkg/version"
)

var (
	configDir      string
	debugMode      bool
	loggingCleanup func()
)

// NewRootCmd creates the root command for the docquery CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docquery",
		Short: "Query expansion and concept extraction for document search",
		Long: `docquery expands document-management search queries with synonyms,
acronym definitions, and corpus-derived terms, in English and Arabic.

Analyze a document corpus once, then expand queries against it:

  docquery analyze ./docs
  docquery expand "find server document"`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetVersionTemplate("docquery version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory to load .docquery.yaml from")
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to ~/.docquery/logs/")

	cmd.PersistentPreRunE = setupLogging
	cmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		if loggingCleanup != nil {
			loggingCleanup()
			loggingCleanup = nil
		}
	}

	cmd.AddCommand(newExpandCmd())
	cmd.AddCommand(newAnalyzeCmd())
	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setupLogging installs the default slog logger from config plus flags.
func setupLogging(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	logCfg.FilePath = cfg.Logging.File
	if debugMode {
		logCfg.Level = "debug"
		if logCfg.FilePath == "" {
			logCfg.FilePath = logging.DefaultLogPath()
		}
	}
	logCfg.WriteToStderr = false

	cleanup, err := logging.SetupDefault(logCfg)
	if err != nil {
		return err
	}
	loggingCleanup = cleanup
	return nil
}

// loadConfig loads the effective configuration for this invocation.
func loadConfig() (*config.Config, error) {
	return config.Load(configDir)
}

// buildEngine constructs an expansion engine from configuration, including
// user dictionaries.
func buildEngine(cfg *config.Config) (*expand.Engine, error) {
	store := dictionary.NewStore()
	if err := cfg.ApplyDictionaries(store); err != nil {
		return nil, err
	}

	extractor := extract.NewExtractor(
		extract.WithTopKeywords(cfg.Engine.TopKeywords),
		extract.WithMaxTopics(cfg.Engine.MaxTopics),
	)

	engine := expand.NewEngine(
		expand.WithDictionary(store),
		expand.WithExtractor(extractor),
		expand.WithMaxExpansions(cfg.Engine.MaxExpansions),
		expand.WithCacheSize(cfg.Engine.CacheSize),
	)

	slog.Debug("engine_ready",
		slog.Int("max_expansions", cfg.Engine.MaxExpansions),
		slog.String("default_language", cfg.Engine.DefaultLanguage))
	return engine, nil
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
