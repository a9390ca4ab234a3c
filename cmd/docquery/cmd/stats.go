package cmd

import (
	"github.com/spf13/cobra"
)

// statsOptions holds CLI flags for stats.
type statsOptions struct {
	corpus string
	format string
	top    int
}

func newStatsCmd() *cobra.Command {
	var opts statsOptions

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate statistics for an analyzed corpus",
		Long: `Analyze the given corpus and print aggregate statistics: document
count, term totals, concept clusters, and the most frequent terms.

Examples:
  docquery stats --corpus ./docs
  docquery stats --corpus corpus.json --top 25 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.corpus, "corpus", "", "Documents file or directory to analyze (required)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")
	cmd.Flags().IntVar(&opts.top, "top", 10, "Number of most frequent terms to show")
	_ = cmd.MarkFlagRequired("corpus")

	return cmd
}

func runStats(cmd *cobra.Command, opts statsOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	docs, err := loadDocuments(opts.corpus)
	if err != nil {
		return err
	}
	if err := engine.AnalyzeCorpus(cmd.Context(), docs); err != nil {
		return err
	}

	return printCorpusStats(cmd, engine, opts.format, opts.top)
}
