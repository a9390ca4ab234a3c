package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/docuflow/docquery/internal/expand"
	"github.com/docuflow/docquery/internal/output"
	"github.com/docuflow/docquery/internal/watcher"
)

// analyzeOptions holds CLI flags for analyze.
type analyzeOptions struct {
	format string
	watch  bool
	top    int
}

func newAnalyzeCmd() *cobra.Command {
	var opts analyzeOptions

	cmd := &cobra.Command{
		Use:   "analyze <path>",
		Short: "Analyze a document corpus and report term statistics",
		Long: `Analyze a corpus of documents (a JSON file or a directory of .txt/.md
files) and report aggregate term statistics. With --watch the corpus is
re-analyzed whenever files change.

Examples:
  docquery analyze ./docs
  docquery analyze corpus.json --top 20
  docquery analyze ./docs --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Re-analyze when files under the path change")
	cmd.Flags().IntVar(&opts.top, "top", 10, "Number of most frequent terms to show")

	return cmd
}

func runAnalyze(cmd *cobra.Command, path string, opts analyzeOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	if err := analyzeOnce(cmd, engine, path, opts); err != nil {
		return err
	}

	if !opts.watch {
		return nil
	}

	debounce, err := time.ParseDuration(cfg.Watch.Debounce)
	if err != nil {
		slog.Warn("invalid_debounce", slog.String("value", cfg.Watch.Debounce))
		debounce = watcher.DefaultOptions().DebounceWindow
	}
	return watchAndReanalyze(cmd, engine, path, opts, debounce)
}

// analyzeOnce loads documents from path and replaces the engine's corpus state.
func analyzeOnce(cmd *cobra.Command, engine *expand.Engine, path string, opts analyzeOptions) error {
	docs, err := loadDocuments(path)
	if err != nil {
		return err
	}

	engine.ResetCorpusAnalysis()
	if err := engine.AnalyzeCorpus(cmd.Context(), docs); err != nil {
		return err
	}
	slog.Info("corpus_analyzed", slog.String("path", path), slog.Int("documents", len(docs)))

	return printCorpusStats(cmd, engine, opts.format, opts.top)
}

func watchAndReanalyze(cmd *cobra.Command, engine *expand.Engine, path string, opts analyzeOptions, debounce time.Duration) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w, err := watcher.New(watcher.Options{
		DebounceWindow: debounce,
		Extensions:     []string{".txt", ".md", ".json"},
	})
	if err != nil {
		return err
	}
	defer w.Stop()

	out := output.NewAuto(cmd.OutOrStdout())
	out.Statusf("👀", "watching %s (Ctrl-C to stop)", path)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case events, ok := <-w.Events():
				if !ok {
					return
				}
				slog.Info("corpus_changed", slog.Int("events", len(events)))
				if err := analyzeOnce(cmd, engine, path, opts); err != nil {
					out.Errorf("re-analysis failed: %v", err)
				}
			case err, ok := <-w.Errors():
				if !ok {
					return
				}
				slog.Warn("watch_error", slog.String("error", err.Error()))
			}
		}
	}()

	return w.Start(ctx, path)
}

// corpusReport is the JSON shape for analyze and stats output.
type corpusReport struct {
	Documents       int                    `json:"documents"`
	TotalTerms      int                    `json:"totalTerms"`
	UniqueTerms     int                    `json:"uniqueTerms"`
	ConceptClusters int                    `json:"conceptClusters"`
	TechnicalTerms  int                    `json:"technicalTerms"`
	FrequentTerms   []expand.TermFrequency `json:"frequentTerms"`
}

func printCorpusStats(cmd *cobra.Command, engine *expand.Engine, format string, top int) error {
	report := corpusReport{
		Documents:     engine.DocumentCount(),
		FrequentTerms: engine.MostFrequentTerms(top),
	}
	if stats := engine.CorpusStats(); stats != nil {
		report.TotalTerms = stats.TotalTerms
		report.UniqueTerms = stats.UniqueTerms
		report.ConceptClusters = stats.ConceptClusters
		report.TechnicalTerms = stats.TechnicalTerms
	}

	if strings.EqualFold(format, "json") {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	out := output.NewAuto(cmd.OutOrStdout())
	out.Header("Corpus statistics")
	out.KeyValue("Documents", report.Documents)
	out.KeyValue("Total terms", report.TotalTerms)
	out.KeyValue("Unique terms", report.UniqueTerms)
	out.KeyValue("Concept clusters", report.ConceptClusters)
	out.KeyValue("Technical terms", report.TechnicalTerms)
	out.Newline()

	if len(report.FrequentTerms) > 0 {
		out.Header("Most frequent terms")
		for _, tf := range report.FrequentTerms {
			out.Item(tf.Term, fmt.Sprintf("%d", tf.Frequency))
		}
	}
	return nil
}
