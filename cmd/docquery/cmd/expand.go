package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	dqerrors "github.com/docuflow/docquery/internal/errors"
	"github.com/docuflow/docquery/internal/expand"
	"github.com/docuflow/docquery/internal/lang"
	"github.com/docuflow/docquery/internal/output"
)

// expandOptions holds CLI flags for expand.
type expandOptions struct {
	max      int
	language string
	format   string
	corpus   string
}

func newExpandCmd() *cobra.Command {
	var opts expandOptions

	cmd := &cobra.Command{
		Use:   "expand <query>",
		Short: "Expand a search query with synonyms, acronyms, and corpus terms",
		Long: `Expand a search query into related terms, rewritten query variations,
and suggested structured filters.

Examples:
  docquery expand "find server document"
  docquery expand "API documentation" -n 5
  docquery expand "مستند نظام" -l ar
  docquery expand "security" --corpus ./docs --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return runExpand(cmd, query, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.max, "max", "n", 0, "Maximum expansion terms (default from config)")
	cmd.Flags().StringVarP(&opts.language, "language", "l", "", "Query language: en, ar, auto (default from config)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")
	cmd.Flags().StringVar(&opts.corpus, "corpus", "", "Documents file or directory to analyze before expanding")

	return cmd
}

func runExpand(cmd *cobra.Command, query string, opts expandOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	if opts.max <= 0 {
		opts.max = cfg.Engine.MaxExpansions
	}
	if opts.language == "" {
		opts.language = cfg.Engine.DefaultLanguage
	}
	hint, err := parseLanguage(opts.language)
	if err != nil {
		return err
	}

	if opts.corpus != "" {
		docs, err := loadDocuments(opts.corpus)
		if err != nil {
			return err
		}
		if err := engine.AnalyzeCorpus(cmd.Context(), docs); err != nil {
			return err
		}
		slog.Info("corpus_analyzed", slog.Int("documents", len(docs)))
	}

	slog.Info("expand_started", slog.String("query", query), slog.Int("max", opts.max))
	result := engine.ExpandQuery(query, opts.max, hint)

	if strings.EqualFold(opts.format, "json") {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printExpansion(output.NewAuto(cmd.OutOrStdout()), result)
	return nil
}

func printExpansion(out *output.Writer, result expand.ExpansionResult) {
	out.Statusf("🔍", "%s (language: %s)", result.OriginalQuery, result.Language)
	out.Newline()

	out.Header("Expanded terms")
	if len(result.ExpandedTerms) == 0 {
		out.Status("", "none")
	}
	for _, term := range result.ExpandedTerms {
		annotation := fmt.Sprintf("%s, %s, %.2f", term.Type, term.Source, term.Confidence)
		if term.Frequency > 0 {
			annotation += fmt.Sprintf(", freq %d", term.Frequency)
		}
		out.Item(term.Term, annotation)
	}
	out.Newline()

	if len(result.RankedVariations) > 0 {
		out.Header("Variations")
		for _, v := range result.RankedVariations {
			out.Item(v.Text, fmt.Sprintf("%.2f, %s", v.Score, v.Explanation))
		}
		out.Newline()
	}

	if len(result.SuggestedFilters) > 0 {
		out.Header("Suggested filters")
		for _, f := range result.SuggestedFilters {
			out.Item(fmt.Sprintf("%s: %s", f.Type, f.Value), "")
		}
		out.Newline()
	}
}

// parseLanguage validates a language flag value.
func parseLanguage(value string) (lang.Language, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return lang.Auto, nil
	case "en":
		return lang.English, nil
	case "ar":
		return lang.Arabic, nil
	default:
		return lang.Auto, dqerrors.New(dqerrors.ErrCodeInvalidLanguage,
			fmt.Sprintf("unsupported language %q", value), nil).
			WithSuggestion("use en, ar, or auto")
	}
}
