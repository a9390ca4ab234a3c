package expand

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/docuflow/docquery/internal/corpus"
	"github.com/docuflow/docquery/internal/dictionary"
	"github.com/docuflow/docquery/internal/extract"
	"github.com/docuflow/docquery/internal/lang"
)

const (
	// DefaultMaxExpansions bounds ExpandQuery output when the caller does
	// not say otherwise.
	DefaultMaxExpansions = 10

	// DefaultCacheSize is the ExpandQuery memoization cache capacity.
	DefaultCacheSize = 256
)

// Engine is the query expansion facade: it owns the dictionary, the corpus
// index, and the concept extractor, and serializes access to them.
type Engine struct {
	mu        sync.RWMutex
	dict      *dictionary.Store
	index     *corpus.Index
	extractor *extract.Extractor

	maxExpansions int
	cacheSize     int
	cache         *lru.Cache[string, ExpansionResult]

	// generation invalidates cached results: bumped on every dictionary or
	// corpus mutation, and part of every cache key.
	generation uint64
}

// Option configures an Engine.
type Option func(*Engine)

// WithDictionary replaces the default built-in dictionary store.
func WithDictionary(dict *dictionary.Store) Option {
	return func(e *Engine) {
		if dict != nil {
			e.dict = dict
		}
	}
}

// WithMaxExpansions sets the default expansion-term cap.
func WithMaxExpansions(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxExpansions = n
		}
	}
}

// WithCacheSize sets the ExpandQuery cache capacity.
func WithCacheSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.cacheSize = n
		}
	}
}

// WithExtractor replaces the default concept extractor.
func WithExtractor(ex *extract.Extractor) Option {
	return func(e *Engine) {
		if ex != nil {
			e.extractor = ex
		}
	}
}

// NewEngine constructs an engine with built-in dictionaries and an empty
// corpus index.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		dict:          dictionary.NewStore(),
		index:         corpus.NewIndex(),
		extractor:     extract.NewExtractor(),
		maxExpansions: DefaultMaxExpansions,
		cacheSize:     DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(e)
	}
	cache, _ := lru.New[string, ExpansionResult](e.cacheSize)
	e.cache = cache
	return e
}

// ExpandQuery produces expansion terms, ranked query variations, and filter
// suggestions for a search query. maxExpansions <= 0 yields no expansion
// terms; an empty or whitespace-only query yields the all-empty result.
// hint selects the language; lang.Auto detects from the query text.
func (e *Engine) ExpandQuery(query string, maxExpansions int, hint lang.Language) ExpansionResult {
	if strings.TrimSpace(query) == "" {
		return ExpansionResult{OriginalQuery: query}
	}
	if maxExpansions < 0 {
		maxExpansions = 0
	}

	language := lang.Resolve(hint, query)

	e.mu.RLock()
	defer e.mu.RUnlock()

	key := cacheKey(e.generation, language, maxExpansions, query)
	if cached, ok := e.cache.Get(key); ok {
		return cached
	}

	r := &ranker{dict: e.dict, index: e.index}
	terms := r.rank(query, language, maxExpansions)

	result := ExpansionResult{
		OriginalQuery:    query,
		ExpandedTerms:    terms,
		RankedVariations: r.generateVariations(query, language, terms),
		SuggestedFilters: suggestFilters(query, language),
		Language:         language,
	}
	e.cache.Add(key, result)
	return result
}

func cacheKey(generation uint64, language lang.Language, maxExpansions int, query string) string {
	return fmt.Sprintf("%d|%s|%d|%s", generation, language, maxExpansions,
		strings.ToLower(strings.TrimSpace(query)))
}

// AnalyzeCorpus runs concept extraction over the documents in parallel and
// folds the results into the corpus index in input order. Analysis
// accumulates across calls until ResetCorpusAnalysis. Each document is
// analyzed on its title and content together; documents without content
// fall back to the title alone.
func (e *Engine) AnalyzeCorpus(ctx context.Context, docs []Document) error {
	if len(docs) == 0 {
		return nil
	}

	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = documentText(doc)
	}

	// Extraction is pure computation, so it runs outside the lock; only
	// the merge below mutates engine state.
	results := make([]extract.Result, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range texts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = e.extractor.Extract(texts[i], lang.Auto)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range results {
		e.index.AddDocument(texts[i], results[i], e.dict)
	}
	e.generation++
	return nil
}

// documentText joins a document's title and content for analysis, so title
// terms enter corpus frequencies alongside body terms.
func documentText(doc Document) string {
	title := strings.TrimSpace(doc.Title)
	content := strings.TrimSpace(doc.Content)
	switch {
	case content == "":
		return title
	case title == "":
		return content
	default:
		return title + " " + content
	}
}

// CorpusStats returns aggregate corpus figures, or nil when no analysis
// has run.
func (e *Engine) CorpusStats() *CorpusStats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.index.Stats()
}

// MostFrequentTerms returns the top n corpus terms by frequency.
func (e *Engine) MostFrequentTerms(n int) []TermFrequency {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.index.MostFrequentTerms(n)
}

// ResetCorpusAnalysis clears the corpus index back to the unanalyzed state.
func (e *Engine) ResetCorpusAnalysis() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.index.Reset()
	e.generation++
}

// AddSynonymMapping registers a user synonym mapping. The term's language
// is inferred from its script.
func (e *Engine) AddSynonymMapping(term string, expansions []string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dict.AddSynonym(term, expansions)
	e.generation++
}

// AddAcronymMapping registers a user acronym mapping.
func (e *Engine) AddAcronymMapping(acronym string, expansions []string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dict.AddAcronym(acronym, expansions)
	e.generation++
}

// DocumentCount reports how many documents have been analyzed.
func (e *Engine) DocumentCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.index.DocumentCount()
}
