package dreamlog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cognicore/dreamlog/internal/logger"
	"github.com/cognicore/dreamlog/pkg/dreamlog/analytics"
	"github.com/cognicore/dreamlog/pkg/dreamlog/config"
	"github.com/cognicore/dreamlog/pkg/dreamlog/ingest"
	"github.com/cognicore/dreamlog/pkg/dreamlog/internalerr"
	"github.com/cognicore/dreamlog/pkg/dreamlog/journal"
	"github.com/cognicore/dreamlog/pkg/dreamlog/lexicon"
	"github.com/cognicore/dreamlog/pkg/dreamlog/morph"
	"github.com/cognicore/dreamlog/pkg/dreamlog/rank"
	"github.com/cognicore/dreamlog/pkg/dreamlog/render"
	"github.com/cognicore/dreamlog/pkg/dreamlog/scores"
	"github.com/cognicore/dreamlog/pkg/dreamlog/stats"
	"github.com/cognicore/dreamlog/pkg/dreamlog/stoplist"
	"github.com/cognicore/dreamlog/pkg/dreamlog/store"
	"github.com/cognicore/dreamlog/pkg/dreamlog/store/memstore"
)

// Engine is the journal analysis facade
type Engine struct {
	store    store.Store
	pipeline *ingest.Pipeline
	morph    *morph.Engine
	settings config.Settings
	log      *slog.Logger
}

// Options configures an Engine. Nil fields fall back to the built-in
// Italian defaults and an in-memory store.
type Options struct {
	Store      store.Store
	Tokenizer  *ingest.Tokenizer
	Lexicon    *lexicon.Lexicon
	Morphology *morph.Engine
	Settings   config.Settings
}

// New creates an Engine with the given dependencies
func New(opts Options) *Engine {
	if opts.Store == nil {
		opts.Store = memstore.New()
	}
	if opts.Tokenizer == nil {
		opts.Tokenizer = ingest.NewTokenizer(stoplist.Default())
	}
	if opts.Lexicon == nil {
		opts.Lexicon = lexicon.Default()
	}
	if opts.Morphology == nil {
		opts.Morphology = morph.NewEngine()
	}
	return &Engine{
		store:    opts.Store,
		pipeline: ingest.NewPipeline(opts.Tokenizer, opts.Lexicon),
		morph:    opts.Morphology,
		settings: opts.Settings.WithDefaults(),
		log:      logger.WithComponent("engine"),
	}
}

// FromComponents creates an Engine from loaded configuration.
func FromComponents(c *config.Components, st store.Store) *Engine {
	return New(Options{
		Store:      st,
		Tokenizer:  c.Tokenizer,
		Lexicon:    c.Lexicon,
		Morphology: c.Morphology,
		Settings:   c.Settings,
	})
}

// Close cleanly shuts down the Engine
func (e *Engine) Close() error {
	return e.store.Close()
}

// Settings returns the effective settings.
func (e *Engine) Settings() config.Settings {
	return e.settings
}

// Ranking is the outcome of one ranking run.
type Ranking struct {
	Strategy string
	Decimals int
	Entries  []rank.Entry
}

// Corpus counts the text of doc. Generated sections are ignored. The raw
// strategy counts the whole text as one block; the others count each run
// of body paragraphs as a block, tokenizing paragraph by paragraph.
func (e *Engine) Corpus(doc *journal.Document, strategy string) analytics.Corpus {
	clean := doc.StripGenerated()
	a := analytics.NewAnalyzer()
	if strategy == "" || strategy == rank.NameRaw {
		p := e.pipeline.Process(clean.FlatText())
		a.Process(p.Surface, p.Normalized)
	} else {
		for _, block := range clean.Blocks() {
			// paragraphs are tokenized one by one so that comments and
			// stop phrases never span two paragraphs
			var surface, normalized []string
			for _, para := range block {
				p := e.pipeline.Process(para)
				surface = append(surface, p.Surface...)
				normalized = append(normalized, p.Normalized...)
			}
			a.Process(surface, normalized)
		}
	}
	return a.Snapshot()
}

// TopWords ranks the word groups of doc. An empty strategy uses the
// configured one.
func (e *Engine) TopWords(doc *journal.Document, strategy string) (Ranking, error) {
	if strategy == "" {
		strategy = e.settings.Strategy
	}
	s, err := rank.ByName(strategy, e.morph)
	if err != nil {
		return Ranking{}, err
	}
	corpus := e.Corpus(doc, s.Name())
	entries := rank.Top(s, corpus, e.settings.TopN)
	e.log.Debug("ranked", "strategy", s.Name(), "words", len(corpus.Freq), "blocks", corpus.TotalBlocks(), "entries", len(entries))
	return Ranking{Strategy: s.Name(), Decimals: rank.Decimals(s), Entries: entries}, nil
}

// SuggestStopwords proposes words spread over so many dreams that they
// likely carry no meaning for ranking. Zero thresholds use the defaults.
func (e *Engine) SuggestStopwords(doc *journal.Document, t stoplist.Thresholds) []stoplist.Candidate {
	corpus := e.Corpus(doc, rank.NameDistinct)
	return stoplist.Suggest(corpus.StopwordStats(), e.pipeline.Tokenizer().IsStopword, t)
}

// Stoplist returns the stop word matcher in use.
func (e *Engine) Stoplist() *stoplist.Matcher {
	return e.pipeline.Tokenizer().Stoplist()
}

// RenderRanking formats r with the configured display mode.
func (e *Engine) RenderRanking(r Ranking) []string {
	return render.Ranking(r.Entries, e.settings.Display, r.Decimals, e.settings.BarWidth, e.settings.LabelWidth)
}

// AppendTopWords returns a copy of doc whose generated "Frequency" section
// holds the rendered ranking, replacing any previous one.
func (e *Engine) AppendTopWords(doc *journal.Document, strategy string) (*journal.Document, Ranking, error) {
	r, err := e.TopWords(doc, strategy)
	if err != nil {
		return nil, Ranking{}, err
	}
	return doc.WithFrequencySection(e.RenderRanking(r)), r, nil
}

// WordCloud lays out the top words of doc.
func (e *Engine) WordCloud(doc *journal.Document, strategy string) (render.Cloud, error) {
	r, err := e.TopWords(doc, strategy)
	if err != nil {
		return render.Cloud{}, err
	}
	return render.WordCloud(r.Entries, e.settings.Colors), nil
}

// Statistics describes the dream lengths of a journal.
type Statistics struct {
	Summary    stats.Summary
	Thresholds stats.Thresholds
	Histogram  []stats.Bin
}

// Statistics summarizes the estimated line counts of every dream of doc.
func (e *Engine) Statistics(doc *journal.Document) (Statistics, error) {
	lines := stats.DreamLines(doc.StripGenerated(), e.settings.CharsPerLine)
	summary, err := stats.Summarize(lines)
	if err != nil {
		return Statistics{}, err
	}
	t, err := stats.NewThresholds(summary, e.settings.UpperBound)
	if err != nil {
		return Statistics{}, err
	}
	e.log.Debug("statistics", "dreams", summary.Count, "median", summary.Median)
	return Statistics{
		Summary:    summary,
		Thresholds: t,
		Histogram:  stats.Histogram(lines, e.settings.MaxBin),
	}, nil
}

// DayScores scores every day of doc against the thresholds of summary.
func (e *Engine) DayScores(doc *journal.Document, summary stats.Summary) ([]stats.DayScore, stats.Thresholds, error) {
	if summary.Count == 0 {
		return nil, stats.Thresholds{}, fmt.Errorf("day scores: %w", internalerr.ErrStatsUnavailable)
	}
	t, err := stats.NewThresholds(summary, e.settings.UpperBound)
	if err != nil {
		return nil, stats.Thresholds{}, err
	}
	days := doc.StripGenerated().Days()
	out := make([]stats.DayScore, 0, len(days))
	for _, d := range days {
		out = append(out, stats.ScoreDay(d, t, e.settings.CharsPerLine))
	}
	return out, t, nil
}

// UpdateDays returns a copy of doc with the D: value of every day heading
// replaced by the day's computed total.
func (e *Engine) UpdateDays(doc *journal.Document, summary stats.Summary) (*journal.Document, []stats.DayScore, error) {
	out := doc.Clone()
	days, _, err := e.DayScores(out, summary)
	if err != nil {
		return nil, nil, err
	}
	// Day indices refer to the stripped copy; match headings by title in order.
	heads := out.Headings(journal.H1)
	next := 0
	for _, d := range days {
		for next < len(heads) && strings.TrimSpace(out.Paragraphs[heads[next]].Text) != d.Title {
			next++
		}
		if next == len(heads) {
			break
		}
		i := heads[next]
		out.SetText(i, scores.ReplaceD(out.Paragraphs[i].Text, d.Total))
		next++
	}
	return out, days, nil
}

// ScoreTable rewrites the scored headings of a copy of doc to their
// canonical form and tabulates them.
func (e *Engine) ScoreTable(doc *journal.Document, skipLow bool) (scores.Table, error) {
	filled := doc.Clone()
	if n := scores.FillInAll(filled); n > 0 {
		e.log.Debug("filled scores", "headings", n)
	}
	return scores.BuildTable(filled, skipLow)
}

// Archive stores r under a new report ID and returns the ID.
func (e *Engine) Archive(ctx context.Context, source string, r Ranking) (string, error) {
	entries := make([]store.Entry, len(r.Entries))
	for i, en := range r.Entries {
		entries[i] = store.Entry{Key: en.Key, Display: en.Display, Score: en.Score}
	}
	id, err := e.store.SaveReport(ctx, store.Report{
		Strategy: r.Strategy,
		Source:   source,
		Entries:  entries,
	})
	if err != nil {
		return "", fmt.Errorf("archive report: %w", err)
	}
	e.log.Info("report archived", "id", id, "strategy", r.Strategy, "entries", len(entries))
	return id, nil
}

// Reports lists archived reports, newest first.
func (e *Engine) Reports(ctx context.Context, limit int) ([]store.Report, error) {
	return e.store.ListReports(ctx, limit)
}

// RecordDays stores the dated rows of t. Rows whose date does not parse are
// skipped.
func (e *Engine) RecordDays(ctx context.Context, t scores.Table) (int, error) {
	n := 0
	for _, row := range t.Rows {
		at, err := time.Parse(scores.DateLayout, row.Date)
		if err != nil {
			continue
		}
		err = e.store.UpsertDayScore(ctx, store.DayScore{
			Date:   at,
			Dreams: row.Dreams,
			D:      row.D,
			LD:     row.LD,
			Score:  row.Score,
		})
		if err != nil {
			return n, fmt.Errorf("record day %s: %w", row.Date, err)
		}
		n++
	}
	return n, nil
}

// History returns the stored day scores in date order.
func (e *Engine) History(ctx context.Context) ([]store.DayScore, error) {
	return e.store.DayScores(ctx)
}
