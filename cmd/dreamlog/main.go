package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/cognicore/dreamlog/internal/logger"
	"github.com/cognicore/dreamlog/pkg/dreamlog"
	"github.com/cognicore/dreamlog/pkg/dreamlog/config"
	"github.com/cognicore/dreamlog/pkg/dreamlog/journal"
	"github.com/cognicore/dreamlog/pkg/dreamlog/render"
	"github.com/cognicore/dreamlog/pkg/dreamlog/scores"
	"github.com/cognicore/dreamlog/pkg/dreamlog/stoplist"
	"github.com/cognicore/dreamlog/pkg/dreamlog/store"
	"github.com/cognicore/dreamlog/pkg/dreamlog/store/sqlite"
)

const usage = `Usage: dreamlog [flags] <command> <journal>

Commands:
  top      rank the most frequent word groups
  cloud    write a word cloud as SVG
  stats    dream length statistics and histogram
  day      score one day (-day N, default the last)
  days     score every day and update the D: values
  table    tabulate the scored day headings
  fill     rewrite scored headings with their totals
  suggest  propose stop words found in most dreams (-out writes a stoplist.yaml)
  history  list archived reports and day scores (no journal needed)

Flags:
`

// options holds the parsed command line.
type options struct {
	configDir string
	dbPath    string
	strategy  string
	display   string
	out       string
	day       int
	skipLow   bool
	archive   bool
	limit     int
	logLevel  string
	logFormat string
	command   string
	journal   string
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("dreamlog", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configDir, "config", env("DREAMLOG_CONFIG", ""), "Directory with stoplist/lexicon/morphology/settings YAML files")
	fs.StringVar(&o.dbPath, "db", env("DREAMLOG_DB", ""), "SQLite archive path (in-memory when empty)")
	fs.StringVar(&o.strategy, "strategy", env("DREAMLOG_STRATEGY", ""), "Ranking strategy: raw, distinct or tfidf")
	fs.StringVar(&o.display, "display", env("DREAMLOG_DISPLAY", ""), "Ranking display: bar or list")
	fs.StringVar(&o.out, "out", "", "Write the updated journal (or SVG) to this path")
	fs.IntVar(&o.day, "day", 0, "Day number for the day command, 1-based (0 = last)")
	fs.BoolVar(&o.skipLow, "skip-low", false, "Leave out days scoring 0.25 or less from the table")
	fs.BoolVar(&o.archive, "archive", false, "Store rankings and day scores in the archive")
	fs.IntVar(&o.limit, "limit", 10, "Number of reports listed by history")
	fs.StringVar(&o.logLevel, "log-level", env("DREAMLOG_LOG_LEVEL", "warn"), "Log level: debug, info, warn, error")
	fs.StringVar(&o.logFormat, "log-format", env("DREAMLOG_LOG_FORMAT", "text"), "Log format: text or json")
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return o, errors.New("command required")
	}
	o.command = rest[0]
	if o.command != "history" {
		if len(rest) < 2 {
			return o, fmt.Errorf("%s: journal path required", o.command)
		}
		o.journal = rest[1]
	}
	return o, nil
}

func main() {
	_ = godotenv.Load()

	o, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
	logger.Setup(o.logLevel, o.logFormat)

	ctx := context.Background()
	engine, cleanup, err := buildEngine(ctx, o)
	if err != nil {
		log.Fatalf("Failed to build engine: %v", err)
	}
	defer cleanup()

	if err := run(ctx, engine, o, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// buildEngine loads configuration, opens the archive and applies flag
// overrides to the settings.
func buildEngine(ctx context.Context, o options) (*dreamlog.Engine, func(), error) {
	loader := &config.Loader{}
	if o.configDir != "" {
		if _, err := os.Stat(o.configDir); err != nil {
			return nil, nil, fmt.Errorf("config dir: %w", err)
		}
		loader = config.DirLoader(o.configDir)
	}
	comp, err := loader.Load()
	if err != nil {
		return nil, nil, err
	}
	if o.strategy != "" {
		comp.Settings.Strategy = o.strategy
	}
	if o.display != "" {
		comp.Settings.Display = o.display
	}
	if o.skipLow {
		comp.Settings.SkipLow = true
	}
	if err := comp.Settings.Validate(); err != nil {
		return nil, nil, err
	}

	var st store.Store
	if o.dbPath != "" {
		st, err = sqlite.OpenSQLite(ctx, o.dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open archive: %w", err)
		}
	}
	engine := dreamlog.FromComponents(comp, st)
	return engine, func() { engine.Close() }, nil
}

func run(ctx context.Context, engine *dreamlog.Engine, o options, stdout io.Writer) error {
	if o.command == "history" {
		return history(ctx, engine, o.limit, stdout)
	}

	doc, err := journal.Load(o.journal)
	if err != nil {
		return fmt.Errorf("load journal: %w", err)
	}

	switch o.command {
	case "top":
		return top(ctx, engine, doc, o, stdout)
	case "cloud":
		cloud, err := engine.WordCloud(doc, "")
		if err != nil {
			return err
		}
		return withOutput(o.out, stdout, cloud.SVG)
	case "stats":
		return statistics(engine, doc, stdout)
	case "day":
		return day(engine, doc, o.day, stdout)
	case "days":
		return days(engine, doc, o.out, stdout)
	case "table":
		return table(ctx, engine, doc, o.archive, stdout)
	case "suggest":
		cands := engine.SuggestStopwords(doc, stoplist.Thresholds{})
		fmt.Fprintln(stdout, render.Title("Stop word candidates"))
		for _, c := range cands {
			fmt.Fprintf(stdout, "%-20s %3d dreams  %5.1f%%\n", c.Token, c.DF, c.DFPercent)
		}
		if o.out == "" {
			return nil
		}
		sl := config.StoplistFrom(engine.Stoplist())
		for _, c := range cands {
			sl.Terms = append(sl.Terms, c.Token)
		}
		if err := sl.Save(o.out); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Stoplist with %d new words written to %s\n", len(cands), o.out)
		return nil
	case "fill":
		filled := doc.Clone()
		n := scores.FillInAll(filled)
		if o.out == "" {
			return filled.WriteText(stdout)
		}
		fmt.Fprintf(stdout, "%d headings updated\n", n)
		return withOutput(o.out, stdout, filled.WriteText)
	}
	return fmt.Errorf("unknown command %q", o.command)
}

// withOutput writes to path, or to stdout when path is empty.
func withOutput(path string, stdout io.Writer, write func(io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func top(ctx context.Context, engine *dreamlog.Engine, doc *journal.Document, o options, stdout io.Writer) error {
	updated, r, err := engine.AppendTopWords(doc, "")
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, render.Title(fmt.Sprintf("Top words (%s)", r.Strategy)))
	for _, line := range engine.RenderRanking(r) {
		fmt.Fprintln(stdout, line)
	}
	if o.archive {
		id, err := engine.Archive(ctx, o.journal, r)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "\nArchived as %s\n", id)
	}
	if o.out != "" {
		return withOutput(o.out, stdout, updated.WriteText)
	}
	return nil
}

func statistics(engine *dreamlog.Engine, doc *journal.Document, stdout io.Writer) error {
	st, err := engine.Statistics(doc)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, render.Title(fmt.Sprintf("Dream length statistics (%d dreams)", st.Summary.Count)))
	fmt.Fprintln(stdout, render.SummaryTable(st.Summary))
	fmt.Fprintf(stdout, "Typical range: %.1f to %.1f lines\n\n", st.Thresholds.Lower, st.Thresholds.Upper)
	fmt.Fprintln(stdout, render.Title("Histogram"))
	for _, line := range render.HistogramText(st.Histogram, engine.Settings().BarWidth) {
		fmt.Fprintln(stdout, line)
	}
	return nil
}

func day(engine *dreamlog.Engine, doc *journal.Document, n int, stdout io.Writer) error {
	st, err := engine.Statistics(doc)
	if err != nil {
		return err
	}
	all, t, err := engine.DayScores(doc, st.Summary)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		return errors.New("journal has no days")
	}
	if n <= 0 {
		n = len(all)
	}
	if n > len(all) {
		return fmt.Errorf("day %d out of range 1..%d", n, len(all))
	}
	d := all[n-1]
	fmt.Fprintln(stdout, render.Title(d.Title))
	for _, line := range render.DayReport(d, t) {
		fmt.Fprintln(stdout, line)
	}
	return nil
}

func days(engine *dreamlog.Engine, doc *journal.Document, out string, stdout io.Writer) error {
	st, err := engine.Statistics(doc)
	if err != nil {
		return err
	}
	updated, scored, err := engine.UpdateDays(doc, st.Summary)
	if err != nil {
		return err
	}
	for _, d := range scored {
		fmt.Fprintf(stdout, "%s → %s\n", d.Title, strconv.FormatFloat(d.Total, 'f', 1, 64))
	}
	if out != "" {
		return withOutput(out, stdout, updated.WriteText)
	}
	return nil
}

func table(ctx context.Context, engine *dreamlog.Engine, doc *journal.Document, archive bool, stdout io.Writer) error {
	t, err := engine.ScoreTable(doc, engine.Settings().SkipLow)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, render.Title("Scores"))
	fmt.Fprintln(stdout, render.ScoreTable(t))
	if len(t.Uncertain) > 0 {
		fmt.Fprintln(stdout, render.Title("Uncertain dates"))
		fmt.Fprintln(stdout, render.UncertainTable(t))
	}
	if archive {
		n, err := engine.RecordDays(ctx, t)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%d days archived\n", n)
	}
	return nil
}

func history(ctx context.Context, engine *dreamlog.Engine, limit int, stdout io.Writer) error {
	reports, err := engine.Reports(ctx, limit)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, render.Title("Reports"))
	for _, r := range reports {
		first := ""
		if len(r.Entries) > 0 {
			first = r.Entries[0].Display
		}
		fmt.Fprintf(stdout, "%s  %s  %-8s  %d groups  %s\n",
			r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Strategy, len(r.Entries), first)
	}

	daysScored, err := engine.History(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, render.Title("Day scores"))
	for _, d := range daysScored {
		fmt.Fprintf(stdout, "%s  dreams %s  score %s\n", store.DateKey(d.Date), render.Comma(d.Dreams), render.Comma(d.Score))
	}
	return nil
}
