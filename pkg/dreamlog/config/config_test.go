package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/cognicore/dreamlog/pkg/dreamlog/internalerr"
	"github.com/cognicore/dreamlog/pkg/dreamlog/morph"
	"github.com/cognicore/dreamlog/pkg/dreamlog/stats"
	"github.com/cognicore/dreamlog/pkg/dreamlog/stoplist"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoaderAllEmpty(t *testing.T) {
	comp, err := (&Loader{}).Load()
	if err != nil {
		t.Fatalf("Empty loader should succeed: %v", err)
	}
	if comp.Tokenizer == nil || comp.Lexicon == nil || comp.Morphology == nil {
		t.Fatalf("Should have default components: %+v", comp)
	}
	if got := comp.Tokenizer.Tokenize("il gatto nero"); !reflect.DeepEqual(got, []string{"gatto", "nero"}) {
		t.Errorf("default stoplist not applied: %v", got)
	}
	if comp.Lexicon.Normalize("poi") != "dopo" {
		t.Errorf("default equivalences not applied")
	}
	if comp.Settings.TopN != 30 || comp.Settings.CharsPerLine != 95 {
		t.Errorf("default settings not applied: %+v", comp.Settings)
	}
}

func TestLoaderNonExistentStoplist(t *testing.T) {
	loader := Loader{StoplistPath: "/nonexistent/stoplist.yaml"}
	if _, err := loader.Load(); err == nil {
		t.Error("Should error on nonexistent stoplist")
	}
}

func TestStoplistReplaceAndExtend(t *testing.T) {
	dir := t.TempDir()
	replace := writeFile(t, dir, "replace.yaml", "terms: [gatto]\n")
	extend := writeFile(t, dir, "extend.yaml", "extend: true\nterms: [gatto]\nwildcards: [\"ner*\"]\n")

	sl, err := LoadStoplist(replace)
	if err != nil {
		t.Fatalf("LoadStoplist: %v", err)
	}
	comp, err := (&Loader{StoplistPath: replace}).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := comp.Tokenizer.Tokenize("il gatto nero"); !reflect.DeepEqual(got, []string{"il", "nero"}) {
		t.Errorf("replace mode tokens = %v (config %+v)", got, sl)
	}

	comp, err = (&Loader{StoplistPath: extend}).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := comp.Tokenizer.Tokenize("il gatto nero nera"); len(got) != 0 {
		t.Errorf("extend mode tokens = %v", got)
	}
}

func TestLoadMorphology(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "morphology.yaml", "irregular:\n  - singular: bello\n    plural: begli\n")
	comp, err := (&Loader{MorphologyPath: path}).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := comp.Morphology.BaseForms("begli", morph.NewKnownSet("bello")); !reflect.DeepEqual(got, []string{"bello"}) {
		t.Errorf("custom irregular missing: %v", got)
	}
	if got := comp.Morphology.BaseForms("uomo", morph.NewKnownSet("uomini")); len(got) != 1 {
		t.Errorf("built-in irregulars lost: %v", got)
	}

	bad := writeFile(t, dir, "bad.yaml", "irregular:\n  - singular: bello\n")
	if _, err := LoadMorphology(bad); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "settings.yaml", "top_n: 10\nstrategy: tfidf\nupper_bound: mean_sd\nskip_low: true\n")
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.TopN != 10 || s.Strategy != "tfidf" || s.UpperBound != stats.MethodMeanSD || !s.SkipLow {
		t.Errorf("settings = %+v", s)
	}
	if s.BarWidth != 30 || s.LabelWidth != 25 || s.Display != "bar" || len(s.Colors) != 5 {
		t.Errorf("defaults not applied: %+v", s)
	}

	missing, err := LoadSettings(filepath.Join(dir, "none.yaml"))
	if err != nil || !reflect.DeepEqual(missing, DefaultSettings()) {
		t.Errorf("missing settings = %+v, %v", missing, err)
	}

	invalid := writeFile(t, dir, "invalid.yaml", "upper_bound: median_max\n")
	if _, err := LoadSettings(invalid); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestDirLoader(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, LexiconFile, "synonyms:\n  - canonical: sopra\n    variants: [su]\n")
	l := DirLoader(dir)
	if l.LexiconPath == "" || l.StoplistPath != "" || l.SettingsPath != "" {
		t.Fatalf("DirLoader = %+v", l)
	}
	comp, err := l.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if comp.Lexicon.Normalize("su") != "sopra" || comp.Lexicon.Normalize("poi") != "poi" {
		t.Errorf("lexicon file should replace defaults")
	}
}

func TestStoplistKeep(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "stoplist.yaml", "extend: true\nkeep: [visto]\n")

	comp, err := (&Loader{StoplistPath: path}).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !comp.Tokenizer.IsStopword("sono") {
		t.Error("built-in stop words should stay")
	}
	if comp.Tokenizer.IsStopword("visto") {
		t.Error("kept word should no longer be a stop word")
	}
}

func TestStoplistSaveRoundTrip(t *testing.T) {
	m := stoplist.NewMatcher([]string{"gatto", "cane"}, []string{"ner*"}, []string{"rendere conto"})
	path := filepath.Join(t.TempDir(), "stoplist.yaml")
	if err := StoplistFrom(m).Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	sl, err := LoadStoplist(path)
	if err != nil {
		t.Fatalf("LoadStoplist: %v", err)
	}
	want := &Stoplist{
		Terms:     []string{"cane", "gatto"},
		Wildcards: []string{"ner*"},
		Phrases:   []string{"rendere conto"},
	}
	if !reflect.DeepEqual(sl, want) {
		t.Fatalf("loaded = %+v, want %+v", sl, want)
	}
}
