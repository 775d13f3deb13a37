package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cognicore/dreamlog/pkg/dreamlog/ingest"
	"github.com/cognicore/dreamlog/pkg/dreamlog/lexicon"
	"github.com/cognicore/dreamlog/pkg/dreamlog/morph"
	"github.com/cognicore/dreamlog/pkg/dreamlog/stoplist"
)

// File names looked up by DirLoader.
const (
	StoplistFile   = "stoplist.yaml"
	LexiconFile    = "lexicon.yaml"
	MorphologyFile = "morphology.yaml"
	SettingsFile   = "settings.yaml"
)

// Loader loads all configuration files and constructs components
type Loader struct {
	StoplistPath   string
	LexiconPath    string
	MorphologyPath string
	SettingsPath   string
}

// Components holds all loaded configuration components
type Components struct {
	Tokenizer  *ingest.Tokenizer
	Lexicon    *lexicon.Lexicon
	Morphology *morph.Engine
	Settings   Settings
}

// DirLoader returns a loader for the well-known files of dir that exist.
func DirLoader(dir string) *Loader {
	l := &Loader{}
	pick := func(name string) string {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			return ""
		}
		return path
	}
	l.StoplistPath = pick(StoplistFile)
	l.LexiconPath = pick(LexiconFile)
	l.MorphologyPath = pick(MorphologyFile)
	l.SettingsPath = pick(SettingsFile)
	return l
}

// Load reads all configuration files and returns initialized components.
// Unset paths fall back to the built-in Italian defaults.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	// Load stoplist
	if l.StoplistPath != "" {
		sl, err := LoadStoplist(l.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		comp.Tokenizer = ingest.NewTokenizer(sl.Matcher())
	} else {
		comp.Tokenizer = ingest.NewTokenizer(stoplist.Default())
	}

	// Load equivalences
	if l.LexiconPath != "" {
		lex, err := lexicon.LoadFromYAML(l.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
		comp.Lexicon = lex
	} else {
		comp.Lexicon = lexicon.Default()
	}

	// Load irregular forms
	if l.MorphologyPath != "" {
		m, err := LoadMorphology(l.MorphologyPath)
		if err != nil {
			return nil, fmt.Errorf("load morphology: %w", err)
		}
		comp.Morphology = m.Engine()
	} else {
		comp.Morphology = morph.NewEngine()
	}

	// Load settings
	if l.SettingsPath != "" {
		s, err := LoadSettings(l.SettingsPath)
		if err != nil {
			return nil, fmt.Errorf("load settings: %w", err)
		}
		comp.Settings = s
	} else {
		comp.Settings = DefaultSettings()
	}

	return comp, nil
}
