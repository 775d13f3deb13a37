package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/dreamlog/pkg/dreamlog/internalerr"
	"github.com/cognicore/dreamlog/pkg/dreamlog/morph"
	"github.com/cognicore/dreamlog/pkg/dreamlog/rank"
	"github.com/cognicore/dreamlog/pkg/dreamlog/render"
	"github.com/cognicore/dreamlog/pkg/dreamlog/stats"
	"github.com/cognicore/dreamlog/pkg/dreamlog/stoplist"
)

// Stoplist represents the stop word configuration
type Stoplist struct {
	Terms     []string `yaml:"terms"`
	Wildcards []string `yaml:"wildcards"`
	Phrases   []string `yaml:"phrases"`
	// Extend adds the lists to the built-in ones instead of replacing them.
	Extend bool `yaml:"extend"`
	// Keep lists exact words that stay meaningful even though a list above
	// (or the built-in one) stops them.
	Keep []string `yaml:"keep,omitempty"`
}

// LoadStoplist loads stop words from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}

	return &sl, nil
}

// Matcher builds the stop word matcher described by s.
func (s *Stoplist) Matcher() *stoplist.Matcher {
	var m *stoplist.Matcher
	if s.Extend {
		m = stoplist.Default()
		for _, t := range s.Terms {
			m.Add(t)
		}
		for _, w := range s.Wildcards {
			m.AddWildcard(w)
		}
		for _, p := range s.Phrases {
			m.AddPhrase(p)
		}
	} else {
		m = stoplist.NewMatcher(s.Terms, s.Wildcards, s.Phrases)
	}
	for _, k := range s.Keep {
		m.Remove(k)
	}
	return m
}

// StoplistFrom captures the full contents of m in replace mode.
func StoplistFrom(m *stoplist.Matcher) *Stoplist {
	return &Stoplist{
		Terms:     m.All(),
		Wildcards: m.Wildcards(),
		Phrases:   m.Phrases(),
	}
}

// Save writes s as YAML to path.
func (s *Stoplist) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// IrregularPair is a singular/plural couple no suffix rule derives.
type IrregularPair struct {
	Singular string `yaml:"singular"`
	Plural   string `yaml:"plural"`
}

// Morphology represents additional morphology data
type Morphology struct {
	Irregular []IrregularPair `yaml:"irregular"`
}

// LoadMorphology loads irregular forms from a YAML file
func LoadMorphology(path string) (*Morphology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Morphology
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	for i, p := range m.Irregular {
		if strings.TrimSpace(p.Singular) == "" || strings.TrimSpace(p.Plural) == "" {
			return nil, fmt.Errorf("irregular pair %d is incomplete: %w", i, internalerr.ErrInvalidConfig)
		}
	}

	return &m, nil
}

// Engine returns the default morphology engine extended with m.
func (m *Morphology) Engine() *morph.Engine {
	e := morph.NewEngine()
	for _, p := range m.Irregular {
		e.AddIrregular(p.Singular, p.Plural)
	}
	return e
}

// Settings tune rankings, statistics and rendering.
type Settings struct {
	TopN         int      `yaml:"top_n"`
	Strategy     string   `yaml:"strategy"`
	Display      string   `yaml:"display"`
	BarWidth     int      `yaml:"bar_width"`
	LabelWidth   int      `yaml:"label_width"`
	CharsPerLine int      `yaml:"chars_per_line"`
	UpperBound   string   `yaml:"upper_bound"`
	MaxBin       int      `yaml:"max_bin"`
	SkipLow      bool     `yaml:"skip_low"`
	Colors       []string `yaml:"colors"`
}

// DefaultSettings returns the settings used when no file is given.
func DefaultSettings() Settings {
	s := Settings{}
	applySettingsDefaults(&s)
	return s
}

// LoadSettings reads settings from path. A missing file yields the defaults.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}
	applySettingsDefaults(&s)
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// WithDefaults returns s with every unset field defaulted.
func (s Settings) WithDefaults() Settings {
	s.Colors = append([]string(nil), s.Colors...)
	applySettingsDefaults(&s)
	return s
}

func applySettingsDefaults(s *Settings) {
	if s.TopN <= 0 {
		s.TopN = rank.DefaultLimit
	}
	if s.Strategy == "" {
		s.Strategy = rank.NameRaw
	}
	if s.Display == "" {
		s.Display = render.ModeBar
	}
	if s.BarWidth <= 0 {
		s.BarWidth = render.DefaultBarWidth
	}
	if s.LabelWidth <= 0 {
		s.LabelWidth = render.DefaultLabelWidth
	}
	if s.CharsPerLine <= 0 {
		s.CharsPerLine = stats.DefaultCharsPerLine
	}
	if s.UpperBound == "" {
		s.UpperBound = stats.MethodMedianIQR
	}
	if s.MaxBin <= 0 {
		s.MaxBin = stats.DefaultMaxBin
	}
	if len(s.Colors) == 0 {
		s.Colors = append([]string(nil), render.DefaultColors...)
	}
}

// Validate checks the enumerated settings.
func (s Settings) Validate() error {
	switch s.Strategy {
	case rank.NameRaw, rank.NameDistinct, rank.NameTFIDF:
	default:
		return fmt.Errorf("strategy %q: %w", s.Strategy, internalerr.ErrInvalidConfig)
	}
	switch s.Display {
	case render.ModeBar, render.ModeList:
	default:
		return fmt.Errorf("display %q: %w", s.Display, internalerr.ErrInvalidConfig)
	}
	switch s.UpperBound {
	case stats.MethodMedianIQR, stats.MethodMedianScaledMAD, stats.MethodMeanSD:
	default:
		return fmt.Errorf("upper_bound %q: %w", s.UpperBound, internalerr.ErrInvalidConfig)
	}
	return nil
}
