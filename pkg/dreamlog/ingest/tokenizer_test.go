package ingest

import (
	"reflect"
	"testing"

	"github.com/cognicore/dreamlog/pkg/dreamlog/lexicon"
	"github.com/cognicore/dreamlog/pkg/dreamlog/stoplist"
)

func TestTokenizeDefaults(t *testing.T) {
	tok := NewTokenizer(stoplist.Default())

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "comment and stop verb removed",
			input: "Ho visto {nota: skip this} un cane nel parco.",
			want:  []string{"cane", "parco"},
		},
		{
			name:  "stop phrase removed before punctuation",
			input: "Mi rendo conto che il gatto dorme",
			want:  []string{"gatto", "dorme"},
		},
		{
			name:  "quotes dashes and apostrophes split words",
			input: "«L’albero» — disse—Marco…",
			want:  []string{"albero", "disse", "marco"},
		},
		{
			name:  "duplicates and order preserved",
			input: "Sogno, sogno; SOGNI!",
			want:  []string{"sogno", "sogno", "sogni"},
		},
		{
			name:  "short tokens dropped",
			input: "x y zz",
			want:  []string{"zz"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q)\n  got  %v\n  want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenizeBracesAreNonGreedy(t *testing.T) {
	tok := NewTokenizer(nil)

	got := tok.Tokenize("alfa {uno} beta {due} gamma")
	want := []string{"alfa", "beta", "gamma"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// an unmatched brace is only turned into a space
	got = tok.Tokenize("alfa {beta gamma")
	want = []string{"alfa", "beta", "gamma"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizePhraseNeedsExactSpelling(t *testing.T) {
	tok := NewTokenizer(stoplist.NewMatcher(nil, nil, []string{"rendo conto"}))

	if got := tok.Tokenize("Rendo Conto dei soldi"); !reflect.DeepEqual(got, []string{"dei", "soldi"}) {
		t.Errorf("phrase should be removed case-insensitively, got %v", got)
	}
	if got := tok.Tokenize("rendo, conto dei soldi"); !reflect.DeepEqual(got, []string{"rendo", "conto", "dei", "soldi"}) {
		t.Errorf("phrase broken by punctuation should survive, got %v", got)
	}
}

func TestTokenizeComposesAccents(t *testing.T) {
	tok := NewTokenizer(nil)

	// "caffè" written with a combining grave accent
	got := tok.Tokenize("caffe\u0300")
	if len(got) != 1 || got[0] != "caffè" {
		t.Errorf("got %q, want [caffè]", got)
	}
}

func TestPipelineNormalizes(t *testing.T) {
	p := NewPipeline(NewTokenizer(stoplist.NewMatcher([]string{"il"}, nil, nil)), lexicon.Default())

	out := p.Process("Il retro della casa, precedentemente")
	wantSurface := []string{"retro", "della", "casa", "precedentemente"}
	wantNorm := []string{"dietro", "della", "casa", "prima"}

	if !reflect.DeepEqual(out.Surface, wantSurface) {
		t.Errorf("Surface = %v, want %v", out.Surface, wantSurface)
	}
	if !reflect.DeepEqual(out.Normalized, wantNorm) {
		t.Errorf("Normalized = %v, want %v", out.Normalized, wantNorm)
	}
	if p.Tokenizer() == nil {
		t.Error("Tokenizer() should not be nil")
	}
}
