package morph

import (
	"reflect"
	"testing"
)

func TestBaseForms(t *testing.T) {
	e := NewEngine()
	cases := []struct {
		name  string
		word  string
		known []string
		want  []string
	}{
		{"masculine singular", "sogno", []string{"sogno", "sogni"}, []string{"sogni"}},
		{"masculine plural", "sogni", []string{"sogno", "sogni"}, []string{"sogno"}},
		{"velar plural", "parco", []string{"parchi"}, []string{"parchi"}},
		{"velar singular", "parchi", []string{"parco"}, []string{"parco"}},
		{"rules are not exclusive", "parco", []string{"parci", "parchi"}, []string{"parci", "parchi"}},
		{"feminine", "casa", []string{"case"}, []string{"case"}},
		{"e yields i before a", "case", []string{"casa", "casi"}, []string{"casi", "casa"}},
		{"palatal pair deduplicated", "arance", []string{"arancia"}, []string{"arancia"}},
		{"ista class", "turista", []string{"turisti"}, []string{"turisti"}},
		{"io stem", "tizio", []string{"tizi"}, []string{"tizi"}},
		{"short words skip gated rules", "oro", []string{"ori"}, nil},
		{"unattested", "gatto", nil, nil},
		{"irregular", "uomo", []string{"uomini", "uomi"}, []string{"uomini"}},
		{"irregular reverse", "uova", []string{"uovo"}, []string{"uovo"}},
		{"irregular unattested", "dio", []string{"dii"}, nil},
		{"accented vowel is invariant", "città", []string{"citte", "citti"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := e.BaseForms(tc.word, NewKnownSet(tc.known...))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("BaseForms(%q) = %v, want %v", tc.word, got, tc.want)
			}
		})
	}
}

func TestBaseFormsNeverReturnsWord(t *testing.T) {
	e := NewEngine()
	for _, w := range []string{"tizio", "camicia", "amiche", "fiore", "valige"} {
		known := NewKnownSet(append(Candidates(w), w)...)
		for _, f := range e.BaseForms(w, known) {
			if f == w {
				t.Fatalf("BaseForms(%q) contains the word itself", w)
			}
		}
	}
}

func TestCandidatesOrder(t *testing.T) {
	got := Candidates("tizio")
	want := []string{"tizii", "tizi", "tizi"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Candidates(tizio) = %v, want %v", got, want)
	}
}

func TestAddIrregular(t *testing.T) {
	e := NewEngine()
	e.AddIrregular(" Bello ", "BEGLI")
	if got := e.BaseForms("begli", NewKnownSet("bello")); !reflect.DeepEqual(got, []string{"bello"}) {
		t.Fatalf("custom irregular plural = %v", got)
	}
	if form, ok := e.Irregular("bello"); !ok || form != "begli" {
		t.Fatalf("Irregular(bello) = %q, %v", form, ok)
	}
	e.AddIrregular("same", "same")
	if _, ok := e.Irregular("same"); ok {
		t.Fatalf("self-pair should be ignored")
	}
}
