package scores

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/cognicore/dreamlog/pkg/dreamlog/internalerr"
	"github.com/cognicore/dreamlog/pkg/dreamlog/journal"
)

func TestParseHeading(t *testing.T) {
	cases := []struct {
		text string
		ok   bool
		want Heading
	}{
		{"Dreams 01/03/2024 - D:1,5 LD:1", true, Heading{Date: "01/03/2024", HasScore: true, D: 1.5, LD: 1, Score: 2.5}},
		{"Dream 02/03/2024 - D:2 LD:0 Score:3", true, Heading{Date: "02/03/2024", HasScore: true, D: 2, Score: 3}},
		{"dreams ??/03/2024 - D:1 LD:0", true, Heading{Date: "??/03/2024", Uncertain: true, HasScore: true, D: 1, Score: 1}},
		{"Dreams 04/03/2024", true, Heading{Date: "04/03/2024"}},
		{"Statistics", false, Heading{}},
		{"Sogni 01/03/2024 - D:1 LD:0", false, Heading{}},
	}
	for _, tc := range cases {
		got, ok := ParseHeading(tc.text)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseHeading(%q) = %+v, %v; want %+v, %v", tc.text, got, ok, tc.want, tc.ok)
		}
	}
}

func TestFillIn(t *testing.T) {
	got, ok := FillIn("Dream 01/03/2024 D:1,5   LD:0.5 Score:9")
	if !ok || got != "Dreams 01/03/2024 - D:1.5 LD:0.5 Score:2" {
		t.Fatalf("FillIn = %q, %v", got, ok)
	}
	got, ok = FillIn("Dreams 01/03/2024 - D:0.1 LD:0.2")
	if !ok || got != "Dreams 01/03/2024 - D:0.1 LD:0.2 Score:0.3" {
		t.Fatalf("FillIn float noise = %q", got)
	}
	if got, ok := FillIn("Dreams 01/03/2024"); ok || got != "Dreams 01/03/2024" {
		t.Fatalf("unscored heading changed: %q", got)
	}
}

func TestReplaceD(t *testing.T) {
	got := ReplaceD("Dreams 01/03/2024 - D:1 LD:2 Score:3", 2.5)
	if got != "Dreams 01/03/2024 - D:2.5 LD:2 Score:3" {
		t.Fatalf("ReplaceD = %q", got)
	}
	if got := ReplaceD("Dreams 01/03/2024", 1); got != "Dreams 01/03/2024" {
		t.Fatalf("ReplaceD without D = %q", got)
	}
}

const journalText = `# Dreams 03/03/2024 - D:2 LD:1
## Uno
testo
## Fragment
# Dreams 01/03/2024 - D:0 LD:0
# Dreams ??/03/2024 - D:1 LD:0
## Tre
testo
# Dreams 29/02/2024 - D:1 LD:0
## Quattro
testo
## Cinque
testo
`

func parse(t *testing.T, s string) *journal.Document {
	t.Helper()
	doc, err := journal.ParseText(strings.NewReader(s))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestBuildTableGapFill(t *testing.T) {
	table, err := BuildTable(parse(t, journalText), false)
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	var dates []string
	for _, r := range table.Rows {
		dates = append(dates, r.Date)
	}
	want := []string{"29/02/2024", "01/03/2024", "02/03/2024", "03/03/2024"}
	if !reflect.DeepEqual(dates, want) {
		t.Fatalf("dates = %v", dates)
	}
	first := table.Rows[0]
	if first.Week != "2024-W09" || first.Month != "February" || first.Dreams != 2 || first.Score != 1 {
		t.Fatalf("first row = %+v", first)
	}
	if gap := table.Rows[2]; gap.Score != 0 || gap.Dreams != 0 || gap.Month != "March" {
		t.Fatalf("gap row = %+v", gap)
	}
	if last := table.Rows[3]; last.Dreams != 1.5 || last.Score != 3 {
		t.Fatalf("last row = %+v", last)
	}
	if len(table.Uncertain) != 1 || table.Uncertain[0].Month != "March" || table.Uncertain[0].Dreams != 1 {
		t.Fatalf("uncertain = %+v", table.Uncertain)
	}
}

func TestBuildTableSkipLow(t *testing.T) {
	table, err := BuildTable(parse(t, journalText), true)
	if err != nil {
		t.Fatal(err)
	}
	var dates []string
	for _, r := range table.Rows {
		dates = append(dates, r.Date)
	}
	if !reflect.DeepEqual(dates, []string{"29/02/2024", "03/03/2024"}) {
		t.Fatalf("dates = %v", dates)
	}
}

func TestBuildTableNoScores(t *testing.T) {
	_, err := BuildTable(parse(t, "# Index\ntesto\n"), false)
	if !errors.Is(err, internalerr.ErrNoScores) {
		t.Fatalf("expected ErrNoScores, got %v", err)
	}
}

func TestFillInAll(t *testing.T) {
	doc := parse(t, "# Dreams 01/03/2024 - D:1 LD:1\n# Dreams 02/03/2024 - D:1 LD:1 Score:2\n# Altro\n")
	if n := FillInAll(doc); n != 1 {
		t.Fatalf("changed = %d", n)
	}
	if doc.Paragraphs[0].Text != "Dreams 01/03/2024 - D:1 LD:1 Score:2" {
		t.Fatalf("heading = %q", doc.Paragraphs[0].Text)
	}
}
