package morphology

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEvaluate(t *testing.T) {
	m := toyModel(t)
	tokens := []string{"Evler", "evler", "ev", "xyz", "EVDE", "evi", "EVÎ"}
	for _, workers := range []int{1, 3, 0} {
		r, err := Evaluate(m, tokens, workers)
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		if r.Tokens != 7 || r.WordForms != 5 {
			t.Errorf("workers=%d: tokens %d, forms %d", workers, r.Tokens, r.WordForms)
		}
		if r.Accepted != 4 || r.Rejected != 1 {
			t.Errorf("workers=%d: accepted %d, rejected %d", workers, r.Accepted, r.Rejected)
		}
		if !reflect.DeepEqual(r.Unparsed, []string{"xyz"}) {
			t.Errorf("workers=%d: unparsed %q", workers, r.Unparsed)
		}
		// evler, ev, evde: one analysis each; evi: two
		if r.WithProper.Analyses != 5 || r.WithProper.IGs != 5 {
			t.Errorf("workers=%d: with proper %+v", workers, r.WithProper)
		}
		if r.WithoutProper != r.WithProper {
			t.Errorf("workers=%d: without proper %+v", workers, r.WithoutProper)
		}
		if got := r.Coverage(); got != 80 {
			t.Errorf("workers=%d: coverage %v", workers, got)
		}
		if got := r.WithProper.PerWord(r.Accepted); got != 1.25 {
			t.Errorf("workers=%d: per word %v", workers, got)
		}
	}
}

func TestEvaluateEmpty(t *testing.T) {
	r, err := Evaluate(toyModel(t), nil, 2)
	if err != nil {
		t.Fatal(err)
	}
	if r.Coverage() != 0 || r.WithProper.PerAnalysis() != 0 {
		t.Errorf("empty report = %+v", r)
	}
}

func TestReadCoNLLTokens(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "sample.conll"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := ReadCoNLLTokens(f)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Evler", "gelmiş", "ev", "EVDE"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadCoNLLTokens = %q, want %q", got, want)
	}

	if _, err := ReadCoNLLTokens(strings.NewReader("lonely\n")); err == nil {
		t.Error("ReadCoNLLTokens accepted a one-column line")
	}
}

func TestInflectionDistribution(t *testing.T) {
	d, err := InflectionDistribution(toyModel(t), []string{"evler", "evlerde", "evi", "xyz"})
	if err != nil {
		t.Fatal(err)
	}
	want := []FeatureCount{
		{Feature{"Number", "Plur"}, 2},
		{Feature{"Case", "Acc"}, 1},
		{Feature{"Case", "Loc"}, 1},
		{Feature{"Possessive", "P3sg"}, 1},
	}
	if d.Total != 5 || !reflect.DeepEqual(d.Counts, want) {
		t.Errorf("distribution = %d %+v, want 5 %+v", d.Total, d.Counts, want)
	}
	if got := d.Frequency(d.Counts[0]); got != 40 {
		t.Errorf("Frequency(Number=Plur) = %v, want 40", got)
	}

	// the Proper feature is not counted
	d, err = InflectionDistribution(toyModel(t), []string{"Ankara"})
	if err != nil {
		t.Fatal(err)
	}
	if d.Total != 0 || d.Frequency(FeatureCount{}) != 0 {
		t.Errorf("Ankara distribution = %+v", d)
	}
}
