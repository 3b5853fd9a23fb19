package morphology

import (
	"bufio"
	"io"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// AnalysisCount totals the analyses and inflectional groups produced for
// the accepted word forms.
type AnalysisCount struct {
	Analyses int
	IGs      int
}

// PerWord is the mean number of analyses per accepted word form.
func (c AnalysisCount) PerWord(accepted int) float64 {
	if accepted == 0 {
		return 0
	}
	return float64(c.Analyses) / float64(accepted)
}

// PerAnalysis is the mean number of inflectional groups per analysis.
func (c AnalysisCount) PerAnalysis() float64 {
	if c.Analyses == 0 {
		return 0
	}
	return float64(c.IGs) / float64(c.Analyses)
}

// CoverageReport summarises how much of a token list the model accepts.
type CoverageReport struct {
	Tokens    int
	WordForms int
	Accepted  int
	Rejected  int
	// Unparsed lists the rejected word forms in sorted order.
	Unparsed      []string
	WithProper    AnalysisCount
	WithoutProper AnalysisCount
}

// Coverage is the accepted share of word forms, in percent.
func (r *CoverageReport) Coverage() float64 {
	if r.WordForms == 0 {
		return 0
	}
	return 100 * float64(r.Accepted) / float64(r.WordForms)
}

type coverageResult struct {
	word          string
	withProper    AnalysisCount
	withoutProper AnalysisCount
	err           error
}

// Evaluate analyzes the distinct forms of tokens, as NormalizeWord leaves
// them, on workers goroutines (GOMAXPROCS when workers <= 0). A word form
// counts as accepted when it has analyses both with and without the Proper
// feature.
func Evaluate(m *Model, tokens []string, workers int) (*CoverageReport, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	forms := make(map[string]bool)
	for _, t := range tokens {
		forms[NormalizeWord(t)] = true
	}
	report := &CoverageReport{Tokens: len(tokens), WordForms: len(forms)}

	withProper := NewAnalyzer(m)
	withoutProper := NewAnalyzer(m, WithoutProperFeature())

	jobs := make(chan string)
	results := make(chan coverageResult)
	var wg sync.WaitGroup
	for range workers {
		wg.Go(func() {
			for w := range jobs {
				results <- countAnalyses(w, withProper, withoutProper)
			}
		})
	}
	go func() {
		for w := range forms {
			jobs <- w
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	var firstErr error
	for r := range results {
		switch {
		case r.err != nil:
			if firstErr == nil {
				firstErr = r.err
			}
		case r.withProper.Analyses == 0 || r.withoutProper.Analyses == 0:
			report.Rejected++
			report.Unparsed = append(report.Unparsed, r.word)
		default:
			report.Accepted++
			report.WithProper.Analyses += r.withProper.Analyses
			report.WithProper.IGs += r.withProper.IGs
			report.WithoutProper.Analyses += r.withoutProper.Analyses
			report.WithoutProper.IGs += r.withoutProper.IGs
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	sort.Strings(report.Unparsed)
	return report, nil
}

func countAnalyses(word string, with, without *Analyzer) coverageResult {
	r := coverageResult{word: word}
	if r.withProper, r.err = countWith(with, word); r.err != nil {
		return r
	}
	r.withoutProper, r.err = countWith(without, word)
	return r
}

func countWith(a *Analyzer, word string) (AnalysisCount, error) {
	var c AnalysisCount
	analyses, err := a.Analyze(word)
	if err != nil {
		return c, errors.Wrapf(err, "analyze %q", word)
	}
	for _, s := range analyses {
		parsed, err := Parse(s)
		if err != nil {
			return c, errors.Wrapf(err, "analyzer output for %q", word)
		}
		c.Analyses++
		c.IGs += len(parsed.IGs)
	}
	return c, nil
}

// ReadCoNLLTokens reads the word forms of a CoNLL file: the second
// column of every non-blank line, split on '_'. A lone "_" marks an
// inflectional group row and is skipped.
func ReadCoNLLTokens(r io.Reader) ([]string, error) {
	var tokens []string
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		cols := strings.Fields(line)
		if len(cols) < 2 {
			return nil, errors.Errorf("conll line %d: want the word form in column 2, got %d columns", lineNo, len(cols))
		}
		if cols[1] == "_" {
			continue
		}
		for _, t := range strings.Split(cols[1], "_") {
			if t != "" {
				tokens = append(tokens, t)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read conll")
	}
	return tokens, nil
}
