package morphology

import (
	"sort"

	"github.com/pkg/errors"
)

// FeatureCount is how often one inflectional feature occurs.
type FeatureCount struct {
	Feature Feature `json:"feature"`
	Count   int     `json:"count"`
}

// Distribution is the spread of inflectional features over every analysis
// of a token sequence.
type Distribution struct {
	Total  int            `json:"total"`
	Counts []FeatureCount `json:"counts"`
}

// Frequency returns c as a percentage of the total.
func (d *Distribution) Frequency(c FeatureCount) float64 {
	if d.Total == 0 {
		return 0
	}
	return 100 * float64(c.Count) / float64(d.Total)
}

// InflectionDistribution counts the inflectional features of all analyses
// of tokens, leaving out the Proper feature. Counts are ordered by
// decreasing count, then by category and value.
func InflectionDistribution(m *Model, tokens []string) (*Distribution, error) {
	a := NewAnalyzer(m, WithoutProperFeature())
	counts := make(map[Feature]int)
	d := &Distribution{}
	for _, t := range tokens {
		analyses, err := a.Analyze(t)
		if err != nil {
			return nil, errors.Wrapf(err, "analyze %q", t)
		}
		for _, s := range analyses {
			parsed, err := Parse(s)
			if err != nil {
				return nil, errors.Wrapf(err, "analyzer output for %q", t)
			}
			for _, ig := range parsed.IGs {
				for _, inf := range ig.Inflections {
					counts[inf.Feature]++
					d.Total++
				}
			}
		}
	}
	for f, n := range counts {
		d.Counts = append(d.Counts, FeatureCount{Feature: f, Count: n})
	}
	sort.Slice(d.Counts, func(i, j int) bool {
		a, b := d.Counts[i], d.Counts[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if a.Feature.Category != b.Feature.Category {
			return a.Feature.Category < b.Feature.Category
		}
		return a.Feature.Value < b.Feature.Value
	})
	return d, nil
}
