package morphology

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Decomposer turns analysis strings into structured analyses checked
// against a Tagset.
type Decomposer struct {
	tagset *Tagset
	memo   *cache.Cache
}

// NewDecomposer returns a Decomposer over tagset. Successful results are
// kept for ttl; a zero ttl turns the memo off.
func NewDecomposer(tagset *Tagset, ttl, cleanup time.Duration) *Decomposer {
	d := &Decomposer{tagset: tagset}
	if ttl > 0 {
		d.memo = cache.New(ttl, cleanup)
	}
	return d
}

// Decompose parses s and validates it. Failures are
// *MalformedAnalysisError. The returned Analysis belongs to the caller.
func (d *Decomposer) Decompose(s string) (*Analysis, error) {
	if d.memo != nil {
		if item, ok := d.memo.Get(s); ok {
			return item.(*Analysis).Clone(), nil
		}
	}
	a, err := Parse(s)
	if err != nil {
		return nil, err
	}
	if err := d.tagset.Validate(a, s); err != nil {
		return nil, err
	}
	if d.memo != nil {
		d.memo.SetDefault(s, a.Clone())
	}
	return a, nil
}
