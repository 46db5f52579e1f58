// Package filter selects stars from a catalog and writes the selection.
//
// A star is kept when ANY active predicate accepts it: bright stars and
// asterism members are both included. With no active predicate nothing is
// kept.
package filter

import (
	"github.com/yourusername/starfilter/cmd/starfilter/catalog"
)

// Criteria is the filter configuration of one invocation. Build it with
// NewCriteria; it is not modified afterwards.
type Criteria struct {
	magnitude        *float64
	includeAsterisms bool
}

// NewCriteria copies the given options into a Criteria. A nil or zero
// magnitude ceiling disables the magnitude predicate.
func NewCriteria(magnitude *float64, includeAsterisms bool) Criteria {
	c := Criteria{includeAsterisms: includeAsterisms}
	if magnitude != nil && *magnitude != 0 {
		m := *magnitude
		c.magnitude = &m
	}
	return c
}

// MagnitudeCeiling returns the magnitude ceiling, if one is active.
func (c Criteria) MagnitudeCeiling() (float64, bool) {
	if c.magnitude == nil {
		return 0, false
	}
	return *c.magnitude, true
}

// IncludeAsterisms reports whether asterism members are kept.
func (c Criteria) IncludeAsterisms() bool {
	return c.includeAsterisms
}

// Predicate decides whether a star is kept.
type Predicate func(catalog.Star) bool

// MagnitudeAtMost keeps stars at least as bright as ceiling. Stars without a
// numeric magnitude are not kept.
func MagnitudeAtMost(ceiling float64) Predicate {
	return func(s catalog.Star) bool {
		mag, ok := s.Magnitude()
		return ok && mag <= ceiling
	}
}

// InAsterism keeps stars referenced by any asterism in idx.
func InAsterism(idx *catalog.AsterismIndex) Predicate {
	return func(s catalog.Star) bool {
		id, ok := s.HD()
		return ok && idx.Contains(id)
	}
}

// Compose returns the predicates enabled by c, magnitude first.
func Compose(c Criteria, idx *catalog.AsterismIndex) []Predicate {
	var preds []Predicate
	if ceiling, ok := c.MagnitudeCeiling(); ok {
		preds = append(preds, MagnitudeAtMost(ceiling))
	}
	if c.IncludeAsterisms() {
		preds = append(preds, InAsterism(idx))
	}
	return preds
}

// Any combines predicates with logical OR. An empty list accepts nothing.
func Any(preds []Predicate) Predicate {
	return func(s catalog.Star) bool {
		for _, p := range preds {
			if p(s) {
				return true
			}
		}
		return false
	}
}

// Apply returns the stars accepted by keep, in their original order.
func Apply(stars []catalog.Star, keep Predicate) []catalog.Star {
	kept := make([]catalog.Star, 0, len(stars))
	for _, s := range stars {
		if keep(s) {
			kept = append(kept, s)
		}
	}
	return kept
}
