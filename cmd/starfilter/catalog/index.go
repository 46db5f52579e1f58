package catalog

import (
	"github.com/rs/zerolog/log"
)

// AsterismIndex is the set of every star referenced by at least one asterism.
type AsterismIndex struct {
	members map[Identifier]struct{}
}

// NewAsterismIndex flattens the star lists of all asterisms into one set.
// Edge lists are flattened recursively; values that cannot identify a star
// (objects, booleans, null) are ignored.
func NewAsterismIndex(asterisms []Asterism) *AsterismIndex {
	idx := &AsterismIndex{members: make(map[Identifier]struct{})}
	for _, a := range asterisms {
		idx.addAll(a.Stars)
	}

	log.Debug().
		Int("asterisms", len(asterisms)).
		Int("stars", len(idx.members)).
		Msg("Built asterism index")

	return idx
}

func (x *AsterismIndex) addAll(values []any) {
	for _, v := range values {
		if nested, ok := v.([]any); ok {
			x.addAll(nested)
			continue
		}
		if id, ok := identifierOf(v); ok {
			x.members[id] = struct{}{}
		}
	}
}

// Contains reports whether id belongs to any asterism.
func (x *AsterismIndex) Contains(id Identifier) bool {
	_, ok := x.members[id]
	return ok
}

// Len returns the number of distinct stars in the index.
func (x *AsterismIndex) Len() int {
	return len(x.members)
}
