package quiz

import "sort"

// KeySet is a deduplicated set of candidate keys in deterministic order.
// Reductions return a new set; existing sets are never mutated.
type KeySet struct {
	keys []Key
}

// NewKeySet builds a set from candidate keys, sorting and deduplicating.
func NewKeySet(keys []Key) KeySet {
	copied := make([]Key, len(keys))
	copy(copied, keys)
	sort.Slice(copied, func(i, j int) bool {
		return copied[i].String() < copied[j].String()
	})
	deduped := copied[:0]
	previous := ""
	for i, key := range copied {
		encoded := key.String()
		if i == 0 || encoded != previous {
			deduped = append(deduped, key)
		}
		previous = encoded
	}
	return KeySet{keys: deduped}
}

// Len returns the number of candidate keys in the set.
func (s KeySet) Len() int {
	return len(s.keys)
}

// Keys returns the candidate keys in deterministic order.
func (s KeySet) Keys() []Key {
	copied := make([]Key, len(s.keys))
	copy(copied, s.keys)
	return copied
}

// Strings returns the candidate keys as symbol strings in deterministic order.
func (s KeySet) Strings() []string {
	encoded := make([]string, len(s.keys))
	for i, key := range s.keys {
		encoded[i] = key.String()
	}
	return encoded
}

// Contains reports whether the set holds a key equal to the argument.
func (s KeySet) Contains(key Key) bool {
	target := key.String()
	index := sort.Search(len(s.keys), func(i int) bool {
		return s.keys[i].String() >= target
	})
	return index < len(s.keys) && s.keys[index].String() == target
}

// Reduce returns a new set holding only the keys consistent with the attempt.
func (s KeySet) Reduce(attempt Attempt) (KeySet, error) {
	kept := make([]Key, 0, len(s.keys))
	for _, key := range s.keys {
		ok, err := attempt.Check(key)
		if err != nil {
			return KeySet{}, err
		}
		if ok {
			kept = append(kept, key)
		}
	}
	return KeySet{keys: kept}, nil
}
