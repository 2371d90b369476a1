package kv

import (
	"iter"

	"github.com/indigo-web/utils/strcomp"
)

type Pair struct {
	Key, Value string
}

// Storage is an associative structure for storing (string, string) pairs. It acts as a map
// but preserves insertion order and uses linear search instead, which proves to be more
// efficient on relatively low amount of entries, which headers and trailers usually are.
type Storage struct {
	pairs  []Pair
	frozen bool
}

func New() *Storage {
	return new(Storage)
}

// NewPrealloc returns an instance of Storage with pre-allocated underlying storage.
func NewPrealloc(n int) *Storage {
	return &Storage{
		pairs: make([]Pair, 0, n),
	}
}

var frozenEmpty = &Storage{frozen: true}

// Frozen returns the process-wide immutable empty instance. It is shared between all
// exchanges until their first write, at which point the owner must replace it with a
// private mutable clone. Adding to it directly is a programming error.
func Frozen() *Storage {
	return frozenEmpty
}

// Add adds a new pair of key and value. Duplicates are kept, as ordering and repetition
// are both significant on the wire (e.g. Set-Cookie).
func (s *Storage) Add(key, value string) *Storage {
	if s.frozen {
		panic("kv: add to the shared frozen storage")
	}

	s.pairs = append(s.pairs, Pair{
		Key:   key,
		Value: value,
	})
	return s
}

// Value returns the first value, corresponding to the key. Otherwise, empty string is returned.
func (s *Storage) Value(key string) string {
	value, _ := s.Get(key)
	return value
}

// Get returns a value and a bool, indicating whether the value was found. The key is
// matched case-insensitively.
func (s *Storage) Get(key string) (value string, found bool) {
	for _, pair := range s.pairs {
		if strcomp.EqualFold(key, pair.Key) {
			return pair.Value, true
		}
	}

	return "", false
}

// Values returns an iterator over all the values by the key.
func (s *Storage) Values(key string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, pair := range s.pairs {
			if strcomp.EqualFold(key, pair.Key) && !yield(pair.Value) {
				return
			}
		}
	}
}

// Pairs returns an iterator over all the pairs in insertion order.
func (s *Storage) Pairs() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, pair := range s.pairs {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Has indicates, whether there's an entry of the key.
func (s *Storage) Has(key string) bool {
	_, found := s.Get(key)
	return found
}

// Len returns a number of stored pairs.
func (s *Storage) Len() int {
	return len(s.pairs)
}

func (s *Storage) Empty() bool {
	return s.Len() == 0
}

// Clone creates a mutable deep copy. Cloning the frozen instance is the way an exchange
// diverges from the shared empty storage.
func (s *Storage) Clone() *Storage {
	if len(s.pairs) == 0 {
		return New()
	}

	pairs := make([]Pair, len(s.pairs))
	copy(pairs, s.pairs)

	return &Storage{pairs: pairs}
}

// Expose exposes the underlying pairs slice.
func (s *Storage) Expose() []Pair {
	return s.pairs
}
