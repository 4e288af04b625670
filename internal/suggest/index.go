package suggest

import (
	"sort"
	"strings"
	"unicode"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Index matches a typed term against a list of names.
//
// Every name is inserted into a patricia trie once per word, keyed by the
// lowercased tail of the name starting at that word. Words are runs of
// letters and digits, so "Saint-Louis" has the words "saint" and "louis".
// A term matches a name when it is a prefix of any of those keys, so "york"
// finds "New York" and "lo" finds "London". Matches come back in source order.
type Index struct {
	names []string
	trie  *patricia.Trie
}

// NewIndex builds an index over names. The slice is not copied or modified.
func NewIndex(names []string) *Index {
	idx := &Index{
		names: names,
		trie:  patricia.NewTrie(),
	}

	for i, name := range names {
		fields := words(name)
		for j := range fields {
			key := patricia.Prefix(strings.Join(fields[j:], " "))
			if item := idx.trie.Get(key); item != nil {
				idx.trie.Set(key, append(item.([]int), i))
				continue
			}
			idx.trie.Insert(key, []int{i})
		}
	}

	return idx
}

// Len returns the number of names in the index
func (idx *Index) Len() int {
	return len(idx.names)
}

// Match returns the names matching term, without duplicates.
// An empty term matches every name.
func (idx *Index) Match(term string) []string {
	term = normalize(term)

	hits := make(map[int]struct{})
	if term == "" {
		for i := range idx.names {
			hits[i] = struct{}{}
		}
	} else {
		idx.trie.VisitSubtree(patricia.Prefix(term), func(_ patricia.Prefix, item patricia.Item) error {
			for _, i := range item.([]int) {
				hits[i] = struct{}{}
			}
			return nil
		})
	}

	positions := make([]int, 0, len(hits))
	for i := range hits {
		positions = append(positions, i)
	}
	sort.Ints(positions)

	seen := make(map[string]struct{}, len(positions))
	matches := make([]string, 0, len(positions))
	for _, i := range positions {
		name := idx.names[i]
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		matches = append(matches, name)
	}
	return matches
}

// normalize lowercases term and joins its words with single spaces
func normalize(term string) string {
	return strings.Join(words(term), " ")
}

func words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
