/*
Package ligatures holds the table of Arabic ligatures known to the reshaper.

Every entry lists one or more alternative textual patterns (in logical order,
without diacritics) and up to four positional ligature glyphs. The position of
an entry in the table is significant: entries are tried in table order, so an
earlier entry wins over a later one it overlaps with. The table is therefore
partitioned into three tiers, which appear in fixed order: sentences, words,
and letter groups (pairs and triples).

Ligatures are identified by [ID], a dense index into the table. There is no
other way to name a ligature; in particular, string names are only a
convenience for configuration front ends and are resolved with [Parse].

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ligatures

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/arshape/letters"
)

// ID identifies a ligature table entry. IDs are consecutive, starting at 0,
// and are ordered by substitution priority.
type ID int

// Entry is a ligature table entry.
type Entry struct {
	Name     string        // identifier, e.g. "LamWithAlef"
	Patterns []string      // alternative character sequences to match
	Forms    letters.Forms // substitution glyph per position of the match
}

func forms(isolated, initial, medial, final rune) letters.Forms {
	return letters.NewForms(isolated, initial, medial, final)
}

// Valid is true if id denotes a table entry.
func (id ID) Valid() bool {
	return id >= 0 && id < Count
}

func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("ID(%d)", int(id))
	}
	return table[id].Name
}

// Tier returns the priority tier an entry belongs to.
func (id ID) Tier() Tier {
	for tier := Sentences; tier <= Letters; tier++ {
		if lo, hi := tier.Range(); id >= lo && id < hi {
			return tier
		}
	}
	return Tier(-1)
}

// Get returns a table entry. It panics for an invalid id.
func Get(id ID) Entry {
	return table[id]
}

// All iterates over the complete table in priority order.
func All() iter.Seq2[ID, Entry] {
	return func(yield func(ID, Entry) bool) {
		for id := ID(0); id < Count; id++ {
			if !yield(id, table[id]) {
				return
			}
		}
	}
}

// Parse finds a ligature by name. Matching is case-insensitive and ignores
// '_' and '-', so "lam_with_alef", "LAM-WITH-ALEF" and "LamWithAlef" all
// resolve to the same entry.
func Parse(name string) (ID, error) {
	key := nameKey(name)
	if id, ok := byName[key]; ok {
		return id, nil
	}
	return -1, fmt.Errorf("unknown ligature %q", name)
}

var byName = func() map[string]ID {
	m := make(map[string]ID, Count)
	for id := ID(0); id < Count; id++ {
		m[nameKey(table[id].Name)] = id
	}
	return m
}()

func nameKey(name string) string {
	name = strings.TrimPrefix(strings.ToUpper(name), "ARABIC_LIGATURE_")
	return strings.Map(func(r rune) rune {
		if r == '_' || r == '-' || r == ' ' {
			return -1
		}
		return r
	}, strings.ToLower(name))
}

// --- Tiers -----------------------------------------------------------------

// Tier is one of the three fixed-order priority partitions of the table.
type Tier int

const (
	Sentences Tier = iota // religious phrases
	Words                 // single words, e.g. "Allah"
	Letters               // letter pairs and triples
)

// tier boundaries; the table is ordered accordingly
var tierBounds = [...]ID{0, Allah, LetterGroupsStart, Count}

// LetterGroupsStart is the first entry of the letter group tier.
const LetterGroupsStart = AinWithAlefMaksura

// Range returns the half-open ID range [lo, hi) of a tier.
func (t Tier) Range() (lo, hi ID) {
	return tierBounds[t], tierBounds[t+1]
}

func (t Tier) String() string {
	switch t {
	case Sentences:
		return "sentences"
	case Words:
		return "words"
	case Letters:
		return "letters"
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}
