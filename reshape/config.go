package reshape

import (
	"github.com/npillmayer/arshape/letters"
	"github.com/npillmayer/arshape/ligatures"
)

// LigatureSet holds an enable flag for every entry of the ligature table,
// indexed by ligatures.ID.
type LigatureSet [ligatures.Count]bool

// Enabled is true if ligature id is enabled. Invalid IDs are never enabled.
func (s *LigatureSet) Enabled(id ligatures.ID) bool {
	return id.Valid() && s[id]
}

// Set enables or disables ligature id. Invalid IDs are ignored.
func (s *LigatureSet) Set(id ligatures.ID, enabled bool) {
	if id.Valid() {
		s[id] = enabled
	}
}

// Any is true if at least one ligature is enabled.
func (s *LigatureSet) Any() bool {
	for _, enabled := range s {
		if enabled {
			return true
		}
	}
	return false
}

// IDs returns the enabled ligatures in priority order.
func (s *LigatureSet) IDs() []ligatures.ID {
	var ids []ligatures.ID
	for id, enabled := range s {
		if enabled {
			ids = append(ids, ligatures.ID(id))
		}
	}
	return ids
}

// LigatureGroups selects whole tiers of the ligature table.
type LigatureGroups uint8

const (
	SentenceLigatures LigatureGroups = 1 << iota
	WordLigatures
	LetterLigatures

	NoLigatures  LigatureGroups = 0
	AllLigatures                = SentenceLigatures | WordLigatures | LetterLigatures
)

// Tiers returns the ligature tiers contained in a group set.
func (g LigatureGroups) Tiers() []ligatures.Tier {
	var tiers []ligatures.Tier
	for tier := ligatures.Sentences; tier <= ligatures.Letters; tier++ {
		if g&(1<<tier) != 0 {
			tiers = append(tiers, tier)
		}
	}
	return tiers
}

// defaultLigatures are the ligatures which virtually every Arabic font
// supports.
var defaultLigatures = [...]ligatures.ID{
	ligatures.Allah,
	ligatures.LamWithAlef,
	ligatures.LamWithAlefWithHamzaAbove,
	ligatures.LamWithAlefWithHamzaBelow,
	ligatures.LamWithAlefWithMaddaAbove,
}

// Config holds all the settings of an [Engine]. Config is a value type; an
// engine holds its own copy.
type Config struct {
	// Language selects the letter table.
	Language Language
	// CustomTable is the letter table for Language == Custom.
	CustomTable *letters.Table
	// DeleteHarakat drops all diacritic marks.
	DeleteHarakat bool
	// ShiftHarakatPosition moves diacritics one position to the front, so
	// they end up at the correct letter once the output is reversed.
	ShiftHarakatPosition bool
	// DeleteTatweel drops the elongation character U+0640.
	DeleteTatweel bool
	// SupportZWJ lets U+200D force joining of its neighbours. Otherwise
	// ZWJ characters are dropped.
	SupportZWJ bool
	// UseUnshapedInsteadOfIsolated emits letters without neighbours
	// unchanged instead of using their isolated presentation form.
	UseUnshapedInsteadOfIsolated bool
	// SupportLigatures switches ligature substitution as a whole.
	// If it is off, Ligatures is ignored.
	SupportLigatures bool
	// Ligatures selects individual ligatures.
	Ligatures LigatureSet
}

// DefaultConfig returns the default configuration: Arabic, harakat deleted,
// ZWJ supported, and the five ligatures for "Allah" and Lam-Alef enabled.
func DefaultConfig() Config {
	config := Config{
		Language:         Arabic,
		DeleteHarakat:    true,
		SupportZWJ:       true,
		SupportLigatures: true,
	}
	for _, id := range defaultLigatures {
		config.Ligatures.Set(id, true)
	}
	return config
}

// NewConfig returns a default configuration for a language, with exactly the
// ligatures of the given tiers enabled. With NoLigatures, ligature
// substitution is switched off.
func NewConfig(lang Language, groups LigatureGroups) Config {
	config := DefaultConfig()
	config.Language = lang
	config.Ligatures = LigatureSet{}
	config.EnableLigatureGroups(groups, true)
	config.SupportLigatures = groups != NoLigatures
	return config
}

// CustomConfig returns a default configuration using a client-supplied
// letter table.
func CustomConfig(table *letters.Table) Config {
	config := DefaultConfig()
	config.Language = Custom
	config.CustomTable = table
	return config
}

// UpdateLigature enables or disables a single ligature. SupportLigatures is
// recomputed: it is on if and only if any ligature is enabled afterwards.
func (c *Config) UpdateLigature(id ligatures.ID, enabled bool) {
	c.Ligatures.Set(id, enabled)
	c.SupportLigatures = c.Ligatures.Any()
}

// EnableLigatureGroups enables or disables all ligatures of the given tiers.
// SupportLigatures is left untouched.
func (c *Config) EnableLigatureGroups(groups LigatureGroups, enabled bool) {
	for _, tier := range groups.Tiers() {
		lo, hi := tier.Range()
		for id := lo; id < hi; id++ {
			c.Ligatures[id] = enabled
		}
	}
}

// LigatureEnabled is true if ligature substitution is on and ligature id is
// enabled.
func (c Config) LigatureEnabled(id ligatures.ID) bool {
	return c.SupportLigatures && c.Ligatures.Enabled(id)
}

// isolatedForm is the form tag for letters without neighbours.
func (c Config) isolatedForm() letters.Form {
	if c.UseUnshapedInsteadOfIsolated {
		return letters.Unshaped
	}
	return letters.Isolated
}

// letterTable resolves the letter table for the configured language.
func (c Config) letterTable() *letters.Table {
	return c.Language.table(c.CustomTable)
}
