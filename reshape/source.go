package reshape

import (
	"strings"

	"github.com/npillmayer/arshape/ligatures"
)

// Source is the configuration surface [ConfigFromSource] reads from.
// It is satisfied by schuko configurations, e.g. testconfig.Conf.
type Source interface {
	IsSet(key string) bool
	GetString(key string) string
	GetBool(key string) bool
}

// Configuration keys understood by ConfigFromSource.
const (
	KeyLanguage      = "reshape.language"
	KeyDeleteHarakat = "reshape.delete-harakat"
	KeyShiftHarakat  = "reshape.shift-harakat"
	KeyDeleteTatweel = "reshape.delete-tatweel"
	KeySupportZWJ    = "reshape.support-zwj"
	KeyUnshaped      = "reshape.unshaped"
	KeyLigatures     = "reshape.ligatures"
)

// ConfigFromSource creates a configuration from key-value settings. Keys
// which are not set keep their value from [DefaultConfig].
//
// The value for KeyLigatures is a comma-separated list, applied left to
// right to the default ligature set. Items are ligature names, the group
// words "none", "default", "sentences", "words", "letters" and "all".
// Ligature names and groups may be prefixed by '-' to disable instead of
// enable. "none" clears the set and "default" restores the default set;
// neither can be negated. Ligature substitution is on if any ligature
// remains enabled.
func ConfigFromSource(src Source) (Config, error) {
	config := DefaultConfig()
	if src == nil {
		return config, nil
	}
	if src.IsSet(KeyLanguage) {
		lang, err := ParseLanguage(src.GetString(KeyLanguage))
		if err != nil {
			return config, err
		}
		config.Language = lang
	}
	flags := []struct {
		key  string
		flag *bool
	}{
		{KeyDeleteHarakat, &config.DeleteHarakat},
		{KeyShiftHarakat, &config.ShiftHarakatPosition},
		{KeyDeleteTatweel, &config.DeleteTatweel},
		{KeySupportZWJ, &config.SupportZWJ},
		{KeyUnshaped, &config.UseUnshapedInsteadOfIsolated},
	}
	for _, f := range flags {
		if src.IsSet(f.key) {
			*f.flag = src.GetBool(f.key)
		}
	}
	if src.IsSet(KeyLigatures) {
		if err := config.ParseLigatures(src.GetString(KeyLigatures)); err != nil {
			return config, err
		}
	}
	tracer().Debugf("configuration from source: language=%s, %d ligatures enabled",
		config.Language, len(config.Ligatures.IDs()))
	return config, nil
}

var groupWords = map[string]LigatureGroups{
	"sentences": SentenceLigatures,
	"words":     WordLigatures,
	"letters":   LetterLigatures,
	"all":       AllLigatures,
}

// ParseLigatures applies a comma-separated ligature list to c, as described
// for [ConfigFromSource]. SupportLigatures is recomputed afterwards.
func (c *Config) ParseLigatures(list string) error {
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		enable := true
		if strings.HasPrefix(item, "-") {
			enable, item = false, strings.TrimSpace(item[1:])
		}
		switch word := strings.ToLower(item); {
		case !enable && (word == "none" || word == "default"):
			return errReshape("ligature list item %q cannot be negated", "-"+item)
		case word == "none":
			c.Ligatures = LigatureSet{}
		case word == "default":
			c.Ligatures = DefaultConfig().Ligatures
		case groupWords[word] != NoLigatures:
			c.EnableLigatureGroups(groupWords[word], enable)
		default:
			id, err := ligatures.Parse(item)
			if err != nil {
				return errReshape("%v", err)
			}
			c.Ligatures.Set(id, enable)
		}
	}
	c.SupportLigatures = c.Ligatures.Any()
	return nil
}

// ParseLigatureGroups parses a comma-separated list of group names:
// "sentences", "words", "letters", "all" or "none".
func ParseLigatureGroups(list string) (LigatureGroups, error) {
	groups := NoLigatures
	for _, item := range strings.Split(list, ",") {
		word := strings.ToLower(strings.TrimSpace(item))
		if word == "" || word == "none" {
			continue
		}
		g, ok := groupWords[word]
		if !ok {
			return NoLigatures, errReshape("unknown ligature group %q", item)
		}
		groups |= g
	}
	return groups, nil
}
