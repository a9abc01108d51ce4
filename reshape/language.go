package reshape

import (
	"strings"

	"github.com/npillmayer/arshape/letters"
	"golang.org/x/text/language"
)

// Language selects the letter table of an engine.
type Language int

const (
	// Arabic is the default and works with most fonts.
	Arabic Language = iota
	// ArabicV2 is for fonts which miss some of the presentation forms
	// of the Arabic table.
	ArabicV2
	// Kurdish works with both Unicode and classic Arabic-Kurdish keyboard
	// input. A Sarchia font is recommended.
	Kurdish
	// Custom uses the letter table given in Config.CustomTable.
	Custom
)

var languageNames = [...]string{"Arabic", "ArabicV2", "Kurdish", "Custom"}

func (l Language) String() string {
	if l >= 0 && int(l) < len(languageNames) {
		return languageNames[l]
	}
	return "Language(?)"
}

// ParseLanguage resolves a language by name (case-insensitive).
// BCP 47 tags such as "fa" or "ckb" are accepted as well, see
// [LanguageFromTag].
func ParseLanguage(name string) (Language, error) {
	for i, n := range languageNames {
		if strings.EqualFold(n, name) {
			return Language(i), nil
		}
	}
	tag, err := language.Parse(name)
	if err != nil {
		return Arabic, errReshape("unknown language %q", name)
	}
	return LanguageFromTag(tag)
}

var kurdishBase = []language.Base{
	language.MustParseBase("ku"),
	language.MustParseBase("ckb"),
}

var arabicScript = language.MustParseScript("Arab")

// LanguageFromTag selects a built-in language for a BCP 47 language tag.
//
// Kurdish tags (ku, ckb) select Kurdish, unless they explicitly ask for a
// script other than Arabic. All other languages written in Arabic script
// (ar, fa, ur, ps, …) select Arabic.
func LanguageFromTag(tag language.Tag) (Language, error) {
	base, _ := tag.Base()
	script, _ := tag.Script()
	for _, kb := range kurdishBase {
		if base == kb && (script == arabicScript || base.String() == "ckb") {
			return Kurdish, nil
		}
	}
	if script == arabicScript {
		return Arabic, nil
	}
	return Arabic, errReshape("language %s is not written in Arabic script", tag)
}

// table resolves the letter table for a language. A Custom language without
// a table falls back to the Arabic table.
func (l Language) table(custom *letters.Table) *letters.Table {
	switch l {
	case ArabicV2:
		return letters.ArabicV2()
	case Kurdish:
		return letters.Kurdish()
	case Custom:
		if custom != nil {
			return custom
		}
		tracer().Errorf("custom language without letter table, using Arabic")
	}
	return letters.Arabic()
}
