package fontprobe

import (
	"testing"

	"github.com/npillmayer/arshape/ligatures"
	"github.com/npillmayer/arshape/reshape"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/gofont/goregular"
)

// --- Test Suite Preparation ------------------------------------------------

type ProbeTestEnviron struct {
	suite.Suite
}

// listen for 'go test' command --> run test methods
func TestProbeFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arshape.fonts")
	defer teardown()
	suite.Run(t, new(ProbeTestEnviron))
}

// run once, before test suite methods
func (env *ProbeTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("arshape.fonts").SetTraceLevel(tracing.LevelInfo)
}

// --- Tests -----------------------------------------------------------------

func (env *ProbeTestEnviron) TestLatinFont() {
	for _, backend := range []Backend{BackendSFNT, BackendTypesetting} {
		config, err := FromBinary(goregular.TTF, Params{
			Language:  reshape.Arabic,
			Ligatures: reshape.AllLigatures,
			Backend:   backend,
		})
		env.Require().NoError(err, "backend %d", backend)
		env.True(config.UseUnshapedInsteadOfIsolated, "Go Regular has no Arabic glyphs")
		env.False(config.SupportLigatures)
		env.False(config.Ligatures.Any())
		// Latin text passes through, Arabic letters stay unshaped
		e := reshape.New(config)
		env.Equal("abc ب", e.Reshape("abc ب"))
	}
}

func (env *ProbeTestEnviron) TestCharMaps() {
	sfntMap, err := Open(goregular.TTF, BackendSFNT)
	env.Require().NoError(err)
	faceMap, err := Open(goregular.TTF, BackendTypesetting)
	env.Require().NoError(err)
	for _, r := range []rune{'a', 'Z', '0'} {
		env.True(sfntMap.HasGlyph(r), "sfnt: %#U", r)
		env.True(faceMap.HasGlyph(r), "typesetting: %#U", r)
	}
	env.False(sfntMap.HasGlyph('ب'))
	env.False(faceMap.HasGlyph('ب'))
	_, err = Open([]byte("not a font"), BackendSFNT)
	env.Error(err)
	_, err = Open(goregular.TTF, Backend(7))
	env.Error(err)
}

func (env *ProbeTestEnviron) TestCompleteFont() {
	all := CharMapFunc(func(rune) bool { return true })
	config := Probe(all, reshape.Arabic, reshape.AllLigatures)
	env.False(config.UseUnshapedInsteadOfIsolated)
	env.True(config.SupportLigatures)
	env.Len(config.Ligatures.IDs(), ligatures.Count)
	//
	config = Probe(all, reshape.Kurdish, reshape.NoLigatures)
	env.Equal(reshape.Kurdish, config.Language)
	env.False(config.SupportLigatures)
}

func (env *ProbeTestEnviron) TestPartialFont() {
	// a font with all letters, but without the lam-alef isolated glyph
	cm := CharMapFunc(func(r rune) bool { return r != 0xFEFB })
	config := Probe(cm, reshape.Arabic, reshape.LetterLigatures)
	env.False(config.UseUnshapedInsteadOfIsolated)
	env.False(config.LigatureEnabled(ligatures.LamWithAlef))
	env.True(config.LigatureEnabled(ligatures.LamWithAlefWithHamzaAbove))
	env.False(config.LigatureEnabled(ligatures.Allah), "words were not probed")
	// missing isolated form of beh
	cm = CharMapFunc(func(r rune) bool { return r != 0xFE8F })
	config = Probe(cm, reshape.Arabic, reshape.NoLigatures)
	env.True(config.UseUnshapedInsteadOfIsolated)
	env.Equal([]rune{'ب'}, MissingIsolated(cm, reshape.Default().Table()))
}

func (env *ProbeTestEnviron) TestNoCharMap() {
	config := Probe(nil, reshape.Arabic, reshape.AllLigatures)
	env.True(config.UseUnshapedInsteadOfIsolated)
	env.False(config.SupportLigatures)
	env.False(config.Ligatures.Any())
	env.Nil(SFNT(nil))
	env.Nil(Face(nil))
}

func (env *ProbeTestEnviron) TestRestrict() {
	cm := CharMapFunc(func(r rune) bool { return r != 0xFDF2 }) // no Allah glyph
	config := Restrict(cm, reshape.DefaultConfig())
	env.False(config.LigatureEnabled(ligatures.Allah))
	env.True(config.LigatureEnabled(ligatures.LamWithAlef))
	env.False(config.LigatureEnabled(ligatures.RialSign), "Restrict never enables")
	env.True(config.SupportLigatures)
	//
	base := reshape.DefaultConfig()
	base.SupportLigatures = false
	config = Restrict(CharMapFunc(func(rune) bool { return true }), base)
	env.False(config.SupportLigatures, "support stays off")
}

func (env *ProbeTestEnviron) TestSupports() {
	cm := CharMapFunc(func(r rune) bool { return r == 0xFEFB })
	env.False(Supports(cm, ligatures.Get(ligatures.LamWithAlef).Forms), "final form missing")
	env.True(Supports(CharMapFunc(func(rune) bool { return true }), ligatures.Get(ligatures.LamWithAlef).Forms))
	env.False(Supports(cm, ligatures.Get(ligatures.Allah).Forms))
}

func (env *ProbeTestEnviron) TestParseBackend() {
	b, err := ParseBackend("typesetting")
	env.NoError(err)
	env.Equal(BackendTypesetting, b)
	b, err = ParseBackend("")
	env.NoError(err)
	env.Equal(BackendSFNT, b)
	_, err = ParseBackend("freetype")
	env.Error(err)
}
