package main

import (
	"fmt"

	"github.com/npillmayer/arshape/fontprobe"
	"github.com/npillmayer/arshape/ligatures"
	"github.com/npillmayer/arshape/reshape"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var probeFlags = struct {
	font    string
	backend string
	lang    string
	groups  string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "probe",
		Short:   "Derive a reshaping configuration from the glyphs of a font",
		Example: `  arshape probe --font Vazirmatn-Regular.ttf --groups words,letters`,
		Args:    cobra.NoArgs,
		RunE:    runProbe,
	}
	flags := cmd.Flags()
	flags.StringVar(&probeFlags.font, "font", "", "font file (TTF or OTF)")
	flags.StringVar(&probeFlags.backend, "backend", "sfnt", "font parser: sfnt or typesetting")
	flags.StringVarP(&probeFlags.lang, "lang", "l", "Arabic", "language: Arabic, ArabicV2, Kurdish or a BCP 47 tag")
	flags.StringVar(&probeFlags.groups, "groups", "all", "ligature groups to probe: sentences, words, letters, all")
	cmd.MarkFlagRequired("font")
	rootCmd.AddCommand(cmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	lang, err := reshape.ParseLanguage(probeFlags.lang)
	if err != nil {
		return err
	}
	groups, err := reshape.ParseLigatureGroups(probeFlags.groups)
	if err != nil {
		return err
	}
	backend, err := fontprobe.ParseBackend(probeFlags.backend)
	if err != nil {
		return err
	}
	cm, err := fontprobe.OpenFile(probeFlags.font, backend)
	if err != nil {
		return err
	}
	config := fontprobe.Probe(cm, lang, groups)
	pterm.Info.Printf("font %s, language %s\n", probeFlags.font, lang)
	if cm != nil {
		missing := fontprobe.MissingIsolated(cm, reshape.New(config).Table())
		if len(missing) > 0 {
			pterm.Warning.Printf("%d letters have no isolated form glyph\n", len(missing))
			for _, r := range missing {
				pterm.Printf("    %U %c\n", r, r)
			}
		}
	}
	pterm.Printf("use unshaped letters: %v\n", config.UseUnshapedInsteadOfIsolated)
	pterm.Printf("support ligatures:    %v\n", config.SupportLigatures)
	data := [][]string{{"Tier", "Supported", "Probed"}}
	for _, tier := range groups.Tiers() {
		lo, hi := tier.Range()
		n := 0
		for id := lo; id < hi; id++ {
			if config.LigatureEnabled(id) {
				n++
			}
		}
		data = append(data, []string{tier.String(), fmt.Sprintf("%d", n), fmt.Sprintf("%d", hi-lo)})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	for _, id := range config.Ligatures.IDs() {
		pterm.Printf("  %-40s %s\n", id, ligatures.Get(id).Forms)
	}
	return nil
}
