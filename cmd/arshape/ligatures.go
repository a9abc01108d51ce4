package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/arshape/ligatures"
	"github.com/npillmayer/arshape/reshape"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var ligatureFlags = struct {
	configFlags
	tier    string
	enabled bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "ligatures",
		Short: "List the ligature table",
		Example: `  arshape ligatures --tier words
  arshape ligatures --enabled --font Amiri-Regular.ttf --ligatures all`,
		Args: cobra.NoArgs,
		RunE: runLigatures,
	}
	ligatureFlags.register(cmd)
	cmd.Flags().StringVar(&ligatureFlags.tier, "tier", "", "list only one tier: sentences, words or letters")
	cmd.Flags().BoolVar(&ligatureFlags.enabled, "enabled", false, "list only enabled ligatures")
	rootCmd.AddCommand(cmd)
}

func runLigatures(cmd *cobra.Command, args []string) error {
	config, err := ligatureFlags.config(cmd)
	if err != nil {
		return err
	}
	var groups reshape.LigatureGroups = reshape.AllLigatures
	if ligatureFlags.tier != "" {
		if groups, err = reshape.ParseLigatureGroups(ligatureFlags.tier); err != nil {
			return err
		}
	}
	data := [][]string{
		{"ID", "Name", "Tier", "Pattern", "Forms", "Enabled"},
	}
	for _, tier := range groups.Tiers() {
		lo, hi := tier.Range()
		for id := lo; id < hi; id++ {
			enabled := config.LigatureEnabled(id)
			if ligatureFlags.enabled && !enabled {
				continue
			}
			entry := ligatures.Get(id)
			data = append(data, []string{
				fmt.Sprintf("%d", id),
				entry.Name,
				tier.String(),
				strings.Join(entry.Patterns, " | "),
				entry.Forms.String(),
				fmt.Sprintf("%v", enabled),
			})
		}
	}
	pterm.Printf("%d ligatures\n", len(data)-1)
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
