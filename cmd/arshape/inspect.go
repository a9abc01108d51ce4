package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/arshape/letters"
	"github.com/npillmayer/arshape/reshape"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/runenames"
)

var inspectFlags = &configFlags{}

func init() {
	cmd := &cobra.Command{
		Use:     "inspect text...",
		Short:   "Print the code points of text before and after reshaping",
		Example: `  arshape inspect --keep-harakat "لَا"`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runInspect,
	}
	inspectFlags.register(cmd)
	rootCmd.AddCommand(cmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	config, err := inspectFlags.config(cmd)
	if err != nil {
		return err
	}
	engine := reshape.New(config)
	text := strings.Join(args, " ")
	out := engine.Reshape(text)
	pterm.DefaultSection.Println("Input")
	if err := renderRunes(text); err != nil {
		return err
	}
	pterm.DefaultSection.Println("Output")
	if err := renderRunes(out); err != nil {
		return err
	}
	pterm.Printf("%d code points in, %d out\n", len([]rune(text)), len([]rune(out)))
	return nil
}

func renderRunes(s string) error {
	data := [][]string{
		{"Pos", "Code point", "Char", "Name"},
	}
	for i, r := range []rune(s) {
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%U", r),
			printable(r),
			runenames.Name(r),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// printable shows combining marks on a dotted circle and hides control
// characters.
func printable(r rune) string {
	switch {
	case r < ' ' || r == letters.ZWJ:
		return ""
	case letters.IsHarakah(r):
		return "◌" + string(r)
	}
	return string(r)
}
