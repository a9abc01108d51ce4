package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/npillmayer/arshape/reshape"
	"github.com/spf13/cobra"
)

var reshapeFlags = &configFlags{}

func init() {
	cmd := &cobra.Command{
		Use:   "reshape [text...]",
		Short: "Reshape text given as arguments or read line by line from stdin",
		Example: `  arshape reshape "السلام عليكم"
  arshape reshape --keep-harakat --ligatures all < poem.txt`,
		RunE: runReshape,
	}
	reshapeFlags.register(cmd)
	rootCmd.AddCommand(cmd)
}

func runReshape(cmd *cobra.Command, args []string) error {
	config, err := reshapeFlags.config(cmd)
	if err != nil {
		return err
	}
	engine := reshape.New(config)
	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()
	if len(args) > 0 {
		for _, line := range engine.ReshapeLines(args) {
			fmt.Fprintln(out, line)
		}
		return nil
	}
	var readErr error
	for line := range engine.Lines(scanLines(cmd.InOrStdin(), &readErr)) {
		fmt.Fprintln(out, line)
	}
	return readErr
}

// scanLines yields the lines of r. A read error ends the sequence and is
// stored in *errp.
func scanLines(r io.Reader, errp *error) iter.Seq[string] {
	return func(yield func(string) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 64*1024), 1024*1024)
		for scanner.Scan() {
			if !yield(scanner.Text()) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			*errp = fmt.Errorf("reading input: %w", err)
		}
	}
}

var checkFlags = &configFlags{}

func init() {
	cmd := &cobra.Command{
		Use:   "check [text...]",
		Short: "Report whether text contains letters that need reshaping",
		Long: `check exits with status 0 if any argument (or stdin line) contains a letter
of the selected letter table, and with status 1 otherwise.`,
		RunE: runCheck,
	}
	checkFlags.register(cmd)
	rootCmd.AddCommand(cmd)
}

var errNothingToReshape = errors.New("nothing to reshape")

func runCheck(cmd *cobra.Command, args []string) error {
	config, err := checkFlags.config(cmd)
	if err != nil {
		return err
	}
	engine := reshape.New(config)
	var readErr error
	lines := iter.Seq[string](func(yield func(string) bool) {
		for _, a := range args {
			if !yield(a) {
				return
			}
		}
	})
	if len(args) == 0 {
		lines = scanLines(cmd.InOrStdin(), &readErr)
	}
	for line := range lines {
		if engine.NeedsReshape(line) {
			fmt.Fprintln(cmd.OutOrStdout(), "true")
			return nil
		}
	}
	if readErr != nil {
		return readErr
	}
	fmt.Fprintln(cmd.OutOrStdout(), "false")
	return errNothingToReshape
}

// exitCode maps a negative check to exit status 1.
func exitCode(err error) int {
	if errors.Is(err, errNothingToReshape) {
		return 1
	}
	return 2
}
