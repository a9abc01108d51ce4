package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/arshape/reshape"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var replFlags = &configFlags{}

func init() {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Reshape lines interactively",
		Long: `repl reads lines from the terminal and prints them reshaped. Lines starting
with ':' are commands; enter ":help" for a list.`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
	replFlags.register(cmd)
	rootCmd.AddCommand(cmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	config, err := replFlags.config(cmd)
	if err != nil {
		return err
	}
	repl, err := readline.New("arshape > ")
	if err != nil {
		return err
	}
	defer repl.Close()
	intp := &Intp{repl: repl, engine: reshape.New(config)}
	pterm.Info.Println("Quit with <ctrl>D or :quit")
	intp.REPL()
	return nil
}

// Intp is our interpreter object
type Intp struct {
	repl    *readline.Instance
	engine  *reshape.Engine
	inspect bool
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if !strings.HasPrefix(line, ":") {
			intp.reshape(line)
			continue
		}
		quit, err := intp.execute(strings.Fields(line[1:]))
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) reshape(line string) {
	out := intp.engine.Reshape(line)
	pterm.Println(out)
	if intp.inspect {
		if err := renderRunes(out); err != nil {
			tracer().Errorf(err.Error())
		}
	}
}

type replOp func(intp *Intp, args []string) (quit bool, err error)

var replOps map[string]replOp

func init() {
	replOps = map[string]replOp{
		"quit":     quitOp,
		"q":        quitOp,
		"help":     helpOp,
		"config":   configOp,
		"lang":     langOp,
		"set":      setOp,
		"ligature": ligatureOp,
		"inspect":  inspectOp,
	}
}

func (intp *Intp) execute(words []string) (bool, error) {
	if len(words) == 0 {
		return false, errors.New("empty command")
	}
	tracer().Debugf("command = %v", words)
	op, ok := replOps[strings.ToLower(words[0])]
	if !ok {
		return false, fmt.Errorf("unknown command :%s, try :help", words[0])
	}
	return op(intp, words[1:])
}

func quitOp(intp *Intp, args []string) (bool, error) {
	return true, nil
}

func helpOp(intp *Intp, args []string) (bool, error) {
	pterm.Println(`
	:quit                        leave the REPL
	:config                      print the current configuration
	:lang <language>             Arabic, ArabicV2, Kurdish or a BCP 47 tag
	:set <option> on|off         options: harakat, shift-harakat, tatweel, zwj, unshaped
	:ligature <names> on|off     ligature names or groups, comma separated
	:inspect on|off              print code points of reshaped lines
	`)
	return false, nil
}

func configOp(intp *Intp, args []string) (bool, error) {
	c := intp.engine.Config()
	data := [][]string{
		{"Setting", "Value"},
		{"language", c.Language.String()},
		{"letter table", intp.engine.Table().Name()},
		{"delete harakat", onOff(c.DeleteHarakat)},
		{"shift harakat", onOff(c.ShiftHarakatPosition)},
		{"delete tatweel", onOff(c.DeleteTatweel)},
		{"support ZWJ", onOff(c.SupportZWJ)},
		{"unshaped isolated letters", onOff(c.UseUnshapedInsteadOfIsolated)},
		{"support ligatures", onOff(c.SupportLigatures)},
		{"ligatures enabled", fmt.Sprintf("%d", len(c.Ligatures.IDs()))},
	}
	return false, pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func langOp(intp *Intp, args []string) (bool, error) {
	if len(args) != 1 {
		return false, errors.New("usage: :lang <language>")
	}
	lang, err := reshape.ParseLanguage(args[0])
	if err != nil {
		return false, err
	}
	intp.engine.ModifyConfig(func(c *reshape.Config) {
		c.Language = lang
	})
	pterm.Info.Printf("language is %s\n", lang)
	return false, nil
}

func setOp(intp *Intp, args []string) (bool, error) {
	if len(args) != 2 {
		return false, errors.New("usage: :set <option> on|off")
	}
	on, err := parseOnOff(args[1])
	if err != nil {
		return false, err
	}
	var set func(*reshape.Config)
	switch strings.ToLower(args[0]) {
	case "harakat":
		set = func(c *reshape.Config) { c.DeleteHarakat = !on }
	case "shift-harakat":
		set = func(c *reshape.Config) { c.ShiftHarakatPosition = on }
	case "tatweel":
		set = func(c *reshape.Config) { c.DeleteTatweel = !on }
	case "zwj":
		set = func(c *reshape.Config) { c.SupportZWJ = on }
	case "unshaped":
		set = func(c *reshape.Config) { c.UseUnshapedInsteadOfIsolated = on }
	default:
		return false, fmt.Errorf("unknown option %q", args[0])
	}
	intp.engine.ModifyConfig(set)
	return false, nil
}

func ligatureOp(intp *Intp, args []string) (bool, error) {
	if len(args) != 2 {
		return false, errors.New("usage: :ligature <names> on|off")
	}
	on, err := parseOnOff(args[1])
	if err != nil {
		return false, err
	}
	list := args[0]
	if !on {
		var items []string
		for _, item := range strings.Split(list, ",") {
			items = append(items, "-"+item)
		}
		list = strings.Join(items, ",")
	}
	updated := intp.engine.Config()
	if err := updated.ParseLigatures(list); err != nil {
		return false, err
	}
	intp.engine.ModifyConfig(func(c *reshape.Config) {
		c.Ligatures, c.SupportLigatures = updated.Ligatures, updated.SupportLigatures
	})
	pterm.Info.Printf("%d ligatures enabled\n", len(updated.Ligatures.IDs()))
	return false, nil
}

func inspectOp(intp *Intp, args []string) (bool, error) {
	if len(args) != 1 {
		return false, errors.New("usage: :inspect on|off")
	}
	on, err := parseOnOff(args[0])
	intp.inspect = on
	return false, err
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", s)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
