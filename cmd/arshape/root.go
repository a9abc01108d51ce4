package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/arshape/fontprobe"
	"github.com/npillmayer/arshape/reshape"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "arshape",
	Short: "Reshape Arabic script text into presentation forms",
	Long: `arshape replaces Arabic, Persian and Kurdish letters by their positional
presentation forms, for display on terminals and renderers which do not
support complex text shaping. Bidirectional reordering is not done.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setTraceLevel(rootFlags.trace)
	},
}

var rootFlags = struct {
	trace string
}{}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.trace, "trace", "Error", "trace level [Debug|Info|Error]")
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errNothingToReshape) {
		tracer().Errorf("%v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	return err
}

// --- Engine configuration from flags ---------------------------------------

// configFlags are shared by all commands which reshape text.
type configFlags struct {
	lang          string
	keepHarakat   bool
	shiftHarakat  bool
	deleteTatweel bool
	noZWJ         bool
	unshaped      bool
	ligatures     string
	font          string
	backend       string
	configFile    string
}

func (f *configFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.lang, "lang", "l", "Arabic", "language: Arabic, ArabicV2, Kurdish or a BCP 47 tag")
	flags.BoolVar(&f.keepHarakat, "keep-harakat", false, "keep diacritics")
	flags.BoolVar(&f.shiftHarakat, "shift-harakat", false, "shift diacritics one position to the front")
	flags.BoolVar(&f.deleteTatweel, "delete-tatweel", false, "delete tatweel (U+0640)")
	flags.BoolVar(&f.noZWJ, "no-zwj", false, "ignore zero width joiners")
	flags.BoolVar(&f.unshaped, "unshaped", false, "emit unconnected letters unshaped")
	flags.StringVar(&f.ligatures, "ligatures", "", "ligature list, e.g. \"default,-allah\" or \"all\"")
	flags.StringVar(&f.font, "font", "", "restrict the configuration to what a font file supports")
	flags.StringVar(&f.backend, "backend", "sfnt", "font parser for --font: sfnt or typesetting")
	flags.StringVar(&f.configFile, "config", "", "configuration file with key = value lines")
}

// config assembles an engine configuration. The base configuration comes
// from a configuration file, if given. Flags set explicitly on the command
// line take precedence. A font, if given, may switch off features it
// cannot display.
func (f *configFlags) config(cmd *cobra.Command) (reshape.Config, error) {
	lang, err := reshape.ParseLanguage(f.lang)
	if err != nil {
		return reshape.Config{}, err
	}
	config := reshape.DefaultConfig()
	if f.configFile != "" {
		conf, err := readConfigFile(f.configFile)
		if err != nil {
			return config, err
		}
		if config, err = reshape.ConfigFromSource(conf); err != nil {
			return config, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("lang") || f.configFile == "" {
		config.Language = lang
	}
	if flags.Changed("keep-harakat") {
		config.DeleteHarakat = !f.keepHarakat
	}
	if flags.Changed("shift-harakat") {
		config.ShiftHarakatPosition = f.shiftHarakat
	}
	if flags.Changed("delete-tatweel") {
		config.DeleteTatweel = f.deleteTatweel
	}
	if flags.Changed("no-zwj") {
		config.SupportZWJ = !f.noZWJ
	}
	if flags.Changed("unshaped") {
		config.UseUnshapedInsteadOfIsolated = f.unshaped
	}
	if flags.Changed("ligatures") {
		if err := config.ParseLigatures(f.ligatures); err != nil {
			return config, err
		}
	}
	if f.font != "" {
		backend, err := fontprobe.ParseBackend(f.backend)
		if err != nil {
			return config, err
		}
		cm, err := fontprobe.OpenFile(f.font, backend)
		if err != nil {
			return config, err
		}
		config = fontprobe.Restrict(cm, config)
	}
	return config, nil
}

// readConfigFile reads "key = value" lines. Empty lines and lines starting
// with '#' are skipped.
func readConfigFile(path string) (testconfig.Conf, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	conf := testconfig.Conf{}
	scanner := bufio.NewScanner(file)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%s:%d: expected key = value", path, lineno)
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		switch strings.ToLower(value) {
		case "true", "on", "yes":
			conf[key] = true
		case "false", "off", "no":
			conf[key] = false
		default:
			conf[key] = value
		}
	}
	return conf, scanner.Err()
}
