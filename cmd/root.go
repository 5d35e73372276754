package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"

	"github.com/lemmeknow/lemmeknow-cli/internal/assets"
	"github.com/lemmeknow/lemmeknow-cli/internal/config"
	"github.com/lemmeknow/lemmeknow-cli/internal/identify"
	"github.com/lemmeknow/lemmeknow-cli/internal/logging"
	"github.com/lemmeknow/lemmeknow-cli/internal/ui/console"
)

const appName = "lemmeknow"

var (
	cfgFile     string
	logLevel    string
	colorMode   string
	regexEngine string
	minRarity   float64
	maxRarity   float64
	tags        []string
	excludeTags []string

	// patternFiles are the user pattern files found by setup.
	patternFiles []string
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:               "lemmeknow [text]",
	Short:             "Identify anything: emails, IP addresses, wallets, API keys and more",
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runIdentify,
}

func Execute() error { return rootCmd.Execute() }

func init() {
	defaults := identify.DefaultOptions()
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "path to any pattern file inside the pattern directory (default dir: $XDG_CONFIG_HOME/lemmeknow); all *.yaml, *.yml and *.toml files in that directory are merged over the built-in patterns")
	pf.StringVarP(&logLevel, "log-level", "l", "warn", "log level (trace, debug, info, warn, error, fatal)")
	pf.StringVar(&colorMode, "color", console.ColorAlways, "color output (always, auto, never)")
	pf.StringVar(&regexEngine, "regex-engine", identify.EngineStdlib, "regex engine (stdlib, re2)")
	pf.Float64Var(&minRarity, "min-rarity", defaults.MinRarity, "minimum rarity of patterns to use (0 to 1)")
	pf.Float64Var(&maxRarity, "max-rarity", defaults.MaxRarity, "maximum rarity of patterns to use (0 to 1)")
	pf.StringSliceVar(&tags, "tags", nil, "only use patterns carrying one of these tags")
	pf.StringSliceVar(&excludeTags, "exclude-tags", nil, "skip patterns carrying one of these tags")
	rootCmd.Version = version
}

// setup configures logging and loads the pattern database for every command.
func setup(cmd *cobra.Command, args []string) error {
	if err := setupLogging(cmd, args); err != nil {
		return err
	}
	dir := patternDir()
	files, err := config.ListPatternFiles(dir)
	if err != nil && !errors.Is(err, config.ErrNoPatternFiles) {
		return err
	}
	patternFiles = files
	logging.Debug().Str("dir", dir).Strs("files", files).Msg("loading patterns")
	cfg, err := config.LoadDefaultsAndFiles(assets.DefaultPatterns, files)
	if err != nil {
		return err
	}
	if err := config.ValidateAgainstSchema(cfg); err != nil {
		return err
	}
	logging.Debug().Int("patterns", len(cfg.Patterns)).Msg("pattern database loaded")
	return nil
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logging.Setup(level, cmd.ErrOrStderr(), filepath.Join(xdg.StateHome, appName))
	return nil
}

func patternDir() string {
	if cfgFile != "" {
		return filepath.Dir(cfgFile)
	}
	return filepath.Join(xdg.ConfigHome, appName)
}

func identifyOptions() identify.Options {
	return identify.Options{
		MinRarity:   minRarity,
		MaxRarity:   maxRarity,
		Tags:        tags,
		ExcludeTags: excludeTags,
		Engine:      regexEngine,
	}
}

func newPrinter(cmd *cobra.Command) (*console.Printer, error) {
	styler, err := console.NewStyler(colorMode, os.Stdout.Fd())
	if err != nil {
		return nil, err
	}
	width := 0
	if cmd.OutOrStdout() == os.Stdout {
		width = console.TerminalWidth(int(os.Stdout.Fd()))
	}
	return console.NewPrinter(cmd.OutOrStdout(), styler, width), nil
}
