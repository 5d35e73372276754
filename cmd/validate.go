package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lemmeknow/lemmeknow-cli/internal/config"
	"github.com/lemmeknow/lemmeknow-cli/internal/identify"
)

var noDefaults bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the merged pattern database against the JSON Schema and compile every regex",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		what := "Pattern database is"
		if noDefaults {
			if len(patternFiles) == 0 {
				return fmt.Errorf("%s: %w", patternDir(), config.ErrNoPatternFiles)
			}
			var err error
			if cfg, err = config.LoadFromFiles(patternFiles); err != nil {
				return err
			}
			if err := config.ValidateAgainstSchema(cfg); err != nil {
				return err
			}
			what = "Pattern files are"
		}
		all := identify.Options{MinRarity: 0, MaxRarity: 1, Engine: regexEngine}
		if _, err := identify.New(cfg, all); err != nil {
			return err
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s valid (%d patterns)\n", what, len(cfg.Patterns))
		return err
	},
}

func init() {
	validateCmd.Flags().BoolVar(&noDefaults, "no-defaults", false, "validate only the pattern files, without the built-in patterns")
	rootCmd.AddCommand(validateCmd)
}
