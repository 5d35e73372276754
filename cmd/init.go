package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lemmeknow/lemmeknow-cli/internal/assets"
)

func init() {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the built-in patterns into the pattern directory for editing",
		Args:  cobra.NoArgs,
		// init writes pattern files, so it does not load them
		PersistentPreRunE: setupLogging,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := patternDir()
			written, err := assets.WriteDefaultPatternsIfMissing(dir)
			if err != nil {
				return err
			}
			p := filepath.Join(dir, assets.DefaultPatternsFile)
			if !written {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s already exists\n", p)
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", p)
			return err
		},
	}
	rootCmd.AddCommand(cmd)
}
