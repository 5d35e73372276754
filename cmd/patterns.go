package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lemmeknow/lemmeknow-cli/internal/config"
	"github.com/lemmeknow/lemmeknow-cli/internal/identify"
)

func init() {
	cmd := &cobra.Command{
		Use:   "patterns [name]",
		Short: "List the patterns used for identification, or show one pattern in full",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := identifyOptions()
			if len(args) == 1 {
				// a named pattern is shown whatever the filters select
				opts = identify.Options{MinRarity: 0, MaxRarity: 1, Engine: regexEngine}
			}
			id, err := identify.New(config.Get(), opts)
			if err != nil {
				return err
			}
			p, err := newPrinter(cmd)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return p.ListPatterns(id.Patterns())
			}
			pat, ok := id.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown pattern %q", args[0])
			}
			return p.ShowPattern(pat)
		},
	}
	rootCmd.AddCommand(cmd)
}
