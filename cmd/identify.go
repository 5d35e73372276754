package cmd

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/lemmeknow/lemmeknow-cli/internal/config"
	"github.com/lemmeknow/lemmeknow-cli/internal/identify"
	"github.com/lemmeknow/lemmeknow-cli/internal/logging"
	"github.com/lemmeknow/lemmeknow-cli/internal/ui/console"
)

var (
	verboseTable bool
	jsonOutput   bool
	mdOutput     bool
	boundaryless bool
	fromFile     bool
)

func init() {
	f := rootCmd.Flags()
	f.BoolVarP(&verboseTable, "verbose", "v", false, "also show rarity and tags")
	f.BoolVar(&jsonOutput, "json", false, "print matches as JSON")
	f.BoolVar(&mdOutput, "markdown", false, "print matches as a Markdown report")
	f.BoolVarP(&boundaryless, "boundaryless", "b", false, "find patterns anywhere in the text instead of matching it whole")
	f.BoolVarP(&fromFile, "file", "f", false, "treat the argument as a path and identify the file contents")
	rootCmd.MarkFlagsMutuallyExclusive("json", "markdown")
}

func runIdentify(cmd *cobra.Command, args []string) error {
	text, err := inputText(cmd, args)
	if err != nil {
		return err
	}
	opts := identifyOptions()
	opts.Boundaryless = boundaryless
	id, err := identify.New(config.Get(), opts)
	if err != nil {
		return err
	}

	var results []identify.Match
	if fromFile {
		if results, err = id.IdentifyFile(text); err != nil {
			return err
		}
	} else {
		results = id.Identify(text)
	}
	mode := console.Normal
	if verboseTable {
		mode = console.Verbose
	}
	logging.Info().Int("matches", len(results)).Stringer("mode", mode).Msg("identification done")
	switch {
	case jsonOutput:
		return console.WriteJSON(cmd.OutOrStdout(), results)
	case mdOutput:
		return console.WriteMarkdown(cmd.OutOrStdout(), results, mode)
	}
	p, err := newPrinter(cmd)
	if err != nil {
		return err
	}
	return p.Render(results, mode)
}

// inputText takes the argument, else prompts on a terminal, else reads stdin.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return console.AskText()
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}
	text := strings.TrimRight(string(b), "\r\n")
	if text == "" {
		return "", errors.New("nothing to identify: pass text as an argument or on stdin")
	}
	return text, nil
}
