package main

import (
	"os"

	"github.com/lemmeknow/lemmeknow-cli/cmd"
	"github.com/lemmeknow/lemmeknow-cli/internal/logging"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		logging.Error().Err(err).Msg("lemmeknow failed")
	}
	logging.Close()
	if err != nil {
		os.Exit(1)
	}
}
