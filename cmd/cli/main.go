package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/urban-tools/congestion-atlas/pkg/runtime/terminal"
	"github.com/urban-tools/congestion-atlas/pkg/services/synth"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cli := terminal.NewCLI(terminal.Options{
		Registry: synth.NewRegistry(map[string]synth.GeneratorFactory{
			"traffic":   synth.NewTrafficGenerator,
			"emissions": synth.NewEmissionsGenerator,
			"ridership": synth.NewRidershipGenerator,
		}),
		Output: os.Stdout,
		Logger: logger,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
