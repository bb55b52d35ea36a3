package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/recon/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion registers shell completion for rcn. It is a no-op outside of a
// shell completion request.
func completion() {
	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"run": {},
			"report": {
				Flags: map[string]complete.Predictor{
					"currency": predict.Set{"USD", "EUR", "GBP", "CAD"},
				},
			},
			"topic": {
				Args: predict.Set{"readme", "file-format", "actions"},
			},
		},
		Flags: map[string]complete.Predictor{
			"input-file":  predict.Files("*"),
			"output-file": predict.Files("*"),
		},
	}
	c.Complete("rcn")
}
