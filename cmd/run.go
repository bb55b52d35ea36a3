package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/recon"
	"github.com/google/subcommands"
)

type runCmd struct{}

func (*runCmd) Name() string { return "run" }
func (*runCmd) Synopsis() string {
	return "reconcile the account file and write the discrepancies"
}
func (*runCmd) Usage() string {
	return `rcn [-input-file <file>] [-output-file <file>] run

  Reads the account file, applies the day's transactions to the starting
  positions, reconciles the result against the reported positions, and
  writes one "<symbol> <shares>" line per discrepancy to the output file.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {}

func (c *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	account, err := DecodeAccountFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := Reconcile(account); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	out, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %q: %v\n", *outputFile, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := recon.EncodeReconciliations(out, account); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file %q: %v\n", *outputFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully wrote %d reconciliations to %s\n", account.Reconciliations.Len(), *outputFile)
	return subcommands.ExitSuccess
}
