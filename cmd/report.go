package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/recon/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	currency string
}

func (*reportCmd) Name() string { return "report" }
func (*reportCmd) Synopsis() string {
	return "display a markdown reconciliation report for the account file"
}
func (*reportCmd) Usage() string {
	return `rcn [-input-file <file>] report [-currency <code>]

  Runs the reconciliation and renders a report to the terminal: starting,
  computed and reported positions side by side, the day's transactions with
  their monetary impact, and the remaining discrepancies. The output file
  is not written.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "USD", "Currency code used to format transaction values.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	account, err := DecodeAccountFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := Reconcile(account); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ReportMarkdown(renderer.NewReport(account, c.currency)))
	return subcommands.ExitSuccess
}
