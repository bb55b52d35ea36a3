// Package cmd implements the CLI application to reconcile an account.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/recon"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&runCmd{}, "reconciliation")
	c.Register(&reportCmd{}, "reconciliation")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var inputFile = flag.String("input-file", "recon.in", "Path to the account file (positions and transactions, flat text)")
var outputFile = flag.String("output-file", "recon.out", "Path to the reconciliation output file")

// DecodeAccountFile decodes the account from the app input file.
func DecodeAccountFile() (*recon.Account, error) {
	f, err := os.Open(*inputFile)
	if err != nil {
		return nil, fmt.Errorf("could not open account file %q: %w", *inputFile, err)
	}
	defer f.Close()

	account, err := recon.DecodeAccount(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode account file %q: %w", *inputFile, err)
	}
	return account, nil
}

// Reconcile runs the full reconciliation pipeline on an account: apply the
// day's transactions, then compare reported against computed positions.
func Reconcile(account *recon.Account) error {
	if err := account.ApplyTransactions(); err != nil {
		return fmt.Errorf("could not apply transactions: %w", err)
	}
	account.ReconcilePositions()
	return nil
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
