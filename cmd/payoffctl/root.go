package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "payoffctl",
	Short: "Loan amortization and debt payoff calculator",
	Long: `payoffctl runs the payoff engine from the command line and prints
the result as JSON.

Examples:
  payoffctl loan --principal 20000 --rate 5 --term 60
  payoffctl loan --principal 20000 --rate 5 --term 60 --after 12
  payoffctl debts --file debts.yaml --strategy snowball
  payoffctl debts --file debts.yaml --compare`,
	SilenceUsage: true,
}

func writeResult(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
