package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"payoff-engine/domain"
	"payoff-engine/service"
)

// debtFile is the on-disk debt list. JSON files parse as YAML too.
type debtFile struct {
	ExtraPayment float64 `yaml:"extraPayment"`
	StartDate    string  `yaml:"startDate"`
	Debts        []struct {
		Name           string  `yaml:"name"`
		Balance        float64 `yaml:"balance"`
		InterestRate   float64 `yaml:"interestRate"`
		MinimumPayment float64 `yaml:"minimumPayment"`
	} `yaml:"debts"`
}

var (
	debtsFile     string
	debtsStrategy string
	debtsExtra    float64
	debtsCompare  bool
)

var debtsCmd = &cobra.Command{
	Use:   "debts",
	Short: "Simulate paying down several debts with avalanche or snowball",
	RunE:  runDebts,
}

func init() {
	rootCmd.AddCommand(debtsCmd)

	debtsCmd.Flags().StringVarP(&debtsFile, "file", "f", "", "YAML or JSON file with the debts")
	debtsCmd.Flags().StringVarP(&debtsStrategy, "strategy", "s", "avalanche", "avalanche or snowball")
	debtsCmd.Flags().Float64Var(&debtsExtra, "extra", -1, "monthly extra payment (overrides the file)")
	debtsCmd.Flags().BoolVar(&debtsCompare, "compare", false, "run both strategies and compare them")
	_ = debtsCmd.MarkFlagRequired("file")
}

func loadDebtFile(path string) ([]domain.Debt, float64, time.Time, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, time.Time{}, err
	}
	var f debtFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, 0, time.Time{}, fmt.Errorf("parse %s: %w", path, err)
	}

	var start time.Time
	if f.StartDate != "" {
		start, err = time.Parse(time.DateOnly, f.StartDate)
		if err != nil {
			return nil, 0, time.Time{}, fmt.Errorf("parse startDate: %w", err)
		}
	}

	debts := make([]domain.Debt, 0, len(f.Debts))
	for _, d := range f.Debts {
		debts = append(debts, domain.Debt{
			Name:           d.Name,
			Balance:        d.Balance,
			InterestRate:   d.InterestRate,
			MinimumPayment: d.MinimumPayment,
		})
	}
	return debts, f.ExtraPayment, start, nil
}

func runDebts(cmd *cobra.Command, args []string) error {
	debts, extra, start, err := loadDebtFile(debtsFile)
	if err != nil {
		return err
	}
	if debtsExtra >= 0 {
		extra = debtsExtra
	}

	if debtsCompare {
		result, err := service.ComparePayoffStrategies(debts, extra, start)
		if err != nil {
			return err
		}
		return writeResult(cmd.OutOrStdout(), result)
	}

	strategy, err := domain.ParseStrategy(debtsStrategy)
	if err != nil {
		return err
	}
	result, err := service.CalculateDebtPayoff(debts, strategy, extra, start)
	if err != nil {
		return err
	}
	return writeResult(cmd.OutOrStdout(), result)
}
