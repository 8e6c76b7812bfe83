package main

import (
	"github.com/spf13/cobra"

	"payoff-engine/domain"
	"payoff-engine/service"
)

var (
	loanPrincipal   float64
	loanRate        float64
	loanTerm        int
	loanExtra       float64
	loanAfter       int
	loanPaymentOnly bool
)

var loanCmd = &cobra.Command{
	Use:   "loan",
	Short: "Amortize a single loan",
	RunE:  runLoan,
}

func init() {
	rootCmd.AddCommand(loanCmd)

	loanCmd.Flags().Float64Var(&loanPrincipal, "principal", 0, "loan principal")
	loanCmd.Flags().Float64Var(&loanRate, "rate", 0, "annual interest rate in percent (5 = 5%)")
	loanCmd.Flags().IntVar(&loanTerm, "term", 0, "term in months")
	loanCmd.Flags().Float64Var(&loanExtra, "extra", 0, "extra payment added every month")
	loanCmd.Flags().IntVar(&loanAfter, "after", -1, "print only the balance after this many months")
	loanCmd.Flags().BoolVar(&loanPaymentOnly, "payment-only", false, "print only the monthly payment")
	_ = loanCmd.MarkFlagRequired("principal")
	_ = loanCmd.MarkFlagRequired("term")
}

func runLoan(cmd *cobra.Command, args []string) error {
	terms := domain.LoanTerms{
		Principal:          loanPrincipal,
		AnnualInterestRate: loanRate,
		TermMonths:         loanTerm,
		ExtraPayment:       loanExtra,
	}

	switch {
	case loanPaymentOnly:
		payment, err := service.CalculateMonthlyPayment(terms.Principal, terms.AnnualInterestRate, terms.TermMonths)
		if err != nil {
			return err
		}
		return writeResult(cmd.OutOrStdout(), domain.PaymentResult{MonthlyPayment: payment})
	case loanAfter >= 0:
		balance, err := service.CalculateRemainingBalance(terms, loanAfter)
		if err != nil {
			return err
		}
		return writeResult(cmd.OutOrStdout(), domain.RemainingBalanceResult{MonthsElapsed: loanAfter, Balance: balance})
	}

	schedule, err := service.CalculateLoanAmortization(terms)
	if err != nil {
		return err
	}
	return writeResult(cmd.OutOrStdout(), schedule)
}
