package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/bibbank/decisioning/internal/application/dto"
	"github.com/bibbank/decisioning/internal/application/usecase"
)

func newRepaymentCommand(root *rootOptions) *cobra.Command {
	var amount, rate string
	var years int
	cmd := &cobra.Command{
		Use:     "repayment",
		Short:   "Compute the EMI and yearly amortization schedule of a loan",
		Example: `  decisionctl repayment --amount 500000 --rate 9.5 --years 5`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			principal, err := parseDecimal("amount", amount)
			if err != nil {
				return err
			}
			annual, err := parseDecimal("rate", rate)
			if err != nil {
				return err
			}
			resp, err := usecase.NewPlanRepaymentUseCase().Execute(cmd.Context(), dto.PlanRepaymentRequest{
				LoanAmount:   principal,
				InterestRate: annual,
				TenureYears:  years,
			})
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), root.output, resp)
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "", "Loan amount")
	cmd.Flags().StringVar(&rate, "rate", "", "Annual interest rate in percent")
	cmd.Flags().IntVar(&years, "years", 0, "Tenure in years")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("years")
	return cmd
}

func newMaturityCommand(root *rootOptions) *cobra.Command {
	var amount, rate, period, start string
	cmd := &cobra.Command{
		Use:     "maturity",
		Short:   "Quote the maturity amount and date of a fixed deposit",
		Example: `  decisionctl maturity --amount 100000 --rate 7.25 --period 1.5 --start 2026-01-01`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			principal, err := parseDecimal("amount", amount)
			if err != nil {
				return err
			}
			annual, err := parseDecimal("rate", rate)
			if err != nil {
				return err
			}
			years, err := parseDecimal("period", period)
			if err != nil {
				return err
			}
			req := dto.QuoteDepositRequest{Amount: principal, InterestRate: annual, PeriodYears: years}
			if start != "" {
				req.StartDate, err = time.Parse(time.DateOnly, start)
				if err != nil {
					return fmt.Errorf("invalid --start %q: want YYYY-MM-DD", start)
				}
			}

			resp, err := usecase.NewQuoteDepositUseCase().Execute(cmd.Context(), req)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), root.output, resp)
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "", "Deposit amount")
	cmd.Flags().StringVar(&rate, "rate", "", "Annual interest rate in percent")
	cmd.Flags().StringVar(&period, "period", "", "Deposit period in years (fractions allowed)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD); defaults to today")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("period")
	return cmd
}

func parseDecimal(flag, v string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s %q: %w", flag, v, err)
	}
	return d, nil
}
