package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kasaapp/kasa/internal/cli"
	"github.com/kasaapp/kasa/internal/currency"
	"github.com/kasaapp/kasa/internal/model"
)

func setupCmd() *cobra.Command {
	var (
		amount            float64
		currencyCode      string
		windowStart       int
		windowEnd         int
		delayDays         int
		workingDays       int
		expenseCurrencies []string
		incomeCurrencies  []string
	)

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Configure your salary schedule and currencies",
		Long: `Complete the one-time onboarding: salary amount and currency, the
day-of-month window your salary normally arrives in, how many days of delay
are considered normal, and the currencies you record transactions in.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if amount <= 0 {
				return fmt.Errorf("salary amount must be positive")
			}
			if windowStart < 1 || windowStart > 31 {
				return fmt.Errorf("window-start must be a day of month (1-31)")
			}
			if windowEnd < windowStart || windowEnd > 31 {
				return fmt.Errorf("window-end must be a day of month on or after window-start")
			}
			if delayDays < 0 {
				return fmt.Errorf("delay-days cannot be negative")
			}
			if workingDays <= 0 {
				workingDays = model.DefaultWorkingDaysPerMonth
			}
			for _, code := range append(append([]string{currencyCode}, expenseCurrencies...), incomeCurrencies...) {
				if !currency.IsSupported(code) {
					return fmt.Errorf("unsupported currency %q", code)
				}
			}

			a, cleanup, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			profile := &model.UserProfile{
				SalaryInfo: model.SalaryInfo{
					Amount:              amount,
					Currency:            currencyCode,
					PaymentStartDay:     windowStart,
					PaymentEndDay:       windowEnd,
					PossibleDelayDays:   delayDays,
					WorkingDaysPerMonth: workingDays,
					Absences:            []model.Attendance{},
				},
				ExpenseCurrencies: expenseCurrencies,
				IncomeCurrencies:  incomeCurrencies,
			}

			if err := a.CompleteSetup(ctx, profile); err != nil {
				return fmt.Errorf("failed to complete setup: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf(
				"Setup complete. Salary %s expected between day %d and %d of each month.",
				cli.FormatAmount(amount, currencyCode), windowStart, windowEnd)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "Monthly salary amount")
	cmd.Flags().StringVar(&currencyCode, "currency", currency.HomeCode, "Salary currency code")
	cmd.Flags().IntVar(&windowStart, "window-start", 1, "First day of month salary is expected")
	cmd.Flags().IntVar(&windowEnd, "window-end", 5, "Last day of month salary is expected")
	cmd.Flags().IntVar(&delayDays, "delay-days", 3, "Days of delay considered normal")
	cmd.Flags().IntVar(&workingDays, "working-days", model.DefaultWorkingDaysPerMonth, "Working days per month")
	cmd.Flags().StringSliceVar(&expenseCurrencies, "expense-currencies", []string{currency.HomeCode}, "Currencies you record expenses in")
	cmd.Flags().StringSliceVar(&incomeCurrencies, "income-currencies", []string{currency.HomeCode}, "Currencies you record income in")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
