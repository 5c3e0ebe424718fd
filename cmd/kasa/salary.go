package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kasaapp/kasa/internal/cli"
	"github.com/kasaapp/kasa/internal/model"
)

func salaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "salary",
		Short: "Track your salary schedule",
		Long: `Show where today falls relative to your pay window, mark salary as
received, and record absences that reduce next month's projected pay.`,
	}

	cmd.AddCommand(salaryStatusCmd())
	cmd.AddCommand(salaryReceivedCmd())
	cmd.AddCommand(salaryAbsencesCmd())

	return cmd
}

func salaryStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show today's salary status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, cleanup, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			status, err := a.SalaryStatus()
			if err != nil {
				return err
			}

			info := a.Profile().SalaryInfo
			fmt.Println(cli.FormatTitle("Salary Status"))
			fmt.Printf("Salary: %s\n", cli.FormatAmount(info.Amount, info.Currency))

			switch status.State {
			case model.SalaryReceived, model.SalaryDue:
				fmt.Println(cli.FormatSuccess(status.Message))
			case model.SalaryDelayed:
				fmt.Println(cli.FormatWarning(status.Message))
			case model.SalaryOverdue:
				fmt.Println(cli.FormatError(status.Message))
			default:
				fmt.Println(cli.FormatInfo(status.Message))
			}

			if info.HasEstimate {
				fmt.Printf("Next month estimate: %s (daily rate %s, %d absences)\n",
					cli.FormatAmount(info.NextMonthEstimate, info.Currency),
					cli.FormatAmount(info.DailyRate, info.Currency),
					len(info.Absences))
			}

			next, err := a.NextPayment()
			if err != nil {
				return err
			}
			fmt.Printf("Next payment: %s (%d days)\n",
				next.Date.Format("2006-01-02"), next.DaysUntil)

			return nil
		},
	}
}

func salaryReceivedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "received",
		Short: "Mark this month's salary as received",
		Long: `Record that salary landed today. An income transaction for the
configured amount is appended to the ledger. Follow up with
'kasa salary absences' to record last month's absences so next month's
pay can be projected.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, cleanup, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			txn, err := a.MarkSalaryReceived(ctx)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Salary %s recorded as income (%s)",
				cli.FormatAmount(txn.Amount, txn.Currency), txn.ID)))
			fmt.Println(cli.FormatInfo("Record absences with 'kasa salary absences' to project next month's pay."))
			return nil
		},
	}
}

func salaryAbsencesCmd() *cobra.Command {
	var (
		dates  []string
		reason string
	)

	cmd := &cobra.Command{
		Use:   "absences",
		Short: "Record absences and project next month's salary",
		Long: `Record the days you did not work. Each absence deducts one daily rate
(salary divided by working days per month) from next month's projected pay.
The given dates replace any previously recorded absences.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			absences := make([]model.Attendance, 0, len(dates))
			for _, d := range dates {
				if _, err := time.ParseInLocation("2006-01-02", d, time.Local); err != nil {
					return fmt.Errorf("invalid absence date %q: %w", d, err)
				}
				absences = append(absences, model.Attendance{
					Date:     d,
					IsAbsent: true,
					Reason:   reason,
				})
			}

			a, cleanup, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			estimate, err := a.SaveAttendance(ctx, absences)
			if err != nil {
				return err
			}

			info := a.Profile().SalaryInfo
			fmt.Println(cli.FormatSuccess(fmt.Sprintf(
				"Recorded %d absences. Next month estimate: %s",
				len(absences), cli.FormatAmount(estimate, info.Currency))))
			if estimate < 0 {
				fmt.Println(cli.FormatWarning("Projected salary is negative; check the recorded absences."))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&dates, "date", nil, "Absence date (YYYY-MM-DD, repeatable)")
	cmd.Flags().StringVar(&reason, "reason", "", "Optional reason applied to the given dates")

	return cmd
}
