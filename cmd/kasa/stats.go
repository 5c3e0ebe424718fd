package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kasaapp/kasa/internal/cli"
	"github.com/kasaapp/kasa/internal/currency"
	"github.com/kasaapp/kasa/internal/model"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show this month's statistics and budget advice",
		Long: `Aggregate the current calendar month: income, expenses, savings and
savings rate, the top expense categories, and rule-based budget advice.
All amounts are converted to the home currency.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, cleanup, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			stats := a.MonthlyStats()
			if stats == nil {
				fmt.Println(cli.InfoStyle.Render("No data yet. Run 'kasa setup' first."))
				return nil
			}

			fmt.Println(cli.FormatTitle("This Month"))
			fmt.Printf("Income:   %s\n", cli.FormatAmount(stats.TotalIncome, currency.HomeCode))
			fmt.Printf("Expenses: %s\n", cli.FormatAmount(stats.TotalExpenses, currency.HomeCode))
			fmt.Printf("Savings:  %s (%s)\n",
				cli.FormatAmount(stats.Savings, currency.HomeCode),
				cli.FormatPercent(stats.SavingsRate))

			if len(stats.TopCategories) > 0 {
				fmt.Println()
				fmt.Println(cli.BoldStyle.Render(cli.ChartIcon + " Top Categories"))

				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				for _, spend := range stats.TopCategories {
					fmt.Fprintf(w, "%s\t%s\t%s\n",
						spend.Category,
						cli.FormatAmount(spend.Amount, currency.HomeCode),
						cli.FormatPercent(spend.Percentage))
				}
				_ = w.Flush()
			}

			advice := a.BudgetAdvice()
			if len(advice) > 0 {
				fmt.Println()
				fmt.Println(cli.BoldStyle.Render(cli.MoneyIcon + " Budget Advice"))
				for _, entry := range advice {
					printAdvice(entry)
				}
			}

			return nil
		},
	}
}

func printAdvice(entry model.BudgetAdvice) {
	title := entry.Title
	if entry.HasAmount {
		title = fmt.Sprintf("%s (%s)", title, cli.FormatAmount(entry.Amount, entry.Currency))
	}

	switch entry.Kind {
	case model.AdviceSavings:
		fmt.Println(cli.FormatSuccess(title))
	case model.AdviceWarning:
		fmt.Println(cli.FormatWarning(title))
	default:
		fmt.Println(cli.FormatInfo(title))
	}
	fmt.Println(cli.SubtleStyle.Render("  " + strings.TrimSpace(entry.Description)))
}
