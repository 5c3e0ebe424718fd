package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/kasaapp/kasa/internal/app"
	"github.com/kasaapp/kasa/internal/cli"
	"github.com/kasaapp/kasa/internal/currency"
	"github.com/kasaapp/kasa/internal/model"
)

// transactionFlags is the shared flag set for add and replace.
type transactionFlags struct {
	amount       float64
	currencyCode string
	categoryID   string
	description  string
	date         string
	income       bool
}

func (f *transactionFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.amount, "amount", 0, "Transaction amount (positive)")
	cmd.Flags().StringVar(&f.currencyCode, "currency", currency.HomeCode, "Currency code")
	cmd.Flags().StringVar(&f.categoryID, "category", "", "Category id (see 'kasa categories list')")
	cmd.Flags().StringVar(&f.description, "description", "", "What this transaction was for")
	cmd.Flags().StringVar(&f.date, "date", "", "Transaction date (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&f.income, "income", false, "Record as income instead of expense")
}

func (f *transactionFlags) build() (model.Transaction, error) {
	kind := model.KindExpense
	if f.income {
		kind = model.KindIncome
	}

	txn := model.Transaction{
		Amount:      f.amount,
		Currency:    f.currencyCode,
		CategoryID:  f.categoryID,
		Description: f.description,
		Kind:        kind,
	}

	if f.date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", f.date, time.Local)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("invalid date %q: %w", f.date, err)
		}
		txn.Date = parsed
	}

	return txn, nil
}

func addCmd() *cobra.Command {
	var flags transactionFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Long:  `Record an income or expense transaction in the ledger.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, cleanup, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			txn, err := flags.build()
			if err != nil {
				return err
			}

			stored, err := a.AddTransaction(ctx, txn)
			if err != nil {
				return fmt.Errorf("failed to add transaction: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s %s (%s)",
				stored.Kind, cli.FormatAmount(stored.Amount, stored.Currency), stored.ID)))
			return nil
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Manage the transaction ledger",
		Long:  `List, delete, and replace recorded transactions.`,
	}

	cmd.AddCommand(listTransactionsCmd())
	cmd.AddCommand(deleteTransactionCmd())
	cmd.AddCommand(replaceTransactionCmd())

	return cmd
}

func listTransactionsCmd() *cobra.Command {
	var monthOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, cleanup, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			txns := a.Transactions()
			if monthOnly {
				now := time.Now()
				filtered := make([]model.Transaction, 0, len(txns))
				for _, t := range txns {
					if t.Date.Year() == now.Year() && t.Date.Month() == now.Month() {
						filtered = append(filtered, t)
					}
				}
				txns = filtered
			}

			if len(txns) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions found. Use 'kasa add' to record one."))
				return nil
			}

			printTransactionTable(a, txns)
			return nil
		},
	}

	cmd.Flags().BoolVar(&monthOnly, "month", false, "Only show the current calendar month")

	return cmd
}

func printTransactionTable(a *app.App, txns []model.Transaction) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		cli.TableHeaderStyle.Render("ID"),
		cli.TableHeaderStyle.Render("Date"),
		cli.TableHeaderStyle.Render("Kind"),
		cli.TableHeaderStyle.Render("Amount"),
		cli.TableHeaderStyle.Render("Category"),
		cli.TableHeaderStyle.Render("Description"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 13),
		strings.Repeat("-", 10),
		strings.Repeat("-", 7),
		strings.Repeat("-", 12),
		strings.Repeat("-", 16),
		strings.Repeat("-", 30))

	for _, t := range txns {
		categoryName := model.UnknownCategoryName
		glyph := cli.CategoryGlyph("")
		if cat := a.FindCategory(t.CategoryID); cat != nil {
			categoryName = cat.Name
			glyph = cli.CategoryGlyph(cat.Icon)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s %s\t%s\n",
			t.ID,
			t.Date.Format("2006-01-02"),
			t.Kind,
			cli.FormatAmount(t.Amount, t.Currency),
			glyph, categoryName,
			t.Description)
	}
}

func deleteTransactionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, cleanup, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.DeleteTransaction(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete transaction: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted transaction %s", args[0])))
			return nil
		},
	}
}

func replaceTransactionCmd() *cobra.Command {
	var flags transactionFlags

	cmd := &cobra.Command{
		Use:   "replace <id>",
		Short: "Replace a transaction's contents, keeping its id",
		Long: `Replace swaps a transaction's contents in a single ledger write. The
record keeps its id and is never transiently missing from the ledger.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, cleanup, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			txn, err := flags.build()
			if err != nil {
				return err
			}

			stored, err := a.ReplaceTransaction(ctx, args[0], txn)
			if err != nil {
				return fmt.Errorf("failed to replace transaction: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Replaced transaction %s with %s %s",
				stored.ID, stored.Kind, cli.FormatAmount(stored.Amount, stored.Currency))))
			return nil
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}
