package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/kasaapp/kasa/internal/cli"
	"github.com/kasaapp/kasa/internal/model"
	"github.com/kasaapp/kasa/internal/ofx"
)

func importCmd() *cobra.Command {
	var (
		dryRun            bool
		expenseCategoryID string
		incomeCategoryID  string
	)

	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import transactions from OFX/QFX files",
		Long: `Import transactions from OFX or QFX (Quicken) files exported from your
bank. Debits become expenses and credits become income, filed under the
given fallback categories.

Examples:
  # Import a single file
  kasa import ~/Downloads/statement_jan.qfx

  # Import every QFX file in a directory
  kasa import ~/Downloads/*.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// Expand globs and collect all files
			var allFiles []string
			for _, pattern := range args {
				matches, err := filepath.Glob(pattern)
				if err != nil {
					return fmt.Errorf("invalid pattern %s: %w", pattern, err)
				}
				if len(matches) == 0 {
					if _, err := os.Stat(pattern); err == nil {
						allFiles = append(allFiles, pattern)
					} else {
						slog.Warn("No files found matching pattern", "pattern", pattern)
					}
					continue
				}
				allFiles = append(allFiles, matches...)
			}
			if len(allFiles) == 0 {
				return fmt.Errorf("no files to import")
			}

			a, cleanup, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			parser := ofx.NewParser(expenseCategoryID, incomeCategoryID)

			bar := progressbar.NewOptions(len(allFiles),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Parsing statements..."),
			)

			var parsed []model.Transaction
			for _, path := range allFiles {
				file, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", path, err)
				}

				txns, err := parser.ParseFile(ctx, file)
				_ = file.Close()
				if err != nil {
					return fmt.Errorf("failed to parse %s: %w", path, err)
				}

				parsed = append(parsed, txns...)
				_ = bar.Add(1)
			}
			fmt.Fprintln(os.Stderr)

			if dryRun {
				fmt.Println(cli.FormatInfo(fmt.Sprintf(
					"Dry run: %d transactions parsed from %d files, nothing saved.",
					len(parsed), len(allFiles))))
				printTransactionTable(a, parsed)
				return nil
			}

			imported, err := a.ImportTransactions(ctx, parsed)
			if err != nil {
				return fmt.Errorf("failed to import transactions: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf(
				"Imported %d transactions from %d files.", imported, len(allFiles))))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Preview import without saving")
	cmd.Flags().StringVar(&expenseCategoryID, "expense-category", "10", "Category id for imported debits")
	cmd.Flags().StringVar(&incomeCategoryID, "income-category", "15", "Category id for imported credits")

	return cmd
}
