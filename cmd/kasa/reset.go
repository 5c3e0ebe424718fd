package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kasaapp/kasa/internal/cli"
)

func resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all stored data",
		Long: `Reset removes everything: the profile, the ledger, categories, and the
salary tracking state. The next run starts from onboarding again.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if !force {
				fmt.Print(cli.FormatWarning("This deletes ALL data. Type 'yes' to continue: "))
				reader := bufio.NewReader(os.Stdin)
				answer, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("failed to read confirmation: %w", err)
				}
				if strings.TrimSpace(answer) != "yes" {
					fmt.Println(cli.FormatInfo("Reset cancelled."))
					return nil
				}
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.Reset(ctx); err != nil {
				return fmt.Errorf("failed to reset store: %w", err)
			}

			fmt.Println(cli.FormatSuccess("All data removed."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}
