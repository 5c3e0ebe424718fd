package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kasaapp/kasa/internal/app"
	"github.com/kasaapp/kasa/internal/cli"
	"github.com/kasaapp/kasa/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage income and expense categories",
		Long:  `List, add, update, and delete the categories transactions are filed under.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(updateCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, cleanup, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("ID"),
				cli.TableHeaderStyle.Render("Kind"),
				cli.TableHeaderStyle.Render(""),
				cli.TableHeaderStyle.Render("Name"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 13),
				strings.Repeat("-", 7),
				"--",
				strings.Repeat("-", 20))

			for _, cat := range a.AllCategories() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					cat.ID, cat.Kind, cli.CategoryGlyph(cat.Icon), cat.Name)
			}

			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var (
		icon   string
		emoji  string
		color  string
		income bool
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, cleanup, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			kind := model.CategoryKindExpense
			if income {
				kind = model.CategoryKindIncome
			}

			cat, err := a.AddCategory(ctx, model.Category{
				Name:  args[0],
				Icon:  icon,
				Emoji: emoji,
				Color: color,
				Kind:  kind,
			})
			if err != nil {
				return fmt.Errorf("failed to add category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created %s category %q (%s)",
				cat.Kind, cat.Name, cat.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&icon, "icon", "more-horizontal", "Icon identifier")
	cmd.Flags().StringVar(&emoji, "emoji", "", "Optional emoji shown next to the name")
	cmd.Flags().StringVar(&color, "color", "#AED6F1", "Display color (hex)")
	cmd.Flags().BoolVar(&income, "income", false, "Create an income category instead of expense")

	return cmd
}

func updateCategoryCmd() *cobra.Command {
	var patch app.CategoryPatch

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a category's display fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, cleanup, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			cat, err := a.UpdateCategory(ctx, args[0], patch)
			if err != nil {
				return fmt.Errorf("failed to update category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated category %q (%s)", cat.Name, cat.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&patch.Name, "name", "", "New display name")
	cmd.Flags().StringVar(&patch.Icon, "icon", "", "New icon identifier")
	cmd.Flags().StringVar(&patch.Emoji, "emoji", "", "New emoji")
	cmd.Flags().StringVar(&patch.Color, "color", "", "New display color (hex)")

	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Long: `Delete a category. The last remaining category of a kind cannot be
deleted; transactions already filed under a deleted category show as
"Unknown" in statistics.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, cleanup, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.DeleteCategory(ctx, args[0]); err != nil {
				if errors.Is(err, model.ErrLastCategory) {
					fmt.Println(cli.FormatError("At least one category of each kind must remain."))
				}
				return fmt.Errorf("failed to delete category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted category %s", args[0])))
			return nil
		},
	}
}
