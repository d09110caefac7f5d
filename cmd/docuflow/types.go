package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docuflow/docuflow/internal/cli"
	"github.com/docuflow/docuflow/internal/model"
	"github.com/docuflow/docuflow/internal/rules"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the known document categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			scorer, err := rules.NewDefaultScorer()
			if err != nil {
				return err
			}

			cmd.Println(cli.FormatTitle("Categories"))
			cmd.Printf("%d rule sets loaded\n\n", scorer.RuleCount())
			for _, category := range model.Categories() {
				cmd.Printf("  %s\n", cli.FormatCategory(category))
			}
			return nil
		},
	}
}

func routesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Show the routing table",
		Long: `Show where each category is filed: the department name and the folder
under the output directory. Overrides persisted with "routes set" are
reflected here.`,
		RunE: runRoutesList,
	}

	cmd.AddCommand(routesSetCmd())
	return cmd
}

func runRoutesList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(store)

	resolver, err := buildResolver(ctx, store)
	if err != nil {
		return err
	}

	cmd.Println(cli.FormatTitle("Routing table"))
	cmd.Println(cli.TableHeaderStyle.Render(fmt.Sprintf("%-15s %-18s %s", "Category", "Department", "Folder")))

	routes := resolver.Routes()
	for _, category := range model.Categories() {
		route := routes[category]
		cmd.Printf("%-15s %-18s %s\n", category, route.Department, route.Folder)
	}
	return nil
}

func routesSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <category> <department> <folder>",
		Short: "Override the route for a category",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			category, err := model.ParseCategory(args[0])
			if err != nil {
				return err
			}
			route := model.Route{Department: args[1], Folder: args[2]}

			store, err := openStore()
			if err != nil {
				return err
			}
			defer closeStore(store)

			if err := store.SaveRoutingOverride(ctx, category, route); err != nil {
				return err
			}
			cmd.Println(cli.FormatSuccess(fmt.Sprintf(
				"%s now routes to %s/%s", category, route.Department, route.Folder)))
			return nil
		},
	}
}
