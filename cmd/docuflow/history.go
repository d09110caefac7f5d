package main

import (
	"github.com/spf13/cobra"

	"github.com/docuflow/docuflow/internal/cli"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent classifications",
		RunE:  runHistory,
	}

	cmd.Flags().IntP("limit", "n", 20, "Maximum entries to show (0 = all)")

	return cmd
}

func runHistory(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(store)

	records, err := store.ListClassifications(ctx, limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		cmd.Println(cli.SubtleStyle.Render("No classifications recorded yet"))
		return nil
	}

	cmd.Println(cli.FormatTitle("Classification history"))
	for _, rec := range records {
		source := rec.SourcePath
		if source == "" {
			source = "(inline text)"
		}
		cmd.Printf("%s  %-15s %s %s  %s\n",
			rec.ClassifiedAt.Format("2006-01-02 15:04"),
			rec.Category,
			cli.FormatConfidence(rec.Confidence),
			cli.FormatDecision(rec.Decision),
			cli.SubtleStyle.Render(source))
	}
	return nil
}
