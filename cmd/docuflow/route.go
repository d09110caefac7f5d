package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/docuflow/docuflow/internal/cli"
	"github.com/docuflow/docuflow/internal/config"
)

func routeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route <file>",
		Short: "Classify a document and file it into its department folder",
		Long: `Classify a document and copy it into the matching department folder under
the configured output directory. The source file is never moved or deleted.

Examples:
  docuflow route statement.txt
  docuflow route invoice.txt --output-dir /srv/routed`,
		Args: cobra.ExactArgs(1),
		RunE: runRoute,
	}

	cmd.Flags().StringP("output-dir", "o", "", "Destination root (defaults to routing.output_dir)")
	_ = viper.BindPFlag("routing.output_dir_flag", cmd.Flags().Lookup("output-dir"))

	return cmd
}

func runRoute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	sourcePath := args[0]

	if !fileExists(sourcePath) {
		return fmt.Errorf("no such file: %s", sourcePath)
	}

	outputDir := viper.GetString("routing.output_dir_flag")
	if outputDir == "" {
		outputDir = config.OutputDir(viper.GetViper())
	} else {
		outputDir = config.ExpandPath(outputDir)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(store)

	eng, _, err := buildEngine(store)
	if err != nil {
		return err
	}
	resolver, err := buildResolver(ctx, store)
	if err != nil {
		return err
	}

	text := readDocument(ctx, sourcePath)
	result := eng.Classify(ctx, text)
	decision := resolver.Route(result.Category, sourcePath, outputDir)

	if _, saveErr := store.SaveClassification(ctx, result, sourcePath); saveErr != nil {
		return fmt.Errorf("failed to record classification: %w", saveErr)
	}

	cmd.Printf("Category:   %s %s\n", cli.FormatCategory(result.Category), cli.FormatDecision(result.Decision))
	cmd.Printf("Confidence: %s\n", cli.FormatConfidence(result.Confidence))

	if !decision.Success {
		cmd.Println(cli.FormatError(fmt.Sprintf("Routing failed: %s", decision.Err)))
		return fmt.Errorf("routing failed for %s", sourcePath)
	}

	cmd.Println(cli.FormatSuccess(fmt.Sprintf("Filed to %s (%s)", decision.Path, decision.Department)))
	return nil
}
