package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/docuflow/docuflow/internal/cli"
	"github.com/docuflow/docuflow/internal/model"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [file]",
		Short: "Classify a document",
		Long: `Classify a document into one of the known categories.

Reads text from the given file, or from --text when no file is given. Both
classifiers always run; the ensemble decision explains which one won.

Examples:
  docuflow classify invoice.txt
  docuflow classify --text "Invoice #12345 Amount due: $500"
  docuflow classify report.md --explain`,
		Args: cobra.MaximumNArgs(1),
		RunE: runClassify,
	}

	cmd.Flags().StringP("text", "t", "", "Classify this text instead of a file")
	cmd.Flags().BoolP("explain", "e", false, "Show the full ensemble explanation")
	cmd.Flags().Bool("no-save", false, "Skip recording the result in history")

	_ = viper.BindPFlag("classify.explain", cmd.Flags().Lookup("explain"))
	_ = viper.BindPFlag("classify.no_save", cmd.Flags().Lookup("no-save"))

	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	inlineText, _ := cmd.Flags().GetString("text")
	explain := viper.GetBool("classify.explain")
	noSave := viper.GetBool("classify.no_save")

	var text, sourcePath string
	switch {
	case len(args) == 1:
		sourcePath = args[0]
		if !fileExists(sourcePath) {
			return fmt.Errorf("no such file: %s", sourcePath)
		}
		text = readDocument(ctx, sourcePath)
	case inlineText != "":
		text = inlineText
	default:
		return fmt.Errorf("provide a file argument or --text")
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

	result := eng.Classify(ctx, text)
	printResult(cmd, result, explain)

	if !noSave {
		if _, saveErr := store.SaveClassification(ctx, result, sourcePath); saveErr != nil {
			return fmt.Errorf("failed to record classification: %w", saveErr)
		}
	}
	return nil
}

func printResult(cmd *cobra.Command, result model.EnsembleResult, explain bool) {
	cmd.Println(cli.FormatTitle("Classification"))
	cmd.Printf("Category:   %s\n", cli.FormatCategory(result.Category))
	cmd.Printf("Confidence: %s %s\n", cli.FormatConfidence(result.Confidence), cli.FormatDecision(result.Decision))

	if !explain {
		return
	}

	cmd.Println()
	cmd.Println(cli.RenderBox("Explanation", result.Explanation()))
	if len(result.Factors) > 0 {
		for _, factor := range result.Factors {
			cmd.Printf("  - %s\n", factor)
		}
	}
	if result.Rule != nil {
		cmd.Println()
		cmd.Println(cli.TableHeaderStyle.Render("Rule scores"))
		for _, category := range sortedCategories(result.Rule.Scores) {
			cmd.Printf("  %-15s %.3f\n", category, result.Rule.Scores[category])
		}
		if len(result.Rule.Evidence) > 0 {
			cmd.Printf("  Evidence: %s\n", strings.Join(result.Rule.Evidence, "; "))
		}
	}
	if result.ML != nil && result.ML.Err == "" {
		cmd.Println()
		cmd.Println(cli.TableHeaderStyle.Render("Model probabilities"))
		for _, category := range sortedCategories(result.ML.Probabilities) {
			cmd.Printf("  %-15s %.3f\n", category, result.ML.Probabilities[category])
		}
		if len(result.ML.TopTerms) > 0 {
			cmd.Printf("  Top terms: %s\n", strings.Join(result.ML.TopTerms, ", "))
		}
	}
}

func sortedCategories(scores map[model.Category]float64) []model.Category {
	categories := make([]model.Category, 0, len(scores))
	for category := range scores {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		if scores[categories[i]] != scores[categories[j]] {
			return scores[categories[i]] > scores[categories[j]]
		}
		return categories[i] < categories[j]
	})
	return categories
}
