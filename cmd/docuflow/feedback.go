package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docuflow/docuflow/internal/cli"
	"github.com/docuflow/docuflow/internal/model"
)

func feedbackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Record a classification correction",
		Long: `Record the correct label for a document in the feedback log.

Feedback never retrains the live model; run "docuflow retrain
--include-feedback" to fold the log into a new model.

Examples:
  docuflow feedback --label Invoice --file misfiled.txt
  docuflow feedback --label "Bank Statement" --text "Opening balance ..."`,
		RunE: runFeedback,
	}

	cmd.Flags().StringP("label", "l", "", "Correct category (required)")
	cmd.Flags().StringP("file", "f", "", "Document whose text to record")
	cmd.Flags().StringP("text", "t", "", "Text to record directly")
	_ = cmd.MarkFlagRequired("label")

	return cmd
}

func runFeedback(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	labelArg, _ := cmd.Flags().GetString("label")
	filePath, _ := cmd.Flags().GetString("file")
	inlineText, _ := cmd.Flags().GetString("text")

	label, err := model.ParseCategory(labelArg)
	if err != nil {
		return err
	}

	var text string
	switch {
	case filePath != "":
		if !fileExists(filePath) {
			return fmt.Errorf("no such file: %s", filePath)
		}
		text = readDocument(ctx, filePath)
		if text == "" {
			return fmt.Errorf("no usable text in %s", filePath)
		}
	case inlineText != "":
		text = inlineText
	default:
		return fmt.Errorf("provide --file or --text")
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

	if err := eng.SubmitFeedback(ctx, text, label); err != nil {
		return err
	}

	cmd.Println(cli.FormatSuccess(fmt.Sprintf("Feedback recorded as %s", label)))
	return nil
}
