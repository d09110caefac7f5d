package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docuflow/docuflow/internal/cli"
)

func modelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "model",
		Short: "Show the trained model's state",
		RunE:  runModel,
	}
}

func runModel(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(store)

	eng, classifier, err := buildEngine(store)
	if err != nil {
		return err
	}
	if err := eng.Warmup(ctx); err != nil {
		return fmt.Errorf("failed to prepare model: %w", err)
	}

	info := classifier.ModelInfo()
	classes := make([]string, 0, len(info.Classes))
	for _, class := range info.Classes {
		classes = append(classes, string(class))
	}

	content := fmt.Sprintf(
		"Samples:    %d\nFeatures:   %d\nTrees:      %d\nClasses:    %s\nTrained at: %s",
		info.Samples, info.Features, info.Trees,
		strings.Join(classes, ", "),
		info.TrainedAt.Format("2006-01-02 15:04:05"))
	cmd.Println(cli.RenderBox("Model", content))
	return nil
}
