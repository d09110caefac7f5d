package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/docuflow/docuflow/internal/cli"
	"github.com/docuflow/docuflow/internal/model"
)

func retrainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "retrain [corpus-file]",
		Short: "Retrain the statistical model",
		Long: `Retrain the statistical model and persist the new model.

With no arguments the bundled corpus is used. A corpus file holds one sample
per line as label<TAB>text; --include-feedback appends the recorded feedback
log to the training set.

Examples:
  docuflow retrain
  docuflow retrain corpus.tsv
  docuflow retrain corpus.tsv --include-feedback`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRetrain,
	}

	cmd.Flags().Bool("include-feedback", false, "Append the feedback log to the training set")

	return cmd
}

func runRetrain(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	includeFeedback, _ := cmd.Flags().GetBool("include-feedback")

	var samples []model.TrainingSample
	if len(args) == 1 {
		loaded, err := loadCorpus(args[0])
		if err != nil {
			return err
		}
		samples = loaded
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(store)

	if includeFeedback {
		entries, listErr := store.ListFeedback(ctx)
		if listErr != nil {
			return listErr
		}
		for _, entry := range entries {
			samples = append(samples, model.TrainingSample{Label: entry.Label, Text: entry.Text})
		}
		if len(args) == 0 && len(samples) == 0 {
			cmd.Println(cli.FormatWarning("Feedback log is empty, training on the bundled corpus"))
		}
	}

	eng, classifier, err := buildEngine(store)
	if err != nil {
		return err
	}

	if err := eng.Retrain(ctx, samples); err != nil {
		return fmt.Errorf("retraining failed: %w", err)
	}

	info := classifier.ModelInfo()
	cmd.Println(cli.FormatSuccess(fmt.Sprintf(
		"Model retrained on %d samples (%d features, %d trees)",
		info.Samples, info.Features, info.Trees)))
	return nil
}

// loadCorpus reads label<TAB>text samples from path, one per line. Blank
// lines and #-comments are skipped.
func loadCorpus(path string) ([]model.TrainingSample, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus: %w", err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat corpus: %w", err)
	}

	bar := progressbar.DefaultBytes(info.Size(), "Reading corpus")

	var samples []model.TrainingSample
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		_ = bar.Add(len(line) + 1)

		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		sample, parseErr := parseCorpusLine(line)
		if parseErr != nil {
			return nil, fmt.Errorf("corpus line %d: %w", lineNo, parseErr)
		}
		samples = append(samples, sample)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}
	_ = bar.Finish()

	if len(samples) == 0 {
		return nil, fmt.Errorf("corpus %s holds no samples", path)
	}
	return samples, nil
}
