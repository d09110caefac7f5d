package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/docuflow/docuflow/internal/common"
	"github.com/docuflow/docuflow/internal/config"
	"github.com/docuflow/docuflow/internal/engine"
	"github.com/docuflow/docuflow/internal/extract"
	"github.com/docuflow/docuflow/internal/ml"
	"github.com/docuflow/docuflow/internal/model"
	"github.com/docuflow/docuflow/internal/routing"
	"github.com/docuflow/docuflow/internal/rules"
	"github.com/docuflow/docuflow/internal/storage"
)

// openStore opens the configured database, applying migrations.
func openStore() (*storage.SQLiteStore, error) {
	dbPath := config.DatabasePath(viper.GetViper())
	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return store, nil
}

func closeStore(store *storage.SQLiteStore) {
	if err := store.Close(); err != nil {
		slog.Error("Failed to close database", "error", err)
	}
}

// buildEngine wires the hybrid engine against the store: the model blob is
// persisted there and feedback goes to its append-only log.
func buildEngine(store *storage.SQLiteStore) (*engine.Engine, *ml.Classifier, error) {
	scorer, err := rules.NewDefaultScorer()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build rule scorer: %w", err)
	}

	classifier := ml.NewClassifier(store)
	eng := engine.New(scorer, classifier, engine.WithFeedbackStore(store))
	return eng, classifier, nil
}

// buildResolver creates the routing resolver with any persisted overrides
// applied on top of the default route table.
func buildResolver(ctx context.Context, store *storage.SQLiteStore) (*routing.Resolver, error) {
	resolver := routing.NewResolver()

	overrides, err := store.ListRoutingOverrides(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load routing overrides: %w", err)
	}
	for category, route := range overrides {
		if err := resolver.SetRoute(category, route); err != nil {
			return nil, fmt.Errorf("invalid routing override for %s: %w", category, err)
		}
	}
	return resolver, nil
}

// readDocument extracts classifiable text from the file at path. Extraction
// failures (unsupported format, no text, timeout) degrade to empty text so
// the pipeline still produces its deterministic empty-input answer.
func readDocument(ctx context.Context, path string) string {
	extractor := extract.NewTextExtractor()
	text, err := extractor.Extract(ctx, path)
	if err != nil {
		if common.IsExtractionFailure(err) {
			slog.Warn("Extraction failed, treating document as empty", "path", path, "error", err)
			return ""
		}
		slog.Error("Failed to read document", "path", path, "error", err)
		return ""
	}
	return text
}

// parseCorpusLine parses a "label<TAB>text" training line.
func parseCorpusLine(line string) (model.TrainingSample, error) {
	label, text, found := strings.Cut(line, "\t")
	if !found {
		return model.TrainingSample{}, errors.New("expected label<TAB>text")
	}

	category, err := model.ParseCategory(label)
	if err != nil {
		return model.TrainingSample{}, err
	}
	if strings.TrimSpace(text) == "" {
		return model.TrainingSample{}, errors.New("empty sample text")
	}
	return model.TrainingSample{Label: category, Text: text}, nil
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
