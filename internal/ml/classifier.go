package ml

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	randomforest "github.com/malaschitz/randomForest"

	"github.com/docuflow/docuflow/internal/common"
	"github.com/docuflow/docuflow/internal/model"
)

const (
	// numTrees is the forest size.
	numTrees = 100
	// maxTopTerms caps the salient terms reported per prediction.
	maxTopTerms = 5
	// trainSeed fixes the bootstrap sampling sequence so a single training
	// run is reproducible.
	trainSeed = 42
)

// ModelStore persists the trained-model blob. Implementations must write
// atomically: a partially-written blob must never load as valid.
type ModelStore interface {
	SaveModel(ctx context.Context, blob []byte) error
	LoadModel(ctx context.Context) ([]byte, error)
}

// Classifier predicts a document category from text using TF-IDF features
// and a random forest. Training happens lazily on first use (exactly once,
// concurrent callers block on the mutex and reuse the result) or explicitly
// via Train, which replaces the model wholesale.
type Classifier struct {
	store      ModelStore
	vectorizer *Vectorizer
	forest     *randomforest.Forest
	trainedAt  time.Time
	classes    []model.Category
	samples    int
	mu         sync.Mutex
	trained    bool
}

// Info describes the current model state.
type Info struct {
	TrainedAt time.Time
	Classes   []model.Category
	Trees     int
	Features  int
	Samples   int
	Trained   bool
}

// NewClassifier creates a classifier. store may be nil, in which case the
// model lives only in memory.
func NewClassifier(store ModelStore) *Classifier {
	return &Classifier{store: store}
}

// Predict returns the predicted category, its probability as confidence, the
// full class distribution, and the top salient terms. It never returns an
// error: internal failures yield a degraded prediction with an error marker.
// The first call may train the model synchronously.
func (c *Classifier) Predict(ctx context.Context, text string) (pred model.Prediction) {
	defer func() {
		if r := recover(); r != nil {
			common.LogError(fmt.Errorf("inference panic: %v", r), "statistical classifier failed", nil)
			pred = degradedPrediction(fmt.Sprintf("inference panic: %v", r))
		}
	}()

	vectorizer, forest, classes, err := c.ensureTrained(ctx)
	if err != nil {
		common.LogError(err, "statistical classifier unavailable", nil)
		return degradedPrediction(err.Error())
	}

	features := vectorizer.Transform(text)
	votes := forest.Vote(features)
	if len(votes) != len(classes) {
		return degradedPrediction(fmt.Sprintf("vote size %d does not match %d classes", len(votes), len(classes)))
	}

	probabilities := make(map[model.Category]float64, len(classes))
	best := 0
	for i, class := range classes {
		probabilities[class] = votes[i]
		if votes[i] > votes[best] {
			best = i
		}
	}

	return model.Prediction{
		Category:      classes[best],
		Confidence:    votes[best],
		Probabilities: probabilities,
		TopTerms:      vectorizer.TopTerms(text, maxTopTerms),
	}
}

// Train fits the model on the given samples, replacing any existing model.
// Empty samples fall back to the bundled corpus. The trained model is
// persisted through the store when one is configured.
func (c *Classifier) Train(ctx context.Context, samples []model.TrainingSample) error {
	if len(samples) == 0 {
		samples = BundledCorpus()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.trainLocked(ctx, samples)
}

// Warmup ensures a model is ready, training lazily if needed. It lets
// callers pay the training cost at initialization instead of on the first
// Predict in the query path.
func (c *Classifier) Warmup(ctx context.Context) error {
	_, _, _, err := c.ensureTrained(ctx)
	return err
}

// Trained reports whether a model is ready.
func (c *Classifier) Trained() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.trained
}

// ModelInfo returns the current model state.
func (c *Classifier) ModelInfo() Info {
	c.mu.Lock()
	defer c.mu.Unlock()

	info := Info{Trained: c.trained}
	if c.trained {
		info.Trees = numTrees
		info.Features = c.vectorizer.Features()
		info.Classes = c.classes
		info.Samples = c.samples
		info.TrainedAt = c.trainedAt
	}
	return info
}

// ensureTrained returns the model components, training or loading first if
// no model is ready. The mutex guarantees exactly-once training under
// concurrent first use.
func (c *Classifier) ensureTrained(ctx context.Context) (*Vectorizer, *randomforest.Forest, []model.Category, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.trained {
		return c.vectorizer, c.forest, c.classes, nil
	}

	if c.store != nil {
		err := c.loadLocked(ctx)
		if err == nil {
			return c.vectorizer, c.forest, c.classes, nil
		}
		if !errors.Is(err, common.ErrNotFound) {
			common.LogError(err, "failed to load persisted model, retraining", nil)
		}
	}

	slog.Info("no trained model available, training on bundled corpus")
	if err := c.trainLocked(ctx, BundledCorpus()); err != nil {
		return nil, nil, nil, err
	}
	return c.vectorizer, c.forest, c.classes, nil
}

func (c *Classifier) trainLocked(ctx context.Context, samples []model.TrainingSample) error {
	// The class list is sized from the corpus itself. Labeling against the
	// fixed five-way index would desynchronize Vote's output length from the
	// class list whenever a corpus omits the highest-indexed categories.
	classes, err := presentClasses(samples)
	if err != nil {
		return err
	}
	if len(classes) < 2 {
		return fmt.Errorf("%w: got %d from %d samples", common.ErrInsufficientClasses, len(classes), len(samples))
	}
	classIndex := make(map[model.Category]int, len(classes))
	for i, class := range classes {
		classIndex[class] = i
	}

	texts := make([]string, len(samples))
	labels := make([]int, len(samples))
	for i, sample := range samples {
		texts[i] = sample.Text
		labels[i] = classIndex[sample.Label]
	}

	vectorizer := &Vectorizer{}
	vectors := vectorizer.FitTransform(texts)
	if vectorizer.Features() == 0 {
		return fmt.Errorf("%w: vocabulary is empty after fitting %d samples", common.ErrEmptyCorpus, len(samples))
	}

	// Skewed corpora (a feedback log is usually dominated by the commonly
	// misfiled categories) must not bias the forest toward the majority
	// class.
	balancedX, balancedY := balanceTraining(vectors, labels, len(classes))

	start := time.Now()
	forest := trainForest(balancedX, balancedY)

	c.vectorizer = vectorizer
	c.forest = forest
	c.classes = classes
	c.samples = len(samples)
	c.trainedAt = time.Now().UTC()
	c.trained = true

	slog.Info("trained statistical classifier",
		"samples", len(samples),
		"rows", len(balancedX),
		"classes", len(classes),
		"features", vectorizer.Features(),
		"trees", numTrees,
		"duration", time.Since(start))

	if c.store != nil {
		if err := c.saveLocked(ctx, balancedX, balancedY); err != nil {
			// A persistence failure leaves a working in-memory model.
			common.LogError(err, "failed to persist trained model", nil)
		}
	}
	return nil
}

// presentClasses validates every label and returns the categories the corpus
// actually covers, in definition order.
func presentClasses(samples []model.TrainingSample) ([]model.Category, error) {
	seen := make(map[model.Category]bool, len(samples))
	for _, sample := range samples {
		if !sample.Label.Valid() {
			return nil, fmt.Errorf("%w: %q", model.ErrUnknownCategory, sample.Label)
		}
		seen[sample.Label] = true
	}

	classes := make([]model.Category, 0, len(seen))
	for _, class := range model.Categories() {
		if seen[class] {
			classes = append(classes, class)
		}
	}
	return classes, nil
}

// balanceTraining oversamples minority classes until every class contributes
// as many rows as the largest one, cycling each class's rows in order.
func balanceTraining(vectors [][]float64, labels []int, classCount int) ([][]float64, []int) {
	byClass := make([][]int, classCount)
	for row, label := range labels {
		byClass[label] = append(byClass[label], row)
	}

	target := 0
	for _, rows := range byClass {
		if len(rows) > target {
			target = len(rows)
		}
	}

	balancedX := make([][]float64, 0, target*classCount)
	balancedY := make([]int, 0, target*classCount)
	for class, rows := range byClass {
		for n := 0; n < target; n++ {
			balancedX = append(balancedX, vectors[rows[n%len(rows)]])
			balancedY = append(balancedY, class)
		}
	}
	return balancedX, balancedY
}

// trainForest builds and trains a forest on the given matrix. The library
// bootstraps from math/rand's global source, so it is seeded first.
func trainForest(x [][]float64, y []int) *randomforest.Forest {
	rand.Seed(trainSeed)
	forest := &randomforest.Forest{
		Data: randomforest.ForestData{X: x, Class: y},
	}
	forest.Train(numTrees)
	return forest
}

// modelSnapshot is the gob-persisted model state. The forest is rebuilt from
// the training matrix on load, keeping the blob independent of the forest
// library's internal layout.
type modelSnapshot struct {
	Vocabulary map[string]int
	TrainedAt  time.Time
	IDF        []float64
	Classes    []model.Category
	X          [][]float64
	Y          []int
	Samples    int
}

func (c *Classifier) saveLocked(ctx context.Context, vectors [][]float64, labels []int) error {
	snap := modelSnapshot{
		Vocabulary: c.vectorizer.Vocabulary,
		IDF:        c.vectorizer.IDF,
		Classes:    c.classes,
		X:          vectors,
		Y:          labels,
		Samples:    c.samples,
		TrainedAt:  c.trainedAt,
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(snap); err != nil {
		return fmt.Errorf("failed to encode model snapshot: %w", err)
	}
	if err := c.store.SaveModel(ctx, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to save model blob: %w", err)
	}
	return nil
}

func (c *Classifier) loadLocked(ctx context.Context) error {
	blob, err := c.store.LoadModel(ctx)
	if err != nil {
		return err
	}

	var snap modelSnapshot
	if err := gob.NewDecoder(bytes.NewReader(blob)).Decode(&snap); err != nil {
		return fmt.Errorf("failed to decode model snapshot: %w", err)
	}
	if len(snap.X) == 0 || len(snap.IDF) == 0 || len(snap.Classes) < 2 {
		return fmt.Errorf("model snapshot is incomplete")
	}

	c.vectorizer = &Vectorizer{Vocabulary: snap.Vocabulary, IDF: snap.IDF}
	c.forest = trainForest(snap.X, snap.Y)
	c.classes = snap.Classes
	c.samples = snap.Samples
	c.trainedAt = snap.TrainedAt
	c.trained = true

	slog.Info("loaded persisted model", "features", len(snap.IDF), "samples", snap.Samples)
	return nil
}

func degradedPrediction(marker string) model.Prediction {
	return model.Prediction{
		Category:      model.CategoryOther,
		Confidence:    0.0,
		Probabilities: map[model.Category]float64{},
		Err:           marker,
	}
}
