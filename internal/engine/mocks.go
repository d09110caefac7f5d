package engine

import (
	"context"
	"sync"

	"github.com/docuflow/docuflow/internal/model"
)

// MockScorer is a test implementation of RuleScorer returning a canned
// result.
type MockScorer struct {
	Result   model.ScoreResult
	LastText string
	Calls    int
	mu       sync.Mutex
}

// Score returns the canned result and records the input.
func (m *MockScorer) Score(text string) model.ScoreResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	m.LastText = text
	return m.Result
}

// MockPredictor is a test implementation of Predictor.
type MockPredictor struct {
	TrainErr   error
	Result     model.Prediction
	LastText   string
	Trained    []model.TrainingSample
	Calls      int
	TrainCalls int
	mu         sync.Mutex
}

// Predict returns the canned prediction and records the input.
func (m *MockPredictor) Predict(_ context.Context, text string) model.Prediction {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	m.LastText = text
	return m.Result
}

// Train records the samples.
func (m *MockPredictor) Train(_ context.Context, samples []model.TrainingSample) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TrainCalls++
	if m.TrainErr != nil {
		return m.TrainErr
	}
	m.Trained = samples
	return nil
}

// Warmup is a no-op.
func (m *MockPredictor) Warmup(_ context.Context) error {
	return nil
}

// MockFeedbackStore records appended feedback entries.
type MockFeedbackStore struct {
	Err     error
	Entries []model.Feedback
	mu      sync.Mutex
}

// AppendFeedback records the entry.
func (m *MockFeedbackStore) AppendFeedback(_ context.Context, label model.Category, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Entries = append(m.Entries, model.Feedback{Label: label, Text: text})
	return nil
}
