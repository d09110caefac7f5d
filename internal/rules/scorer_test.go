package rules

import (
	"strings"
	"testing"

	"github.com/docuflow/docuflow/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScorer_Score_Invoice(t *testing.T) {
	scorer, err := NewDefaultScorer()
	require.NoError(t, err)

	result := scorer.Score("Invoice #12345 Total amount due $567.89 Due date 03/15/2024")

	assert.Equal(t, model.CategoryInvoice, result.Category)
	assert.GreaterOrEqual(t, result.Confidence, 0.3)
	assert.LessOrEqual(t, result.Confidence, 1.0)
	require.NotEmpty(t, result.Evidence)

	joined := strings.ToLower(strings.Join(result.Evidence, " "))
	assert.True(t,
		strings.Contains(joined, "invoice") || strings.Contains(joined, "amount due"),
		"evidence should reference invoice or amount due, got %v", result.Evidence)
}

func TestScorer_Score_BlankInput(t *testing.T) {
	scorer, err := NewDefaultScorer()
	require.NoError(t, err)

	tests := []struct {
		name string
		text string
	}{
		{name: "empty string", text: ""},
		{name: "whitespace only", text: " \t\n "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := scorer.Score(tt.text)
			assert.Equal(t, model.CategoryOther, result.Category)
			assert.Equal(t, 0.0, result.Confidence)
			assert.Empty(t, result.Scores)
			assert.Equal(t, "No text content found", result.Reasoning)
		})
	}
}

func TestScorer_Score_LowSignalFallsBackToOther(t *testing.T) {
	scorer, err := NewDefaultScorer()
	require.NoError(t, err)

	result := scorer.Score("the quick brown fox jumps over the lazy dog")

	assert.Equal(t, model.CategoryOther, result.Category)
	// Fixed fallback confidence, independent of the actual best score.
	assert.Equal(t, 0.5, result.Confidence)
	assert.Empty(t, result.Evidence)
}

func TestScorer_Score_ScoresEveryCategory(t *testing.T) {
	scorer, err := NewDefaultScorer()
	require.NoError(t, err)

	result := scorer.Score("Bank statement Account number 123456789 Opening balance $5,000.00 debit credit")

	assert.Equal(t, model.CategoryBankStatement, result.Category)
	for _, set := range DefaultRuleSets() {
		assert.Contains(t, result.Scores, set.Category)
	}
}

func TestScorer_Score_EvidenceCapped(t *testing.T) {
	scorer, err := NewDefaultScorer()
	require.NoError(t, err)

	// Text dense with invoice keywords produces more than 5 matches.
	result := scorer.Score("Invoice #12345 bill billing tax subtotal amount due $1,250.00 balance due payment terms quantity unit price")

	assert.Equal(t, model.CategoryInvoice, result.Category)
	assert.LessOrEqual(t, len(result.Evidence), 5)
}

func TestScorer_Score_TieBreakFirstDefined(t *testing.T) {
	sets := []RuleSet{
		{Category: model.CategoryInvoice, Keywords: []string{"shared"}},
		{Category: model.CategoryResume, Keywords: []string{"shared"}},
	}
	scorer, err := NewScorer(sets)
	require.NoError(t, err)

	result := scorer.Score("shared")
	assert.Equal(t, model.CategoryInvoice, result.Category)
}

func TestNewScorer_Validation(t *testing.T) {
	tests := []struct {
		name    string
		sets    []RuleSet
		wantErr bool
	}{
		{
			name:    "missing keywords",
			sets:    []RuleSet{{Category: model.CategoryInvoice}},
			wantErr: true,
		},
		{
			name: "invalid pattern",
			sets: []RuleSet{{
				Category: model.CategoryInvoice,
				Keywords: []string{"invoice"},
				Patterns: []string{"(unclosed"},
			}},
			wantErr: true,
		},
		{
			name:    "unknown category",
			sets:    []RuleSet{{Category: "Memo", Keywords: []string{"memo"}}},
			wantErr: true,
		},
		{
			name: "valid set with default weight",
			sets: []RuleSet{{
				Category: model.CategoryInvoice,
				Keywords: []string{"invoice"},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScorer(tt.sets)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScorer_UpdateRules(t *testing.T) {
	scorer, err := NewDefaultScorer()
	require.NoError(t, err)
	require.Equal(t, 4, scorer.RuleCount())

	err = scorer.UpdateRules([]RuleSet{
		{Category: model.CategoryContract, Keywords: []string{"memorandum"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, scorer.RuleCount())

	result := scorer.Score("memorandum memorandum")
	assert.Equal(t, model.CategoryContract, result.Category)

	// Invalid update leaves the current table in place.
	err = scorer.UpdateRules([]RuleSet{{Category: model.CategoryInvoice}})
	require.Error(t, err)
	assert.Equal(t, 1, scorer.RuleCount())
}
