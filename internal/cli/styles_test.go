package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docuflow/docuflow/internal/model"
)

func TestFormatConfidence(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
		want       string
	}{
		{name: "high", confidence: 0.85, want: "0.85"},
		{name: "boundary high", confidence: 0.7, want: "0.70"},
		{name: "medium", confidence: 0.5, want: "0.50"},
		{name: "low", confidence: 0.3, want: "0.30"},
		{name: "zero", confidence: 0, want: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, FormatConfidence(tt.confidence), tt.want)
		})
	}
}

func TestFormatters(t *testing.T) {
	assert.Contains(t, FormatSuccess("routed"), "routed")
	assert.Contains(t, FormatSuccess("routed"), SuccessIcon)
	assert.Contains(t, FormatError("boom"), ErrorIcon)
	assert.Contains(t, FormatCategory(model.CategoryBankStatement), "Bank Statement")
	assert.Contains(t, FormatDecision(model.DecisionAgreement), "agreement")
}

func TestRenderBox(t *testing.T) {
	out := RenderBox("Result", "Invoice")
	assert.Contains(t, out, "Result")
	assert.Contains(t, out, "Invoice")
	assert.Greater(t, len(strings.Split(out, "\n")), 2)
}
