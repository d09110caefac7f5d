package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercases text",
			input: "Invoice Number INV-001",
			want:  "invoice number inv001",
		},
		{
			name:  "strips punctuation and symbols",
			input: "Total: $1,250.00 (due 03/15)",
			want:  "total 125000 due 0315",
		},
		{
			name:  "collapses whitespace runs",
			input: "amount \t due \n\n  today",
			want:  "amount due today",
		},
		{
			name:  "trims leading and trailing whitespace",
			input: "   balance forward   ",
			want:  "balance forward",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: " \n\t ",
			want:  "",
		},
		{
			name:  "symbols only",
			input: "$$$ --- !!!",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.input))
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	input := "Invoice #12345 Total amount due $567.89"
	once := Clean(input)
	assert.Equal(t, once, Clean(once))
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("  \t\n"))
	assert.False(t, IsBlank("x"))
}
