package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docuflow/docuflow/internal/common"
)

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestTextExtractor(t *testing.T) {
	ctx := context.Background()
	extractor := NewTextExtractor()

	t.Run("reads plain text", func(t *testing.T) {
		path := writeDoc(t, "invoice.txt", "Invoice #12345\nAmount due: $100")

		text, err := extractor.Extract(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, "Invoice #12345\nAmount due: $100", text)
	})

	t.Run("reads markdown and csv", func(t *testing.T) {
		for _, name := range []string{"notes.md", "table.csv", "report.LOG"} {
			path := writeDoc(t, name, "some content")

			text, err := extractor.Extract(ctx, path)
			require.NoError(t, err, name)
			assert.Equal(t, "some content", text)
		}
	})

	t.Run("rejects unsupported format", func(t *testing.T) {
		path := writeDoc(t, "scan.pdf", "%PDF-1.4")

		_, err := extractor.Extract(ctx, path)
		require.ErrorIs(t, err, common.ErrUnsupportedFormat)
		assert.True(t, common.IsExtractionFailure(err))
	})

	t.Run("rejects empty document", func(t *testing.T) {
		path := writeDoc(t, "blank.txt", "   \n\t  ")

		_, err := extractor.Extract(ctx, path)
		require.ErrorIs(t, err, common.ErrNoTextFound)
		assert.True(t, common.IsExtractionFailure(err))
	})

	t.Run("missing file is not a sentinel failure", func(t *testing.T) {
		_, err := extractor.Extract(ctx, filepath.Join(t.TempDir(), "gone.txt"))
		require.Error(t, err)
		assert.False(t, common.IsExtractionFailure(err))
	})

	t.Run("expired context reports timeout", func(t *testing.T) {
		path := writeDoc(t, "slow.txt", "content")

		expired, cancel := context.WithDeadline(ctx, time.Now().Add(-time.Second))
		defer cancel()

		_, err := extractor.Extract(expired, path)
		require.ErrorIs(t, err, common.ErrExtractionTimeout)
		assert.True(t, common.IsExtractionFailure(err))
	})

	t.Run("supported is extension based", func(t *testing.T) {
		assert.True(t, extractor.Supported("a/b/doc.TXT"))
		assert.False(t, extractor.Supported("doc.docx"))
		assert.False(t, extractor.Supported("noextension"))
	})
}
