package label_test

import (
	"testing"

	"github.com/fwojciec/pagelabel"
	"github.com/fwojciec/pagelabel/label"
	"github.com/stretchr/testify/assert"
)

func TestTruncateKey(t *testing.T) {
	t.Parallel()

	t.Run("returns key unchanged when shorter than max", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "C1 Tile.docx", label.TruncateKey("C1 Tile.docx", 50))
	})

	t.Run("truncates with ellipsis keeping the end", func(t *testing.T) {
		t.Parallel()
		key := "C123-45 Hosner Carpet One Floor & Home Tile.docx"
		result := label.TruncateKey(key, 20)
		assert.Equal(t, "... & Home Tile.docx", result)
		assert.Len(t, result, 20)
	})

	t.Run("returns empty string when maxLen is not positive", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, label.TruncateKey("C1.docx", 0))
		assert.Empty(t, label.TruncateKey("C1.docx", -1))
	})

	t.Run("returns prefix when maxLen is very small", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "C1.", label.TruncateKey("C1.docx", 3))
		assert.Equal(t, "a", label.TruncateKey("a", 2))
	})
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "512 B", label.FormatBytes(512))
	assert.Equal(t, "1.5 KB", label.FormatBytes(1536))
	assert.Equal(t, "2.0 MB", label.FormatBytes(2*1024*1024))
}

func TestFormatTokens(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "~500 tokens", label.FormatTokens(500))
	assert.Equal(t, "~10k tokens", label.FormatTokens(10000))
	assert.Equal(t, "~2k tokens", label.FormatTokens(1500))
}

func TestFormatFailures(t *testing.T) {
	t.Parallel()

	t.Run("lists reasons in pipeline order", func(t *testing.T) {
		t.Parallel()
		counts := map[pagelabel.FailureReason]int{
			pagelabel.FailureStore: 1,
			pagelabel.FailureLoad:  2,
		}
		assert.Equal(t, "2 load, 1 store", label.FormatFailures(counts))
	})

	t.Run("returns empty string without failures", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, label.FormatFailures(nil))
	})
}
