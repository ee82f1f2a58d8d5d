package tv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateDisplayWideChars(t *testing.T) {
	t.Parallel()
	// "你" and "好" are full-width (2 columns each). Width 3 can hold only
	// the first cluster; the second would straddle the boundary.
	assert.Equal(t, "你", truncateDisplay("你好", 3))
	assert.Equal(t, "你好", truncateDisplay("你好", 4))
}

func TestTruncateDisplayGraphemeCluster(t *testing.T) {
	t.Parallel()
	// A combining mark stays attached to its base rune.
	s := "éabc" // é rendered as base + combining acute
	assert.Equal(t, "éa", truncateDisplay(s, 2))
}

func TestTruncateDisplayFits(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "hi", truncateDisplay("hi", 5))
}

func TestFitCellTruncates(t *testing.T) {
	t.Parallel()
	got, truncated := fitCell("abcdefgh", 5, AlignLeft)
	assert.True(t, truncated)
	assert.Equal(t, "abcd…", got)
	assert.Equal(t, 5, displayWidth(got))
}

func TestFitCellTruncationIdempotent(t *testing.T) {
	t.Parallel()
	once, _ := fitCell("abcdefgh", 5, AlignLeft)
	twice, truncated := fitCell(once, 5, AlignLeft)
	assert.False(t, truncated)
	assert.Equal(t, once, twice)
}

func TestFitCellPads(t *testing.T) {
	t.Parallel()
	left, _ := fitCell("ab", 4, AlignLeft)
	right, _ := fitCell("ab", 4, AlignRight)
	assert.Equal(t, "ab  ", left)
	assert.Equal(t, "  ab", right)
}

func TestFitCellWideCharBoundary(t *testing.T) {
	t.Parallel()
	// Truncating "你好世界" (8 columns) to 5 leaves room for two clusters
	// plus the ellipsis; the result is padded back to the target width.
	got, truncated := fitCell("你好世界", 5, AlignLeft)
	assert.True(t, truncated)
	assert.Equal(t, "你好…", got)
	assert.Equal(t, 5, displayWidth(got))
}

func TestFracWidth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 3, fracWidth("1.23"))
	assert.Equal(t, 1, fracWidth("1234."))
	assert.Equal(t, 0, fracWidth("100"))
	assert.Equal(t, 0, fracWidth("NA"))
	assert.Equal(t, 0, fracWidth("1.23e-7"))
}

func TestMeasureColumnDecimalAlignment(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	col := measureColumn("x", Double, []string{"1.23", "NA", "100"}, make([]CellClass, 3), cfg)
	assert.Equal(t, 6, col.layout.Width)
	assert.Equal(t, AlignRight, col.layout.Align)
	assert.False(t, col.layout.Truncated)
	assert.Equal(t, []string{"  1.23", " NA   ", "100   "}, col.cells)
	assert.Equal(t, "x     ", col.header)
}

func TestMeasureColumnClampsAndTruncates(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.UpperWidth = 5
	col := measureColumn("name", Character, []string{"abcdefgh", "ok"}, make([]CellClass, 2), cfg)
	assert.Equal(t, 5, col.layout.Width)
	assert.True(t, col.layout.Truncated)
	assert.Equal(t, []string{"abcd…", "ok   "}, col.cells)
}

func TestMeasureColumnMinimumWidthHoldsNA(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	col := measureColumn("a", Character, []string{NAMarker}, make([]CellClass, 1), cfg)
	assert.GreaterOrEqual(t, col.layout.Width, 2)
	assert.Equal(t, "NA", col.cells[0])
}
