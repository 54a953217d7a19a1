package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scan(t *testing.T, content string) Objects {
	t.Helper()
	scanner := NewContentScanner(nil, nil, 792)
	objects, err := scanner.Scan([]byte(content))
	require.NoError(t, err)
	return objects
}

func TestScanTextSpan(t *testing.T) {
	objects := scan(t, "BT /F1 12 Tf 72 700 Td (Hello) Tj ET")

	require.Len(t, objects.Spans, 1)
	span := objects.Spans[0]
	assert.Equal(t, "Hello", span.Text)
	assert.Equal(t, "F1", span.Font)
	assert.Equal(t, 12.0, span.FontSize)
	assert.InDelta(t, 72.0, span.X0, 0.01)
	// H e l l o advances 0.5+0.5+0.3+0.3+0.5 em at 12pt
	assert.InDelta(t, 97.2, span.X1, 0.01)
	// Baseline 700 flips to a top-left box below y=82.4
	assert.InDelta(t, 82.4, span.Y0, 0.01)
	assert.InDelta(t, 94.4, span.Y1, 0.01)
}

func TestScanNextLineOperator(t *testing.T) {
	objects := scan(t, "BT /F1 12 Tf 14 TL 72 700 Td (A) Tj T* (B) Tj ET")

	require.Len(t, objects.Spans, 2)
	assert.InDelta(t, 82.4, objects.Spans[0].Y0, 0.01)
	assert.InDelta(t, 96.4, objects.Spans[1].Y0, 0.01)
	assert.InDelta(t, 72.0, objects.Spans[1].X0, 0.01)
}

func TestScanTextArrayMergesSmallKerning(t *testing.T) {
	objects := scan(t, "BT /F1 10 Tf 0 0 Td [(Hel) -50 (lo)] TJ ET")

	require.Len(t, objects.Spans, 1)
	assert.Equal(t, "Hello", objects.Spans[0].Text)
}

func TestScanTextArraySplitsLargeKerning(t *testing.T) {
	objects := scan(t, "BT /F1 10 Tf 0 0 Td [(A) -500 (B)] TJ ET")

	require.Len(t, objects.Spans, 2)
	assert.Equal(t, "A", objects.Spans[0].Text)
	assert.Equal(t, "B", objects.Spans[1].Text)
	// The 500/1000 em gap pushes B past A's advance
	assert.InDelta(t, 10.0, objects.Spans[1].X0, 0.01)
}

func TestScanHexString(t *testing.T) {
	objects := scan(t, "BT /F1 12 Tf 72 700 Td <48656C6C6F> Tj ET")

	require.Len(t, objects.Spans, 1)
	assert.Equal(t, "Hello", objects.Spans[0].Text)
}

func TestScanStrokedLine(t *testing.T) {
	objects := scan(t, "10 10 m 110 10 l S")

	require.Len(t, objects.Lines, 1)
	line := objects.Lines[0]
	assert.InDelta(t, 10.0, line.X0, 0.01)
	assert.InDelta(t, 110.0, line.X1, 0.01)
	assert.InDelta(t, 782.0, line.Y0, 0.01)
	assert.InDelta(t, 782.0, line.Y1, 0.01)
	assert.Equal(t, 1.0, line.Width)
}

func TestScanThinFilledRectAlsoEmitsLine(t *testing.T) {
	objects := scan(t, "20 20 100 2 re f")

	require.Len(t, objects.Rects, 1)
	rect := objects.Rects[0]
	assert.True(t, rect.Filled)
	assert.InDelta(t, 20.0, rect.X0, 0.01)
	assert.InDelta(t, 120.0, rect.X1, 0.01)
	assert.InDelta(t, 770.0, rect.Y0, 0.01)
	assert.InDelta(t, 772.0, rect.Y1, 0.01)

	require.Len(t, objects.Lines, 1)
	assert.Equal(t, 2.0, objects.Lines[0].Width)
}

func TestScanThickFilledRectIsNotALine(t *testing.T) {
	objects := scan(t, "20 20 100 50 re f")

	assert.Len(t, objects.Rects, 1)
	assert.Empty(t, objects.Lines)
}

func TestScanLineWidthAndGraphicsStack(t *testing.T) {
	objects := scan(t, "q 3 w 10 10 m 110 10 l S Q 10 40 m 110 40 l S")

	require.Len(t, objects.Lines, 2)
	assert.Equal(t, 3.0, objects.Lines[0].Width)
	assert.Equal(t, 1.0, objects.Lines[1].Width)
}

func TestScanTranslatedCoordinates(t *testing.T) {
	objects := scan(t, "1 0 0 1 100 50 cm 0 0 m 50 0 l S")

	require.Len(t, objects.Lines, 1)
	assert.InDelta(t, 100.0, objects.Lines[0].X0, 0.01)
	assert.InDelta(t, 150.0, objects.Lines[0].X1, 0.01)
	assert.InDelta(t, 742.0, objects.Lines[0].Y0, 0.01)
}

func TestUnescapeString(t *testing.T) {
	assert.Equal(t, "(paren)", unescapeString(`\(paren\)`))
	assert.Equal(t, "a\nb", unescapeString(`a\nb`))
	assert.Equal(t, "A", unescapeString(`\101`))
	assert.Equal(t, `back\slash`, unescapeString(`back\\slash`))
}

func TestTokenizeStringsAndNames(t *testing.T) {
	tokens := tokenize([]byte("BT /F1 12 Tf (a(b)c) Tj ET"))

	assert.Equal(t, []string{"BT", "/F1", "12", "Tf", "(a(b)c)", "Tj", "ET"}, tokens)
}

func TestTokenizeSkipsComments(t *testing.T) {
	tokens := tokenize([]byte("10 % a comment\n20 m"))

	assert.Equal(t, []string{"10", "20", "m"}, tokens)
}

func TestSplitTextArray(t *testing.T) {
	elements := splitTextArray("(Hel) -50 (lo) <41> 12")

	assert.Equal(t, []string{"(Hel)", "-50", "(lo)", "<41>", "12"}, elements)
}
