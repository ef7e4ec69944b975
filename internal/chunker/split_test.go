package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testSeparators = []string{"\n\n\n", "\n\n", "\n", ". ", ", ", " "}

func TestFindBestSplitPoint_PrefersParagraphBoundary(t *testing.T) {
	text := "AAAA\n\nBBBB"

	// Целевая позиция внутри "BBBB", "\n\n" попадает в окно
	got := FindBestSplitPoint(text, 8, testSeparators, 4)

	assert.Equal(t, 6, got, "split should land right after the blank line")
}

func TestFindBestSplitPoint_StrongSeparatorWins(t *testing.T) {
	// И "\n\n", и ". " в окне; приоритетнее "\n\n", даже если ". " ближе к цели
	text := "one\n\ntwo. three four five"

	got := FindBestSplitPoint(text, 12, testSeparators, 12)

	assert.Equal(t, 5, got)
}

func TestFindBestSplitPoint_LastOccurrence(t *testing.T) {
	text := "a b c d e"

	got := FindBestSplitPoint(text, 9, []string{" "}, 9)

	// Последний пробел, а не первый
	assert.Equal(t, 8, got)
}

func TestFindBestSplitPoint_NoSeparatorFallsBackToTarget(t *testing.T) {
	text := "abcdefghij"

	got := FindBestSplitPoint(text, 5, testSeparators, 3)

	assert.Equal(t, 5, got)
}

func TestFindBestSplitPoint_WindowClampedAtEdges(t *testing.T) {
	text := "ab cd"

	// Окно шире текста с обеих сторон - индексы не должны выходить за границы
	assert.NotPanics(t, func() {
		FindBestSplitPoint(text, 0, testSeparators, 100)
		FindBestSplitPoint(text, len(text), testSeparators, 100)
	})

	got := FindBestSplitPoint(text, len(text), []string{" "}, 100)
	assert.Equal(t, 3, got)
}

func TestFindBestSplitPoint_SeparatorLongerThanZone(t *testing.T) {
	text := strings.Repeat("x", 10)

	got := FindBestSplitPoint(text, 5, []string{"\n\n\n"}, 1)

	assert.Equal(t, 5, got)
}
