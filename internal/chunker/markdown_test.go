package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const structuredMarkdown = `intro text

## One

alpha paragraph

## Two

bravo paragraph

## Three

charlie paragraph
`

func TestMarkdownChunker_SplitsByHeadings(t *testing.T) {
	chunkr := NewMarkdownChunker(defaultDirConfig())

	chunks, err := chunkr.Chunk(structuredMarkdown, "doc.md")
	require.NoError(t, err)
	require.Len(t, chunks, 4)

	assert.Equal(t, "intro text", chunks[0].Content)
	assert.True(t, strings.HasPrefix(chunks[1].Content, "## One"))
	assert.True(t, strings.HasPrefix(chunks[2].Content, "## Two"))
	assert.True(t, strings.HasPrefix(chunks[3].Content, "## Three"))

	prevStart := -1
	for i, ch := range chunks {
		assert.Equal(t, i+1, ch.SectionIdx)
		assert.Equal(t, strings.TrimSpace(structuredMarkdown[ch.CharStart:ch.CharEnd]), ch.Content)
		assert.Greater(t, ch.CharStart, prevStart)
		prevStart = ch.CharStart
	}
	assert.Equal(t, len(structuredMarkdown), chunks[len(chunks)-1].CharEnd)
}

func TestMarkdownChunker_NoStructureReturnsError(t *testing.T) {
	chunkr := NewMarkdownChunker(defaultDirConfig())

	_, err := chunkr.Chunk("just a paragraph, no headings at all", "doc.md")
	assert.Error(t, err)
}

func TestMarkdownChunker_OversizedSectionIsSubSplit(t *testing.T) {
	longBody := strings.Repeat("Some sentence goes here. ", 20) // 500 chars
	content := "## One\n\nshort\n\n## Two\n\n" + longBody + "\n\n## Three\n\nshort\n"
	cfg := Config{ChunkSize: 100, ChunkOverlap: 20, MinChunkSize: 10, Separators: testSeparators}

	chunks, err := NewMarkdownChunker(cfg).Chunk(content, "doc.md")
	require.NoError(t, err)
	require.Greater(t, len(chunks), 3, "the long section must be split into several chunks")

	prevStart := -1
	for i, ch := range chunks {
		assert.Equal(t, i+1, ch.SectionIdx)
		assert.Equal(t, strings.TrimSpace(content[ch.CharStart:ch.CharEnd]), ch.Content)
		assert.GreaterOrEqual(t, ch.CharStart, prevStart)
		prevStart = ch.CharStart
	}
}

func TestSelectHeadingLevel(t *testing.T) {
	m := NewMarkdownChunker(defaultDirConfig())

	level, err := m.selectHeadingLevel(DocumentStructure{HeadingCounts: map[int]int{2: 3}})
	require.NoError(t, err)
	assert.Equal(t, 2, level)

	level, err = m.selectHeadingLevel(DocumentStructure{HeadingCounts: map[int]int{2: 1, 3: 7}})
	require.NoError(t, err)
	assert.Equal(t, 3, level)

	_, err = m.selectHeadingLevel(DocumentStructure{HeadingCounts: map[int]int{2: 2, 3: 4, 4: 9}})
	assert.Error(t, err)
}

func TestLineStart(t *testing.T) {
	src := []byte("first\nsecond\nthird")

	assert.Equal(t, 0, lineStart(src, 3))
	assert.Equal(t, 6, lineStart(src, 8))
	assert.Equal(t, 13, lineStart(src, len(src)))
	assert.Equal(t, 6, lineStart(src, 6))
}
