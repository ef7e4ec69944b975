package app

import (
	"os"
	"path/filepath"
	"testing"

	"silas_rag/internal/chunker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport(showContent bool) *ChunkingReport {
	return &ChunkingReport{
		Directory:   "/docs",
		ProcessedAt: "2026-08-25 10:00:00",
		ShowContent: showContent,
		Stats: chunker.Stats{
			FilesProcessed: 1,
			FilesSkipped:   1,
			TotalChunks:    2,
			Files: map[string]chunker.FileReport{
				"a.txt":   {Chars: 3000, Chunks: 2},
				"bad.txt": {Err: "file bad.txt is not valid UTF-8"},
			},
		},
		Chunks: []chunker.Chunk{
			{ChunkID: "a.txt_s1", Filename: "a.txt", SectionIdx: 1, Content: "first part", CharStart: 0, CharEnd: 1700},
			{ChunkID: "a.txt_s2", Filename: "a.txt", SectionIdx: 2, Content: "second part", CharStart: 1500, CharEnd: 3000},
		},
	}
}

func TestSaveChunkingReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")

	require.NoError(t, saveChunkingReport(sampleReport(false), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	report := string(data)

	assert.Contains(t, report, "# Chunking report: /docs")
	assert.Contains(t, report, "- Processed files: 1")
	assert.Contains(t, report, "- Skipped files: 1")
	assert.Contains(t, report, "- Total chunks: 2")
	assert.Contains(t, report, "✅ a.txt: 3000 chars -> 2 chunks")
	assert.Contains(t, report, "❌ bad.txt: file bad.txt is not valid UTF-8")
	assert.Contains(t, report, "### a.txt_s1")
	assert.Contains(t, report, "**Range:** [0, 1700)")
	assert.Contains(t, report, "**Range:** [1500, 3000)")
	// Без ShowContent в отчёт попадает только превью
	assert.NotContains(t, report, "```")
}

func TestSaveChunkingReport_WithContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")

	require.NoError(t, saveChunkingReport(sampleReport(true), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(data), "```\nfirst part\n```")
}

func TestSortedFileNames(t *testing.T) {
	stats := chunker.Stats{Files: map[string]chunker.FileReport{
		"c.txt": {}, "a.txt": {}, "b.txt": {},
	}}

	assert.Equal(t, []string{"a.txt", "b.txt", "c.txt"}, sortedFileNames(stats))
}
