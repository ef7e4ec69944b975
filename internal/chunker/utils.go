package chunker

import (
	"fmt"
	"strings"
)

// newChunk собирает чанк с идентификатором вида <filename>_s<idx>
func newChunk(filename string, sectionIdx int, content string, charStart, charEnd int) Chunk {
	return Chunk{
		ChunkID:    fmt.Sprintf("%s_s%d", filename, sectionIdx),
		Filename:   filename,
		SectionIdx: sectionIdx,
		Content:    content,
		CharStart:  charStart,
		CharEnd:    charEnd,
	}
}

// FormatChunkForDisplay форматирует чанк в одну строку для вывода в консоль
func FormatChunkForDisplay(chunk Chunk, maxLen int) string {
	runes := []rune(chunk.Content)

	preview := chunk.Content
	if len(runes) > maxLen {
		preview = string(runes[:maxLen]) + "..."
	}
	preview = strings.ReplaceAll(preview, "\n", " ")

	return fmt.Sprintf("[%s] (%d chars) %s", chunk.ChunkID, len(runes), preview)
}
