package app

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"silas_rag/internal/chunker"
)

const chunkPreviewCount = 10

// reportChunking печатает статистику прогона в консоль
func (a *App) reportChunking(elapsed time.Duration) {
	log.Printf("📊 Chunking statistics:")
	log.Printf("   Processed files: %d", a.stats.FilesProcessed)
	log.Printf("   Skipped files: %d", a.stats.FilesSkipped)
	log.Printf("   Total chunks: %d", a.stats.TotalChunks)

	if a.cfg.Verbose {
		log.Printf("📄 File details:")
		for _, name := range sortedFileNames(a.stats) {
			report := a.stats.Files[name]
			if report.Err != "" {
				log.Printf("   ❌ %s: %s", name, report.Err)
			} else {
				log.Printf("   ✓ %s: %d chars -> %d chunks", name, report.Chars, report.Chunks)
			}
		}

		log.Printf("📦 Chunk preview:")
		previewed := min(len(a.chunks), chunkPreviewCount)
		for _, ch := range a.chunks[:previewed] {
			log.Printf("   %s", chunker.FormatChunkForDisplay(ch, 80))
		}
		if rest := len(a.chunks) - previewed; rest > 0 {
			log.Printf("   ... and %d more chunks", rest)
		}
	}

	log.Printf("⏱️  Duration: %.2fs", elapsed.Seconds())
}

// ChunkingReport - полный результат прогона для сохранения в файл
type ChunkingReport struct {
	Directory   string
	Stats       chunker.Stats
	Chunks      []chunker.Chunk
	ProcessedAt string
	ShowContent bool
}

// saveChunkingReport сохраняет отчёт о разбиении в markdown файл
func saveChunkingReport(report *ChunkingReport, outputPath string) error {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf("# Chunking report: %s\n\n", report.Directory))
	buf.WriteString(fmt.Sprintf("**Date:** %s\n\n", report.ProcessedAt))

	// Итоговая статистика
	buf.WriteString("## Statistics\n\n")
	buf.WriteString(fmt.Sprintf("- Processed files: %d\n", report.Stats.FilesProcessed))
	buf.WriteString(fmt.Sprintf("- Skipped files: %d\n", report.Stats.FilesSkipped))
	buf.WriteString(fmt.Sprintf("- Total chunks: %d\n\n", report.Stats.TotalChunks))

	// Детали по файлам
	buf.WriteString("## Files\n\n")
	for _, name := range sortedFileNames(report.Stats) {
		fileReport := report.Stats.Files[name]
		if fileReport.Err != "" {
			buf.WriteString(fmt.Sprintf("- ❌ %s: %s\n", name, fileReport.Err))
		} else {
			buf.WriteString(fmt.Sprintf("- ✅ %s: %d chars -> %d chunks\n", name, fileReport.Chars, fileReport.Chunks))
		}
	}

	// Чанки
	buf.WriteString("\n## Chunks\n\n")
	for _, ch := range report.Chunks {
		buf.WriteString(fmt.Sprintf("### %s\n\n", ch.ChunkID))
		buf.WriteString(fmt.Sprintf("**Range:** [%d, %d)\n\n", ch.CharStart, ch.CharEnd))
		if report.ShowContent {
			buf.WriteString("```\n")
			buf.WriteString(ch.Content)
			buf.WriteString("\n```\n\n")
		} else {
			buf.WriteString(chunker.FormatChunkForDisplay(ch, 80))
			buf.WriteString("\n\n")
		}
	}

	return os.WriteFile(outputPath, []byte(buf.String()), 0644)
}

func sortedFileNames(stats chunker.Stats) []string {
	names := make([]string, 0, len(stats.Files))
	for name := range stats.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
