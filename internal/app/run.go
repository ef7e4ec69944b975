package app

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"silas_rag/internal/chunker"
)

func (a *App) Run(ctx context.Context) error {
	start := time.Now()

	chunks, stats, err := a.dirChunker.ChunkDirectory(a.cfg.DocsDir)
	if err != nil {
		return fmt.Errorf("chunking failed: %w", err)
	}
	a.chunks = chunks
	a.stats = stats

	a.reportChunking(time.Since(start))

	if a.outputPath != "" {
		report := &ChunkingReport{
			Directory:   a.cfg.DocsDir,
			Stats:       stats,
			Chunks:      chunks,
			ProcessedAt: time.Now().Format("2006-01-02 15:04:05"),
			ShowContent: a.cfg.ShowChunkContent,
		}
		if err := saveChunkingReport(report, a.outputPath); err != nil {
			log.Printf("⚠️  Failed to save report: %v", err)
		} else {
			log.Printf("💾 Report saved to: %s", a.outputPath)
		}
	}

	if !a.searchMode {
		return nil
	}

	if err := a.indexChunks(ctx); err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	return a.searchLoop(ctx)
}

func (a *App) searchLoop(ctx context.Context) error {
	log.Println("Enter a query to search chunks, or 'id <chunk_id>' to look one up. Ctrl+C to exit.")

	scanner := bufio.NewScanner(os.Stdin)

	// Увеличим буфер, если запросы будут длинные
	const maxLineSize = 1024 * 1024
	buf := make([]byte, 64*1024)
	scanner.Buffer(buf, maxLineSize)

	for {
		select {
		case <-ctx.Done():
			log.Println("Shutting down application")
			return nil
		default:
			// читаем строку
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("stdin error: %w", err)
				}
				// EOF
				log.Println("stdin closed")
				return nil
			}

			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			a.handleQuery(ctx, line)
		}
	}
}

func (a *App) handleQuery(ctx context.Context, line string) {
	// "id <chunk_id>" = прямой поиск по идентификатору
	if id, ok := strings.CutPrefix(line, "id "); ok {
		chunk, err := a.GetChunk(ctx, strings.TrimSpace(id))
		if err != nil {
			log.Printf("❌ %v", err)
			return
		}

		log.Printf("%s", chunker.FormatChunkForDisplay(chunk, 80))
		if a.cfg.ShowChunkContent {
			log.Printf("\n%s\n", chunk.Content)
		}
		return
	}

	results, err := a.searchRelevantChunks(ctx, line)
	if err != nil {
		log.Printf("❌ Search error: %v", err)
		return
	}

	log.Printf("🔍 Found %d relevant chunks:", len(results))
	for i, r := range results {
		log.Printf("   %d. (similarity: %.2f) %s", i+1, r.Similarity, chunker.FormatChunkForDisplay(r.Chunk, 80))
	}
}
