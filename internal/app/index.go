package app

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"strconv"

	"silas_rag/internal/chunker"

	"github.com/philippgille/chromem-go"
)

// indexChunks складывает чанки прогона в in-memory коллекцию.
// Коллекция не сохраняется на диск: индекс живёт только в рамках запуска.
func (a *App) indexChunks(ctx context.Context) error {
	coll := a.db.GetCollection(collectionName, a.embeddingFunc)
	if coll == nil {
		var err error
		coll, err = a.db.CreateCollection(collectionName, map[string]string{}, a.embeddingFunc)
		if err != nil {
			return fmt.Errorf("failed to create collection: %w", err)
		}
	}

	if len(a.chunks) == 0 {
		log.Printf("⚠️  Nothing to index")
		return nil
	}

	log.Printf("Indexing %d chunks...", len(a.chunks))

	docs := make([]chromem.Document, 0, len(a.chunks))
	for _, ch := range a.chunks {
		docs = append(docs, chromem.Document{
			ID:      ch.ChunkID,
			Content: ch.Content,
			Metadata: map[string]string{
				"filename":    ch.Filename,
				"section_idx": strconv.Itoa(ch.SectionIdx),
				"char_start":  strconv.Itoa(ch.CharStart),
				"char_end":    strconv.Itoa(ch.CharEnd),
			},
		})
	}

	if err := coll.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return fmt.Errorf("failed to add documents: %w", err)
	}

	log.Printf("✅ Indexed %d chunks", len(docs))
	return nil
}

// GetChunk возвращает проиндексированный чанк по его chunk_id
func (a *App) GetChunk(ctx context.Context, chunkID string) (chunker.Chunk, error) {
	coll := a.db.GetCollection(collectionName, a.embeddingFunc)
	if coll == nil {
		return chunker.Chunk{}, fmt.Errorf("collection %q not found", collectionName)
	}

	doc, err := coll.GetByID(ctx, chunkID)
	if err != nil {
		return chunker.Chunk{}, fmt.Errorf("chunk %s not found: %w", chunkID, err)
	}

	return docToChunk(doc), nil
}

func docToChunk(doc chromem.Document) chunker.Chunk {
	sectionIdx, _ := strconv.Atoi(doc.Metadata["section_idx"])
	charStart, _ := strconv.Atoi(doc.Metadata["char_start"])
	charEnd, _ := strconv.Atoi(doc.Metadata["char_end"])

	return chunker.Chunk{
		ChunkID:    doc.ID,
		Filename:   doc.Metadata["filename"],
		SectionIdx: sectionIdx,
		Content:    doc.Content,
		CharStart:  charStart,
		CharEnd:    charEnd,
	}
}
