package app

import (
	"context"
	"fmt"

	"silas_rag/internal/chunker"

	"github.com/philippgille/chromem-go"
)

// SearchResult - результат векторного поиска
type SearchResult struct {
	Chunk      chunker.Chunk
	Similarity float32
}

// searchRelevantChunks ищет релевантные чанки в индексе
func (a *App) searchRelevantChunks(ctx context.Context, queryText string) ([]SearchResult, error) {
	coll := a.db.GetCollection(collectionName, a.embeddingFunc)
	if coll == nil {
		return nil, fmt.Errorf("collection %q not found", collectionName)
	}

	// chromem не разрешает запрашивать больше документов, чем есть
	topK := a.cfg.TopK
	if count := coll.Count(); count < topK {
		topK = count
	}
	if topK == 0 {
		return nil, nil
	}

	results, err := coll.Query(ctx, queryText, topK, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	// Фильтруем по similarity и преобразуем
	var searchResults []SearchResult
	for _, r := range results {
		if r.Similarity < a.cfg.MinSimilarity {
			continue
		}

		searchResults = append(searchResults, SearchResult{
			Chunk: docToChunk(chromem.Document{
				ID:       r.ID,
				Content:  r.Content,
				Metadata: r.Metadata,
			}),
			Similarity: r.Similarity,
		})
	}

	return searchResults, nil
}
