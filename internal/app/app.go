package app

import (
	"fmt"

	"silas_rag/internal/chunker"
	"silas_rag/internal/config"

	"github.com/philippgille/chromem-go"
)

const collectionName = "chunks"

type App struct {
	cfg           *config.Config
	dirChunker    *chunker.DirectoryChunker
	db            *chromem.DB
	embeddingFunc chromem.EmbeddingFunc

	chunks []chunker.Chunk
	stats  chunker.Stats

	outputPath string
	searchMode bool
}

func New(cfg *config.Config) (*App, error) {
	chunkCfg := chunker.Config{
		ChunkSize:    cfg.ChunkSize,
		ChunkOverlap: cfg.ChunkOverlap,
		MinChunkSize: cfg.MinChunkSize,
		Separators:   cfg.Separators,
	}

	dirChunker, err := chunker.NewDirectoryChunker(chunkCfg, cfg.ChunkMethod, cfg.SupportedExtensions)
	if err != nil {
		return nil, err
	}
	dirChunker.SetReadFile(ReadDocument)

	app := &App{
		cfg:        cfg,
		dirChunker: dirChunker,
		db:         chromem.NewDB(),
	}

	// Embedding function нужна только в режиме поиска
	ollamaEmbeddingURL := cfg.OllamaURL + "/api"
	app.embeddingFunc = chromem.NewEmbeddingFuncOllama(cfg.OllamaEmbedModel, ollamaEmbeddingURL)

	return app, nil
}

// SetOutputPath задаёт путь для сохранения отчёта о разбиении
func (a *App) SetOutputPath(path string) {
	a.outputPath = path
}

// SetSearchMode включает индексацию чанков и интерактивный поиск
func (a *App) SetSearchMode(on bool) {
	a.searchMode = on
}

func (a *App) Init() error {
	if !a.searchMode {
		return nil
	}

	// Проверяем, что Ollama доступна и модель эмбеддингов скачана
	if err := ensureEmbedModel(a.cfg); err != nil {
		return fmt.Errorf("ollama model check failed: %w", err)
	}

	if _, err := a.db.CreateCollection(collectionName, map[string]string{}, a.embeddingFunc); err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	return nil
}
