package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"silas_rag/internal/app"
	"silas_rag/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	// Парсим флаги командной строки
	docsDir := flag.String("docs", "", "Directory with documents to chunk (required)")
	method := flag.String("method", "", "Chunking method: text, markdown or auto")
	outputFile := flag.String("output", "", "Save chunking report to file (optional)")
	searchMode := flag.Bool("search", false, "Index chunks and start interactive search (requires Ollama)")
	flag.Parse()

	if *docsDir == "" {
		log.Fatal("Error: --docs flag is required\nUsage: silas_rag --docs=/path/to/documents")
	}

	// Проверяем существование каталога
	if info, err := os.Stat(*docsDir); err != nil || !info.IsDir() {
		log.Fatalf("Error: docs directory not found: %s", *docsDir)
	}

	// Устанавливаем env переменные для парсинга
	os.Setenv("DOCS_DIR", *docsDir)
	if *method != "" {
		os.Setenv("CHUNK_METHOD", *method)
	}

	// Загружаем .env (опционально)
	_ = godotenv.Load()

	// Загружаем конфиг
	cfg := config.Config{}
	if err := config.Init(&cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	log.Printf("Documents directory: %s", cfg.DocsDir)
	log.Printf("Chunking: size=%d overlap=%d min=%d method=%s",
		cfg.ChunkSize, cfg.ChunkOverlap, cfg.MinChunkSize, cfg.ChunkMethod)

	// Создаём app; здесь же падает невалидная конфигурация разбиения
	a, err := app.New(&cfg)
	if err != nil {
		log.Fatalf("failed to create app: %v", err)
	}

	// Устанавливаем путь для сохранения отчёта (если указан)
	if *outputFile != "" {
		a.SetOutputPath(*outputFile)
	}
	a.SetSearchMode(*searchMode)

	// Инициализируем (в режиме поиска - проверка Ollama и коллекции)
	if err := a.Init(); err != nil {
		log.Fatalf("failed to initialize app: %v", err)
	}

	// Контекст с сигналами завершения
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	// Запускаем приложение
	if err := a.Run(ctx); err != nil {
		log.Fatalf("app stopped with error: %v", err)
	}
}
