package chunker

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// FileReport - итог обработки одного файла: либо счётчики, либо ошибка
type FileReport struct {
	Chars  int
	Chunks int
	Err    string
}

// Stats - агрегированная статистика одного прогона по каталогу
type Stats struct {
	FilesProcessed int
	FilesSkipped   int
	TotalChunks    int
	Files          map[string]FileReport
}

// ReadFileFunc читает документ и возвращает его текст
type ReadFileFunc func(path string) (string, error)

// DirectoryChunker применяет chunker ко всем подходящим файлам каталога
type DirectoryChunker struct {
	factory    *Factory
	config     Config
	method     string
	extensions []string
	readFile   ReadFileFunc
}

// NewDirectoryChunker создаёт chunker каталога.
// Конфигурация проверяется здесь, а не посреди цикла.
func NewDirectoryChunker(config Config, method string, extensions []string) (*DirectoryChunker, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid chunking config: %w", err)
	}

	return &DirectoryChunker{
		factory:    NewFactory(config),
		config:     config,
		method:     method,
		extensions: extensions,
		readFile:   readTextFile,
	}, nil
}

// SetReadFile подменяет чтение файла (например, для извлечения текста из pdf)
func (d *DirectoryChunker) SetReadFile(fn ReadFileFunc) {
	d.readFile = fn
}

// ChunkDirectory разбивает все подходящие файлы каталога на чанки.
// Ошибка чтения одного файла не прерывает прогон: она попадает
// в статистику, файл считается пропущенным.
func (d *DirectoryChunker) ChunkDirectory(directory string) ([]Chunk, Stats, error) {
	stats := Stats{Files: make(map[string]FileReport)}

	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to read directory: %w", err)
	}

	var allChunks []Chunk

	// os.ReadDir отдаёт записи в лексикографическом порядке,
	// поэтому прогон воспроизводим
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !d.supported(name) {
			continue
		}

		content, err := d.readFile(filepath.Join(directory, name))
		if err != nil {
			stats.FilesSkipped++
			stats.Files[name] = FileReport{Err: err.Error()}
			continue
		}

		if strings.TrimSpace(content) == "" {
			stats.FilesSkipped++
			continue
		}

		chunks, err := d.chunkFile(content, name)
		if err != nil {
			stats.FilesSkipped++
			stats.Files[name] = FileReport{Err: err.Error()}
			continue
		}

		allChunks = append(allChunks, chunks...)
		stats.FilesProcessed++
		stats.TotalChunks += len(chunks)
		stats.Files[name] = FileReport{Chars: len(content), Chunks: len(chunks)}
	}

	return allChunks, stats, nil
}

func (d *DirectoryChunker) chunkFile(content, name string) ([]Chunk, error) {
	chunkr, err := d.factory.GetChunker(name, d.method)
	if err != nil {
		return nil, err
	}

	chunks, err := chunkr.Chunk(content, name)
	if err != nil {
		// Fallback на text chunker
		log.Printf("⚠️  [%s] Chunker failed for %s: %v, falling back to text chunker", chunkr.Name(), name, err)
		return NewTextChunker(d.config).Chunk(content, name)
	}

	return chunks, nil
}

func (d *DirectoryChunker) supported(name string) bool {
	for _, ext := range d.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// readTextFile читает файл как plain text в UTF-8
func readTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("file %s is not valid UTF-8", filepath.Base(path))
	}
	return string(data), nil
}
