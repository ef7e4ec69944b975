package chunker

import "fmt"

// Chunk представляет один сегмент исходного документа
type Chunk struct {
	ChunkID    string // например "report.md_s3"
	Filename   string // имя исходного файла
	SectionIdx int    // порядковый номер внутри файла, начиная с 1
	Content    string // текст сегмента без краевых пробелов
	CharStart  int    // байтовые смещения сегмента в исходном тексте
	CharEnd    int
}

// Chunker - интерфейс для всех типов chunker'ов
type Chunker interface {
	// Chunk разбивает контент на чанки
	Chunk(content, filename string) ([]Chunk, error)

	// Name возвращает название chunker'а для логирования
	Name() string
}

// Config содержит общие параметры для chunker'ов
type Config struct {
	ChunkSize    int      // целевой размер чанка в байтах
	ChunkOverlap int      // перекрытие между чанками; также полуширина окна поиска границы
	MinChunkSize int      // минимальный размер внутреннего чанка
	Separators   []string // разделители по убыванию приоритета
}

// Validate проверяет инварианты конфигурации до начала разбиения
func (c Config) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", c.ChunkSize)
	}
	if c.ChunkOverlap < 0 {
		return fmt.Errorf("chunk overlap cannot be negative, got %d", c.ChunkOverlap)
	}
	if c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("chunk overlap (%d) must be smaller than chunk size (%d)", c.ChunkOverlap, c.ChunkSize)
	}
	if c.MinChunkSize < 0 || c.MinChunkSize > c.ChunkSize {
		return fmt.Errorf("min chunk size (%d) must be between 0 and chunk size (%d)", c.MinChunkSize, c.ChunkSize)
	}
	for _, sep := range c.Separators {
		if sep == "" {
			return fmt.Errorf("separators must be non-empty strings")
		}
	}
	return nil
}
