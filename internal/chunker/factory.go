package chunker

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Factory создаёт chunker на основе метода и типа файла
type Factory struct {
	config Config
}

// NewFactory создаёт новую фабрику chunker'ов
func NewFactory(config Config) *Factory {
	return &Factory{config: config}
}

// GetChunker возвращает chunker для файла.
// Пустой метод означает "text": разбиение каталога обязано быть одинаковым
// для всех файлов, поэтому выбор по расширению включается только методом "auto".
func (f *Factory) GetChunker(filePath, method string) (Chunker, error) {
	switch strings.ToLower(method) {
	case "", "simple", "text", "txt":
		return NewTextChunker(f.config), nil
	case "markdown", "md":
		return NewMarkdownChunker(f.config), nil
	case "auto":
	default:
		return nil, fmt.Errorf("unknown chunking method: %s", method)
	}

	// method == "auto": определяем по расширению файла
	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".md", ".markdown":
		return NewMarkdownChunker(f.config), nil
	default:
		return NewTextChunker(f.config), nil
	}
}
