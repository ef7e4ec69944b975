package config

import (
	"github.com/caarlos0/env/v10"
)

// DefaultSeparators - разделители по убыванию приоритета: от границ секций
// к пробелу как последнему варианту. Содержат переводы строк, поэтому
// задаются кодом, а не env переменной.
var DefaultSeparators = []string{"\n\n\n", "\n\n", "\n", ". ", ", ", " "}

type Config struct {
	DocsDir             string   `env:"DOCS_DIR"`
	ChunkSize           int      `env:"CHUNK_SIZE" envDefault:"1500"`
	ChunkOverlap        int      `env:"CHUNK_OVERLAP" envDefault:"200"`
	MinChunkSize        int      `env:"MIN_CHUNK_SIZE" envDefault:"300"`
	ChunkMethod         string   `env:"CHUNK_METHOD" envDefault:"text"`
	SupportedExtensions []string `env:"SUPPORTED_EXTENSIONS" envSeparator:"," envDefault:".txt,.md,.py,.json,.csv,.log,.yml,.yaml,.xml,.html"`
	Verbose             bool     `env:"VERBOSE" envDefault:"true"`
	ShowChunkContent    bool     `env:"SHOW_CHUNK_CONTENT" envDefault:"false"`
	OllamaURL           string   `env:"OLLAMA_URL" envDefault:"http://localhost:11434"`
	OllamaEmbedModel    string   `env:"OLLAMA_EMBED_MODEL" envDefault:"nomic-embed-text"`
	TopK                int      `env:"TOP_K" envDefault:"5"`
	MinSimilarity       float32  `env:"MIN_SIMILARITY" envDefault:"0.3"`
	Separators          []string
}

func Init(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return err
	}
	if len(cfg.Separators) == 0 {
		cfg.Separators = DefaultSeparators
	}
	return nil
}
