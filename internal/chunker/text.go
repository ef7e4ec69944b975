package chunker

import "strings"

// TextChunker разбивает plain text по размеру с перекрытием,
// подравнивая границы по ближайшим разделителям
type TextChunker struct {
	config Config
}

// NewTextChunker создаёт новый text chunker.
// Конфигурация считается проверенной (Config.Validate) на этапе загрузки.
func NewTextChunker(config Config) *TextChunker {
	return &TextChunker{config: config}
}

func (t *TextChunker) Name() string {
	return "text"
}

func (t *TextChunker) Chunk(content, filename string) ([]Chunk, error) {
	// Короткий документ = один чанк целиком, даже пустой.
	// Пустые файлы отсеивает вызывающий код до chunker'а.
	if len(content) <= t.config.ChunkSize {
		return []Chunk{newChunk(filename, 1, strings.TrimSpace(content), 0, len(content))}, nil
	}

	chunks, _ := chunkRange(content, filename, 1, t.config)
	return chunks, nil
}

// chunkRange нарезает text циклом с перекрытием, нумеруя чанки с sectionIdx.
// Возвращает чанки и следующий свободный номер секции.
// Слишком маленькие чанки не попадают в результат и не расходуют номер,
// но хвост документа сохраняется всегда.
func chunkRange(text, filename string, sectionIdx int, cfg Config) ([]Chunk, int) {
	var chunks []Chunk
	textLen := len(text)
	currentPos := 0

	for currentPos < textLen {
		chunkEnd := min(currentPos+cfg.ChunkSize, textLen)

		// Не в конце документа - ищем хорошую границу рядом
		if chunkEnd < textLen {
			chunkEnd = FindBestSplitPoint(text, chunkEnd, cfg.Separators, cfg.ChunkOverlap)
		}

		chunkContent := strings.TrimSpace(text[currentPos:chunkEnd])

		if len(chunkContent) >= cfg.MinChunkSize || chunkEnd >= textLen {
			chunks = append(chunks, newChunk(filename, sectionIdx, chunkContent, currentPos, chunkEnd))
			sectionIdx++
		}

		// Сегмент дошёл до конца документа - дальше резать нечего
		if chunkEnd >= textLen {
			break
		}

		// Сдвигаемся с перекрытием; если курсор не продвинулся строго
		// вперёд - режем без перекрытия, иначе цикл застрянет
		next := chunkEnd - cfg.ChunkOverlap
		if next <= currentPos {
			next = chunkEnd
		}
		currentPos = next
	}

	return chunks, sectionIdx
}
