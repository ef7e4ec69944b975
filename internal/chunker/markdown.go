package chunker

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownChunker разбивает markdown документы по заголовкам,
// сохраняя байтовые смещения секций в исходном тексте
type MarkdownChunker struct {
	config Config
}

// NewMarkdownChunker создаёт новый markdown chunker
func NewMarkdownChunker(config Config) *MarkdownChunker {
	return &MarkdownChunker{config: config}
}

func (m *MarkdownChunker) Name() string {
	return "markdown"
}

// DocumentStructure содержит информацию о структуре документа
type DocumentStructure struct {
	HeadingCounts map[int]int // уровень заголовка -> количество
}

func (m *MarkdownChunker) Chunk(content, filename string) ([]Chunk, error) {
	src := []byte(content)
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	// Анализируем структуру документа
	structure := m.analyzeStructure(doc)

	// Выбираем уровень заголовков для разбиения
	level, err := m.selectHeadingLevel(structure)
	if err != nil {
		// Явно возвращаем ошибку - пусть вызывающий код решает что делать
		return nil, fmt.Errorf("markdown chunker cannot process this content: %w", err)
	}

	boundaries := m.headingOffsets(doc, src, level)

	log.Printf("📊 [%s] Document structure: headings=%v, split level=%d, sections=%d",
		m.Name(), structure.HeadingCounts, level, len(boundaries))

	return m.chunkSections(content, filename, boundaries), nil
}

// analyzeStructure считает заголовки по уровням
func (m *MarkdownChunker) analyzeStructure(doc ast.Node) DocumentStructure {
	structure := DocumentStructure{
		HeadingCounts: make(map[int]int),
	}

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if heading, ok := n.(*ast.Heading); ok {
				structure.HeadingCounts[heading.Level]++
			}
		}
		return ast.WalkContinue, nil
	})

	return structure
}

// selectHeadingLevel выбирает уровень заголовков для разбиения
func (m *MarkdownChunker) selectHeadingLevel(structure DocumentStructure) (int, error) {
	// Проверяем заголовки от H2 до H4 (наиболее частые для структурированных документов)
	for level := 2; level <= 4; level++ {
		minHeadings := 3
		switch level {
		case 3:
			minHeadings = 5 // Для H3 (подразделы) нужно больше
		case 4:
			minHeadings = 10 // Для H4 нужно ещё больше
		}

		if structure.HeadingCounts[level] >= minHeadings {
			return level, nil
		}
	}

	// Нет подходящей markdown структуры - возвращаем ошибку
	return 0, fmt.Errorf("no suitable markdown structure found (headings: %v)", structure.HeadingCounts)
}

// headingOffsets собирает смещения начала строк заголовков целевого уровня и выше
func (m *MarkdownChunker) headingOffsets(doc ast.Node, src []byte, targetLevel int) []int {
	var offsets []int

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok || heading.Level > targetLevel || heading.Lines().Len() == 0 {
			return ast.WalkContinue, nil
		}
		offsets = append(offsets, lineStart(src, heading.Lines().At(0).Start))
		return ast.WalkContinue, nil
	})

	return offsets
}

// lineStart возвращает смещение начала строки, содержащей pos
func lineStart(src []byte, pos int) int {
	if pos > len(src) {
		pos = len(src)
	}
	if i := bytes.LastIndexByte(src[:pos], '\n'); i != -1 {
		return i + 1
	}
	return 0
}

// chunkSections превращает границы секций в чанки.
// Секции крупнее лимита дорезаются базовым циклом с перекрытием.
func (m *MarkdownChunker) chunkSections(content, filename string, boundaries []int) []Chunk {
	// Текст до первого заголовка - отдельная секция
	if len(boundaries) == 0 || boundaries[0] != 0 {
		boundaries = append([]int{0}, boundaries...)
	}
	boundaries = append(boundaries, len(content))

	var chunks []Chunk
	sectionIdx := 1

	for i := 0; i+1 < len(boundaries); i++ {
		secStart, secEnd := boundaries[i], boundaries[i+1]
		trimmed := strings.TrimSpace(content[secStart:secEnd])
		if trimmed == "" {
			continue
		}

		if secEnd-secStart <= m.config.ChunkSize {
			chunks = append(chunks, newChunk(filename, sectionIdx, trimmed, secStart, secEnd))
			sectionIdx++
			continue
		}

		// Большая секция - дорезаем, смещения сдвигаем к началу секции
		sub, next := chunkRange(content[secStart:secEnd], filename, sectionIdx, m.config)
		for _, c := range sub {
			c.CharStart += secStart
			c.CharEnd += secStart
			chunks = append(chunks, c)
		}
		sectionIdx = next
	}

	return chunks
}
