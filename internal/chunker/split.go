package chunker

import "strings"

// FindBestSplitPoint ищет лучшую точку разреза рядом с targetPos.
// Разделители пробуются по убыванию приоритета в окне +-window вокруг
// targetPos; берётся последнее вхождение, чтобы разрез оставался ближе
// к целевой позиции. Если ни один разделитель не найден - режем по targetPos.
func FindBestSplitPoint(text string, targetPos int, separators []string, window int) int {
	searchStart := max(0, targetPos-window)
	searchEnd := min(len(text), targetPos+window)
	searchZone := text[searchStart:searchEnd]

	for _, sep := range separators {
		if pos := strings.LastIndex(searchZone, sep); pos != -1 {
			return searchStart + pos + len(sep)
		}
	}

	return targetPos
}
