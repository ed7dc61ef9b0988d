package ai

import (
	"encoding/json"
	"strings"
)

// ExtractJSONObject возвращает первый сбалансированный JSON-объект из текста ответа модели.
// Фигурные скобки внутри строковых литералов не учитываются.
func ExtractJSONObject(text string) (json.RawMessage, bool) {
	offset := 0
	for {
		idx := strings.IndexByte(text[offset:], '{')
		if idx == -1 {
			return nil, false
		}

		start := offset + idx
		if end, ok := matchObject(text, start); ok {
			candidate := text[start : end+1]
			if json.Valid([]byte(candidate)) {
				return json.RawMessage(candidate), true
			}
		}

		offset = start + 1
	}
}

// matchObject ищет закрывающую скобку для объекта, начинающегося в позиции start.
func matchObject(text string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		ch := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}

	return 0, false
}
