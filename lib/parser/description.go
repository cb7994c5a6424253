package parserhandler

import (
	"strings"

	"golang.org/x/net/html"
)

const descriptionLimit = 400

// cleanDescription обрезает html описание до descriptionLimit символов и только потом убирает разметку,
// поэтому тег на границе обрезки может быть разрезан
func cleanDescription(raw string) string {
	return stripTags(truncate(raw, descriptionLimit))
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// stripTags оставляет только видимый текст: содержимое style и script отбрасывается,
// текстовые узлы очищаются от пробелов по краям и склеиваются через пробел
func stripTags(s string) string {
	parts := []string{}
	hidden := 0
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(parts, " ")
		case html.StartTagToken:
			if isHiddenTag(z) {
				hidden++
			}
		case html.EndTagToken:
			if isHiddenTag(z) && hidden > 0 {
				hidden--
			}
		case html.TextToken:
			if hidden > 0 {
				continue
			}
			text := strings.TrimSpace(string(z.Text()))
			if text != "" {
				parts = append(parts, text)
			}
		}
	}
}

func isHiddenTag(z *html.Tokenizer) bool {
	name, _ := z.TagName()
	switch string(name) {
	case "style", "script":
		return true
	}
	return false
}
