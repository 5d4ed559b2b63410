package dota

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/KirkDiggler/dota-bot-discord/internal/entities"
)

var (
	placeholderPattern = regexp.MustCompile(`%(\w+)%`)
	lineBreakPattern   = regexp.MustCompile(`(?i)<br\s*/?>`)
	blankLinesPattern  = regexp.MustCompile(`\n{3,}`)

	markupPolicy = bluemonday.StrictPolicy()
)

// cleanDescription turns datafeed localized text into plain text: line break
// tags become newlines, %name% placeholders are replaced with the matching
// special value and every other tag is stripped.
func cleanDescription(raw string, values []*apiSpecialValue) string {
	if raw == "" {
		return ""
	}

	text := lineBreakPattern.ReplaceAllString(raw, "\n")
	text = placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		name := strings.ToLower(strings.Trim(match, "%"))
		for _, v := range values {
			if v == nil || strings.ToLower(v.Name) != name {
				continue
			}
			return (&entities.AbilityValue{Values: v.ValuesFloat}).ValuesString()
		}
		return match
	})
	text = strings.ReplaceAll(text, "%%", "%")

	text = markupPolicy.Sanitize(text)
	text = html.UnescapeString(text)
	text = blankLinesPattern.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
