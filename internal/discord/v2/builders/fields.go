package builders

import (
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
)

const (
	// MaxFieldLength is Discord's cap on an embed field value.
	MaxFieldLength = 1024

	// FieldOverhead is reserved per block for the separators Discord adds.
	FieldOverhead = 2

	truncationMarker = "…"
)

// PackFields groups consecutive fragments into blocks that each fit in a
// field of at most limit characters. Fragments are never split. A fragment
// that cannot fit on its own becomes a single block cut to size and ending
// in "…". Lengths are counted in runes.
func PackFields(fragments []string, limit, overhead int) []string {
	if len(fragments) == 0 {
		return nil
	}

	budget := limit - overhead
	if budget < 1 {
		budget = 1
	}

	var blocks []string
	block, blockLen := "", 0

	for i := 0; i < len(fragments); i++ {
		fragment := fragments[i]
		fragmentLen := utf8.RuneCountInString(fragment)

		if fragmentLen > budget {
			if blockLen > 0 {
				blocks = append(blocks, block)
				block, blockLen = "", 0
			}
			blocks = append(blocks, truncate(fragment, budget))
			continue
		}

		if blockLen+fragmentLen > budget {
			blocks = append(blocks, block)
			block, blockLen = "", 0
		}

		block += fragment
		blockLen += fragmentLen
	}

	if blockLen > 0 {
		blocks = append(blocks, block)
	}

	return blocks
}

// AddPagedFields appends blocks to embed as fields. Nothing is added for
// zero blocks.
func AddPagedFields(embed *discordgo.MessageEmbed, title, continuedTitle string, blocks []string) {
	for i, block := range blocks {
		name := title
		if i > 0 {
			name = continuedTitle
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  name,
			Value: block,
		})
	}
}

func truncate(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}

	markerLen := utf8.RuneCountInString(truncationMarker)
	if maxRunes <= markerLen {
		return string(runes[:maxRunes])
	}

	return string(runes[:maxRunes-markerLen]) + truncationMarker
}
