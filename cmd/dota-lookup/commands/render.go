package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bwmarrin/discordgo"
)

func writeJSON(w io.Writer, embed *discordgo.MessageEmbed) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(embed)
}

// writeText prints an embed roughly the way the Discord client lays it out.
func writeText(w io.Writer, embed *discordgo.MessageEmbed) error {
	var sb strings.Builder

	if embed.Author != nil && embed.Author.Name != "" {
		sb.WriteString(embed.Author.Name)
		sb.WriteString("\n")
	}
	if embed.Title != "" {
		sb.WriteString("# ")
		sb.WriteString(embed.Title)
		sb.WriteString("\n")
	}
	if embed.Description != "" {
		sb.WriteString(embed.Description)
		sb.WriteString("\n")
	}

	for _, field := range embed.Fields {
		sb.WriteString("\n## ")
		sb.WriteString(field.Name)
		sb.WriteString("\n")
		sb.WriteString(strings.TrimSpace(field.Value))
		sb.WriteString("\n")
	}

	if embed.Thumbnail != nil && embed.Thumbnail.URL != "" {
		fmt.Fprintf(&sb, "\nImage: %s\n", embed.Thumbnail.URL)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
