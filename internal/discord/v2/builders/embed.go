package builders

import (
	"github.com/bwmarrin/discordgo"
)

// EmbedBuilder provides a fluent API for building Discord embeds
type EmbedBuilder struct {
	embed *discordgo.MessageEmbed
}

// NewEmbed creates a new embed builder
func NewEmbed() *EmbedBuilder {
	return &EmbedBuilder{
		embed: &discordgo.MessageEmbed{
			Type:   discordgo.EmbedTypeRich,
			Fields: make([]*discordgo.MessageEmbedField, 0),
		},
	}
}

// Title sets the embed title
func (b *EmbedBuilder) Title(title string) *EmbedBuilder {
	b.embed.Title = title
	return b
}

// Description sets the embed description
func (b *EmbedBuilder) Description(description string) *EmbedBuilder {
	b.embed.Description = description
	return b
}

// Color sets the embed color
func (b *EmbedBuilder) Color(color int) *EmbedBuilder {
	b.embed.Color = color
	return b
}

// Thumbnail sets the embed thumbnail
func (b *EmbedBuilder) Thumbnail(url string) *EmbedBuilder {
	b.embed.Thumbnail = &discordgo.MessageEmbedThumbnail{
		URL: url,
	}
	return b
}

// Author sets the embed author. Empty URLs are left unset.
func (b *EmbedBuilder) Author(name, url, iconURL string) *EmbedBuilder {
	b.embed.Author = &discordgo.MessageEmbedAuthor{
		Name:    name,
		URL:     url,
		IconURL: iconURL,
	}
	return b
}

// Field adds a field to the embed
func (b *EmbedBuilder) Field(name, value string, inline bool) *EmbedBuilder {
	b.embed.Fields = append(b.embed.Fields, &discordgo.MessageEmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	})
	return b
}

// FieldIf adds a field only when value is not empty
func (b *EmbedBuilder) FieldIf(name, value string, inline bool) *EmbedBuilder {
	if value == "" {
		return b
	}
	return b.Field(name, value, inline)
}

// PagedFields adds one field per block: the first under title, the rest
// under continuedTitle.
func (b *EmbedBuilder) PagedFields(title, continuedTitle string, blocks []string) *EmbedBuilder {
	AddPagedFields(b.embed, title, continuedTitle, blocks)
	return b
}

// Build returns the constructed embed
func (b *EmbedBuilder) Build() *discordgo.MessageEmbed {
	return b.embed
}

// Common embed colors
const (
	ColorInfo         = 0x0099ff // Blue
	ColorPrimary      = 0x7289da // Discord Blurple
	ColorStrength     = 0xb9500b
	ColorAgility      = 0x167c13
	ColorIntelligence = 0x257dae
	ColorUniversal    = 0xb38d2f
)
