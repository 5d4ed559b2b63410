package core

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// InteractionResponder provides an abstraction over Discord's interaction response API
type InteractionResponder interface {
	// Defer acknowledges the interaction and shows a "thinking" indicator
	// until the response is edited in
	Defer(ephemeral bool) error

	// Respond sends the response, editing the deferred message if needed
	Respond(response *Response) error

	// Edit updates a previous response (after defer or respond)
	Edit(response *Response) error

	HasResponded() bool
	IsDeferred() bool
}

// DiscordResponder implements InteractionResponder using Discord's API
type DiscordResponder struct {
	session     *discordgo.Session
	interaction *discordgo.InteractionCreate

	mu        sync.Mutex
	responded bool
	deferred  bool
}

// NewDiscordResponder creates a new Discord responder
func NewDiscordResponder(s *discordgo.Session, i *discordgo.InteractionCreate) *DiscordResponder {
	return &DiscordResponder{
		session:     s,
		interaction: i,
	}
}

// Defer sends a deferred response
func (r *DiscordResponder) Defer(ephemeral bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.responded || r.deferred {
		return fmt.Errorf("interaction already responded to")
	}

	flags := discordgo.MessageFlags(0)
	if ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}

	err := r.session.InteractionRespond(r.interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: flags,
		},
	})

	if err == nil {
		r.deferred = true
		r.responded = true
	}

	return err
}

// Respond sends an immediate response
func (r *DiscordResponder) Respond(response *Response) error {
	r.mu.Lock()
	responded := r.responded
	r.mu.Unlock()

	if responded {
		return r.Edit(response)
	}

	err := r.session.InteractionRespond(r.interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: buildResponseData(response),
	})

	if err == nil {
		r.mu.Lock()
		r.responded = true
		r.mu.Unlock()
	}

	return err
}

// Edit updates a previous response
func (r *DiscordResponder) Edit(response *Response) error {
	if !r.HasResponded() {
		return fmt.Errorf("cannot edit before responding")
	}

	webhook := &discordgo.WebhookEdit{
		Content:         &response.Content,
		Embeds:          &response.Embeds,
		AllowedMentions: response.AllowedMentions,
	}

	_, err := r.session.InteractionResponseEdit(r.interaction.Interaction, webhook)
	return err
}

// HasResponded returns whether this responder has already sent a response
func (r *DiscordResponder) HasResponded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.responded
}

// IsDeferred returns whether this responder has sent a deferred response
func (r *DiscordResponder) IsDeferred() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.deferred
}

// buildResponseData converts our Response to Discord's InteractionResponseData
func buildResponseData(response *Response) *discordgo.InteractionResponseData {
	data := &discordgo.InteractionResponseData{
		Content:         response.Content,
		Embeds:          response.Embeds,
		AllowedMentions: response.AllowedMentions,
	}

	if response.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return data
}
