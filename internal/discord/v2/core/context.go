package core

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
)

type contextKey string

const (
	responderKey contextKey = "responder"
	requestIDKey contextKey = "request_id"
)

// InteractionContext wraps a Discord interaction with useful helpers and context
type InteractionContext struct {
	// Core Discord objects
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate

	// Extracted common fields for convenience
	UserID    string
	GuildID   string
	ChannelID string
	Member    *discordgo.Member

	// Context for cancellation and values
	Context context.Context

	// Slash command options by name
	params map[string]interface{}
}

// NewInteractionContext creates a new InteractionContext from a Discord interaction
func NewInteractionContext(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) *InteractionContext {
	ic := &InteractionContext{
		Session:     s,
		Interaction: i,
		Context:     ctx,
		params:      make(map[string]interface{}),
	}

	if i.Member != nil {
		ic.Member = i.Member
		if i.Member.User != nil {
			ic.UserID = i.Member.User.ID
		}
	} else if i.User != nil {
		ic.UserID = i.User.ID
	}

	ic.GuildID = i.GuildID
	ic.ChannelID = i.ChannelID

	if ic.IsCommand() {
		ic.parseOptions(i.ApplicationCommandData().Options)
	}

	return ic
}

// parseOptions recursively extracts command options
func (ic *InteractionContext) parseOptions(options []*discordgo.ApplicationCommandInteractionDataOption) {
	for _, opt := range options {
		if len(opt.Options) > 0 {
			ic.params["subcommand"] = opt.Name
			ic.parseOptions(opt.Options)
			continue
		}
		ic.params[opt.Name] = opt.Value
	}
}

// GetStringParam retrieves a string parameter or returns empty string
func (ic *InteractionContext) GetStringParam(name string) string {
	if val, ok := ic.params[name]; ok {
		if strVal, ok := val.(string); ok {
			return strVal
		}
	}
	return ""
}

// GetArgs splits a free text option into whitespace separated words, the
// way a prefix command would have received them.
func (ic *InteractionContext) GetArgs(name string) []string {
	return strings.Fields(ic.GetStringParam(name))
}

// IsCommand checks if this is a slash command interaction
func (ic *InteractionContext) IsCommand() bool {
	return ic.Interaction != nil && ic.Interaction.Interaction != nil &&
		ic.Interaction.Type == discordgo.InteractionApplicationCommand
}

// GetCommandName returns the command name for slash commands
func (ic *InteractionContext) GetCommandName() string {
	if ic.IsCommand() {
		return ic.Interaction.ApplicationCommandData().Name
	}
	return ""
}

// GetSubcommand returns the subcommand name if present
func (ic *InteractionContext) GetSubcommand() string {
	return ic.GetStringParam("subcommand")
}

// WithValue adds a value to the context
func (ic *InteractionContext) WithValue(key, val interface{}) {
	ic.Context = context.WithValue(ic.Context, key, val)
}

// Value retrieves a value from the context
func (ic *InteractionContext) Value(key interface{}) interface{} {
	return ic.Context.Value(key)
}

// SetResponder attaches the responder handlers use to defer or reply early.
func (ic *InteractionContext) SetResponder(responder InteractionResponder) {
	ic.WithValue(responderKey, responder)
}

// Responder returns the attached responder, or nil outside a pipeline.
func (ic *InteractionContext) Responder() InteractionResponder {
	responder, _ := ic.Value(responderKey).(InteractionResponder)
	return responder
}

func (ic *InteractionContext) SetRequestID(id string) {
	ic.WithValue(requestIDKey, id)
}

func (ic *InteractionContext) RequestID() string {
	id, _ := ic.Value(requestIDKey).(string)
	return id
}
