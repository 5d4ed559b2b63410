package core

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// TestInteractionContext creates an InteractionContext for testing
type TestInteractionContext struct {
	*InteractionContext
}

// NewTestInteractionContext creates a test interaction context
func NewTestInteractionContext() *TestInteractionContext {
	ctx := &InteractionContext{
		Context: context.Background(),
		UserID:  "test-user-123",
		GuildID: "test-guild-123",
		params:  make(map[string]interface{}),
	}

	return &TestInteractionContext{
		InteractionContext: ctx,
	}
}

// WithParam adds a command option for testing
func (t *TestInteractionContext) WithParam(key string, value interface{}) *TestInteractionContext {
	t.params[key] = value
	return t
}

// WithUserID sets the user ID
func (t *TestInteractionContext) WithUserID(userID string) *TestInteractionContext {
	t.UserID = userID
	return t
}

// WithGuildID sets the guild ID
func (t *TestInteractionContext) WithGuildID(guildID string) *TestInteractionContext {
	t.GuildID = guildID
	return t
}

// AsCommand simulates a command interaction
func (t *TestInteractionContext) AsCommand(name string, subcommand ...string) *TestInteractionContext {
	t.Interaction = &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:    discordgo.InteractionApplicationCommand,
			GuildID: t.GuildID,
			Data: discordgo.ApplicationCommandInteractionData{
				Name: name,
			},
		},
	}

	if len(subcommand) > 0 {
		t.params["subcommand"] = subcommand[0]
	}

	return t
}

// AsComponent simulates a button press, which no router handles
func (t *TestInteractionContext) AsComponent(customID string) *TestInteractionContext {
	t.Interaction = &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionMessageComponent,
			Data: discordgo.MessageComponentInteractionData{
				CustomID: customID,
			},
		},
	}
	return t
}

// WithResponder attaches a responder the way the pipeline does
func (t *TestInteractionContext) WithResponder(responder InteractionResponder) *TestInteractionContext {
	t.SetResponder(responder)
	return t
}

// MockResponder is a test implementation of InteractionResponder
type MockResponder struct {
	DeferCalls   []bool // Track ephemeral flags
	Responses    []*Response
	Edits        []*Response
	DeferError   error
	RespondError error
	EditError    error
	Deferred     bool
	Responded    bool
}

// NewMockResponder creates a new mock responder
func NewMockResponder() *MockResponder {
	return &MockResponder{
		DeferCalls: make([]bool, 0),
		Responses:  make([]*Response, 0),
		Edits:      make([]*Response, 0),
	}
}

func (m *MockResponder) Defer(ephemeral bool) error {
	m.DeferCalls = append(m.DeferCalls, ephemeral)
	if m.DeferError != nil {
		return m.DeferError
	}
	m.Deferred = true
	m.Responded = true
	return nil
}

func (m *MockResponder) Respond(response *Response) error {
	if m.Responded {
		return m.Edit(response)
	}
	m.Responses = append(m.Responses, response)
	m.Responded = true
	return m.RespondError
}

func (m *MockResponder) Edit(response *Response) error {
	m.Edits = append(m.Edits, response)
	return m.EditError
}

func (m *MockResponder) HasResponded() bool {
	return m.Responded
}

func (m *MockResponder) IsDeferred() bool {
	return m.Deferred
}

// LastResponse returns the last response sent, edits included
func (m *MockResponder) LastResponse() *Response {
	if len(m.Edits) > 0 {
		return m.Edits[len(m.Edits)-1]
	}
	if len(m.Responses) > 0 {
		return m.Responses[len(m.Responses)-1]
	}
	return nil
}
