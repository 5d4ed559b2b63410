package dota

import (
	"context"
	"errors"
	"strings"

	internal "github.com/KirkDiggler/dota-bot-discord/internal"
	"github.com/KirkDiggler/dota-bot-discord/internal/entities"
)

const talentsKeyword = "talents"

// Translator expands player jargon into canonical names
type Translator interface {
	TranslateHero(input string) string
	TranslateItem(input string) string
	TranslateAbility(input string) string
}

// Lookup turns what a player typed into a record. Callers translate first so
// they can reply before any datafeed call when nothing is left to look up.
type Lookup struct {
	service    Service
	translator Translator
}

func NewLookup(service Service, translator Translator) *Lookup {
	if service == nil {
		panic("service is required")
	}
	if translator == nil {
		panic("translator is required")
	}

	return &Lookup{
		service:    service,
		translator: translator,
	}
}

// HeroName strips a leading "talents" keyword and translates the rest.
func (l *Lookup) HeroName(words []string) (name string, talents bool) {
	if len(words) > 0 && strings.EqualFold(words[0], talentsKeyword) {
		talents = true
		words = words[1:]
	}

	return l.translator.TranslateHero(strings.Join(words, " ")), talents
}

func (l *Lookup) ItemName(words []string) string {
	return l.translator.TranslateItem(strings.Join(words, " "))
}

func (l *Lookup) AbilityName(words []string) string {
	return l.translator.TranslateAbility(strings.Join(words, " "))
}

func (l *Lookup) Hero(ctx context.Context, name string) (*entities.Hero, error) {
	id, err := l.service.HeroIDByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return l.service.Hero(ctx, id)
}

func (l *Lookup) Item(ctx context.Context, name string) (*entities.Item, error) {
	id, err := l.service.ItemIDByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return l.service.Item(ctx, id)
}

func (l *Lookup) Ability(ctx context.Context, name string) (*entities.Ability, error) {
	id, err := l.service.AbilityIDByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return l.service.Ability(ctx, id)
}

// IsUnrecognized reports whether err means the name matched nothing.
func IsUnrecognized(err error) bool {
	return errors.Is(err, internal.ErrNotFound)
}
