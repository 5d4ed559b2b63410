package dota

//go:generate mockgen -destination=mock/mock_client.go -package=mockdota . Client

import (
	"context"

	"github.com/KirkDiggler/dota-bot-discord/internal/entities"
)

// Client reads heroes, items and abilities from the Dota 2 datafeed.
type Client interface {
	ListHeroes(ctx context.Context) ([]*entities.EntityRef, error)
	GetHero(ctx context.Context, id int) (*entities.Hero, error)
	ListItems(ctx context.Context) ([]*entities.EntityRef, error)
	GetItem(ctx context.Context, id int) (*entities.Item, error)
	ListAbilities(ctx context.Context) ([]*entities.EntityRef, error)
	GetAbility(ctx context.Context, id int) (*entities.Ability, error)
}
