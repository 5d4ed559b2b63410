package entities

import "strings"

type Item struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	NameID      string          `json:"name_id"`
	ShortDesc   string          `json:"short_desc"`
	Cost        int             `json:"cost"`
	NeutralTier int             `json:"neutral_tier"` // 0 for shop items
	BonusValues []*AbilityValue `json:"bonus_values"`
	Castable
}

func (i *Item) IsNeutral() bool {
	return i.NeutralTier > 0
}

// HasAbility reports whether the item carries an active or a passive with
// its own values, as opposed to being a plain stat stick.
func (i *Item) HasAbility() bool {
	return i.Behavior.Active() || len(i.AbilityValues) > 0
}

// ShortNameID strips the item prefix, leaving the key used by image paths.
func (i *Item) ShortNameID() string {
	return strings.TrimPrefix(i.NameID, "item_")
}
