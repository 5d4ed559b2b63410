package entities

import "strings"

// EntityRef is a list entry for a hero, item or ability: enough to resolve a
// display name to an ID without fetching the full record.
type EntityRef struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	NameID string `json:"name_id"`
}

type Hero struct {
	ID         int           `json:"id"`
	Name       string        `json:"name"`
	NameID     string        `json:"name_id"`
	ShortDesc  string        `json:"short_desc"`
	Attribute  Attribute     `json:"attribute"`
	Complexity Complexity    `json:"complexity"`
	AttackType AttackType    `json:"attack_type"`
	Abilities  []*Ability    `json:"abilities"`
	Facets     []*Facet      `json:"facets"`
	Talents    []*TalentPair `json:"talents"`
}

// ShortNameID strips the npc prefix, leaving the key used by image paths.
func (h *Hero) ShortNameID() string {
	return strings.TrimPrefix(h.NameID, "npc_dota_hero_")
}

type Facet struct {
	Name      string `json:"name"`
	ShortDesc string `json:"short_desc"`
}

type Talent struct {
	Name string `json:"name"`
}

// TalentPair is one row of the talent tree. Rows are ordered from the highest
// level (25) down to the lowest (10).
type TalentPair struct {
	Left  *Talent `json:"left"`
	Right *Talent `json:"right"`
}

type Attribute string

const (
	AttributeNone         Attribute = ""
	AttributeStrength     Attribute = "Strength"
	AttributeAgility      Attribute = "Agility"
	AttributeIntelligence Attribute = "Intelligence"
	AttributeUniversal    Attribute = "Universal"
)

var Attributes = []Attribute{AttributeStrength, AttributeAgility, AttributeIntelligence, AttributeUniversal}

type Complexity int

const (
	ComplexityUnknown Complexity = iota
	ComplexityLow
	ComplexityMedium
	ComplexityHigh
)

func (c Complexity) String() string {
	switch c {
	case ComplexityLow:
		return "Low"
	case ComplexityMedium:
		return "Medium"
	case ComplexityHigh:
		return "High"
	default:
		return "Unknown"
	}
}

type AttackType string

const (
	AttackTypeNone   AttackType = ""
	AttackTypeMelee  AttackType = "Melee"
	AttackTypeRanged AttackType = "Ranged"
)
