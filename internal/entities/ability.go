package entities

import (
	"strconv"
	"strings"
)

type Ability struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	NameID      string `json:"name_id"`
	ShortDesc   string `json:"short_desc"`
	IsInnate    bool   `json:"is_innate"`
	IsUltimate  bool   `json:"is_ultimate"`
	FromShard   bool   `json:"from_shard"`
	FromScepter bool   `json:"from_scepter"`
	HasScepter  bool   `json:"has_scepter"`
	HasShard    bool   `json:"has_shard"`
	ScepterDesc string `json:"scepter_desc"`
	ShardDesc   string `json:"shard_desc"`
	Castable
}

// Label is the italic tag shown next to an ability in a hero's list. Granted
// upgrades win over ultimate, which wins over innate.
func (a *Ability) Label() string {
	switch {
	case a.FromScepter:
		return "*Scepter*"
	case a.FromShard:
		return "*Shard*"
	case a.IsUltimate:
		return "*Ultimate*"
	case a.IsInnate:
		return "*Innate*"
	default:
		return ""
	}
}

func (a *Ability) ScepterUpgrade() bool {
	return a.HasScepter && a.ScepterDesc != ""
}

func (a *Ability) ShardUpgrade() bool {
	return a.HasShard && a.ShardDesc != ""
}

// Castable holds the casting properties shared by abilities and items with
// an active or passive component.
type Castable struct {
	Behavior      Behavior        `json:"behavior"`
	TargetTeam    TargetTeam      `json:"target_team"`
	TargetUnits   TargetUnits     `json:"target_units"`
	DamageType    DamageType      `json:"damage_type"`
	Immunity      Immunity        `json:"immunity"`
	Dispellable   Dispellable     `json:"dispellable"`
	AbilityValues []*AbilityValue `json:"ability_values"`
	Cooldowns     []float64       `json:"cooldowns"`
	ManaCosts     []float64       `json:"mana_costs"`
	HealthCosts   []float64       `json:"health_costs"`
}

func (c *Castable) NoTarget() bool {
	return c.TargetTeam == TargetTeamNone
}

func (c *Castable) NoDamage() bool {
	return c.DamageType == DamageTypeNone
}

func (c *Castable) AnythingToPierce() bool {
	return c.Immunity != ImmunityNone
}

func (c *Castable) PiercesSpellImmunity() bool {
	return c.Immunity == ImmunityPierces || c.Immunity == ImmunityAlliesOnly
}

func (c *Castable) AnythingToDispel() bool {
	return c.Dispellable != DispellableNone
}

func (c *Castable) HasCooldowns() bool {
	return anyPositive(c.Cooldowns)
}

func (c *Castable) HasManaCosts() bool {
	return anyPositive(c.ManaCosts)
}

func (c *Castable) HasHealthCosts() bool {
	return anyPositive(c.HealthCosts)
}

// AbilityValue is a named, per-level value such as damage or duration.
type AbilityValue struct {
	Name         string    `json:"name"`
	Heading      string    `json:"heading"`
	Values       []float64 `json:"values"`
	IsPercentage bool      `json:"is_percentage"`
}

// ValuesString renders the per-level values as "a/b/c". Identical values
// collapse into one.
func (v *AbilityValue) ValuesString() string {
	if len(v.Values) == 0 {
		return ""
	}

	values := v.Values
	if allEqual(values) {
		values = values[:1]
	}

	parts := make([]string, len(values))
	for i, value := range values {
		parts[i] = v.format(value)
	}

	return strings.Join(parts, "/")
}

// FirstValue renders the level one value.
func (v *AbilityValue) FirstValue() string {
	if len(v.Values) == 0 {
		return ""
	}

	return v.format(v.Values[0])
}

func (v *AbilityValue) format(value float64) string {
	s := FormatNumber(value)
	if v.IsPercentage {
		s += "%"
	}
	return s
}

// FormatNumber drops trailing zeros: 1.50 renders as 1.5 and 100.0 as 100.
func FormatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// JoinNumbers renders values as "a/b/c".
func JoinNumbers(values []float64) string {
	parts := make([]string, len(values))
	for i, value := range values {
		parts[i] = FormatNumber(value)
	}
	return strings.Join(parts, "/")
}

func anyPositive(values []float64) bool {
	for _, v := range values {
		if v > 0 {
			return true
		}
	}
	return false
}

func allEqual(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}
