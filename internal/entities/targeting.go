package entities

import "strings"

// Behavior is the datafeed ability behavior bitmask.
type Behavior uint64

const (
	BehaviorNone       Behavior = 0
	BehaviorHidden     Behavior = 1 << 0
	BehaviorPassive    Behavior = 1 << 1
	BehaviorNoTarget   Behavior = 1 << 2
	BehaviorUnitTarget Behavior = 1 << 3
	BehaviorPoint      Behavior = 1 << 4
	BehaviorAOE        Behavior = 1 << 5
	BehaviorChannelled Behavior = 1 << 7
	BehaviorToggle     Behavior = 1 << 9
	BehaviorAutocast   Behavior = 1 << 12
)

func (b Behavior) Has(flag Behavior) bool {
	return b&flag != 0
}

// Active reports whether the behavior describes something a player casts.
func (b Behavior) Active() bool {
	return b.Has(BehaviorNoTarget | BehaviorUnitTarget | BehaviorPoint | BehaviorAOE | BehaviorToggle | BehaviorChannelled)
}

// TargetType names how the ability is cast, e.g. "Unit Target" or
// "Point Target, Channeled".
func (b Behavior) TargetType() string {
	var labels []string

	switch {
	case b.Has(BehaviorUnitTarget):
		labels = append(labels, "Unit Target")
	case b.Has(BehaviorPoint) && b.Has(BehaviorAOE):
		labels = append(labels, "AOE")
	case b.Has(BehaviorPoint):
		labels = append(labels, "Point Target")
	case b.Has(BehaviorNoTarget):
		labels = append(labels, "No Target")
	case b.Has(BehaviorPassive):
		labels = append(labels, "Passive")
	}

	if b.Has(BehaviorToggle) {
		labels = append(labels, "Toggle")
	}
	if b.Has(BehaviorAutocast) {
		labels = append(labels, "Autocast")
	}
	if b.Has(BehaviorChannelled) {
		labels = append(labels, "Channeled")
	}

	if len(labels) == 0 {
		return "None"
	}

	return strings.Join(labels, ", ")
}

type TargetTeam int

const (
	TargetTeamNone TargetTeam = iota
	TargetTeamFriendly
	TargetTeamEnemy
	TargetTeamBoth
)

func (t TargetTeam) String() string {
	switch t {
	case TargetTeamFriendly:
		return "Allied"
	case TargetTeamEnemy:
		return "Enemy"
	case TargetTeamBoth:
		return "Allied and Enemy"
	default:
		return ""
	}
}

// TargetUnits is the datafeed unit-type bitmask.
type TargetUnits int

const (
	TargetUnitsNone     TargetUnits = 0
	TargetUnitsHero     TargetUnits = 1 << 0
	TargetUnitsCreep    TargetUnits = 1 << 1
	TargetUnitsBuilding TargetUnits = 1 << 2
	TargetUnitsTree     TargetUnits = 1 << 6
)

func (u TargetUnits) String() string {
	var parts []string

	switch {
	case u&TargetUnitsHero != 0 && u&TargetUnitsCreep != 0:
		parts = append(parts, "Units")
	case u&TargetUnitsHero != 0:
		parts = append(parts, "Heroes")
	case u&TargetUnitsCreep != 0:
		parts = append(parts, "Creeps")
	}
	if u&TargetUnitsBuilding != 0 {
		parts = append(parts, "Buildings")
	}
	if u&TargetUnitsTree != 0 {
		parts = append(parts, "Trees")
	}

	if len(parts) == 0 {
		return "Units"
	}

	return strings.Join(parts, " and ")
}

type DamageType int

const (
	DamageTypeNone     DamageType = 0
	DamageTypePhysical DamageType = 1
	DamageTypeMagical  DamageType = 2
	DamageTypePure     DamageType = 4
)

func (d DamageType) String() string {
	switch d {
	case DamageTypePhysical:
		return "Physical"
	case DamageTypeMagical:
		return "Magical"
	case DamageTypePure:
		return "Pure"
	default:
		return "None"
	}
}

type Immunity int

const (
	ImmunityNone Immunity = iota
	ImmunityPierces
	ImmunityDoesNotPierce
	ImmunityAlliesOnly
)

type Dispellable int

const (
	DispellableNone Dispellable = iota
	DispellableYes
	DispellableStrongOnly
	DispellableNo
)

func (d Dispellable) String() string {
	switch d {
	case DispellableYes:
		return "Yes"
	case DispellableStrongOnly:
		return "Strong Dispels Only"
	case DispellableNo:
		return "No"
	default:
		return ""
	}
}
