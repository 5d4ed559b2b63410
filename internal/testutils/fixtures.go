package testutils

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/dota-bot-discord/internal/entities"
)

// CreateTestAbility creates a basic unit target magical nuke
func CreateTestAbility(id int, name string) *entities.Ability {
	return &entities.Ability{
		ID:        id,
		Name:      name,
		NameID:    strings.ToLower(strings.ReplaceAll(name, " ", "_")),
		ShortDesc: fmt.Sprintf("%s deals damage to an enemy.", name),
		Castable: entities.Castable{
			Behavior:    entities.BehaviorUnitTarget,
			TargetTeam:  entities.TargetTeamEnemy,
			TargetUnits: entities.TargetUnitsHero | entities.TargetUnitsCreep,
			DamageType:  entities.DamageTypeMagical,
			Immunity:    entities.ImmunityDoesNotPierce,
			Dispellable: entities.DispellableNo,
			AbilityValues: []*entities.AbilityValue{
				{Name: "damage", Heading: "DAMAGE:", Values: []float64{100, 175, 250, 325}},
			},
			Cooldowns: []float64{12, 11, 10, 9},
			ManaCosts: []float64{100, 110, 120, 130},
		},
	}
}

// CreateTestHero creates a hero with one of each ability kind, a facet and a
// full talent tree
func CreateTestHero(id int, name string) *entities.Hero {
	innate := CreateTestAbility(id*10+1, name+" Innate")
	innate.IsInnate = true
	innate.Behavior = entities.BehaviorPassive

	basic := CreateTestAbility(id*10+2, name+" Strike")

	ultimate := CreateTestAbility(id*10+3, name+" Ultimate")
	ultimate.IsUltimate = true
	ultimate.HasScepter = true
	ultimate.ScepterDesc = "Reduces cooldown."

	talents := make([]*entities.TalentPair, 0, 4)
	for level := 25; level >= 10; level -= 5 {
		talents = append(talents, &entities.TalentPair{
			Left:  &entities.Talent{Name: fmt.Sprintf("+%d Damage", level)},
			Right: &entities.Talent{Name: fmt.Sprintf("+%d Armor", level/5)},
		})
	}

	return &entities.Hero{
		ID:         id,
		Name:       name,
		NameID:     "npc_dota_hero_" + strings.ToLower(strings.ReplaceAll(name, " ", "_")),
		ShortDesc:  "A test hero",
		Attribute:  entities.AttributeAgility,
		Complexity: entities.ComplexityMedium,
		AttackType: entities.AttackTypeMelee,
		Abilities:  []*entities.Ability{innate, basic, ultimate},
		Facets: []*entities.Facet{
			{Name: "Sharp", ShortDesc: "Deals more damage."},
		},
		Talents: talents,
	}
}

// CreateTestItem creates a shop item with an active and stat bonuses
func CreateTestItem(id int, name string, cost int) *entities.Item {
	return &entities.Item{
		ID:        id,
		Name:      name,
		NameID:    "item_" + strings.ToLower(strings.ReplaceAll(name, " ", "_")),
		ShortDesc: fmt.Sprintf("%s does something.", name),
		Cost:      cost,
		BonusValues: []*entities.AbilityValue{
			{Name: "bonus_strength", Heading: "Strength", Values: []float64{10}},
		},
		Castable: entities.Castable{
			Behavior:  entities.BehaviorNoTarget,
			Cooldowns: []float64{30},
			AbilityValues: []*entities.AbilityValue{
				{Name: "duration", Heading: "DURATION:", Values: []float64{5}},
			},
			ManaCosts: []float64{50},
		},
	}
}

// CreateTestStatItem creates a shop item that only grants stats
func CreateTestStatItem(id int, name string, cost int) *entities.Item {
	return &entities.Item{
		ID:        id,
		Name:      name,
		NameID:    "item_" + strings.ToLower(strings.ReplaceAll(name, " ", "_")),
		ShortDesc: "",
		Cost:      cost,
		BonusValues: []*entities.AbilityValue{
			{Name: "bonus_agility", Heading: "Agility", Values: []float64{3}},
		},
		Castable: entities.Castable{Behavior: entities.BehaviorPassive},
	}
}
