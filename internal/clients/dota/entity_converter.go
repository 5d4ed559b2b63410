package dota

import (
	"strings"

	"github.com/KirkDiggler/dota-bot-discord/internal/entities"
)

const (
	abilityTypeUltimate = 1
	talentsPerRow       = 2
)

func apiRefToEntityRef(input *apiRef) *entities.EntityRef {
	name := input.NameEnglishLoc
	if name == "" {
		name = input.NameLoc
	}

	return &entities.EntityRef{
		ID:     input.ID,
		Name:   name,
		NameID: input.Name,
	}
}

func apiRefsToEntityRefs(input []*apiRef) []*entities.EntityRef {
	output := make([]*entities.EntityRef, 0, len(input))
	for _, ref := range input {
		if ref == nil || ref.Name == "" {
			continue
		}
		output = append(output, apiRefToEntityRef(ref))
	}
	return output
}

func apiHeroToHero(input *apiHero) *entities.Hero {
	if input == nil {
		return nil
	}

	return &entities.Hero{
		ID:         input.ID,
		Name:       input.NameLoc,
		NameID:     input.Name,
		ShortDesc:  cleanDescription(input.NpeDescLoc, nil),
		Attribute:  apiPrimaryAttrToAttribute(input.PrimaryAttr),
		Complexity: entities.Complexity(input.Complexity),
		AttackType: apiAttackCapabilityToAttackType(input.AttackCapability),
		Abilities:  orderAbilities(apisToAbilities(input.Abilities)),
		Facets:     apisToFacets(input.Facets),
		Talents:    apisToTalentPairs(input.Talents),
	}
}

func apiPrimaryAttrToAttribute(attr int) entities.Attribute {
	switch attr {
	case 0:
		return entities.AttributeStrength
	case 1:
		return entities.AttributeAgility
	case 2:
		return entities.AttributeIntelligence
	case 3:
		return entities.AttributeUniversal
	default:
		return entities.AttributeNone
	}
}

func apiAttackCapabilityToAttackType(capability int) entities.AttackType {
	switch capability {
	case 1:
		return entities.AttackTypeMelee
	case 2:
		return entities.AttackTypeRanged
	default:
		return entities.AttackTypeNone
	}
}

func apisToFacets(input []*apiFacet) []*entities.Facet {
	facets := make([]*entities.Facet, 0, len(input))
	for _, f := range input {
		if f == nil {
			continue
		}
		facets = append(facets, &entities.Facet{
			Name:      f.TitleLoc,
			ShortDesc: cleanDescription(f.DescriptionLoc, nil),
		})
	}
	return facets
}

// apisToTalentPairs turns the datafeed's level-ascending talent list into
// rows ordered from level 25 down to level 10.
func apisToTalentPairs(input []*apiAbility) []*entities.TalentPair {
	rows := len(input) / talentsPerRow
	pairs := make([]*entities.TalentPair, 0, rows)

	for row := rows - 1; row >= 0; row-- {
		left := input[row*talentsPerRow]
		right := input[row*talentsPerRow+1]
		pairs = append(pairs, &entities.TalentPair{
			Left:  &entities.Talent{Name: cleanDescription(left.NameLoc, left.SpecialValues)},
			Right: &entities.Talent{Name: cleanDescription(right.NameLoc, right.SpecialValues)},
		})
	}

	return pairs
}

func apisToAbilities(input []*apiAbility) []*entities.Ability {
	abilities := make([]*entities.Ability, 0, len(input))
	for _, a := range input {
		ability := apiAbilityToAbility(a)
		if ability == nil {
			continue
		}
		if ability.Behavior.Has(entities.BehaviorHidden) && !ability.IsInnate && !ability.FromScepter && !ability.FromShard {
			continue
		}
		abilities = append(abilities, ability)
	}
	return abilities
}

// orderAbilities lists innate abilities first, then basic abilities, then
// ultimates, then abilities granted by Aghanim's Scepter and Shard.
func orderAbilities(abilities []*entities.Ability) []*entities.Ability {
	rank := func(a *entities.Ability) int {
		switch {
		case a.FromShard:
			return 4
		case a.FromScepter:
			return 3
		case a.IsUltimate:
			return 2
		case a.IsInnate:
			return 0
		default:
			return 1
		}
	}

	ordered := make([]*entities.Ability, 0, len(abilities))
	for r := 0; r <= 4; r++ {
		for _, a := range abilities {
			if rank(a) == r {
				ordered = append(ordered, a)
			}
		}
	}
	return ordered
}

func apiAbilityToAbility(input *apiAbility) *entities.Ability {
	if input == nil {
		return nil
	}

	return &entities.Ability{
		ID:          input.ID,
		Name:        input.NameLoc,
		NameID:      input.Name,
		ShortDesc:   cleanDescription(input.DescLoc, input.SpecialValues),
		IsInnate:    input.AbilityIsInnate,
		IsUltimate:  input.Type == abilityTypeUltimate,
		FromShard:   input.AbilityIsGrantedByShard,
		FromScepter: input.AbilityIsGrantedByScepter,
		HasScepter:  input.AbilityHasScepter,
		HasShard:    input.AbilityHasShard,
		ScepterDesc: cleanDescription(input.ScepterLoc, input.SpecialValues),
		ShardDesc:   cleanDescription(input.ShardLoc, input.SpecialValues),
		Castable:    apiAbilityToCastable(input, apisToAbilityValues(input.SpecialValues)),
	}
}

func apiItemToItem(input *apiAbility) *entities.Item {
	if input == nil {
		return nil
	}

	var abilityValues, bonusValues []*entities.AbilityValue
	for _, v := range apisToAbilityValues(input.SpecialValues) {
		if isBonusValue(v) {
			bonusValues = append(bonusValues, v)
			continue
		}
		if v.Heading != "" {
			abilityValues = append(abilityValues, v)
		}
	}

	// The wire tier is zero based, with -1 for shop items.
	tier := 0
	if input.ItemNeutralTier >= 0 {
		tier = input.ItemNeutralTier + 1
	}

	return &entities.Item{
		ID:          input.ID,
		Name:        input.NameLoc,
		NameID:      input.Name,
		ShortDesc:   cleanDescription(input.DescLoc, input.SpecialValues),
		Cost:        input.ItemCost,
		NeutralTier: tier,
		BonusValues: bonusValues,
		Castable:    apiAbilityToCastable(input, abilityValues),
	}
}

func apiAbilityToCastable(input *apiAbility, values []*entities.AbilityValue) entities.Castable {
	return entities.Castable{
		Behavior:      entities.Behavior(input.Behavior),
		TargetTeam:    entities.TargetTeam(input.TargetTeam),
		TargetUnits:   entities.TargetUnits(input.TargetType),
		DamageType:    entities.DamageType(input.Damage),
		Immunity:      entities.Immunity(input.Immunity),
		Dispellable:   entities.Dispellable(input.Dispellable),
		AbilityValues: values,
		Cooldowns:     input.Cooldowns,
		ManaCosts:     input.ManaCosts,
		HealthCosts:   input.HealthCosts,
	}
}

func apisToAbilityValues(input []*apiSpecialValue) []*entities.AbilityValue {
	values := make([]*entities.AbilityValue, 0, len(input))
	for _, sv := range input {
		if sv == nil || len(sv.ValuesFloat) == 0 {
			continue
		}
		values = append(values, &entities.AbilityValue{
			Name:         sv.Name,
			Heading:      strings.TrimSpace(sv.HeadingLoc),
			Values:       sv.ValuesFloat,
			IsPercentage: sv.IsPercentage,
		})
	}
	return values
}

// isBonusValue picks out the flat stat bonuses an item grants, which the
// datafeed names bonus_<stat>. Those without a heading get one from the name.
func isBonusValue(v *entities.AbilityValue) bool {
	if !strings.HasPrefix(v.Name, "bonus_") {
		return false
	}

	if v.Heading == "" {
		v.Heading = humanizeValueName(strings.TrimPrefix(v.Name, "bonus_"))
	}
	return true
}

func humanizeValueName(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
