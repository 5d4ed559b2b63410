package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/mattn/go-runewidth"

	"github.com/KirkDiggler/dota-bot-discord/internal/config"
	"github.com/KirkDiggler/dota-bot-discord/internal/discord/v2/builders"
	"github.com/KirkDiggler/dota-bot-discord/internal/entities"
)

const (
	fieldFacets            = "Facets"
	fieldFacetsContinued   = "*Facets continued*"
	fieldAbilities         = "Abilities"
	fieldAbilitiesContinue = "*Abilities continued*"
	fieldProperties        = "Properties"
	fieldDetails           = "Details"
	fieldCost              = "Cost"
	fieldBonuses           = "Bonuses"
	fieldScepter           = "Scepter Upgrade"
	fieldShard             = "Shard Upgrade"

	// Talent rows run from level 25 down in steps of 5.
	talentTopLevel  = 5
	talentLevelStep = 5
)

// RenderTalents formats the talent tree as a code block with the left
// column right aligned and the unlock level between the columns.
func RenderTalents(hero *entities.Hero) string {
	width := 0
	for _, pair := range hero.Talents {
		if w := runewidth.StringWidth(talentName(pair.Left)); w > width {
			width = w
		}
	}

	rows := make([]string, len(hero.Talents))
	for i, pair := range hero.Talents {
		rows[i] = fmt.Sprintf("%s |%d| %s",
			runewidth.FillLeft(talentName(pair.Left), width),
			(talentTopLevel-i)*talentLevelStep,
			talentName(pair.Right))
	}

	return fmt.Sprintf("%s Talents\n```%s```", hero.Name, strings.Join(rows, "\n"))
}

func talentName(t *entities.Talent) string {
	if t == nil {
		return ""
	}
	return t.Name
}

// RenderHero builds the hero overview embed
func RenderHero(hero *entities.Hero, images config.ImageURLs) *discordgo.MessageEmbed {
	facets := make([]string, 0, len(hero.Facets))
	for _, facet := range hero.Facets {
		facets = append(facets, fmt.Sprintf("\n__%s__\n%s\n", facet.Name, facet.ShortDesc))
	}

	abilities := make([]string, 0, len(hero.Abilities))
	for _, ability := range hero.Abilities {
		abilities = append(abilities, heroAbilityFragment(ability))
	}

	return builders.NewEmbed().
		Author(hero.Name, "", images.AttributeIcon(hero.Attribute)).
		Title(hero.ShortDesc).
		Color(attributeColor(hero.Attribute)).
		Thumbnail(images.HeroThumbPath+hero.ShortNameID()+".png").
		Description(fmt.Sprintf("-# %s-complexity %s Hero", hero.Complexity, hero.AttackType)).
		PagedFields(fieldFacets, fieldFacetsContinued, builders.PackFields(facets, builders.MaxFieldLength, builders.FieldOverhead)).
		PagedFields(fieldAbilities, fieldAbilitiesContinue, builders.PackFields(abilities, builders.MaxFieldLength, builders.FieldOverhead)).
		Build()
}

func heroAbilityFragment(ability *entities.Ability) string {
	heading := "__" + ability.Name + "__"
	if label := ability.Label(); label != "" {
		heading += " " + label
	}
	return fmt.Sprintf("\n%s\n%s\n", heading, ability.ShortDesc)
}

func attributeColor(attr entities.Attribute) int {
	switch attr {
	case entities.AttributeStrength:
		return builders.ColorStrength
	case entities.AttributeAgility:
		return builders.ColorAgility
	case entities.AttributeIntelligence:
		return builders.ColorIntelligence
	case entities.AttributeUniversal:
		return builders.ColorUniversal
	default:
		return builders.ColorPrimary
	}
}

// RenderItem builds the item embed. Items without an active or passive of
// their own only list their bonuses.
func RenderItem(item *entities.Item, images config.ImageURLs) *discordgo.MessageEmbed {
	title := strconv.Itoa(item.Cost) + " Gold Cost Item"
	if item.IsNeutral() {
		title = fmt.Sprintf("Tier %d Neutral Item", item.NeutralTier)
	}

	embed := builders.NewEmbed().
		Author(item.Name, "", "").
		Title(title).
		Color(builders.ColorInfo).
		Thumbnail(images.ItemThumbPath + item.ShortNameID() + ".png").
		Description(item.ShortDesc)

	if item.HasAbility() {
		addCommonAbilityFields(embed, &item.Castable)
	}

	bonuses := make([]string, 0, len(item.BonusValues))
	for _, value := range item.BonusValues {
		bonuses = append(bonuses, fmt.Sprintf("+%s %s", value.FirstValue(), value.Heading))
	}
	embed.FieldIf(fieldBonuses, strings.Join(bonuses, "\n"), false)

	return embed.Build()
}

// RenderAbility builds the ability embed
func RenderAbility(ability *entities.Ability, images config.ImageURLs) *discordgo.MessageEmbed {
	embed := builders.NewEmbed().
		Author(ability.Name, "", "").
		Color(builders.ColorInfo).
		Thumbnail(images.AbilityThumbPath + ability.NameID + ".png").
		Description(ability.ShortDesc)

	addCommonAbilityFields(embed, &ability.Castable)

	if ability.ScepterUpgrade() {
		embed.Field(fieldScepter, ability.ScepterDesc, false)
	}
	if ability.ShardUpgrade() {
		embed.Field(fieldShard, ability.ShardDesc, false)
	}

	return embed.Build()
}

func addCommonAbilityFields(embed *builders.EmbedBuilder, c *entities.Castable) {
	embed.Field(fieldProperties, abilityProperties(c), false)
	embed.FieldIf(fieldDetails, abilityDetails(c), true)
	embed.FieldIf(fieldCost, abilityCost(c), true)
}

func abilityProperties(c *entities.Castable) string {
	lines := []string{"Ability: " + c.Behavior.TargetType()}

	if !c.NoTarget() {
		lines = append(lines, fmt.Sprintf("Affects: %s %s", c.TargetTeam, c.TargetUnits))
	}
	if !c.NoDamage() {
		lines = append(lines, "Damage Type: "+c.DamageType.String())
	}
	if c.AnythingToPierce() {
		pierces := "No"
		if c.PiercesSpellImmunity() {
			pierces = "Yes"
		}
		lines = append(lines, "Pierces Spell Immunity: "+pierces)
	}
	if c.AnythingToDispel() {
		lines = append(lines, "Dispellable: "+c.Dispellable.String())
	}

	return strings.Join(lines, "\n")
}

// abilityDetails is empty when there are no ability values, even if the
// ability has a cooldown.
func abilityDetails(c *entities.Castable) string {
	if len(c.AbilityValues) == 0 {
		return ""
	}

	lines := make([]string, 0, len(c.AbilityValues))
	for _, value := range c.AbilityValues {
		lines = append(lines, value.Heading+" "+value.ValuesString())
	}

	details := strings.Join(lines, "\n")
	if c.HasCooldowns() {
		details += "\n\nCooldown: " + entities.JoinNumbers(c.Cooldowns)
	}

	return details
}

func abilityCost(c *entities.Castable) string {
	var lines []string
	if c.HasManaCosts() {
		lines = append(lines, "Mana: "+entities.JoinNumbers(c.ManaCosts))
	}
	if c.HasHealthCosts() {
		lines = append(lines, "Health: "+entities.JoinNumbers(c.HealthCosts))
	}
	return strings.Join(lines, "\n")
}
