package dota

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// apiResponse is the envelope every datafeed endpoint wraps its payload in.
type apiResponse[T any] struct {
	Result struct {
		Data   T   `json:"data"`
		Status int `json:"status"`
	} `json:"result"`
}

type apiHeroList struct {
	Heroes []*apiRef `json:"heroes"`
}

type apiItemAbilityList struct {
	ItemAbilities []*apiRef `json:"itemabilities"`
}

type apiRef struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	NameLoc        string `json:"name_loc"`
	NameEnglishLoc string `json:"name_english_loc"`
}

type apiHeroData struct {
	Heroes []*apiHero `json:"heroes"`
}

type apiItemData struct {
	Items []*apiAbility `json:"items"`
}

type apiAbilityData struct {
	Abilities []*apiAbility `json:"abilities"`
}

type apiHero struct {
	ID               int           `json:"id"`
	Name             string        `json:"name"`
	NameLoc          string        `json:"name_loc"`
	NpeDescLoc       string        `json:"npe_desc_loc"`
	HypeLoc          string        `json:"hype_loc"`
	PrimaryAttr      int           `json:"primary_attr"`
	Complexity       int           `json:"complexity"`
	AttackCapability int           `json:"attack_capability"`
	Abilities        []*apiAbility `json:"abilities"`
	Talents          []*apiAbility `json:"talents"`
	Facets           []*apiFacet   `json:"facets"`
}

type apiFacet struct {
	Name           string `json:"name"`
	TitleLoc       string `json:"title_loc"`
	DescriptionLoc string `json:"description_loc"`
}

// apiAbility covers both abilities and items; the datafeed uses one shape
// for both and leaves the fields that do not apply at their zero value.
type apiAbility struct {
	ID                        int                `json:"id"`
	Name                      string             `json:"name"`
	NameLoc                   string             `json:"name_loc"`
	DescLoc                   string             `json:"desc_loc"`
	Type                      int                `json:"type"`
	Behavior                  flexUint           `json:"behavior"`
	TargetTeam                int                `json:"target_team"`
	TargetType                int                `json:"target_type"`
	Damage                    int                `json:"damage"`
	Immunity                  int                `json:"immunity"`
	Dispellable               int                `json:"dispellable"`
	Cooldowns                 []float64          `json:"cooldowns"`
	ManaCosts                 []float64          `json:"mana_costs"`
	HealthCosts               []float64          `json:"health_costs"`
	SpecialValues             []*apiSpecialValue `json:"special_values"`
	AbilityIsInnate           bool               `json:"ability_is_innate"`
	AbilityIsGrantedByScepter bool               `json:"ability_is_granted_by_scepter"`
	AbilityIsGrantedByShard   bool               `json:"ability_is_granted_by_shard"`
	AbilityHasScepter         bool               `json:"ability_has_scepter"`
	AbilityHasShard           bool               `json:"ability_has_shard"`
	ScepterLoc                string             `json:"scepter_loc"`
	ShardLoc                  string             `json:"shard_loc"`
	ItemCost                  int                `json:"item_cost"`
	ItemNeutralTier           int                `json:"item_neutral_tier"`
}

type apiSpecialValue struct {
	Name         string    `json:"name"`
	ValuesFloat  []float64 `json:"values_float"`
	IsPercentage bool      `json:"is_percentage"`
	HeadingLoc   string    `json:"heading_loc"`
}

// flexUint decodes a bitmask the datafeed sends either as a JSON number or,
// when it overflows 32 bits, as a decimal string.
type flexUint uint64

func (f *flexUint) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = 0
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid bitmask %q: %w", s, err)
		}
		*f = flexUint(v)
		return nil
	}

	var n uint64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid bitmask %s: %w", string(data), err)
	}
	*f = flexUint(n)
	return nil
}
