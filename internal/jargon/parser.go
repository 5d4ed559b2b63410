// Package jargon expands the shorthand players use for heroes, items and
// abilities ("am", "bkb", "rp") into the names the datafeed knows.
package jargon

import (
	"strings"
	"sync"
)

// Tables maps each canonical name to the abbreviations that stand for it.
type Tables struct {
	Heroes    map[string][]string
	Items     map[string][]string
	Abilities map[string][]string
}

// Parser is safe for concurrent use; SetTables may be called while
// translations are in flight.
type Parser struct {
	mu        sync.RWMutex
	heroes    map[string]string
	items     map[string]string
	abilities map[string]string
}

func NewParser(tables *Tables) *Parser {
	p := &Parser{}
	p.SetTables(tables)
	return p
}

// SetTables replaces every abbreviation table at once.
func (p *Parser) SetTables(tables *Tables) {
	if tables == nil {
		tables = &Tables{}
	}

	heroes := invert(tables.Heroes)
	items := invert(tables.Items)
	abilities := invert(tables.Abilities)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.heroes = heroes
	p.items = items
	p.abilities = abilities
}

func (p *Parser) TranslateHero(input string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return translate(p.heroes, input)
}

func (p *Parser) TranslateItem(input string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return translate(p.items, input)
}

func (p *Parser) TranslateAbility(input string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return translate(p.abilities, input)
}

// translate collapses whitespace and swaps a known abbreviation for its
// canonical name. Anything else is returned as typed.
func translate(table map[string]string, input string) string {
	cleaned := strings.Join(strings.Fields(input), " ")
	if cleaned == "" {
		return ""
	}

	if canonical, ok := table[strings.ToLower(cleaned)]; ok {
		return canonical
	}

	return cleaned
}

func invert(abbrevs map[string][]string) map[string]string {
	table := make(map[string]string)
	for canonical, aliases := range abbrevs {
		canonical = strings.Join(strings.Fields(canonical), " ")
		if canonical == "" {
			continue
		}
		for _, alias := range aliases {
			key := strings.ToLower(strings.Join(strings.Fields(alias), " "))
			if key != "" {
				table[key] = canonical
			}
		}
	}
	return table
}
