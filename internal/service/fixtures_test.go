package service

import (
	"context"
	"slices"

	"class-finder/internal/domain"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func classChar(name, armor string) domain.Character {
	return domain.Character{
		Name:                  name,
		Kind:                  domain.KindClass,
		Rarity:                domain.RarityCommon,
		MartialWeaponTraining: domain.MartialWeaponNone,
		ClassArmor:            strPtr(armor),
		ClassClassArchetype:   boolPtr(true),
		ClassKeyAttribute:     []string{"Strength"},
	}
}

func archetypeChar(name string) domain.Character {
	return domain.Character{
		Name:                   name,
		Kind:                   domain.KindArchetype,
		Rarity:                 domain.RarityCommon,
		MartialWeaponTraining:  domain.MartialWeaponNone,
		ArchetypeArmorTraining: boolPtr(false),
		ArchetypeMulticlass:    boolPtr(false),
		ArchetypeTenPlusFeats:  boolPtr(false),
	}
}

func specFor(trait domain.Trait) TraitSpec {
	for _, spec := range DefaultCatalog() {
		if spec.Trait == trait {
			return spec
		}
	}
	panic("no catalog entry for " + string(trait))
}

func catalogOf(traits ...domain.Trait) []TraitSpec {
	out := make([]TraitSpec, 0, len(traits))
	for _, tr := range traits {
		out = append(out, specFor(tr))
	}
	return out
}

func sortedNames(chars []domain.Character) []string {
	names := domain.Names(chars)
	slices.Sort(names)
	return names
}

// scriptedPrompter answers from a fixed list and records what it was asked.
type scriptedPrompter struct {
	answers []string
	asked   []string
	offered [][]string
}

func (p *scriptedPrompter) Choose(_ context.Context, text string, labels []string) (string, error) {
	p.asked = append(p.asked, text)
	p.offered = append(p.offered, labels)
	if len(p.answers) == 0 {
		return labels[0], nil
	}
	next := p.answers[0]
	p.answers = p.answers[1:]
	return next, nil
}
