package service

import (
	"slices"

	"class-finder/internal/domain"
)

// Strategy selects how a trait's value turns into answer labels.
type Strategy int

const (
	// StrategyIdentifier answers with the entity's own name.
	StrategyIdentifier Strategy = iota
	// StrategyFreeText never produces labels.
	StrategyFreeText
	// StrategyNeutral is a boolean where both Yes and No eliminate.
	StrategyNeutral
	// StrategyYesEliminates is a boolean where only Yes eliminates.
	StrategyYesEliminates
	// StrategyNoEliminates is a boolean where only No eliminates.
	StrategyNoEliminates
	// StrategyOrdinal answers with every rank of Scale the value tolerates.
	StrategyOrdinal
	// StrategyValues answers with each value plus a catch-all.
	StrategyValues
	// StrategyNamedBool is a boolean whose true value carries one or more names.
	StrategyNamedBool
)

// Direction says which ranks of an ordinal scale an entity satisfies.
type Direction int

const (
	// AtOrBelow: an entity of rank L satisfies thresholds 0..L.
	AtOrBelow Direction = iota
	// AtOrAbove: an entity of rank L satisfies thresholds L..max.
	AtOrAbove
)

// TraitSpec is the static description of one questionable trait.
type TraitSpec struct {
	Trait     domain.Trait
	Text      string
	Strategy  Strategy
	Scale     []string
	Direction Direction
	// Expand maps a value to the labels it stands for (e.g. "All").
	Expand map[string][]string
}

var defaultCatalog = []TraitSpec{
	{Trait: domain.TraitName, Text: "Here are your options:", Strategy: StrategyIdentifier},
	{Trait: domain.TraitDescription, Text: "N/A", Strategy: StrategyFreeText},
	{Trait: domain.TraitKind, Text: "Are you looking for a class or just an archetype?", Strategy: StrategyValues},
	{Trait: domain.TraitRarity, Text: "What's the highest rarity you're allowed?", Strategy: StrategyOrdinal, Scale: domain.RarityScale, Direction: AtOrAbove},
	{Trait: domain.TraitMechanicalDeity, Text: "Do you want your character's deity choice to have a mechanical impact?", Strategy: StrategyNeutral},
	{
		Trait:    domain.TraitMartialWeaponTraining,
		Text:     "What martial weapon proficiencies do you want?",
		Strategy: StrategyValues,
		Expand: map[string][]string{
			domain.MartialWeaponAll: slices.DeleteFunc(slices.Clone(domain.MartialWeapons), func(s string) bool {
				return s == domain.MartialWeaponNone
			}),
		},
	},
	{Trait: domain.TraitShieldBlock, Text: "Do you want Shield Block at level 1?", Strategy: StrategyNeutral},
	{Trait: domain.TraitCompanion, Text: "Do you want to get access to (some kind of) a companion?", Strategy: StrategyNamedBool},
	{Trait: domain.TraitFamiliar, Text: "Do you want to get access to a familiar?", Strategy: StrategyYesEliminates},
	{Trait: domain.TraitPrecisionDamage, Text: "Do you want a way to add precision damage to your attacks?", Strategy: StrategyYesEliminates},
	{Trait: domain.TraitSpellLikeAbility, Text: "Do you want a spell-like ability?", Strategy: StrategyNamedBool},
	{Trait: domain.TraitHealingAbility, Text: "Do you want access to an infallible, 10-minute-cooldown healing ability?", Strategy: StrategyNamedBool},
	{Trait: domain.TraitArchetypeArmorTraining, Text: "Must the archetype dedication give some armor training?", Strategy: StrategyYesEliminates},
	{Trait: domain.TraitArchetypeMulticlass, Text: "Must the archetype be a multiclass archetype?", Strategy: StrategyYesEliminates},
	{Trait: domain.TraitArchetypeTenPlusFeats, Text: "Must the archetype have 10 or more class feats?", Strategy: StrategyYesEliminates},
	{Trait: domain.TraitClassArmor, Text: "What's the lowest armor proficiency you'd accept?", Strategy: StrategyOrdinal, Scale: domain.ArmorScale, Direction: AtOrBelow},
	{Trait: domain.TraitClassClassArchetype, Text: "Are you fine with taking a class archetype?", Strategy: StrategyNoEliminates},
	{Trait: domain.TraitClassKeyAttribute, Text: "What key attribute do you want?", Strategy: StrategyValues},
	{Trait: domain.TraitFocusSpells, Text: "Do you want focus spells?", Strategy: StrategyNeutral},
	{Trait: domain.TraitFocusSpellsAttribute, Text: "What focus spell spellcasting attribute do you want?", Strategy: StrategyValues},
	{Trait: domain.TraitFocusSpellsDomainSpells, Text: "Do you want access to deity domain spells?", Strategy: StrategyNeutral},
	{Trait: domain.TraitFocusSpellsTradition, Text: "Which focus spell tradition do you want?", Strategy: StrategyValues},
	{Trait: domain.TraitSpellcasting, Text: "Do you want spell slots?", Strategy: StrategyNeutral},
	{Trait: domain.TraitSpellcastingAttribute, Text: "What spellcasting attribute do you want?", Strategy: StrategyValues},
	{Trait: domain.TraitSpellcastingFull, Text: "Do you want to be a full caster?", Strategy: StrategyNeutral},
	{Trait: domain.TraitSpellcastingKind, Text: "What kind of spell slots do you want?", Strategy: StrategyValues},
	{Trait: domain.TraitSpellcastingTradition, Text: "Which spellcasting tradition do you want?", Strategy: StrategyValues},
}

// DefaultCatalog returns the trait table for the class/archetype data set,
// one entry per domain.Traits() element, in the same order.
func DefaultCatalog() []TraitSpec {
	return slices.Clone(defaultCatalog)
}

// IdentifierText is the question text of the identifier trait in catalog.
func IdentifierText(catalog []TraitSpec) string {
	for _, spec := range catalog {
		if spec.Strategy == StrategyIdentifier {
			return spec.Text
		}
	}
	return ""
}
