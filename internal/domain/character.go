package domain

// Character is the flat, read-only record the narrowing engine filters.
// Pointer and slice fields are nil when the trait does not apply to the
// entity's kind (class_* on archetypes, focusSpells_* without focus
// spells, ...).
type Character struct {
	Name                  string   `json:"name"`
	Description           string   `json:"description,omitempty"`
	Kind                  string   `json:"kind"`
	Rarity                string   `json:"rarity"`
	MechanicalDeity       bool     `json:"mechanicalDeity"`
	MartialWeaponTraining string   `json:"martialWeaponTraining"`
	ShieldBlock           bool     `json:"shieldBlock"`
	Companion             string   `json:"companion,omitempty"`
	Familiar              bool     `json:"familiar"`
	PrecisionDamage       bool     `json:"precisionDamage"`
	SpellLikeAbility      string   `json:"spellLikeAbility,omitempty"`
	HealingAbility        []string `json:"healingAbility,omitempty"`

	ArchetypeArmorTraining *bool `json:"archetype_armorTraining"`
	ArchetypeMulticlass    *bool `json:"archetype_multiclass"`
	ArchetypeTenPlusFeats  *bool `json:"archetype_tenPlusFeats"`

	ClassArmor          *string  `json:"class_armor"`
	ClassClassArchetype *bool    `json:"class_classArchetype"`
	ClassKeyAttribute   []string `json:"class_keyAttribute"`

	FocusSpells             bool     `json:"focusSpells"`
	FocusSpellsAttribute    []string `json:"focusSpells_attribute"`
	FocusSpellsDomainSpells *bool    `json:"focusSpells_domainSpells"`
	FocusSpellsTradition    []string `json:"focusSpells_tradition"`

	Spellcasting          bool     `json:"spellcasting"`
	SpellcastingAttribute []string `json:"spellcasting_attribute"`
	SpellcastingFull      *bool    `json:"spellcasting_full"`
	SpellcastingKind      []string `json:"spellcasting_kind"`
	SpellcastingTradition []string `json:"spellcasting_tradition"`
}

// Value reads a trait by name.
func (c Character) Value(t Trait) TraitValue {
	switch t {
	case TraitName:
		return stringValue(c.Name)
	case TraitDescription:
		return stringValue(c.Description)
	case TraitKind:
		return stringValue(c.Kind)
	case TraitRarity:
		return stringValue(c.Rarity)
	case TraitMechanicalDeity:
		return boolValue(c.MechanicalDeity)
	case TraitMartialWeaponTraining:
		return stringValue(c.MartialWeaponTraining)
	case TraitShieldBlock:
		return boolValue(c.ShieldBlock)
	case TraitCompanion:
		return namedOrFalse(c.Companion)
	case TraitFamiliar:
		return boolValue(c.Familiar)
	case TraitPrecisionDamage:
		return boolValue(c.PrecisionDamage)
	case TraitSpellLikeAbility:
		return namedOrFalse(c.SpellLikeAbility)
	case TraitHealingAbility:
		return namesOrFalse(c.HealingAbility)
	case TraitArchetypeArmorTraining:
		return nullableBool(c.ArchetypeArmorTraining)
	case TraitArchetypeMulticlass:
		return nullableBool(c.ArchetypeMulticlass)
	case TraitArchetypeTenPlusFeats:
		return nullableBool(c.ArchetypeTenPlusFeats)
	case TraitClassArmor:
		return nullableString(c.ClassArmor)
	case TraitClassClassArchetype:
		return nullableBool(c.ClassClassArchetype)
	case TraitClassKeyAttribute:
		return nullableStrings(c.ClassKeyAttribute)
	case TraitFocusSpells:
		return boolValue(c.FocusSpells)
	case TraitFocusSpellsAttribute:
		return nullableStrings(c.FocusSpellsAttribute)
	case TraitFocusSpellsDomainSpells:
		return nullableBool(c.FocusSpellsDomainSpells)
	case TraitFocusSpellsTradition:
		return nullableStrings(c.FocusSpellsTradition)
	case TraitSpellcasting:
		return boolValue(c.Spellcasting)
	case TraitSpellcastingAttribute:
		return nullableStrings(c.SpellcastingAttribute)
	case TraitSpellcastingFull:
		return nullableBool(c.SpellcastingFull)
	case TraitSpellcastingKind:
		return nullableStrings(c.SpellcastingKind)
	case TraitSpellcastingTradition:
		return nullableStrings(c.SpellcastingTradition)
	}
	return nullValue()
}

// Names returns the identifiers of the given characters, in order.
func Names(chars []Character) []string {
	names := make([]string, 0, len(chars))
	for _, c := range chars {
		names = append(names, c.Name)
	}
	return names
}
