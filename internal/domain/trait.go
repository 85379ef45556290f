package domain

// Trait names a questionable attribute of a Character. Values match the
// flat record's JSON keys.
type Trait string

const (
	TraitName                    Trait = "name"
	TraitDescription             Trait = "description"
	TraitKind                    Trait = "kind"
	TraitRarity                  Trait = "rarity"
	TraitMechanicalDeity         Trait = "mechanicalDeity"
	TraitMartialWeaponTraining   Trait = "martialWeaponTraining"
	TraitShieldBlock             Trait = "shieldBlock"
	TraitCompanion               Trait = "companion"
	TraitFamiliar                Trait = "familiar"
	TraitPrecisionDamage         Trait = "precisionDamage"
	TraitSpellLikeAbility        Trait = "spellLikeAbility"
	TraitHealingAbility          Trait = "healingAbility"
	TraitArchetypeArmorTraining  Trait = "archetype_armorTraining"
	TraitArchetypeMulticlass     Trait = "archetype_multiclass"
	TraitArchetypeTenPlusFeats   Trait = "archetype_tenPlusFeats"
	TraitClassArmor              Trait = "class_armor"
	TraitClassClassArchetype     Trait = "class_classArchetype"
	TraitClassKeyAttribute       Trait = "class_keyAttribute"
	TraitFocusSpells             Trait = "focusSpells"
	TraitFocusSpellsAttribute    Trait = "focusSpells_attribute"
	TraitFocusSpellsDomainSpells Trait = "focusSpells_domainSpells"
	TraitFocusSpellsTradition    Trait = "focusSpells_tradition"
	TraitSpellcasting            Trait = "spellcasting"
	TraitSpellcastingAttribute   Trait = "spellcasting_attribute"
	TraitSpellcastingFull        Trait = "spellcasting_full"
	TraitSpellcastingKind        Trait = "spellcasting_kind"
	TraitSpellcastingTradition   Trait = "spellcasting_tradition"
)

var allTraits = []Trait{
	TraitName,
	TraitDescription,
	TraitKind,
	TraitRarity,
	TraitMechanicalDeity,
	TraitMartialWeaponTraining,
	TraitShieldBlock,
	TraitCompanion,
	TraitFamiliar,
	TraitPrecisionDamage,
	TraitSpellLikeAbility,
	TraitHealingAbility,
	TraitArchetypeArmorTraining,
	TraitArchetypeMulticlass,
	TraitArchetypeTenPlusFeats,
	TraitClassArmor,
	TraitClassClassArchetype,
	TraitClassKeyAttribute,
	TraitFocusSpells,
	TraitFocusSpellsAttribute,
	TraitFocusSpellsDomainSpells,
	TraitFocusSpellsTradition,
	TraitSpellcasting,
	TraitSpellcastingAttribute,
	TraitSpellcastingFull,
	TraitSpellcastingKind,
	TraitSpellcastingTradition,
}

// Traits lists every trait of the Character record.
func Traits() []Trait {
	out := make([]Trait, len(allTraits))
	copy(out, allTraits)
	return out
}

// ValueKind tags the shape of a TraitValue.
type ValueKind int

const (
	ValueNull ValueKind = iota
	ValueBool
	ValueString
	ValueStrings
)

// TraitValue is a trait read off a Character with its nullability intact.
// ValueNull means the trait does not apply to the entity's kind.
type TraitValue struct {
	Kind    ValueKind
	Bool    bool
	String  string
	Strings []string
}

func (v TraitValue) IsNull() bool { return v.Kind == ValueNull }

func nullValue() TraitValue               { return TraitValue{Kind: ValueNull} }
func boolValue(b bool) TraitValue         { return TraitValue{Kind: ValueBool, Bool: b} }
func stringValue(s string) TraitValue     { return TraitValue{Kind: ValueString, String: s} }
func stringsValue(ss []string) TraitValue { return TraitValue{Kind: ValueStrings, Strings: ss} }

func nullableBool(b *bool) TraitValue {
	if b == nil {
		return nullValue()
	}
	return boolValue(*b)
}

func nullableString(s *string) TraitValue {
	if s == nil {
		return nullValue()
	}
	return stringValue(*s)
}

func nullableStrings(ss []string) TraitValue {
	if ss == nil {
		return nullValue()
	}
	return stringsValue(ss)
}

// namedOrFalse reads a "false or a name" field.
func namedOrFalse(s string) TraitValue {
	if s == "" {
		return boolValue(false)
	}
	return stringValue(s)
}

// namesOrFalse reads a "false or a list of names" field.
func namesOrFalse(ss []string) TraitValue {
	if len(ss) == 0 {
		return boolValue(false)
	}
	return stringsValue(ss)
}
