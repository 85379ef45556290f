package domain

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"
)

const wizardJSON = `{
	"name": "Wizard",
	"rarity": "Common",
	"mechanicalDeity": false,
	"focusSpells": {"attribute": "Intelligence", "tradition": "Arcane"},
	"spellcasting": {"attribute": "Intelligence", "kind": "Prepared", "full": true, "tradition": ["Arcane"]},
	"martialWeaponTraining": false,
	"shieldBlock": false,
	"companion": false,
	"familiar": true,
	"precisionDamage": false,
	"spellLikeAbility": false,
	"healingAbility": false,
	"kind": {"name": "Class", "armor": "Unarmored", "classArchetype": true, "keyAttribute": "Intelligence"}
}`

const sentinelJSON = `{
	"name": "Sentinel",
	"rarity": "Common",
	"mechanicalDeity": false,
	"focusSpells": null,
	"spellcasting": null,
	"martialWeaponTraining": true,
	"shieldBlock": false,
	"companion": "Animal",
	"familiar": false,
	"precisionDamage": false,
	"spellLikeAbility": false,
	"healingAbility": ["Battle Medicine", "Treat Wounds"],
	"kind": {"name": "Archetype", "multiclass": false, "tenPlusFeats": false, "armorTraining": true}
}`

func decodeSource(t *testing.T, raw string) CharacterSource {
	t.Helper()
	var src CharacterSource
	if err := json.Unmarshal([]byte(raw), &src); err != nil {
		t.Fatalf("decode source: %v", err)
	}
	return src
}

func TestToCharacter_Class(t *testing.T) {
	c, err := decodeSource(t, wizardJSON).ToCharacter()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if c.Kind != KindClass || c.ClassArmor == nil || *c.ClassArmor != ArmorUnarmored {
		t.Fatalf("expected class with unarmored armor, got %+v", c)
	}
	if !slices.Equal(c.ClassKeyAttribute, []string{"Intelligence"}) {
		t.Fatalf("expected single key attribute to become a list, got %v", c.ClassKeyAttribute)
	}
	if c.ArchetypeMulticlass != nil || c.ArchetypeArmorTraining != nil || c.ArchetypeTenPlusFeats != nil {
		t.Fatalf("expected archetype fields to be null for a class")
	}
	if !c.FocusSpells || !slices.Equal(c.FocusSpellsTradition, []string{"Arcane"}) {
		t.Fatalf("expected focus spells to be flattened, got %+v", c)
	}
	if c.SpellcastingFull == nil || !*c.SpellcastingFull {
		t.Fatalf("expected full caster")
	}
	if c.MartialWeaponTraining != MartialWeaponNone {
		t.Fatalf("expected false martial training to map to %q, got %q", MartialWeaponNone, c.MartialWeaponTraining)
	}
	if c.Companion != "" || len(c.HealingAbility) != 0 {
		t.Fatalf("expected no companion nor healing, got %q %v", c.Companion, c.HealingAbility)
	}
}

func TestToCharacter_Archetype(t *testing.T) {
	c, err := decodeSource(t, sentinelJSON).ToCharacter()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if c.ClassArmor != nil || c.ClassKeyAttribute != nil || c.ClassClassArchetype != nil {
		t.Fatalf("expected class fields to be null for an archetype")
	}
	if c.ArchetypeArmorTraining == nil || !*c.ArchetypeArmorTraining {
		t.Fatalf("expected armor training")
	}
	if c.FocusSpells || c.FocusSpellsAttribute != nil || c.FocusSpellsDomainSpells != nil {
		t.Fatalf("expected focus spell fields to be null without focus spells")
	}
	if c.Spellcasting || c.SpellcastingKind != nil {
		t.Fatalf("expected spellcasting fields to be null without spellcasting")
	}
	if c.MartialWeaponTraining != MartialWeaponAll {
		t.Fatalf("expected true martial training to map to %q, got %q", MartialWeaponAll, c.MartialWeaponTraining)
	}
	if c.Companion != "Animal" {
		t.Fatalf("expected companion name, got %q", c.Companion)
	}
	if len(c.HealingAbility) != 2 {
		t.Fatalf("expected two healing abilities, got %v", c.HealingAbility)
	}
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]func(*CharacterSource){
		"missing name":        func(s *CharacterSource) { s.Name = "" },
		"unknown rarity":      func(s *CharacterSource) { s.Rarity = "Legendary" },
		"unknown kind":        func(s *CharacterSource) { s.Kind.Name = "Ancestry" },
		"class without armor": func(s *CharacterSource) { s.Kind.Armor = "" },
		"bad attribute":       func(s *CharacterSource) { s.Kind.KeyAttribute = OneOrMany{"Luck"} },
		"bad tradition":       func(s *CharacterSource) { s.FocusSpells.Tradition = OneOrMany{"Elemental"} },
		"bad martial":         func(s *CharacterSource) { s.MartialWeaponTraining = BoolOrString{Set: true, Text: "Bows"} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			src := decodeSource(t, wizardJSON)
			mutate(&src)
			if _, err := src.ToCharacter(); !errors.Is(err, ErrInvalidSource) {
				t.Fatalf("expected ErrInvalidSource, got %v", err)
			}
		})
	}
}

func TestValidate_ArchetypeWithClassFields(t *testing.T) {
	src := decodeSource(t, sentinelJSON)
	src.Kind.Armor = ArmorHeavy
	if err := src.Validate(); !errors.Is(err, ErrInvalidSource) {
		t.Fatalf("expected ErrInvalidSource, got %v", err)
	}
}

func TestOneOrMany_Unmarshal(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{`"Arcane"`, []string{"Arcane"}},
		{`["Arcane","Divine"]`, []string{"Arcane", "Divine"}},
		{`null`, nil},
		{`false`, nil},
	}
	for _, tc := range cases {
		var o OneOrMany
		if err := json.Unmarshal([]byte(tc.raw), &o); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.raw, err)
		}
		if !slices.Equal(o, tc.want) {
			t.Fatalf("unmarshal %s: expected %v, got %v", tc.raw, tc.want, o)
		}
	}
	var o OneOrMany
	if err := json.Unmarshal([]byte(`42`), &o); err == nil {
		t.Fatalf("expected error for a number")
	}
}

func TestBoolOrString_RoundTrip(t *testing.T) {
	cases := []struct {
		raw  string
		name string
	}{
		{`false`, ""},
		{`true`, AnswerYes},
		{`"Animal"`, "Animal"},
	}
	for _, tc := range cases {
		var b BoolOrString
		if err := json.Unmarshal([]byte(tc.raw), &b); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.raw, err)
		}
		if b.Name() != tc.name {
			t.Fatalf("unmarshal %s: expected name %q, got %q", tc.raw, tc.name, b.Name())
		}
		out, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(out) != tc.raw {
			t.Fatalf("expected %s after round trip, got %s", tc.raw, out)
		}
	}
}
