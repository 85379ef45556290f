package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidSource = errors.New("invalid character source")

// CharacterSource is how a character is written in the data files: the
// kind is a nested discriminated object and optional features are
// nullable objects. ToCharacter flattens it into a Character.
type CharacterSource struct {
	Name                  string              `json:"name" validate:"required"`
	Description           string              `json:"description,omitempty"`
	Rarity                string              `json:"rarity" validate:"required,oneof=Common Uncommon Rare Unique"`
	MechanicalDeity       bool                `json:"mechanicalDeity"`
	FocusSpells           *FocusSpellsSource  `json:"focusSpells"`
	Spellcasting          *SpellcastingSource `json:"spellcasting"`
	MartialWeaponTraining BoolOrString        `json:"martialWeaponTraining"`
	ShieldBlock           bool                `json:"shieldBlock"`
	Companion             BoolOrString        `json:"companion"`
	Familiar              bool                `json:"familiar"`
	PrecisionDamage       bool                `json:"precisionDamage"`
	SpellLikeAbility      BoolOrString        `json:"spellLikeAbility"`
	HealingAbility        OneOrMany           `json:"healingAbility"`
	Kind                  KindSource          `json:"kind" validate:"required"`
}

type FocusSpellsSource struct {
	Attribute    OneOrMany `json:"attribute" validate:"required,min=1,dive,oneof=Strength Dexterity Constitution Intelligence Wisdom Charisma"`
	Tradition    OneOrMany `json:"tradition" validate:"required,min=1,dive,oneof=Arcane Divine Occult Primal"`
	DomainSpells bool      `json:"domainSpells"`
}

type SpellcastingSource struct {
	Attribute OneOrMany `json:"attribute" validate:"required,min=1,dive,oneof=Strength Dexterity Constitution Intelligence Wisdom Charisma"`
	Kind      OneOrMany `json:"kind" validate:"required,min=1,dive,oneof=Prepared Spontaneous Innate"`
	Full      bool      `json:"full"`
	Tradition OneOrMany `json:"tradition" validate:"required,min=1,dive,oneof=Arcane Divine Occult Primal"`
}

// KindSource carries the fields of both kinds; which ones are meaningful
// depends on Name.
type KindSource struct {
	Name string `json:"name" validate:"required,oneof=Class Archetype"`

	Armor          string    `json:"armor,omitempty" validate:"omitempty,oneof=Unarmored Light Medium Heavy"`
	ClassArchetype bool      `json:"classArchetype,omitempty"`
	KeyAttribute   OneOrMany `json:"keyAttribute,omitempty" validate:"omitempty,dive,oneof=Strength Dexterity Constitution Intelligence Wisdom Charisma"`

	Multiclass    bool `json:"multiclass,omitempty"`
	TenPlusFeats  bool `json:"tenPlusFeats,omitempty"`
	ArmorTraining bool `json:"armorTraining,omitempty"`
}

// SourceRequiredKeys are the top-level keys every data entry must carry.
var SourceRequiredKeys = []string{
	"name",
	"rarity",
	"mechanicalDeity",
	"focusSpells",
	"spellcasting",
	"martialWeaponTraining",
	"shieldBlock",
	"companion",
	"familiar",
	"precisionDamage",
	"spellLikeAbility",
	"healingAbility",
	"kind",
}

// Document is one raw data entry, decoded without validation.
type Document map[string]json.RawMessage

// SourceOptionalKeys may be omitted.
var SourceOptionalKeys = []string{"description"}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the document against the data schema.
func (s CharacterSource) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidSource, s.Name, err)
	}
	switch s.Kind.Name {
	case KindClass:
		if s.Kind.Armor == "" {
			return fmt.Errorf("%w: %q: class has no armor proficiency", ErrInvalidSource, s.Name)
		}
		if len(s.Kind.KeyAttribute) == 0 {
			return fmt.Errorf("%w: %q: class has no key attribute", ErrInvalidSource, s.Name)
		}
	case KindArchetype:
		if s.Kind.Armor != "" || len(s.Kind.KeyAttribute) > 0 || s.Kind.ClassArchetype {
			return fmt.Errorf("%w: %q: archetype carries class fields", ErrInvalidSource, s.Name)
		}
	}
	if s.MartialWeaponTraining.Text != "" && !slices.Contains(MartialWeapons, s.MartialWeaponTraining.Text) {
		return fmt.Errorf("%w: %q: unknown martial weapon training %q", ErrInvalidSource, s.Name, s.MartialWeaponTraining.Text)
	}
	return nil
}

// ToCharacter validates the document and flattens it.
func (s CharacterSource) ToCharacter() (Character, error) {
	if err := s.Validate(); err != nil {
		return Character{}, err
	}

	c := Character{
		Name:             s.Name,
		Description:      s.Description,
		Kind:             s.Kind.Name,
		Rarity:           s.Rarity,
		MechanicalDeity:  s.MechanicalDeity,
		ShieldBlock:      s.ShieldBlock,
		Familiar:         s.Familiar,
		PrecisionDamage:  s.PrecisionDamage,
		Companion:        s.Companion.Name(),
		SpellLikeAbility: s.SpellLikeAbility.Name(),
		HealingAbility:   slices.Clone(s.HealingAbility),
	}

	switch {
	case !s.MartialWeaponTraining.Set:
		c.MartialWeaponTraining = MartialWeaponNone
	case s.MartialWeaponTraining.Text == "":
		c.MartialWeaponTraining = MartialWeaponAll
	default:
		c.MartialWeaponTraining = s.MartialWeaponTraining.Text
	}

	switch s.Kind.Name {
	case KindClass:
		armor := s.Kind.Armor
		classArchetype := s.Kind.ClassArchetype
		c.ClassArmor = &armor
		c.ClassClassArchetype = &classArchetype
		c.ClassKeyAttribute = slices.Clone(s.Kind.KeyAttribute)
	case KindArchetype:
		armorTraining := s.Kind.ArmorTraining
		multiclass := s.Kind.Multiclass
		tenPlusFeats := s.Kind.TenPlusFeats
		c.ArchetypeArmorTraining = &armorTraining
		c.ArchetypeMulticlass = &multiclass
		c.ArchetypeTenPlusFeats = &tenPlusFeats
	}

	if f := s.FocusSpells; f != nil {
		domainSpells := f.DomainSpells
		c.FocusSpells = true
		c.FocusSpellsAttribute = slices.Clone(f.Attribute)
		c.FocusSpellsDomainSpells = &domainSpells
		c.FocusSpellsTradition = slices.Clone(f.Tradition)
	}

	if sc := s.Spellcasting; sc != nil {
		full := sc.Full
		c.Spellcasting = true
		c.SpellcastingAttribute = slices.Clone(sc.Attribute)
		c.SpellcastingFull = &full
		c.SpellcastingKind = slices.Clone(sc.Kind)
		c.SpellcastingTradition = slices.Clone(sc.Tradition)
	}

	return c, nil
}

// OneOrMany decodes either a single string or a list of strings. null and
// false decode to nil.
type OneOrMany []string

func (o *OneOrMany) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")), bytes.Equal(data, []byte("false")):
		*o = nil
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*o = OneOrMany{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("expected a string or a list of strings: %w", err)
	}
	*o = list
	return nil
}

// BoolOrString decodes a field that is either a boolean or a name standing
// in for true.
type BoolOrString struct {
	Set  bool
	Text string
}

func (b *BoolOrString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*b = BoolOrString{Set: s != "", Text: s}
		return nil
	}
	var v *bool
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("expected a boolean or a string: %w", err)
	}
	*b = BoolOrString{Set: v != nil && *v}
	return nil
}

func (b BoolOrString) MarshalJSON() ([]byte, error) {
	if b.Set && b.Text != "" {
		return json.Marshal(b.Text)
	}
	return json.Marshal(b.Set)
}

// Name returns the stand-in name, AnswerYes for a bare true, or "" when unset.
func (b BoolOrString) Name() string {
	if !b.Set {
		return ""
	}
	if b.Text == "" {
		return AnswerYes
	}
	return b.Text
}
