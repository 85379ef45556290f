package domain

// Labels shared by boolean-like questions.
const (
	AnswerYes      = "Yes"
	AnswerNo       = "No"
	AnswerDontCare = "Don't care"
)

const (
	KindClass     = "Class"
	KindArchetype = "Archetype"
)

const (
	RarityCommon   = "Common"
	RarityUncommon = "Uncommon"
	RarityRare     = "Rare"
	RarityUnique   = "Unique"
)

const (
	ArmorUnarmored = "Unarmored"
	ArmorLight     = "Light"
	ArmorMedium    = "Medium"
	ArmorHeavy     = "Heavy"
)

const (
	MartialWeaponNone    = "None"
	MartialWeaponFavored = "Favored weapon"
	MartialWeaponSome    = "Some"
	MartialWeaponAll     = "All"
)

// Ordered scales. Position matters: ordinal questions compare ranks.
var (
	Kinds             = []string{KindClass, KindArchetype}
	RarityScale       = []string{RarityCommon, RarityUncommon, RarityRare, RarityUnique}
	ArmorScale        = []string{ArmorUnarmored, ArmorLight, ArmorMedium, ArmorHeavy}
	Attributes        = []string{"Strength", "Dexterity", "Constitution", "Intelligence", "Wisdom", "Charisma"}
	Traditions        = []string{"Arcane", "Divine", "Occult", "Primal"}
	SpellcastingKinds = []string{"Prepared", "Spontaneous", "Innate"}
	MartialWeapons    = []string{MartialWeaponNone, MartialWeaponFavored, MartialWeaponSome, MartialWeaponAll}
)
