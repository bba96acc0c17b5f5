package query

// Producer fields.
const (
	ProducerID          Producer = "id"
	ProducerName        Producer = "name"
	ProducerOriginal    Producer = "original"
	ProducerAliases     Producer = "aliases"
	ProducerLang        Producer = "lang"
	ProducerType        Producer = "type"
	ProducerDescription Producer = "description"
)

var producerFields = []Producer{
	ProducerID,
	ProducerName,
	ProducerOriginal,
	ProducerAliases,
	ProducerLang,
	ProducerType,
	ProducerDescription,
}

func (Producer) fieldPaths() []string { return paths(producerFields) }

// Character fields.
const (
	CharacterID                Character = "id"
	CharacterName              Character = "name"
	CharacterOriginal          Character = "original"
	CharacterAliases           Character = "aliases"
	CharacterDescription       Character = "description"
	CharacterImageID           Character = "image.id"
	CharacterImageURL          Character = "image.url"
	CharacterImageDims         Character = "image.dims"
	CharacterImageSexual       Character = "image.sexual"
	CharacterImageViolence     Character = "image.violence"
	CharacterImageVoteCount    Character = "image.votecount"
	CharacterBloodType         Character = "blood_type"
	CharacterHeight            Character = "height"
	CharacterWeight            Character = "weight"
	CharacterBust              Character = "bust"
	CharacterWaist             Character = "waist"
	CharacterHips              Character = "hips"
	CharacterCup               Character = "cup"
	CharacterAge               Character = "age"
	CharacterBirthday          Character = "birthday"
	CharacterSex               Character = "sex"
	CharacterVNsSpoiler        Character = "vns.spoiler"
	CharacterVNsRole           Character = "vns.role"
	CharacterVNsID             Character = "vns.id"
	CharacterVNsTitle          Character = "vns.title"
	CharacterVNsReleaseID      Character = "vns.release.id"
	CharacterVNsReleaseTitle   Character = "vns.release.title"
	CharacterTraitsSpoiler     Character = "traits.spoiler"
	CharacterTraitsLie         Character = "traits.lie"
	CharacterTraitsID          Character = "traits.id"
	CharacterTraitsName        Character = "traits.name"
	CharacterTraitsAliases     Character = "traits.aliases"
	CharacterTraitsDescription Character = "traits.description"
	CharacterTraitsSearchable  Character = "traits.searchable"
	CharacterTraitsApplicable  Character = "traits.applicable"
	CharacterTraitsGroupID     Character = "traits.group_id"
	CharacterTraitsGroupName   Character = "traits.group_name"
	CharacterTraitsCharCount   Character = "traits.char_count"
)

var characterFields = []Character{
	CharacterID,
	CharacterName,
	CharacterOriginal,
	CharacterAliases,
	CharacterDescription,
	CharacterImageID,
	CharacterImageURL,
	CharacterImageDims,
	CharacterImageSexual,
	CharacterImageViolence,
	CharacterImageVoteCount,
	CharacterBloodType,
	CharacterHeight,
	CharacterWeight,
	CharacterBust,
	CharacterWaist,
	CharacterHips,
	CharacterCup,
	CharacterAge,
	CharacterBirthday,
	CharacterSex,
	CharacterVNsSpoiler,
	CharacterVNsRole,
	CharacterVNsID,
	CharacterVNsTitle,
	CharacterVNsReleaseID,
	CharacterVNsReleaseTitle,
	CharacterTraitsSpoiler,
	CharacterTraitsLie,
	CharacterTraitsID,
	CharacterTraitsName,
	CharacterTraitsAliases,
	CharacterTraitsDescription,
	CharacterTraitsSearchable,
	CharacterTraitsApplicable,
	CharacterTraitsGroupID,
	CharacterTraitsGroupName,
	CharacterTraitsCharCount,
}

func (Character) fieldPaths() []string { return paths(characterFields) }

// Staff fields.
const (
	StaffID            Staff = "id"
	StaffAID           Staff = "aid"
	StaffIsMain        Staff = "ismain"
	StaffName          Staff = "name"
	StaffOriginal      Staff = "original"
	StaffLang          Staff = "lang"
	StaffGender        Staff = "gender"
	StaffDescription   Staff = "description"
	StaffExtLinksURL   Staff = "extlinks.url"
	StaffExtLinksLabel Staff = "extlinks.label"
	StaffExtLinksName  Staff = "extlinks.name"
	StaffExtLinksID    Staff = "extlinks.id"
	StaffAliasesAID    Staff = "aliases.aid"
	StaffAliasesName   Staff = "aliases.name"
	StaffAliasesLatin  Staff = "aliases.latin"
	StaffAliasesIsMain Staff = "aliases.ismain"
)

var staffFields = []Staff{
	StaffID,
	StaffAID,
	StaffIsMain,
	StaffName,
	StaffOriginal,
	StaffLang,
	StaffGender,
	StaffDescription,
	StaffExtLinksURL,
	StaffExtLinksLabel,
	StaffExtLinksName,
	StaffExtLinksID,
	StaffAliasesAID,
	StaffAliasesName,
	StaffAliasesLatin,
	StaffAliasesIsMain,
}

func (Staff) fieldPaths() []string { return paths(staffFields) }

// Tag fields.
const (
	TagID          Tag = "id"
	TagName        Tag = "name"
	TagAliases     Tag = "aliases"
	TagDescription Tag = "description"
	TagCategory    Tag = "category"
	TagSearchable  Tag = "searchable"
	TagApplicable  Tag = "applicable"
	TagVNCount     Tag = "vn_count"
)

var tagFields = []Tag{
	TagID,
	TagName,
	TagAliases,
	TagDescription,
	TagCategory,
	TagSearchable,
	TagApplicable,
	TagVNCount,
}

func (Tag) fieldPaths() []string { return paths(tagFields) }

// Trait fields.
const (
	TraitID          Trait = "id"
	TraitName        Trait = "name"
	TraitAliases     Trait = "aliases"
	TraitDescription Trait = "description"
	TraitSearchable  Trait = "searchable"
	TraitApplicable  Trait = "applicable"
	TraitGroupID     Trait = "group_id"
	TraitGroupName   Trait = "group_name"
	TraitCharCount   Trait = "char_count"
)

var traitFields = []Trait{
	TraitID,
	TraitName,
	TraitAliases,
	TraitDescription,
	TraitSearchable,
	TraitApplicable,
	TraitGroupID,
	TraitGroupName,
	TraitCharCount,
}

func (Trait) fieldPaths() []string { return paths(traitFields) }
